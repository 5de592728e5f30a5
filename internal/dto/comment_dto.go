package dto

type CreateCommentRequest struct {
	Content string `json:"content"`
	TaskID  int64  `json:"task_id"`
}
