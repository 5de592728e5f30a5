package models

import "time"

// Comment keeps its task reference even after the task is deleted; neither
// deletion path cascades to comments.
type Comment struct {
	ID           int64     `json:"id"`
	Content      string    `json:"content"`
	TaskID       int64     `json:"task_id"`
	CreationDate time.Time `json:"creation_date"`
	AuthorID     int64     `json:"author_id"`
	AuthorName   string    `json:"author_name"`
}
