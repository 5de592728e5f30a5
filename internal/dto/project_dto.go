package dto

import "time"

type CreateProjectRequest struct {
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	StartDate   time.Time  `json:"start_date"`
	DueDate     *time.Time `json:"due_date"`
	ManagerID   int64      `json:"manager_id"`
}

type ProjectPatch struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	DueDate     *time.Time `json:"due_date"`
	ManagerID   *int64     `json:"manager_id"`
}

type ProjectFilter struct {
	ManagerID *int64
}

type ProjectSearch struct {
	Name        string
	Description string
}

type ProjectStats struct {
	TotalTasks           int     `json:"total_tasks"`
	CompletedTasks       int     `json:"completed_tasks"`
	CompletionPercentage float64 `json:"completion_percentage"`
}

type DeleteProjectResponse struct {
	Message  string `json:"message"`
	BackupID string `json:"backup_id"`
}
