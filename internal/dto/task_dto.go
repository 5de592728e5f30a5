package dto

import (
	"time"

	"github.com/taskhive/taskhive-backend/internal/models"
)

type CreateTaskRequest struct {
	Title          string              `json:"title"`
	Description    *string             `json:"description"`
	Status         models.TaskStatus   `json:"status"`
	Priority       models.TaskPriority `json:"priority"`
	DueDate        *time.Time          `json:"due_date"`
	ProjectID      int64               `json:"project_id"`
	AssignedTo     *int64              `json:"assigned_to"`
	EstimatedHours float64             `json:"estimated_hours"`
}

type TaskPatch struct {
	Title          *string              `json:"title"`
	Description    *string              `json:"description"`
	Status         *models.TaskStatus   `json:"status"`
	Priority       *models.TaskPriority `json:"priority"`
	DueDate        *time.Time           `json:"due_date"`
	ProjectID      *int64               `json:"project_id"`
	AssignedTo     *int64               `json:"assigned_to"`
	EstimatedHours *float64             `json:"estimated_hours"`
}

type TaskFilter struct {
	Status     *models.TaskStatus
	Priority   *models.TaskPriority
	ProjectID  *int64
	AssignedTo *int64
}

// TaskSearch combines substring/range predicates with an optional ordering.
// An empty OrderBy preserves insertion order.
type TaskSearch struct {
	Title      string
	Status     *models.TaskStatus
	Priority   *models.TaskPriority
	ProjectID  *int64
	AssignedTo *int64
	DueFrom    *time.Time
	DueTo      *time.Time
	OrderBy    string
	OrderDir   string
}

type PriorityStats struct {
	Low      int `json:"low"`
	Medium   int `json:"medium"`
	High     int `json:"high"`
	Critical int `json:"critical"`
}

type GlobalTaskStats struct {
	TotalTasks           int           `json:"total_tasks"`
	CompletedTasks       int           `json:"completed_tasks"`
	InProgressTasks      int           `json:"in_progress_tasks"`
	PendingTasks         int           `json:"pending_tasks"`
	CompletionPercentage float64       `json:"completion_percentage"`
	PriorityStats        PriorityStats `json:"priority_stats"`
}
