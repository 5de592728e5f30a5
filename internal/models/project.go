package models

import "time"

// Project task counters are a cache maintained by the statistics recompute;
// they are refreshed on every status-affecting task mutation and on demand,
// never authoritative in between.
type Project struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Description    *string    `json:"description"`
	StartDate      time.Time  `json:"start_date"`
	DueDate        *time.Time `json:"due_date"`
	ManagerID      int64      `json:"manager_id"`
	CreationDate   time.Time  `json:"creation_date"`
	TotalTasks     int        `json:"total_tasks"`
	CompletedTasks int        `json:"completed_tasks"`
}
