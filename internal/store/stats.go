package store

import (
	"fmt"

	"github.com/taskhive/taskhive-backend/internal/dto"
	"github.com/taskhive/taskhive-backend/internal/models"
)

// ProjectStatistics recomputes the project's task counters, writes them back
// onto the project record as a cache and returns the breakdown. Task records
// are never mutated.
func (s *Store) ProjectStatistics(projectID int64) (*dto.ProjectStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.projectStatsLocked(projectID)
}

func (s *Store) projectStatsLocked(projectID int64) (*dto.ProjectStats, error) {
	p, ok := s.projects[projectID]
	if !ok {
		return nil, fmt.Errorf("project %d: %w", projectID, ErrNotFound)
	}

	total, completed := 0, 0
	for _, t := range s.tasks {
		if t.ProjectID != projectID {
			continue
		}
		total++
		if t.Status == models.StatusCompleted {
			completed++
		}
	}

	p.TotalTasks = total
	p.CompletedTasks = completed

	pct := 0.0
	if total > 0 {
		pct = float64(completed) / float64(total) * 100
	}
	return &dto.ProjectStats{
		TotalTasks:           total,
		CompletedTasks:       completed,
		CompletionPercentage: pct,
	}, nil
}

// recomputeProjectLocked refreshes a project's cached counters after a task
// mutation. A missing project is fine: task deletion during a project cascade
// has no owner left to update.
func (s *Store) recomputeProjectLocked(projectID int64) {
	_, _ = s.projectStatsLocked(projectID)
}

// GlobalTaskStatistics breaks all tasks down by status and priority.
func (s *Store) GlobalTaskStatistics() *dto.GlobalTaskStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &dto.GlobalTaskStats{TotalTasks: len(s.tasks)}
	for _, t := range s.tasks {
		switch t.Status {
		case models.StatusCompleted:
			stats.CompletedTasks++
		case models.StatusInProgress:
			stats.InProgressTasks++
		case models.StatusPending:
			stats.PendingTasks++
		}
		switch t.Priority {
		case models.PriorityLow:
			stats.PriorityStats.Low++
		case models.PriorityMedium:
			stats.PriorityStats.Medium++
		case models.PriorityHigh:
			stats.PriorityStats.High++
		case models.PriorityCritical:
			stats.PriorityStats.Critical++
		}
	}
	if stats.TotalTasks > 0 {
		stats.CompletionPercentage = float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100
	}
	return stats
}
