package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/taskhive/taskhive-backend/internal/dto"
	"github.com/taskhive/taskhive-backend/internal/models"
)

func (s *Store) CreateProject(req *dto.CreateProjectRequest) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[req.ManagerID]; !ok {
		return nil, fmt.Errorf("manager %d: %w", req.ManagerID, ErrReferenceNotFound)
	}

	project := &models.Project{
		ID:           s.nextProjectID,
		Name:         req.Name,
		Description:  req.Description,
		StartDate:    req.StartDate,
		DueDate:      req.DueDate,
		ManagerID:    req.ManagerID,
		CreationDate: time.Now(),
	}
	s.nextProjectID++
	s.projects[project.ID] = project
	out := *project
	return &out, nil
}

func (s *Store) GetProject(id int64) (*models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.projects[id]
	if !ok {
		return nil, fmt.Errorf("project %d: %w", id, ErrNotFound)
	}
	out := *p
	return &out, nil
}

func (s *Store) ListProjects(f *dto.ProjectFilter, page, size int) []*models.Project {
	s.mu.RLock()
	projects := s.projectSnapshotLocked()
	s.mu.RUnlock()

	var preds []func(*models.Project) bool
	if f.ManagerID != nil {
		preds = append(preds, func(p *models.Project) bool { return p.ManagerID == *f.ManagerID })
	}
	return paginate(filterSlice(projects, preds...), page, size)
}

func (s *Store) UpdateProject(id int64, req *dto.CreateProjectRequest) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok {
		return nil, fmt.Errorf("project %d: %w", id, ErrNotFound)
	}
	if _, ok := s.users[req.ManagerID]; !ok {
		return nil, fmt.Errorf("manager %d: %w", req.ManagerID, ErrReferenceNotFound)
	}

	p.Name = req.Name
	p.Description = req.Description
	p.StartDate = req.StartDate
	p.DueDate = req.DueDate
	p.ManagerID = req.ManagerID
	out := *p
	return &out, nil
}

func (s *Store) PatchProject(id int64, patch *dto.ProjectPatch) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok {
		return nil, fmt.Errorf("project %d: %w", id, ErrNotFound)
	}
	if patch.ManagerID != nil {
		if _, ok := s.users[*patch.ManagerID]; !ok {
			return nil, fmt.Errorf("manager %d: %w", *patch.ManagerID, ErrReferenceNotFound)
		}
		p.ManagerID = *patch.ManagerID
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = patch.Description
	}
	if patch.StartDate != nil {
		p.StartDate = *patch.StartDate
	}
	if patch.DueDate != nil {
		p.DueDate = patch.DueDate
	}
	out := *p
	return &out, nil
}

// DeleteProject backs the project up, then removes it together with all of
// its tasks as one critical section. The backup call is awaited without
// holding the lock, so existence is re-checked afterwards; if the backup
// fails nothing is removed. Comments on the cascaded tasks are left in place.
func (s *Store) DeleteProject(ctx context.Context, id int64) (string, error) {
	s.mu.RLock()
	_, ok := s.projects[id]
	s.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("project %d: %w", id, ErrNotFound)
	}

	backupID, err := s.backups.BackupProject(ctx, id)
	if err != nil {
		return "", fmt.Errorf("backup project %d: %w", id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[id]; !ok {
		return "", fmt.Errorf("project %d: %w", id, ErrNotFound)
	}
	delete(s.projects, id)

	removed := 0
	for tid, t := range s.tasks {
		if t.ProjectID == id {
			delete(s.tasks, tid)
			removed++
		}
	}

	slog.Info("project deleted", "project_id", id, "backup_id", backupID, "tasks_removed", removed)
	return backupID, nil
}

func (s *Store) SearchProjects(q *dto.ProjectSearch, page, size int) []*models.Project {
	s.mu.RLock()
	projects := s.projectSnapshotLocked()
	s.mu.RUnlock()

	var preds []func(*models.Project) bool
	if q.Name != "" {
		preds = append(preds, func(p *models.Project) bool { return containsFold(p.Name, q.Name) })
	}
	if q.Description != "" {
		preds = append(preds, func(p *models.Project) bool {
			return p.Description != nil && containsFold(*p.Description, q.Description)
		})
	}
	return paginate(filterSlice(projects, preds...), page, size)
}

// TasksForProject returns every task belonging to the project.
func (s *Store) TasksForProject(projectID int64) ([]*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.projects[projectID]; !ok {
		return nil, fmt.Errorf("project %d: %w", projectID, ErrNotFound)
	}
	tasks := s.taskSnapshotLocked()
	return filterSlice(tasks, func(t *models.Task) bool { return t.ProjectID == projectID }), nil
}
