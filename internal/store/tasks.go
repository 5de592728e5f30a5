package store

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/taskhive/taskhive-backend/internal/dto"
	"github.com/taskhive/taskhive-backend/internal/models"
)

// CreateTask validates both references, stores the task, recomputes the owning
// project's statistics and notifies the assignee if there is one. The actor id
// comes from the boundary layer and is recorded as CreatedBy.
func (s *Store) CreateTask(actorID int64, req *dto.CreateTaskRequest) (*models.Task, error) {
	if !req.Status.Valid() {
		return nil, fmt.Errorf("status %q: %w", req.Status, ErrValidation)
	}
	if !req.Priority.Valid() {
		return nil, fmt.Errorf("priority %q: %w", req.Priority, ErrValidation)
	}

	s.mu.Lock()
	if _, ok := s.projects[req.ProjectID]; !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("project %d: %w", req.ProjectID, ErrReferenceNotFound)
	}
	if req.AssignedTo != nil {
		if _, ok := s.users[*req.AssignedTo]; !ok {
			s.mu.Unlock()
			return nil, fmt.Errorf("assignee %d: %w", *req.AssignedTo, ErrReferenceNotFound)
		}
	}

	now := time.Now()
	task := &models.Task{
		ID:             s.nextTaskID,
		Title:          req.Title,
		Description:    req.Description,
		Status:         req.Status,
		Priority:       req.Priority,
		DueDate:        req.DueDate,
		ProjectID:      req.ProjectID,
		AssignedTo:     req.AssignedTo,
		EstimatedHours: req.EstimatedHours,
		CreationDate:   now,
		UpdateDate:     now,
		CreatedBy:      actorID,
	}
	s.nextTaskID++
	s.tasks[task.ID] = task
	s.recomputeProjectLocked(task.ProjectID)
	out := *task
	s.mu.Unlock()

	if out.AssignedTo != nil {
		s.notifier.Notify(*out.AssignedTo, "you have been assigned to task: "+out.Title)
	}
	return &out, nil
}

func (s *Store) GetTask(id int64) (*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tasks[id]
	if !ok {
		return nil, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	out := *t
	return &out, nil
}

func (s *Store) ListTasks(f *dto.TaskFilter, page, size int) []*models.Task {
	s.mu.RLock()
	tasks := s.taskSnapshotLocked()
	s.mu.RUnlock()
	return paginate(filterSlice(tasks, taskFilterPreds(f)...), page, size)
}

// UpdateTask is a full replacement: every reference is revalidated, the update
// timestamp refreshed and statistics recomputed for the (possibly new)
// project. Moving a task between projects leaves the old project's cached
// counters stale until its next recompute.
func (s *Store) UpdateTask(id int64, req *dto.CreateTaskRequest) (*models.Task, error) {
	if !req.Status.Valid() {
		return nil, fmt.Errorf("status %q: %w", req.Status, ErrValidation)
	}
	if !req.Priority.Valid() {
		return nil, fmt.Errorf("priority %q: %w", req.Priority, ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return nil, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	if _, ok := s.projects[req.ProjectID]; !ok {
		return nil, fmt.Errorf("project %d: %w", req.ProjectID, ErrReferenceNotFound)
	}
	if req.AssignedTo != nil {
		if _, ok := s.users[*req.AssignedTo]; !ok {
			return nil, fmt.Errorf("assignee %d: %w", *req.AssignedTo, ErrReferenceNotFound)
		}
	}

	t.Title = req.Title
	t.Description = req.Description
	t.Status = req.Status
	t.Priority = req.Priority
	t.DueDate = req.DueDate
	t.ProjectID = req.ProjectID
	t.AssignedTo = req.AssignedTo
	t.EstimatedHours = req.EstimatedHours
	t.UpdateDate = time.Now()

	s.recomputeProjectLocked(t.ProjectID)
	out := *t
	return &out, nil
}

// PatchTask applies only the supplied fields, revalidating only the touched
// references. The update timestamp is always refreshed; statistics are
// recomputed when status or project changed.
func (s *Store) PatchTask(id int64, p *dto.TaskPatch) (*models.Task, error) {
	if p.Status != nil && !p.Status.Valid() {
		return nil, fmt.Errorf("status %q: %w", *p.Status, ErrValidation)
	}
	if p.Priority != nil && !p.Priority.Valid() {
		return nil, fmt.Errorf("priority %q: %w", *p.Priority, ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return nil, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	if p.ProjectID != nil {
		if _, ok := s.projects[*p.ProjectID]; !ok {
			return nil, fmt.Errorf("project %d: %w", *p.ProjectID, ErrReferenceNotFound)
		}
	}
	if p.AssignedTo != nil {
		if _, ok := s.users[*p.AssignedTo]; !ok {
			return nil, fmt.Errorf("assignee %d: %w", *p.AssignedTo, ErrReferenceNotFound)
		}
	}

	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.DueDate != nil {
		t.DueDate = p.DueDate
	}
	if p.ProjectID != nil {
		t.ProjectID = *p.ProjectID
	}
	if p.AssignedTo != nil {
		t.AssignedTo = p.AssignedTo
	}
	if p.EstimatedHours != nil {
		t.EstimatedHours = *p.EstimatedHours
	}
	t.UpdateDate = time.Now()

	if p.Status != nil || p.ProjectID != nil {
		s.recomputeProjectLocked(t.ProjectID)
	}
	out := *t
	return &out, nil
}

// DeleteTask removes the task and recomputes the owning project's statistics.
// Comments referencing the task are kept.
func (s *Store) DeleteTask(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	projectID := t.ProjectID
	delete(s.tasks, id)
	s.recomputeProjectLocked(projectID)
	return nil
}

// SearchTasks combines substring, equality and due-date range predicates with
// an optional ordering. An unknown sort field or direction is a validation
// failure; an empty OrderBy preserves insertion order.
func (s *Store) SearchTasks(q *dto.TaskSearch, page, size int) ([]*models.Task, error) {
	less, err := taskLess(q.OrderBy, q.OrderDir)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	tasks := s.taskSnapshotLocked()
	s.mu.RUnlock()

	preds := taskFilterPreds(&dto.TaskFilter{
		Status:     q.Status,
		Priority:   q.Priority,
		ProjectID:  q.ProjectID,
		AssignedTo: q.AssignedTo,
	})
	if q.Title != "" {
		preds = append(preds, func(t *models.Task) bool { return containsFold(t.Title, q.Title) })
	}
	if q.DueFrom != nil {
		preds = append(preds, func(t *models.Task) bool {
			return t.DueDate != nil && !t.DueDate.Before(*q.DueFrom)
		})
	}
	if q.DueTo != nil {
		preds = append(preds, func(t *models.Task) bool {
			return t.DueDate != nil && !t.DueDate.After(*q.DueTo)
		})
	}

	matched := filterSlice(tasks, preds...)
	if less != nil {
		sort.SliceStable(matched, func(i, j int) bool { return less(matched[i], matched[j]) })
	}
	return paginate(matched, page, size), nil
}

// AssignTask reassigns the task. The new assignee is always notified; the
// previous one only when there was one and it is a different user.
func (s *Store) AssignTask(taskID, userID int64) (*models.Task, error) {
	s.mu.Lock()
	t, ok := s.tasks[taskID]
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("task %d: %w", taskID, ErrNotFound)
	}
	if _, ok := s.users[userID]; !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("user %d: %w", userID, ErrReferenceNotFound)
	}

	previous := t.AssignedTo
	t.AssignedTo = &userID
	t.UpdateDate = time.Now()
	out := *t
	s.mu.Unlock()

	s.notifier.Notify(userID, "you have been assigned to task: "+out.Title)
	if previous != nil && *previous != userID {
		s.notifier.Notify(*previous, "you have been unassigned from task: "+out.Title)
	}
	return &out, nil
}

// ChangeTaskStatus mutates the status, refreshes the update timestamp,
// recomputes the project's statistics and notifies the assignee of the
// transition.
func (s *Store) ChangeTaskStatus(taskID int64, status models.TaskStatus) (*models.Task, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("status %q: %w", status, ErrValidation)
	}

	s.mu.Lock()
	t, ok := s.tasks[taskID]
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("task %d: %w", taskID, ErrNotFound)
	}

	old := t.Status
	t.Status = status
	t.UpdateDate = time.Now()
	s.recomputeProjectLocked(t.ProjectID)
	out := *t
	s.mu.Unlock()

	slog.Info("task status changed", "task_id", taskID, "from", old, "to", status)
	if out.AssignedTo != nil {
		s.notifier.Notify(*out.AssignedTo,
			fmt.Sprintf("status of task '%s' changed from %s to %s", out.Title, old, status))
	}
	return &out, nil
}

func taskFilterPreds(f *dto.TaskFilter) []func(*models.Task) bool {
	var preds []func(*models.Task) bool
	if f.Status != nil {
		preds = append(preds, func(t *models.Task) bool { return t.Status == *f.Status })
	}
	if f.Priority != nil {
		preds = append(preds, func(t *models.Task) bool { return t.Priority == *f.Priority })
	}
	if f.ProjectID != nil {
		preds = append(preds, func(t *models.Task) bool { return t.ProjectID == *f.ProjectID })
	}
	if f.AssignedTo != nil {
		preds = append(preds, func(t *models.Task) bool {
			return t.AssignedTo != nil && *t.AssignedTo == *f.AssignedTo
		})
	}
	return preds
}

// taskLess builds the comparison for a sortable field, or nil when no ordering
// was requested. Tasks without a due date sort as the zero time.
func taskLess(field, dir string) (func(a, b *models.Task) bool, error) {
	var less func(a, b *models.Task) bool
	switch field {
	case "":
		return nil, nil
	case "title":
		less = func(a, b *models.Task) bool { return a.Title < b.Title }
	case "creation_date":
		less = func(a, b *models.Task) bool { return a.CreationDate.Before(b.CreationDate) }
	case "due_date":
		less = func(a, b *models.Task) bool { return dueOrZero(a).Before(dueOrZero(b)) }
	case "priority":
		less = func(a, b *models.Task) bool { return a.Priority.Rank() < b.Priority.Rank() }
	default:
		return nil, fmt.Errorf("order_by %q: %w", field, ErrValidation)
	}

	switch dir {
	case "", "asc":
		return less, nil
	case "desc":
		asc := less
		return func(a, b *models.Task) bool { return asc(b, a) }, nil
	default:
		return nil, fmt.Errorf("order_dir %q: %w", dir, ErrValidation)
	}
}

func dueOrZero(t *models.Task) time.Time {
	if t.DueDate == nil {
		return time.Time{}
	}
	return *t.DueDate
}
