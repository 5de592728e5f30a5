package store

import (
	"fmt"
	"time"

	"github.com/taskhive/taskhive-backend/internal/dto"
	"github.com/taskhive/taskhive-backend/internal/models"
)

// CreateComment records a comment authored by the acting user. The author id
// is a user reference like any other, and the author's name is captured at
// creation time.
func (s *Store) CreateComment(actorID int64, req *dto.CreateCommentRequest) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[req.TaskID]; !ok {
		return nil, fmt.Errorf("task %d: %w", req.TaskID, ErrReferenceNotFound)
	}
	author, ok := s.users[actorID]
	if !ok {
		return nil, fmt.Errorf("author %d: %w", actorID, ErrReferenceNotFound)
	}

	comment := &models.Comment{
		ID:           s.nextCommentID,
		Content:      req.Content,
		TaskID:       req.TaskID,
		CreationDate: time.Now(),
		AuthorID:     actorID,
		AuthorName:   author.Name,
	}
	s.nextCommentID++
	s.comments[comment.ID] = comment
	out := *comment
	return &out, nil
}

func (s *Store) GetComment(id int64) (*models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.comments[id]
	if !ok {
		return nil, fmt.Errorf("comment %d: %w", id, ErrNotFound)
	}
	out := *c
	return &out, nil
}

// CommentsForTask lists the task's comments in insertion order. The task must
// still exist; orphaned comments of deleted tasks stay reachable by id only.
func (s *Store) CommentsForTask(taskID int64) ([]*models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.tasks[taskID]; !ok {
		return nil, fmt.Errorf("task %d: %w", taskID, ErrNotFound)
	}
	comments := s.commentSnapshotLocked()
	return filterSlice(comments, func(c *models.Comment) bool { return c.TaskID == taskID }), nil
}

func (s *Store) UpdateComment(id int64, req *dto.CreateCommentRequest) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.comments[id]
	if !ok {
		return nil, fmt.Errorf("comment %d: %w", id, ErrNotFound)
	}
	if _, ok := s.tasks[req.TaskID]; !ok {
		return nil, fmt.Errorf("task %d: %w", req.TaskID, ErrReferenceNotFound)
	}

	c.Content = req.Content
	c.TaskID = req.TaskID
	out := *c
	return &out, nil
}

func (s *Store) DeleteComment(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.comments[id]; !ok {
		return fmt.Errorf("comment %d: %w", id, ErrNotFound)
	}
	delete(s.comments, id)
	return nil
}
