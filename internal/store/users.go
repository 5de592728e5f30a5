package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/taskhive/taskhive-backend/internal/dto"
	"github.com/taskhive/taskhive-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// CreateUser registers a new user. The external email check and the password
// hash run before the write lock is taken; the duplicate check is repeated
// inside the critical section so concurrent creates cannot both win.
func (s *Store) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	if !req.Type.Valid() {
		return nil, fmt.Errorf("user type %q: %w", req.Type, ErrValidation)
	}
	if !s.emails.ValidateEmail(ctx, req.Email) {
		return nil, fmt.Errorf("email %q: %w", req.Email, ErrInvalidEmail)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	if s.emailTakenLocked(req.Email, 0) {
		s.mu.Unlock()
		return nil, fmt.Errorf("email %q: %w", req.Email, ErrDuplicateEmail)
	}

	user := &models.User{
		ID:               s.nextUserID,
		Name:             req.Name,
		Email:            req.Email,
		Type:             req.Type,
		Active:           req.Active,
		Password:         string(hash),
		RegistrationDate: time.Now(),
	}
	s.nextUserID++
	s.users[user.ID] = user
	out := *user
	s.mu.Unlock()

	slog.Info("user created", "user_id", out.ID, "type", out.Type)
	s.notifier.Notify(out.ID, "welcome to the task management system")
	return &out, nil
}

func (s *Store) GetUser(id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	out := *u
	return &out, nil
}

func (s *Store) ListUsers(f *dto.UserFilter, page, size int) []*models.User {
	s.mu.RLock()
	users := s.userSnapshotLocked()
	s.mu.RUnlock()

	var preds []func(*models.User) bool
	if f.Active != nil {
		preds = append(preds, func(u *models.User) bool { return u.Active == *f.Active })
	}
	if f.Type != nil {
		preds = append(preds, func(u *models.User) bool { return u.Type == *f.Type })
	}
	return paginate(filterSlice(users, preds...), page, size)
}

// UpdateUser replaces every mutable field. The uniqueness check skips the
// user's own record but compares against all others regardless of active
// state.
func (s *Store) UpdateUser(id int64, req *dto.CreateUserRequest) (*models.User, error) {
	if !req.Type.Valid() {
		return nil, fmt.Errorf("user type %q: %w", req.Type, ErrValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	if s.emailTakenLocked(req.Email, id) {
		return nil, fmt.Errorf("email %q: %w", req.Email, ErrDuplicateEmail)
	}

	u.Name = req.Name
	u.Email = req.Email
	u.Type = req.Type
	u.Active = req.Active
	u.Password = string(hash)
	out := *u
	return &out, nil
}

// PatchUser applies only the supplied fields and revalidates only those.
func (s *Store) PatchUser(id int64, p *dto.UserPatch) (*models.User, error) {
	if p.Type != nil && !p.Type.Valid() {
		return nil, fmt.Errorf("user type %q: %w", *p.Type, ErrValidation)
	}
	var hash string
	if p.Password != nil {
		h, err := bcrypt.GenerateFromPassword([]byte(*p.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		hash = string(h)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	if p.Email != nil && s.emailTakenLocked(*p.Email, id) {
		return nil, fmt.Errorf("email %q: %w", *p.Email, ErrDuplicateEmail)
	}

	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Type != nil {
		u.Type = *p.Type
	}
	if p.Active != nil {
		u.Active = *p.Active
	}
	if p.Password != nil {
		u.Password = hash
	}
	out := *u
	return &out, nil
}

// DeleteUser is a soft delete: the record stays, Active flips to false and the
// id remains resolvable.
func (s *Store) DeleteUser(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	u.Active = false
	return nil
}

func (s *Store) SearchUsers(q *dto.UserSearch, page, size int) []*models.User {
	s.mu.RLock()
	users := s.userSnapshotLocked()
	s.mu.RUnlock()

	var preds []func(*models.User) bool
	if q.Name != "" {
		preds = append(preds, func(u *models.User) bool { return containsFold(u.Name, q.Name) })
	}
	if q.Email != "" {
		preds = append(preds, func(u *models.User) bool { return containsFold(u.Email, q.Email) })
	}
	return paginate(filterSlice(users, preds...), page, size)
}

// TasksForUser returns every task currently assigned to the user.
func (s *Store) TasksForUser(userID int64) ([]*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.users[userID]; !ok {
		return nil, fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}
	tasks := s.taskSnapshotLocked()
	return filterSlice(tasks, func(t *models.Task) bool {
		return t.AssignedTo != nil && *t.AssignedTo == userID
	}), nil
}

// TouchLastAccess stamps the user's last access with the current time.
func (s *Store) TouchLastAccess(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	now := time.Now()
	u.LastAccess = &now
	return nil
}

func (s *Store) emailTakenLocked(email string, selfID int64) bool {
	for id, u := range s.users {
		if id != selfID && u.Email == email {
			return true
		}
	}
	return false
}
