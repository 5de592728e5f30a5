package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/taskhive/taskhive-backend/internal/dto"
	"github.com/taskhive/taskhive-backend/internal/models"
)

type stubEmails struct {
	ok bool
}

func (s stubEmails) ValidateEmail(context.Context, string) bool {
	return s.ok
}

type sentNotification struct {
	UserID  int64
	Message string
}

// recordingNotifier counts enqueues synchronously so tests can assert exact
// notification counts without racing a real dispatcher.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentNotification
}

func (n *recordingNotifier) Notify(userID int64, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentNotification{UserID: userID, Message: message})
}

func (n *recordingNotifier) all() []sentNotification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]sentNotification, len(n.sent))
	copy(out, n.sent)
	return out
}

func (n *recordingNotifier) reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = nil
}

type stubBackups struct {
	err   error
	calls int
}

func (b *stubBackups) BackupProject(_ context.Context, projectID int64) (string, error) {
	b.calls++
	if b.err != nil {
		return "", b.err
	}
	return fmt.Sprintf("bk_%d_test", projectID), nil
}

func newTestStore(t *testing.T) (*Store, *recordingNotifier, *stubBackups) {
	t.Helper()
	notifier := &recordingNotifier{}
	backups := &stubBackups{}
	return New(stubEmails{ok: true}, notifier, backups), notifier, backups
}

func mustUser(t *testing.T, s *Store, email string) *models.User {
	t.Helper()
	u, err := s.CreateUser(context.Background(), &dto.CreateUserRequest{
		Name:     "Test User",
		Email:    email,
		Type:     models.UserMember,
		Active:   true,
		Password: "secret123",
	})
	require.NoError(t, err)
	return u
}

func mustProject(t *testing.T, s *Store, managerID int64) *models.Project {
	t.Helper()
	p, err := s.CreateProject(&dto.CreateProjectRequest{
		Name:      "Test Project",
		ManagerID: managerID,
	})
	require.NoError(t, err)
	return p
}

func mustTask(t *testing.T, s *Store, projectID int64, assignedTo *int64) *models.Task {
	t.Helper()
	task, err := s.CreateTask(1, &dto.CreateTaskRequest{
		Title:     "Test Task",
		Status:     models.StatusPending,
		Priority:   models.PriorityMedium,
		ProjectID:  projectID,
		AssignedTo: assignedTo,
	})
	require.NoError(t, err)
	return task
}

func TestIDsMonotonicAndNeverReused(t *testing.T) {
	s, _, _ := newTestStore(t)
	manager := mustUser(t, s, "manager@example.com")
	project := mustProject(t, s, manager.ID)

	first := mustTask(t, s, project.ID, nil)
	second := mustTask(t, s, project.ID, nil)
	require.Greater(t, second.ID, first.ID)

	require.NoError(t, s.DeleteTask(first.ID))

	third := mustTask(t, s, project.ID, nil)
	require.Greater(t, third.ID, second.ID, "deleted ids must not be reissued")
}

func TestConcurrentCreatesAllocateUniqueIDs(t *testing.T) {
	s, _, _ := newTestStore(t)
	manager := mustUser(t, s, "manager@example.com")
	project := mustProject(t, s, manager.ID)

	const workers = 20
	var wg sync.WaitGroup
	ids := make(chan int64, workers)
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			task, err := s.CreateTask(1, &dto.CreateTaskRequest{
				Title:     "concurrent",
				Status:    models.StatusPending,
				Priority:  models.PriorityLow,
				ProjectID: project.ID,
			})
			if err != nil {
				errs <- err
				return
			}
			ids <- task.ID
		}()
	}
	wg.Wait()
	close(ids)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	seen := make(map[int64]bool)
	for id := range ids {
		require.False(t, seen[id], "id %d issued twice", id)
		seen[id] = true
	}
	require.Len(t, seen, workers)
}
