package store

import (
	"context"
	"sync"

	"github.com/taskhive/taskhive-backend/internal/models"
)

// EmailValidator is the external address verification collaborator, consulted
// once per user creation.
type EmailValidator interface {
	ValidateEmail(ctx context.Context, email string) bool
}

// Notifier enqueues a fire-and-forget notification. Implementations must not
// block the caller; delivery happens after the triggering operation returns.
type Notifier interface {
	Notify(userID int64, message string)
}

// BackupClient is the external backup collaborator. Unlike notifications the
// call is awaited: a project is only removed once its backup id is issued.
type BackupClient interface {
	BackupProject(ctx context.Context, projectID int64) (string, error)
}

// Store is the single in-memory home of all entities. One RWMutex serializes
// every mutating operation's read-check-write sequence; reads run concurrently
// under the read lock and never observe a half-applied mutation. Ids are
// allocated monotonically per kind and never reused, even after deletion.
type Store struct {
	mu sync.RWMutex

	users    map[int64]*models.User
	projects map[int64]*models.Project
	tasks    map[int64]*models.Task
	comments map[int64]*models.Comment

	nextUserID    int64
	nextProjectID int64
	nextTaskID    int64
	nextCommentID int64

	emails   EmailValidator
	notifier Notifier
	backups  BackupClient
}

func New(emails EmailValidator, notifier Notifier, backups BackupClient) *Store {
	return &Store{
		users:    make(map[int64]*models.User),
		projects: make(map[int64]*models.Project),
		tasks:    make(map[int64]*models.Task),
		comments: make(map[int64]*models.Comment),

		nextUserID:    1,
		nextProjectID: 1,
		nextTaskID:    1,
		nextCommentID: 1,

		emails:   emails,
		notifier: notifier,
		backups:  backups,
	}
}

// Counts reports the size of each collection. Deactivated users are counted;
// they are never removed.
func (s *Store) Counts() (users, projects, tasks, comments int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), len(s.projects), len(s.tasks), len(s.comments)
}
