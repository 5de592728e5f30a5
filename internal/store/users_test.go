package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskhive/taskhive-backend/internal/dto"
	"github.com/taskhive/taskhive-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUser(t *testing.T) {
	s, notifier, _ := newTestStore(t)

	u, err := s.CreateUser(context.Background(), &dto.CreateUserRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Type:     models.UserAdmin,
		Active:   true,
		Password: "hunter22",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "ada@example.com", u.Email)
	assert.True(t, u.Active)
	assert.False(t, u.RegistrationDate.IsZero())
	assert.Nil(t, u.LastAccess)

	// Password is stored hashed, never verbatim
	assert.NotEqual(t, "hunter22", u.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("hunter22")))

	// Welcome notification enqueued for the new user
	sent := notifier.all()
	require.Len(t, sent, 1)
	assert.Equal(t, u.ID, sent[0].UserID)
}

func TestCreateUserInvalidEmail(t *testing.T) {
	notifier := &recordingNotifier{}
	s := New(stubEmails{ok: false}, notifier, &stubBackups{})

	_, err := s.CreateUser(context.Background(), &dto.CreateUserRequest{
		Name:     "Bad",
		Email:    "not-an-email",
		Type:     models.UserMember,
		Password: "secret123",
	})
	require.ErrorIs(t, err, ErrInvalidEmail)
	assert.Empty(t, notifier.all())
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s, _, _ := newTestStore(t)
	u := mustUser(t, s, "dup@example.com")

	_, err := s.CreateUser(context.Background(), &dto.CreateUserRequest{
		Name:     "Copy",
		Email:    "dup@example.com",
		Type:     models.UserMember,
		Password: "secret123",
	})
	require.ErrorIs(t, err, ErrDuplicateEmail)

	// Deactivated users still hold their email
	require.NoError(t, s.DeleteUser(u.ID))
	_, err = s.CreateUser(context.Background(), &dto.CreateUserRequest{
		Name:     "Copy",
		Email:    "dup@example.com",
		Type:     models.UserMember,
		Password: "secret123",
	})
	require.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestDeleteUserIsSoft(t *testing.T) {
	s, _, _ := newTestStore(t)
	u := mustUser(t, s, "soft@example.com")

	require.NoError(t, s.DeleteUser(u.ID))

	got, err := s.GetUser(u.ID)
	require.NoError(t, err, "deactivated users stay resolvable")
	assert.False(t, got.Active)

	require.ErrorIs(t, s.DeleteUser(9999), ErrNotFound)
}

func TestUpdateUserEmailUniquenessExcludesSelf(t *testing.T) {
	s, _, _ := newTestStore(t)
	a := mustUser(t, s, "a@example.com")
	mustUser(t, s, "b@example.com")

	// Keeping your own email is not a collision
	_, err := s.UpdateUser(a.ID, &dto.CreateUserRequest{
		Name:     "A renamed",
		Email:    "a@example.com",
		Type:     models.UserManager,
		Active:   true,
		Password: "newsecret",
	})
	require.NoError(t, err)

	// Taking someone else's is
	_, err = s.UpdateUser(a.ID, &dto.CreateUserRequest{
		Name:     "A",
		Email:    "b@example.com",
		Type:     models.UserMember,
		Active:   true,
		Password: "newsecret",
	})
	require.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestPatchUserOnlyTouchedFields(t *testing.T) {
	s, _, _ := newTestStore(t)
	u := mustUser(t, s, "patch@example.com")

	name := "Renamed"
	got, err := s.PatchUser(u.ID, &dto.UserPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, u.Email, got.Email)
	assert.Equal(t, u.Type, got.Type)

	_, err = s.PatchUser(9999, &dto.UserPatch{Name: &name})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSearchUsersCaseInsensitive(t *testing.T) {
	s, _, _ := newTestStore(t)
	mustUserNamed(t, s, "Grace Hopper", "grace@navy.mil")
	mustUserNamed(t, s, "Alan Turing", "alan@bletchley.uk")

	for _, needle := range []string{"grace", "GRACE", "race"} {
		got := s.SearchUsers(&dto.UserSearch{Name: needle}, 1, 10)
		require.Len(t, got, 1, "needle %q", needle)
		assert.Equal(t, "Grace Hopper", got[0].Name)
	}

	got := s.SearchUsers(&dto.UserSearch{Email: "BLETCHLEY"}, 1, 10)
	require.Len(t, got, 1)
	assert.Equal(t, "Alan Turing", got[0].Name)
}

func TestListUsersFilter(t *testing.T) {
	s, _, _ := newTestStore(t)
	active := mustUser(t, s, "active@example.com")
	inactive := mustUser(t, s, "inactive@example.com")
	require.NoError(t, s.DeleteUser(inactive.ID))

	tr := true
	got := s.ListUsers(&dto.UserFilter{Active: &tr}, 1, 10)
	require.Len(t, got, 1)
	assert.Equal(t, active.ID, got[0].ID)

	member := models.UserMember
	got = s.ListUsers(&dto.UserFilter{Type: &member}, 1, 10)
	assert.Len(t, got, 2)
}

func TestTouchLastAccess(t *testing.T) {
	s, _, _ := newTestStore(t)
	u := mustUser(t, s, "touch@example.com")
	require.Nil(t, u.LastAccess)

	require.NoError(t, s.TouchLastAccess(u.ID))

	got, err := s.GetUser(u.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastAccess)

	require.ErrorIs(t, s.TouchLastAccess(9999), ErrNotFound)
}

func TestTasksForUser(t *testing.T) {
	s, _, _ := newTestStore(t)
	manager := mustUser(t, s, "manager@example.com")
	worker := mustUser(t, s, "worker@example.com")
	project := mustProject(t, s, manager.ID)

	assigned := mustTask(t, s, project.ID, &worker.ID)
	mustTask(t, s, project.ID, nil)

	tasks, err := s.TasksForUser(worker.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, assigned.ID, tasks[0].ID)

	_, err = s.TasksForUser(9999)
	require.ErrorIs(t, err, ErrNotFound)
}

func mustUserNamed(t *testing.T, s *Store, name, email string) *models.User {
	t.Helper()
	u, err := s.CreateUser(context.Background(), &dto.CreateUserRequest{
		Name:     name,
		Email:    email,
		Type:     models.UserMember,
		Active:   true,
		Password: "secret123",
	})
	require.NoError(t, err)
	return u
}
