package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskhive/taskhive-backend/internal/dto"
)

func TestCreateCommentRecordsAuthor(t *testing.T) {
	s, _, _ := newTestStore(t)
	manager := mustUser(t, s, "manager@example.com")
	author := mustUserNamed(t, s, "Margaret Hamilton", "margaret@nasa.gov")
	project := mustProject(t, s, manager.ID)
	task := mustTask(t, s, project.ID, nil)

	comment, err := s.CreateComment(author.ID, &dto.CreateCommentRequest{
		Content: "ship it",
		TaskID:  task.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, author.ID, comment.AuthorID)
	assert.Equal(t, "Margaret Hamilton", comment.AuthorName)
	assert.False(t, comment.CreationDate.IsZero())
}

func TestCreateCommentValidatesReferences(t *testing.T) {
	s, _, _ := newTestStore(t)
	manager := mustUser(t, s, "manager@example.com")
	project := mustProject(t, s, manager.ID)
	task := mustTask(t, s, project.ID, nil)

	_, err := s.CreateComment(manager.ID, &dto.CreateCommentRequest{
		Content: "dangling", TaskID: 9999,
	})
	require.ErrorIs(t, err, ErrReferenceNotFound)

	_, err = s.CreateComment(9999, &dto.CreateCommentRequest{
		Content: "ghost author", TaskID: task.ID,
	})
	require.ErrorIs(t, err, ErrReferenceNotFound)
}

func TestCommentsForTask(t *testing.T) {
	s, _, _ := newTestStore(t)
	manager := mustUser(t, s, "manager@example.com")
	project := mustProject(t, s, manager.ID)
	task := mustTask(t, s, project.ID, nil)
	other := mustTask(t, s, project.ID, nil)

	for _, content := range []string{"first", "second"} {
		_, err := s.CreateComment(manager.ID, &dto.CreateCommentRequest{
			Content: content, TaskID: task.ID,
		})
		require.NoError(t, err)
	}
	_, err := s.CreateComment(manager.ID, &dto.CreateCommentRequest{
		Content: "elsewhere", TaskID: other.ID,
	})
	require.NoError(t, err)

	comments, err := s.CommentsForTask(task.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Content)
	assert.Equal(t, "second", comments[1].Content)

	_, err = s.CommentsForTask(9999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateAndDeleteComment(t *testing.T) {
	s, _, _ := newTestStore(t)
	manager := mustUser(t, s, "manager@example.com")
	project := mustProject(t, s, manager.ID)
	task := mustTask(t, s, project.ID, nil)
	second := mustTask(t, s, project.ID, nil)

	comment, err := s.CreateComment(manager.ID, &dto.CreateCommentRequest{
		Content: "draft", TaskID: task.ID,
	})
	require.NoError(t, err)

	got, err := s.UpdateComment(comment.ID, &dto.CreateCommentRequest{
		Content: "final", TaskID: second.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "final", got.Content)
	assert.Equal(t, second.ID, got.TaskID)
	assert.Equal(t, comment.AuthorID, got.AuthorID, "authorship is immutable")

	_, err = s.UpdateComment(comment.ID, &dto.CreateCommentRequest{
		Content: "bad", TaskID: 9999,
	})
	require.ErrorIs(t, err, ErrReferenceNotFound)

	require.NoError(t, s.DeleteComment(comment.ID))
	_, err = s.GetComment(comment.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, s.DeleteComment(comment.ID), ErrNotFound)
}
