package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupProject(t *testing.T) {
	c := NewBackupClient(0)

	first, err := c.BackupProject(context.Background(), 7)
	require.NoError(t, err)
	assert.Contains(t, first, "bk_7_")

	second, err := c.BackupProject(context.Background(), 7)
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "backup ids are unique per call")
}

func TestBackupProjectHonorsContext(t *testing.T) {
	c := NewBackupClient(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.BackupProject(ctx, 7)
	require.ErrorIs(t, err, context.Canceled)
}
