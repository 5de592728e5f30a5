package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// BackupClient stands in for the external project backup service. The call is
// awaited by the store: a project may only be removed after a backup id has
// been issued.
type BackupClient struct {
	delay time.Duration
}

func NewBackupClient(delay time.Duration) *BackupClient {
	return &BackupClient{delay: delay}
}

func (c *BackupClient) BackupProject(ctx context.Context, projectID int64) (string, error) {
	if c.delay > 0 {
		timer := time.NewTimer(c.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	backupID := fmt.Sprintf("bk_%d_%s", projectID, uuid.NewString())
	slog.Info("project backup completed", "project_id", projectID, "backup_id", backupID)
	return backupID, nil
}
