// Package job runs scheduled background work: periodic snapshots of every
// board document to local disk and, when configured, to S3.
package job

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"kanban-board-api/internal/client"
	"kanban-board-api/internal/repository"
)

// BackupJob snapshots all board documents on a cron schedule. Snapshots are
// written with a temp file plus rename, so a crash mid-write never leaves a
// truncated backup behind.
type BackupJob struct {
	boards   repository.BoardRepository
	store    client.ObjectStore // nil disables the S3 upload
	dir      string
	schedule string
	logger   *zap.Logger

	cron *cron.Cron
}

// NewBackupJob creates a backup job. schedule is a standard 5-field cron
// expression.
func NewBackupJob(
	boards repository.BoardRepository,
	store client.ObjectStore,
	dir string,
	schedule string,
	logger *zap.Logger,
) *BackupJob {
	return &BackupJob{
		boards:   boards,
		store:    store,
		dir:      dir,
		schedule: schedule,
		logger:   logger,
	}
}

// Start registers the schedule and starts the cron runner
func (j *BackupJob) Start() error {
	j.cron = cron.New()
	if _, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := j.RunOnce(ctx); err != nil {
			j.logger.Error("Scheduled backup failed", zap.Error(err))
		}
	}); err != nil {
		return fmt.Errorf("invalid backup schedule %q: %w", j.schedule, err)
	}
	j.cron.Start()
	j.logger.Info("Backup job started", zap.String("schedule", j.schedule))
	return nil
}

// Stop stops the cron runner and waits for a running backup to finish
func (j *BackupJob) Stop() {
	if j.cron == nil {
		return
	}
	<-j.cron.Stop().Done()
	j.logger.Info("Backup job stopped")
}

// RunOnce backs up every board immediately. Failures on individual boards
// are logged and skipped so one broken document cannot block the rest.
func (j *BackupJob) RunOnce(ctx context.Context) error {
	boards, err := j.boards.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list boards for backup: %w", err)
	}
	stamp := time.Now().UTC().Format("20060102T150405Z")
	dir := filepath.Join(j.dir, stamp)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}

	backed := 0
	for _, board := range boards {
		data, err := json.MarshalIndent(board, "", "  ")
		if err != nil {
			j.logger.Error("Skipping board, marshal failed",
				zap.String("board_id", board.ID.String()), zap.Error(err))
			continue
		}
		path := filepath.Join(dir, fmt.Sprintf("board_%s.json", board.ID))
		if err := writeFileAtomic(path, data); err != nil {
			j.logger.Error("Skipping board, write failed",
				zap.String("board_id", board.ID.String()), zap.Error(err))
			continue
		}
		if j.store != nil {
			key := j.store.BackupKey(board.ID)
			if _, err := j.store.Upload(ctx, key, bytes.NewReader(data), "application/json"); err != nil {
				j.logger.Warn("S3 upload failed, local snapshot kept",
					zap.String("board_id", board.ID.String()), zap.Error(err))
			}
		}
		backed++
	}
	j.logger.Info("Backup finished",
		zap.Int("boards", backed),
		zap.Int("total", len(boards)),
		zap.String("dir", dir),
	)
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
