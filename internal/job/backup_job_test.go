package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kanban-board-api/internal/client"
	"kanban-board-api/internal/domain"
)

// stubBoardRepository serves a fixed board list to the backup job
type stubBoardRepository struct {
	boards  []*domain.Board
	listErr error
}

func (s *stubBoardRepository) Create(ctx context.Context, board *domain.Board) error { return nil }
func (s *stubBoardRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Board, int64, error) {
	return nil, 0, errors.New("not implemented")
}
func (s *stubBoardRepository) Save(ctx context.Context, board *domain.Board, expectedVersion int64) error {
	return nil
}
func (s *stubBoardRepository) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (s *stubBoardRepository) List(ctx context.Context) ([]*domain.Board, error) {
	return s.boards, s.listErr
}
func (s *stubBoardRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(s.boards)), nil
}

func testBoards(n int) []*domain.Board {
	boards := make([]*domain.Board, 0, n)
	for i := 0; i < n; i++ {
		boards = append(boards, domain.NewBoard(fmt.Sprintf("Board %d", i), []string{"To Do", "Done"}, nil))
	}
	return boards
}

func snapshotFiles(t *testing.T, dir string) []string {
	t.Helper()
	stamps, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, stamps, 1, "one timestamped directory per run")
	files, err := os.ReadDir(filepath.Join(dir, stamps[0].Name()))
	require.NoError(t, err)
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, filepath.Join(dir, stamps[0].Name(), f.Name()))
	}
	return names
}

func TestRunOnceWritesOneSnapshotPerBoard(t *testing.T) {
	boards := testBoards(3)
	dir := t.TempDir()
	job := NewBackupJob(&stubBoardRepository{boards: boards}, nil, dir, "0 3 * * *", zap.NewNop())

	require.NoError(t, job.RunOnce(context.Background()))

	files := snapshotFiles(t, dir)
	require.Len(t, files, 3)

	// every snapshot decodes back into its board
	seen := make(map[uuid.UUID]bool)
	for _, path := range files {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		board := &domain.Board{}
		require.NoError(t, json.Unmarshal(data, board))
		seen[board.ID] = true
	}
	for _, board := range boards {
		assert.True(t, seen[board.ID], "board %s missing from snapshot", board.ID)
	}
}

func TestRunOnceUploadsWhenStoreConfigured(t *testing.T) {
	boards := testBoards(2)
	store := client.NewMockObjectStore()
	job := NewBackupJob(&stubBoardRepository{boards: boards}, store, t.TempDir(), "0 3 * * *", zap.NewNop())

	require.NoError(t, job.RunOnce(context.Background()))
	assert.Len(t, store.Objects, 2)
	for key := range store.Objects {
		assert.Contains(t, key, "backups/")
	}
}

func TestRunOnceKeepsLocalSnapshotsWhenUploadFails(t *testing.T) {
	boards := testBoards(2)
	store := client.NewMockObjectStore()
	store.UploadFunc = func(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
		return "", errors.New("bucket gone")
	}
	dir := t.TempDir()
	job := NewBackupJob(&stubBoardRepository{boards: boards}, store, dir, "0 3 * * *", zap.NewNop())

	require.NoError(t, job.RunOnce(context.Background()), "upload failures are not fatal")
	assert.Len(t, snapshotFiles(t, dir), 2)
}

func TestRunOnceFailsWhenListingFails(t *testing.T) {
	job := NewBackupJob(&stubBoardRepository{listErr: errors.New("store offline")}, nil, t.TempDir(), "0 3 * * *", zap.NewNop())
	assert.Error(t, job.RunOnce(context.Background()))
}

func TestStartRejectsBadSchedule(t *testing.T) {
	job := NewBackupJob(&stubBoardRepository{}, nil, t.TempDir(), "not a schedule", zap.NewNop())
	assert.Error(t, job.Start())
}

func TestStartAndStop(t *testing.T) {
	job := NewBackupJob(&stubBoardRepository{}, nil, t.TempDir(), "0 3 * * *", zap.NewNop())
	require.NoError(t, job.Start())
	job.Stop()
}
