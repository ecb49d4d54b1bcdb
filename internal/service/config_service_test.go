package service

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
)

// memoryConfigRepo backs the config service tests with a mutable document
func memoryConfigRepo(initial *domain.GlobalConfig) *MockConfigRepository {
	stored := initial
	return &MockConfigRepository{
		GetFunc: func(ctx context.Context) (*domain.GlobalConfig, error) {
			if stored == nil {
				return domain.DefaultGlobalConfig(), nil
			}
			doc := *stored
			doc.DefaultColumns = append([]string(nil), stored.DefaultColumns...)
			return &doc, nil
		},
		SaveFunc: func(ctx context.Context, cfg *domain.GlobalConfig) error {
			stored = cfg
			return nil
		},
	}
}

func TestUpdateConfigMergesPatch(t *testing.T) {
	repo := memoryConfigRepo(domain.DefaultGlobalConfig())
	svc := NewConfigService(repo, t.TempDir(), zap.NewNop())

	theme := "solarized"
	cfg, err := svc.UpdateConfig(context.Background(), &dto.UpdateGlobalConfigRequest{
		DefaultColumns:  []string{"Inbox", "Done"},
		DefaultSettings: &dto.SettingsPayload{Theme: &theme},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Inbox", "Done"}, cfg.DefaultColumns)
	assert.Equal(t, "solarized", cfg.DefaultSettings.Theme)
	assert.True(t, cfg.DefaultSettings.ShowCardCount, "absent settings keep their value")
}

func TestUpdateConfigRejectsEmptyColumnList(t *testing.T) {
	svc := NewConfigService(memoryConfigRepo(nil), t.TempDir(), zap.NewNop())

	_, err := svc.UpdateConfig(context.Background(), &dto.UpdateGlobalConfigRequest{
		DefaultColumns: []string{},
	})
	assert.Equal(t, response.ErrCodeValidation, appErrCode(t, err))
}

func TestResetConfigSnapshotsThenRestoresDefaults(t *testing.T) {
	custom := &domain.GlobalConfig{
		DefaultColumns:  []string{"Only Lane"},
		DefaultSettings: domain.Settings{Theme: "custom"},
	}
	repo := memoryConfigRepo(custom)
	backupDir := t.TempDir()
	svc := NewConfigService(repo, backupDir, zap.NewNop())

	cfg, err := svc.ResetConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultGlobalConfig().DefaultColumns, cfg.DefaultColumns)

	entries, err := os.ReadDir(backupDir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "reset leaves exactly one snapshot behind")

	data, err := os.ReadFile(filepath.Join(backupDir, entries[0].Name()))
	require.NoError(t, err)
	snapshot := &domain.GlobalConfig{}
	require.NoError(t, json.Unmarshal(data, snapshot))
	assert.Equal(t, []string{"Only Lane"}, snapshot.DefaultColumns, "the snapshot holds the pre-reset document")
}

func TestResetConfigFailsWhenSnapshotCannotBeWritten(t *testing.T) {
	saved := false
	repo := memoryConfigRepo(domain.DefaultGlobalConfig())
	repo.SaveFunc = func(ctx context.Context, cfg *domain.GlobalConfig) error {
		saved = true
		return nil
	}
	// a regular file where the backup directory should be
	dir := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(dir, []byte("x"), 0o644))
	svc := NewConfigService(repo, dir, zap.NewNop())

	_, err := svc.ResetConfig(context.Background())
	assert.Equal(t, response.ErrCodeInternal, appErrCode(t, err))
	assert.False(t, saved, "defaults are not written when the snapshot fails")
}

func TestGetConfigMapsStoreErrors(t *testing.T) {
	repo := &MockConfigRepository{
		GetFunc: func(ctx context.Context) (*domain.GlobalConfig, error) {
			return nil, errors.New("disk gone")
		},
	}
	svc := NewConfigService(repo, t.TempDir(), zap.NewNop())

	_, err := svc.GetConfig(context.Background())
	assert.Equal(t, response.ErrCodeInternal, appErrCode(t, err))
}
