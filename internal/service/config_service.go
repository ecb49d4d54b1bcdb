package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/validation"
)

// ConfigService defines the interface for the global configuration document
type ConfigService interface {
	GetConfig(ctx context.Context) (*domain.GlobalConfig, error)
	UpdateConfig(ctx context.Context, req *dto.UpdateGlobalConfigRequest) (*domain.GlobalConfig, error)
	// ResetConfig restores the factory defaults, snapshotting the current
	// document to the backup directory first.
	ResetConfig(ctx context.Context) (*domain.GlobalConfig, error)
}

// configServiceImpl is the implementation of ConfigService
type configServiceImpl struct {
	config    repository.ConfigRepository
	backupDir string
	logger    *zap.Logger
}

// NewConfigService creates a new instance of ConfigService
func NewConfigService(config repository.ConfigRepository, backupDir string, logger *zap.Logger) ConfigService {
	return &configServiceImpl{config: config, backupDir: backupDir, logger: logger}
}

func (s *configServiceImpl) GetConfig(ctx context.Context) (*domain.GlobalConfig, error) {
	cfg, err := s.config.Get(ctx)
	if err != nil {
		return nil, mapStoreError(err, "Configuration")
	}
	return cfg, nil
}

// UpdateConfig merges the request into the stored document. Absent fields
// keep their current value.
func (s *configServiceImpl) UpdateConfig(ctx context.Context, req *dto.UpdateGlobalConfigRequest) (*domain.GlobalConfig, error) {
	if err := validation.ValidateGlobalConfigUpdate(req); err != nil {
		return nil, err
	}
	cfg, err := s.config.Get(ctx)
	if err != nil {
		return nil, mapStoreError(err, "Configuration")
	}
	if req.DefaultColumns != nil {
		cfg.DefaultColumns = append([]string(nil), req.DefaultColumns...)
	}
	req.DefaultSettings.Apply(&cfg.DefaultSettings)
	if err := s.config.Save(ctx, cfg); err != nil {
		return nil, mapStoreError(err, "Configuration")
	}
	s.logger.Info("Global configuration updated")
	return cfg, nil
}

func (s *configServiceImpl) ResetConfig(ctx context.Context) (*domain.GlobalConfig, error) {
	current, err := s.config.Get(ctx)
	if err != nil {
		return nil, mapStoreError(err, "Configuration")
	}
	if err := s.snapshot(current); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal,
			"Could not back up the current configuration").
			WithDetails(map[string]any{"cause": err.Error()})
	}
	cfg := domain.DefaultGlobalConfig()
	if err := s.config.Save(ctx, cfg); err != nil {
		return nil, mapStoreError(err, "Configuration")
	}
	s.logger.Info("Global configuration reset to defaults")
	return cfg, nil
}

// snapshot writes the current document to the backup directory using a
// temp file plus rename, so a crash mid-write never leaves a truncated
// backup behind.
func (s *configServiceImpl) snapshot(cfg *domain.GlobalConfig) error {
	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	name := fmt.Sprintf("config-%s.json", time.Now().UTC().Format("20060102T150405Z"))
	return atomicWrite(filepath.Join(s.backupDir, name), data)
}

// atomicWrite writes data to path via a temp file in the same directory
// followed by a rename
func atomicWrite(path string, data []byte) error {
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
