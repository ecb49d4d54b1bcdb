package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
)

// configDocumentID is the fixed primary key of the singleton row
const configDocumentID = 1

// ConfigRepository persists the singleton global configuration document
type ConfigRepository interface {
	// Get returns the stored configuration, creating the default document
	// on first access.
	Get(ctx context.Context) (*domain.GlobalConfig, error)
	Save(ctx context.Context, cfg *domain.GlobalConfig) error
}

type configRepositoryImpl struct {
	db *gorm.DB
}

// NewConfigRepository creates a config repository over the given database
func NewConfigRepository(db *gorm.DB) ConfigRepository {
	return &configRepositoryImpl{db: db}
}

func (r *configRepositoryImpl) Get(ctx context.Context) (*domain.GlobalConfig, error) {
	var doc ConfigDocument
	err := r.db.WithContext(ctx).First(&doc, "id = ?", configDocumentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cfg := domain.DefaultGlobalConfig()
		if err := r.Save(ctx, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	cfg := &domain.GlobalConfig{}
	if err := json.Unmarshal(doc.Data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (r *configRepositoryImpl) Save(ctx context.Context, cfg *domain.GlobalConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	doc := &ConfigDocument{
		ID:        configDocumentID,
		Data:      datatypes.JSON(data),
		UpdatedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Save(doc).Error
}
