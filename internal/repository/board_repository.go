package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
)

// BoardRepository mediates whole-document persistence of board aggregates:
// load the entire document, mutate an in-memory copy, write the entire
// document back under compare-and-swap semantics.
type BoardRepository interface {
	Create(ctx context.Context, board *domain.Board) error
	// Get returns the board and the version token to pass back to Save.
	Get(ctx context.Context, id uuid.UUID) (*domain.Board, int64, error)
	// Save overwrites the document if its stored version still equals
	// expectedVersion, and returns ErrVersionConflict otherwise.
	Save(ctx context.Context, board *domain.Board, expectedVersion int64) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*domain.Board, error)
	Count(ctx context.Context) (int64, error)
}

// cachedDocument is the redis representation of a board document
type cachedDocument struct {
	Version int64           `json:"version"`
	Data    json.RawMessage `json:"data"`
}

type boardRepositoryImpl struct {
	db       *gorm.DB
	cache    *redis.Client
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewBoardRepository creates a board repository over the given database.
// cache may be nil to disable the redis read-through layer.
func NewBoardRepository(db *gorm.DB, cache *redis.Client, cacheTTL time.Duration, logger *zap.Logger) BoardRepository {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &boardRepositoryImpl{db: db, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

func cacheKey(id uuid.UUID) string {
	return "board:" + id.String()
}

// Create inserts a new board document at version 1
func (r *boardRepositoryImpl) Create(ctx context.Context, board *domain.Board) error {
	data, err := json.Marshal(board)
	if err != nil {
		return err
	}
	doc := &BoardDocument{
		ID:        board.ID,
		Title:     board.Title,
		Data:      data,
		Version:   1,
		CreatedAt: board.CreatedAt,
		UpdatedAt: board.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(doc).Error; err != nil {
		return err
	}
	r.cacheSet(ctx, board.ID, 1, data)
	return nil
}

// Get loads a board document, consulting the redis cache first
func (r *boardRepositoryImpl) Get(ctx context.Context, id uuid.UUID) (*domain.Board, int64, error) {
	if cached, ok := r.cacheGet(ctx, id); ok {
		board := &domain.Board{}
		if err := json.Unmarshal(cached.Data, board); err == nil {
			return board, cached.Version, nil
		}
		// fall through to the database on a corrupt cache entry
	}

	var doc BoardDocument
	if err := r.db.WithContext(ctx).First(&doc, "id = ?", id).Error; err != nil {
		return nil, 0, err
	}
	board := &domain.Board{}
	if err := json.Unmarshal(doc.Data, board); err != nil {
		return nil, 0, err
	}
	r.cacheSet(ctx, id, doc.Version, doc.Data)
	return board, doc.Version, nil
}

// Save performs the compare-and-swap whole-document overwrite
func (r *boardRepositoryImpl) Save(ctx context.Context, board *domain.Board, expectedVersion int64) error {
	data, err := json.Marshal(board)
	if err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Model(&BoardDocument{}).
		Where("id = ? AND version = ?", board.ID, expectedVersion).
		Updates(map[string]any{
			"title":      board.Title,
			"data":       datatypes.JSON(data),
			"version":    expectedVersion + 1,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&BoardDocument{}).Where("id = ?", board.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return ErrVersionConflict
	}
	r.cacheSet(ctx, board.ID, expectedVersion+1, data)
	return nil
}

// Delete removes a board document
func (r *boardRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&BoardDocument{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	r.cacheDel(ctx, id)
	return nil
}

// List loads every board document, most recently created first
func (r *boardRepositoryImpl) List(ctx context.Context) ([]*domain.Board, error) {
	var docs []BoardDocument
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&docs).Error; err != nil {
		return nil, err
	}
	boards := make([]*domain.Board, 0, len(docs))
	for i := range docs {
		board := &domain.Board{}
		if err := json.Unmarshal(docs[i].Data, board); err != nil {
			r.logger.Warn("Skipping undecodable board document",
				zap.String("board_id", docs[i].ID.String()),
				zap.Error(err))
			continue
		}
		boards = append(boards, board)
	}
	return boards, nil
}

// Count returns the number of persisted boards
func (r *boardRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&BoardDocument{}).Count(&count).Error
	return count, err
}

func (r *boardRepositoryImpl) cacheGet(ctx context.Context, id uuid.UUID) (*cachedDocument, bool) {
	if r.cache == nil {
		return nil, false
	}
	raw, err := r.cache.Get(ctx, cacheKey(id)).Bytes()
	if err != nil {
		return nil, false
	}
	cached := &cachedDocument{}
	if err := json.Unmarshal(raw, cached); err != nil {
		return nil, false
	}
	return cached, true
}

func (r *boardRepositoryImpl) cacheSet(ctx context.Context, id uuid.UUID, version int64, data []byte) {
	if r.cache == nil {
		return
	}
	raw, err := json.Marshal(cachedDocument{Version: version, Data: data})
	if err != nil {
		return
	}
	if err := r.cache.Set(ctx, cacheKey(id), raw, r.cacheTTL).Err(); err != nil {
		r.logger.Warn("Failed to cache board document", zap.String("board_id", id.String()), zap.Error(err))
	}
}

func (r *boardRepositoryImpl) cacheDel(ctx context.Context, id uuid.UUID) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Del(ctx, cacheKey(id)).Err(); err != nil {
		r.logger.Warn("Failed to invalidate board cache", zap.String("board_id", id.String()), zap.Error(err))
	}
}
