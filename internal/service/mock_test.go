package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/repository"
)

// MockBoardRepository is a mock implementation of BoardRepository
type MockBoardRepository struct {
	CreateFunc func(ctx context.Context, board *domain.Board) error
	GetFunc    func(ctx context.Context, id uuid.UUID) (*domain.Board, int64, error)
	SaveFunc   func(ctx context.Context, board *domain.Board, expectedVersion int64) error
	DeleteFunc func(ctx context.Context, id uuid.UUID) error
	ListFunc   func(ctx context.Context) ([]*domain.Board, error)
	CountFunc  func(ctx context.Context) (int64, error)
}

func (m *MockBoardRepository) Create(ctx context.Context, board *domain.Board) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, board)
	}
	return nil
}

func (m *MockBoardRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Board, int64, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, 0, gorm.ErrRecordNotFound
}

func (m *MockBoardRepository) Save(ctx context.Context, board *domain.Board, expectedVersion int64) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, board, expectedVersion)
	}
	return nil
}

func (m *MockBoardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockBoardRepository) List(ctx context.Context) ([]*domain.Board, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockBoardRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockConfigRepository is a mock implementation of ConfigRepository
type MockConfigRepository struct {
	GetFunc  func(ctx context.Context) (*domain.GlobalConfig, error)
	SaveFunc func(ctx context.Context, cfg *domain.GlobalConfig) error
}

func (m *MockConfigRepository) Get(ctx context.Context) (*domain.GlobalConfig, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return domain.DefaultGlobalConfig(), nil
}

func (m *MockConfigRepository) Save(ctx context.Context, cfg *domain.GlobalConfig) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, cfg)
	}
	return nil
}

// MockTemplateRepository is a mock implementation of TemplateRepository
type MockTemplateRepository struct {
	GetFunc          func(ctx context.Context, id uuid.UUID) (*domain.BoardTemplate, error)
	ListFunc         func(ctx context.Context, category string) ([]*domain.BoardTemplate, error)
	CreateFunc       func(ctx context.Context, template *domain.BoardTemplate) error
	SeedBuiltinsFunc func(ctx context.Context) error
}

func (m *MockTemplateRepository) Get(ctx context.Context, id uuid.UUID) (*domain.BoardTemplate, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockTemplateRepository) List(ctx context.Context, category string) ([]*domain.BoardTemplate, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, category)
	}
	return nil, nil
}

func (m *MockTemplateRepository) Create(ctx context.Context, template *domain.BoardTemplate) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, template)
	}
	return nil
}

func (m *MockTemplateRepository) SeedBuiltins(ctx context.Context) error {
	if m.SeedBuiltinsFunc != nil {
		return m.SeedBuiltinsFunc(ctx)
	}
	return nil
}

// memoryBoardStore is an in-memory BoardRepository with real
// compare-and-swap semantics, for tests that exercise whole mutation
// cycles without a database.
type memoryBoardStore struct {
	mu     sync.Mutex
	boards map[uuid.UUID][]byte
	vers   map[uuid.UUID]int64
}

func newMemoryBoardStore() *memoryBoardStore {
	return &memoryBoardStore{
		boards: make(map[uuid.UUID][]byte),
		vers:   make(map[uuid.UUID]int64),
	}
}

func (s *memoryBoardStore) Create(ctx context.Context, board *domain.Board) error {
	data, err := json.Marshal(board)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boards[board.ID] = data
	s.vers[board.ID] = 1
	return nil
}

func (s *memoryBoardStore) Get(ctx context.Context, id uuid.UUID) (*domain.Board, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.boards[id]
	if !ok {
		return nil, 0, gorm.ErrRecordNotFound
	}
	board := &domain.Board{}
	if err := json.Unmarshal(data, board); err != nil {
		return nil, 0, err
	}
	return board, s.vers[id], nil
}

func (s *memoryBoardStore) Save(ctx context.Context, board *domain.Board, expectedVersion int64) error {
	data, err := json.Marshal(board)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.boards[board.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	if s.vers[board.ID] != expectedVersion {
		return repository.ErrVersionConflict
	}
	s.boards[board.ID] = data
	s.vers[board.ID] = expectedVersion + 1
	return nil
}

func (s *memoryBoardStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.boards[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.boards, id)
	delete(s.vers, id)
	return nil
}

func (s *memoryBoardStore) List(ctx context.Context) ([]*domain.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	boards := make([]*domain.Board, 0, len(s.boards))
	for _, data := range s.boards {
		board := &domain.Board{}
		if err := json.Unmarshal(data, board); err != nil {
			return nil, err
		}
		boards = append(boards, board)
	}
	return boards, nil
}

func (s *memoryBoardStore) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.boards)), nil
}
