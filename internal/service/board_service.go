package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/query"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/validation"
)

// BoardService defines the interface for board aggregate operations
type BoardService interface {
	CreateBoard(ctx context.Context, req *dto.CreateBoardRequest) (*dto.BoardResponse, error)
	GetBoard(ctx context.Context, boardID uuid.UUID) (*dto.BoardDetailResponse, error)
	ListBoards(ctx context.Context, filter *query.BoardFilter) ([]*dto.BoardResponse, error)
	UpdateBoard(ctx context.Context, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error)
	DeleteBoard(ctx context.Context, boardID uuid.UUID) error
	DuplicateBoard(ctx context.Context, boardID uuid.UUID, req *dto.DuplicateBoardRequest) (*dto.BoardResponse, error)
	ExportBoard(ctx context.Context, boardID uuid.UUID, format string) (*ExportResult, error)
	ImportBoard(ctx context.Context, doc *domain.Board) (*dto.BoardResponse, error)
	ValidateIntegrity(ctx context.Context, boardID uuid.UUID) (*validation.IntegrityReport, error)
}

// boardServiceImpl is the implementation of BoardService
type boardServiceImpl struct {
	boards  repository.BoardRepository
	config  repository.ConfigRepository
	locker  *BoardLocker
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewBoardService creates a new instance of BoardService
func NewBoardService(
	boards repository.BoardRepository,
	config repository.ConfigRepository,
	locker *BoardLocker,
	m *metrics.Metrics,
	logger *zap.Logger,
) BoardService {
	return &boardServiceImpl{
		boards:  boards,
		config:  config,
		locker:  locker,
		metrics: m,
		logger:  logger,
	}
}

// CreateBoard creates a new board from a title plus optional column names
// and settings overrides; omitted columns fall back to the global defaults
func (s *boardServiceImpl) CreateBoard(ctx context.Context, req *dto.CreateBoardRequest) (*dto.BoardResponse, error) {
	if err := validation.ValidateBoardCreate(req); err != nil {
		return nil, err
	}

	columns := req.Columns
	settings := domain.DefaultSettings()
	if globalCfg, err := s.config.Get(ctx); err == nil {
		if len(columns) == 0 {
			columns = globalCfg.DefaultColumns
		}
		settings = globalCfg.DefaultSettings
	} else {
		s.logger.Warn("Falling back to built-in defaults, global config unavailable", zap.Error(err))
		if len(columns) == 0 {
			columns = domain.DefaultGlobalConfig().DefaultColumns
		}
	}
	req.Settings.Apply(&settings)

	board := domain.NewBoard(req.Title, columns, &settings)
	board.Description = req.Description

	if err := s.boards.Create(ctx, board); err != nil {
		return nil, mapStoreError(err, "Board")
	}
	if s.metrics != nil {
		s.metrics.IncrementBoardCreated()
	}
	s.logger.Info("Board created",
		zap.String("board_id", board.ID.String()),
		zap.Int("columns", len(board.Columns)),
	)
	return dto.ToBoardResponse(board), nil
}

// GetBoard returns the full board with columns and their ordered cards
func (s *boardServiceImpl) GetBoard(ctx context.Context, boardID uuid.UUID) (*dto.BoardDetailResponse, error) {
	board, _, err := s.boards.Get(ctx, boardID)
	if err != nil {
		return nil, mapStoreError(err, "Board")
	}
	return dto.ToBoardDetailResponse(board), nil
}

// ListBoards applies the filter → sort → paginate pipeline over all boards
func (s *boardServiceImpl) ListBoards(ctx context.Context, filter *query.BoardFilter) ([]*dto.BoardResponse, error) {
	boards, err := s.boards.List(ctx)
	if err != nil {
		return nil, mapStoreError(err, "Board")
	}
	page := query.Boards(boards, *filter)
	out := make([]*dto.BoardResponse, 0, len(page))
	for _, board := range page {
		out = append(out, dto.ToBoardResponse(board))
	}
	return out, nil
}

// UpdateBoard patches the board's title, description and settings
func (s *boardServiceImpl) UpdateBoard(ctx context.Context, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error) {
	if err := validation.ValidateBoardUpdate(req); err != nil {
		return nil, err
	}
	board, err := mutateBoard(ctx, s.boards, s.locker, s.metrics, boardID, func(board *domain.Board) error {
		if req.Title != nil {
			board.Title = *req.Title
		}
		if req.Description != nil {
			board.Description = *req.Description
		}
		req.Settings.Apply(&board.Settings)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.ToBoardResponse(board), nil
}

// DeleteBoard removes the whole board document
func (s *boardServiceImpl) DeleteBoard(ctx context.Context, boardID uuid.UUID) error {
	unlock := s.locker.Lock(boardID)
	defer unlock()
	if err := s.boards.Delete(ctx, boardID); err != nil {
		return mapStoreError(err, "Board")
	}
	s.logger.Info("Board deleted", zap.String("board_id", boardID.String()))
	return nil
}

// DuplicateBoard deep-copies a board under new ids
func (s *boardServiceImpl) DuplicateBoard(ctx context.Context, boardID uuid.UUID, req *dto.DuplicateBoardRequest) (*dto.BoardResponse, error) {
	source, _, err := s.boards.Get(ctx, boardID)
	if err != nil {
		return nil, mapStoreError(err, "Board")
	}
	newTitle := ""
	if req != nil {
		newTitle = req.Title
	}
	copyBoard := source.Duplicate(newTitle)
	if err := s.boards.Create(ctx, copyBoard); err != nil {
		return nil, mapStoreError(err, "Board")
	}
	if s.metrics != nil {
		s.metrics.IncrementBoardCreated()
	}
	s.logger.Info("Board duplicated",
		zap.String("source_board_id", boardID.String()),
		zap.String("board_id", copyBoard.ID.String()),
	)
	return dto.ToBoardResponse(copyBoard), nil
}

// ValidateIntegrity runs the read-only whole-board audit. It fails only
// when the board cannot be loaded, never for an unhealthy board.
func (s *boardServiceImpl) ValidateIntegrity(ctx context.Context, boardID uuid.UUID) (*validation.IntegrityReport, error) {
	board, _, err := s.boards.Get(ctx, boardID)
	if err != nil {
		return nil, mapStoreError(err, "Board")
	}
	return validation.AuditBoard(board), nil
}

// ImportBoard re-creates a board from an exported JSON document under a
// fresh board id. Column and card ids inside the document are preserved so
// an export/import round trip reproduces the board exactly.
func (s *boardServiceImpl) ImportBoard(ctx context.Context, doc *domain.Board) (*dto.BoardResponse, error) {
	if err := validation.ValidateImportedBoard(doc); err != nil {
		return nil, err
	}
	board := doc.Clone()
	board.ID = uuid.New()
	board.Touch()

	if err := s.boards.Create(ctx, board); err != nil {
		return nil, mapStoreError(err, "Board")
	}
	if s.metrics != nil {
		s.metrics.IncrementBoardCreated()
	}
	s.logger.Info("Board imported", zap.String("board_id", board.ID.String()))
	return dto.ToBoardResponse(board), nil
}
