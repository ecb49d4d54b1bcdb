package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/validation"
)

// ColumnService defines the interface for column operations on a board
type ColumnService interface {
	AddColumn(ctx context.Context, boardID uuid.UUID, req *dto.CreateColumnRequest) (*dto.BoardDetailResponse, error)
	UpdateColumn(ctx context.Context, boardID, columnID uuid.UUID, req *dto.UpdateColumnRequest) (*dto.BoardDetailResponse, error)
	DeleteColumn(ctx context.Context, boardID, columnID uuid.UUID) (*dto.BoardDetailResponse, error)
	ReorderColumns(ctx context.Context, boardID uuid.UUID, req *dto.ReorderColumnsRequest) (*dto.BoardDetailResponse, error)
}

// columnServiceImpl is the implementation of ColumnService
type columnServiceImpl struct {
	boards  repository.BoardRepository
	locker  *BoardLocker
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewColumnService creates a new instance of ColumnService
func NewColumnService(
	boards repository.BoardRepository,
	locker *BoardLocker,
	m *metrics.Metrics,
	logger *zap.Logger,
) ColumnService {
	return &columnServiceImpl{boards: boards, locker: locker, metrics: m, logger: logger}
}

// AddColumn inserts a new column at the requested (clamped) position,
// appending when no position is given
func (s *columnServiceImpl) AddColumn(ctx context.Context, boardID uuid.UUID, req *dto.CreateColumnRequest) (*dto.BoardDetailResponse, error) {
	if err := validation.ValidateColumnCreate(req); err != nil {
		return nil, err
	}
	board, err := mutateBoard(ctx, s.boards, s.locker, s.metrics, boardID, func(board *domain.Board) error {
		if err := validation.CheckColumnTitleUnique(board, req.Title, uuid.Nil); err != nil {
			return err
		}
		position := len(board.Columns)
		if req.Position != nil {
			position = *req.Position
		}
		col := domain.NewColumn(req.Title, position)
		col.Color = req.Color
		if req.WipLimit != nil {
			limit := *req.WipLimit
			col.WipLimit = &limit
		}
		board.InsertColumnAt(col, position)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Column added",
		zap.String("board_id", boardID.String()),
		zap.String("title", req.Title),
	)
	return dto.ToBoardDetailResponse(board), nil
}

// UpdateColumn patches a column's title, WIP limit and color
func (s *columnServiceImpl) UpdateColumn(ctx context.Context, boardID, columnID uuid.UUID, req *dto.UpdateColumnRequest) (*dto.BoardDetailResponse, error) {
	if err := validation.ValidateColumnUpdate(req); err != nil {
		return nil, err
	}
	board, err := mutateBoard(ctx, s.boards, s.locker, s.metrics, boardID, func(board *domain.Board) error {
		col := board.ColumnByID(columnID)
		if col == nil {
			return response.NewAppError(response.ErrCodeNotFound, "Column not found")
		}
		if req.Title != nil {
			if err := validation.CheckColumnTitleUnique(board, *req.Title, columnID); err != nil {
				return err
			}
			col.Title = *req.Title
		}
		if req.ClearWipLimit {
			col.WipLimit = nil
		} else if req.WipLimit != nil {
			limit := *req.WipLimit
			col.WipLimit = &limit
		}
		if req.Color != nil {
			col.Color = *req.Color
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.ToBoardDetailResponse(board), nil
}

// DeleteColumn removes an empty column and renumbers the rest. A column
// still holding cards fails with a conflict: cards must be moved or
// deleted first, preventing orphans.
func (s *columnServiceImpl) DeleteColumn(ctx context.Context, boardID, columnID uuid.UUID) (*dto.BoardDetailResponse, error) {
	board, err := mutateBoard(ctx, s.boards, s.locker, s.metrics, boardID, func(board *domain.Board) error {
		col := board.ColumnByID(columnID)
		if col == nil {
			return response.NewAppError(response.ErrCodeNotFound, "Column not found")
		}
		if err := validation.CheckColumnNotEmpty(board, col); err != nil {
			return err
		}
		board.RemoveColumn(columnID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Column deleted",
		zap.String("board_id", boardID.String()),
		zap.String("column_id", columnID.String()),
	)
	return dto.ToBoardDetailResponse(board), nil
}

// ReorderColumns assigns position = index for the given complete order
func (s *columnServiceImpl) ReorderColumns(ctx context.Context, boardID uuid.UUID, req *dto.ReorderColumnsRequest) (*dto.BoardDetailResponse, error) {
	board, err := mutateBoard(ctx, s.boards, s.locker, s.metrics, boardID, func(board *domain.Board) error {
		if err := validation.CheckColumnOrder(board, req.ColumnIDs); err != nil {
			return err
		}
		board.ApplyColumnOrder(req.ColumnIDs)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.ToBoardDetailResponse(board), nil
}
