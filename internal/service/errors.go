package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/response"
)

// mapStoreError converts repository errors into AppErrors with stable codes.
// AppErrors raised deeper in the mutation pass through unchanged.
func mapStoreError(err error, entity string) error {
	var appErr *response.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response.NewAppError(response.ErrCodeNotFound, entity+" not found")
	}
	if errors.Is(err, repository.ErrVersionConflict) {
		return response.NewAppError(response.ErrCodeVersionConflict,
			"Board was modified concurrently; reload and retry")
	}
	return response.NewAppError(response.ErrCodeInternal, "Document store operation failed").
		WithDetails(map[string]any{"cause": err.Error()})
}

// mutateBoard runs one load-mutate-validate-save cycle under the board's
// lock. The mutation receives a private clone: validation or business-rule
// failures surface before anything is written, so a partial mutation is
// never persisted.
func mutateBoard(
	ctx context.Context,
	boards repository.BoardRepository,
	locker *BoardLocker,
	m *metrics.Metrics,
	boardID uuid.UUID,
	fn func(board *domain.Board) error,
) (*domain.Board, error) {
	unlock := locker.Lock(boardID)
	defer unlock()

	loaded, version, err := boards.Get(ctx, boardID)
	if err != nil {
		return nil, mapStoreError(err, "Board")
	}
	board := loaded.Clone()
	if err := fn(board); err != nil {
		return nil, err
	}
	board.Touch()
	if err := boards.Save(ctx, board, version); err != nil {
		if errors.Is(err, repository.ErrVersionConflict) && m != nil {
			m.IncrementVersionConflicts()
		}
		return nil, mapStoreError(err, "Board")
	}
	return board, nil
}
