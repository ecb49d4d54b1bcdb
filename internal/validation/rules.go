package validation

import (
	"fmt"

	"github.com/google/uuid"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/response"
)

// CheckWipLimit verifies that adding one more card to the column would not
// exceed its WIP limit. excludeCardID removes a card already counted in the
// column (the card being moved) from the tally; pass uuid.Nil for additions.
// The check is skipped when the board allows exceeding or the column has no
// limit.
func CheckWipLimit(board *domain.Board, column *domain.Column, excludeCardID uuid.UUID) *response.AppError {
	if board.Settings.AllowWipLimitExceeding || column.WipLimit == nil {
		return nil
	}
	count := 0
	for i := range board.Cards {
		if board.Cards[i].ColumnID == column.ID && board.Cards[i].ID != excludeCardID {
			count++
		}
	}
	if count >= *column.WipLimit {
		return response.NewAppError(response.ErrCodeWipLimitExceeded,
			fmt.Sprintf("Column %q is at its WIP limit", column.Title)).
			WithDetails(map[string]any{
				"columnId":     column.ID,
				"currentCount": count,
				"limit":        *column.WipLimit,
			})
	}
	return nil
}

// CheckColumnTitleUnique verifies no other column on the board already
// carries the given title. excludeColumnID skips the column being renamed.
func CheckColumnTitleUnique(board *domain.Board, title string, excludeColumnID uuid.UUID) *response.AppError {
	existing := board.ColumnByTitle(title)
	if existing != nil && existing.ID != excludeColumnID {
		return response.NewAppError(response.ErrCodeAlreadyExists,
			fmt.Sprintf("Column titled %q already exists on this board", title)).
			WithDetails(map[string]any{"columnId": existing.ID, "title": title})
	}
	return nil
}

// CheckCardPosition verifies a requested card position is within
// [0, siblingCount] of its target column
func CheckCardPosition(position, siblingCount int) *response.AppError {
	if position < 0 || position > siblingCount {
		return Error([]Violation{{
			Field:   "position",
			Value:   position,
			Message: fmt.Sprintf("must be between 0 and %d", siblingCount),
		}})
	}
	return nil
}

// CheckColumnNotEmpty verifies no card still references the column,
// which would be orphaned by its deletion
func CheckColumnNotEmpty(board *domain.Board, column *domain.Column) *response.AppError {
	count := board.CountInColumn(column.ID)
	if count > 0 {
		return response.NewAppError(response.ErrCodeColumnNotEmpty,
			fmt.Sprintf("Column %q still holds %d card(s); move or delete them first", column.Title, count)).
			WithDetails(map[string]any{"columnId": column.ID, "cardCount": count})
	}
	return nil
}

// CheckColumnOrder verifies the given order is an exact permutation of the
// board's column ids
func CheckColumnOrder(board *domain.Board, order []uuid.UUID) *response.AppError {
	invalid := func(message string, details map[string]any) *response.AppError {
		return response.NewAppError(response.ErrCodeInvalidColumnOrder, message).WithDetails(details)
	}
	if len(order) != len(board.Columns) {
		return invalid("Column order must list every column exactly once",
			map[string]any{"expected": len(board.Columns), "got": len(order)})
	}
	seen := make(map[uuid.UUID]bool, len(order))
	for _, id := range order {
		if seen[id] {
			return invalid("Column order contains a duplicate id", map[string]any{"columnId": id})
		}
		if board.ColumnByID(id) == nil {
			return invalid("Column order references an unknown column", map[string]any{"columnId": id})
		}
		seen[id] = true
	}
	return nil
}
