package validation

import (
	"fmt"
	"sort"
	"strings"

	"kanban-board-api/internal/domain"
)

// Audit issue codes
const (
	IssueColumnPositions      = "COLUMN_POSITIONS_NOT_SEQUENTIAL"
	IssueOrphanedCard         = "ORPHANED_CARD"
	IssueDuplicateCardPos     = "DUPLICATE_CARD_POSITION"
	IssueCardPositionsSparse  = "CARD_POSITIONS_NOT_SEQUENTIAL"
	IssueDuplicateColumnTitle = "DUPLICATE_COLUMN_TITLE"
)

// Issue describes one integrity finding
type Issue struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// IntegrityReport is the result of a read-only whole-board audit
type IntegrityReport struct {
	IsValid bool    `json:"isValid"`
	Issues  []Issue `json:"issues"`
}

// AuditBoard runs the whole-board integrity audit. It never fails for an
// unhealthy board; findings are reported as issues. The audit is pure:
// two runs over the same document return identical reports.
func AuditBoard(board *domain.Board) *IntegrityReport {
	issues := []Issue{}

	positions := make([]int, 0, len(board.Columns))
	for i := range board.Columns {
		positions = append(positions, board.Columns[i].Position)
	}
	if !isDense(positions) {
		issues = append(issues, Issue{
			Code:    IssueColumnPositions,
			Message: "Column positions do not form the sequence 0..n-1",
			Details: map[string]any{"positions": positions},
		})
	}

	titles := make(map[string]int)
	for i := range board.Columns {
		titles[strings.ToLower(board.Columns[i].Title)]++
	}
	for _, col := range board.Columns {
		if titles[strings.ToLower(col.Title)] > 1 {
			issues = append(issues, Issue{
				Code:    IssueDuplicateColumnTitle,
				Message: fmt.Sprintf("Column title %q is used by more than one column", col.Title),
				Details: map[string]any{"columnId": col.ID, "title": col.Title},
			})
			titles[strings.ToLower(col.Title)] = 0 // report each duplicated title once
		}
	}

	cardPositions := make(map[string][]int)
	for i := range board.Cards {
		card := &board.Cards[i]
		if board.ColumnByID(card.ColumnID) == nil {
			issues = append(issues, Issue{
				Code:    IssueOrphanedCard,
				Message: fmt.Sprintf("Card %q references a column that does not exist", card.Title),
				Details: map[string]any{"cardId": card.ID, "columnId": card.ColumnID},
			})
			continue
		}
		key := card.ColumnID.String()
		cardPositions[key] = append(cardPositions[key], card.Position)
	}

	for i := range board.Columns {
		col := &board.Columns[i]
		positions := cardPositions[col.ID.String()]
		if hasDuplicates(positions) {
			issues = append(issues, Issue{
				Code:    IssueDuplicateCardPos,
				Message: fmt.Sprintf("Column %q holds cards with duplicate positions", col.Title),
				Details: map[string]any{"columnId": col.ID, "positions": positions},
			})
		} else if !isDense(positions) {
			issues = append(issues, Issue{
				Code:    IssueCardPositionsSparse,
				Message: fmt.Sprintf("Card positions in column %q do not form the sequence 0..k-1", col.Title),
				Details: map[string]any{"columnId": col.ID, "positions": positions},
			})
		}
	}

	return &IntegrityReport{IsValid: len(issues) == 0, Issues: issues}
}

// isDense reports whether the positions form the permutation [0..n-1]
func isDense(positions []int) bool {
	sorted := append([]int(nil), positions...)
	sort.Ints(sorted)
	for i, p := range sorted {
		if p != i {
			return false
		}
	}
	return true
}

func hasDuplicates(positions []int) bool {
	seen := make(map[int]bool, len(positions))
	for _, p := range positions {
		if seen[p] {
			return true
		}
		seen[p] = true
	}
	return false
}
