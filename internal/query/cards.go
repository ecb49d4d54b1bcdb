package query

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"kanban-board-api/internal/domain"
)

// Card sort fields (board sort fields plus priority)
const (
	CardSortTitle     = "title"
	CardSortCreatedAt = "createdAt"
	CardSortUpdatedAt = "updatedAt"
	CardSortPriority  = "priority"
	CardSortPosition  = "position"
)

// CardFilter describes one card query within a board
type CardFilter struct {
	Content     string     `form:"content"`
	ColumnID    *uuid.UUID `form:"-"` // parsed from the columnId query param by the handler
	Priority    string     `form:"priority"`
	Status      string     `form:"status"`
	Assignee    string     `form:"assignee"`
	Tags        []string   `form:"tags"`
	CreatedFrom *time.Time `form:"createdFrom" time_format:"2006-01-02T15:04:05Z07:00"`
	CreatedTo   *time.Time `form:"createdTo" time_format:"2006-01-02T15:04:05Z07:00"`
	UpdatedFrom *time.Time `form:"updatedFrom" time_format:"2006-01-02T15:04:05Z07:00"`
	UpdatedTo   *time.Time `form:"updatedTo" time_format:"2006-01-02T15:04:05Z07:00"`
	SortBy      string     `form:"sortBy"`
	SortOrder   string     `form:"sortOrder"`
	Offset      int        `form:"offset"`
	Limit       *int       `form:"limit"`
}

// Cards applies the filter to the board's cards and returns the page.
// The status filter matches the title of the card's current column
// (case-insensitive exact), since a card's workflow state is its column.
func Cards(board *domain.Board, f CardFilter) []domain.Card {
	matched := make([]domain.Card, 0, len(board.Cards))
	for i := range board.Cards {
		if cardMatches(board, &board.Cards[i], f) {
			matched = append(matched, board.Cards[i])
		}
	}
	sortCards(board, matched, f.SortBy, f.SortOrder)
	return paginateCards(matched, f.Offset, f.Limit)
}

func cardMatches(board *domain.Board, card *domain.Card, f CardFilter) bool {
	if f.Content != "" {
		needle := strings.ToLower(f.Content)
		if !strings.Contains(strings.ToLower(card.Title), needle) &&
			!strings.Contains(strings.ToLower(card.Description), needle) {
			return false
		}
	}
	if f.ColumnID != nil && card.ColumnID != *f.ColumnID {
		return false
	}
	if f.Priority != "" && card.Priority != domain.Priority(f.Priority) {
		return false
	}
	if f.Status != "" {
		col := board.ColumnByID(card.ColumnID)
		if col == nil || !strings.EqualFold(col.Title, f.Status) {
			return false
		}
	}
	if f.Assignee != "" && card.Assignee != f.Assignee {
		return false
	}
	if len(f.Tags) > 0 {
		any := false
		for _, tag := range f.Tags {
			if card.HasTag(tag) {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}
	if !inRange(card.CreatedAt, f.CreatedFrom, f.CreatedTo) {
		return false
	}
	if !inRange(card.UpdatedAt, f.UpdatedFrom, f.UpdatedTo) {
		return false
	}
	return true
}

func sortCards(board *domain.Board, cards []domain.Card, sortBy, order string) {
	colPos := make(map[uuid.UUID]int, len(board.Columns))
	for i := range board.Columns {
		colPos[board.Columns[i].ID] = board.Columns[i].Position
	}
	desc := order == OrderDesc
	sort.SliceStable(cards, func(i, j int) bool {
		a, b := &cards[i], &cards[j]
		if desc {
			a, b = b, a
		}
		switch sortBy {
		case CardSortTitle:
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		case CardSortCreatedAt:
			return a.CreatedAt.Before(b.CreatedAt)
		case CardSortUpdatedAt:
			return a.UpdatedAt.Before(b.UpdatedAt)
		case CardSortPriority:
			return a.Priority.Rank() < b.Priority.Rank()
		default:
			// board column order first, then position within the column
			if a.ColumnID != b.ColumnID {
				return colPos[a.ColumnID] < colPos[b.ColumnID]
			}
			return a.Position < b.Position
		}
	})
}

func paginateCards(cards []domain.Card, offset int, limit *int) []domain.Card {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(cards) {
		return []domain.Card{}
	}
	cards = cards[offset:]
	if limit != nil && *limit >= 0 && *limit < len(cards) {
		cards = cards[:*limit]
	}
	return cards
}
