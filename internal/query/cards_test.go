package query

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanban-board-api/internal/domain"
)

func cardBoard() *domain.Board {
	b := domain.NewBoard("board", []string{"To Do", "In Progress", "Done"}, nil)
	add := func(column int, title string, priority domain.Priority, assignee string, tags ...string) {
		card := domain.NewCard(b.Columns[column].ID, title)
		card.Position = b.NextCardPosition(b.Columns[column].ID)
		card.Priority = priority
		card.Assignee = assignee
		card.Tags = tags
		b.Cards = append(b.Cards, card)
	}
	add(0, "Fix login timeout", domain.PriorityHigh, "dana", "bug", "auth")
	add(0, "Write docs", domain.PriorityLow, "sam")
	add(1, "Refactor parser", domain.PriorityMedium, "dana", "tech-debt")
	add(2, "Release v2", domain.PriorityHigh, "")
	return b
}

func cardTitles(cards []domain.Card) []string {
	out := make([]string, 0, len(cards))
	for i := range cards {
		out = append(out, cards[i].Title)
	}
	return out
}

func TestCardsContentSearchesTitleAndDescription(t *testing.T) {
	b := cardBoard()
	b.Cards[1].Description = "covers the login flow"

	got := Cards(b, CardFilter{Content: "LOGIN"})

	assert.ElementsMatch(t, []string{"Fix login timeout", "Write docs"}, cardTitles(got))
}

func TestCardsColumnFilter(t *testing.T) {
	b := cardBoard()
	colID := b.Columns[1].ID

	got := Cards(b, CardFilter{ColumnID: &colID})

	assert.Equal(t, []string{"Refactor parser"}, cardTitles(got))
}

func TestCardsStatusMatchesColumnTitle(t *testing.T) {
	b := cardBoard()

	got := Cards(b, CardFilter{Status: "in progress"})

	assert.Equal(t, []string{"Refactor parser"}, cardTitles(got))
}

func TestCardsPriorityAndAssigneeFilters(t *testing.T) {
	b := cardBoard()

	high := Cards(b, CardFilter{Priority: "high"})
	assert.ElementsMatch(t, []string{"Fix login timeout", "Release v2"}, cardTitles(high))

	dana := Cards(b, CardFilter{Assignee: "dana"})
	assert.ElementsMatch(t, []string{"Fix login timeout", "Refactor parser"}, cardTitles(dana))
}

func TestCardsTagFilterMatchesAny(t *testing.T) {
	b := cardBoard()

	got := Cards(b, CardFilter{Tags: []string{"auth", "tech-debt"}})

	assert.ElementsMatch(t, []string{"Fix login timeout", "Refactor parser"}, cardTitles(got))
}

func TestCardsSortByPriority(t *testing.T) {
	b := cardBoard()

	got := Cards(b, CardFilter{SortBy: CardSortPriority, SortOrder: OrderDesc})

	require.NotEmpty(t, got)
	assert.Equal(t, domain.PriorityHigh, got[0].Priority)
	assert.Equal(t, domain.PriorityLow, got[len(got)-1].Priority)
}

func TestCardsDefaultSortFollowsColumnOrder(t *testing.T) {
	b := domain.NewBoard("ordered", []string{"Alpha", "Beta"}, nil)
	// put the column with the lexically larger id first, so an id-based
	// tiebreak would get the order wrong
	if b.Columns[0].ID.String() < b.Columns[1].ID.String() {
		b.ApplyColumnOrder([]uuid.UUID{b.Columns[1].ID, b.Columns[0].ID})
	}
	add := func(column int, title string) {
		card := domain.NewCard(b.Columns[column].ID, title)
		card.Position = b.NextCardPosition(b.Columns[column].ID)
		b.Cards = append(b.Cards, card)
	}
	add(0, "lead first")
	add(0, "lead second")
	add(1, "trail")

	got := Cards(b, CardFilter{})

	assert.Equal(t, []string{"lead first", "lead second", "trail"}, cardTitles(got))
}

func TestCardsFiltersCompose(t *testing.T) {
	b := cardBoard()

	got := Cards(b, CardFilter{Priority: "high", Assignee: "dana"})

	assert.Equal(t, []string{"Fix login timeout"}, cardTitles(got))
}

func TestCardsEmptyResultIsValid(t *testing.T) {
	b := cardBoard()

	got := Cards(b, CardFilter{Content: "no such card"})

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCardsPagination(t *testing.T) {
	b := cardBoard()

	limit := 2
	page := Cards(b, CardFilter{SortBy: CardSortTitle, Limit: &limit})

	require.Len(t, page, 2)
	assert.Equal(t, []string{"Fix login timeout", "Refactor parser"}, cardTitles(page))
}
