package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBoard(columnTitles ...string) *Board {
	return NewBoard("Test Board", columnTitles, nil)
}

func addCard(b *Board, columnID uuid.UUID, title string) *Card {
	card := NewCard(columnID, title)
	card.Position = b.NextCardPosition(columnID)
	b.Cards = append(b.Cards, card)
	return &b.Cards[len(b.Cards)-1]
}

// assertDense verifies columns hold positions 0..n-1 and each column's
// cards hold 0..k-1
func assertDense(t *testing.T, b *Board) {
	t.Helper()
	for i, col := range b.Columns {
		assert.Equal(t, i, col.Position, "column %q", col.Title)
	}
	for _, col := range b.Columns {
		for i, card := range b.CardsInColumn(col.ID) {
			assert.Equal(t, i, card.Position, "card %q in column %q", card.Title, col.Title)
		}
	}
}

func TestNewBoardColumnPositions(t *testing.T) {
	b := testBoard("To Do", "In Progress", "Done")

	require.Len(t, b.Columns, 3)
	assertDense(t, b)
	assert.Equal(t, "To Do", b.Columns[0].Title)
	assert.Equal(t, "Done", b.Columns[2].Title)
}

func TestClampPosition(t *testing.T) {
	assert.Equal(t, 0, ClampPosition(-5, 3))
	assert.Equal(t, 2, ClampPosition(2, 3))
	assert.Equal(t, 3, ClampPosition(99, 3))
}

func TestInsertColumnAt(t *testing.T) {
	b := testBoard("A", "B", "C")

	b.InsertColumnAt(NewColumn("X", 0), 1)

	require.Len(t, b.Columns, 4)
	assert.Equal(t, "A", b.Columns[0].Title)
	assert.Equal(t, "X", b.Columns[1].Title)
	assert.Equal(t, "B", b.Columns[2].Title)
	assertDense(t, b)
}

func TestInsertColumnAtClampsOutOfRange(t *testing.T) {
	b := testBoard("A", "B")

	b.InsertColumnAt(NewColumn("End", 0), 99)
	b.InsertColumnAt(NewColumn("Start", 0), -1)

	assert.Equal(t, "Start", b.Columns[0].Title)
	assert.Equal(t, "End", b.Columns[3].Title)
	assertDense(t, b)
}

func TestRemoveColumnRenumbers(t *testing.T) {
	b := testBoard("A", "B", "C")

	ok := b.RemoveColumn(b.Columns[1].ID)

	require.True(t, ok)
	require.Len(t, b.Columns, 2)
	assert.Equal(t, "A", b.Columns[0].Title)
	assert.Equal(t, "C", b.Columns[1].Title)
	assertDense(t, b)
}

func TestRemoveColumnUnknownID(t *testing.T) {
	b := testBoard("A")
	assert.False(t, b.RemoveColumn(uuid.New()))
	assert.Len(t, b.Columns, 1)
}

func TestApplyColumnOrder(t *testing.T) {
	b := testBoard("A", "B", "C")
	order := []uuid.UUID{b.Columns[2].ID, b.Columns[0].ID, b.Columns[1].ID}

	b.ApplyColumnOrder(order)

	assert.Equal(t, "C", b.Columns[0].Title)
	assert.Equal(t, "A", b.Columns[1].Title)
	assert.Equal(t, "B", b.Columns[2].Title)
	assertDense(t, b)
}

func TestNextCardPositionToleratesGaps(t *testing.T) {
	b := testBoard("A")
	colID := b.Columns[0].ID

	card := NewCard(colID, "sparse")
	card.Position = 7
	b.Cards = append(b.Cards, card)

	assert.Equal(t, 8, b.NextCardPosition(colID))
}

func TestRemoveCardRenumbersColumn(t *testing.T) {
	b := testBoard("A", "B")
	colA := b.Columns[0].ID
	colB := b.Columns[1].ID
	addCard(b, colA, "one")
	target := addCard(b, colA, "two")
	addCard(b, colA, "three")
	addCard(b, colB, "other")

	ok := b.RemoveCard(target.ID)

	require.True(t, ok)
	cards := b.CardsInColumn(colA)
	require.Len(t, cards, 2)
	assert.Equal(t, "one", cards[0].Title)
	assert.Equal(t, "three", cards[1].Title)
	assertDense(t, b)
}

func TestPlaceCardWithinColumn(t *testing.T) {
	b := testBoard("A")
	colID := b.Columns[0].ID
	addCard(b, colID, "one")
	addCard(b, colID, "two")
	mover := addCard(b, colID, "three")

	b.PlaceCard(mover.ID, colID, 0)

	cards := b.CardsInColumn(colID)
	assert.Equal(t, "three", cards[0].Title)
	assert.Equal(t, "one", cards[1].Title)
	assert.Equal(t, "two", cards[2].Title)
	assertDense(t, b)
}

func TestPlaceCardAcrossColumns(t *testing.T) {
	b := testBoard("A", "B")
	colA := b.Columns[0].ID
	colB := b.Columns[1].ID
	addCard(b, colA, "one")
	mover := addCard(b, colA, "two")
	addCard(b, colA, "three")
	addCard(b, colB, "target-one")

	b.PlaceCard(mover.ID, colB, 1)

	moved := b.CardByID(mover.ID)
	require.NotNil(t, moved)
	assert.Equal(t, colB, moved.ColumnID)
	assert.Equal(t, 1, moved.Position)

	// The source column closes the gap immediately
	source := b.CardsInColumn(colA)
	require.Len(t, source, 2)
	assert.Equal(t, "one", source[0].Title)
	assert.Equal(t, "three", source[1].Title)
	assertDense(t, b)
}

func TestPlaceCardClampsPosition(t *testing.T) {
	b := testBoard("A", "B")
	colA := b.Columns[0].ID
	colB := b.Columns[1].ID
	mover := addCard(b, colA, "one")
	addCard(b, colB, "existing")

	b.PlaceCard(mover.ID, colB, 999)

	moved := b.CardByID(mover.ID)
	assert.Equal(t, 1, moved.Position)
	assertDense(t, b)
}

func TestNormalizeColumnsSortsAndRenumbers(t *testing.T) {
	b := testBoard("A", "B", "C")
	b.Columns[0].Position = 10
	b.Columns[1].Position = 5
	b.Columns[2].Position = 7

	b.NormalizeColumns()

	assert.Equal(t, "B", b.Columns[0].Title)
	assert.Equal(t, "C", b.Columns[1].Title)
	assert.Equal(t, "A", b.Columns[2].Title)
	assertDense(t, b)
}
