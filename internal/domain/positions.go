package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// The ordering model keeps positions dense: for n columns the positions are
// exactly the permutation [0..n-1], and within each column the k cards hold
// [0..k-1]. Every structural mutation renumbers the affected scope, trading
// O(n) renumbering for collision-free ordering on human-sized boards.

func sortCardPointers(cards []*Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].Position < cards[j].Position
	})
}

// ClampPosition clamps pos into [0, max]
func ClampPosition(pos, max int) int {
	if pos < 0 {
		return 0
	}
	if pos > max {
		return max
	}
	return pos
}

// NormalizeColumns sorts columns by their current position (stable) and
// reassigns the dense sequence 0..n-1
func (b *Board) NormalizeColumns() {
	sort.SliceStable(b.Columns, func(i, j int) bool {
		return b.Columns[i].Position < b.Columns[j].Position
	})
	for i := range b.Columns {
		b.Columns[i].Position = i
	}
}

// NormalizeColumnCards reassigns dense 0..k-1 positions to the cards of one
// column, preserving their current relative order
func (b *Board) NormalizeColumnCards(columnID uuid.UUID) {
	for i, card := range b.CardsInColumn(columnID) {
		card.Position = i
	}
}

// NextCardPosition returns max(sibling positions)+1 for the given column.
// Appending this way tolerates gaps without forcing a full renumber.
func (b *Board) NextCardPosition(columnID uuid.UUID) int {
	next := 0
	for i := range b.Cards {
		if b.Cards[i].ColumnID == columnID && b.Cards[i].Position >= next {
			next = b.Cards[i].Position + 1
		}
	}
	return next
}

// InsertColumnAt splices col into the column list at the clamped position
// and renumbers the whole list
func (b *Board) InsertColumnAt(col Column, pos int) {
	b.NormalizeColumns()
	pos = ClampPosition(pos, len(b.Columns))
	b.Columns = append(b.Columns, Column{})
	copy(b.Columns[pos+1:], b.Columns[pos:])
	col.Position = pos
	b.Columns[pos] = col
	for i := range b.Columns {
		b.Columns[i].Position = i
	}
}

// RemoveColumn removes the column with the given id and renumbers the rest.
// It returns false if no such column exists.
func (b *Board) RemoveColumn(id uuid.UUID) bool {
	for i := range b.Columns {
		if b.Columns[i].ID == id {
			b.Columns = append(b.Columns[:i], b.Columns[i+1:]...)
			b.NormalizeColumns()
			return true
		}
	}
	return false
}

// ApplyColumnOrder assigns position = index for the given id order.
// The caller guarantees order is an exact permutation of the existing ids.
func (b *Board) ApplyColumnOrder(order []uuid.UUID) {
	index := make(map[uuid.UUID]int, len(order))
	for i, id := range order {
		index[id] = i
	}
	for i := range b.Columns {
		b.Columns[i].Position = index[b.Columns[i].ID]
	}
	b.NormalizeColumns()
}

// RemoveCard removes the card with the given id and renormalizes the
// positions of the remaining cards in its column only. It returns false
// if no such card exists.
func (b *Board) RemoveCard(id uuid.UUID) bool {
	for i := range b.Cards {
		if b.Cards[i].ID == id {
			columnID := b.Cards[i].ColumnID
			b.Cards = append(b.Cards[:i], b.Cards[i+1:]...)
			b.NormalizeColumnCards(columnID)
			return true
		}
	}
	return false
}

// PlaceCard moves a card into toColumnID at the clamped toPosition,
// renumbering the destination column 0..k. When the card leaves its source
// column the source is renormalized immediately, so positions stay dense
// on both sides. The card must exist on the board.
func (b *Board) PlaceCard(cardID, toColumnID uuid.UUID, toPosition int) {
	card := b.CardByID(cardID)
	if card == nil {
		return
	}
	sourceColumnID := card.ColumnID

	siblings := make([]*Card, 0)
	for _, c := range b.CardsInColumn(toColumnID) {
		if c.ID != cardID {
			siblings = append(siblings, c)
		}
	}
	pos := ClampPosition(toPosition, len(siblings))

	for i, c := range siblings {
		if i < pos {
			c.Position = i
		} else {
			c.Position = i + 1
		}
	}
	card.ColumnID = toColumnID
	card.Position = pos
	card.UpdatedAt = time.Now().UTC()

	if sourceColumnID != toColumnID {
		b.NormalizeColumnCards(sourceColumnID)
	}
}
