package domain

import (
	"time"

	"github.com/google/uuid"
)

// Duplicate deep-copies the board under a fresh id: columns keep their
// titles, order, WIP limits and colors but receive new ids; cards keep
// their content fields and receive new ids.
//
// Cards are remapped to their new column by the original column's order
// index. This matches the columns of the copy one-to-one because both
// lists are normalized first and copied in the same order; it would break
// if columns were ever filtered between normalization and remapping.
func (b *Board) Duplicate(newTitle string) *Board {
	source := b.Clone()
	source.NormalizeColumns()

	now := time.Now().UTC()
	title := newTitle
	if title == "" {
		title = source.Title + " (Copy)"
	}

	copyBoard := &Board{
		ID:          uuid.New(),
		Title:       title,
		Description: source.Description,
		Columns:     make([]Column, len(source.Columns)),
		Cards:       make([]Card, 0, len(source.Cards)),
		Settings:    source.Settings,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	columnIndex := make(map[uuid.UUID]int, len(source.Columns))
	for i, col := range source.Columns {
		columnIndex[col.ID] = i
		newCol := col
		newCol.ID = uuid.New()
		copyBoard.Columns[i] = newCol
	}

	for _, card := range source.Cards {
		idx, ok := columnIndex[card.ColumnID]
		if !ok {
			continue
		}
		newCard := card
		newCard.ID = uuid.New()
		newCard.ColumnID = copyBoard.Columns[idx].ID
		newCard.CreatedAt = now
		newCard.UpdatedAt = now
		copyBoard.Cards = append(copyBoard.Cards, newCard)
	}
	return copyBoard
}
