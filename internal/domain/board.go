package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Priority represents the priority level of a card
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priority levels
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank returns the sort rank of a priority (low < medium < high)
func (p Priority) Rank() int {
	switch p {
	case PriorityMedium:
		return 1
	case PriorityHigh:
		return 2
	}
	return 0
}

// Settings holds per-board behavior flags
type Settings struct {
	AllowWipLimitExceeding bool   `json:"allowWipLimitExceeding"`
	ShowCardCount          bool   `json:"showCardCount"`
	EnableDragDrop         bool   `json:"enableDragDrop"`
	Theme                  string `json:"theme"`
}

// DefaultSettings returns the settings applied to boards created without overrides
func DefaultSettings() Settings {
	return Settings{
		AllowWipLimitExceeding: false,
		ShowCardCount:          true,
		EnableDragDrop:         true,
		Theme:                  "default",
	}
}

// Card represents a unit of work belonging to exactly one column
type Card struct {
	ID          uuid.UUID  `json:"id"`
	ColumnID    uuid.UUID  `json:"columnId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Position    int        `json:"position"`
	Tags        []string   `json:"tags,omitempty"`
	Priority    Priority   `json:"priority"`
	Assignee    string     `json:"assignee,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// HasTag reports whether the card carries the given tag (case-insensitive)
func (c *Card) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Column represents a named workflow stage with an ordering position
// and an optional work-in-progress limit
type Column struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Position int       `json:"position"`
	WipLimit *int      `json:"wipLimit,omitempty"`
	Color    string    `json:"color,omitempty"`
}

// Board is the aggregate root document holding columns, cards and settings.
// Columns and cards have no identity or lifecycle outside their owning board:
// the whole board is persisted as a single document.
type Board struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Columns     []Column  `json:"columns"`
	Cards       []Card    `json:"cards"`
	Settings    Settings  `json:"settings"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewBoard creates a fully-initialized board with one column per title
// in columnTitles, positioned in the given order
func NewBoard(title string, columnTitles []string, settings *Settings) *Board {
	now := time.Now().UTC()
	s := DefaultSettings()
	if settings != nil {
		s = *settings
	}
	board := &Board{
		ID:        uuid.New(),
		Title:     title,
		Columns:   make([]Column, 0, len(columnTitles)),
		Cards:     []Card{},
		Settings:  s,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for i, columnTitle := range columnTitles {
		board.Columns = append(board.Columns, NewColumn(columnTitle, i))
	}
	return board
}

// NewColumn creates a column with a fresh id at the given position
func NewColumn(title string, position int) Column {
	return Column{
		ID:       uuid.New(),
		Title:    title,
		Position: position,
	}
}

// NewCard creates a card with a fresh id, timestamps, and medium priority.
// The caller assigns the position via the board's ordering helpers.
func NewCard(columnID uuid.UUID, title string) Card {
	now := time.Now().UTC()
	return Card{
		ID:        uuid.New(),
		ColumnID:  columnID,
		Title:     title,
		Tags:      []string{},
		Priority:  PriorityMedium,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ColumnByID returns a pointer into the board's column list, or nil
func (b *Board) ColumnByID(id uuid.UUID) *Column {
	for i := range b.Columns {
		if b.Columns[i].ID == id {
			return &b.Columns[i]
		}
	}
	return nil
}

// ColumnByTitle returns the column with the given title (case-insensitive), or nil
func (b *Board) ColumnByTitle(title string) *Column {
	for i := range b.Columns {
		if strings.EqualFold(b.Columns[i].Title, title) {
			return &b.Columns[i]
		}
	}
	return nil
}

// CardByID returns a pointer into the board's card list, or nil
func (b *Board) CardByID(id uuid.UUID) *Card {
	for i := range b.Cards {
		if b.Cards[i].ID == id {
			return &b.Cards[i]
		}
	}
	return nil
}

// CardsInColumn returns pointers to the cards of one column, ordered by position
func (b *Board) CardsInColumn(columnID uuid.UUID) []*Card {
	cards := make([]*Card, 0)
	for i := range b.Cards {
		if b.Cards[i].ColumnID == columnID {
			cards = append(cards, &b.Cards[i])
		}
	}
	sortCardPointers(cards)
	return cards
}

// CountInColumn returns the number of cards referencing the given column
func (b *Board) CountInColumn(columnID uuid.UUID) int {
	n := 0
	for i := range b.Cards {
		if b.Cards[i].ColumnID == columnID {
			n++
		}
	}
	return n
}

// Touch refreshes the board's updatedAt timestamp
func (b *Board) Touch() {
	b.UpdatedAt = time.Now().UTC()
}

// Clone returns a deep copy of the board. Mutating operations work on a
// clone so a failed validation never leaves the loaded document dirty.
func (b *Board) Clone() *Board {
	clone := *b
	clone.Columns = make([]Column, len(b.Columns))
	copy(clone.Columns, b.Columns)
	for i, col := range b.Columns {
		if col.WipLimit != nil {
			limit := *col.WipLimit
			clone.Columns[i].WipLimit = &limit
		}
	}
	clone.Cards = make([]Card, len(b.Cards))
	for i, card := range b.Cards {
		clone.Cards[i] = card
		if card.Tags != nil {
			clone.Cards[i].Tags = append([]string(nil), card.Tags...)
		}
		if card.DueDate != nil {
			due := *card.DueDate
			clone.Cards[i].DueDate = &due
		}
	}
	return &clone
}
