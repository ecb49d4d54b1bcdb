package dto

import (
	"time"

	"github.com/google/uuid"

	"kanban-board-api/internal/domain"
)

// SettingsPayload carries optional overrides for board settings.
// Absent fields keep their current (or default) value.
type SettingsPayload struct {
	AllowWipLimitExceeding *bool   `json:"allowWipLimitExceeding,omitempty"`
	ShowCardCount          *bool   `json:"showCardCount,omitempty"`
	EnableDragDrop         *bool   `json:"enableDragDrop,omitempty"`
	Theme                  *string `json:"theme,omitempty"`
}

// Apply merges the payload into the given settings
func (p *SettingsPayload) Apply(s *domain.Settings) {
	if p == nil {
		return
	}
	if p.AllowWipLimitExceeding != nil {
		s.AllowWipLimitExceeding = *p.AllowWipLimitExceeding
	}
	if p.ShowCardCount != nil {
		s.ShowCardCount = *p.ShowCardCount
	}
	if p.EnableDragDrop != nil {
		s.EnableDragDrop = *p.EnableDragDrop
	}
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
}

// CreateBoardRequest represents the request to create a new board
// @Description Request body for creating a board. Columns are optional;
// @Description when omitted the global default columns are used.
type CreateBoardRequest struct {
	Title       string           `json:"title" binding:"required" example:"Release 2.4"`
	Description string           `json:"description,omitempty" example:"Tracking the 2.4 release work"`
	Columns     []string         `json:"columns,omitempty" example:"Backlog,Doing,Done"`
	Settings    *SettingsPayload `json:"settings,omitempty"`
}

// UpdateBoardRequest represents the request to update a board. All fields are optional.
type UpdateBoardRequest struct {
	Title       *string          `json:"title,omitempty" example:"Release 2.4 (frozen)"`
	Description *string          `json:"description,omitempty"`
	Settings    *SettingsPayload `json:"settings,omitempty"`
}

// DuplicateBoardRequest represents the request to duplicate a board
type DuplicateBoardRequest struct {
	Title string `json:"title,omitempty" example:"Release 2.5"`
}

// CreateFromTemplateRequest represents the request to create a board from a template
type CreateFromTemplateRequest struct {
	TemplateID uuid.UUID `json:"templateId" binding:"required"`
	Title      string    `json:"title" binding:"required" example:"Sprint 41"`
}

// BoardResponse is the board summary returned by list and mutation endpoints
type BoardResponse struct {
	ID          uuid.UUID       `json:"boardId"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	ColumnCount int             `json:"columnCount"`
	CardCount   int             `json:"cardCount"`
	Settings    domain.Settings `json:"settings"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ColumnResponse is a column with its ordered cards
type ColumnResponse struct {
	ID        uuid.UUID      `json:"columnId"`
	Title     string         `json:"title"`
	Position  int            `json:"position"`
	WipLimit  *int           `json:"wipLimit,omitempty"`
	Color     string         `json:"color,omitempty"`
	CardCount int            `json:"cardCount"`
	Cards     []CardResponse `json:"cards"`
}

// BoardDetailResponse is the full board with columns and their cards
type BoardDetailResponse struct {
	ID          uuid.UUID        `json:"boardId"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Columns     []ColumnResponse `json:"columns"`
	Settings    domain.Settings  `json:"settings"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// ToBoardResponse converts a domain board to its summary representation
func ToBoardResponse(b *domain.Board) *BoardResponse {
	return &BoardResponse{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		ColumnCount: len(b.Columns),
		CardCount:   len(b.Cards),
		Settings:    b.Settings,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// ToBoardDetailResponse converts a domain board to its nested representation,
// columns in position order with each column's cards in position order
func ToBoardDetailResponse(b *domain.Board) *BoardDetailResponse {
	detail := &BoardDetailResponse{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Columns:     make([]ColumnResponse, 0, len(b.Columns)),
		Settings:    b.Settings,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
	ordered := b.Clone()
	ordered.NormalizeColumns()
	for _, col := range ordered.Columns {
		cr := ColumnResponse{
			ID:       col.ID,
			Title:    col.Title,
			Position: col.Position,
			WipLimit: col.WipLimit,
			Color:    col.Color,
			Cards:    []CardResponse{},
		}
		for _, card := range ordered.CardsInColumn(col.ID) {
			cr.Cards = append(cr.Cards, *ToCardResponse(card))
		}
		cr.CardCount = len(cr.Cards)
		detail.Columns = append(detail.Columns, cr)
	}
	return detail
}
