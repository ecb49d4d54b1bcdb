package dto

import (
	"time"

	"github.com/google/uuid"

	"kanban-board-api/internal/domain"
)

// CreateCardRequest represents the request to add a card to a board
// @Description dueDate is RFC 3339; priority is one of low, medium, high
type CreateCardRequest struct {
	ColumnID    uuid.UUID  `json:"columnId" binding:"required"`
	Title       string     `json:"title" binding:"required" example:"Fix login timeout"`
	Description string     `json:"description,omitempty"`
	Tags        []string   `json:"tags,omitempty" example:"bug,auth"`
	Priority    string     `json:"priority,omitempty" example:"high"`
	Assignee    string     `json:"assignee,omitempty" example:"dana"`
	DueDate     *time.Time `json:"dueDate,omitempty" example:"2026-09-15T00:00:00Z"`
}

// UpdateCardRequest represents the request to patch a card. All fields are optional.
type UpdateCardRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Tags        *[]string  `json:"tags,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	Assignee    *string    `json:"assignee,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

// MoveCardRequest represents the request to move a card to a column and position
type MoveCardRequest struct {
	ToColumnID uuid.UUID `json:"toColumnId" binding:"required"`
	ToPosition int       `json:"toPosition"`
}

// CardResponse is the card representation returned by the API
type CardResponse struct {
	ID          uuid.UUID       `json:"cardId"`
	ColumnID    uuid.UUID       `json:"columnId"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Position    int             `json:"position"`
	Tags        []string        `json:"tags"`
	Priority    domain.Priority `json:"priority"`
	Assignee    string          `json:"assignee,omitempty"`
	DueDate     *time.Time      `json:"dueDate,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ToCardResponse converts a domain card to its API representation
func ToCardResponse(card *domain.Card) *CardResponse {
	tags := card.Tags
	if tags == nil {
		tags = []string{}
	}
	return &CardResponse{
		ID:          card.ID,
		ColumnID:    card.ColumnID,
		Title:       card.Title,
		Description: card.Description,
		Position:    card.Position,
		Tags:        tags,
		Priority:    card.Priority,
		Assignee:    card.Assignee,
		DueDate:     card.DueDate,
		CreatedAt:   card.CreatedAt,
		UpdatedAt:   card.UpdatedAt,
	}
}
