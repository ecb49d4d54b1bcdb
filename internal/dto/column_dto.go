package dto

import (
	"github.com/google/uuid"
)

// CreateColumnRequest represents the request to add a column to a board
// @Description position is clamped into [0, columnCount]; omitted means append
type CreateColumnRequest struct {
	Title    string `json:"title" binding:"required" example:"Blocked"`
	Position *int   `json:"position,omitempty"`
	WipLimit *int   `json:"wipLimit,omitempty" example:"3"`
	Color    string `json:"color,omitempty" example:"#ff6b6b"`
}

// UpdateColumnRequest represents the request to patch a column. All fields are
// optional; clearWipLimit removes the limit entirely and wins over wipLimit.
type UpdateColumnRequest struct {
	Title         *string `json:"title,omitempty"`
	WipLimit      *int    `json:"wipLimit,omitempty"`
	ClearWipLimit bool    `json:"clearWipLimit,omitempty"`
	Color         *string `json:"color,omitempty"`
}

// ReorderColumnsRequest carries the full new column order.
// The list must be an exact permutation of the board's column ids.
type ReorderColumnsRequest struct {
	ColumnIDs []uuid.UUID `json:"columnIds" binding:"required"`
}
