package dto

import (
	"time"

	"github.com/google/uuid"

	"kanban-board-api/internal/domain"
)

// TemplateColumnResponse is one column of a template layout
type TemplateColumnResponse struct {
	Title    string `json:"title"`
	WipLimit *int   `json:"wipLimit,omitempty"`
	Color    string `json:"color,omitempty"`
}

// TemplateResponse is the template representation returned by the API
type TemplateResponse struct {
	ID          uuid.UUID                `json:"templateId"`
	Category    string                   `json:"category"`
	Name        string                   `json:"name"`
	Description string                   `json:"description,omitempty"`
	Columns     []TemplateColumnResponse `json:"columns"`
	CreatedAt   time.Time                `json:"createdAt"`
}

// ToTemplateResponse converts a domain template to its API representation
func ToTemplateResponse(t *domain.BoardTemplate) *TemplateResponse {
	columns := make([]TemplateColumnResponse, 0, len(t.Columns))
	for _, c := range t.Columns {
		columns = append(columns, TemplateColumnResponse{Title: c.Title, WipLimit: c.WipLimit, Color: c.Color})
	}
	return &TemplateResponse{
		ID:          t.ID,
		Category:    t.Category,
		Name:        t.Name,
		Description: t.Description,
		Columns:     columns,
		CreatedAt:   t.CreatedAt,
	}
}
