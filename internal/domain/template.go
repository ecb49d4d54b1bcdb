package domain

import (
	"time"

	"github.com/google/uuid"
)

// TemplateColumn describes one column of a board template
type TemplateColumn struct {
	Title    string `json:"title"`
	WipLimit *int   `json:"wipLimit,omitempty"`
	Color    string `json:"color,omitempty"`
}

// BoardTemplate is a reusable board layout stored under a category
type BoardTemplate struct {
	ID          uuid.UUID        `json:"id"`
	Category    string           `json:"category"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Columns     []TemplateColumn `json:"columns"`
	Settings    Settings         `json:"settings"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// Instantiate creates a new board from the template layout
func (t *BoardTemplate) Instantiate(title string) *Board {
	settings := t.Settings
	board := NewBoard(title, nil, &settings)
	for i, tc := range t.Columns {
		col := NewColumn(tc.Title, i)
		col.Color = tc.Color
		if tc.WipLimit != nil {
			limit := *tc.WipLimit
			col.WipLimit = &limit
		}
		board.Columns = append(board.Columns, col)
	}
	return board
}

// BuiltinTemplates returns the templates seeded on first start
func BuiltinTemplates() []*BoardTemplate {
	three := 3
	five := 5
	return []*BoardTemplate{
		{
			ID:        uuid.New(),
			Category:  "software",
			Name:      "Scrum Sprint",
			Columns:   []TemplateColumn{{Title: "Backlog"}, {Title: "In Progress", WipLimit: &five}, {Title: "Review", WipLimit: &three}, {Title: "Done"}},
			Settings:  DefaultSettings(),
			CreatedAt: time.Now().UTC(),
		},
		{
			ID:        uuid.New(),
			Category:  "general",
			Name:      "Simple Kanban",
			Columns:   []TemplateColumn{{Title: "To Do"}, {Title: "Doing", WipLimit: &three}, {Title: "Done"}},
			Settings:  DefaultSettings(),
			CreatedAt: time.Now().UTC(),
		},
	}
}
