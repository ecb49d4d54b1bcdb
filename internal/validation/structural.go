// Package validation enforces the board aggregate's invariants in two
// phases: structural checks on inputs (types, ranges, formats) and
// business-rule checks against the owning board (referential integrity,
// WIP limits, uniqueness, position bounds). Id and datetime formats are
// already enforced at the transport boundary by uuid and RFC 3339 JSON
// binding; the checks here cover everything binding cannot express.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/query"
	"kanban-board-api/internal/response"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 2000
	maxThemeLen       = 50
	maxTagLen         = 50
	maxTags           = 20
	maxColumns        = 50
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Violation describes one violated field
type Violation struct {
	Field   string `json:"field"`
	Value   any    `json:"value"`
	Message string `json:"message"`
}

// Error builds a VALIDATION_ERROR carrying every violation, or nil if none
func Error(violations []Violation) *response.AppError {
	if len(violations) == 0 {
		return nil
	}
	return response.NewAppError(response.ErrCodeValidation, "Request validation failed").
		WithDetails(map[string]any{"violations": violations})
}

func checkTitle(field, title string, violations []Violation) []Violation {
	if title == "" {
		return append(violations, Violation{Field: field, Value: title, Message: "must not be empty"})
	}
	if len(title) > maxTitleLen {
		return append(violations, Violation{Field: field, Value: title, Message: fmt.Sprintf("must be at most %d characters", maxTitleLen)})
	}
	return violations
}

func checkDescription(field, description string, violations []Violation) []Violation {
	if len(description) > maxDescriptionLen {
		return append(violations, Violation{Field: field, Value: description, Message: fmt.Sprintf("must be at most %d characters", maxDescriptionLen)})
	}
	return violations
}

func checkPriority(field, priority string, violations []Violation) []Violation {
	if priority != "" && !domain.Priority(priority).Valid() {
		return append(violations, Violation{Field: field, Value: priority, Message: "must be one of low, medium, high"})
	}
	return violations
}

func checkTags(field string, tags []string, violations []Violation) []Violation {
	if len(tags) > maxTags {
		violations = append(violations, Violation{Field: field, Value: len(tags), Message: fmt.Sprintf("must contain at most %d tags", maxTags)})
	}
	for i, tag := range tags {
		if tag == "" || len(tag) > maxTagLen {
			violations = append(violations, Violation{
				Field:   fmt.Sprintf("%s[%d]", field, i),
				Value:   tag,
				Message: fmt.Sprintf("must be between 1 and %d characters", maxTagLen),
			})
		}
	}
	return violations
}

func checkColor(field, color string, violations []Violation) []Violation {
	if color != "" && !hexColorRe.MatchString(color) {
		return append(violations, Violation{Field: field, Value: color, Message: "must be a hex color like #1a2b3c"})
	}
	return violations
}

func checkWipLimit(field string, limit *int, violations []Violation) []Violation {
	if limit != nil && *limit < 1 {
		return append(violations, Violation{Field: field, Value: *limit, Message: "must be a positive integer"})
	}
	return violations
}

// ValidateBoardCreate checks the structural constraints of a board creation request
func ValidateBoardCreate(req *dto.CreateBoardRequest) *response.AppError {
	var violations []Violation
	violations = checkTitle("title", req.Title, violations)
	violations = checkDescription("description", req.Description, violations)
	if len(req.Columns) > maxColumns {
		violations = append(violations, Violation{Field: "columns", Value: len(req.Columns), Message: fmt.Sprintf("must contain at most %d columns", maxColumns)})
	}
	for i, title := range req.Columns {
		violations = checkTitle(fmt.Sprintf("columns[%d]", i), title, violations)
	}
	seen := make(map[string]bool, len(req.Columns))
	for i, title := range req.Columns {
		key := strings.ToLower(title)
		if seen[key] {
			violations = append(violations, Violation{
				Field:   fmt.Sprintf("columns[%d]", i),
				Value:   title,
				Message: "duplicates another column title",
			})
		}
		seen[key] = true
	}
	violations = checkSettings("settings", req.Settings, violations)
	return Error(violations)
}

// ValidateBoardUpdate checks the structural constraints of a board patch
func ValidateBoardUpdate(req *dto.UpdateBoardRequest) *response.AppError {
	var violations []Violation
	if req.Title != nil {
		violations = checkTitle("title", *req.Title, violations)
	}
	if req.Description != nil {
		violations = checkDescription("description", *req.Description, violations)
	}
	violations = checkSettings("settings", req.Settings, violations)
	return Error(violations)
}

func checkSettings(field string, s *dto.SettingsPayload, violations []Violation) []Violation {
	if s != nil && s.Theme != nil && len(*s.Theme) > maxThemeLen {
		violations = append(violations, Violation{Field: field + ".theme", Value: *s.Theme, Message: fmt.Sprintf("must be at most %d characters", maxThemeLen)})
	}
	return violations
}

// ValidateGlobalConfigUpdate checks the structural constraints of a global
// configuration patch. An explicitly empty defaultColumns list is rejected:
// boards created from config must always get at least one column.
func ValidateGlobalConfigUpdate(req *dto.UpdateGlobalConfigRequest) *response.AppError {
	var violations []Violation
	if req.DefaultColumns != nil {
		if len(req.DefaultColumns) == 0 {
			violations = append(violations, Violation{Field: "defaultColumns", Value: 0, Message: "must contain at least one column"})
		}
		if len(req.DefaultColumns) > maxColumns {
			violations = append(violations, Violation{Field: "defaultColumns", Value: len(req.DefaultColumns), Message: fmt.Sprintf("must contain at most %d columns", maxColumns)})
		}
		for i, title := range req.DefaultColumns {
			violations = checkTitle(fmt.Sprintf("defaultColumns[%d]", i), title, violations)
		}
	}
	violations = checkSettings("defaultSettings", req.DefaultSettings, violations)
	return Error(violations)
}

// ValidateTemplateInstantiation checks the title given for a board created
// from a template
func ValidateTemplateInstantiation(req *dto.CreateFromTemplateRequest) *response.AppError {
	var violations []Violation
	violations = checkTitle("title", req.Title, violations)
	return Error(violations)
}

// ValidateCardCreate checks the structural constraints of a card creation request
func ValidateCardCreate(req *dto.CreateCardRequest) *response.AppError {
	var violations []Violation
	violations = checkTitle("title", req.Title, violations)
	violations = checkDescription("description", req.Description, violations)
	violations = checkPriority("priority", req.Priority, violations)
	violations = checkTags("tags", req.Tags, violations)
	return Error(violations)
}

// ValidateCardUpdate checks the structural constraints of a card patch
func ValidateCardUpdate(req *dto.UpdateCardRequest) *response.AppError {
	var violations []Violation
	if req.Title != nil {
		violations = checkTitle("title", *req.Title, violations)
	}
	if req.Description != nil {
		violations = checkDescription("description", *req.Description, violations)
	}
	if req.Priority != nil {
		violations = checkPriority("priority", *req.Priority, violations)
	}
	if req.Tags != nil {
		violations = checkTags("tags", *req.Tags, violations)
	}
	return Error(violations)
}

// ValidateColumnCreate checks the structural constraints of a column creation request
func ValidateColumnCreate(req *dto.CreateColumnRequest) *response.AppError {
	var violations []Violation
	violations = checkTitle("title", req.Title, violations)
	violations = checkWipLimit("wipLimit", req.WipLimit, violations)
	violations = checkColor("color", req.Color, violations)
	return Error(violations)
}

// ValidateColumnUpdate checks the structural constraints of a column patch
func ValidateColumnUpdate(req *dto.UpdateColumnRequest) *response.AppError {
	var violations []Violation
	if req.Title != nil {
		violations = checkTitle("title", *req.Title, violations)
	}
	violations = checkWipLimit("wipLimit", req.WipLimit, violations)
	if req.Color != nil {
		violations = checkColor("color", *req.Color, violations)
	}
	return Error(violations)
}

var boardSortFields = map[string]bool{
	"": true, query.BoardSortTitle: true, query.BoardSortCreatedAt: true, query.BoardSortUpdatedAt: true,
}

var cardSortFields = map[string]bool{
	"": true, query.CardSortTitle: true, query.CardSortCreatedAt: true,
	query.CardSortUpdatedAt: true, query.CardSortPriority: true, query.CardSortPosition: true,
}

func checkQueryShape(sortBy string, allowed map[string]bool, sortOrder string, offset int, limit *int) []Violation {
	var violations []Violation
	if !allowed[sortBy] {
		violations = append(violations, Violation{Field: "sortBy", Value: sortBy, Message: "unknown sort field"})
	}
	if sortOrder != "" && sortOrder != query.OrderAsc && sortOrder != query.OrderDesc {
		violations = append(violations, Violation{Field: "sortOrder", Value: sortOrder, Message: "must be asc or desc"})
	}
	if offset < 0 {
		violations = append(violations, Violation{Field: "offset", Value: offset, Message: "must not be negative"})
	}
	if limit != nil && *limit < 0 {
		violations = append(violations, Violation{Field: "limit", Value: *limit, Message: "must not be negative"})
	}
	return violations
}

// ValidateImportedBoard checks an exported board document before it is
// re-created under a fresh id: structural field constraints plus a full
// integrity audit, so a corrupt export never enters the store
func ValidateImportedBoard(doc *domain.Board) *response.AppError {
	var violations []Violation
	violations = checkTitle("title", doc.Title, violations)
	violations = checkDescription("description", doc.Description, violations)
	for i := range doc.Columns {
		col := &doc.Columns[i]
		field := fmt.Sprintf("columns[%d]", i)
		if col.ID == uuid.Nil {
			violations = append(violations, Violation{Field: field + ".id", Value: col.ID, Message: "must be a valid id"})
		}
		violations = checkTitle(field+".title", col.Title, violations)
		violations = checkWipLimit(field+".wipLimit", col.WipLimit, violations)
		violations = checkColor(field+".color", col.Color, violations)
	}
	for i := range doc.Cards {
		card := &doc.Cards[i]
		field := fmt.Sprintf("cards[%d]", i)
		if card.ID == uuid.Nil {
			violations = append(violations, Violation{Field: field + ".id", Value: card.ID, Message: "must be a valid id"})
		}
		violations = checkTitle(field+".title", card.Title, violations)
		violations = checkPriority(field+".priority", string(card.Priority), violations)
		violations = checkTags(field+".tags", card.Tags, violations)
	}
	if err := Error(violations); err != nil {
		return err
	}
	if report := AuditBoard(doc); !report.IsValid {
		return response.NewAppError(response.ErrCodeValidation, "Imported document fails the integrity audit").
			WithDetails(map[string]any{"issues": report.Issues})
	}
	return nil
}

// ValidateBoardQuery checks the sort and pagination shape of a board query
func ValidateBoardQuery(f *query.BoardFilter) *response.AppError {
	return Error(checkQueryShape(f.SortBy, boardSortFields, f.SortOrder, f.Offset, f.Limit))
}

// ValidateCardQuery checks the sort and pagination shape of a card query
func ValidateCardQuery(f *query.CardFilter) *response.AppError {
	violations := checkQueryShape(f.SortBy, cardSortFields, f.SortOrder, f.Offset, f.Limit)
	violations = checkPriority("priority", f.Priority, violations)
	return Error(violations)
}
