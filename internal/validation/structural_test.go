package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/query"
	"kanban-board-api/internal/response"
)

func violationFields(t *testing.T, err *response.AppError) []string {
	t.Helper()
	require.NotNil(t, err)
	require.Equal(t, response.ErrCodeValidation, err.Code)
	violations, ok := err.Details["violations"].([]Violation)
	require.True(t, ok)
	fields := make([]string, 0, len(violations))
	for _, v := range violations {
		fields = append(fields, v.Field)
	}
	return fields
}

func TestValidateBoardCreateValid(t *testing.T) {
	err := ValidateBoardCreate(&dto.CreateBoardRequest{
		Title:   "Roadmap",
		Columns: []string{"To Do", "Done"},
	})
	assert.Nil(t, err)
}

func TestValidateBoardCreateEmptyTitle(t *testing.T) {
	err := ValidateBoardCreate(&dto.CreateBoardRequest{Title: ""})
	assert.Contains(t, violationFields(t, err), "title")
}

func TestValidateBoardCreateTitleTooLong(t *testing.T) {
	err := ValidateBoardCreate(&dto.CreateBoardRequest{Title: strings.Repeat("x", 201)})
	assert.Contains(t, violationFields(t, err), "title")
}

func TestValidateBoardCreateDuplicateColumns(t *testing.T) {
	err := ValidateBoardCreate(&dto.CreateBoardRequest{
		Title:   "x",
		Columns: []string{"To Do", "to do"},
	})
	assert.Contains(t, violationFields(t, err), "columns[1]")
}

func TestValidateBoardCreateCollectsAllViolations(t *testing.T) {
	err := ValidateBoardCreate(&dto.CreateBoardRequest{
		Title:       "",
		Description: strings.Repeat("d", 2001),
	})
	fields := violationFields(t, err)
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "description")
}

func TestValidateCardCreate(t *testing.T) {
	valid := &dto.CreateCardRequest{Title: "Fix bug", Priority: "high"}
	assert.Nil(t, ValidateCardCreate(valid))

	invalid := &dto.CreateCardRequest{
		Title:    "",
		Priority: "urgent",
		Tags:     []string{strings.Repeat("t", 51)},
	}
	fields := violationFields(t, ValidateCardCreate(invalid))
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "priority")
	assert.Contains(t, fields, "tags[0]")
}

func TestValidateCardUpdateTooManyTags(t *testing.T) {
	tags := make([]string, 21)
	for i := range tags {
		tags[i] = "t"
	}
	err := ValidateCardUpdate(&dto.UpdateCardRequest{Tags: &tags})
	assert.Contains(t, violationFields(t, err), "tags")
}

func TestValidateColumnCreate(t *testing.T) {
	limit := 0
	err := ValidateColumnCreate(&dto.CreateColumnRequest{
		Title:    "Blocked",
		WipLimit: &limit,
		Color:    "red",
	})
	fields := violationFields(t, err)
	assert.Contains(t, fields, "wipLimit")
	assert.Contains(t, fields, "color")

	good := 3
	assert.Nil(t, ValidateColumnCreate(&dto.CreateColumnRequest{
		Title:    "Blocked",
		WipLimit: &good,
		Color:    "#ff6b6b",
	}))
}

func TestValidateGlobalConfigUpdate(t *testing.T) {
	assert.Nil(t, ValidateGlobalConfigUpdate(&dto.UpdateGlobalConfigRequest{}))
	assert.Nil(t, ValidateGlobalConfigUpdate(&dto.UpdateGlobalConfigRequest{
		DefaultColumns: []string{"Todo", "Done"},
	}))

	err := ValidateGlobalConfigUpdate(&dto.UpdateGlobalConfigRequest{DefaultColumns: []string{}})
	assert.Contains(t, violationFields(t, err), "defaultColumns")
}

func TestValidateImportedBoardAcceptsHealthyDocument(t *testing.T) {
	b := domain.NewBoard("Imported", []string{"A", "B"}, nil)
	card := domain.NewCard(b.Columns[0].ID, "one")
	b.Cards = append(b.Cards, card)

	assert.Nil(t, ValidateImportedBoard(b))
}

func TestValidateImportedBoardRejectsBrokenDocument(t *testing.T) {
	b := domain.NewBoard("Imported", []string{"A"}, nil)
	b.Columns[0].Position = 7

	err := ValidateImportedBoard(b)
	require.NotNil(t, err)
	assert.Equal(t, response.ErrCodeValidation, err.Code)
}

func TestValidateBoardQuery(t *testing.T) {
	assert.Nil(t, ValidateBoardQuery(&query.BoardFilter{SortBy: "title", SortOrder: "desc"}))

	err := ValidateBoardQuery(&query.BoardFilter{SortBy: "priority"})
	assert.Contains(t, violationFields(t, err), "sortBy")
}

func TestValidateCardQuery(t *testing.T) {
	assert.Nil(t, ValidateCardQuery(&query.CardFilter{SortBy: "priority"}))

	negative := -1
	err := ValidateCardQuery(&query.CardFilter{Offset: -2, Limit: &negative})
	fields := violationFields(t, err)
	assert.Contains(t, fields, "offset")
	assert.Contains(t, fields, "limit")
}
