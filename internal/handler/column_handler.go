package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

type ColumnHandler struct {
	columnService service.ColumnService
}

func NewColumnHandler(columnService service.ColumnService) *ColumnHandler {
	return &ColumnHandler{columnService: columnService}
}

func parseColumnID(c *gin.Context) (uuid.UUID, bool) {
	columnID, err := uuid.Parse(c.Param("columnId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid column ID")
		return uuid.Nil, false
	}
	return columnID, true
}

// CreateColumn godoc
// @Summary      Add a column
// @Description  Inserts a column at the given position (clamped), or appends when no position is given
// @Tags         columns
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.CreateColumnRequest true "Column creation request"
// @Success      201 {object} response.APIResponse{data=dto.BoardDetailResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse "Duplicate column title"
// @Router       /boards/{boardId}/columns [post]
func (h *ColumnHandler) CreateColumn(c *gin.Context) {
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}

	var req dto.CreateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	board, err := h.columnService.AddColumn(c.Request.Context(), boardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, board)
}

// UpdateColumn godoc
// @Summary      Update a column
// @Description  Patches a column's title, WIP limit and color
// @Tags         columns
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        columnId path string true "Column ID (UUID)"
// @Param        request body dto.UpdateColumnRequest true "Fields to update"
// @Success      200 {object} response.APIResponse{data=dto.BoardDetailResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse "Duplicate column title"
// @Router       /boards/{boardId}/columns/{columnId} [patch]
func (h *ColumnHandler) UpdateColumn(c *gin.Context) {
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}
	columnID, ok := parseColumnID(c)
	if !ok {
		return
	}

	var req dto.UpdateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	board, err := h.columnService.UpdateColumn(c.Request.Context(), boardID, columnID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, board)
}

// DeleteColumn godoc
// @Summary      Delete a column
// @Description  Removes an empty column. Columns still holding cards cannot be deleted.
// @Tags         columns
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        columnId path string true "Column ID (UUID)"
// @Success      200 {object} response.APIResponse{data=dto.BoardDetailResponse}
// @Failure      404 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse "Column still holds cards"
// @Router       /boards/{boardId}/columns/{columnId} [delete]
func (h *ColumnHandler) DeleteColumn(c *gin.Context) {
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}
	columnID, ok := parseColumnID(c)
	if !ok {
		return
	}

	board, err := h.columnService.DeleteColumn(c.Request.Context(), boardID, columnID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, board)
}

// ReorderColumns godoc
// @Summary      Reorder columns
// @Description  Applies a full new column order. The list must name every column exactly once.
// @Tags         columns
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.ReorderColumnsRequest true "Complete column order"
// @Success      200 {object} response.APIResponse{data=dto.BoardDetailResponse}
// @Failure      400 {object} response.APIResponse "Order is not an exact permutation"
// @Failure      404 {object} response.APIResponse
// @Router       /boards/{boardId}/column-order [put]
func (h *ColumnHandler) ReorderColumns(c *gin.Context) {
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}

	var req dto.ReorderColumnsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	board, err := h.columnService.ReorderColumns(c.Request.Context(), boardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, board)
}
