package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/query"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
	"kanban-board-api/internal/validation"
)

type BoardHandler struct {
	boardService service.BoardService
}

func NewBoardHandler(boardService service.BoardService) *BoardHandler {
	return &BoardHandler{boardService: boardService}
}

// parseBoardID extracts and validates the boardId path parameter. A nil
// error means the id was sent to the client already.
func parseBoardID(c *gin.Context) (uuid.UUID, bool) {
	boardID, err := uuid.Parse(c.Param("boardId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid board ID")
		return uuid.Nil, false
	}
	return boardID, true
}

// CreateBoard godoc
// @Summary      Create a board
// @Description  Creates a board with the given columns, or the configured default columns when none are given
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBoardRequest true "Board creation request"
// @Success      201 {object} response.APIResponse{data=dto.BoardResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /boards [post]
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	board, err := h.boardService.CreateBoard(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, board)
}

// GetBoard godoc
// @Summary      Get a board
// @Description  Returns the board with its columns and their ordered cards
// @Tags         boards
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Success      200 {object} response.APIResponse{data=dto.BoardDetailResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /boards/{boardId} [get]
func (h *BoardHandler) GetBoard(c *gin.Context) {
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}

	board, err := h.boardService.GetBoard(c.Request.Context(), boardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, board)
}

// ListBoards godoc
// @Summary      List boards
// @Description  Lists boards with filtering, sorting and pagination
// @Tags         boards
// @Produce      json
// @Param        title query string false "Title substring (case-insensitive)"
// @Param        tags query []string false "Boards holding a card with any of these tags"
// @Param        sortBy query string false "title | createdAt | updatedAt"
// @Param        sortOrder query string false "asc | desc"
// @Param        offset query int false "Items to skip"
// @Param        limit query int false "Page size"
// @Success      200 {object} response.APIResponse{data=[]dto.BoardResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /boards [get]
func (h *BoardHandler) ListBoards(c *gin.Context) {
	var filter query.BoardFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid query parameters")
		return
	}
	if err := validation.ValidateBoardQuery(&filter); err != nil {
		handleServiceError(c, err)
		return
	}

	boards, err := h.boardService.ListBoards(c.Request.Context(), &filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, boards)
}

// UpdateBoard godoc
// @Summary      Update a board
// @Description  Patches the board's title, description and settings
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.UpdateBoardRequest true "Fields to update"
// @Success      200 {object} response.APIResponse{data=dto.BoardResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /boards/{boardId} [patch]
func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}

	var req dto.UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	board, err := h.boardService.UpdateBoard(c.Request.Context(), boardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, board)
}

// DeleteBoard godoc
// @Summary      Delete a board
// @Description  Removes the whole board document including its columns and cards
// @Tags         boards
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /boards/{boardId} [delete]
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}

	if err := h.boardService.DeleteBoard(c.Request.Context(), boardID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}

// DuplicateBoard godoc
// @Summary      Duplicate a board
// @Description  Deep-copies a board with all columns and cards under new ids
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.DuplicateBoardRequest false "Optional title for the copy"
// @Success      201 {object} response.APIResponse{data=dto.BoardResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /boards/{boardId}/duplicate [post]
func (h *BoardHandler) DuplicateBoard(c *gin.Context) {
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}

	// Body is optional; an empty body duplicates under "<title> (Copy)"
	var req dto.DuplicateBoardRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
			return
		}
	}

	board, err := h.boardService.DuplicateBoard(c.Request.Context(), boardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, board)
}

// ExportBoard godoc
// @Summary      Export a board
// @Description  Streams the board as a JSON document or a CSV card listing
// @Tags         boards
// @Produce      json
// @Produce      text/csv
// @Param        boardId path string true "Board ID (UUID)"
// @Param        format query string false "json | csv" default(json)
// @Success      200 {file} file
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /boards/{boardId}/export [get]
func (h *BoardHandler) ExportBoard(c *gin.Context) {
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}
	format := c.DefaultQuery("format", string(service.ExportFormatJSON))

	result, err := h.boardService.ExportBoard(c.Request.Context(), boardID, format)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Data)
}

// ImportBoard godoc
// @Summary      Import a board
// @Description  Re-creates a board from an exported JSON document under a new board id
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        request body domain.Board true "Exported board document"
// @Success      201 {object} response.APIResponse{data=dto.BoardResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /boards/import [post]
func (h *BoardHandler) ImportBoard(c *gin.Context) {
	var doc domain.Board
	if err := c.ShouldBindJSON(&doc); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid board document")
		return
	}

	board, err := h.boardService.ImportBoard(c.Request.Context(), &doc)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, board)
}

// ValidateBoard godoc
// @Summary      Check board integrity
// @Description  Audits the board's positions and referential integrity without modifying it
// @Tags         boards
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Success      200 {object} response.APIResponse{data=validation.IntegrityReport}
// @Failure      404 {object} response.APIResponse
// @Router       /boards/{boardId}/validate [get]
func (h *BoardHandler) ValidateBoard(c *gin.Context) {
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}

	report, err := h.boardService.ValidateIntegrity(c.Request.Context(), boardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, report)
}
