package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/query"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
	"kanban-board-api/internal/validation"
)

type CardHandler struct {
	cardService service.CardService
}

func NewCardHandler(cardService service.CardService) *CardHandler {
	return &CardHandler{cardService: cardService}
}

func parseCardID(c *gin.Context) (uuid.UUID, bool) {
	cardID, err := uuid.Parse(c.Param("cardId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid card ID")
		return uuid.Nil, false
	}
	return cardID, true
}

// CreateCard godoc
// @Summary      Add a card
// @Description  Appends a card to the end of its column, subject to the column's WIP limit
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.CreateCardRequest true "Card creation request"
// @Success      201 {object} response.APIResponse{data=dto.CardResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse "WIP limit reached"
// @Router       /boards/{boardId}/cards [post]
func (h *CardHandler) CreateCard(c *gin.Context) {
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}

	var req dto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	card, err := h.cardService.AddCard(c.Request.Context(), boardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, card)
}

// GetCard godoc
// @Summary      Get a card
// @Tags         cards
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        cardId path string true "Card ID (UUID)"
// @Success      200 {object} response.APIResponse{data=dto.CardResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /boards/{boardId}/cards/{cardId} [get]
func (h *CardHandler) GetCard(c *gin.Context) {
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}
	cardID, ok := parseCardID(c)
	if !ok {
		return
	}

	card, err := h.cardService.GetCard(c.Request.Context(), boardID, cardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, card)
}

// ListCards godoc
// @Summary      List cards
// @Description  Lists a board's cards with filtering, sorting and pagination
// @Tags         cards
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        content query string false "Substring of title or description (case-insensitive)"
// @Param        columnId query string false "Restrict to one column (UUID)"
// @Param        status query string false "Title of the card's current column"
// @Param        priority query string false "low | medium | high"
// @Param        assignee query string false "Exact assignee"
// @Param        tags query []string false "Cards carrying any of these tags"
// @Param        sortBy query string false "title | createdAt | updatedAt | priority | position"
// @Param        sortOrder query string false "asc | desc"
// @Param        offset query int false "Items to skip"
// @Param        limit query int false "Page size"
// @Success      200 {object} response.APIResponse{data=[]dto.CardResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /boards/{boardId}/cards [get]
func (h *CardHandler) ListCards(c *gin.Context) {
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}

	var filter query.CardFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid query parameters")
		return
	}
	// uuid query params do not bind through gin's form tags
	if raw := c.Query("columnId"); raw != "" {
		columnID, err := uuid.Parse(raw)
		if err != nil {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid column ID")
			return
		}
		filter.ColumnID = &columnID
	}
	if err := validation.ValidateCardQuery(&filter); err != nil {
		handleServiceError(c, err)
		return
	}

	cards, err := h.cardService.ListCards(c.Request.Context(), boardID, &filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, cards)
}

// UpdateCard godoc
// @Summary      Update a card
// @Description  Patches a card's content fields. Use the move endpoint to change column or position.
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        cardId path string true "Card ID (UUID)"
// @Param        request body dto.UpdateCardRequest true "Fields to update"
// @Success      200 {object} response.APIResponse{data=dto.CardResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /boards/{boardId}/cards/{cardId} [patch]
func (h *CardHandler) UpdateCard(c *gin.Context) {
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}
	cardID, ok := parseCardID(c)
	if !ok {
		return
	}

	var req dto.UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	card, err := h.cardService.UpdateCard(c.Request.Context(), boardID, cardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, card)
}

// DeleteCard godoc
// @Summary      Delete a card
// @Description  Removes a card and renumbers its column
// @Tags         cards
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        cardId path string true "Card ID (UUID)"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /boards/{boardId}/cards/{cardId} [delete]
func (h *CardHandler) DeleteCard(c *gin.Context) {
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}
	cardID, ok := parseCardID(c)
	if !ok {
		return
	}

	if err := h.cardService.DeleteCard(c.Request.Context(), boardID, cardID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}

// MoveCard godoc
// @Summary      Move a card
// @Description  Moves a card to a column and position, keeping positions dense on both sides
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        cardId path string true "Card ID (UUID)"
// @Param        request body dto.MoveCardRequest true "Target column and position"
// @Success      200 {object} response.APIResponse{data=dto.BoardDetailResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse "Destination WIP limit reached"
// @Router       /boards/{boardId}/cards/{cardId}/move [post]
func (h *CardHandler) MoveCard(c *gin.Context) {
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}
	cardID, ok := parseCardID(c)
	if !ok {
		return
	}

	var req dto.MoveCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	board, err := h.cardService.MoveCard(c.Request.Context(), boardID, cardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, board)
}
