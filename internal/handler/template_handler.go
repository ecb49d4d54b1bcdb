package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

type TemplateHandler struct {
	templateService service.TemplateService
}

func NewTemplateHandler(templateService service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// ListTemplates godoc
// @Summary      List board templates
// @Tags         templates
// @Produce      json
// @Param        category query string false "Restrict to one category"
// @Success      200 {object} response.APIResponse{data=[]dto.TemplateResponse}
// @Router       /templates [get]
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	templates, err := h.templateService.ListTemplates(c.Request.Context(), c.Query("category"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, templates)
}

// CreateBoardFromTemplate godoc
// @Summary      Create a board from a template
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateFromTemplateRequest true "Template and board title"
// @Success      201 {object} response.APIResponse{data=dto.BoardResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /templates/instantiate [post]
func (h *TemplateHandler) CreateBoardFromTemplate(c *gin.Context) {
	var req dto.CreateFromTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	board, err := h.templateService.CreateBoardFromTemplate(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, board)
}
