package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

type ConfigHandler struct {
	configService service.ConfigService
}

func NewConfigHandler(configService service.ConfigService) *ConfigHandler {
	return &ConfigHandler{configService: configService}
}

// GetConfig godoc
// @Summary      Get the global configuration
// @Description  Returns the defaults applied to boards created without explicit columns or settings
// @Tags         config
// @Produce      json
// @Success      200 {object} response.APIResponse{data=domain.GlobalConfig}
// @Router       /config [get]
func (h *ConfigHandler) GetConfig(c *gin.Context) {
	cfg, err := h.configService.GetConfig(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, cfg)
}

// UpdateConfig godoc
// @Summary      Update the global configuration
// @Description  Merges the given fields into the stored configuration document
// @Tags         config
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateGlobalConfigRequest true "Fields to update"
// @Success      200 {object} response.APIResponse{data=domain.GlobalConfig}
// @Failure      400 {object} response.APIResponse
// @Router       /config [patch]
func (h *ConfigHandler) UpdateConfig(c *gin.Context) {
	var req dto.UpdateGlobalConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	cfg, err := h.configService.UpdateConfig(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, cfg)
}

// ResetConfig godoc
// @Summary      Reset the global configuration
// @Description  Restores factory defaults after snapshotting the current document to the backup directory
// @Tags         config
// @Produce      json
// @Success      200 {object} response.APIResponse{data=domain.GlobalConfig}
// @Router       /config/reset [post]
func (h *ConfigHandler) ResetConfig(c *gin.Context) {
	cfg, err := h.configService.ResetConfig(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, cfg)
}
