package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"kanban-board-api/internal/response"
)

// handleServiceError maps service layer errors to appropriate HTTP responses
func handleServiceError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Resource not found")
		return
	}

	var appErr *response.AppError
	if errors.As(err, &appErr) {
		response.SendAppError(c, mapErrorCodeToHTTPStatus(appErr.Code), appErr)
		return
	}

	response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Internal server error")
}

// mapErrorCodeToHTTPStatus maps error codes to HTTP status codes
func mapErrorCodeToHTTPStatus(code string) int {
	switch {
	case code == response.ErrCodeNotFound:
		return http.StatusNotFound
	case response.IsValidationCode(code):
		return http.StatusBadRequest
	case response.IsConflictCode(code):
		return http.StatusConflict
	case code == response.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case code == response.ErrCodeForbidden:
		return http.StatusForbidden
	case code == response.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
