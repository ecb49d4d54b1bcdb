package response

import (
	"time"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope wrapping every API payload
type APIResponse struct {
	Success   bool       `json:"success"`
	Data      any        `json:"data,omitempty"`
	Error     *AppError  `json:"error,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}

// SendSuccess writes a success envelope with the given status and payload
func SendSuccess(c *gin.Context, status int, data any) {
	c.JSON(status, APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

// SendError writes an error envelope with the given status, code and message
func SendError(c *gin.Context, status int, code, message string) {
	c.JSON(status, APIResponse{
		Success:   false,
		Error:     NewAppError(code, message),
		Timestamp: time.Now().UTC(),
	})
}

// SendAppError writes an error envelope preserving the error's structured details
func SendAppError(c *gin.Context, status int, err *AppError) {
	c.JSON(status, APIResponse{
		Success:   false,
		Error:     err,
		Timestamp: time.Now().UTC(),
	})
}
