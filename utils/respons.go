package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSONResponse is the envelope every endpoint returns. AJAX callers on
// the staff UI key off the success flag.
type JSONResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Success: code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Success: false,
		Message: err.Error(),
	})
}

// RespondDomainError maps a taxonomy error to its HTTP status. Internal
// errors are logged and reported generically so details never leak.
func RespondDomainError(c *gin.Context, err error) {
	code := StatusForError(err)
	if code == http.StatusInternalServerError {
		ErrorLogger.Printf("unexpected error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(code, JSONResponse{
			Success: false,
			Message: "An unexpected error occurred. Please try again.",
		})
		return
	}
	RespondError(c, code, err)
}
