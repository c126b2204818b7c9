package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 JSON with data as the body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error sends status with an {"error": message} body.
func Error(c *gin.Context, status int, message string) {
	if message == "" {
		message = DefaultErrorMessage
	}
	c.JSON(status, ErrorResp{Error: message})
}

// InternalError sends 500 with the error's text.
func InternalError(c *gin.Context, err error) {
	message := DefaultErrorMessage
	if err != nil {
		message = err.Error()
	}
	Error(c, http.StatusInternalServerError, message)
}

// TooManyRequests aborts with 429.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResp{Error: MessageTooManyRequests})
}
