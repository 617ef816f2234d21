package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/calebsoh/menucard/pkg/errors"
)

// ErrorBody is the single failure payload shape the API produces.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON writes a success payload as-is with the given status code.
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Message writes a `{"message": ...}` payload, the common success shape
// for operations without a resource body.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// Error derives a status code and client message from err and writes the
// `{"error": ...}` failure body. Internal error details never reach the client.
func Error(c *gin.Context, err error) {
	if err == nil {
		err = appErrors.ErrInternalServer
	}

	appErr := appErrors.FromError(err)
	status := appErr.StatusCode
	if status == 0 {
		status = http.StatusInternalServerError
	}

	c.JSON(status, ErrorBody{Error: appErr.Message})
}
