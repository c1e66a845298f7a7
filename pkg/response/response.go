package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DefaultErrorMessage is shown when an internal error has no safe detail text.
const DefaultErrorMessage = "Something went wrong. Please try again."

// Detail is the error body shape. Failures carry a single detail message
// field and a non-2xx status.
type Detail struct {
	Detail string `json:"detail"`
}

// OK sends 200 with the payload as-is. Success payloads are not wrapped in
// an envelope; each endpoint defines its own exact shape.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error sends the given status with a detail message.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Detail{Detail: message})
}

// BadRequest sends 400 with a detail message.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized sends 401 with a detail message.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Conflict sends 409 with a detail message.
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// TooManyRequests sends 429 with a detail message.
func TooManyRequests(c *gin.Context, message string) {
	Error(c, http.StatusTooManyRequests, message)
}

// InternalError sends 500 with the error text as detail. The upstream
// services' error messages are user-facing data in this app, so the text is
// passed through rather than masked.
func InternalError(c *gin.Context, err error) {
	message := DefaultErrorMessage
	if err != nil {
		message = err.Error()
	}
	Error(c, http.StatusInternalServerError, message)
}
