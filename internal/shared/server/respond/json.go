package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes a JSON response with the given status.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK writes a 200 OK JSON response.
func OK(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}

// Message writes a 200 response carrying a human-readable message plus extra fields.
func Message(c *gin.Context, message string, extra gin.H) {
	body := gin.H{"message": message}
	for k, v := range extra {
		body[k] = v
	}
	OK(c, body)
}
