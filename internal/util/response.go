package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the generic success payload shape.
type Response map[string]interface{}

// JSON writes data with status 200.
func JSON(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Success writes a key/value success payload with status 200.
func Success(c *gin.Context, data Response) {
	c.JSON(http.StatusOK, data)
}

// Error writes the flat {"error": msg} shape every failure uses.
func Error(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, gin.H{"error": msg})
}
