package utils

import (
	"github.com/gin-gonic/gin"
)

// RespondError writes the flat {"error": ...} body the frontend expects.
func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, gin.H{"error": err.Error()})
}
