package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
)

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
	if err := c.Errors.Last(); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", c.Request.Method, c.Request.URL.Path, err)
	}
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, gin.H{"error": msg})
	c.Abort()
}
