package api

import (
	"eld-trip-planner/internal/platform/obs"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// requestID tags every request with an id, taken from the caller when
// present, and makes it available to obs.Time through the context.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}

		c.Header(requestIDHeader, id)
		c.Request = c.Request.WithContext(obs.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// loggingMiddleware logs end-to-end request duration and response size for basic observability.
func loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Milliseconds()

		// Size is -1 when nothing was written.
		bytes := c.Writer.Size()
		if bytes < 0 {
			bytes = 0
		}

		log.Printf(
			"method=%s path=%s status=%d bytes=%d dur=%dms rid=%s",
			c.Request.Method, c.Request.URL.RequestURI(), c.Writer.Status(), bytes, duration,
			obs.RequestID(c.Request.Context()),
		)
	}
}

// recovery answers a panicking handler with a JSON 500 instead of a dropped connection.
func recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, err any) {
		log.Printf("panic recovered: method=%s path=%s err=%v", c.Request.Method, c.Request.URL.Path, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	})
}
