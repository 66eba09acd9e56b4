package ui

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestID stamps every response with an X-Request-ID header, minting a
// time-ordered UUID v7 when the client did not send one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			if v7, err := uuid.NewV7(); err == nil {
				id = v7.String()
			} else {
				id = uuid.NewString()
			}
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
