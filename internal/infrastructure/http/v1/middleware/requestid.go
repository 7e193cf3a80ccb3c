// Package middleware provides HTTP middleware components.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fakturo/pkg/logger"
)

const HeaderRequestID = "X-Request-ID"

// RequestID middleware assigns every request an identifier, propagates it
// through the context for logging, and echoes it in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		ctx := logger.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Set("request_id", requestID)
		c.Header(HeaderRequestID, requestID)

		c.Next()
	}
}
