package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	HeaderRequestID        = "X-Request-ID"
	ContextKeyRequestID    = "request_id"
	maxInboundRequestIDLen = 128
)

// RequestLogger tags each request with an id (reusing a sane inbound
// X-Request-ID) and logs one line per request once the handler returns.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxInboundRequestIDLen {
			id = uuid.NewString()
		}
		c.Set(ContextKeyRequestID, id)
		c.Header(HeaderRequestID, id)

		c.Next()

		fields := []zap.Field{
			zap.String("request_id", id),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Int("bytes", c.Writer.Size()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		}
		if caller := GetUserID(c); caller != 0 {
			fields = append(fields, zap.Int64("caller_id", caller))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		if c.Writer.Status() >= 500 {
			logger.Error("http request", fields...)
			return
		}
		logger.Info("http request", fields...)
	}
}

// GetRequestID returns the id assigned by RequestLogger.
func GetRequestID(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}
