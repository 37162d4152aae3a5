package middelware

import (
	"strings"
	"time"

	"fleetdash-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

// LoggingMiddleware provides request logging
type LoggingMiddleware struct {
	logger logger.Logger
}

// NewLoggingMiddleware creates a new logging middleware
func NewLoggingMiddleware(log logger.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{
		logger: log,
	}
}

// RequestLogger logs each request with method, path, status and latency
func (m *LoggingMiddleware) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if strings.HasSuffix(path, "/health") {
			return
		}

		latency := time.Since(start)

		fields := map[string]interface{}{
			"method":  c.Request.Method,
			"path":    path,
			"query":   raw,
			"status":  c.Writer.Status(),
			"latency": latency,
			"ip":      c.ClientIP(),
		}
		if username, exists := c.Get("username"); exists {
			fields["username"] = username
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		switch {
		case c.Writer.Status() >= 500:
			m.logger.Errorf("HTTP request failed: %+v", fields)
		case c.Writer.Status() >= 400:
			m.logger.Warnf("HTTP request rejected: %+v", fields)
		default:
			m.logger.Infof("HTTP request completed: %+v", fields)
		}
	}
}

// Recovery converts panics into a 500 response instead of killing the
// process
func (m *LoggingMiddleware) Recovery() gin.HandlerFunc {
	return gin.RecoveryWithWriter(gin.DefaultErrorWriter, func(c *gin.Context, recovered interface{}) {
		m.logger.Errorf("Panic recovered: %v", recovered)

		c.JSON(500, gin.H{
			"error":   "Internal Server Error",
			"message": "An unexpected error occurred",
		})
	})
}
