package logmodule

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-Id"

// Ginrus logs one entry per request with the given prefix. A request id is
// taken from the X-Request-Id header or generated, and echoed back.
func Ginrus(prefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		entry := log.WithFields(log.Fields{
			"prefix":     prefix,
			"request_id": requestID,
			"status":     status,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"ip":         c.ClientIP(),
			"latency":    latency,
			"user-agent": c.Request.UserAgent(),
		})
		if requester := c.GetString("requester"); requester != "" {
			entry = entry.WithField("requester", requester)
		}

		if len(c.Errors) > 0 {
			entry.Error(c.Errors.ByType(gin.ErrorTypePrivate).String())
		} else if status >= 500 {
			entry.Error()
		} else if status >= 400 {
			entry.Warn()
		} else {
			entry.Info()
		}
	}
}
