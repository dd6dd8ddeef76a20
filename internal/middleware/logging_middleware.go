package middleware

import (
	"time"

	"github.com/annel0/voxel-sandbox/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader - заголовок, в котором клиент может передать свой request-id.
const RequestIDHeader = "X-Request-ID"

// RequestLogger снабжает каждый HTTP-запрос request-id и пишет краткие логи.
// Пишет в логгер компонента api на уровне DEBUG.
type RequestLogger struct{}

func NewRequestLogger() *RequestLogger { return &RequestLogger{} }

func (rl *RequestLogger) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)

		start := time.Now()
		method := c.Request.Method
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		logging.GetAPILogger().Debug("[HTTP] ▶ %s %s ip=%s req=%s", method, path, c.ClientIP(), requestID)

		c.Next()

		logging.GetAPILogger().Debug("[HTTP] ◀ %s %s %d %s req=%s", method, path, c.Writer.Status(), time.Since(start), requestID)
	}
}
