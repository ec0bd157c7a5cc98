package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

const RequestIDKey = "request_id"

// RequestID tags each request with an id: the active trace id when a span
// context is present, a fresh uuid otherwise.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := ""
		if sc := trace.SpanContextFromContext(c.Request.Context()); sc.IsValid() {
			id = sc.TraceID().String()
		}
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}

// Logger writes one structured access line per request.
func Logger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		event := log.Info()
		if c.Writer.Status() >= 500 {
			event = log.Error()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("client_ip", c.ClientIP()).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("request_id", c.GetString(RequestIDKey)).
			Msg("http request")
	}
}
