package middleware

import (
	"strconv"

	"stayhub-backend/metrics"

	"github.com/gin-gonic/gin"
)

// HTTPMetrics counts requests by method, route template and status.
func HTTPMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.IncHTTP(c.Request.Method, route, strconv.Itoa(c.Writer.Status()))
	}
}
