package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zaoqi-icu/negoprep/internal/logging"
)

// HTTPRecorder observes handled requests. Implemented by the metrics
// package; nil disables recording.
type HTTPRecorder interface {
	ObserveHTTP(method, route, status string, seconds float64)
}

// requestLogger logs each request with method, route, status and latency.
func requestLogger(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("http request",
			logging.String("method", c.Request.Method),
			logging.String("path", c.Request.URL.Path),
			logging.Int("status", c.Writer.Status()),
			logging.Duration("latency", time.Since(start)),
		)
	}
}

// observeRequests feeds the request histogram, keyed by the route pattern
// rather than the raw path so identifiers do not explode cardinality.
func observeRequests(rec HTTPRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		rec.ObserveHTTP(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}

// cors allows browser frontends on other origins to call the API.
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
