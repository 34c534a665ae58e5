package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"tech-pulse/cmd/api/metrics"
)

// RequestMetrics 는 라우트별 요청 수와 처리 시간을 Prometheus 에 기록한다.
// 매칭되는 라우트가 없으면 path 대신 "unmatched" 를 사용해 label 폭증을 막는다.
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordHTTPRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}
