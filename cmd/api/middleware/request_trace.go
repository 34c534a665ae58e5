package middleware

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tech-pulse/cmd/internal/httpclient"
	"tech-pulse/cmd/internal/logger"
	"tech-pulse/cmd/internal/trace"
)

const (
	maxRequestIDLen = 64
	maxBodyLog      = 512
)

// 헬스체크와 스크레이프는 완료 로그를 debug 로 낮춘다
var quietRoutes = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// RequestTrace는 모든 inbound 요청에 Request ID 를 보장하고(클라이언트가 보낸 값이 유효하면 재사용)
// 라우트, 상태 코드, 소요 시간을 담은 완료 로그를 남긴다.
// 5xx 는 error, 4xx 는 warn 으로 기록한다.
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := inboundRequestID(c.Request.Header.Get(trace.HeaderRequestID))
		ctx := trace.WithRequestAndSpan(c.Request.Context(), requestID, 0)
		c.Request = c.Request.WithContext(ctx)
		c.Request.Header.Set(trace.HeaderRequestID, requestID)
		c.Writer.Header().Set(trace.HeaderRequestID, requestID)
		c.Writer.Header().Set(trace.HeaderSpanID, trace.CurrentSpanID(ctx))

		body := peekJSONBody(c.Request)

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		fields := logger.Fields{
			"method":     c.Request.Method,
			"route":      route,
			"url":        httpclient.RedactURL(c.Request.URL),
			"status":     status,
			"duration":   time.Since(start).String(),
			"request_id": requestID,
			// 요청 중 outbound 호출이 있었다면 마지막 span 이 찍힌다
			"span_id": trace.CurrentSpanID(c.Request.Context()),
		}
		if body != "" {
			fields["body"] = body
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.ErrorWithFields("completed request", fields)
		case status >= http.StatusBadRequest:
			logger.WarnWithFields("completed request", fields)
		case quietRoutes[route]:
			logger.DebugWithFields("completed request", fields)
		default:
			logger.InfoWithFields("completed request", fields)
		}
	}
}

// inboundRequestID 는 헤더 값이 ID 로 쓸 만하면 그대로, 아니면 새 ID 를 돌려준다.
func inboundRequestID(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || len(v) > maxRequestIDLen {
		return trace.GenerateID()
	}
	for _, r := range v {
		if !(r == '-' || r == '_' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return trace.GenerateID()
		}
	}
	return v
}

// peekJSONBody 는 JSON 요청 본문 앞부분을 읽고 핸들러가 다시 읽을 수 있도록 Body 를 복원한다.
func peekJSONBody(req *http.Request) string {
	if req.Body == nil || req.ContentLength == 0 {
		return ""
	}
	if !strings.HasPrefix(req.Header.Get("Content-Type"), "application/json") {
		return ""
	}
	raw, err := io.ReadAll(req.Body)
	req.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil || len(raw) == 0 {
		return ""
	}
	if len(raw) > maxBodyLog {
		raw = raw[:maxBodyLog]
	}
	return string(raw)
}
