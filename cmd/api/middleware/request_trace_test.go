package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tech-pulse/cmd/internal/trace"
)

func newTraceEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestTrace())
	r.POST("/api/chat", func(c *gin.Context) {
		raw, err := io.ReadAll(c.Request.Body)
		require.NoError(t, err)
		c.JSON(http.StatusOK, gin.H{
			"echo":       string(raw),
			"request_id": trace.RequestIDFromContext(c.Request.Context()),
		})
	})
	return r
}

func TestRequestTraceReusesValidRequestID(t *testing.T) {
	r := newTraceEngine(t)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(trace.HeaderRequestID, "reader-42")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "reader-42", rec.Header().Get(trace.HeaderRequestID))
	assert.Equal(t, "0", rec.Header().Get(trace.HeaderSpanID))
	// 본문은 로깅 후에도 핸들러에서 그대로 읽힌다
	assert.Contains(t, rec.Body.String(), `"echo":"{\"message\":\"hi\"}"`)
	assert.Contains(t, rec.Body.String(), `"request_id":"reader-42"`)
}

func TestRequestTraceReplacesInvalidRequestID(t *testing.T) {
	r := newTraceEngine(t)

	for _, id := range []string{"", "has space", strings.Repeat("a", maxRequestIDLen+1)} {
		req := httptest.NewRequest(http.MethodGet, "/missing", nil)
		if id != "" {
			req.Header.Set(trace.HeaderRequestID, id)
		}
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		got := rec.Header().Get(trace.HeaderRequestID)
		assert.NotEmpty(t, got)
		assert.NotEqual(t, id, got)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}
}

func TestPeekJSONBodySkipsNonJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader("a=b"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	assert.Empty(t, peekJSONBody(req))

	long := `{"message":"` + strings.Repeat("x", 2*maxBodyLog) + `"}`
	req = httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(long))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	assert.Len(t, peekJSONBody(req), maxBodyLog)
	raw, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	assert.Equal(t, long, string(raw))
}
