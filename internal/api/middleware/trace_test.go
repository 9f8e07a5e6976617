package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	base, buf := logger.GetTestLogger(t)

	var seenTraceID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusTeapot)
	})

	handler := NewTraceMiddleware(base)(next)

	req := httptest.NewRequest(http.MethodGet, "/todos/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Len(t, seenTraceID, 32)
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, seenTraceID, rec.Header().Get(shared.TraceIDHeader))

	logger.AssertLogField(t, buf, "msg", "inside handler")
	logger.AssertLogField(t, buf, "trace_id", seenTraceID)
}

func TestTraceMiddlewareFreshIDPerRequest(t *testing.T) {
	handler := NewTraceMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEqual(t,
		first.Header().Get(shared.TraceIDHeader),
		second.Header().Get(shared.TraceIDHeader))
}
