package shared

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/todos/", nil)
	rec := httptest.NewRecorder()

	RespondWithJSON(rec, req, http.StatusOK, []map[string]string{{"id": "1"}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `[{"id":"1"}]`, rec.Body.String())
}

func TestRespondOK(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondOK(rec)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRespondWithError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/todos/x", nil)
	rec := httptest.NewRecorder()

	RespondWithError(rec, req, http.StatusBadRequest, "Invalid request format")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid request format"}`, rec.Body.String())
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "client error logs at debug", status: http.StatusNotFound, wantLevel: "DEBUG"},
		{name: "server error logs at error", status: http.StatusInternalServerError, wantLevel: "ERROR"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, buf := logger.GetTestLogger(t)
			ctx := logger.WithLogger(context.Background(), l)
			req := httptest.NewRequest(http.MethodDelete, "/todos/x", nil).WithContext(ctx)
			rec := httptest.NewRecorder()

			err := errors.New("open /var/lib/todo/state: disk on fire")
			RespondWithErrorAndLog(rec, req, tc.status, "Something went wrong!", err)

			assert.Equal(t, tc.status, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, map[string]interface{}{"error": "Something went wrong!"}, body,
				"only the safe message is sent to the client")

			logger.AssertLogField(t, buf, "level", tc.wantLevel)
			logger.AssertLogField(t, buf, "status_code", float64(tc.status))
			assert.NotContains(t, buf.String(), "/var/lib/todo", "paths are redacted in logs")
			assert.Contains(t, buf.String(), "disk on fire")
		})
	}
}
