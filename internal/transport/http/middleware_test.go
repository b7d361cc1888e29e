package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	h := middleware.RequestID(requestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/boom" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("ok"))
	})))

	decode := func(t *testing.T) map[string]any {
		t.Helper()
		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		buf.Reset()
		return line
	}

	t.Run("success is info", func(t *testing.T) {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

		line := decode(t)
		assert.Equal(t, "http request", line["msg"])
		assert.Equal(t, "INFO", line["level"])
		assert.Equal(t, "GET", line["method"])
		assert.Equal(t, "/health", line["path"])
		assert.EqualValues(t, 200, line["status"])
		assert.EqualValues(t, 2, line["bytes"])
		assert.NotEmpty(t, line["request_id"])
	})

	t.Run("server error is error", func(t *testing.T) {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/boom", nil))

		line := decode(t)
		assert.Equal(t, "ERROR", line["level"])
		assert.Equal(t, "POST", line["method"])
		assert.EqualValues(t, 500, line["status"])
	})
}

func TestRouterLogsThroughServiceLogger(t *testing.T) {
	var buf bytes.Buffer
	router := NewRouter(NewHandler(Deps{Logger: slog.New(slog.NewJSONHandler(&buf, nil))}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "/health", line["path"])
	assert.EqualValues(t, 200, line["status"])
}
