package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuvraj-revolt-motors/license-tracker/logger"
	"github.com/yuvraj-revolt-motors/license-tracker/utils"
)

func quietLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, logger.Initialize(logger.Config{Level: logger.DEBUG, Output: &buf}))
	return &buf
}

func TestChainMiddleware_Order(t *testing.T) {
	var order []string
	mark := func(name string) func(http.HandlerFunc) http.HandlerFunc {
		return func(next http.HandlerFunc) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next(w, r)
			}
		}
	}

	h := ChainMiddleware(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}, mark("first"), mark("second"))

	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	buf := quietLogger(t)

	var seen string
	h := LoggingMiddleware(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))
	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
	assert.Contains(t, buf.String(), "status=418")

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	h(httptest.NewRecorder(), req)
	assert.Equal(t, "abc-123", seen)
}

func TestAuthMiddleware(t *testing.T) {
	quietLogger(t)

	var user string
	ok := func(w http.ResponseWriter, r *http.Request) {
		user = Username(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}

	t.Run("disabled without secret", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewAuthMiddleware("")(ok)(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	h := NewAuthMiddleware("s3cret")(ok)

	t.Run("missing header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Authorization header required")
	})

	t.Run("wrong scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic abc")
		rec := httptest.NewRecorder()
		h(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token, _, err := utils.GenerateToken("priya", []byte("s3cret"), time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		h(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "priya", user)
	})
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	called := false
	h := CORSMiddleware(func(w http.ResponseWriter, r *http.Request) { called = true })

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodOptions, "/api/licenses", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, called)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNormalizePath(t *testing.T) {
	tests := map[string]string{
		"/api/licenses/42/remove":     "/api/licenses/{id}/remove",
		"/api/licenses/42/reactivate": "/api/licenses/{id}/reactivate",
		"/api/tickets/ADD-1F2E3D4C":   "/api/tickets/{id}",
		"/swagger/index.html":         "/swagger/",
		"/api/dashboard":              "/api/dashboard",
	}
	for in, want := range tests {
		assert.Equal(t, want, normalizePath(in), in)
	}
}

func TestMetricsMiddleware_RecordsStatus(t *testing.T) {
	h := MetricsMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/api/views/tickets", nil))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
