package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetRequestID(t *testing.T) {
	e := echo.New()

	t.Run("from echo context", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		SetRequestID(c, "abc")

		assert.Equal(t, "abc", GetRequestID(c))
	})

	t.Run("falls back to request context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithRequestID(req.Context(), "from-ctx"))
		c := e.NewContext(req, httptest.NewRecorder())

		assert.Equal(t, "from-ctx", GetRequestID(c))
	})

	t.Run("empty outside middleware", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		assert.Empty(t, GetRequestID(c))
	})
}

func TestWithRequestScope(t *testing.T) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewJSONHandler(buf, nil))

	ctx := WithRequestScope(context.Background(), "req-7", base)

	assert.Equal(t, "req-7", GetRequestIDFromContext(ctx))
	GetLoggerOrDefault(ctx, nil).Info("hello")
	assert.Contains(t, buf.String(), `"request_id":"req-7"`)
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	assert.Nil(t, GetLogger(context.Background()))
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
}
