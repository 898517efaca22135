package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/mercadoflow/meli-gateway/pkg/types"
)

func recoveryContext(t *testing.T, method, path string) (echo.Context, *httptest.ResponseRecorder, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	e := echo.New()
	req := httptest.NewRequest(method, path, http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return c, rec, &buf
}

func TestRecovery_NoPanic(t *testing.T) {
	t.Parallel()

	c, rec, buf := recoveryContext(t, http.MethodGet, "/meli/products/rules")
	logger := slog.New(slog.NewTextHandler(buf, nil))

	handler := Recovery(logger)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	err := handler(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, buf.String(), "no panic should produce no log output")
}

func TestRecovery_NilCredentialDereference(t *testing.T) {
	t.Parallel()

	c, rec, buf := recoveryContext(t, http.MethodPost, "/meli/products/category")
	c.Set("request_id", "req-abc-123")
	logger := slog.New(slog.NewTextHandler(buf, nil))

	handler := Recovery(logger)(func(_ echo.Context) error {
		var cred *domain.Credential
		_ = cred.AccessToken // nil dereference, as a handler bug would
		return nil
	})

	err := handler(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")

	logOutput := buf.String()
	assert.Contains(t, logOutput, "panic recovered")
	assert.Contains(t, logOutput, "nil pointer dereference")
	assert.Contains(t, logOutput, "path=/meli/products/category")
	assert.Contains(t, logOutput, "request_id=req-abc-123")
}

func TestRecovery_PanicValue(t *testing.T) {
	t.Parallel()

	c, rec, buf := recoveryContext(t, http.MethodPost, "/meli/products/size_charts/simple")
	logger := slog.New(slog.NewTextHandler(buf, nil))

	handler := Recovery(logger)(func(_ echo.Context) error {
		panic(42) // panic with non-string value
	})

	err := handler(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	logOutput := buf.String()
	assert.Contains(t, logOutput, "42")
	assert.Contains(t, logOutput, "method=POST")
}
