package controllerImp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoReturnsDestinationRecord(t *testing.T) {
	h := New(nil, "", 0)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/destinations/Paris", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("name")
	ctx.SetParamValues("Paris")

	require.NoError(t, h.Info(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "France")
	assert.Contains(t, rec.Body.String(), "EUR")
}

func TestInfoRequiresName(t *testing.T) {
	h := New(nil, "", 0)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/destinations/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("name")
	ctx.SetParamValues("  ")

	require.NoError(t, h.Info(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNewParsesAllowlistAndDefaultsMaxBytes(t *testing.T) {
	h := New(nil, " Example.com , guides.example.org ", 0)
	assert.True(t, h.allow["example.com"])
	assert.True(t, h.allow["guides.example.org"])
	assert.False(t, h.allow["evil.example.net"])
	assert.Equal(t, 1500000, h.maxBytes)
}
