package controllerImp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripbuddy/pkg/search"
)

func TestHealthDegradedWithoutDB(t *testing.T) {
	h := NewHealthCtrl(nil, search.DefaultCatalog(), map[string]bool{"amadeus": true, "booking": false})
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Health(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "gorm db is nil")
	assert.Contains(t, rec.Body.String(), "1/2 configured")
}

func TestCheckCatalogFlagsEmptyCategories(t *testing.T) {
	assert.True(t, checkCatalog(search.DefaultCatalog()).OK)

	cat := search.DefaultCatalog()
	cat.Hotels = nil
	c := checkCatalog(cat)
	assert.False(t, c.OK)
	assert.Equal(t, "no fallback hotels", c.Detail)
}
