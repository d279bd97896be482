package controllerImp

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"tripbuddy/pkg/search"
)

var started = time.Now()

type check struct {
	OK     bool   `json:"ok"`
	Detail string `json:"detail,omitempty"`
}

type HealthCtrl struct {
	db       *gorm.DB
	catalog  search.Catalog
	adapters map[string]bool
}

func NewHealthCtrl(db *gorm.DB, catalog search.Catalog, adapters map[string]bool) *HealthCtrl {
	return &HealthCtrl{db: db, catalog: catalog, adapters: adapters}
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	checks := map[string]check{
		"database": h.checkDB(ctx),
		"catalog":  checkCatalog(h.catalog),
	}

	live := 0
	for _, on := range h.adapters {
		if on {
			live++
		}
	}
	// zero configured adapters is fine, the fallback catalog covers searches
	checks["adapters"] = check{OK: true, Detail: fmt.Sprintf("%d/%d configured", live, len(h.adapters))}

	ok := checks["database"].OK && checks["catalog"].OK
	status := http.StatusOK
	if !ok {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]any{
		"ok":         ok,
		"uptime_sec": int(time.Since(started).Seconds()),
		"time":       time.Now().Format(time.RFC3339),
		"checks":     checks,
	})
}

func (h *HealthCtrl) checkDB(ctx context.Context) check {
	if h.db == nil {
		return check{Detail: "gorm db is nil"}
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return check{Detail: err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return check{Detail: err.Error()}
	}
	return check{OK: true}
}

// checkCatalog fails when any fallback category is empty, since selection
// leans on the catalog whenever a live search returns nothing.
func checkCatalog(cat search.Catalog) check {
	switch {
	case len(cat.Flights) == 0:
		return check{Detail: "no fallback flights"}
	case len(cat.Hotels) == 0:
		return check{Detail: "no fallback hotels"}
	case len(cat.Activities) == 0:
		return check{Detail: "no fallback activities"}
	}
	return check{OK: true}
}
