package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"tripbuddy/pkg/export"
	plansvc "tripbuddy/pkg/plan/service"
	schedrepo "tripbuddy/pkg/schedule/repository"
)

type ExportCtrl struct {
	plans plansvc.PlanService
	items schedrepo.ScheduleRepository
}

func New(plans plansvc.PlanService, items schedrepo.ScheduleRepository) *ExportCtrl {
	return &ExportCtrl{plans: plans, items: items}
}

// Download streams the latest plan of a trip as an xlsx workbook.
func (h *ExportCtrl) Download(c echo.Context) error {
	tid, _ := strconv.Atoi(c.Param("id"))
	plan, err := h.plans.LatestPlan(uint(tid))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no plan for trip"})
	}
	items, err := h.items.List(uint(tid), "", "")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	f, err := export.BuildWorkbook(plan, items)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+export.Filename(plan)+`"`)
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response())
}
