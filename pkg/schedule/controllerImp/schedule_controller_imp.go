package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	repo "tripbuddy/pkg/schedule/repository"
)

type SchedCtrl struct{ repo repo.ScheduleRepository }

func New(repo repo.ScheduleRepository) *SchedCtrl { return &SchedCtrl{repo} }

func (h *SchedCtrl) List(c echo.Context) error {
	tid, _ := strconv.Atoi(c.Param("id"))
	from := c.QueryParam("from")
	to := c.QueryParam("to")
	out, err := h.repo.List(uint(tid), from, to)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SchedCtrl) Patch(c echo.Context) error {
	iid, _ := strconv.Atoi(c.Param("item_id"))
	var body struct {
		Status string  `json:"status"`
		Notes  *string `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if body.Status == "" {
		body.Status = "done"
	}
	switch body.Status {
	case "planned", "booked", "done", "skipped":
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown status"})
	}
	if err := h.repo.PatchStatus(uint(iid), body.Status, body.Notes); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
