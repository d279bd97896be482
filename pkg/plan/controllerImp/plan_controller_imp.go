package controllerImp

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"tripbuddy/pkg/plan/service"
)

type PlanCtrl struct{ svc service.PlanService }

func NewPlanCtrl(svc service.PlanService) *PlanCtrl { return &PlanCtrl{svc: svc} }

func (h *PlanCtrl) CreateTrip(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	var body struct {
		Request  string `json:"request"`
		Priority string `json:"priority"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if strings.TrimSpace(body.Request) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "request is required"})
	}
	t, err := h.svc.CreateTrip(uid, body.Request, body.Priority)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *PlanCtrl) ListTrips(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	ts, err := h.svc.ListTrips(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, ts)
}

func (h *PlanCtrl) Plan(c echo.Context) error {
	tid, _ := strconv.Atoi(c.Param("id"))
	p, st, err := h.svc.PlanTrip(uint(tid))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}

	if c.QueryParam("format") == "calendar" && st.Itinerary != nil {
		type CalItem struct {
			Time     string  `json:"time"`
			Title    string  `json:"title"`
			Cost     float64 `json:"cost"`
			Duration string  `json:"duration,omitempty"`
			Notes    string  `json:"notes,omitempty"`
		}
		cal := map[string][]CalItem{} // "YYYY-MM-DD" -> items
		for _, day := range st.Itinerary.Days {
			for _, s := range day.Slots {
				cal[day.Date] = append(cal[day.Date], CalItem{
					Time: s.Time, Title: s.Title, Cost: s.Cost,
					Duration: s.Duration, Notes: s.Description,
				})
			}
		}
		return c.JSON(http.StatusCreated, map[string]any{
			"trip_id":  p.TripID,
			"plan_id":  p.PlanID,
			"version":  p.Version,
			"calendar": cal,
		})
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"plan":         p,
		"report":       st.FinalResponse,
		"optimization": st.Optimization,
		"itinerary":    st.Itinerary,
	})
}

func (h *PlanCtrl) GetPlan(c echo.Context) error {
	tid, _ := strconv.Atoi(c.Param("id"))
	p, err := h.svc.LatestPlan(uint(tid))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no plan for trip"})
	}
	if c.QueryParam("format") == "text" {
		return c.String(http.StatusOK, p.ReportText)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PlanCtrl) ListPlans(c echo.Context) error {
	tid, _ := strconv.Atoi(c.Param("id"))
	ps, err := h.svc.ListPlans(uint(tid))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, ps)
}
