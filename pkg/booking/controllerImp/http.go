package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"tripbuddy/entities"
	bsvc "tripbuddy/pkg/booking/service"
)

type httpCtrl struct{ s bsvc.Service }

func New(s bsvc.Service) *httpCtrl { return &httpCtrl{s: s} }

func (h *httpCtrl) Register(g *echo.Group) {
	g.POST("/trips/:trip_id/bookings", h.create)
	g.GET("/trips/:trip_id/bookings", h.list)
	g.PATCH("/bookings/:id", h.patch)
}

func (h *httpCtrl) create(c echo.Context) error {
	tripID, err := parseUint(c.Param("trip_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid trip_id"})
	}
	var in entities.Booking
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	in.TripID = uint(tripID)
	if err := h.s.Create(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, in)
}

func (h *httpCtrl) list(c echo.Context) error {
	tripID, err := parseUint(c.Param("trip_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid trip_id"})
	}
	list, err := h.s.ListByTrip(uint(tripID))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, list)
}

func (h *httpCtrl) patch(c echo.Context) error {
	id, err := parseUint(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var in bsvc.BookingPatch
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	out, err := h.s.UpdatePartial(uint(id), in)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func parseUint(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}
