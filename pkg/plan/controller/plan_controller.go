package controller

import "github.com/labstack/echo/v4"

type PlanController interface {
	CreateTrip(c echo.Context) error
	ListTrips(c echo.Context) error
	Plan(c echo.Context) error
	GetPlan(c echo.Context) error
	ListPlans(c echo.Context) error
}
