package router

import (
	"github.com/labstack/echo/v4"

	"tripbuddy/pkg/middleware"
)

func New(
	e *echo.Echo,
	planCtrl interface {
		CreateTrip(echo.Context) error
		ListTrips(echo.Context) error
		Plan(echo.Context) error
		GetPlan(echo.Context) error
		ListPlans(echo.Context) error
	},
	schedCtrl interface {
		List(echo.Context) error
		Patch(echo.Context) error
	},
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	guideCtrl interface {
		IngestText(echo.Context) error
		IngestURL(echo.Context) error
		Search(echo.Context) error
		Info(echo.Context) error
	},
	exportCtrl interface{ Download(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.DevLogin())
	api := e.Group("")

	api.GET("/whoami", authCtrl.WhoAmI)
	api.GET("/devlogin", authCtrl.DevLogin)
	e.GET("/health", healthCtrl.Health)

	// Guide KB endpoints
	api.POST("/guides/ingest", guideCtrl.IngestText)
	api.POST("/guides/ingest/url", guideCtrl.IngestURL)
	api.GET("/guides/search", guideCtrl.Search)
	api.GET("/destinations/:name", guideCtrl.Info)

	api.POST("/trips", planCtrl.CreateTrip)
	api.GET("/trips", planCtrl.ListTrips)

	g := e.Group("/trips")
	g.POST("/:id/plan", planCtrl.Plan)
	g.GET("/:id/plan", planCtrl.GetPlan)
	g.GET("/:id/plans", planCtrl.ListPlans)
	g.GET("/:id/plan/export.xlsx", exportCtrl.Download)

	api.GET("/trips/:id/schedule", schedCtrl.List)
	api.PATCH("/schedule/:item_id", schedCtrl.Patch)
	return e
}
