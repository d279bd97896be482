package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"tripbuddy/config"
	"tripbuddy/database"
	"tripbuddy/router"

	// Auth
	authCtrlImp "tripbuddy/pkg/auth/controllerImp"

	// Schedule (itinerary items)
	schedCtrlImp "tripbuddy/pkg/schedule/controllerImp"
	schedRepoImp "tripbuddy/pkg/schedule/repositoryImp"

	// Plan
	planCtrlImp "tripbuddy/pkg/plan/controllerImp"
	planRepoImp "tripbuddy/pkg/plan/repositoryImp"
	planSvc "tripbuddy/pkg/plan/serviceImp"

	// Search + optimization
	"tripbuddy/pkg/budget"
	"tripbuddy/pkg/search"

	// LLM
	"tripbuddy/pkg/ai"

	// Destination guides
	guideCtrlImp "tripbuddy/pkg/dest/controllerImp"
	guideEmbedder "tripbuddy/pkg/dest/embedder"
	guideRepoImp "tripbuddy/pkg/dest/repositoryImp"
	guideSvcImp "tripbuddy/pkg/dest/serviceImp"

	// Bookings
	bookCtrlImp "tripbuddy/pkg/booking/controllerImp"
	bookSvc "tripbuddy/pkg/booking/service"

	// Export
	exportCtrlImp "tripbuddy/pkg/export/controllerImp"

	// Health
	healthCtrlImp "tripbuddy/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 4) Fallback catalog (CSV override optional)
	catalog := search.DefaultCatalog()
	if cfg.CatalogPath != "" {
		c, err := search.LoadCatalog(cfg.CatalogPath)
		if err != nil {
			log.Printf("catalog warn: %v", err)
		} else {
			catalog = c
		}
	}

	// 5) LLM (mock fallback)
	var llm ai.Client
	if cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "" {
		llm = ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
	} else {
		llm = ai.NewMock()
	}

	// 6) Guide KB wiring
	emb := guideEmbedder.New(cfg.EmbEndpoint, cfg.EmbAPIKey, cfg.EmbModel)
	guideRepo := guideRepoImp.New(db)
	guideSvc := guideSvcImp.New(guideRepo, emb)
	guideCtrl := guideCtrlImp.New(guideSvc, cfg.GuideAllowedDomains, cfg.GuideMaxBytes)

	// 7) Search adapters
	amadeus := search.NewAmadeus(cfg.AmadeusKey, cfg.AmadeusSecret)
	hotels := search.NewHotelSearch(search.NewBookingCom(cfg.RapidAPIKey), amadeus)
	acts := search.NewActivitySearch(search.NewTripAdvisor(cfg.TripAdvisorKey), search.NewGetYourGuide(cfg.GetYourGuideKey))

	pipe := &planSvc.Pipeline{
		Flights:  amadeus,
		Hotels:   hotels,
		Acts:     acts,
		Fallback: catalog,
		Opt:      budget.New(catalog),
		LLM:      llm,
	}

	// 8) Repos/Services/Controllers
	sRepo := schedRepoImp.New(db)
	pRepo := planRepoImp.New(db)
	scCtrl := schedCtrlImp.New(sRepo)

	bkSvc := bookSvc.New(db)
	bkCtrl := bookCtrlImp.New(bkSvc)

	pSvc := planSvc.NewPlanService(pipe, llm, guideSvc, pRepo, sRepo, bkSvc)
	plCtrl := planCtrlImp.NewPlanCtrl(pSvc)

	exCtrl := exportCtrlImp.New(pSvc, sRepo)

	// Auth + Health
	authCtrl := authCtrlImp.NewAuthController()
	hCtrl := healthCtrlImp.NewHealthCtrl(db, catalog, map[string]bool{
		"amadeus":      cfg.AmadeusKey != "",
		"booking":      cfg.RapidAPIKey != "",
		"tripadvisor":  cfg.TripAdvisorKey != "",
		"getyourguide": cfg.GetYourGuideKey != "",
	})

	// 9) Router
	r := router.New(
		e,
		plCtrl,
		scCtrl,
		authCtrl,
		guideCtrl,
		exCtrl,
		hCtrl,
	)
	bkCtrl.Register(e.Group(""))

	// 10) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
