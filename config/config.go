package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port     string
	Timezone string
	DBPath   string

	LLMEndpoint string
	LLMAPIKey   string
	LLMModel    string

	EmbEndpoint string
	EmbAPIKey   string
	EmbModel    string

	GuideAllowedDomains string
	GuideMaxBytes       int

	AmadeusKey    string
	AmadeusSecret string
	RapidAPIKey   string
	TripAdvisorKey string
	GetYourGuideKey string

	CatalogPath string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:        get("PORT", "8080"),
		Timezone:    get("TZ", "UTC"),
		DBPath:      get("DB_PATH", "tripbuddy.db"),
		LLMEndpoint: get("LLM_ENDPOINT", ""),
		LLMAPIKey:   get("LLM_API_KEY", ""),
		LLMModel:    get("LLM_MODEL", "gpt-4o-mini"),

		EmbEndpoint: get("EMB_ENDPOINT", ""),
		EmbAPIKey:   get("EMB_API_KEY", ""),
		EmbModel:    get("EMB_MODEL", ""),

		GuideAllowedDomains: get("GUIDE_ALLOWED_DOMAINS", ""),
		GuideMaxBytes:       getInt("GUIDE_MAX_BYTES_PER_PAGE", 1500000),

		AmadeusKey:      get("AMADEUS_API_KEY", ""),
		AmadeusSecret:   get("AMADEUS_API_SECRET", ""),
		RapidAPIKey:     get("RAPIDAPI_KEY", ""),
		TripAdvisorKey:  get("TRIPADVISOR_API_KEY", ""),
		GetYourGuideKey: get("GETYOURGUIDE_API_KEY", ""),

		CatalogPath: get("CATALOG_PATH", ""),
	}
	log.Printf("[cfg] port=%s db=%s llm=%t amadeus=%t booking=%t tripadvisor=%t",
		cfg.Port, cfg.DBPath, cfg.LLMEndpoint != "", cfg.AmadeusKey != "", cfg.RapidAPIKey != "", cfg.TripAdvisorKey != "")
	return cfg
}

func getInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("[cfg] %s=%q is not a positive integer, using %d", k, v, def)
		return def
	}
	return n
}
