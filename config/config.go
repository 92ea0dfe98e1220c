package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port   string
	DBPath string // empty disables the forum store

	GroqEndpoint string
	GroqAPIKey   string
	GroqModel    string

	WeatherEndpoint string
	WeatherAPIKey   string

	MarketEndpoint   string
	MarketAPIKey     string
	MarketResourceID string
	MarketXLSX       string
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
		Port:             get("PORT", "8080"),
		DBPath:           get("DB_PATH", "farmhub.db"),
		GroqEndpoint:     get("GROQ_ENDPOINT", ""),
		GroqAPIKey:       get("GROQ_API_KEY", ""),
		GroqModel:        get("GROQ_MODEL", ""),
		WeatherEndpoint:  get("WEATHER_ENDPOINT", ""),
		WeatherAPIKey:    get("WEATHER_API_KEY", ""),
		MarketEndpoint:   get("MARKET_ENDPOINT", ""),
		MarketAPIKey:     get("MARKET_API_KEY", ""),
		MarketResourceID: get("MARKET_RESOURCE_ID", ""),
		MarketXLSX:       get("MARKET_XLSX", ""),
	}
	log.Printf("[cfg] port=%s db=%q groq=%t weather=%t market=%t",
		cfg.Port, cfg.DBPath, cfg.GroqAPIKey != "", cfg.WeatherAPIKey != "", cfg.MarketAPIKey != "")
	return cfg
}
