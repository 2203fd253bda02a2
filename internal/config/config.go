package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config holds everything the server reads from the environment. Missing
// provider keys are warnings, not startup failures: the dependent
// endpoints degrade to per-request 500s instead of the process refusing
// to boot.
type Config struct {
	FinnhubAPIKey      string
	AlphaVantageAPIKey string
	Port               int
	Environment        string
	RateLimitPerMin    int
	AllowedOrigins     []string
}

func Load() *Config {
	cfg := &Config{
		FinnhubAPIKey:      strings.TrimSpace(os.Getenv("FINNHUB_API_KEY")),
		AlphaVantageAPIKey: strings.TrimSpace(os.Getenv("ALPHAVANTAGE_API_KEY")),
	}

	if cfg.FinnhubAPIKey == "" {
		log.Println("Warning: FINNHUB_API_KEY not set, /quotes will return 500")
	}
	if cfg.AlphaVantageAPIKey == "" {
		log.Println("Warning: ALPHAVANTAGE_API_KEY not set, /fx and /search will return 500")
	}

	cfg.Port = 8080
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n < 65536 {
			cfg.Port = n
		} else {
			log.Printf("Warning: ignoring invalid PORT=%q", v)
		}
	}

	cfg.Environment = strings.TrimSpace(os.Getenv("APP_ENV"))
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	cfg.RateLimitPerMin = 60
	if v := strings.TrimSpace(os.Getenv("RATE_LIMIT_PER_MIN")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RateLimitPerMin = n
		}
	}

	cfg.AllowedOrigins = []string{"*"}
	if v := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.AllowedOrigins = origins
		}
	}

	return cfg
}
