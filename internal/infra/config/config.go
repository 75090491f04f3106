package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	GuideStorePostgres = "postgres"
	GuideStoreMemory   = "memory"
)

type Config struct {
	Port             string
	DatabaseURL      string
	JWTSecret        string
	JWTIssuer        string
	JWTAudience      string
	AccessTokenTTL   time.Duration
	LogLevel         string
	AllowedOrigins   []string
	AllowCredentials bool
	GuideStore       string
	RateLimitRPS     int
	RateLimitBurst   int
	RequestTimeout   time.Duration
}

var envKeys = []string{
	"PORT",
	"DATABASE_URL",
	"JWT_SECRET",
	"JWT_ISSUER",
	"JWT_AUDIENCE",
	"ACCESS_TOKEN_TTL",
	"LOG_LEVEL",
	"ALLOWED_ORIGINS",
	"ALLOW_CREDENTIALS",
	"GUIDE_STORE",
	"RATE_LIMIT_RPS",
	"RATE_LIMIT_BURST",
	"REQUEST_TIMEOUT",
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("json")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	for _, key := range envKeys {
		if err := viper.BindEnv(key); err != nil {
			return nil, err
		}
	}

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("JWT_ISSUER", "yatradesk")
	viper.SetDefault("JWT_AUDIENCE", "yatradesk-api")
	viper.SetDefault("ACCESS_TOKEN_TTL", "24h")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	viper.SetDefault("ALLOW_CREDENTIALS", false)
	viper.SetDefault("GUIDE_STORE", GuideStorePostgres)
	viper.SetDefault("RATE_LIMIT_RPS", 50)
	viper.SetDefault("RATE_LIMIT_BURST", 100)
	viper.SetDefault("REQUEST_TIMEOUT", "15s")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	for _, key := range []string{"DATABASE_URL", "JWT_SECRET"} {
		if viper.GetString(key) == "" {
			return nil, fmt.Errorf("%s is not set", key)
		}
	}

	store := viper.GetString("GUIDE_STORE")
	if store != GuideStorePostgres && store != GuideStoreMemory {
		return nil, fmt.Errorf("GUIDE_STORE must be %q or %q, got %q", GuideStorePostgres, GuideStoreMemory, store)
	}

	cfg := &Config{
		Port:             viper.GetString("PORT"),
		DatabaseURL:      viper.GetString("DATABASE_URL"),
		JWTSecret:        viper.GetString("JWT_SECRET"),
		JWTIssuer:        viper.GetString("JWT_ISSUER"),
		JWTAudience:      viper.GetString("JWT_AUDIENCE"),
		AccessTokenTTL:   viper.GetDuration("ACCESS_TOKEN_TTL"),
		LogLevel:         viper.GetString("LOG_LEVEL"),
		AllowedOrigins:   splitOrigins(viper.GetString("ALLOWED_ORIGINS")),
		AllowCredentials: viper.GetBool("ALLOW_CREDENTIALS"),
		GuideStore:       store,
		RateLimitRPS:     viper.GetInt("RATE_LIMIT_RPS"),
		RateLimitBurst:   viper.GetInt("RATE_LIMIT_BURST"),
		RequestTimeout:   viper.GetDuration("REQUEST_TIMEOUT"),
	}

	if cfg.AccessTokenTTL <= 0 {
		return nil, fmt.Errorf("ACCESS_TOKEN_TTL must be positive")
	}

	return cfg, nil
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
