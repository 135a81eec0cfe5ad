package config

import (
	"os"
	"strings"
)

type AppConfig struct {
	Port        string
	Env         string
	CORSOrigins []string
}

func LoadApp() AppConfig {
	cfg := AppConfig{
		Port: os.Getenv("PORT"),
		Env:  os.Getenv("APP_ENV"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	for _, origin := range strings.Split(os.Getenv("CORS_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}
	return cfg
}
