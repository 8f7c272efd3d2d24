package app

import (
	"strings"

	"github.com/geodykes/geodykes-backend/internal/pkg/logger"
	"github.com/geodykes/geodykes-backend/internal/platform/envutil"
)

type Config struct {
	Port           string
	LogMode        string
	ReadingBackend string
	AllowOrigins   []string
}

func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		Port:           envutil.String("PORT", "8000"),
		LogMode:        envutil.String("LOG_MODE", "development"),
		ReadingBackend: envutil.String("READING_REPO", "database"),
	}
	if origins := envutil.String("CORS_ALLOW_ORIGINS", ""); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowOrigins = append(cfg.AllowOrigins, o)
			}
		}
	}
	log.Info("Config loaded", "port", cfg.Port, "reading_backend", cfg.ReadingBackend)
	return cfg
}
