package app

import (
	"github.com/BennetC/Social-Tracker/internal/pkg/logger"
	"github.com/BennetC/Social-Tracker/internal/scoring"
	"github.com/BennetC/Social-Tracker/internal/utils"
)

type Config struct {
	Addr    string
	Scoring scoring.Config
}

func LoadConfig(log *logger.Logger) Config {
	addr := utils.GetEnv("LISTEN_ADDR", ":8080", log)

	cfg := scoring.DefaultConfig()
	if path := utils.GetEnv("SCORING_CONFIG", "", log); path != "" {
		loaded, err := scoring.Load(path)
		if err != nil {
			log.Warn("scoring config load failed, using defaults", "path", path, "error", err)
		} else {
			cfg = loaded
		}
	}

	return Config{
		Addr:    addr,
		Scoring: cfg,
	}
}
