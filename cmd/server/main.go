package main

import (
	"fmt"

	"github.com/allergenlens/backend/config"
	"github.com/allergenlens/backend/internal/app"
	httpDelivery "github.com/allergenlens/backend/internal/delivery/http"
	"github.com/allergenlens/backend/internal/logging"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Setup(cfg.Server.Environment, cfg.Log.Level)

	log.Info().Str("version", app.Version).Msg("starting AllergenLens backend")
	log.Info().
		Str("environment", cfg.Server.Environment).
		Str("port", cfg.Server.Port).
		Str("database", cfg.Database.Driver).
		Msg("configuration loaded")

	if cfg.HACCP.ServiceKey != "" {
		log.Info().Str("base_url", cfg.HACCP.BaseURL).Msg("HACCP API key configured")
	} else {
		log.Warn().Str("base_url", cfg.HACCP.BaseURL).Msg("HACCP API key NOT CONFIGURED - registry calls will fail")
	}
	if cfg.FoodQR.AccessKey != "" {
		log.Info().Str("base_url", cfg.FoodQR.BaseURL).Msg("Food QR API key configured")
	} else {
		log.Warn().Str("base_url", cfg.FoodQR.BaseURL).Msg("Food QR API key NOT CONFIGURED - registry calls will fail")
	}

	// Initialize store, registry clients and services
	application, err := app.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize application")
	}
	defer application.Close()

	// Setup router
	router := httpDelivery.SetupRouter(cfg, application.Handler())

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("server listening")

	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
