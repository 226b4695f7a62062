// Package app wires configuration, storage, registry clients and services together.
package app

import (
	"fmt"

	"github.com/allergenlens/backend/config"
	httpDelivery "github.com/allergenlens/backend/internal/delivery/http"
	"github.com/allergenlens/backend/internal/infrastructure/foodqr"
	"github.com/allergenlens/backend/internal/infrastructure/haccp"
	"github.com/allergenlens/backend/internal/infrastructure/registry"
	"github.com/allergenlens/backend/internal/infrastructure/store"
	"github.com/allergenlens/backend/internal/usecase"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint and the CLI
const Version = "1.0.0"

// App holds the assembled services
type App struct {
	Config  *config.Config
	Lookup  *usecase.LookupService
	Catalog *usecase.CatalogService
	db      *gorm.DB
}

// New opens the product store and builds the lookup and catalog services
func New(cfg *config.Config) (*App, error) {
	debug := cfg.IsDevelopment()

	db, err := store.Open(cfg.Database.Driver, cfg.Database.DSN, debug)
	if err != nil {
		return nil, fmt.Errorf("open product store: %w", err)
	}
	repo := store.NewProductRepository(db)

	haccpAPI := registry.NewClient(registry.Options{
		Timeout:           cfg.HACCP.Timeout,
		RequestsPerSecond: cfg.Upstream.RequestsPerSecond,
		Burst:             cfg.Upstream.Burst,
	})
	foodqrAPI := registry.NewClient(registry.Options{
		Timeout:           cfg.FoodQR.Timeout,
		RequestsPerSecond: cfg.Upstream.RequestsPerSecond,
		Burst:             cfg.Upstream.Burst,
	})

	// Enable debug mode in development environment
	if debug {
		haccpAPI.SetDebug(true)
		foodqrAPI.SetDebug(true)
		log.Debug().Msg("registry client debug mode enabled")
	}

	lookup := usecase.NewLookupService(
		usecase.NewLocalSource(repo),
		haccp.NewClient(cfg.HACCP.ServiceKey, cfg.HACCP.BaseURL, haccpAPI),
		foodqr.NewClient(cfg.FoodQR.AccessKey, cfg.FoodQR.BaseURL, foodqrAPI),
		usecase.NewAllergenDetector(),
	)

	return &App{
		Config:  cfg,
		Lookup:  lookup,
		Catalog: usecase.NewCatalogService(repo),
		db:      db,
	}, nil
}

// RegistryStatus reports which registry credentials are present
func (a *App) RegistryStatus() httpDelivery.RegistryStatus {
	return httpDelivery.RegistryStatus{
		HACCPKeySet:  a.Config.HACCP.ServiceKey != "",
		FoodQRKeySet: a.Config.FoodQR.AccessKey != "",
	}
}

// Handler builds the HTTP handler over the assembled services
func (a *App) Handler() *httpDelivery.Handler {
	return httpDelivery.NewHandler(a.Lookup, a.Catalog, a.RegistryStatus(), Version)
}

// Close releases the product store
func (a *App) Close() error {
	return store.Close(a.db)
}
