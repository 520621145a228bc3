package main

import (
	"log"

	"vigil/internal/domain/item"
	"vigil/internal/infrastructure/postgres"
	httphandlers "vigil/internal/interfaces/http"
	"vigil/internal/shared/config"
)

// Dependencies holds all initialized application components. Built once at
// startup and shared read-only by every request handler.
type Dependencies struct {
	DB *postgres.DB

	ItemHandler *httphandlers.ItemHandler
}

// NewDependencies initializes all application dependencies.
func NewDependencies(cfg *config.Config) (*Dependencies, error) {
	db, err := postgres.New(cfg.Database.ConnectionString())
	if err != nil {
		return nil, err
	}
	log.Println("Connected to database")

	itemRepo := postgres.NewItemRepository(db)
	itemService := item.NewService(itemRepo)
	itemHandler := httphandlers.NewItemHandler(itemService)

	return &Dependencies{
		DB:          db,
		ItemHandler: itemHandler,
	}, nil
}

// Close releases all resources held by dependencies.
func (d *Dependencies) Close() {
	if d.DB != nil {
		d.DB.Close()
	}
}
