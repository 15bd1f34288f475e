package main

import (
	"log"

	"github.com/dugoutlabs/diamond/config"
	_ "github.com/dugoutlabs/diamond/docs"
	"github.com/dugoutlabs/diamond/internal/account"
	"github.com/dugoutlabs/diamond/internal/location"
	"github.com/dugoutlabs/diamond/internal/performance"
	"github.com/dugoutlabs/diamond/internal/roster"
	"github.com/dugoutlabs/diamond/internal/schedule"
	"github.com/dugoutlabs/diamond/internal/template"
	"github.com/dugoutlabs/diamond/routes"
)

// @title Diamond REST API
// @version 1.0
// @description Backend for the Diamond baseball program-management app ⚾
// @host localhost:8090
// @BasePath /api
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&account.User{}, &account.Team{},
		&schedule.Document{}, &template.Template{},
		&roster.Player{}, &roster.Coach{}, &roster.Scout{}, &roster.Vendor{}, &roster.ScoutingReport{},
		&performance.Entry{}, &location.Location{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	r := routes.SetupRoutes(config.DB, cfg)

	// Use port from loaded configuration
	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
