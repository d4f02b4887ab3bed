package main

import (
	"context"
	"embed"
	"fmt"
	"log"

	"lumina/internal/database"
	"lumina/internal/events"
	"lumina/internal/services"
	"lumina/internal/store"
	"lumina/internal/utils"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"gorm.io/gorm/logger"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {

	app := NewApp()

	if err := utils.LoadEnv(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	db, err := database.Init(database.Config{
		LogLevel: logger.Warn,
	})
	if err != nil {
		fmt.Println("Error opening database:", err)
		return
	}

	if sqlDB, err := db.DB(); err == nil {
		app.dbClose = sqlDB.Close
	}

	//Create each service
	dbService := services.NewDbServices(db)
	keyringService := services.NewKeyringService()
	optionsService, err := services.NewOptionsService()
	if err != nil {
		fmt.Println("Error loading options catalog:", err)
		return
	}
	savedStore := store.Open(store.DefaultPath())
	generationService := services.NewGenerationService(keyringService, dbService.AppSettings, 0)
	sessionService := services.NewSessionService(generationService, savedStore)

	// Create application with options
	err = wails.Run(&options.App{
		Title:  "Lumina",
		Width:  1024,
		Height: 768,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         "Lumina",
		},
		BackgroundColour: &options.RGBA{R: 17, G: 19, B: 28, A: 1},
		OnStartup: func(ctx context.Context) {
			app.startup(ctx)
			events.EnableRuntimeEmitter()
			dbService.StartDbServices(ctx)
			optionsService.Startup(ctx)
			sessionService.Startup(ctx)

			// A missing API key is not fatal; generation reports a uniform
			// failure until a key is configured.
			if err := generationService.Startup(ctx); err != nil {
				log.Printf("generation client unavailable: %v", err)
			}
		},
		OnShutdown: app.shutdown,
		Bind: []interface{}{
			app,
			sessionService,
			generationService,
			dbService.AppSettings,
			optionsService,
			keyringService,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
