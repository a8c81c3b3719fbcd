package app

import (
	"fmt"

	"github.com/yok-atlas/uni-api/api"
	"github.com/yok-atlas/uni-api/config"
	"github.com/yok-atlas/uni-api/dataset"
	"github.com/yok-atlas/uni-api/router"
)

func SetupAndRunServer() error {
	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	cfg, err := config.Get()
	if err != nil {
		return err
	}

	// Load the university catalog into memory. The handlers never touch
	// disk; a load failure here prevents the server from starting.
	store, err := dataset.Load(cfg.DataPath)
	if err != nil {
		return err
	}

	// Init API
	server := api.NewAPIServer(fmt.Sprintf(":%d", cfg.Port))
	app := server.GetEngine()

	// Setup Routes
	router.SetupRoutes(app, store, cfg)

	// Get the PORT & Start the Server
	return server.Run()
}
