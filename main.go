package main

import (
	"log"

	"schoolmap/internal/config"
	"schoolmap/ops"
	"schoolmap/ui"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	server, err := ui.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	var g errgroup.Group
	g.Go(func() error {
		return server.Start(":" + cfg.Server.Port)
	})

	if cfg.Ops.Enabled {
		opsServer := ops.NewServer(cfg)
		g.Go(func() error {
			return opsServer.Start(":" + cfg.Ops.Port)
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
