// cmd/api/main.go
package main

import (
	"context"

	"flowius-manage-api-server/config"
	"flowius-manage-api-server/internal/api/routes"
	"flowius-manage-api-server/internal/console"
	"flowius-manage-api-server/internal/geomap"
	"flowius-manage-api-server/internal/logger"
	"flowius-manage-api-server/internal/models"
	"flowius-manage-api-server/internal/notify"
	"flowius-manage-api-server/internal/s3"
	"flowius-manage-api-server/internal/seed"
	"flowius-manage-api-server/internal/sidebar"
	"flowius-manage-api-server/internal/socket"
	"flowius-manage-api-server/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; the config loader also reads the environment.
	godotenv.Load()

	log := logger.NewLogger().Sugar()
	defer log.Sync()

	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	assets, err := seed.Load(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Could not load seed assets: %v", err)
	}
	log.Infof("Seeded %d assets from %s source", len(assets), cfg.Seed.Source)

	st := store.New(assets)

	wsHub := socket.NewHub(log)
	st.Subscribe(func() {
		wsHub.Broadcast(socket.Event{Type: "store_changed"})
	})

	notifier := &notify.Notifier{Hub: wsHub, Logger: log}
	panel := console.NewPanel(st, notifier)

	renderer := &geomap.Renderer{
		Store: st,
		Viewport: geomap.Viewport{
			Center: models.Coordinate{Lat: cfg.Map.CenterLat, Lng: cfg.Map.CenterLng},
			Zoom:   cfg.Map.Zoom,
		},
	}

	sidebarBuilder := &sidebar.Builder{Store: st}

	// Photo storage is optional; without a bucket the upload endpoint
	// reports itself unavailable.
	var uploader *s3.Uploader
	if cfg.S3.Bucket != "" {
		uploader, err = s3.NewUploader(cfg.S3)
		if err != nil {
			log.Fatalf("Could not initialize S3 uploader: %v", err)
		}
	}

	router := routes.SetupRouter(cfg, st, panel, renderer, sidebarBuilder, wsHub, uploader, notifier, log)

	log.Infof("Starting API server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
