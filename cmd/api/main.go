package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"prompt-gallery/api/router"
	"prompt-gallery/config"
	"prompt-gallery/db"
	"prompt-gallery/logger"
	"prompt-gallery/storage"
)

func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	if err := db.Init(context.Background()); err != nil {
		log.Fatal(err)
	}

	store, err := storage.New(cfg.Spaces)
	if err != nil {
		log.Fatal(err)
	}

	r := router.New(cfg, store)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Log.Infof("listening on %s", addr)
	if err := r.Run(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
