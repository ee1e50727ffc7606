package main

import (
	"os"

	"github.com/SarAlbN1/AS-Catalogo-NET/internal/app"
	config "github.com/SarAlbN1/AS-Catalogo-NET/internal/cfg"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	log := logger.NewSlogLogger()

	cfg, err := config.LoadConsumer(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	if err := app.RunConsumer(cfg, log); err != nil {
		os.Exit(1)
	}
}
