package main

import (
	"context"
	"log"
	"os"

	"github.com/chineye-ai/chatserver/internal/logging"
	"github.com/chineye-ai/chatserver/internal/server"
	"github.com/chineye-ai/chatserver/internal/server/config"
)

func main() {

	cfg := config.LoadConfig()
	logger := logging.NewZerologLogger(os.Stdout)

	app, err := server.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}
