package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/its-steo/GrandV-sub001/internal/buildinfo"
	"github.com/its-steo/GrandV-sub001/internal/client/cli"
	"github.com/its-steo/GrandV-sub001/internal/client/config"
	"github.com/its-steo/GrandV-sub001/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.New(cfg.LogLevel)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
