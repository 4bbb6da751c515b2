package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/ayodejiAA/trivia/internal/app"
	"github.com/ayodejiAA/trivia/internal/config"
)

func main() {
	envFile := flag.String("env-file", "configs/.env", "dotenv file loaded when APP_ENV is not production")
	flag.Parse()

	if err := run(*envFile); err != nil {
		log.Fatal(err)
	}
}

func run(envFile string) error {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(envFile); err != nil {
			log.Printf("Warning: could not load %s: %v", envFile, err)
		}
	}

	loadCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg, err := config.Load(loadCtx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx := context.Background()
	instance, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("build app: %w", err)
	}
	return instance.Run(ctx)
}
