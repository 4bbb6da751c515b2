package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/ayodejiAA/trivia/internal/config"
	"github.com/ayodejiAA/trivia/internal/db/repository"
	"github.com/ayodejiAA/trivia/internal/logging"
	"github.com/ayodejiAA/trivia/internal/question"
	"github.com/ayodejiAA/trivia/internal/question/external"
	"github.com/ayodejiAA/trivia/internal/seed"
)

type flags struct {
	envFile       string
	perCategory   int
	maxCategories int
}

func main() {
	var f flags
	flag.StringVar(&f.envFile, "env-file", "configs/.env", "dotenv file loaded when present")
	flag.IntVar(&f.perCategory, "per-category", 0, "questions fetched per category (overrides SEED_PER_CATEGORY)")
	flag.IntVar(&f.maxCategories, "max-categories", -1, "categories imported, 0 for all (overrides SEED_MAX_CATEGORIES)")
	flag.Parse()

	if err := run(f); err != nil {
		log.Error().Err(err).Msg("seeding failed")
		os.Exit(1)
	}
}

func run(f flags) error {
	if err := godotenv.Load(f.envFile); err != nil {
		log.Debug().Err(err).Str("file", f.envFile).Msg("no dotenv file loaded")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := logging.New(cfg.Name+"-seeder", cfg.Env, cfg.LogLevel)

	if f.perCategory > 0 {
		cfg.Seed.PerCategory = f.perCategory
	}
	if f.maxCategories >= 0 {
		cfg.Seed.MaxCategories = f.maxCategories
	}

	pool, err := pgxpool.New(ctx, cfg.Postgres.ConnString())
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	client := external.NewOpenTDBClient(cfg.Seed.OpenTDBURL, &http.Client{Timeout: cfg.Seed.RequestTimeout})
	importer := seed.NewImporter(client, repository.NewStore(pool), seed.Options{
		PerCategory:   cfg.Seed.PerCategory,
		MaxCategories: cfg.Seed.MaxCategories,
		Interval:      cfg.Seed.RequestInterval,
		Timeout:       cfg.Seed.RequestTimeout,
	}, logger)

	report, runErr := importer.Run(ctx)

	// New categories must show up in the API before the cached list expires.
	if cfg.Redis.Addr != "" && report.Categories > 0 {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		defer rdb.Close()
		if err := question.NewCache(rdb, cfg.Redis.CategoryTTL).Invalidate(context.Background()); err != nil {
			logger.Warn().Err(err).Msg("failed to invalidate category cache")
		}
	}

	event := logger.Info()
	msg := "seeding complete"
	if runErr != nil {
		event = logger.Warn()
		msg = "seeding stopped early"
	}
	event.
		Int("categories", report.Categories).
		Int("inserted", report.Inserted).
		Int("skipped", report.Skipped).
		Msg(msg)

	return runErr
}
