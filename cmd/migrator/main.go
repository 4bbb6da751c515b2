package main

import (
	"database/sql"
	"flag"
	"os"

	"github.com/caarlos0/env/v10"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	migrations "github.com/ayodejiAA/trivia/db"
	"github.com/ayodejiAA/trivia/internal/config"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, redo, reset, status or version")
		envFile = flag.String("env-file", "configs/.env", "dotenv file loaded when present")
	)
	flag.Parse()

	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Str("app", "trivia-migrator").Logger()

	if err := godotenv.Load(*envFile); err != nil {
		log.Debug().Err(err).Str("file", *envFile).Msg("no dotenv file loaded")
	}

	var pg config.Postgres
	if err := env.ParseWithOptions(&pg, env.Options{RequiredIfNoDef: true}); err != nil {
		log.Fatal().Err(err).Msg("invalid postgres configuration")
	}

	db, err := sql.Open("pgx", pg.ConnString())
	if err != nil {
		log.Fatal().Err(err).Str("host", pg.Host).Int("port", pg.Port).Msg("failed to open database connection")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("failed to ping database")
	}

	log.Info().
		Str("host", pg.Host).
		Int("port", pg.Port).
		Str("database", pg.Database).
		Msg("connected to database")

	goose.SetBaseFS(migrations.Migrations)
	goose.SetTableName("goose_db_version")
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal().Err(err).Msg("failed to select goose dialect")
	}

	const dir = "migrations"
	switch *command {
	case "up":
		err = goose.Up(db, dir)
	case "down":
		err = goose.Down(db, dir)
	case "redo":
		err = goose.Redo(db, dir)
	case "reset":
		err = goose.Reset(db, dir)
	case "status":
		err = goose.Status(db, dir)
	case "version":
		err = goose.Version(db, dir)
	default:
		log.Fatal().Str("command", *command).Msg("unknown command. Use: up, down, redo, reset, status or version")
	}
	if err != nil {
		log.Fatal().Err(err).Str("command", *command).Msg("migration command failed")
	}
	log.Info().Str("command", *command).Msg("migration command finished")
}
