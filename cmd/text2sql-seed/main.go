package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/reshmailfatima/Text2SQL/internal/demo/seed"
	storeduckdb "github.com/reshmailfatima/Text2SQL/internal/store/duckdb"
	storepostgres "github.com/reshmailfatima/Text2SQL/internal/store/postgres"
)

func main() {
	cfg, err := seed.LoadConfigFromEnv(os.LookupEnv)
	if err != nil {
		slog.Error("failed to load seed config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	openCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	var db *sql.DB
	switch cfg.Driver {
	case "postgres":
		db, err = storepostgres.Open(openCtx, storepostgres.DBConfig{DSN: cfg.DSN})
	case "duckdb":
		db, err = storeduckdb.Open(openCtx, cfg.DSN)
	}
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	service, err := seed.NewService(cfg, logger, db)
	if err != nil {
		logger.Error("failed to initialize seeder", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info(
		"seeding demo schools",
		slog.String("driver", cfg.Driver),
		slog.String("table", cfg.TableName),
		slog.Int("count", cfg.SchoolCount),
	)
	if err := service.Run(ctx); err != nil {
		logger.Error("seeding failed", slog.Any("error", err))
		os.Exit(1)
	}
}
