package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/reshmailfatima/Text2SQL/internal/api"
	"github.com/reshmailfatima/Text2SQL/internal/archive"
	"github.com/reshmailfatima/Text2SQL/internal/config"
	"github.com/reshmailfatima/Text2SQL/internal/history"
	historypostgres "github.com/reshmailfatima/Text2SQL/internal/history/postgres"
	"github.com/reshmailfatima/Text2SQL/internal/nl2sql"
	"github.com/reshmailfatima/Text2SQL/internal/observability"
	"github.com/reshmailfatima/Text2SQL/internal/schema"
	schemapostgres "github.com/reshmailfatima/Text2SQL/internal/schema/postgres"
	"github.com/reshmailfatima/Text2SQL/internal/sqlnorm"
	"github.com/reshmailfatima/Text2SQL/internal/store"
	storeduckdb "github.com/reshmailfatima/Text2SQL/internal/store/duckdb"
	storepostgres "github.com/reshmailfatima/Text2SQL/internal/store/postgres"
	s3store "github.com/reshmailfatima/Text2SQL/internal/storage/s3"
)

func main() {
	cfg, err := config.LoadFromEnv("text2sql-api")
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg, os.Stdout)

	var db *sql.DB
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		db, err = storepostgres.Open(context.Background(), storepostgres.DBConfig{
			DSN:             cfg.Database.DSN,
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		})
	case config.DriverDuckDB:
		db, err = storeduckdb.Open(context.Background(), cfg.Database.Path)
	default:
		err = fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	pipeline := sqlnorm.New(logger, sqlnorm.Config{TablePrefix: cfg.Database.TablePrefix})
	executor := store.NewSQLExecutor(db, pipeline, logger, store.ExecutorConfig{
		QueryTimeout: cfg.Database.QueryTimeout,
	})

	var translator nl2sql.Translator
	switch cfg.AI.Provider {
	case config.ProviderOpenAI:
		translator, err = nl2sql.NewOpenAITranslator(nl2sql.OpenAIConfig{
			BaseURL:     cfg.AI.BaseURL,
			APIKey:      cfg.AI.APIKey,
			Model:       cfg.AI.Model,
			Temperature: cfg.AI.Temperature,
			MaxTokens:   cfg.AI.MaxTokens,
			Timeout:     cfg.AI.Timeout,
		})
	case config.ProviderOllama:
		translator, err = nl2sql.NewOllamaTranslator(nl2sql.OllamaConfig{
			BaseURL:     cfg.AI.BaseURL,
			Model:       cfg.AI.Model,
			Temperature: cfg.AI.Temperature,
			MaxTokens:   cfg.AI.MaxTokens,
			Timeout:     cfg.AI.Timeout,
		})
	default:
		err = fmt.Errorf("unsupported AI provider %q", cfg.AI.Provider)
	}
	if err != nil {
		logger.Error("failed to initialize query translator", slog.Any("error", err))
		os.Exit(1)
	}

	var schemaSource schema.Source
	switch cfg.Schema.Source {
	case config.SchemaSourceFile:
		schemaSource, err = schema.NewFileSource(cfg.Schema.Path)
		if err != nil {
			logger.Error("failed to initialize schema source", slog.Any("error", err))
			os.Exit(1)
		}
	case config.SchemaSourceDatabase:
		if cfg.Database.Driver != config.DriverPostgres {
			logger.Error("database schema source requires the postgres driver")
			os.Exit(1)
		}
		schemaSource = schemapostgres.NewSource(db)
	case config.SchemaSourceNone:
	default:
		logger.Error("unsupported schema source", slog.String("source", cfg.Schema.Source))
		os.Exit(1)
	}

	readinessChecks := []api.ReadinessCheck{
		api.CheckDatabaseConfig(cfg),
		api.CheckTranslatorConfig(cfg),
		api.CheckArchiveConfig(cfg),
		db.PingContext,
	}

	var historyRepo history.Repository
	var retention *history.RetentionService
	if cfg.History.Enabled {
		if cfg.Database.Driver == config.DriverPostgres {
			repo := historypostgres.NewRepository(db)
			historyRepo = repo
			readinessChecks = append(readinessChecks, repo.HealthCheck)
			retention = &history.RetentionService{
				Repo: repo,
				Config: history.RetentionConfig{
					Interval: cfg.History.RetentionInterval,
					MaxAge:   cfg.History.RetentionAge,
				},
				Logger: logger,
			}
		} else {
			logger.Warn("query history requires the postgres driver; continuing without it")
		}
	}

	deps := api.Dependencies{
		Logger:           logger,
		Pipeline:         pipeline,
		Translator:       translator,
		Executor:         executor,
		SchemaSource:     schemaSource,
		History:          historyRepo,
		HistoryLimit:     cfg.History.ListLimit,
		Readiness:        api.CombineReadinessChecks(readinessChecks...),
		DependencyTimout: time.Second,
	}

	if cfg.Archive.Enabled {
		objectStore, err := s3store.New(context.Background(), s3store.Config{
			Endpoint:         cfg.Archive.Endpoint,
			Region:           cfg.Archive.Region,
			Bucket:           cfg.Archive.Bucket,
			AccessKeyID:      cfg.Archive.AccessKeyID,
			SecretAccessKey:  cfg.Archive.SecretAccessKey,
			UseSSL:           cfg.Archive.UseSSL,
			Prefix:           cfg.Archive.Prefix,
			AutoCreateBucket: cfg.Archive.AutoCreateBucket,
		})
		if err != nil {
			logger.Error("failed to initialize object store", slog.Any("error", err))
			os.Exit(1)
		}
		deps.ObjectStore = objectStore
		deps.Archiver = &archive.Archiver{Store: objectStore, Logger: logger}
	}

	handler := api.NewHandler(cfg, deps)
	server := &http.Server{
		Addr:         cfg.HTTP.Address,
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if retention != nil {
		go func() {
			if err := retention.Run(ctx); err != nil {
				logger.Error("history retention stopped with error", slog.Any("error", err))
			}
		}()
	}

	go func() {
		logger.Info("starting api server", slog.String("addr", cfg.HTTP.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("api server failed", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownGrace)
	defer cancel()

	logger.Info("shutting down api server")
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
		_ = server.Close()
		os.Exit(1)
	}
}
