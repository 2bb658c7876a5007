package seed

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Service loads a repeatable demo dataset straight into the configured
// database so the query endpoint has something to answer questions about.
type Service struct {
	cfg       Config
	log       *slog.Logger
	db        *sql.DB
	generator *Generator
}

func NewService(cfg Config, logger *slog.Logger, db *sql.DB) (*Service, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle is required")
	}
	if strings.TrimSpace(cfg.TableName) == "" {
		return nil, fmt.Errorf("table name is required")
	}
	if cfg.SchoolCount <= 0 {
		return nil, fmt.Errorf("school count must be > 0")
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Service{
		cfg:       cfg,
		log:       logger,
		db:        db,
		generator: NewGenerator(cfg.Seed),
	}, nil
}

func (s *Service) Run(ctx context.Context) error {
	if err := s.ensureTable(ctx); err != nil {
		return err
	}
	inserted, err := s.insertSchools(ctx)
	if err != nil {
		return err
	}
	s.log.Info(
		"seeded demo schools",
		slog.String("table", s.cfg.TableName),
		slog.Int("count", inserted),
		slog.Int64("seed", s.cfg.Seed),
	)
	return nil
}

func (s *Service) ensureTable(ctx context.Context) error {
	if s.cfg.DropExisting {
		if _, err := s.db.ExecContext(ctx, `DROP TABLE IF EXISTS `+s.cfg.TableName); err != nil {
			return fmt.Errorf("drop table %s: %w", s.cfg.TableName, err)
		}
	}

	// BIGINT key supplied by the generator keeps the DDL portable across
	// postgres and duckdb.
	ddl := `CREATE TABLE IF NOT EXISTS ` + s.cfg.TableName + ` (
	school_id BIGINT PRIMARY KEY,
	name TEXT NOT NULL,
	city TEXT NOT NULL,
	state TEXT NOT NULL,
	rating DOUBLE PRECISION NOT NULL,
	students BIGINT NOT NULL,
	established DATE NOT NULL,
	charter BOOLEAN NOT NULL
)`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create table %s: %w", s.cfg.TableName, err)
	}
	return nil
}

func (s *Service) insertSchools(ctx context.Context) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statement := insertStatement(s.cfg.Driver, s.cfg.TableName)
	inserted := 0
	for i := 0; i < s.cfg.SchoolCount; i++ {
		record := s.generator.NextSchool()
		_, err := tx.ExecContext(ctx, statement,
			record.SchoolID,
			record.Name,
			record.City,
			record.State,
			record.Rating,
			record.Students,
			record.Established,
			record.Charter,
		)
		if err != nil {
			return inserted, fmt.Errorf("insert school %d: %w", record.SchoolID, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return inserted, fmt.Errorf("commit seed tx: %w", err)
	}
	return inserted, nil
}

func insertStatement(driver, table string) string {
	columns := `(school_id, name, city, state, rating, students, established, charter)`
	if driver == "postgres" {
		return `INSERT INTO ` + table + ` ` + columns + ` VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	}
	return `INSERT INTO ` + table + ` ` + columns + ` VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
}
