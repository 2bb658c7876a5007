package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/reshmailfatima/Text2SQL/internal/config"
	"github.com/reshmailfatima/Text2SQL/internal/schema"
	schemapostgres "github.com/reshmailfatima/Text2SQL/internal/schema/postgres"
	storepostgres "github.com/reshmailfatima/Text2SQL/internal/store/postgres"
)

// Dumps the live database schema into the JSON file consumed by the file
// schema source, so generation prompts can be served without a database
// round trip.
func main() {
	out := flag.String("out", "", "output path; defaults to TEXT2SQL_SCHEMA_PATH")
	flag.Parse()

	cfg, err := config.LoadFromEnv("text2sql-schema")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Database.Driver != config.DriverPostgres {
		fmt.Fprintln(os.Stderr, "schema dump requires TEXT2SQL_DB_DRIVER=postgres")
		os.Exit(1)
	}

	path := *out
	if path == "" {
		path = cfg.Schema.Path
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "output path is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := storepostgres.Open(ctx, storepostgres.DBConfig{DSN: cfg.Database.DSN})
	if err != nil {
		fmt.Fprintf(os.Stderr, "database open error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	tables, err := schemapostgres.NewSource(db).Describe(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "schema introspection failed: %v\n", err)
		os.Exit(1)
	}

	byName := make(map[string]struct {
		Columns []schema.Column `json:"columns"`
	}, len(tables))
	for _, table := range tables {
		byName[table.Name] = struct {
			Columns []schema.Column `json:"columns"`
		}{Columns: table.Columns}
	}

	encoded, err := json.MarshalIndent(byName, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode schema failed: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, append(encoded, '\n'), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write schema file failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %d table(s) to %s\n", len(tables), path)
}
