package schema

import (
	"context"
	"fmt"
	"strings"
)

type Column struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	MaxLength  *int   `json:"max_length"`
	Nullable   bool   `json:"nullable"`
	PrimaryKey bool   `json:"is_primary_key"`
}

type Table struct {
	Name    string   `json:"name"`
	Columns []Column `json:"columns"`
}

// Source describes the queryable database. Implementations are read-only and
// must be safe for concurrent use.
type Source interface {
	Describe(ctx context.Context) ([]Table, error)
}

// Render formats tables as the plain-text schema context embedded in
// generation prompts. An empty table set renders as an empty string so the
// prompt builder can omit the section entirely.
func Render(tables []Table) string {
	if len(tables) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Database Schema:\n")
	for _, table := range tables {
		fmt.Fprintf(&b, "\nTable: %s\nColumns:\n", table.Name)
		for _, col := range table.Columns {
			nullable := "NOT NULL"
			if col.Nullable {
				nullable = "NULL"
			}
			b.WriteString("- " + col.Name + " (" + col.Type + ") " + nullable)
			if col.PrimaryKey {
				b.WriteString(" PRIMARY KEY")
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}
