package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/reshmailfatima/Text2SQL/internal/schema"
)

// Source introspects the connected database through INFORMATION_SCHEMA.
type Source struct {
	db *sql.DB
}

func NewSource(db *sql.DB) *Source {
	return &Source{db: db}
}

func (s *Source) Describe(ctx context.Context) ([]schema.Table, error) {
	query := `
SELECT
    t.table_name,
    c.column_name,
    c.data_type,
    c.character_maximum_length,
    c.is_nullable,
    pk.column_name IS NOT NULL AS is_primary_key
FROM information_schema.tables AS t
JOIN information_schema.columns AS c
    ON c.table_schema = t.table_schema AND c.table_name = t.table_name
LEFT JOIN (
    SELECT ku.table_schema, ku.table_name, ku.column_name
    FROM information_schema.table_constraints AS tc
    JOIN information_schema.key_column_usage AS ku
        ON ku.constraint_name = tc.constraint_name
        AND ku.table_schema = tc.table_schema
    WHERE tc.constraint_type = 'PRIMARY KEY'
) AS pk
    ON pk.table_schema = t.table_schema
    AND pk.table_name = t.table_name
    AND pk.column_name = c.column_name
WHERE t.table_type = 'BASE TABLE'
  AND t.table_schema NOT IN ('pg_catalog', 'information_schema')
ORDER BY t.table_schema ASC, t.table_name ASC, c.ordinal_position ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("describe schema: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tables := make([]schema.Table, 0)
	for rows.Next() {
		var (
			tableName string
			col       schema.Column
			maxLength sql.NullInt64
			nullable  string
		)
		if err := rows.Scan(&tableName, &col.Name, &col.Type, &maxLength, &nullable, &col.PrimaryKey); err != nil {
			return nil, fmt.Errorf("scan schema column row: %w", err)
		}
		if maxLength.Valid {
			n := int(maxLength.Int64)
			col.MaxLength = &n
		}
		col.Nullable = nullable == "YES"

		if len(tables) == 0 || tables[len(tables)-1].Name != tableName {
			tables = append(tables, schema.Table{Name: tableName})
		}
		last := &tables[len(tables)-1]
		last.Columns = append(last.Columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schema column rows: %w", err)
	}
	return tables, nil
}
