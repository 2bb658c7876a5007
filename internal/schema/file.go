package schema

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// FileSource loads the schema description from a JSON file keyed by table
// name. The file is re-read on every call so edits take effect without a
// restart.
type FileSource struct {
	path string
}

func NewFileSource(path string) (*FileSource, error) {
	if path == "" {
		return nil, fmt.Errorf("schema file path is required")
	}
	return &FileSource{path: path}, nil
}

func (s *FileSource) Describe(ctx context.Context) ([]Table, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}

	byName := make(map[string]struct {
		Columns []Column `json:"columns"`
	})
	if err := json.Unmarshal(raw, &byName); err != nil {
		return nil, fmt.Errorf("decode schema file %s: %w", s.path, err)
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	tables := make([]Table, 0, len(names))
	for _, name := range names {
		tables = append(tables, Table{Name: name, Columns: byName[name].Columns})
	}
	return tables, nil
}
