package sqlnorm

import (
	"io"
	"log/slog"
	"testing"
)

func TestSanitizeRemovesBackticksAndTablePrefix(t *testing.T) {
	p := testPipeline()
	got := p.Sanitize("SELECT * FROM `schools`.`details`;")
	want := "SELECT * FROM details;"
	if got != want {
		t.Fatalf("Sanitize() = %q, want %q", got, want)
	}
}

func TestSanitizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"SELECT * FROM `schools`.`details`;",
		"SELECT * FROM schools.details;",
		"SELECT * FROM schools.schools.details;",
		"SELECT * FROM details;",
		"UPDATE schools SET rating = 5;",
	}
	p := testPipeline()
	for _, query := range inputs {
		once := p.Sanitize(query)
		twice := p.Sanitize(once)
		if once != twice {
			t.Fatalf("Sanitize(%q) not idempotent: %q then %q", query, once, twice)
		}
	}
}

func TestSanitizeIgnoresPrefixCasing(t *testing.T) {
	p := testPipeline()
	got := p.Sanitize("SELECT * FROM SCHOOLS.details;")
	want := "SELECT * FROM details;"
	if got != want {
		t.Fatalf("Sanitize() = %q, want %q", got, want)
	}
}

func TestSanitizeLeavesUnqualifiedStatementsAlone(t *testing.T) {
	p := testPipeline()
	query := "SELECT name, rating FROM details WHERE rating > 3;"
	if got := p.Sanitize(query); got != query {
		t.Fatalf("Sanitize() = %q, want unchanged %q", got, query)
	}
}

func TestSanitizeHonorsConfiguredPrefix(t *testing.T) {
	p := New(slog.New(slog.NewTextHandler(io.Discard, nil)), Config{TablePrefix: "warehouse"})
	got := p.Sanitize("SELECT * FROM warehouse.orders;")
	want := "SELECT * FROM orders;"
	if got != want {
		t.Fatalf("Sanitize() = %q, want %q", got, want)
	}
	if got := p.Sanitize("SELECT * FROM schools.details;"); got != "SELECT * FROM schools.details;" {
		t.Fatalf("Sanitize() = %q, want default prefix untouched", got)
	}
}
