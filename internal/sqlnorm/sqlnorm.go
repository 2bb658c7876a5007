// Package sqlnorm turns free-form text produced by a SQL generator into a
// single executable statement: it extracts the best-guess statement,
// classifies its operation kind, reconciles it against the filtering intent
// of the original request, and normalizes vendor-specific syntax at the
// execution boundary.
package sqlnorm

import (
	"io"
	"log/slog"
	"regexp"
	"strings"
)

// Kind is the operation kind of a SQL statement, determined by its leading
// keyword.
type Kind string

const (
	KindSelect  Kind = "SELECT"
	KindUpdate  Kind = "UPDATE"
	KindInsert  Kind = "INSERT"
	KindDelete  Kind = "DELETE"
	KindUnknown Kind = "UNKNOWN"
)

// DefaultTablePrefix is the table qualification the Sanitize rewrite elides
// when no prefix is configured.
const DefaultTablePrefix = "schools"

// Classify reports the operation kind of a statement. It is invariant under
// surrounding whitespace and keyword casing; empty or unrecognized input
// yields KindUnknown.
func Classify(query string) Kind {
	trimmed := strings.TrimSpace(strings.ToUpper(query))
	switch {
	case strings.HasPrefix(trimmed, "SELECT"):
		return KindSelect
	case strings.HasPrefix(trimmed, "UPDATE"):
		return KindUpdate
	case strings.HasPrefix(trimmed, "INSERT"):
		return KindInsert
	case strings.HasPrefix(trimmed, "DELETE"):
		return KindDelete
	default:
		return KindUnknown
	}
}

type Config struct {
	// TablePrefix is the qualification prefix removed from identifiers by
	// Sanitize. Defaults to DefaultTablePrefix.
	TablePrefix string
}

// Pipeline holds the normalization steps. All methods are safe for
// concurrent use; no state is carried between invocations.
type Pipeline struct {
	log         *slog.Logger
	tablePrefix *regexp.Regexp
}

func New(logger *slog.Logger, cfg Config) *Pipeline {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	prefix := strings.TrimSpace(cfg.TablePrefix)
	if prefix == "" {
		prefix = DefaultTablePrefix
	}
	return &Pipeline{
		log:         logger,
		tablePrefix: regexp.MustCompile(`(?i)` + regexp.QuoteMeta(prefix) + `\.([a-zA-Z0-9_]+)`),
	}
}
