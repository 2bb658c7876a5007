package sqlnorm

import (
	"log/slog"
	"regexp"
	"strings"
)

// statementPatterns is a ranked matcher: patterns are tried in declaration
// order and the first match wins, regardless of match length or position in
// the text. Each kind lists its strict shape before a loose
// statement-start-to-semicolon fallback.
var statementPatterns = []struct {
	kind Kind
	re   *regexp.Regexp
}{
	{KindSelect, regexp.MustCompile(`(?is)(SELECT\s+[\w\s,\*\.]+\s+FROM\s+[\w\s,\.]+(?:\s+WHERE\s+.+?)?(?:\s+ORDER\s+BY\s+.+?)?(?:\s+LIMIT\s+\d+)?;)`)},
	{KindSelect, regexp.MustCompile(`(?is)(SELECT\s+.+?;)`)},
	{KindUpdate, regexp.MustCompile(`(?is)(UPDATE\s+[\w\.]+\s+SET\s+[\w\s=,'"\-\+\.]+(?:\s+WHERE\s+.+?)?;)`)},
	{KindUpdate, regexp.MustCompile(`(?is)(UPDATE\s+.+?;)`)},
	{KindInsert, regexp.MustCompile(`(?is)(INSERT\s+INTO\s+[\w\.]+\s*\([^)]+\)\s*VALUES\s*\([^)]+\);)`)},
	{KindInsert, regexp.MustCompile(`(?is)(INSERT\s+INTO\s+[\w\.]+\s+VALUES\s*\([^)]+\);)`)},
	{KindInsert, regexp.MustCompile(`(?is)(INSERT\s+INTO\s+.+?;)`)},
	{KindDelete, regexp.MustCompile(`(?is)(DELETE\s+FROM\s+[\w\.]+(?:\s+WHERE\s+.+?)?;)`)},
	{KindDelete, regexp.MustCompile(`(?is)(DELETE\s+.+?;)`)},
}

var statementKeywords = []string{"SELECT", "UPDATE", "INSERT", "DELETE"}

// Extract pulls the best-guess SQL statement out of raw generator output.
// The returned statement is whitespace-trimmed and semicolon-terminated.
// When the text contains no recognizable statement, Extract reports false.
func (p *Pipeline) Extract(raw string) (string, bool) {
	p.log.Debug("raw generation text", slog.String("text", raw))

	cleaned := strings.ReplaceAll(raw, "```sql", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	for _, candidate := range statementPatterns {
		match := candidate.re.FindStringSubmatch(cleaned)
		if match == nil {
			continue
		}
		query := strings.TrimSpace(match[1])
		p.log.Info("extracted statement",
			slog.String("query", query),
			slog.String("kind", string(candidate.kind)),
		)
		extractionsTotal.WithLabelValues("pattern").Inc()
		return query, true
	}

	// Last resort: the cleaned text itself starts like a statement.
	upper := strings.ToUpper(cleaned)
	for _, keyword := range statementKeywords {
		if !strings.HasPrefix(upper, keyword) {
			continue
		}
		if !strings.HasSuffix(cleaned, ";") {
			cleaned += ";"
		}
		p.log.Info("using cleaned text as statement",
			slog.String("keyword", keyword),
			slog.String("query", cleaned),
		)
		extractionsTotal.WithLabelValues("keyword").Inc()
		return cleaned, true
	}

	p.log.Warn("no sql statement found in generation text")
	extractionsTotal.WithLabelValues("none").Inc()
	return "", false
}
