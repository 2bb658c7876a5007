package sqlnorm

import (
	"log/slog"
	"strings"
)

// Sanitize normalizes vendor-specific syntax before execution: backtick
// quoting is removed and the configured table-qualification prefix is elided
// from qualified identifiers. The prefix rewrite runs to a fixed point, so
// applying Sanitize to its own output changes nothing.
func (p *Pipeline) Sanitize(query string) string {
	original := query
	sanitized := strings.ReplaceAll(query, "`", "")
	for {
		next := p.tablePrefix.ReplaceAllString(sanitized, "$1")
		if next == sanitized {
			break
		}
		sanitized = next
	}
	if sanitized != original {
		p.log.Info("rewrote statement for execution",
			slog.String("from", original),
			slog.String("to", sanitized),
		)
	}
	return sanitized
}
