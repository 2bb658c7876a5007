package sqlnorm

import (
	"log/slog"
	"strings"
)

// filterVocabulary lists the words and phrases that signal the user expects
// row restriction. Matched as case-insensitive substrings of the request
// text.
var filterVocabulary = []string{
	"whose", "where", "with", "has", "contains", "starts with", "ends with",
	"above", "below", "greater than", "less than", "equal to", "is", "are",
	"before", "after", "between", "like", "matches",
}

// Reconcile checks a candidate statement against the filtering intent of
// the request text. The rules fire only for "show all"/"get all" phrasing:
// an unwanted WHERE clause is stripped from read statements, and a missing
// one is reported but never synthesized. Write statements pass through
// untouched so their effect is never widened.
func (p *Pipeline) Reconcile(naturalText, query string) string {
	if naturalText == "" || query == "" {
		return query
	}

	textLower := strings.ToLower(naturalText)
	if !strings.Contains(textLower, "show all") && !strings.Contains(textLower, "get all") {
		return query
	}

	filterIntent := false
	for _, keyword := range filterVocabulary {
		if strings.Contains(textLower, keyword) {
			filterIntent = true
			break
		}
	}

	queryLower := strings.ToLower(query)
	switch {
	case filterIntent && !strings.Contains(queryLower, "where"):
		// No safe rewrite exists without re-invoking generation.
		p.log.Warn("filtering requested but statement has no where clause",
			slog.String("query", query),
		)
		reconciliationsTotal.WithLabelValues("warned").Inc()
	case !filterIntent && strings.Contains(queryLower, "where"):
		p.log.Warn("no filtering requested but statement has a where clause",
			slog.String("query", query),
		)
		return p.stripWhereClause(query)
	}
	return query
}

// stripWhereClause truncates a SELECT statement at its WHERE clause. Every
// other statement kind is returned unchanged.
func (p *Pipeline) stripWhereClause(query string) string {
	upper := strings.ToUpper(query)
	if !strings.HasPrefix(upper, "SELECT") {
		return query
	}
	fromPos := strings.Index(upper, "FROM")
	if fromPos < 0 {
		return query
	}
	wherePos := strings.Index(upper[fromPos:], "WHERE")
	if wherePos < 0 {
		return query
	}
	stripped := strings.TrimSpace(query[:fromPos+wherePos])
	if !strings.HasSuffix(stripped, ";") {
		stripped += ";"
	}
	p.log.Info("removed where clause", slog.String("query", stripped))
	reconciliationsTotal.WithLabelValues("stripped").Inc()
	return stripped
}
