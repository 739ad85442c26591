package app

import (
	"regexp"
	"strconv"
	"strings"
)

const maxTracedQueryLength = 512

var (
	queryWhitespaceRegex = regexp.MustCompile(`\s+`)
	// every "($n, ...)" tuple after the first one of a VALUES list
	extraValueRowsRegex = regexp.MustCompile(`\)(?:, \(\$\d+(?:, \$\d+)*\))+`)
)

// formatDBQueryForTrace flattens whitespace and folds multi-row VALUES lists
// to their first tuple, so a roster upsert of a few thousand players still
// fits the span attribute.
func formatDBQueryForTrace(query string) string {
	query = queryWhitespaceRegex.ReplaceAllString(strings.TrimSpace(query), " ")
	query = extraValueRowsRegex.ReplaceAllStringFunc(query, func(rows string) string {
		return ") /* +" + strconv.Itoa(strings.Count(rows, "(")) + " rows */"
	})
	if len(query) > maxTracedQueryLength {
		return query[:maxTracedQueryLength] + "..."
	}
	return query
}
