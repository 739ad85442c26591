package projection

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// ColumnLabel humanizes a prop key: the first matching prefix is stripped,
// separators become spaces and words are title-cased.
func ColumnLabel(prop string, prefixes []string) string {
	label := prop
	for _, prefix := range prefixes {
		if prefix != "" && strings.HasPrefix(label, prefix) {
			label = strings.TrimPrefix(label, prefix)
			break
		}
	}
	label = strings.NewReplacer("_", " ", "-", " ").Replace(label)
	label = strings.Join(strings.Fields(label), " ")
	return titleCaser.String(label)
}

func ColumnLabels(props []string, prefixes []string) []string {
	out := make([]string, 0, len(props))
	for _, prop := range props {
		out = append(out, ColumnLabel(prop, prefixes))
	}
	return out
}

// TableHeader is "Game", the humanized prop labels, then one column per
// profile.
func TableHeader(props []string, prefixes []string, profiles []string) []string {
	out := make([]string, 0, len(props)+len(profiles)+1)
	out = append(out, "Game")
	out = append(out, ColumnLabels(props, prefixes)...)
	out = append(out, profiles...)
	return out
}
