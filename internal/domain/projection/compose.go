package projection

import "github.com/frenchfries11234/ff.gg/internal/domain/scoring"

// Score composes every row under each profile of set. props must be the list
// the rows are aligned with.
func Score(rows []Row, props []string, set scoring.ProfileSet) []ResultRow {
	out := make([]ResultRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, ResultRow{
			Row:    row,
			Scores: scoring.ComposeAll(props, row.Values(), set),
		})
	}
	return out
}
