package projection

import (
	"strconv"

	"github.com/frenchfries11234/ff.gg/internal/domain/odds"
	"github.com/frenchfries11234/ff.gg/internal/domain/scoring"
)

// ImputedMarker is appended to the display form of imputed stats.
const ImputedMarker = "*"

// StatValue is one cell of a player's stat vector after imputation.
type StatValue struct {
	Value   float64
	Imputed bool
}

// Display renders the value with ImputedMarker when it was filled in.
func (v StatValue) Display() string {
	s := strconv.FormatFloat(v.Value, 'f', -1, 64)
	if v.Imputed {
		return s + ImputedMarker
	}
	return s
}

// RawRow is a player's stat vector before imputation. Stats is aligned with
// the caller's prop list; an estimate that is not OK is a missing stat.
type RawRow struct {
	Name  string
	Game  string
	Stats []odds.PropEstimate
}

// Missing counts the props without a usable estimate.
func (r RawRow) Missing() int {
	n := 0
	for _, s := range r.Stats {
		if !s.OK {
			n++
		}
	}
	return n
}

// Row is a player's complete stat vector.
type Row struct {
	Name  string
	Game  string
	Stats []StatValue
	// Detail keeps the per-line estimates behind each stat. Imputed stats
	// have no lines.
	Detail []odds.PropEstimate
}

func (r Row) Values() []float64 {
	out := make([]float64, len(r.Stats))
	for i, s := range r.Stats {
		out[i] = s.Value
	}
	return out
}

// ResultRow is a scored row ready for output.
type ResultRow struct {
	Row
	Scores []scoring.Score
}
