package scoring

import "github.com/frenchfries11234/ff.gg/internal/platform/numeric"

// ScorePrecision is the number of decimal places kept on fantasy scores.
const ScorePrecision = 2

// Score is the composed fantasy total under one profile.
type Score struct {
	Profile string
	Points  float64
}

// Compose returns the dot product of stats and the profile weights, rounded
// to ScorePrecision places. stats[i] is the value of props[i]; props the
// profile does not weight contribute nothing.
func Compose(props []string, stats []float64, profile Profile) float64 {
	var total float64
	for i, prop := range props {
		if i >= len(stats) {
			break
		}
		total += stats[i] * profile.Weight(prop)
	}
	return numeric.Round(total, ScorePrecision)
}

// ComposeAll scores stats under every profile of the set, in set order.
func ComposeAll(props []string, stats []float64, set ProfileSet) []Score {
	out := make([]Score, 0, set.Len())
	for _, p := range set.profiles {
		out = append(out, Score{Profile: p.name, Points: Compose(props, stats, p)})
	}
	return out
}

// ComposeMap scores a prop-keyed projection map, as stored per game. Missing
// props count as zero.
func ComposeMap(projections map[string]float64, profile Profile) float64 {
	var total float64
	for _, prop := range profile.Props() {
		total += projections[prop] * profile.weights[prop]
	}
	return numeric.Round(total, ScorePrecision)
}
