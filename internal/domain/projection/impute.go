package projection

import (
	"math"

	"github.com/frenchfries11234/ff.gg/internal/domain/odds"
	"github.com/frenchfries11234/ff.gg/internal/platform/numeric"
)

// MaxMissing is the number of missing props at which a player is dropped
// from the batch instead of imputed.
const MaxMissing = 2

// ColumnFill describes how one prop column was filled.
type ColumnFill struct {
	Mean    float64
	HasMean bool
	Std     float64
	HasStd  bool
	Value   float64
}

// ImputeResult is the outcome of one batch imputation pass.
type ImputeResult struct {
	Rows     []Row
	Excluded []RawRow
	Fills    []ColumnFill
}

// Impute runs the population-wide fill over a fully collected batch. Players
// with MaxMissing or more missing props are excluded first. Column mean and
// sample standard deviation are then taken over the remaining players' known
// values, and every gap is filled with max(0, mean-std), falling back to
// max(0, mean) when the deviation is undefined and to 0 when the column has
// no values at all. Width is the length of the prop list.
func Impute(batch []RawRow, width int) ImputeResult {
	var result ImputeResult
	kept := make([]RawRow, 0, len(batch))
	for _, row := range batch {
		if row.missingIn(width) >= MaxMissing {
			result.Excluded = append(result.Excluded, row)
			continue
		}
		kept = append(kept, row)
	}

	result.Fills = make([]ColumnFill, width)
	for col := 0; col < width; col++ {
		known := make([]float64, 0, len(kept))
		for _, row := range kept {
			if col < len(row.Stats) && row.Stats[col].OK {
				known = append(known, row.Stats[col].Value)
			}
		}
		result.Fills[col] = columnFill(known)
	}

	result.Rows = make([]Row, 0, len(kept))
	for _, raw := range kept {
		row := Row{
			Name:   raw.Name,
			Game:   raw.Game,
			Stats:  make([]StatValue, width),
			Detail: make([]odds.PropEstimate, width),
		}
		for col := 0; col < width; col++ {
			if col < len(raw.Stats) && raw.Stats[col].OK {
				row.Stats[col] = StatValue{Value: raw.Stats[col].Value}
				row.Detail[col] = raw.Stats[col]
				continue
			}
			row.Stats[col] = StatValue{Value: result.Fills[col].Value, Imputed: true}
			if col < len(raw.Stats) {
				row.Detail[col] = raw.Stats[col]
			}
		}
		result.Rows = append(result.Rows, row)
	}
	return result
}

func (r RawRow) missingIn(width int) int {
	n := 0
	for col := 0; col < width; col++ {
		if col >= len(r.Stats) || !r.Stats[col].OK {
			n++
		}
	}
	return n
}

func columnFill(known []float64) ColumnFill {
	var fill ColumnFill
	fill.Mean, fill.HasMean = numeric.Mean(known)
	fill.Std, fill.HasStd = numeric.SampleStdDev(known)

	switch {
	case fill.HasMean && fill.HasStd:
		fill.Value = math.Max(0, fill.Mean-fill.Std)
	case fill.HasMean:
		fill.Value = math.Max(0, fill.Mean)
	}
	fill.Value = numeric.Round(fill.Value, odds.StatPrecision)
	return fill
}
