package odds

import "github.com/frenchfries11234/ff.gg/internal/platform/numeric"

// StatPrecision is the number of decimal places kept on aggregated stats.
const StatPrecision = 3

// LineEstimate is the point estimate derived from one complete line.
type LineEstimate struct {
	Line       float64
	OverPrice  float64
	UnderPrice float64
	Prob       Probabilities
	EV         float64
}

// ExpectedValue treats the true stat as sitting half a unit above the line
// with probability p.Over and half a unit below with p.Under. It is an
// approximation around the usual X.5 lines, not a calibrated model.
// Equal probabilities return line exactly.
func ExpectedValue(line float64, p Probabilities) float64 {
	return line + 0.5*(p.Over-p.Under)
}

// EstimateLine returns false for one-sided lines and lines whose prices
// cannot be de-vigged.
func EstimateLine(prices LinePrices) (LineEstimate, bool) {
	if !prices.Complete() {
		return LineEstimate{}, false
	}
	prob, err := Devig(prices.OverPrice, prices.UnderPrice)
	if err != nil {
		return LineEstimate{}, false
	}
	return LineEstimate{
		Line:       prices.Line,
		OverPrice:  prices.OverPrice,
		UnderPrice: prices.UnderPrice,
		Prob:       prob,
		EV:         ExpectedValue(prices.Line, prob),
	}, true
}

// PropEstimate is the aggregated stat for one player and prop. Value is only
// meaningful when OK is true.
type PropEstimate struct {
	Prop  string
	Lines []LineEstimate
	Value float64
	OK    bool
}

// Aggregate averages the EVs of every usable line and rounds the mean to
// StatPrecision places. With no usable line the estimate is not OK.
func Aggregate(prop string, lines []LinePrices) PropEstimate {
	out := PropEstimate{Prop: prop}
	evs := make([]float64, 0, len(lines))
	for _, prices := range lines {
		est, ok := EstimateLine(prices)
		if !ok {
			continue
		}
		out.Lines = append(out.Lines, est)
		evs = append(evs, est.EV)
	}

	mean, ok := numeric.Mean(evs)
	if !ok {
		return out
	}
	out.Value = numeric.Round(mean, StatPrecision)
	out.OK = true
	return out
}

// Estimate aggregates every prop of one player, aligned with props.
func (p PlayerPropLines) Estimate(player string, props []string) []PropEstimate {
	out := make([]PropEstimate, 0, len(props))
	for _, prop := range props {
		out = append(out, Aggregate(prop, p.Lines(player, prop)))
	}
	return out
}
