package odds

import (
	"math"

	crerr "github.com/cockroachdb/errors"
)

// Probabilities is a margin-free over/under probability pair.
type Probabilities struct {
	Over  float64
	Under float64
}

// Devig converts decimal over/under prices into implied probabilities and
// rescales them to sum to one, removing the bookmaker margin. Both prices
// must be finite and greater than 1.
func Devig(overPrice, underPrice float64) (Probabilities, error) {
	if !validPrice(overPrice) || !validPrice(underPrice) {
		return Probabilities{}, crerr.Mark(
			crerr.Newf("over=%v under=%v", overPrice, underPrice),
			ErrInvalidPrice,
		)
	}

	pOver := 1 / overPrice
	pUnder := 1 / underPrice
	total := pOver + pUnder
	return Probabilities{
		Over:  pOver / total,
		Under: pUnder / total,
	}, nil
}

func validPrice(price float64) bool {
	return price > 1 && !math.IsInf(price, 0) && !math.IsNaN(price)
}
