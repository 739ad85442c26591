package usecase

import (
	"context"
	"testing"

	"github.com/bytedance/sonic"

	"github.com/frenchfries11234/ff.gg/internal/domain/odds"
)

type staticSource struct {
	docs map[string][]odds.RawDocument
	err  error
}

func (s staticSource) Load(_ context.Context, dir string) ([]odds.RawDocument, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.docs[dir], nil
}

type quote struct {
	player string
	prop   string
	line   float64
}

// evenPrice quotes both sides at the same price, so every line's EV equals
// the line itself.
const evenPrice = 1.909

func oddsDocument(t *testing.T, id, commence, home, away string, quotes ...quote) []byte {
	t.Helper()

	var markets []odds.Market
	index := make(map[string]int)
	for _, q := range quotes {
		i, ok := index[q.prop]
		if !ok {
			i = len(markets)
			index[q.prop] = i
			markets = append(markets, odds.Market{Key: q.prop})
		}
		markets[i].Outcomes = append(markets[i].Outcomes,
			odds.Outcome{Name: "Over", Description: q.player, Point: odds.Number(q.line), Price: odds.Number(evenPrice)},
			odds.Outcome{Name: "Under", Description: q.player, Point: odds.Number(q.line), Price: odds.Number(evenPrice)},
		)
	}

	doc := odds.Document{
		ID:           id,
		CommenceTime: commence,
		HomeTeam:     home,
		AwayTeam:     away,
		Bookmakers:   []odds.Bookmaker{{Key: "draftkings", Markets: markets}},
	}
	body, err := sonic.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal odds document: %v", err)
	}
	return body
}
