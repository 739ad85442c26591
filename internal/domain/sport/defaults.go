package sport

import (
	"github.com/frenchfries11234/ff.gg/internal/domain/player"
	"github.com/frenchfries11234/ff.gg/internal/domain/scoring"
)

const (
	GroupMLBBatters  = "mlb_batters"
	GroupMLBPitchers = "mlb_pitchers"
	GroupNFLOffense  = "nfl_offense"
	GroupNFLQB       = "nfl_qb"
	GroupNFLRB       = "nfl_rb"
	GroupNFLWRTE     = "nfl_wr_te"
)

const nflSportKey = "americanfootball_nfl"

var (
	nflPassing   = []string{"player_pass_yds", "player_pass_tds"}
	nflRushing   = []string{"player_rush_yds", "player_rush_tds"}
	nflReceiving = []string{"player_receptions", "player_reception_yds", "player_reception_tds"}
)

// DefaultCatalog builds the groups quoted by the odds provider's US books.
func DefaultCatalog() *Catalog {
	qb := []player.Position{player.PositionQuarterback}
	qbRB := []player.Position{player.PositionQuarterback, player.PositionRunningBack}
	receivers := []player.Position{player.PositionRunningBack, player.PositionWideReceiver, player.PositionTightEnd}

	groups := []GroupConfig{
		{
			Key:      GroupMLBBatters,
			SportKey: "baseball_mlb",
			DataDir:  "batters",
			Props: []string{
				"batter_runs_scored",
				"batter_total_bases",
				"batter_rbis",
				"batter_walks",
				"batter_stolen_bases",
				"batter_strikeouts",
			},
			Prefixes: []string{"batter_"},
			Profiles: scoring.MustProfileSet(scoring.ESPNBatters),
		},
		{
			Key:      GroupMLBPitchers,
			SportKey: "baseball_mlb",
			DataDir:  "pitchers",
			Props: []string{
				"pitcher_strikeouts",
				"pitcher_hits_allowed",
				"pitcher_walks",
				"pitcher_earned_runs",
			},
			Prefixes: []string{"pitcher_"},
			Profiles: scoring.MustProfileSet(scoring.ESPNPitchers),
		},
		{
			Key:             GroupNFLOffense,
			SportKey:        nflSportKey,
			DataDir:         "nfl",
			Props:           concatProps(nflPassing, nflRushing, nflReceiving),
			Prefixes:        []string{"player_"},
			Profiles:        scoring.NFLProfiles(),
			PositionsByProp: mergePositions(
				positionsByProp(nflPassing, qb),
				positionsByProp(nflRushing, qbRB),
				positionsByProp(nflReceiving, receivers),
			),
		},
		// Projection slates per position. They read the same nfl directory;
		// nfl_offense stays the import and backfill group.
		nflPositionGroup(GroupNFLQB, []player.Position{player.PositionQuarterback}, nflPassing, nflRushing),
		nflPositionGroup(GroupNFLRB, []player.Position{player.PositionRunningBack}, nflRushing, nflReceiving),
		nflPositionGroup(GroupNFLWRTE, []player.Position{player.PositionWideReceiver, player.PositionTightEnd}, nflReceiving),
	}

	out := make([]Group, 0, len(groups))
	for _, cfg := range groups {
		g, err := NewGroup(cfg)
		if err != nil {
			panic(err)
		}
		out = append(out, g)
	}
	catalog, err := NewCatalog(out...)
	if err != nil {
		panic(err)
	}
	return catalog
}

func nflPositionGroup(key string, positions []player.Position, props ...[]string) GroupConfig {
	all := concatProps(props...)
	return GroupConfig{
		Key:             key,
		SportKey:        nflSportKey,
		DataDir:         "nfl",
		Props:           all,
		Prefixes:        []string{"player_"},
		Profiles:        scoring.NFLProfiles(),
		PositionsByProp: positionsByProp(all, positions),
	}
}

func concatProps(lists ...[]string) []string {
	var out []string
	for _, list := range lists {
		out = append(out, list...)
	}
	return out
}

func positionsByProp(props []string, positions []player.Position) map[string][]player.Position {
	out := make(map[string][]player.Position, len(props))
	for _, prop := range props {
		out[prop] = positions
	}
	return out
}

func mergePositions(maps ...map[string][]player.Position) map[string][]player.Position {
	out := make(map[string][]player.Position)
	for _, m := range maps {
		for prop, positions := range m {
			out[prop] = positions
		}
	}
	return out
}
