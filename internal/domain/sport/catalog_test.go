package sport

import (
	"strings"
	"testing"

	crerr "github.com/cockroachdb/errors"

	"github.com/frenchfries11234/ff.gg/internal/domain/player"
	"github.com/frenchfries11234/ff.gg/internal/domain/scoring"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()

	keys := catalog.Keys()
	if len(keys) != 6 || keys[0] != GroupMLBBatters || keys[2] != GroupNFLOffense || keys[5] != GroupNFLWRTE {
		t.Fatalf("unexpected keys: %v", keys)
	}

	nfl, err := catalog.Lookup(GroupNFLOffense)
	if err != nil {
		t.Fatalf("lookup nfl: %v", err)
	}
	if nfl.DataDir() != "nfl" || nfl.Profiles().Len() != 3 {
		t.Fatalf("unexpected nfl group: dir=%s profiles=%d", nfl.DataDir(), nfl.Profiles().Len())
	}

	rush := nfl.PositionsFor("player_rush_yds")
	if len(rush) != 2 || rush[0] != player.PositionQuarterback || rush[1] != player.PositionRunningBack {
		t.Fatalf("unexpected rush positions: %v", rush)
	}

	roster := nfl.RosterPositions()
	if len(roster) != 4 {
		t.Fatalf("expected 4 roster positions, got %v", roster)
	}

	batters, err := catalog.Lookup(GroupMLBBatters)
	if err != nil {
		t.Fatalf("lookup batters: %v", err)
	}
	if got := batters.PositionsFor("batter_rbis"); got != nil {
		t.Fatalf("batters have no roster mapping, got %v", got)
	}
}

func TestDefaultCatalog_NFLPositionGroups(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		key       string
		props     []string
		positions []player.Position
	}{
		{
			key:       GroupNFLQB,
			props:     []string{"player_pass_yds", "player_pass_tds", "player_rush_yds", "player_rush_tds"},
			positions: []player.Position{player.PositionQuarterback},
		},
		{
			key:       GroupNFLRB,
			props:     []string{"player_rush_yds", "player_rush_tds", "player_receptions", "player_reception_yds", "player_reception_tds"},
			positions: []player.Position{player.PositionRunningBack},
		},
		{
			key:       GroupNFLWRTE,
			props:     []string{"player_receptions", "player_reception_yds", "player_reception_tds"},
			positions: []player.Position{player.PositionTightEnd, player.PositionWideReceiver},
		},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			g, err := catalog.Lookup(tt.key)
			if err != nil {
				t.Fatalf("lookup: %v", err)
			}
			if strings.Join(g.Props(), ",") != strings.Join(tt.props, ",") {
				t.Fatalf("unexpected props: %v", g.Props())
			}
			if g.DataDir() != "nfl" || g.Profiles().Len() != 3 || !g.MatchesSport("americanfootball_nfl") {
				t.Fatalf("unexpected group: dir=%s profiles=%d sport=%s", g.DataDir(), g.Profiles().Len(), g.SportKey())
			}
			roster := g.RosterPositions()
			if len(roster) != len(tt.positions) {
				t.Fatalf("unexpected roster positions: %v", roster)
			}
			for i := range roster {
				if roster[i] != tt.positions[i] {
					t.Fatalf("unexpected roster positions: %v", roster)
				}
			}
		})
	}
}

func TestCatalogLookupUnknown(t *testing.T) {
	_, err := DefaultCatalog().Lookup("nhl_skaters")
	if !crerr.Is(err, ErrUnknownGroup) {
		t.Fatalf("expected ErrUnknownGroup, got %v", err)
	}
}

func TestGroupAccessorsReturnCopies(t *testing.T) {
	g, err := NewGroup(GroupConfig{
		Key:      "g",
		Props:    []string{"a", "b"},
		Profiles: scoring.MustProfileSet(scoring.MustProfile("p", map[string]float64{"a": 1})),
	})
	if err != nil {
		t.Fatalf("new group: %v", err)
	}

	props := g.Props()
	props[0] = "mutated"
	if g.Props()[0] != "a" {
		t.Fatalf("group props must not be shared")
	}
	if g.DataDir() != "g" {
		t.Fatalf("expected data dir to default to key, got %q", g.DataDir())
	}
}

func TestNewGroupValidation(t *testing.T) {
	profiles := scoring.MustProfileSet(scoring.MustProfile("p", map[string]float64{"a": 1}))

	tests := []struct {
		name string
		cfg  GroupConfig
	}{
		{name: "missing key", cfg: GroupConfig{Props: []string{"a"}, Profiles: profiles}},
		{name: "no props", cfg: GroupConfig{Key: "g", Profiles: profiles}},
		{name: "no profiles", cfg: GroupConfig{Key: "g", Props: []string{"a"}}},
		{name: "duplicate prop", cfg: GroupConfig{Key: "g", Props: []string{"a", "a"}, Profiles: profiles}},
		{
			name: "positions for unknown prop",
			cfg: GroupConfig{
				Key:             "g",
				Props:           []string{"a"},
				Profiles:        profiles,
				PositionsByProp: map[string][]player.Position{"b": {player.PositionTightEnd}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewGroup(tt.cfg); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestNewCatalogRejectsDuplicates(t *testing.T) {
	g, err := NewGroup(GroupConfig{
		Key:      "g",
		Props:    []string{"a"},
		Profiles: scoring.MustProfileSet(scoring.MustProfile("p", map[string]float64{"a": 1})),
	})
	if err != nil {
		t.Fatalf("new group: %v", err)
	}
	if _, err := NewCatalog(g, g); err == nil {
		t.Fatalf("expected duplicate error")
	}
}
