package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/frenchfries11234/ff.gg/internal/domain/gameprojection"
	"github.com/frenchfries11234/ff.gg/internal/domain/odds"
	"github.com/frenchfries11234/ff.gg/internal/domain/player"
	"github.com/frenchfries11234/ff.gg/internal/domain/sport"
	"github.com/frenchfries11234/ff.gg/internal/infrastructure/repository/memory"
	"github.com/frenchfries11234/ff.gg/internal/platform/logging"
)

func nflRoster() []player.Player {
	return []player.Player{
		{ESPNID: 3139477, Name: "Patrick Mahomes", Team: "KC", Position: player.PositionQuarterback},
		{ESPNID: 3918298, Name: "Josh Allen", Team: "BUF", Position: player.PositionQuarterback},
		{ESPNID: 15847, Name: "Travis Kelce", Team: "KC", Position: player.PositionTightEnd},
		{ESPNID: 4241372, Name: "Mike Williams", Team: "KC", Position: player.PositionWideReceiver},
		{ESPNID: 3045138, Name: "Mike Williams", Team: "BUF", Position: player.PositionWideReceiver},
	}
}

func nflSource(t *testing.T) staticSource {
	t.Helper()

	game := oddsDocument(t, "evt-kc-buf", "2026-09-11T00:20:00Z", "Kansas City Chiefs", "Buffalo Bills",
		quote{"Patrick Mahomes", "player_pass_yds", 275.5},
		quote{"Patrick Mahomes", "player_pass_tds", 1.5},
		quote{"Josh Allen", "player_pass_yds", 250.5},
		quote{"Josh Allen", "player_receptions", 0.5},
		quote{"Mike Williams", "player_receptions", 3.5},
		quote{"Xavier Nobody", "player_rush_yds", 10.5},
	)
	noID := oddsDocument(t, "", "2026-09-14T17:00:00Z", "Detroit Lions", "Chicago Bears",
		quote{"Jared Goff", "player_pass_yds", 260.5},
	)
	badTime := oddsDocument(t, "evt-det-chi", "Sunday 1pm", "Detroit Lions", "Chicago Bears",
		quote{"Jared Goff", "player_pass_yds", 260.5},
	)

	return staticSource{docs: map[string][]odds.RawDocument{
		"nfl": {
			{Name: "kc-buf.json", Body: game},
			{Name: "no-id.json", Body: noID},
			{Name: "bad-time.json", Body: badTime},
		},
	}}
}

func TestImportService_ImportGroup_ResolvesAndStores(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	players := memory.NewPlayerRepository(nflRoster())
	games := memory.NewGameProjectionRepository(nil)
	service := NewImportService(sport.DefaultCatalog(), nflSource(t), players, games, logging.NewNop())

	result, err := service.ImportGroup(ctx, ImportRequest{Group: sport.GroupNFLOffense})
	require.NoError(t, err)

	require.Equal(t, 3, result.Documents)
	require.Len(t, result.Skipped, 2)
	require.Equal(t, 2, result.Inserted)
	require.Equal(t, 0, result.Updated)
	require.Equal(t, 1, result.Ambiguous)
	require.Equal(t, 1, result.Filtered)
	require.Equal(t, 1, result.Unresolved)

	mahomes, ok := games.Get(3139477, "evt-kc-buf")
	require.True(t, ok)
	require.Equal(t, map[string]float64{"player_pass_yds": 275.5, "player_pass_tds": 1.5}, mahomes.Projections)
	require.Equal(t, "KC", mahomes.HomeTeam)
	require.Equal(t, "BUF", mahomes.AwayTeam)
	require.True(t, mahomes.CommenceTime.Equal(time.Date(2026, 9, 11, 0, 20, 0, 0, time.UTC)))

	allen, ok := games.Get(3918298, "evt-kc-buf")
	require.True(t, ok)
	require.Equal(t, map[string]float64{"player_pass_yds": 250.5}, allen.Projections)

	for _, id := range []int64{4241372, 3045138} {
		_, ok := games.Get(id, "evt-kc-buf")
		require.False(t, ok, "ambiguous player %d must not be stored", id)
	}
}

func TestImportService_ImportGroup_UpdateKeepsFantasy(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	computedAt := time.Date(2026, 9, 8, 12, 0, 0, 0, time.UTC)
	games := memory.NewGameProjectionRepository([]gameprojection.GameProjection{
		{
			PlayerESPNID:     3139477,
			GameID:           "evt-kc-buf",
			CommenceTime:     time.Date(2026, 9, 11, 0, 15, 0, 0, time.UTC),
			HomeTeam:         "KC",
			AwayTeam:         "BUF",
			Projections:      map[string]float64{"player_pass_yds": 260.5},
			Fantasy:          map[string]float64{"espn_ppr": 14.42},
			FantasyUpdatedAt: &computedAt,
		},
	})
	service := NewImportService(sport.DefaultCatalog(), nflSource(t), memory.NewPlayerRepository(nflRoster()), games, nil)

	result, err := service.ImportGroup(ctx, ImportRequest{Group: sport.GroupNFLOffense, Bookmaker: "draftkings"})
	require.NoError(t, err)
	require.Equal(t, 1, result.Inserted)
	require.Equal(t, 1, result.Updated)

	stored, ok := games.Get(3139477, "evt-kc-buf")
	require.True(t, ok)
	require.Equal(t, 275.5, stored.Projections["player_pass_yds"])
	require.Equal(t, map[string]float64{"espn_ppr": 14.42}, stored.Fantasy)
	require.True(t, stored.CommenceTime.Equal(time.Date(2026, 9, 11, 0, 20, 0, 0, time.UTC)))
}

func TestImportService_ImportGroup_RejectsGroupWithoutRoster(t *testing.T) {
	t.Parallel()

	service := NewImportService(sport.DefaultCatalog(), staticSource{}, memory.NewPlayerRepository(nil), memory.NewGameProjectionRepository(nil), nil)

	_, err := service.ImportGroup(context.Background(), ImportRequest{Group: sport.GroupMLBBatters})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestImportService_ImportRoster(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	players := memory.NewPlayerRepository(nil)
	service := NewImportService(sport.DefaultCatalog(), staticSource{}, players, memory.NewGameProjectionRepository(nil), nil)

	written, err := service.ImportRoster(ctx, []player.Player{
		{ESPNID: 3139477, Name: "Patrick Mahomes", Team: "kc", Position: "qb"},
		{ESPNID: 0, Name: "No Id", Team: "KC", Position: player.PositionQuarterback},
		{ESPNID: 2977187, Name: "Cooper Kupp", Team: "Los Angeles Rams", Position: player.PositionWideReceiver},
	})
	require.NoError(t, err)
	require.Equal(t, 2, written)

	stored, err := players.ListByPositions(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, []player.Player{
		{ESPNID: 2977187, Name: "Cooper Kupp", Team: "LAR", Position: player.PositionWideReceiver},
		{ESPNID: 3139477, Name: "Patrick Mahomes", Team: "KC", Position: player.PositionQuarterback},
	}, stored)

	_, err = service.ImportRoster(ctx, []player.Player{{Name: "Nobody"}})
	require.ErrorIs(t, err, ErrInvalidInput)
}
