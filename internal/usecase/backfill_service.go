package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/frenchfries11234/ff.gg/internal/domain/gameprojection"
	"github.com/frenchfries11234/ff.gg/internal/domain/player"
	"github.com/frenchfries11234/ff.gg/internal/domain/scoring"
	"github.com/frenchfries11234/ff.gg/internal/domain/sport"
	"github.com/frenchfries11234/ff.gg/internal/platform/logging"
)

// BackfillService writes fantasy totals onto stored game projections.
//
// Records whose fantasy map already holds every profile are skipped, so
// re-running is a no-op. Each record is written with its own update and
// nothing is locked: two concurrent runs may both compute the same record
// and the later write wins.
type BackfillService struct {
	groupKey  string
	players   player.Repository
	games     gameprojection.Repository
	profiles  scoring.ProfileSet
	positions []player.Position
	workers   int
	logger    *logging.Logger
	now       func() time.Time
}

func NewBackfillService(
	group sport.Group,
	players player.Repository,
	games gameprojection.Repository,
	workers int,
	logger *logging.Logger,
) *BackfillService {
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &BackfillService{
		groupKey:  group.Key(),
		players:   players,
		games:     games,
		profiles:  group.Profiles(),
		positions: group.RosterPositions(),
		workers:   workers,
		logger:    logger.Named("backfill"),
		now:       time.Now,
	}
}

type BackfillResult struct {
	TotalPlayers      int
	DistinctPositions []player.Position
	MatchedPlayers    int
	// ScannedAll is set when no player matched the position filter and the
	// run fell back to every player.
	ScannedAll     bool
	PlayersScanned int
	GamesUpdated   int
	PlayersFailed  int
}

func (s *BackfillService) Run(ctx context.Context) (result BackfillResult, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BackfillService.Run", attribute.String("projection.group", s.groupKey))
	defer func() { endUsecaseSpan(span, err) }()

	// Profiles of a group without roster positions would score players of
	// another sport.
	if len(s.positions) == 0 {
		return BackfillResult{}, fmt.Errorf("%w: group %s has no roster positions", ErrInvalidInput, s.groupKey)
	}
	if result.TotalPlayers, err = s.players.Count(ctx); err != nil {
		return BackfillResult{}, fmt.Errorf("%w: count players: %v", ErrDependencyUnavailable, err)
	}
	if result.DistinctPositions, err = s.players.DistinctPositions(ctx); err != nil {
		return BackfillResult{}, fmt.Errorf("%w: distinct positions: %v", ErrDependencyUnavailable, err)
	}
	if result.MatchedPlayers, err = s.players.CountByPositions(ctx, s.positions); err != nil {
		return BackfillResult{}, fmt.Errorf("%w: count players by positions: %v", ErrDependencyUnavailable, err)
	}
	s.logger.InfoContext(ctx, "backfill diagnostics",
		"total_players", result.TotalPlayers,
		"distinct_positions", positionNames(result.DistinctPositions),
		"matched_players", result.MatchedPlayers,
	)

	filter := s.positions
	if result.MatchedPlayers == 0 {
		s.logger.WarnContext(ctx, "no player matched the position filter, scanning all players")
		result.ScannedAll = true
		filter = nil
	}

	players, err := s.players.ListByPositions(ctx, filter)
	if err != nil {
		return BackfillResult{}, fmt.Errorf("%w: list players: %v", ErrDependencyUnavailable, err)
	}

	var scanned, updated, failed atomic.Int64
	var firstErr error
	var errOnce sync.Once

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return BackfillResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, p := range players {
		p := p
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			n, err := s.backfillPlayer(ctx, p)
			scanned.Add(1)
			updated.Add(int64(n))
			if err != nil {
				failed.Add(1)
				errOnce.Do(func() { firstErr = err })
				s.logger.ErrorContext(ctx, "backfill player failed", "player_espn_id", p.ESPNID, "error", err)
			}
		}); err != nil {
			workers.Done()
			return BackfillResult{}, fmt.Errorf("submit backfill task to worker pool: %w", err)
		}
	}
	workers.Wait()

	result.PlayersScanned = int(scanned.Load())
	result.GamesUpdated = int(updated.Load())
	result.PlayersFailed = int(failed.Load())
	s.logger.InfoContext(ctx, "backfill finished",
		"players_scanned", result.PlayersScanned,
		"games_updated", result.GamesUpdated,
		"players_failed", result.PlayersFailed,
	)

	if firstErr != nil {
		return result, fmt.Errorf("%w: backfill: %v", ErrDependencyUnavailable, firstErr)
	}
	return result, nil
}

// backfillPlayer returns how many of the player's games were written.
func (s *BackfillService) backfillPlayer(ctx context.Context, p player.Player) (int, error) {
	games, err := s.games.ListByPlayer(ctx, p.ESPNID)
	if err != nil {
		return 0, fmt.Errorf("list games for player %d: %w", p.ESPNID, err)
	}

	names := s.profiles.Names()
	written := 0
	for _, game := range games {
		if len(game.Projections) == 0 || game.HasFantasy(names) {
			continue
		}

		fantasy := make(map[string]float64, s.profiles.Len())
		for _, profile := range s.profiles.Profiles() {
			fantasy[profile.Name()] = scoring.ComposeMap(game.Projections, profile)
		}
		if err := s.games.UpdateFantasy(ctx, p.ESPNID, game.GameID, fantasy, s.now().UTC()); err != nil {
			return written, fmt.Errorf("update fantasy player=%d game=%s: %w", p.ESPNID, game.GameID, err)
		}
		written++
	}
	return written, nil
}

func positionNames(positions []player.Position) []string {
	out := make([]string, 0, len(positions))
	for _, pos := range positions {
		out = append(out, string(pos))
	}
	return out
}
