package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/frenchfries11234/ff.gg/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players map[int64]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	byID := make(map[int64]player.Player, len(players))
	for _, p := range players {
		byID[p.ESPNID] = p
	}
	return &PlayerRepository{players: byID}
}

func (r *PlayerRepository) UpsertPlayers(_ context.Context, players []player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range players {
		r.players[p.ESPNID] = p
	}
	return nil
}

func (r *PlayerRepository) ListByPositions(_ context.Context, positions []player.Position) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	allowed := positionSet(positions)
	out := make([]player.Player, 0, len(r.players))
	for _, p := range r.players {
		if !positionAllowed(allowed, p.Position) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ESPNID < out[j].ESPNID })
	return out, nil
}

func (r *PlayerRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.players), nil
}

func (r *PlayerRepository) CountByPositions(ctx context.Context, positions []player.Position) (int, error) {
	players, err := r.ListByPositions(ctx, positions)
	if err != nil {
		return 0, err
	}
	return len(players), nil
}

func (r *PlayerRepository) DistinctPositions(_ context.Context) ([]player.Position, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[player.Position]struct{})
	out := make([]player.Position, 0)
	for _, p := range r.players {
		if _, ok := seen[p.Position]; ok {
			continue
		}
		seen[p.Position] = struct{}{}
		out = append(out, p.Position)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func positionSet(positions []player.Position) map[player.Position]struct{} {
	if len(positions) == 0 {
		return nil
	}
	out := make(map[player.Position]struct{}, len(positions))
	for _, pos := range positions {
		out[player.ParsePosition(string(pos))] = struct{}{}
	}
	return out
}

func positionAllowed(allowed map[player.Position]struct{}, pos player.Position) bool {
	if allowed == nil {
		return true
	}
	_, ok := allowed[player.ParsePosition(string(pos))]
	return ok
}
