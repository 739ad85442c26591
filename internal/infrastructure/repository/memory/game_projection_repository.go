package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/frenchfries11234/ff.gg/internal/domain/gameprojection"
)

type gameKey struct {
	playerESPNID int64
	gameID       string
}

type GameProjectionRepository struct {
	mu    sync.RWMutex
	items map[gameKey]gameprojection.GameProjection
	// fantasyWrites counts UpdateFantasy calls.
	fantasyWrites int
}

func NewGameProjectionRepository(items []gameprojection.GameProjection) *GameProjectionRepository {
	repo := &GameProjectionRepository{items: make(map[gameKey]gameprojection.GameProjection, len(items))}
	for _, item := range items {
		repo.items[gameKey{item.PlayerESPNID, item.GameID}] = cloneGameProjection(item)
	}
	return repo
}

func (r *GameProjectionRepository) UpsertProjections(_ context.Context, item gameprojection.GameProjection) (gameprojection.UpsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := gameKey{item.PlayerESPNID, item.GameID}
	existing, ok := r.items[key]
	if !ok {
		stored := cloneGameProjection(item)
		stored.Fantasy = nil
		stored.FantasyUpdatedAt = nil
		r.items[key] = stored
		return gameprojection.UpsertInserted, nil
	}

	existing.Projections = cloneFloatMap(item.Projections)
	existing.CommenceTime = item.CommenceTime
	existing.HomeTeam = item.HomeTeam
	existing.AwayTeam = item.AwayTeam
	r.items[key] = existing
	return gameprojection.UpsertUpdated, nil
}

func (r *GameProjectionRepository) ListByPlayer(_ context.Context, playerESPNID int64) ([]gameprojection.GameProjection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]gameprojection.GameProjection, 0)
	for key, item := range r.items {
		if key.playerESPNID != playerESPNID {
			continue
		}
		out = append(out, cloneGameProjection(item))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CommenceTime.Equal(out[j].CommenceTime) {
			return out[i].CommenceTime.Before(out[j].CommenceTime)
		}
		return out[i].GameID < out[j].GameID
	})
	return out, nil
}

func (r *GameProjectionRepository) UpdateFantasy(_ context.Context, playerESPNID int64, gameID string, fantasy map[string]float64, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := gameKey{playerESPNID, gameID}
	item, ok := r.items[key]
	if !ok {
		return fmt.Errorf("game projection not found: player=%d game=%s", playerESPNID, gameID)
	}
	if item.Fantasy == nil {
		item.Fantasy = make(map[string]float64, len(fantasy))
	}
	for name, points := range fantasy {
		item.Fantasy[name] = points
	}
	ts := updatedAt
	item.FantasyUpdatedAt = &ts
	r.items[key] = item
	r.fantasyWrites++
	return nil
}

// FantasyWrites returns the number of UpdateFantasy calls served.
func (r *GameProjectionRepository) FantasyWrites() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.fantasyWrites
}

// Get returns one stored record.
func (r *GameProjectionRepository) Get(playerESPNID int64, gameID string) (gameprojection.GameProjection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[gameKey{playerESPNID, gameID}]
	if !ok {
		return gameprojection.GameProjection{}, false
	}
	return cloneGameProjection(item), true
}

func cloneGameProjection(item gameprojection.GameProjection) gameprojection.GameProjection {
	item.Projections = cloneFloatMap(item.Projections)
	item.Fantasy = cloneFloatMap(item.Fantasy)
	if item.FantasyUpdatedAt != nil {
		ts := *item.FantasyUpdatedAt
		item.FantasyUpdatedAt = &ts
	}
	return item
}

func cloneFloatMap(in map[string]float64) map[string]float64 {
	if in == nil {
		return nil
	}
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
