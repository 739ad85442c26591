package gameprojection

import (
	"context"
	"time"
)

// UpsertResult tells whether an upsert created the record or refreshed it.
type UpsertResult string

const (
	UpsertInserted UpsertResult = "inserted"
	UpsertUpdated  UpsertResult = "updated"
)

type Repository interface {
	// UpsertProjections refreshes projections, commence time and teams of an
	// existing (player, game) record and inserts it otherwise. Stored fantasy
	// totals are kept.
	UpsertProjections(ctx context.Context, item GameProjection) (UpsertResult, error)
	ListByPlayer(ctx context.Context, playerESPNID int64) ([]GameProjection, error)
	// UpdateFantasy merges fantasy into the stored totals of one record.
	UpdateFantasy(ctx context.Context, playerESPNID int64, gameID string, fantasy map[string]float64, updatedAt time.Time) error
}
