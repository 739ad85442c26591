package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	UpsertPlayers(ctx context.Context, players []Player) error
	// ListByPositions returns every player when positions is empty.
	ListByPositions(ctx context.Context, positions []Position) ([]Player, error)
	Count(ctx context.Context) (int, error)
	CountByPositions(ctx context.Context, positions []Position) (int, error)
	DistinctPositions(ctx context.Context) ([]Position, error)
}
