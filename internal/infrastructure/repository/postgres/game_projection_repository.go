package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/frenchfries11234/ff.gg/internal/domain/gameprojection"
	qb "github.com/frenchfries11234/ff.gg/internal/platform/querybuilder"
)

type GameProjectionRepository struct {
	db *sqlx.DB
}

var gameProjectionSelectColumns = []string{
	"id",
	"player_espn_id",
	"game_id",
	"commence_time",
	"home_team",
	"away_team",
	"projections",
	"fantasy",
	"fantasy_updated_at",
	"created_at",
	"updated_at",
}

func NewGameProjectionRepository(db *sqlx.DB) *GameProjectionRepository {
	return &GameProjectionRepository{db: db}
}

func (r *GameProjectionRepository) UpsertProjections(ctx context.Context, item gameprojection.GameProjection) (gameprojection.UpsertResult, error) {
	insertModel := gameProjectionInsertModel{
		PlayerESPNID: item.PlayerESPNID,
		GameID:       item.GameID,
		CommenceTime: item.CommenceTime.UTC(),
		HomeTeam:     item.HomeTeam,
		AwayTeam:     item.AwayTeam,
		Projections:  jsonFloatMap(item.Projections),
	}

	// xmax is zero only on rows created by this statement.
	query, args, err := qb.InsertModel("player_game_projections", insertModel, `ON CONFLICT (player_espn_id, game_id)
DO UPDATE SET
    projections = EXCLUDED.projections,
    commence_time = EXCLUDED.commence_time,
    home_team = EXCLUDED.home_team,
    away_team = EXCLUDED.away_team,
    updated_at = NOW()
RETURNING (xmax = 0) AS inserted`)
	if err != nil {
		return "", fmt.Errorf("build upsert game projection query: %w", err)
	}

	var inserted bool
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&inserted); err != nil {
		return "", fmt.Errorf("upsert game projection player=%d game=%s: %w", item.PlayerESPNID, item.GameID, err)
	}
	if inserted {
		return gameprojection.UpsertInserted, nil
	}
	return gameprojection.UpsertUpdated, nil
}

func (r *GameProjectionRepository) ListByPlayer(ctx context.Context, playerESPNID int64) ([]gameprojection.GameProjection, error) {
	query, args, err := qb.Select(gameProjectionSelectColumns...).From("player_game_projections").
		Where(qb.Eq("player_espn_id", playerESPNID)).
		OrderBy("commence_time", "game_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select game projections by player query: %w", err)
	}

	var rows []gameProjectionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select game projections by player: %w", err)
	}

	out := make([]gameprojection.GameProjection, 0, len(rows))
	for _, row := range rows {
		out = append(out, gameprojection.GameProjection{
			PlayerESPNID:     row.PlayerESPNID,
			GameID:           row.GameID,
			CommenceTime:     row.CommenceTime,
			HomeTeam:         row.HomeTeam,
			AwayTeam:         row.AwayTeam,
			Projections:      map[string]float64(row.Projections),
			Fantasy:          map[string]float64(row.Fantasy),
			FantasyUpdatedAt: row.FantasyUpdatedAt,
		})
	}
	return out, nil
}

func (r *GameProjectionRepository) UpdateFantasy(ctx context.Context, playerESPNID int64, gameID string, fantasy map[string]float64, updatedAt time.Time) error {
	query, args, err := qb.Update("player_game_projections").
		SetExpr("fantasy", "fantasy || ?::jsonb", jsonFloatMap(fantasy)).
		Set("fantasy_updated_at", updatedAt.UTC()).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("player_espn_id", playerESPNID),
			qb.Eq("game_id", gameID),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update fantasy query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update fantasy player=%d game=%s: %w", playerESPNID, gameID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected update fantasy: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update fantasy player=%d game=%s: not found", playerESPNID, gameID)
	}
	return nil
}
