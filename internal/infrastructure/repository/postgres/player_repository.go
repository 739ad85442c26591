package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/frenchfries11234/ff.gg/internal/domain/player"
	qb "github.com/frenchfries11234/ff.gg/internal/platform/querybuilder"
)

// playerUpsertBatchSize keeps one multi-row insert well under the 65535 bind
// parameter limit.
const playerUpsertBatchSize = 500

type PlayerRepository struct {
	db *sqlx.DB
}

var playerSelectColumns = []string{
	"espn_id",
	"name",
	"team",
	"position",
	"created_at",
	"updated_at",
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) UpsertPlayers(ctx context.Context, players []player.Player) error {
	models := dedupePlayers(players)
	if len(models) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert players: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for start := 0; start < len(models); start += playerUpsertBatchSize {
		end := min(start+playerUpsertBatchSize, len(models))
		query, args, err := qb.InsertModels("players", models[start:end], `ON CONFLICT (espn_id)
DO UPDATE SET
    name = EXCLUDED.name,
    team = EXCLUDED.team,
    position = EXCLUDED.position,
    updated_at = NOW()`)
		if err != nil {
			return fmt.Errorf("build upsert players query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert players batch=%d: %w", start/playerUpsertBatchSize, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert players tx: %w", err)
	}
	return nil
}

func (r *PlayerRepository) ListByPositions(ctx context.Context, positions []player.Position) ([]player.Player, error) {
	builder := qb.Select(playerSelectColumns...).From("players").OrderBy("espn_id")
	if len(positions) > 0 {
		builder.Where(qb.AnyFold("position", positionStrings(positions)))
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by positions query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by positions: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Player{
			ESPNID:   row.ESPNID,
			Name:     row.Name,
			Team:     row.Team,
			Position: player.Position(row.Position),
		})
	}
	return out, nil
}

func (r *PlayerRepository) Count(ctx context.Context) (int, error) {
	return r.count(ctx, nil)
}

func (r *PlayerRepository) CountByPositions(ctx context.Context, positions []player.Position) (int, error) {
	if len(positions) == 0 {
		return r.count(ctx, nil)
	}
	return r.count(ctx, []qb.Condition{qb.AnyFold("position", positionStrings(positions))})
}

func (r *PlayerRepository) count(ctx context.Context, where []qb.Condition) (int, error) {
	query, args, err := qb.Select("COUNT(1)").From("players").Where(where...).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count players query: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}
	return total, nil
}

func (r *PlayerRepository) DistinctPositions(ctx context.Context) ([]player.Position, error) {
	query, args, err := qb.Select("position").Distinct().From("players").OrderBy("position").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build distinct positions query: %w", err)
	}

	var rows []string
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select distinct positions: %w", err)
	}

	out := make([]player.Position, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Position(row))
	}
	return out, nil
}

// dedupePlayers keeps the last entry per espn id; one INSERT ... ON CONFLICT
// cannot touch the same row twice.
func dedupePlayers(players []player.Player) []playerInsertModel {
	index := make(map[int64]int, len(players))
	out := make([]playerInsertModel, 0, len(players))
	for _, p := range players {
		model := playerInsertModel{
			ESPNID:   p.ESPNID,
			Name:     p.Name,
			Team:     player.NormalizeTeam(p.Team),
			Position: string(player.ParsePosition(string(p.Position))),
		}
		if i, ok := index[p.ESPNID]; ok {
			out[i] = model
			continue
		}
		index[p.ESPNID] = len(out)
		out = append(out, model)
	}
	return out
}
