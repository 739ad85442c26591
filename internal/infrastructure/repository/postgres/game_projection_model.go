package postgres

import "time"

type gameProjectionTableModel struct {
	ID               int64        `db:"id"`
	PlayerESPNID     int64        `db:"player_espn_id"`
	GameID           string       `db:"game_id"`
	CommenceTime     time.Time    `db:"commence_time"`
	HomeTeam         string       `db:"home_team"`
	AwayTeam         string       `db:"away_team"`
	Projections      jsonFloatMap `db:"projections"`
	Fantasy          jsonFloatMap `db:"fantasy"`
	FantasyUpdatedAt *time.Time   `db:"fantasy_updated_at"`
	CreatedAt        time.Time    `db:"created_at"`
	UpdatedAt        time.Time    `db:"updated_at"`
}

type gameProjectionInsertModel struct {
	PlayerESPNID int64        `db:"player_espn_id"`
	GameID       string       `db:"game_id"`
	CommenceTime time.Time    `db:"commence_time"`
	HomeTeam     string       `db:"home_team"`
	AwayTeam     string       `db:"away_team"`
	Projections  jsonFloatMap `db:"projections"`
}
