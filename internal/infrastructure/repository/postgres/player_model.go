package postgres

import "time"

type playerTableModel struct {
	ESPNID    int64     `db:"espn_id"`
	Name      string    `db:"name"`
	Team      string    `db:"team"`
	Position  string    `db:"position"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type playerInsertModel struct {
	ESPNID   int64  `db:"espn_id"`
	Name     string `db:"name"`
	Team     string `db:"team"`
	Position string `db:"position"`
}
