package gameprojection

import (
	"fmt"
	"strings"
	"time"
)

// GameProjection is the stored per-game projection of one rostered player.
type GameProjection struct {
	PlayerESPNID     int64
	GameID           string
	CommenceTime     time.Time
	HomeTeam         string
	AwayTeam         string
	Projections      map[string]float64
	Fantasy          map[string]float64
	FantasyUpdatedAt *time.Time
}

func (g GameProjection) Validate() error {
	if g.PlayerESPNID <= 0 {
		return fmt.Errorf("player espn id must be greater than zero")
	}
	if strings.TrimSpace(g.GameID) == "" {
		return fmt.Errorf("game id is required")
	}
	if g.CommenceTime.IsZero() {
		return fmt.Errorf("commence time is required")
	}
	return nil
}

// HasFantasy reports whether every named profile already has a stored total.
func (g GameProjection) HasFantasy(profiles []string) bool {
	for _, name := range profiles {
		if _, ok := g.Fantasy[name]; !ok {
			return false
		}
	}
	return true
}
