package player

import (
	"fmt"
	"strings"
)

// Position is the roster position abbreviation, e.g. "QB".
type Position string

const (
	PositionQuarterback  Position = "QB"
	PositionRunningBack  Position = "RB"
	PositionWideReceiver Position = "WR"
	PositionTightEnd     Position = "TE"
	PositionKicker       Position = "K"
	PositionDefense      Position = "DEF"
	PositionUnknown      Position = "UNK"
)

// espnPositions maps ESPN defaultPositionId values to positions.
var espnPositions = map[int]Position{
	0:  PositionDefense,
	1:  PositionQuarterback,
	2:  PositionRunningBack,
	3:  PositionWideReceiver,
	4:  PositionTightEnd,
	5:  PositionKicker,
	6:  "P",
	7:  "DL",
	8:  "LB",
	9:  "DB",
	10: "LS",
}

func PositionFromESPN(id int) Position {
	if pos, ok := espnPositions[id]; ok {
		return pos
	}
	return PositionUnknown
}

func ParsePosition(v string) Position {
	return Position(strings.ToUpper(strings.TrimSpace(v)))
}

// Player is a rostered athlete keyed by ESPN id.
type Player struct {
	ESPNID   int64
	Name     string
	Team     string
	Position Position
}

func (p Player) Validate() error {
	if p.ESPNID <= 0 {
		return fmt.Errorf("player espn id must be greater than zero")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if strings.TrimSpace(p.Team) == "" {
		return fmt.Errorf("player team is required")
	}
	if p.Position == "" {
		return fmt.Errorf("player position is required")
	}
	return nil
}

var teamAliases = map[string]string{
	"WAS": "WSH",
	"JAC": "JAX",
}

// NormalizeTeam upper-cases a team code and folds provider aliases and full
// NFL team names onto the roster codes.
func NormalizeTeam(team string) string {
	team = strings.ToUpper(strings.Join(strings.Fields(team), " "))
	if alias, ok := teamAliases[team]; ok {
		return alias
	}
	if code, ok := nflTeamCodes[team]; ok {
		return code
	}
	return team
}
