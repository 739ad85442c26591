package oddsfile

import (
	"os"
	"strings"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/frenchfries11234/ff.gg/internal/domain/player"
)

// rosterRecord accepts both the ESPN fantasy players feed shape
// (id/fullName/defaultPositionId) and a flattened export (espn_id/name/position).
type rosterRecord struct {
	ID                int64  `json:"id"`
	ESPNID            int64  `json:"espn_id"`
	FullName          string `json:"fullName"`
	Name              string `json:"name"`
	DefaultPositionID *int   `json:"defaultPositionId"`
	Position          string `json:"position"`
	Team              string `json:"team"`
}

func (r rosterRecord) toPlayer() player.Player {
	id := r.ESPNID
	if id == 0 {
		id = r.ID
	}
	name := strings.TrimSpace(r.Name)
	if name == "" {
		name = strings.TrimSpace(r.FullName)
	}
	pos := player.ParsePosition(r.Position)
	if pos == "" && r.DefaultPositionID != nil {
		pos = player.PositionFromESPN(*r.DefaultPositionID)
	}
	return player.Player{
		ESPNID:   id,
		Name:     name,
		Team:     player.NormalizeTeam(r.Team),
		Position: pos,
	}
}

// DecodeRoster parses a JSON array of roster records. Records that do not
// form a valid player are returned in skipped with the reason.
func DecodeRoster(raw []byte) (players []player.Player, skipped []error, err error) {
	var records []rosterRecord
	if err := sonic.Unmarshal(raw, &records); err != nil {
		return nil, nil, crerr.Wrap(err, "decode roster")
	}

	players = make([]player.Player, 0, len(records))
	for i, record := range records {
		p := record.toPlayer()
		if err := p.Validate(); err != nil {
			skipped = append(skipped, crerr.Wrapf(err, "roster record %d", i))
			continue
		}
		players = append(players, p)
	}
	return players, skipped, nil
}

func ReadRoster(path string) ([]player.Player, []error, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, crerr.Wrapf(err, "read roster %s", path)
	}
	return DecodeRoster(raw)
}
