package odds

import (
	"bytes"
	"math"
	"strconv"
	"strings"
)

// Document is one sporting event as delivered by the odds provider.
type Document struct {
	ID           string      `json:"id" validate:"required"`
	SportKey     string      `json:"sport_key,omitempty"`
	CommenceTime string      `json:"commence_time" validate:"required"`
	HomeTeam     string      `json:"home_team" validate:"required"`
	AwayTeam     string      `json:"away_team" validate:"required"`
	Bookmakers   []Bookmaker `json:"bookmakers"`
}

type Bookmaker struct {
	Key     string   `json:"key"`
	Title   string   `json:"title,omitempty"`
	Markets []Market `json:"markets"`
}

// Market groups the outcomes quoted for one prop key.
type Market struct {
	Key      string    `json:"key"`
	Outcomes []Outcome `json:"outcomes"`
}

// Outcome is a single quoted side. Description carries the player display name
// and Name the side label ("Over", "Under").
type Outcome struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Point       OptionalNumber `json:"point"`
	Price       OptionalNumber `json:"price"`
}

// GameLabel renders the "{home} vs {away}" label used in result rows.
func (d Document) GameLabel() string {
	return d.HomeTeam + " vs " + d.AwayTeam
}

// WithBookmaker returns a copy of the document restricted to one bookmaker.
// An empty key keeps every bookmaker.
func (d Document) WithBookmaker(key string) Document {
	key = strings.TrimSpace(key)
	if key == "" {
		return d
	}
	out := d
	out.Bookmakers = nil
	for _, book := range d.Bookmakers {
		if strings.EqualFold(book.Key, key) {
			out.Bookmakers = append(out.Bookmakers, book)
		}
	}
	return out
}

// Side is the over/under half of a two-way prop market.
type Side string

const (
	SideOver  Side = "over"
	SideUnder Side = "under"
)

// ClassifySide reports SideOver when the outcome name contains "over"
// (case-insensitive). Every other name, including unexpected labels such as
// "Yes", is classified as SideUnder.
func ClassifySide(outcomeName string) Side {
	if strings.Contains(strings.ToLower(outcomeName), "over") {
		return SideOver
	}
	return SideUnder
}

// OptionalNumber decodes a JSON number or numeric string. Any other value,
// including null, decodes to an invalid number instead of failing the document.
type OptionalNumber struct {
	Value float64
	Valid bool
}

func Number(v float64) OptionalNumber {
	return OptionalNumber{Value: v, Valid: true}
}

func (n *OptionalNumber) UnmarshalJSON(raw []byte) error {
	*n = OptionalNumber{}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	text := string(trimmed)
	if trimmed[0] == '"' {
		unquoted, err := strconv.Unquote(text)
		if err != nil {
			return nil
		}
		text = strings.TrimSpace(unquoted)
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil
	}
	n.Value = value
	n.Valid = true
	return nil
}

func (n OptionalNumber) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, n.Value, 'g', -1, 64), nil
}
