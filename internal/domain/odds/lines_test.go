package odds

import (
	"testing"
)

func outcome(side, player string, point, price float64) Outcome {
	return Outcome{Name: side, Description: player, Point: Number(point), Price: Number(price)}
}

func TestCollectLines(t *testing.T) {
	doc := Document{
		HomeTeam: "NYY",
		AwayTeam: "TOR",
		Bookmakers: []Bookmaker{
			{
				Key: "draftkings",
				Markets: []Market{
					{
						Key: "batter_total_bases",
						Outcomes: []Outcome{
							outcome("Over", "Aaron Judge", 1.5, 1.8),
							outcome("Under", "Aaron Judge", 1.5, 2.0),
							outcome("Over", "Juan Soto", 0.5, 1.4),
							{Name: "Under", Description: "Juan Soto", Point: Number(0.5)},
							{Name: "Over", Description: "", Point: Number(0.5), Price: Number(2)},
						},
					},
					{
						Key: "batter_home_runs",
						Outcomes: []Outcome{
							outcome("Over", "Aaron Judge", 0.5, 3.0),
						},
					},
				},
			},
			{
				Key: "fanduel",
				Markets: []Market{
					{
						Key: "batter_total_bases",
						Outcomes: []Outcome{
							outcome("Over", "Aaron Judge", 2.5, 3.1),
							outcome("Under", "Aaron Judge", 2.5, 1.35),
						},
					},
				},
			},
		},
	}

	got := CollectLines(doc, []string{"batter_total_bases", "batter_rbis"})

	players := got.Players()
	if len(players) != 2 || players[0] != "Aaron Judge" || players[1] != "Juan Soto" {
		t.Fatalf("unexpected players: %v", players)
	}

	judge := got.Lines("Aaron Judge", "batter_total_bases")
	if len(judge) != 2 {
		t.Fatalf("expected 2 lines for judge, got %d", len(judge))
	}
	if judge[0].Line != 1.5 || judge[1].Line != 2.5 {
		t.Fatalf("lines out of order: %+v", judge)
	}
	if !judge[0].Complete() || judge[0].OverPrice != 1.8 || judge[0].UnderPrice != 2.0 {
		t.Fatalf("unexpected first line: %+v", judge[0])
	}

	if lines := got.Lines("Aaron Judge", "batter_home_runs"); lines != nil {
		t.Fatalf("markets outside the prop list must be ignored, got %+v", lines)
	}

	soto := got.Lines("Juan Soto", "batter_total_bases")
	if len(soto) != 1 || soto[0].Complete() {
		t.Fatalf("expected one one-sided line for soto, got %+v", soto)
	}
}

func TestClassifySide(t *testing.T) {
	tests := []struct {
		name string
		want Side
	}{
		{name: "Over", want: SideOver},
		{name: "OVER 1.5", want: SideOver},
		{name: "Under", want: SideUnder},
		// Anything without "over" counts as under, including labels that are
		// neither side.
		{name: "Yes", want: SideUnder},
		{name: "", want: SideUnder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifySide(tt.name); got != tt.want {
				t.Fatalf("ClassifySide(%q) = %s, want %s", tt.name, got, tt.want)
			}
		})
	}
}

func TestCollectLines_LastQuoteWins(t *testing.T) {
	doc := Document{
		HomeTeam: "NYY",
		AwayTeam: "TOR",
		Bookmakers: []Bookmaker{
			{Key: "a", Markets: []Market{{Key: "batter_rbis", Outcomes: []Outcome{outcome("Over", "Aaron Judge", 0.5, 1.9)}}}},
			{Key: "b", Markets: []Market{{Key: "batter_rbis", Outcomes: []Outcome{outcome("Over", "Aaron Judge", 0.5, 2.1)}}}},
		},
	}

	lines := CollectLines(doc, []string{"batter_rbis"}).Lines("Aaron Judge", "batter_rbis")
	if len(lines) != 1 || lines[0].OverPrice != 2.1 {
		t.Fatalf("expected the later quote to win, got %+v", lines)
	}
}
