package scoring

import (
	"testing"

	crerr "github.com/cockroachdb/errors"
)

func TestCompose(t *testing.T) {
	profile := MustProfile("test", map[string]float64{"a": 0.04, "b": 1, "c": 6})

	got := Compose([]string{"a", "b", "c"}, []float64{10, 2, 1}, profile)
	if got != 8.4 {
		t.Fatalf("expected 8.4, got %v", got)
	}
}

func TestCompose_MissingWeightCountsAsZero(t *testing.T) {
	profile := MustProfile("test", map[string]float64{"a": 2})

	got := Compose([]string{"a", "unknown"}, []float64{1.5, 100}, profile)
	if got != 3 {
		t.Fatalf("expected 3, got %v", got)
	}
}

func TestCompose_RoundsToTwoPlaces(t *testing.T) {
	profile := MustProfile("test", map[string]float64{"yds": 0.04})

	got := Compose([]string{"yds"}, []float64{251.234}, profile)
	if got != 10.05 {
		t.Fatalf("expected 10.05, got %v", got)
	}
}

func TestComposeAll_NFL(t *testing.T) {
	props := []string{"player_receptions", "player_reception_yds", "player_reception_tds"}
	stats := []float64{5, 60, 0.5}

	got := ComposeAll(props, stats, NFLProfiles())
	want := []Score{
		{Profile: "espn_ppr", Points: 14},
		{Profile: "espn_half", Points: 11.5},
		{Profile: "espn_std", Points: 9},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d scores, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("score %d: got %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestComposeMap(t *testing.T) {
	got := ComposeMap(map[string]float64{
		"player_pass_yds": 250.5,
		"player_pass_tds": 1.75,
		"unrelated":       99,
	}, ESPNStandard)
	if got != 17.02 {
		t.Fatalf("expected 17.02, got %v", got)
	}
}

func TestProfileIsImmutable(t *testing.T) {
	weights := map[string]float64{"a": 1}
	profile := MustProfile("p", weights)
	weights["a"] = 100

	if profile.Weight("a") != 1 {
		t.Fatalf("profile must not share the caller's map")
	}
}

func TestNewProfileSet(t *testing.T) {
	tests := []struct {
		name     string
		profiles []Profile
	}{
		{name: "empty", profiles: nil},
		{name: "duplicate", profiles: []Profile{ESPNPPR, ESPNPPR}},
		{name: "zero value", profiles: []Profile{{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewProfileSet(tt.profiles...); !crerr.Is(err, ErrInvalidProfile) {
				t.Fatalf("expected ErrInvalidProfile, got %v", err)
			}
		})
	}

	set := NFLProfiles()
	if names := set.Names(); len(names) != 3 || names[0] != "espn_ppr" || names[2] != "espn_std" {
		t.Fatalf("unexpected names: %v", names)
	}
	if _, ok := set.Lookup("espn_half"); !ok {
		t.Fatalf("expected espn_half in set")
	}
}

func TestNewProfile_Invalid(t *testing.T) {
	if _, err := NewProfile(" ", map[string]float64{"a": 1}); !crerr.Is(err, ErrInvalidProfile) {
		t.Fatalf("expected ErrInvalidProfile for empty name, got %v", err)
	}
	if _, err := NewProfile("p", nil); !crerr.Is(err, ErrInvalidProfile) {
		t.Fatalf("expected ErrInvalidProfile for empty weights, got %v", err)
	}
}
