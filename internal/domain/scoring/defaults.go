package scoring

// ESPN NFL scoring for the offensive props quoted by the odds provider.
var (
	ESPNPPR = MustProfile("espn_ppr", map[string]float64{
		"player_pass_yds":      0.04,
		"player_pass_tds":      4,
		"player_rush_yds":      0.1,
		"player_rush_tds":      6,
		"player_receptions":    1,
		"player_reception_yds": 0.1,
		"player_reception_tds": 6,
	})
	ESPNHalfPPR = MustProfile("espn_half", map[string]float64{
		"player_pass_yds":      0.04,
		"player_pass_tds":      4,
		"player_rush_yds":      0.1,
		"player_rush_tds":      6,
		"player_receptions":    0.5,
		"player_reception_yds": 0.1,
		"player_reception_tds": 6,
	})
	ESPNStandard = MustProfile("espn_std", map[string]float64{
		"player_pass_yds":      0.04,
		"player_pass_tds":      4,
		"player_rush_yds":      0.1,
		"player_rush_tds":      6,
		"player_receptions":    0,
		"player_reception_yds": 0.1,
		"player_reception_tds": 6,
	})
)

// ESPN MLB points for the batter and pitcher props. Innings and wins are not
// quoted as props and are left out.
var (
	ESPNBatters = MustProfile("espn", map[string]float64{
		"batter_runs_scored":  1,
		"batter_total_bases":  1,
		"batter_rbis":         1,
		"batter_walks":        1,
		"batter_stolen_bases": 1,
		"batter_strikeouts":   -1,
	})
	ESPNPitchers = MustProfile("espn", map[string]float64{
		"pitcher_strikeouts":   1,
		"pitcher_hits_allowed": -1,
		"pitcher_walks":        -1,
		"pitcher_earned_runs":  -2,
	})
)

// NFLProfiles returns the three ESPN NFL profiles in PPR, half, standard order.
func NFLProfiles() ProfileSet {
	return MustProfileSet(ESPNPPR, ESPNHalfPPR, ESPNStandard)
}
