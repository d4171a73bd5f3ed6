package domain

// PlayEvent is one play-by-play entry extracted from the GUMBO live feed.
// The narrative stage only retells what these records contain.
type PlayEvent struct {
	Description      string  `json:"description"`
	Inning           int     `json:"inning"`
	Half             string  `json:"half"`
	Event            string  `json:"event"`
	AwayScore        int     `json:"away_score"`
	HomeScore        int     `json:"home_score"`
	Batter           string  `json:"batter"`
	Pitcher          string  `json:"pitcher"`
	CaptivatingIndex float64 `json:"captivating_index"`
}

type Weather struct {
	Condition string `json:"condition"`
	Temp      string `json:"temp"`
	Wind      string `json:"wind"`
}

// GameOverview holds the matchup-level facts fed to the visual prompt stage
// as secondary context.
type GameOverview struct {
	AwayTeam        string  `json:"away_team"`
	HomeTeam        string  `json:"home_team"`
	Venue           string  `json:"venue"`
	Date            string  `json:"date"`
	Attendance      string  `json:"attendance"`
	DurationMinutes string  `json:"duration_minutes"`
	Weather         Weather `json:"weather"`
}
