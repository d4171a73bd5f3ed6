package domain

import "time"

type Team struct {
	TeamID    int    `json:"teamId"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	LogoURL   string `json:"logoUrl"`
}

// Highlight is the persisted record for one finalized game. Home and away
// teams are stored as nested objects and the storyboard as a single object,
// keyed by gamePk.
type Highlight struct {
	GamePk       string       `json:"gamePk"`
	HomeTeam     Team         `json:"homeTeam"`
	AwayTeam     Team         `json:"awayTeam"`
	GameDate     string       `json:"gameDate"`
	GameOverview GameOverview `json:"gameOverview"`
	Storyboard   Storyboard   `json:"storyboard"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}
