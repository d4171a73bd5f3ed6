package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Slime-Stack/Sluggers/application/ports/outbound"
	"github.com/Slime-Stack/Sluggers/config"
	"github.com/Slime-Stack/Sluggers/domain"
)

// gumboFeed mirrors the slice of the GUMBO live feed document the pipeline
// reads. Everything else in the (very large) feed is ignored.
type gumboFeed struct {
	GameData struct {
		Teams struct {
			Away struct {
				Name string `json:"name"`
			} `json:"away"`
			Home struct {
				Name string `json:"name"`
			} `json:"home"`
		} `json:"teams"`
		Venue struct {
			Name string `json:"name"`
		} `json:"venue"`
		Datetime struct {
			OfficialDate string `json:"officialDate"`
		} `json:"datetime"`
		GameInfo struct {
			Attendance          int `json:"attendance"`
			GameDurationMinutes int `json:"gameDurationMinutes"`
		} `json:"gameInfo"`
		Weather domain.Weather `json:"weather"`
	} `json:"gameData"`
	LiveData struct {
		Plays struct {
			AllPlays []gumboPlay `json:"allPlays"`
		} `json:"plays"`
	} `json:"liveData"`
}

type gumboPlay struct {
	Result struct {
		Description string `json:"description"`
		Event       string `json:"event"`
		AwayScore   int    `json:"awayScore"`
		HomeScore   int    `json:"homeScore"`
	} `json:"result"`
	About struct {
		Inning           int     `json:"inning"`
		IsTopInning      bool    `json:"isTopInning"`
		CaptivatingIndex float64 `json:"captivatingIndex"`
	} `json:"about"`
	Matchup struct {
		Batter struct {
			FullName string `json:"fullName"`
		} `json:"batter"`
		Pitcher struct {
			FullName string `json:"fullName"`
		} `json:"pitcher"`
	} `json:"matchup"`
}

type gumboGameFeed struct {
	ContentFetcher
	logger    outbound.LoggerPort
	mlbConfig *config.MLBConfig
}

func NewGumboGameFeed(contentFetcher ContentFetcher, mlbConfig *config.MLBConfig,
	logger outbound.LoggerPort) outbound.GameFeedPort {
	return &gumboGameFeed{
		ContentFetcher: contentFetcher,
		logger:         logger,
		mlbConfig:      mlbConfig,
	}
}

func (g *gumboGameFeed) FetchGame(ctx context.Context, gamePk string) (*outbound.GameFeed, error) {
	url := fmt.Sprintf("%s/game/%s/feed/live", g.mlbConfig.StatsApiUrl, gamePk)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		g.logger.Error(err, "Failed to create the game feed request")
		return nil, err
	}

	payload, err := g.FetchContent(req)
	if err != nil {
		return nil, fmt.Errorf("fetch game feed for %s: %w", gamePk, err)
	}

	var feed gumboFeed
	if err := json.Unmarshal(payload, &feed); err != nil {
		g.logger.ErrorWithFields(err, "Failed to decode the game feed", map[string]interface{}{
			"gamePk": gamePk,
		})
		return nil, fmt.Errorf("decode game feed for %s: %w", gamePk, err)
	}

	return &outbound.GameFeed{
		Plays:    extractPlays(feed),
		Overview: extractOverview(feed),
		GameDate: feed.GameData.Datetime.OfficialDate,
	}, nil
}

func extractPlays(feed gumboFeed) []domain.PlayEvent {
	plays := make([]domain.PlayEvent, 0, len(feed.LiveData.Plays.AllPlays))
	for _, play := range feed.LiveData.Plays.AllPlays {
		half := "Bottom"
		if play.About.IsTopInning {
			half = "Top"
		}
		plays = append(plays, domain.PlayEvent{
			Description:      play.Result.Description,
			Inning:           play.About.Inning,
			Half:             half,
			Event:            play.Result.Event,
			AwayScore:        play.Result.AwayScore,
			HomeScore:        play.Result.HomeScore,
			Batter:           play.Matchup.Batter.FullName,
			Pitcher:          play.Matchup.Pitcher.FullName,
			CaptivatingIndex: play.About.CaptivatingIndex,
		})
	}
	return plays
}

func extractOverview(feed gumboFeed) domain.GameOverview {
	attendance := "Unknown"
	if feed.GameData.GameInfo.Attendance > 0 {
		attendance = strconv.Itoa(feed.GameData.GameInfo.Attendance)
	}
	duration := "Unknown"
	if feed.GameData.GameInfo.GameDurationMinutes > 0 {
		duration = strconv.Itoa(feed.GameData.GameInfo.GameDurationMinutes)
	}

	return domain.GameOverview{
		AwayTeam:        feed.GameData.Teams.Away.Name,
		HomeTeam:        feed.GameData.Teams.Home.Name,
		Venue:           feed.GameData.Venue.Name,
		Date:            feed.GameData.Datetime.OfficialDate,
		Attendance:      attendance,
		DurationMinutes: duration,
		Weather:         feed.GameData.Weather,
	}
}
