package adapters

import (
	"context"
	"net/http"
	"testing"

	"github.com/Slime-Stack/Sluggers/config"
)

const gumboFixture = `{
  "gameData": {
    "teams": {
      "away": {"name": "New York Yankees"},
      "home": {"name": "Los Angeles Dodgers"}
    },
    "venue": {"name": "Dodger Stadium"},
    "datetime": {"officialDate": "2024-10-25"},
    "gameInfo": {"attendance": 52394, "gameDurationMinutes": 211},
    "weather": {"condition": "Clear", "temp": "71", "wind": "5 mph, Out To CF"}
  },
  "liveData": {
    "plays": {
      "allPlays": [
        {
          "result": {"description": "Aaron Judge strikes out swinging.", "event": "Strikeout", "awayScore": 0, "homeScore": 0},
          "about": {"inning": 1, "isTopInning": true, "captivatingIndex": 33},
          "matchup": {"batter": {"fullName": "Aaron Judge"}, "pitcher": {"fullName": "Jack Flaherty"}}
        },
        {
          "result": {"description": "Freddie Freeman homers (1) on a fly ball to right field.", "event": "Home Run", "awayScore": 0, "homeScore": 1},
          "about": {"inning": 1, "isTopInning": false, "captivatingIndex": 88},
          "matchup": {"batter": {"fullName": "Freddie Freeman"}, "pitcher": {"fullName": "Gerrit Cole"}}
        }
      ]
    }
  }
}`

type stubContentFetcher struct {
	payload    []byte
	err        error
	requestURL string
}

func (s *stubContentFetcher) FetchContent(req *http.Request) ([]byte, error) {
	s.requestURL = req.URL.String()
	return s.payload, s.err
}

func TestFetchGameExtractsPlaysAndOverview(t *testing.T) {
	fetcher := &stubContentFetcher{payload: []byte(gumboFixture)}
	mlbConfig := &config.MLBConfig{StatsApiUrl: "https://statsapi.mlb.com/api/v1.1"}

	gameFeed := NewGumboGameFeed(fetcher, mlbConfig, NewZerologWrapper())

	feed, err := gameFeed.FetchGame(context.Background(), "775296")
	if err != nil {
		t.Fatal("fetch failed:", err)
	}

	wantURL := "https://statsapi.mlb.com/api/v1.1/game/775296/feed/live"
	if fetcher.requestURL != wantURL {
		t.Errorf("request URL = %q, want %q", fetcher.requestURL, wantURL)
	}

	if len(feed.Plays) != 2 {
		t.Fatal("expected 2 plays, got", len(feed.Plays))
	}

	first := feed.Plays[0]
	if first.Half != "Top" || first.Inning != 1 || first.Event != "Strikeout" {
		t.Errorf("unexpected first play: %+v", first)
	}
	if first.Batter != "Aaron Judge" || first.Pitcher != "Jack Flaherty" {
		t.Errorf("matchup not extracted: %+v", first)
	}

	second := feed.Plays[1]
	if second.Half != "Bottom" || second.HomeScore != 1 {
		t.Errorf("unexpected second play: %+v", second)
	}
	if second.CaptivatingIndex != 88 {
		t.Error("captivating index not extracted:", second.CaptivatingIndex)
	}

	overview := feed.Overview
	if overview.HomeTeam != "Los Angeles Dodgers" || overview.AwayTeam != "New York Yankees" {
		t.Errorf("teams not extracted: %+v", overview)
	}
	if overview.Venue != "Dodger Stadium" {
		t.Error("venue not extracted:", overview.Venue)
	}
	if overview.Attendance != "52394" || overview.DurationMinutes != "211" {
		t.Errorf("game info not extracted: %+v", overview)
	}
	if overview.Weather.Condition != "Clear" {
		t.Error("weather not extracted:", overview.Weather)
	}

	if feed.GameDate != "2024-10-25" {
		t.Error("game date not extracted:", feed.GameDate)
	}
}

func TestFetchGameMissingGameInfo(t *testing.T) {
	fetcher := &stubContentFetcher{payload: []byte(`{"gameData": {}, "liveData": {"plays": {"allPlays": []}}}`)}
	gameFeed := NewGumboGameFeed(fetcher, &config.MLBConfig{StatsApiUrl: "https://statsapi.mlb.com/api/v1.1"}, NewZerologWrapper())

	feed, err := gameFeed.FetchGame(context.Background(), "1")
	if err != nil {
		t.Fatal("fetch failed:", err)
	}

	if feed.Overview.Attendance != "Unknown" || feed.Overview.DurationMinutes != "Unknown" {
		t.Errorf("missing game info should read Unknown: %+v", feed.Overview)
	}
	if len(feed.Plays) != 0 {
		t.Error("expected no plays")
	}
}

func TestFetchGameMalformedPayload(t *testing.T) {
	fetcher := &stubContentFetcher{payload: []byte("<html>gateway timeout</html>")}
	gameFeed := NewGumboGameFeed(fetcher, &config.MLBConfig{StatsApiUrl: "https://statsapi.mlb.com/api/v1.1"}, NewZerologWrapper())

	if _, err := gameFeed.FetchGame(context.Background(), "1"); err == nil {
		t.Fatal("expected malformed payload to fail")
	}
}
