package outbound

import (
	"context"

	"github.com/Slime-Stack/Sluggers/domain"
)

type GameFeed struct {
	Plays    []domain.PlayEvent
	Overview domain.GameOverview
	GameDate string
}

// GameFeedPort fetches one game's live feed and extracts the play-by-play
// record and overview the pipeline consumes.
type GameFeedPort interface {
	FetchGame(ctx context.Context, gamePk string) (*GameFeed, error)
}
