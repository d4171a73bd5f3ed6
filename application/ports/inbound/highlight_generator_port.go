package inbound

import (
	"context"

	"github.com/Slime-Stack/Sluggers/domain"
)

// HighlightGeneratorPort runs the end-to-end unit the serving layer
// triggers: fetch the game feed, assemble the storyboard, persist the
// highlight.
type HighlightGeneratorPort interface {
	GenerateHighlight(ctx context.Context, gamePk string) (*domain.Highlight, error)
}

type ProcessResult struct {
	GamePk string `json:"gamePk"`
	Error  string `json:"error,omitempty"`
}

// HighlightProcessorPort fans the generator out over several games.
type HighlightProcessorPort interface {
	ProcessGames(ctx context.Context, gamePks []string) []ProcessResult
}
