package inbound

import (
	"context"

	"github.com/Slime-Stack/Sluggers/domain"
)

type AssembleParams struct {
	GamePk   string
	Plays    []domain.PlayEvent
	Overview domain.GameOverview
}

// StoryboardAssemblerPort orchestrates the full generation pipeline for one
// game and returns the fully populated storyboard, or an error; it never
// returns a partially illustrated storyboard.
type StoryboardAssemblerPort interface {
	Assemble(ctx context.Context, params AssembleParams) (*domain.Storyboard, error)
}
