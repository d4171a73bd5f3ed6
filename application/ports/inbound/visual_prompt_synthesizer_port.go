package inbound

import (
	"context"

	"github.com/Slime-Stack/Sluggers/domain"
)

// VisualPromptSynthesizerPort adds image-generation prompts to an existing
// narrative and returns the parsed, schema-bound storyboard.
type VisualPromptSynthesizerPort interface {
	Synthesize(ctx context.Context, narrative string, overview domain.GameOverview) (domain.Storyboard, error)
}
