package outbound

import (
	"context"

	"github.com/Slime-Stack/Sluggers/domain"
)

// StoryboardGeneratorPort is the text-generation backend behind the
// narrative and visual prompt stages. Both methods return the backend's raw
// JSON payload; parsing and validation happen in the services that call
// them. Failures carry a domain.BackendError classification.
type StoryboardGeneratorPort interface {
	// TellStory turns the play-by-play record into the three-act,
	// multi-language narrative JSON.
	TellStory(ctx context.Context, plays []domain.PlayEvent) (string, error)

	// GeneratePrompts rewrites the narrative JSON with imagenPrompt and
	// storyImagenPrompt populated, leaving every other field untouched.
	GeneratePrompts(ctx context.Context, story string, overview domain.GameOverview) (string, error)
}
