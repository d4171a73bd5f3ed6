package inbound

import (
	"context"

	"github.com/Slime-Stack/Sluggers/domain"
)

// NarrativeSynthesizerPort produces the raw three-act narrative JSON for a
// game's play-by-play record. The payload is not validated at this stage.
type NarrativeSynthesizerPort interface {
	Synthesize(ctx context.Context, plays []domain.PlayEvent) (string, error)
}
