package outbound

import (
	"context"

	"github.com/Slime-Stack/Sluggers/domain"
)

// HighlightStorePort persists assembled highlights. SaveStoryboard is the
// pipeline's single terminal write per gamePk; the read side serves the API.
type HighlightStorePort interface {
	SaveStoryboard(ctx context.Context, highlight domain.Highlight) error
	GetByGamePk(ctx context.Context, gamePk string) (*domain.Highlight, error)
	GetByTeam(ctx context.Context, teamID int) ([]domain.Highlight, error)
}
