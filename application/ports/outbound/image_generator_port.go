package outbound

import (
	"context"

	"github.com/Slime-Stack/Sluggers/domain"
)

type GenerateImageRequest struct {
	Prompt     string
	Aspect     domain.AspectMode
	ObjectName string
}

// ImageGeneratorPort produces one still image for a prompt and returns a
// public reference to it. A backend that produces no image is not an error:
// implementations substitute a deterministic placeholder reference instead.
type ImageGeneratorPort interface {
	Generate(ctx context.Context, req GenerateImageRequest) (string, error)
}
