package outbound

import (
	"context"

	"github.com/Slime-Stack/Sluggers/domain"
)

type GenerateSpeechRequest struct {
	Caption     string
	Language    domain.Language
	GamePk      string
	ActNumber   int
	SceneNumber int
}

// SpeechGeneratorPort renders one scene caption as audio in the given
// language and returns the public reference of the uploaded render. Output
// naming is deterministic per (gamePk, act, scene, language).
type SpeechGeneratorPort interface {
	Generate(ctx context.Context, req GenerateSpeechRequest) (string, error)
}
