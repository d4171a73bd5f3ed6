package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/Slime-Stack/Sluggers/application/ports/inbound"
	"github.com/Slime-Stack/Sluggers/application/ports/outbound"
	"github.com/Slime-Stack/Sluggers/domain"
)

const visualPromptStage = "visual_prompt"

// fragmentLimit caps how much of an undecodable payload is carried on a
// schema-violation error for diagnosis.
const fragmentLimit = 240

type visualPromptSynthesizer struct {
	logger              outbound.LoggerPort
	storyboardGenerator outbound.StoryboardGeneratorPort
}

func NewVisualPromptSynthesizer(logger outbound.LoggerPort,
	storyboardGenerator outbound.StoryboardGeneratorPort) inbound.VisualPromptSynthesizerPort {
	return &visualPromptSynthesizer{
		logger:              logger,
		storyboardGenerator: storyboardGenerator,
	}
}

func (s *visualPromptSynthesizer) Synthesize(ctx context.Context, narrative string, overview domain.GameOverview) (domain.Storyboard, error) {
	payload, err := s.storyboardGenerator.GeneratePrompts(ctx, narrative, overview)
	if err != nil {
		s.logger.Error(err, "Failed to generate visual prompts")
		return domain.Storyboard{}, err
	}

	payload = trimJSONFences(payload)
	if payload == "" {
		err := domain.NewBackendError(domain.BackendErrorEmptyResponse, visualPromptStage,
			errors.New("backend returned an empty prompt payload"))
		s.logger.Error(err, "Visual prompt generation produced no content")
		return domain.Storyboard{}, err
	}

	var storyboard domain.Storyboard
	if err := json.Unmarshal([]byte(payload), &storyboard); err != nil {
		schemaErr := domain.NewSchemaViolation(visualPromptStage, truncateFragment(payload), err)
		s.logger.Error(schemaErr, "Failed to decode storyboard payload")
		return domain.Storyboard{}, schemaErr
	}

	return storyboard, nil
}

// trimJSONFences strips the markdown code fences generation backends wrap
// around JSON payloads even when a JSON response type was requested.
func trimJSONFences(payload string) string {
	payload = strings.TrimSpace(payload)
	payload = strings.TrimPrefix(payload, "```json")
	payload = strings.TrimPrefix(payload, "```")
	payload = strings.TrimSuffix(payload, "```")
	return strings.TrimSpace(payload)
}

func truncateFragment(payload string) string {
	if len(payload) <= fragmentLimit {
		return payload
	}
	return payload[:fragmentLimit]
}
