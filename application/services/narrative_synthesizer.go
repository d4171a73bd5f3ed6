package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Slime-Stack/Sluggers/application/ports/inbound"
	"github.com/Slime-Stack/Sluggers/application/ports/outbound"
	"github.com/Slime-Stack/Sluggers/domain"
)

const narrativeStage = "narrative"

type narrativeSynthesizer struct {
	logger              outbound.LoggerPort
	storyboardGenerator outbound.StoryboardGeneratorPort
}

func NewNarrativeSynthesizer(logger outbound.LoggerPort,
	storyboardGenerator outbound.StoryboardGeneratorPort) inbound.NarrativeSynthesizerPort {
	return &narrativeSynthesizer{
		logger:              logger,
		storyboardGenerator: storyboardGenerator,
	}
}

func (s *narrativeSynthesizer) Synthesize(ctx context.Context, plays []domain.PlayEvent) (string, error) {
	s.logger.DebugWithFields("Generating narrative from play data", map[string]interface{}{
		"plays": len(plays),
	})

	story, err := s.storyboardGenerator.TellStory(ctx, plays)
	if err != nil {
		s.logger.Error(err, "Failed to generate narrative")
		return "", err
	}

	if strings.TrimSpace(story) == "" {
		err := domain.NewBackendError(domain.BackendErrorEmptyResponse, narrativeStage,
			errors.New("backend returned an empty narrative"))
		s.logger.Error(err, "Narrative generation produced no content")
		return "", err
	}

	return strings.TrimSpace(story), nil
}
