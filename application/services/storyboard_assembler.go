package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/Slime-Stack/Sluggers/application/ports/inbound"
	"github.com/Slime-Stack/Sluggers/application/ports/outbound"
	"github.com/Slime-Stack/Sluggers/domain"
)

const (
	// DefaultNarrativeCooldown is how long the assembler waits before its
	// single retry of a rate-limited narrative call. Generation quotas are
	// per-minute, so one minute clears the window.
	DefaultNarrativeCooldown = 60 * time.Second

	// DefaultSceneConcurrency bounds the number of in-flight asset
	// generation calls across scenes and languages.
	DefaultSceneConcurrency = 4

	// DefaultAssetInterval paces outbound asset generation calls.
	DefaultAssetInterval = 500 * time.Millisecond

	assetRateBurst = 2
)

type AssemblerOptions struct {
	NarrativeCooldown time.Duration
	SceneConcurrency  int
	AssetInterval     time.Duration
}

func (o AssemblerOptions) withDefaults() AssemblerOptions {
	if o.NarrativeCooldown <= 0 {
		o.NarrativeCooldown = DefaultNarrativeCooldown
	}
	if o.SceneConcurrency <= 0 {
		o.SceneConcurrency = DefaultSceneConcurrency
	}
	if o.AssetInterval <= 0 {
		o.AssetInterval = DefaultAssetInterval
	}
	return o
}

type storyboardAssembler struct {
	logger               outbound.LoggerPort
	narrativeSynthesizer inbound.NarrativeSynthesizerPort
	promptSynthesizer    inbound.VisualPromptSynthesizerPort
	imageGenerator       outbound.ImageGeneratorPort
	speechGenerator      outbound.SpeechGeneratorPort
	opts                 AssemblerOptions
}

func NewStoryboardAssembler(logger outbound.LoggerPort,
	narrativeSynthesizer inbound.NarrativeSynthesizerPort,
	promptSynthesizer inbound.VisualPromptSynthesizerPort,
	imageGenerator outbound.ImageGeneratorPort,
	speechGenerator outbound.SpeechGeneratorPort,
	opts AssemblerOptions) inbound.StoryboardAssemblerPort {
	return &storyboardAssembler{
		logger:               logger,
		narrativeSynthesizer: narrativeSynthesizer,
		promptSynthesizer:    promptSynthesizer,
		imageGenerator:       imageGenerator,
		speechGenerator:      speechGenerator,
		opts:                 opts.withDefaults(),
	}
}

func (s *storyboardAssembler) Assemble(ctx context.Context, params inbound.AssembleParams) (*domain.Storyboard, error) {
	narrative, err := s.synthesizeNarrative(ctx, params.Plays)
	if err != nil {
		return nil, fmt.Errorf("assemble storyboard for game %s: %w", params.GamePk, err)
	}

	storyboard, err := s.promptSynthesizer.Synthesize(ctx, narrative, params.Overview)
	if err != nil {
		return nil, fmt.Errorf("assemble storyboard for game %s: %w", params.GamePk, err)
	}

	if err := storyboard.Validate(); err != nil {
		schemaErr := domain.NewBackendError(domain.BackendErrorSchemaViolation, "storyboard", err)
		s.logger.Error(schemaErr, "Generated storyboard failed validation")
		return nil, fmt.Errorf("assemble storyboard for game %s: %w", params.GamePk, schemaErr)
	}

	s.assignStoryImage(ctx, params.GamePk, &storyboard)

	if err := s.generateSceneAssets(ctx, params.GamePk, &storyboard); err != nil {
		return nil, fmt.Errorf("assemble storyboard for game %s: %w", params.GamePk, err)
	}

	s.logger.InfoWithFields("Storyboard assembled", map[string]interface{}{
		"gamePk": params.GamePk,
		"scenes": len(storyboard.Scenes),
	})

	return &storyboard, nil
}

// synthesizeNarrative runs the narrative stage with the pipeline's only
// built-in retry: one further attempt after a fixed cooldown when the
// backend signals rate limiting. Anything else fails immediately.
func (s *storyboardAssembler) synthesizeNarrative(ctx context.Context, plays []domain.PlayEvent) (string, error) {
	var narrative string

	operation := func() error {
		out, err := s.narrativeSynthesizer.Synthesize(ctx, plays)
		if err != nil {
			if domain.IsRateLimited(err) {
				s.logger.WarnWithFields("Narrative generation rate limited, cooling down", map[string]interface{}{
					"cooldown": s.opts.NarrativeCooldown.String(),
				})
				return err
			}
			return backoff.Permanent(err)
		}
		narrative = out
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(s.opts.NarrativeCooldown), 1), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return "", err
	}

	return narrative, nil
}

// assignStoryImage generates the wide cover image. The prompt stage fills
// storyImagenPrompt; when a backend leaves it blank the opening scene's
// prompt stands in, since the cover reuses the narrative's opening visual.
func (s *storyboardAssembler) assignStoryImage(ctx context.Context, gamePk string, storyboard *domain.Storyboard) {
	prompt := storyboard.StoryImagenPrompt
	if prompt == "" && len(storyboard.Scenes) > 0 {
		prompt = storyboard.Scenes[0].ImagenPrompt
	}

	url, err := s.imageGenerator.Generate(ctx, outbound.GenerateImageRequest{
		Prompt:     prompt,
		Aspect:     domain.AspectStory,
		ObjectName: fmt.Sprintf("%s_story.png", gamePk),
	})
	if err != nil {
		// The image adapter substitutes a placeholder for anything
		// recoverable, so this only trips on cancellation; the scene
		// fan-out will surface that.
		s.logger.Error(err, "Failed to generate story image")
		return
	}
	storyboard.StoryImageURL = url
}

// generateSceneAssets fans out per-scene image and per-language speech
// generation under a concurrency bound and a shared rate limiter. Results
// land in the pre-sized scene slice by index, so final ordering follows
// sceneNumber no matter which calls finish first. Speech failures abort the
// whole group; image failures were already absorbed by the adapter.
func (s *storyboardAssembler) generateSceneAssets(ctx context.Context, gamePk string, storyboard *domain.Storyboard) error {
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.opts.SceneConcurrency)
	limiter := rate.NewLimiter(rate.Every(s.opts.AssetInterval), assetRateBurst)

	for i := range storyboard.Scenes {
		scene := &storyboard.Scenes[i]

		eg.Go(func() error {
			if err := limiter.Wait(egCtx); err != nil {
				return err
			}
			url, err := s.imageGenerator.Generate(egCtx, outbound.GenerateImageRequest{
				Prompt:     scene.ImagenPrompt,
				Aspect:     domain.AspectScene,
				ObjectName: fmt.Sprintf("%s_scene_%d.png", gamePk, scene.SceneNumber),
			})
			if err != nil {
				return fmt.Errorf("scene %d image: %w", scene.SceneNumber, err)
			}
			scene.ImageURL = url
			return nil
		})

		for _, lang := range domain.Languages {
			eg.Go(func() error {
				caption := scene.Caption(lang)
				if caption == "" {
					return nil
				}
				if err := limiter.Wait(egCtx); err != nil {
					return err
				}
				url, err := s.speechGenerator.Generate(egCtx, outbound.GenerateSpeechRequest{
					Caption:     caption,
					Language:    lang,
					GamePk:      gamePk,
					ActNumber:   scene.ActNumber,
					SceneNumber: scene.SceneNumber,
				})
				if err != nil {
					return fmt.Errorf("scene %d audio (%s): %w", scene.SceneNumber, lang, err)
				}
				scene.SetAudioURL(lang, url)
				return nil
			})
		}
	}

	return eg.Wait()
}
