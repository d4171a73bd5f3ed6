package mock_generator

import (
	"context"
	"time"

	"github.com/Slime-Stack/Sluggers/application/ports/outbound"
	"github.com/Slime-Stack/Sluggers/domain"
)

const storyboardFixture = "mock/storyboard.json"

// Runner replays a canned storyboard as if the generation pipeline had
// produced it, scene by scene with the fixture's delays. It lets frontend
// work proceed without paying for generation calls.
type Runner struct {
	logger           outbound.LoggerPort
	workerPool       outbound.TaskDispatcher
	storyboardReader StoryboardReader
}

func NewRunner(workerPool outbound.TaskDispatcher, storyboardReader StoryboardReader,
	logger outbound.LoggerPort) *Runner {
	return &Runner{
		logger:           logger,
		workerPool:       workerPool,
		storyboardReader: storyboardReader,
	}
}

func (r *Runner) Replay(ctx context.Context, gamePk string) (*domain.Highlight, error) {
	mock, err := r.storyboardReader.Read(storyboardFixture)
	if err != nil {
		r.logger.Error(err, "failed to read storyboard fixture")
		return nil, err
	}

	sceneCh, err := r.streamScenes(ctx, mock.Scenes)
	if err != nil {
		return nil, err
	}

	storyboard := domain.Storyboard{
		StoryTitle:        mock.StoryTitle,
		TeaserSummary:     mock.TeaserSummary,
		StoryImageURL:     mock.StoryImageUrl,
		StoryImagenPrompt: mock.StoryImagenPrompt,
		Scenes:            make([]domain.Scene, 0, len(mock.Scenes)),
	}
	for scene := range sceneCh {
		storyboard.Scenes = append(storyboard.Scenes, scene)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	now := time.Now().UTC()
	return &domain.Highlight{
		GamePk:     gamePk,
		HomeTeam:   domain.TeamByName("Los Angeles Dodgers"),
		AwayTeam:   domain.TeamByName("New York Yankees"),
		GameDate:   now.Format("2006-01-02"),
		Storyboard: storyboard,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

func (r *Runner) streamScenes(ctx context.Context, scenes []MockScene) (<-chan domain.Scene, error) {
	out := make(chan domain.Scene)

	err := r.workerPool.Submit(func() {
		defer close(out)
		for _, scene := range scenes {
			select {
			case <-ctx.Done():
				return
			default:
				time.Sleep(time.Duration(scene.Delay) * time.Second)
				out <- scene.Scene
			}
		}
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
