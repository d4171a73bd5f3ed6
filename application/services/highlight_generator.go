package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Slime-Stack/Sluggers/application/ports/inbound"
	"github.com/Slime-Stack/Sluggers/application/ports/outbound"
	"github.com/Slime-Stack/Sluggers/domain"
)

type highlightGenerator struct {
	logger         outbound.LoggerPort
	gameFeed       outbound.GameFeedPort
	assembler      inbound.StoryboardAssemblerPort
	highlightStore outbound.HighlightStorePort
}

func NewHighlightGenerator(logger outbound.LoggerPort, gameFeed outbound.GameFeedPort,
	assembler inbound.StoryboardAssemblerPort,
	highlightStore outbound.HighlightStorePort) inbound.HighlightGeneratorPort {
	return &highlightGenerator{
		logger:         logger,
		gameFeed:       gameFeed,
		assembler:      assembler,
		highlightStore: highlightStore,
	}
}

func (g *highlightGenerator) GenerateHighlight(ctx context.Context, gamePk string) (*domain.Highlight, error) {
	feed, err := g.gameFeed.FetchGame(ctx, gamePk)
	if err != nil {
		g.logger.Error(err, "Failed to fetch game feed")
		return nil, fmt.Errorf("generate highlight for game %s: %w", gamePk, err)
	}

	storyboard, err := g.assembler.Assemble(ctx, inbound.AssembleParams{
		GamePk:   gamePk,
		Plays:    feed.Plays,
		Overview: feed.Overview,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	highlight := domain.Highlight{
		GamePk:       gamePk,
		HomeTeam:     domain.TeamByName(feed.Overview.HomeTeam),
		AwayTeam:     domain.TeamByName(feed.Overview.AwayTeam),
		GameDate:     feed.GameDate,
		GameOverview: feed.Overview,
		Storyboard:   *storyboard,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := g.highlightStore.SaveStoryboard(ctx, highlight); err != nil {
		g.logger.Error(err, "Failed to persist highlight")
		return nil, fmt.Errorf("persist highlight for game %s: %w", gamePk, err)
	}

	g.logger.InfoWithFields("Highlight generated", map[string]interface{}{
		"gamePk": gamePk,
		"scenes": len(storyboard.Scenes),
	})

	return &highlight, nil
}
