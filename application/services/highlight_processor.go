package services

import (
	"context"

	"github.com/Slime-Stack/Sluggers/application/ports/inbound"
	"github.com/Slime-Stack/Sluggers/application/ports/outbound"
	"github.com/Slime-Stack/Sluggers/channel_utils"
)

type highlightProcessor struct {
	logger     outbound.LoggerPort
	workerPool outbound.TaskDispatcher
	generator  inbound.HighlightGeneratorPort
}

func NewHighlightProcessor(logger outbound.LoggerPort, workerPool outbound.TaskDispatcher,
	generator inbound.HighlightGeneratorPort) inbound.HighlightProcessorPort {
	return &highlightProcessor{
		logger:     logger,
		workerPool: workerPool,
		generator:  generator,
	}
}

// ProcessGames generates highlights for several games on the worker pool.
// Each game runs independently; one game failing does not stop the others.
func (p *highlightProcessor) ProcessGames(ctx context.Context, gamePks []string) []inbound.ProcessResult {
	channels := make([]<-chan inbound.ProcessResult, 0, len(gamePks))
	for _, gamePk := range gamePks {
		channels = append(channels, p.processOne(ctx, gamePk))
	}

	merged, err := channel_utils.MergeChannels(p.workerPool, channels...)
	if err != nil {
		p.logger.Error(err, "Failed to merge processing channels")
		results := make([]inbound.ProcessResult, 0, len(gamePks))
		for _, gamePk := range gamePks {
			results = append(results, inbound.ProcessResult{GamePk: gamePk, Error: err.Error()})
		}
		return results
	}

	results := make([]inbound.ProcessResult, 0, len(gamePks))
	for result := range merged {
		results = append(results, result)
	}
	return results
}

func (p *highlightProcessor) processOne(ctx context.Context, gamePk string) <-chan inbound.ProcessResult {
	out := make(chan inbound.ProcessResult, 1)

	err := p.workerPool.Submit(func() {
		defer close(out)
		result := inbound.ProcessResult{GamePk: gamePk}
		if _, err := p.generator.GenerateHighlight(ctx, gamePk); err != nil {
			p.logger.ErrorWithFields(err, "Failed to process game", map[string]interface{}{
				"gamePk": gamePk,
			})
			result.Error = err.Error()
		}
		out <- result
	})
	if err != nil {
		out <- inbound.ProcessResult{GamePk: gamePk, Error: err.Error()}
		close(out)
	}

	return out
}
