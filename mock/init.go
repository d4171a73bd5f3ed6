package mock_generator

import (
	"github.com/gin-gonic/gin"

	"github.com/Slime-Stack/Sluggers/application/ports/outbound"
)

func Init(g *gin.Engine, workerPool outbound.TaskDispatcher, logger outbound.LoggerPort) {
	storyboardReader := NewFileStoryboardReader(logger)
	runner := NewRunner(workerPool, storyboardReader, logger)
	mockController := NewMockHighlightsController(logger, runner)

	mockController.RegisterRoutes(g)
}
