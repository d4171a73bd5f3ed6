package mock_generator

import (
	"github.com/gin-gonic/gin"

	"github.com/Slime-Stack/Sluggers/application/ports/outbound"
)

type MockHighlightsController interface {
	GenerateHighlight(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type mockHighlightsController struct {
	logger outbound.LoggerPort
	runner *Runner
}

func NewMockHighlightsController(logger outbound.LoggerPort, runner *Runner) MockHighlightsController {
	return &mockHighlightsController{
		logger: logger,
		runner: runner,
	}
}

func (m *mockHighlightsController) GenerateHighlight(c *gin.Context) {
	gamePk := c.Param("gamePk")

	highlight, err := m.runner.Replay(c.Request.Context(), gamePk)
	if err != nil {
		m.logger.Error(err, "failed to replay storyboard fixture")
		c.AbortWithStatusJSON(500, gin.H{"error": "internal server error"})
		return
	}

	m.logger.InfoWithFields("mock highlight replayed", map[string]interface{}{
		"gamePk": gamePk,
		"scenes": len(highlight.Storyboard.Scenes),
	})

	c.JSON(200, highlight)
}

func (m *mockHighlightsController) RegisterRoutes(g *gin.Engine) {
	g.GET("/highlights/generate/mock/:gamePk", m.GenerateHighlight)
}
