package controllers

import (
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Slime-Stack/Sluggers/application/ports/inbound"
	"github.com/Slime-Stack/Sluggers/application/ports/outbound"
	"github.com/Slime-Stack/Sluggers/domain"
	"github.com/Slime-Stack/Sluggers/infrastructure/gin_interface/dto"
)

type HighlightsController interface {
	GetTeams(c *gin.Context)
	GetHighlightsByTeam(c *gin.Context)
	GetHighlightByGame(c *gin.Context)
	GenerateHighlight(c *gin.Context)
	ProcessHighlights(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type highlightsController struct {
	logger    outbound.LoggerPort
	generator inbound.HighlightGeneratorPort
	processor inbound.HighlightProcessorPort
	store     outbound.HighlightStorePort
}

func NewHighlightsController(logger outbound.LoggerPort, generator inbound.HighlightGeneratorPort,
	processor inbound.HighlightProcessorPort, store outbound.HighlightStorePort) HighlightsController {
	return &highlightsController{
		logger:    logger,
		generator: generator,
		processor: processor,
		store:     store,
	}
}

func (h *highlightsController) GetTeams(c *gin.Context) {
	c.JSON(200, domain.Teams)
}

// GetHighlightsByTeam returns the team's highlights newest first. Records
// whose storyboard never finished (no scenes) are filtered out so clients
// only ever see complete stories.
func (h *highlightsController) GetHighlightsByTeam(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("teamId"))
	if err != nil {
		c.AbortWithStatusJSON(400, gin.H{"error": "teamId must be an integer"})
		return
	}

	highlights, err := h.store.GetByTeam(c.Request.Context(), teamID)
	if err != nil {
		h.logger.ErrorWithFields(err, "Failed to fetch highlights for team", map[string]interface{}{
			"teamId": teamID,
		})
		c.AbortWithStatusJSON(500, gin.H{"error": "failed to fetch highlights"})
		return
	}

	complete := make([]domain.Highlight, 0, len(highlights))
	for _, highlight := range highlights {
		if len(highlight.Storyboard.Scenes) > 0 {
			complete = append(complete, highlight)
		}
	}

	if len(complete) == 0 {
		c.AbortWithStatusJSON(404, gin.H{"error": "No highlights found for the specified team"})
		return
	}

	sort.Slice(complete, func(i, j int) bool {
		return complete[i].GameDate > complete[j].GameDate
	})

	c.JSON(200, complete)
}

func (h *highlightsController) GetHighlightByGame(c *gin.Context) {
	gamePk := c.Param("gamePk")

	highlight, err := h.store.GetByGamePk(c.Request.Context(), gamePk)
	if err != nil {
		h.logger.ErrorWithFields(err, "Failed to fetch highlight", map[string]interface{}{
			"gamePk": gamePk,
		})
		c.AbortWithStatusJSON(500, gin.H{"error": "failed to fetch highlight"})
		return
	}
	if highlight == nil {
		c.AbortWithStatusJSON(404, gin.H{"error": "No highlight found for the specified game"})
		return
	}

	c.JSON(200, highlight)
}

func (h *highlightsController) GenerateHighlight(c *gin.Context) {
	gamePk := c.Param("gamePk")

	highlight, err := h.generator.GenerateHighlight(c.Request.Context(), gamePk)
	if err != nil {
		h.logger.ErrorWithFields(err, "Failed to generate highlight", map[string]interface{}{
			"gamePk": gamePk,
		})
		c.AbortWithStatusJSON(500, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, highlight)
}

func (h *highlightsController) ProcessHighlights(c *gin.Context) {
	var req dto.ProcessHighlightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(400, gin.H{"error": err.Error()})
		return
	}

	batchID := uuid.NewString()
	h.logger.InfoWithFields("Processing highlight batch", map[string]interface{}{
		"batchId": batchID,
		"games":   len(req.GamePks),
	})

	results := h.processor.ProcessGames(c.Request.Context(), req.GamePks)

	c.JSON(200, gin.H{
		"batchId": batchID,
		"results": results,
	})
}

func (h *highlightsController) RegisterRoutes(g *gin.Engine) {
	g.GET("/teams", h.GetTeams)
	g.GET("/highlights/:teamId", h.GetHighlightsByTeam)
	g.GET("/highlights/game/:gamePk", h.GetHighlightByGame)
	g.GET("/highlights/generate/:gamePk", h.GenerateHighlight)
	g.POST("/highlights/process", h.ProcessHighlights)
}
