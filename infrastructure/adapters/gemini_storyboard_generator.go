package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/Slime-Stack/Sluggers/application/ports/outbound"
	"github.com/Slime-Stack/Sluggers/config"
	"github.com/Slime-Stack/Sluggers/domain"
)

const (
	narrativeStage    = "narrative"
	visualPromptStage = "visual_prompt"
)

const storyPromptTemplate = `Given this JSON of a completed baseball game %s, tell the story of the game in a structured three-act format that is captivating for children. Focus only on information directly relevant to the plays described, without inventing or inferring events not explicitly represented in the data. Assume the reader has a basic knowledge of the game and its rules.
Three-Act Structure:
Opening Shot (Act 1, Scene 0): establish the story being told.
Act 1 (Setup): Introduce the teams, key players, and the opening moments of the game. Build anticipation for the action to come.
Act 2 (Conflict): Highlight the tension and turning points in the game, focusing on suspenseful and strategic plays. Show the rise and fall of momentum between the teams.
Act 3 (Resolution): Conclude with the final dramatic moments of the game, including any climactic plays and the outcome. End with a sense of closure or excitement about the game's conclusion.
Closing Shot (Act 3 final scene): wrap up the story for the viewer.
Each act should consist of 3-5 scenes depending on the play data. The final story should be 11-17 scenes with opening and closing shots.
Language Requirements: The story should be provided in English, Spanish, and Japanese. Each scene must include captions and audio URLs for all three languages.
Output the story in JSON format as an object following this schema:
storyTitle: A child-friendly title introducing the game.
teaserSummary: A short, engaging preview of the game story and matchup.
storyImageUrl: Empty string as a placeholder.
storyImagenPrompt: Empty string as a placeholder.
scenes: an array where each scene includes the following:
actNumber: The act number for a given scene.
sceneNumber: The sequential number of the scene in the entire story, starting at 0.
description: A brief description of what happens in the scene, emphasizing strategic or tactical elements.
imageUrl: Empty string as a placeholder.
audioUrl_en: Empty string as a placeholder.
audioUrl_es: Empty string as a placeholder.
audioUrl_ja: Empty string as a placeholder.
caption_en: A chunk of text in English derived from a larger text body called story.
caption_es: A chunk of text in Spanish derived from a larger text body called story.
caption_ja: A chunk of text in Japanese derived from a larger text body called story.
visualDescription: Brief visual description of what happens in the scene, considering what a single still image would depict.
imagenPrompt: Empty string as a placeholder.
Use clear and concise language that is easy for children to understand while incorporating elements like suspense, humor, and excitement to make the story captivating.
Output in valid JSON format, ensuring the structure of the JSON object remains consistent with the schema provided and that both keys and string values use double quotes for all entries.`

const imagenPromptTemplate = `Given the JSON object %s containing scenes from a baseball game and its game overview %s, create a concise and visually engaging imagenPrompt for each scene optimized for generative AI image creation.
Formatting Instructions: Use the visualDescription field as the primary inspiration for the imagenPrompt. Use the description and caption_en fields to inform team details, jersey numbers, and key visual elements. Replace only the storyImagenPrompt and imagenPrompt fields in the JSON object while ensuring all other fields remain unedited. Ensure the final output is in JSON format with the exact structure provided.
Context Instructions: For each scene, create a concise, vivid description of the visual focus. For the overall storyImagenPrompt, create a stylized and visually engaging prompt representing the game matchup utilizing the teams' logos and selected animal pairing.
Output the updated JSON object with all keys and string values using double quotes.`

const imagenPromptInstructions = `Your job is to create a concise and visually engaging imagenPrompt for each story and scene optimized for generative AI image creation.
Style: Use a 3D animated kids film style for all prompts. Focus on vibrant, engaging visuals with a clear, child-friendly aesthetic.
Subject Focus: Focus on a single key subject or action in each scene (e.g., one batter, one pitcher, or a celebration). Avoid overloading scenes with too many actions or characters.
Characters: Replace all humans with woodland animal characters, always referring to them as "woodland animals" and never as "creatures". Maintain consistent animal representations for players throughout the JSON object (e.g., if a raccoon represents #99 for the Yankees, this must remain consistent in all scenes).
Team and Player Details: Always include the appropriate team, jersey numbers, and player roles (e.g., batter, pitcher) in the prompts. Do not use player names.
Background and Setting: Include concise descriptions of the setting (e.g., "a baseball stadium" or "a baseball field"). Minimize background elements unless critical to the scene.
Team Animal Pairings: Choose randomly from any of the following pairings when depicting players as animals: Raccoons and Squirrels, Foxes and Rabbits, Bears and Moose, Cats and Dogs. For a given story, depict the home team as one species from the selected pairing and the away team as the other.`

type geminiStoryboardGenerator struct {
	logger       outbound.LoggerPort
	client       *genai.Client
	geminiConfig *config.GeminiConfig
}

func NewGeminiStoryboardGenerator(logger outbound.LoggerPort, client *genai.Client,
	geminiConfig *config.GeminiConfig) outbound.StoryboardGeneratorPort {
	return &geminiStoryboardGenerator{
		logger:       logger,
		client:       client,
		geminiConfig: geminiConfig,
	}
}

func (g *geminiStoryboardGenerator) TellStory(ctx context.Context, plays []domain.PlayEvent) (string, error) {
	playsJSON, err := json.Marshal(plays)
	if err != nil {
		return "", fmt.Errorf("marshal play data: %w", err)
	}

	prompt := fmt.Sprintf(storyPromptTemplate, playsJSON)

	resp, err := g.client.Models.GenerateContent(ctx, g.geminiConfig.StoryModel, genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
		})
	if err != nil {
		g.logger.Error(err, "Story generation call failed")
		return "", classifyBackendError(narrativeStage, err)
	}
	if resp == nil {
		return "", nil
	}

	return strings.TrimSpace(resp.Text()), nil
}

func (g *geminiStoryboardGenerator) GeneratePrompts(ctx context.Context, story string, overview domain.GameOverview) (string, error) {
	overviewJSON, err := json.Marshal(overview)
	if err != nil {
		return "", fmt.Errorf("marshal game overview: %w", err)
	}

	prompt := fmt.Sprintf(imagenPromptTemplate, story, overviewJSON)

	resp, err := g.client.Models.GenerateContent(ctx, g.geminiConfig.PromptModel, genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: imagenPromptInstructions}},
			},
		})
	if err != nil {
		g.logger.Error(err, "Visual prompt generation call failed")
		return "", classifyBackendError(visualPromptStage, err)
	}
	if resp == nil {
		return "", nil
	}

	return strings.TrimSpace(resp.Text()), nil
}

// classifyBackendError maps transport-level failures onto the pipeline's
// error kinds. Rate limiting is the only class the assembler retries, so it
// must be recognized both from the structured API error and from the error
// text some client paths collapse it into.
func classifyBackendError(stage string, err error) error {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusTooManyRequests {
			return domain.NewBackendError(domain.BackendErrorRateLimited, stage, err)
		}
		return domain.NewBackendError(domain.BackendErrorUnknown, stage, err)
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "quota") ||
		strings.Contains(msg, "resource exhausted") ||
		strings.Contains(msg, "rate limit") {
		return domain.NewBackendError(domain.BackendErrorRateLimited, stage, err)
	}

	return domain.NewBackendError(domain.BackendErrorUnknown, stage, err)
}
