package config

import (
	"fmt"
	"os"
)

type GeminiConfig struct {
	ApiKey      string
	StoryModel  string
	PromptModel string
	ImageModel  string
}

func GetGeminiConfig() (*GeminiConfig, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY must be set")
	}

	storyModel := os.Getenv("GEMINI_STORY_MODEL")
	if storyModel == "" {
		storyModel = "gemini-2.0-flash-exp"
	}

	promptModel := os.Getenv("GEMINI_PROMPT_MODEL")
	if promptModel == "" {
		promptModel = "gemini-2.0-flash-exp"
	}

	imageModel := os.Getenv("IMAGEN_MODEL")
	if imageModel == "" {
		imageModel = "imagen-3.0-generate-001"
	}

	return &GeminiConfig{
		ApiKey:      apiKey,
		StoryModel:  storyModel,
		PromptModel: promptModel,
		ImageModel:  imageModel,
	}, nil
}
