package config

import "os"

type MediaConfig struct {
	PlaceholderBaseUrl string
}

// GetMediaConfig reads the base URL placeholder assets are served from.
// Image generation falls back to these when the backend returns nothing.
func GetMediaConfig() *MediaConfig {
	baseUrl := os.Getenv("PLACEHOLDER_IMAGE_BASE_URL")
	if baseUrl == "" {
		baseUrl = "https://storage.googleapis.com/slugger-assets/placeholders"
	}

	return &MediaConfig{
		PlaceholderBaseUrl: baseUrl,
	}
}
