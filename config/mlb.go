package config

import "os"

type MLBConfig struct {
	StatsApiUrl string
}

func GetMLBConfig() *MLBConfig {
	apiUrl := os.Getenv("MLB_STATS_API_URL")
	if apiUrl == "" {
		apiUrl = "https://statsapi.mlb.com/api/v1.1"
	}

	return &MLBConfig{
		StatsApiUrl: apiUrl,
	}
}
