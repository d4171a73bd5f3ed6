package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type PipelineConfig struct {
	NarrativeCooldown time.Duration
	SceneConcurrency  int
	AssetInterval     time.Duration
}

func GetPipelineConfig() (*PipelineConfig, error) {
	cfg := &PipelineConfig{}

	cooldown := os.Getenv("NARRATIVE_COOLDOWN_SECONDS")
	if cooldown != "" {
		cooldownVal, err := strconv.Atoi(cooldown)
		if err != nil {
			return nil, fmt.Errorf("failed to parse NARRATIVE_COOLDOWN_SECONDS: %w", err)
		}
		cfg.NarrativeCooldown = time.Duration(cooldownVal) * time.Second
	}

	concurrency := os.Getenv("SCENE_CONCURRENCY")
	if concurrency != "" {
		concurrencyVal, err := strconv.Atoi(concurrency)
		if err != nil {
			return nil, fmt.Errorf("failed to parse SCENE_CONCURRENCY: %w", err)
		}
		cfg.SceneConcurrency = concurrencyVal
	}

	interval := os.Getenv("ASSET_INTERVAL_MS")
	if interval != "" {
		intervalVal, err := strconv.Atoi(interval)
		if err != nil {
			return nil, fmt.Errorf("failed to parse ASSET_INTERVAL_MS: %w", err)
		}
		cfg.AssetInterval = time.Duration(intervalVal) * time.Millisecond
	}

	return cfg, nil
}
