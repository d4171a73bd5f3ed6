package domain

import (
	"fmt"
)

type Language string

const (
	LanguageEnglish  Language = "en"
	LanguageSpanish  Language = "es"
	LanguageJapanese Language = "ja"
)

// Languages is the fixed set of caption/audio tracks every scene carries,
// in the order they appear on the wire.
var Languages = []Language{LanguageEnglish, LanguageSpanish, LanguageJapanese}

type AspectMode string

const (
	// AspectStory is the wide cover-image format.
	AspectStory AspectMode = "story"
	// AspectScene is the portrait per-scene format.
	AspectScene AspectMode = "scene"
)

func (a AspectMode) Ratio() string {
	if a == AspectStory {
		return "16:9"
	}
	return "9:16"
}

const (
	MinScenes = 11
	MaxScenes = 17
	ActCount  = 3
)

type Scene struct {
	ActNumber         int    `json:"actNumber"`
	SceneNumber       int    `json:"sceneNumber"`
	Description       string `json:"description"`
	VisualDescription string `json:"visualDescription"`
	ImagenPrompt      string `json:"imagenPrompt"`
	ImageURL          string `json:"imageUrl"`
	CaptionEn         string `json:"caption_en"`
	CaptionEs         string `json:"caption_es"`
	CaptionJa         string `json:"caption_ja"`
	AudioURLEn        string `json:"audioUrl_en"`
	AudioURLEs        string `json:"audioUrl_es"`
	AudioURLJa        string `json:"audioUrl_ja"`
}

func (s *Scene) Caption(lang Language) string {
	switch lang {
	case LanguageEnglish:
		return s.CaptionEn
	case LanguageSpanish:
		return s.CaptionEs
	case LanguageJapanese:
		return s.CaptionJa
	}
	return ""
}

func (s *Scene) SetAudioURL(lang Language, url string) {
	switch lang {
	case LanguageEnglish:
		s.AudioURLEn = url
	case LanguageSpanish:
		s.AudioURLEs = url
	case LanguageJapanese:
		s.AudioURLJa = url
	}
}

func (s *Scene) AudioURL(lang Language) string {
	switch lang {
	case LanguageEnglish:
		return s.AudioURLEn
	case LanguageSpanish:
		return s.AudioURLEs
	case LanguageJapanese:
		return s.AudioURLJa
	}
	return ""
}

type Storyboard struct {
	StoryTitle        string  `json:"storyTitle"`
	TeaserSummary     string  `json:"teaserSummary"`
	StoryImageURL     string  `json:"storyImageUrl"`
	StoryImagenPrompt string  `json:"storyImagenPrompt"`
	Scenes            []Scene `json:"scenes"`
}

// Validate checks the structural invariants a generated storyboard must
// satisfy before any asset generation is attempted: 11-17 scenes, scene
// numbers contiguous from 0, and act numbers non-decreasing within 1..3.
func (sb *Storyboard) Validate() error {
	if len(sb.Scenes) < MinScenes || len(sb.Scenes) > MaxScenes {
		return fmt.Errorf("storyboard must have between %d and %d scenes, got %d", MinScenes, MaxScenes, len(sb.Scenes))
	}

	previousAct := 1
	for i := range sb.Scenes {
		scene := &sb.Scenes[i]
		if scene.SceneNumber != i {
			return fmt.Errorf("scene numbers must be contiguous from 0: index %d has sceneNumber %d", i, scene.SceneNumber)
		}
		if scene.ActNumber < 1 || scene.ActNumber > ActCount {
			return fmt.Errorf("scene %d has act number %d outside 1..%d", scene.SceneNumber, scene.ActNumber, ActCount)
		}
		if scene.ActNumber < previousAct {
			return fmt.Errorf("act numbers must not decrease: scene %d moves from act %d to act %d", scene.SceneNumber, previousAct, scene.ActNumber)
		}
		previousAct = scene.ActNumber
	}

	return nil
}
