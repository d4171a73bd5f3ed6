package mock_generator

import "github.com/Slime-Stack/Sluggers/domain"

// MockScene is a canned scene plus the number of seconds the replay waits
// before emitting it, to imitate generation latency.
type MockScene struct {
	domain.Scene
	Delay int `json:"delay"`
}

type MockStoryboard struct {
	StoryTitle        string      `json:"storyTitle"`
	TeaserSummary     string      `json:"teaserSummary"`
	StoryImageUrl     string      `json:"storyImageUrl"`
	StoryImagenPrompt string      `json:"storyImagenPrompt"`
	Scenes            []MockScene `json:"scenes"`
}
