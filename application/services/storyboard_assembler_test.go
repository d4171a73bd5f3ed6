package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Slime-Stack/Sluggers/application/ports/inbound"
	"github.com/Slime-Stack/Sluggers/application/ports/outbound"
	"github.com/Slime-Stack/Sluggers/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string)                                           {}
func (nopLogger) InfoWithFields(string, map[string]interface{})         {}
func (nopLogger) Error(error, string)                                   {}
func (nopLogger) ErrorWithFields(error, string, map[string]interface{}) {}
func (nopLogger) Debug(string)                                          {}
func (nopLogger) DebugWithFields(string, map[string]interface{})        {}
func (nopLogger) Warn(string)                                           {}
func (nopLogger) WarnWithFields(string, map[string]interface{})         {}

type fakeNarrativeSynthesizer struct {
	mu        sync.Mutex
	calls     int
	responses []func() (string, error)
}

func (f *fakeNarrativeSynthesizer) Synthesize(_ context.Context, _ []domain.PlayEvent) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	idx := f.calls
	f.calls++
	if idx >= len(f.responses) {
		idx = len(f.responses) - 1
	}
	return f.responses[idx]()
}

type fakePromptSynthesizer struct {
	storyboard domain.Storyboard
	err        error
}

func (f *fakePromptSynthesizer) Synthesize(_ context.Context, _ string, _ domain.GameOverview) (domain.Storyboard, error) {
	if f.err != nil {
		return domain.Storyboard{}, f.err
	}
	return f.storyboard, nil
}

type fakeImageGenerator struct {
	mu       sync.Mutex
	requests []outbound.GenerateImageRequest
}

func (f *fakeImageGenerator) Generate(_ context.Context, req outbound.GenerateImageRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	return "img://" + req.ObjectName, nil
}

type fakeSpeechGenerator struct {
	mu       sync.Mutex
	requests []outbound.GenerateSpeechRequest
	failOn   func(outbound.GenerateSpeechRequest) error
}

func (f *fakeSpeechGenerator) Generate(_ context.Context, req outbound.GenerateSpeechRequest) (string, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	if f.failOn != nil {
		if err := f.failOn(req); err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("aud://%s_%d%d_%s.mp3", req.GamePk, req.ActNumber, req.SceneNumber, req.Language), nil
}

func testStoryboard(sceneCount int) domain.Storyboard {
	scenes := make([]domain.Scene, sceneCount)
	for i := range scenes {
		act := 1
		if i >= sceneCount/3 {
			act = 2
		}
		if i >= 2*sceneCount/3 {
			act = 3
		}
		scenes[i] = domain.Scene{
			ActNumber:    act,
			SceneNumber:  i,
			ImagenPrompt: fmt.Sprintf("prompt %d", i),
			CaptionEn:    fmt.Sprintf("en caption %d", i),
			CaptionEs:    fmt.Sprintf("es caption %d", i),
			CaptionJa:    fmt.Sprintf("ja caption %d", i),
		}
	}
	return domain.Storyboard{
		StoryTitle:        "Test Story",
		TeaserSummary:     "A test game",
		StoryImagenPrompt: "story prompt",
		Scenes:            scenes,
	}
}

func fastOptions() AssemblerOptions {
	return AssemblerOptions{
		NarrativeCooldown: 5 * time.Millisecond,
		SceneConcurrency:  4,
		AssetInterval:     time.Microsecond,
	}
}

func newTestAssembler(narrative *fakeNarrativeSynthesizer, prompts *fakePromptSynthesizer,
	images *fakeImageGenerator, speech *fakeSpeechGenerator) inbound.StoryboardAssemblerPort {
	return NewStoryboardAssembler(nopLogger{}, narrative, prompts, images, speech, fastOptions())
}

func TestAssembleProducesCompleteStoryboard(t *testing.T) {
	const gamePk = "775296"

	narrative := &fakeNarrativeSynthesizer{responses: []func() (string, error){
		func() (string, error) { return `{"scenes": []}`, nil },
	}}
	prompts := &fakePromptSynthesizer{storyboard: testStoryboard(11)}
	images := &fakeImageGenerator{}
	speech := &fakeSpeechGenerator{}

	assembler := newTestAssembler(narrative, prompts, images, speech)

	storyboard, err := assembler.Assemble(context.Background(), inbound.AssembleParams{GamePk: gamePk})
	if err != nil {
		t.Fatal("assemble failed:", err)
	}

	if storyboard.StoryImageURL != "img://"+gamePk+"_story.png" {
		t.Error("story image not assigned:", storyboard.StoryImageURL)
	}

	for i, scene := range storyboard.Scenes {
		if scene.SceneNumber != i {
			t.Fatalf("scene order broken at index %d: sceneNumber %d", i, scene.SceneNumber)
		}
		wantImage := fmt.Sprintf("img://%s_scene_%d.png", gamePk, i)
		if scene.ImageURL != wantImage {
			t.Errorf("scene %d image = %q, want %q", i, scene.ImageURL, wantImage)
		}
		for _, lang := range domain.Languages {
			if scene.AudioURL(lang) == "" {
				t.Errorf("scene %d missing %s audio", i, lang)
			}
		}
	}

	// one story image plus one per scene
	if len(images.requests) != 1+len(storyboard.Scenes) {
		t.Error("unexpected image call count:", len(images.requests))
	}
	if len(speech.requests) != len(storyboard.Scenes)*len(domain.Languages) {
		t.Error("unexpected speech call count:", len(speech.requests))
	}
}

func TestAssembleRetriesRateLimitedNarrativeOnce(t *testing.T) {
	rateLimited := domain.NewBackendError(domain.BackendErrorRateLimited, "narrative", errors.New("429"))

	narrative := &fakeNarrativeSynthesizer{responses: []func() (string, error){
		func() (string, error) { return "", rateLimited },
		func() (string, error) { return "story", nil },
	}}
	prompts := &fakePromptSynthesizer{storyboard: testStoryboard(11)}

	assembler := newTestAssembler(narrative, prompts, &fakeImageGenerator{}, &fakeSpeechGenerator{})

	if _, err := assembler.Assemble(context.Background(), inbound.AssembleParams{GamePk: "1"}); err != nil {
		t.Fatal("expected retry to recover:", err)
	}
	if narrative.calls != 2 {
		t.Error("expected exactly 2 narrative calls, got", narrative.calls)
	}
}

func TestAssembleRateLimitedTwiceFails(t *testing.T) {
	rateLimited := domain.NewBackendError(domain.BackendErrorRateLimited, "narrative", errors.New("429"))

	narrative := &fakeNarrativeSynthesizer{responses: []func() (string, error){
		func() (string, error) { return "", rateLimited },
	}}

	assembler := newTestAssembler(narrative, &fakePromptSynthesizer{}, &fakeImageGenerator{}, &fakeSpeechGenerator{})

	_, err := assembler.Assemble(context.Background(), inbound.AssembleParams{GamePk: "1"})
	if err == nil {
		t.Fatal("expected failure after the single retry")
	}
	if !domain.IsRateLimited(err) {
		t.Error("expected rate limited classification, got:", err)
	}
	if narrative.calls != 2 {
		t.Error("expected exactly 2 narrative calls, got", narrative.calls)
	}
}

func TestAssembleDoesNotRetryOtherFailures(t *testing.T) {
	empty := domain.NewBackendError(domain.BackendErrorEmptyResponse, "narrative", errors.New("no content"))

	narrative := &fakeNarrativeSynthesizer{responses: []func() (string, error){
		func() (string, error) { return "", empty },
	}}

	assembler := newTestAssembler(narrative, &fakePromptSynthesizer{}, &fakeImageGenerator{}, &fakeSpeechGenerator{})

	_, err := assembler.Assemble(context.Background(), inbound.AssembleParams{GamePk: "1"})
	if err == nil {
		t.Fatal("expected failure")
	}
	if narrative.calls != 1 {
		t.Error("non-rate-limit failures must not retry, calls:", narrative.calls)
	}
}

func TestAssembleRejectsInvalidStoryboard(t *testing.T) {
	narrative := &fakeNarrativeSynthesizer{responses: []func() (string, error){
		func() (string, error) { return "story", nil },
	}}
	prompts := &fakePromptSynthesizer{storyboard: testStoryboard(5)}
	images := &fakeImageGenerator{}

	assembler := newTestAssembler(narrative, prompts, images, &fakeSpeechGenerator{})

	_, err := assembler.Assemble(context.Background(), inbound.AssembleParams{GamePk: "1"})
	if err == nil {
		t.Fatal("expected validation failure for 5 scenes")
	}
	if !domain.IsSchemaViolation(err) {
		t.Error("expected schema violation classification, got:", err)
	}
	if len(images.requests) != 0 {
		t.Error("no assets should be generated for an invalid storyboard")
	}
}

func TestAssembleSkipsAudioForEmptyCaptions(t *testing.T) {
	storyboard := testStoryboard(11)
	storyboard.Scenes[3].CaptionEs = ""

	narrative := &fakeNarrativeSynthesizer{responses: []func() (string, error){
		func() (string, error) { return "story", nil },
	}}
	prompts := &fakePromptSynthesizer{storyboard: storyboard}
	speech := &fakeSpeechGenerator{}

	assembler := newTestAssembler(narrative, prompts, &fakeImageGenerator{}, speech)

	result, err := assembler.Assemble(context.Background(), inbound.AssembleParams{GamePk: "1"})
	if err != nil {
		t.Fatal("assemble failed:", err)
	}

	if result.Scenes[3].AudioURLEs != "" {
		t.Error("no audio should be generated for an empty caption")
	}
	for _, req := range speech.requests {
		if req.SceneNumber == 3 && req.Language == domain.LanguageSpanish {
			t.Error("speech generator was called for an empty caption")
		}
	}
	if len(speech.requests) != 11*3-1 {
		t.Error("unexpected speech call count:", len(speech.requests))
	}
}

func TestAssembleFailsWhenSpeechFails(t *testing.T) {
	narrative := &fakeNarrativeSynthesizer{responses: []func() (string, error){
		func() (string, error) { return "story", nil },
	}}
	prompts := &fakePromptSynthesizer{storyboard: testStoryboard(11)}
	speech := &fakeSpeechGenerator{failOn: func(req outbound.GenerateSpeechRequest) error {
		if req.SceneNumber == 2 && req.Language == domain.LanguageJapanese {
			return errors.New("synthesis backend unavailable")
		}
		return nil
	}}

	assembler := newTestAssembler(narrative, prompts, &fakeImageGenerator{}, speech)

	_, err := assembler.Assemble(context.Background(), inbound.AssembleParams{GamePk: "1"})
	if err == nil {
		t.Fatal("expected speech failure to abort assembly")
	}
	if !strings.Contains(err.Error(), "scene 2 audio (ja)") {
		t.Error("error should name the failing scene and language:", err)
	}
}

func TestAssembleStoryImageFallsBackToFirstScenePrompt(t *testing.T) {
	storyboard := testStoryboard(11)
	storyboard.StoryImagenPrompt = ""

	narrative := &fakeNarrativeSynthesizer{responses: []func() (string, error){
		func() (string, error) { return "story", nil },
	}}
	prompts := &fakePromptSynthesizer{storyboard: storyboard}
	images := &fakeImageGenerator{}

	assembler := newTestAssembler(narrative, prompts, images, &fakeSpeechGenerator{})

	if _, err := assembler.Assemble(context.Background(), inbound.AssembleParams{GamePk: "1"}); err != nil {
		t.Fatal("assemble failed:", err)
	}

	var storyReq *outbound.GenerateImageRequest
	for i := range images.requests {
		if images.requests[i].Aspect == domain.AspectStory {
			storyReq = &images.requests[i]
		}
	}
	if storyReq == nil {
		t.Fatal("no story image request recorded")
	}
	if storyReq.Prompt != "prompt 0" {
		t.Error("expected fallback to the opening scene prompt, got:", storyReq.Prompt)
	}
}
