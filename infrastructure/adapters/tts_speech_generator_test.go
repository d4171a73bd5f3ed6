package adapters

import (
	"context"
	"testing"

	"github.com/Slime-Stack/Sluggers/application/ports/outbound"
	"github.com/Slime-Stack/Sluggers/domain"
)

func TestSpeechObjectNameDeterministic(t *testing.T) {
	got := speechObjectName("775296", 2, 7, domain.LanguageJapanese)
	want := "sluggers_tts_775296_27_ja.mp3"
	if got != want {
		t.Errorf("speechObjectName = %q, want %q", got, want)
	}

	if speechObjectName("775296", 2, 7, domain.LanguageJapanese) != got {
		t.Error("object name must be stable across calls")
	}
}

func TestVoiceProfilesCoverAllLanguages(t *testing.T) {
	for _, lang := range domain.Languages {
		profile, ok := voiceProfiles[lang]
		if !ok {
			t.Fatal("missing voice profile for", lang)
		}
		if profile.languageCode == "" || profile.voiceName == "" {
			t.Error("incomplete voice profile for", lang)
		}
	}

	if voiceProfiles[domain.LanguageEnglish].voiceName != "en-US-Neural2-D" {
		t.Error("unexpected English narrator:", voiceProfiles[domain.LanguageEnglish].voiceName)
	}
}

func TestGenerateRejectsUnsupportedLanguage(t *testing.T) {
	// The language check runs before any backend call, so a nil client is
	// fine here.
	generator := NewTTSSpeechGenerator(NewZerologWrapper(), nil, nil)

	_, err := generator.Generate(context.Background(), outbound.GenerateSpeechRequest{
		Caption:  "bonjour",
		Language: domain.Language("fr"),
		GamePk:   "1",
	})
	if err == nil {
		t.Fatal("expected an error for an unsupported language")
	}
	if !domain.IsUnsupportedLanguage(err) {
		t.Error("expected unsupported language classification, got:", err)
	}
}
