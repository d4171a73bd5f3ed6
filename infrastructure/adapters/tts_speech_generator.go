package adapters

import (
	"context"
	"fmt"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"

	"github.com/Slime-Stack/Sluggers/application/ports/outbound"
	"github.com/Slime-Stack/Sluggers/domain"
)

const speechStage = "speech"

const (
	audioFileNamePrefix = "sluggers_tts_"
	audioFileNameSuffix = ".mp3"
)

type voiceProfile struct {
	languageCode string
	voiceName    string
	speakingRate float64
	pitch        float64
}

// voiceProfiles pins one narrator voice per caption track. The English
// narrator is pitched like a broadcast announcer; the others use the default
// prosody of their locale's voice.
var voiceProfiles = map[domain.Language]voiceProfile{
	domain.LanguageEnglish:  {languageCode: "en-US", voiceName: "en-US-Neural2-D", speakingRate: 1.15, pitch: 0.5},
	domain.LanguageSpanish:  {languageCode: "es-US", voiceName: "es-US-Neural2-B", speakingRate: 1.1, pitch: 0},
	domain.LanguageJapanese: {languageCode: "ja-JP", voiceName: "ja-JP-Neural2-C", speakingRate: 1.0, pitch: 0},
}

type ttsSpeechGenerator struct {
	logger     outbound.LoggerPort
	ttsClient  *texttospeech.Client
	mediaStore outbound.MediaStorePort
}

func NewTTSSpeechGenerator(logger outbound.LoggerPort, ttsClient *texttospeech.Client,
	mediaStore outbound.MediaStorePort) outbound.SpeechGeneratorPort {
	return &ttsSpeechGenerator{
		logger:     logger,
		ttsClient:  ttsClient,
		mediaStore: mediaStore,
	}
}

func (g *ttsSpeechGenerator) Generate(ctx context.Context, req outbound.GenerateSpeechRequest) (string, error) {
	profile, ok := voiceProfiles[req.Language]
	if !ok {
		err := domain.NewBackendError(domain.BackendErrorUnsupportedLanguage, speechStage,
			fmt.Errorf("no voice profile for language %q", req.Language))
		g.logger.Error(err, "Speech generation requested for unsupported language")
		return "", err
	}

	ssml := fmt.Sprintf("<speak>%s</speak>", req.Caption)

	resp, err := g.ttsClient.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Ssml{Ssml: ssml},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: profile.languageCode,
			Name:         profile.voiceName,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
			SpeakingRate:  profile.speakingRate,
			Pitch:         profile.pitch,
		},
	})
	if err != nil {
		g.logger.ErrorWithFields(err, "Speech synthesis failed", map[string]interface{}{
			"gamePk":   req.GamePk,
			"scene":    req.SceneNumber,
			"language": string(req.Language),
		})
		return "", fmt.Errorf("synthesize speech: %w", err)
	}

	objectName := speechObjectName(req.GamePk, req.ActNumber, req.SceneNumber, req.Language)
	url, err := g.mediaStore.Upload(ctx, objectName, resp.AudioContent, "audio/mpeg")
	if err != nil {
		return "", fmt.Errorf("upload speech render %s: %w", objectName, err)
	}

	return url, nil
}

func speechObjectName(gamePk string, actNumber, sceneNumber int, lang domain.Language) string {
	return fmt.Sprintf("%s%s_%d%d_%s%s", audioFileNamePrefix, gamePk, actNumber, sceneNumber, lang, audioFileNameSuffix)
}
