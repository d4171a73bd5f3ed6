package adapters

import (
	"context"
	"strings"

	"google.golang.org/genai"

	"github.com/Slime-Stack/Sluggers/application/ports/outbound"
	"github.com/Slime-Stack/Sluggers/config"
)

type imagenImageGenerator struct {
	logger       outbound.LoggerPort
	client       *genai.Client
	geminiConfig *config.GeminiConfig
	mediaConfig  *config.MediaConfig
	mediaStore   outbound.MediaStorePort
}

func NewImagenImageGenerator(logger outbound.LoggerPort, client *genai.Client,
	geminiConfig *config.GeminiConfig, mediaConfig *config.MediaConfig,
	mediaStore outbound.MediaStorePort) outbound.ImageGeneratorPort {
	return &imagenImageGenerator{
		logger:       logger,
		client:       client,
		geminiConfig: geminiConfig,
		mediaConfig:  mediaConfig,
		mediaStore:   mediaStore,
	}
}

// Generate renders one still for the prompt and uploads it under the
// requested object name. A backend that produces nothing, or an upload that
// fails, degrades to a placeholder reference so a single missing image never
// sinks an otherwise complete storyboard. Only context cancellation
// propagates as an error.
func (g *imagenImageGenerator) Generate(ctx context.Context, req outbound.GenerateImageRequest) (string, error) {
	resp, err := g.client.Models.GenerateImages(ctx, g.geminiConfig.ImageModel, req.Prompt,
		&genai.GenerateImagesConfig{
			NumberOfImages:    1,
			AspectRatio:       req.Aspect.Ratio(),
			SafetyFilterLevel: genai.SafetyFilterLevelBlockOnlyHigh,
			PersonGeneration:  genai.PersonGenerationAllowAdult,
		})
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		g.logger.ErrorWithFields(err, "Image generation failed, substituting placeholder", map[string]interface{}{
			"objectName": req.ObjectName,
		})
		return g.placeholderURL(req.ObjectName), nil
	}

	image := firstImage(resp)
	if len(image) == 0 {
		g.logger.WarnWithFields("Image backend returned no image, substituting placeholder", map[string]interface{}{
			"objectName": req.ObjectName,
		})
		return g.placeholderURL(req.ObjectName), nil
	}

	url, err := g.mediaStore.Upload(ctx, req.ObjectName, image, "image/png")
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		g.logger.ErrorWithFields(err, "Image upload failed, substituting placeholder", map[string]interface{}{
			"objectName": req.ObjectName,
		})
		return g.placeholderURL(req.ObjectName), nil
	}

	return url, nil
}

func (g *imagenImageGenerator) placeholderURL(objectName string) string {
	return strings.TrimSuffix(g.mediaConfig.PlaceholderBaseUrl, "/") + "/" + objectName
}

func firstImage(resp *genai.GenerateImagesResponse) []byte {
	if resp == nil || len(resp.GeneratedImages) == 0 {
		return nil
	}
	generated := resp.GeneratedImages[0]
	if generated == nil || generated.Image == nil {
		return nil
	}
	return generated.Image.ImageBytes
}
