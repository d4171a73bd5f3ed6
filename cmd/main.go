package main

import (
	"context"
	"fmt"
	"os"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
	"google.golang.org/genai"

	"github.com/Slime-Stack/Sluggers/application/services"
	"github.com/Slime-Stack/Sluggers/config"
	"github.com/Slime-Stack/Sluggers/infrastructure/adapters"
	"github.com/Slime-Stack/Sluggers/infrastructure/gin_interface/controllers"
	"github.com/Slime-Stack/Sluggers/middleware"
	mockgenerator "github.com/Slime-Stack/Sluggers/mock"
)

func main() {
	ctx := context.Background()

	sess := session.Must(session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	}))

	geminiConfig, err := config.GetGeminiConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get gemini config")
	}

	s3Config, err := config.GetS3Config()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get s3 config")
	}

	dynamoConfig, err := config.GetDynamoConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get dynamo config")
	}

	pipelineConfig, err := config.GetPipelineConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get pipeline config")
	}

	mlbConfig := config.GetMLBConfig()
	mediaConfig := config.GetMediaConfig()

	jwksUrl := os.Getenv("JWKS_URL")
	if jwksUrl == "" {
		log.Fatal().Msg("JWKS_URL is not set!")
	}

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(120, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  geminiConfig.ApiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create genai client")
	}

	ttsClient, err := texttospeech.NewClient(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create text-to-speech client")
	}
	defer func() {
		if err := ttsClient.Close(); err != nil {
			zeroLogger.Error(err, "Failed to close text-to-speech client")
		}
	}()

	s3Client := s3.New(sess)
	dynamoClient := dynamodb.New(sess)

	contentFetcher := adapters.NewContentFetcher(zeroLogger)

	gameFeed := adapters.NewGumboGameFeed(contentFetcher, mlbConfig, zeroLogger)
	mediaStore := adapters.NewS3MediaStore(zeroLogger, s3Client, s3Config)
	highlightStore := adapters.NewDynamoHighlightStore(zeroLogger, dynamoClient, dynamoConfig)

	storyboardGenerator := adapters.NewGeminiStoryboardGenerator(zeroLogger, genaiClient, geminiConfig)
	imageGenerator := adapters.NewImagenImageGenerator(zeroLogger, genaiClient, geminiConfig, mediaConfig, mediaStore)
	speechGenerator := adapters.NewTTSSpeechGenerator(zeroLogger, ttsClient, mediaStore)

	narrativeSynthesizer := services.NewNarrativeSynthesizer(zeroLogger, storyboardGenerator)
	promptSynthesizer := services.NewVisualPromptSynthesizer(zeroLogger, storyboardGenerator)

	storyboardAssembler := services.NewStoryboardAssembler(zeroLogger, narrativeSynthesizer, promptSynthesizer,
		imageGenerator, speechGenerator, services.AssemblerOptions{
			NarrativeCooldown: pipelineConfig.NarrativeCooldown,
			SceneConcurrency:  pipelineConfig.SceneConcurrency,
			AssetInterval:     pipelineConfig.AssetInterval,
		})

	highlightGenerator := services.NewHighlightGenerator(zeroLogger, gameFeed, storyboardAssembler, highlightStore)
	highlightProcessor := services.NewHighlightProcessor(zeroLogger, workerPool, highlightGenerator)

	highlightsController := controllers.NewHighlightsController(zeroLogger, highlightGenerator,
		highlightProcessor, highlightStore)

	router := gin.Default()

	err = router.SetTrustedProxies(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	authHandler, err := middleware.NewAuthHandler(jwksUrl)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create auth handler!")
	}

	router.Use(authHandler.AuthMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	mockgenerator.Init(router, workerPool, zeroLogger)

	highlightsController.RegisterRoutes(router)

	err = router.Run(":8080")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
