package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/shreyashetty-create/WhoSaid-project/internal/config"
	"github.com/shreyashetty-create/WhoSaid-project/internal/handlers"
	"github.com/shreyashetty-create/WhoSaid-project/internal/services"
	"github.com/shreyashetty-create/WhoSaid-project/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}
	cfg := config.Load()

	if cfg.SupabaseURL == "" || cfg.SupabaseKey == "" {
		log.Fatal("SUPABASE_URL and SUPABASE_KEY must be set")
	}

	storeClient := store.NewClient(cfg.SupabaseURL, cfg.SupabaseKey)

	scoringService := services.NewScoringService()
	sessionService := services.NewSessionService(storeClient)
	playerService := services.NewPlayerService(storeClient)
	aiService := services.NewAIConfessionService(cfg.OpenAIAPIKey, cfg.OpenAIAPIURL, cfg.OpenAIModel)
	confessionService := services.NewConfessionService(storeClient, sessionService, aiService)
	guessService := services.NewGuessService(storeClient, sessionService, scoringService)
	leaderboardService := services.NewLeaderboardService(storeClient)
	narrationService := services.NewNarrationService(cfg.ElevenLabsAPIKey, cfg.ElevenLabsAPIURL, cfg.ElevenLabsVoiceID, cfg.AudioDir)

	if !aiService.IsAvailable() {
		log.Println("OPENAI_API_KEY not set, AI confession injection disabled")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	r.Static("/static/audio", cfg.AudioDir)

	handlers.Register(
		r,
		handlers.NewSessionHandler(sessionService),
		handlers.NewPlayerHandler(playerService),
		handlers.NewConfessionHandler(confessionService),
		handlers.NewGuessHandler(guessService),
		handlers.NewLeaderboardHandler(leaderboardService),
		handlers.NewAudioHandler(narrationService),
	)

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
