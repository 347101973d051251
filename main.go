package main

import (
	"log"

	api "maum-backend/cmd/api"
	"maum-backend/internal/analysis/emotion"
	authUsecase "maum-backend/internal/auth/usecase"
	chatdomain "maum-backend/internal/chat/domain"
	chatRepo "maum-backend/internal/chat/repository"
	"maum-backend/internal/chat/session"
	chatUsecase "maum-backend/internal/chat/usecase"
	insightUsecase "maum-backend/internal/insight/usecase"
	"maum-backend/pkg/ai"
	"maum-backend/pkg/config"
	"maum-backend/pkg/database"
	"maum-backend/pkg/firebase"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&chatdomain.EmotionRecord{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Firebase clients
	identityClient := firebase.NewIdentityClient(cfg.FirebaseWebAPIKey)
	tokenVerifier, err := firebase.NewTokenVerifier(cfg.FirebaseCredentials)
	if err != nil {
		log.Fatal("Failed to initialize Firebase: ", err)
	}

	// Initialize completion provider
	completion, err := ai.NewCompletionService(ai.Config{
		Provider:     ai.ProviderType(cfg.AIProvider),
		OpenAIAPIKey: cfg.OpenAIAPIKey,
		OpenAIModel:  cfg.ChatModel,
		GeminiAPIKey: cfg.GeminiAPIKey,
	})
	if err != nil {
		log.Fatal("Failed to initialize completion provider: ", err)
	}
	log.Printf("Completion provider initialized: %s (%s)", cfg.AIProvider, cfg.ChatModel)

	// Initialize repositories and in-memory session store
	recordRepository := chatRepo.NewGormRecordRepository(db)
	sessionStore := session.NewStore(cfg.ChatMaxTurns)
	classifier := emotion.NewDefaultClassifier()

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(identityClient, tokenVerifier, cfg)
	chatUsecaseInstance := chatUsecase.NewChatUsecase(recordRepository, sessionStore, completion, classifier)
	insightUsecaseInstance := insightUsecase.NewInsightUsecase(recordRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, chatUsecaseInstance, insightUsecaseInstance, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
