package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/katachat/investor-insight-agent/internal/advisor"
	"github.com/katachat/investor-insight-agent/internal/config"
	"github.com/katachat/investor-insight-agent/internal/mailer"
	"github.com/katachat/investor-insight-agent/internal/server"
)

func main() {

	// Load .env if present; real deployments set the environment directly
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg := config.FromEnv()

	// A missing API key degrades advice generation to its fallback fragment;
	// the server still starts.
	var gen advisor.TextGenerator
	if err := cfg.RequireGemini(); err != nil {
		logger.Warn("text generation disabled", zap.Error(err))
	} else {
		client, err := advisor.NewGeminiClient(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			logger.Error("failed to create Gemini client, text generation disabled", zap.Error(err))
		} else {
			defer client.Close()
			gen = client
		}
	}

	if err := cfg.RequireSMTP(); err != nil {
		logger.Warn("mail delivery disabled", zap.Error(err))
	}

	handler := server.NewHandler(gen, mailer.New(cfg))
	router := server.NewRouter(handler)

	logger.Info("investor insight agent starting", zap.String("port", cfg.Port))

	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server failed to start", zap.Error(err))
	}
}
