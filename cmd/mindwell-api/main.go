package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"

	httpadapter "github.com/mindwell/mindwell-api/internal/adapters/http"
	"github.com/mindwell/mindwell-api/internal/adapters/llm"
	firestorestore "github.com/mindwell/mindwell-api/internal/adapters/storage/firestore"
	memstore "github.com/mindwell/mindwell-api/internal/adapters/storage/memory"
	"github.com/mindwell/mindwell-api/internal/app/chat"
	"github.com/mindwell/mindwell-api/internal/app/mood"
	"github.com/mindwell/mindwell-api/internal/app/resources"
	"github.com/mindwell/mindwell-api/internal/config"
	"github.com/mindwell/mindwell-api/internal/domain"
	"github.com/mindwell/mindwell-api/internal/observability"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.Init(cfg.Log.Level)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	// Chat provider
	var chatClient domain.ChatClient
	switch cfg.LLM.Provider {
	case config.ProviderOpenAI:
		logger.Info("using OpenAI chat provider", zap.String("model", cfg.LLM.OpenAIModel))
		chatClient, err = llm.NewOpenAIClient(cfg.LLM.OpenAIAPIKey, cfg.LLM.OpenAIModel, cfg.LLM.MaxTokens)
		if err != nil {
			logger.Fatal("initializing OpenAI client", zap.Error(err))
		}
	case config.ProviderVertex:
		logger.Info("using Vertex chat provider", zap.String("model", cfg.LLM.VertexModel))
		chatClient, err = llm.NewVertexClient(ctx, cfg.LLM.GCPProjectID, cfg.LLM.GCPLocation, cfg.LLM.VertexModel)
		if err != nil {
			logger.Fatal("initializing Vertex client", zap.Error(err))
		}
	default:
		logger.Info("using mock chat provider")
		chatClient = llm.NewMockClient()
	}

	// Storage: Firestore or Memory
	var (
		resourceStore domain.ResourceStore
		moodStore     domain.MoodStore
		convStore     domain.ConversationStore
	)

	switch cfg.Storage.Backend {
	case config.StorageFirestore:
		logger.Info("using Firestore storage", zap.String("project", cfg.Storage.GCPProjectID))
		fsStore, err := firestorestore.NewStore(ctx, cfg.Storage.GCPProjectID)
		if err != nil {
			logger.Fatal("initializing Firestore store", zap.Error(err))
		}
		defer fsStore.Close()

		// 1 store, implements 3 interfaces
		resourceStore = fsStore
		moodStore = fsStore
		convStore = fsStore

	default:
		logger.Info("using in-memory storage")
		resourceStore = memstore.NewResourceStore()
		moodStore = memstore.NewMoodStore()
		convStore = memstore.NewConversationStore()
	}

	// Services
	resourceSvc := resources.NewService(resourceStore)
	moodSvc := mood.NewService(moodStore)
	chatSvc := chat.NewService(chatClient, convStore)

	if err := resourceSvc.SeedIfEmpty(ctx); err != nil {
		logger.Fatal("seeding resources", zap.Error(err))
	}

	// HTTP server
	handler := httpadapter.NewServer(resourceSvc, moodSvc, chatSvc)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("MindWell API listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
