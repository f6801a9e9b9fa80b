package bootstrap

import (
	"context"
	"log"

	"nursing-assistant-be/internal/config"
	"nursing-assistant-be/internal/constant"
	"nursing-assistant-be/internal/controller"
	"nursing-assistant-be/internal/pkg/logger"
	"nursing-assistant-be/internal/repository/unitofwork"
	"nursing-assistant-be/internal/service"
	"nursing-assistant-be/pkg/embedding"
	"nursing-assistant-be/pkg/line"
	"nursing-assistant-be/pkg/llm/factory"
	"nursing-assistant-be/pkg/rag/classify"
	"nursing-assistant-be/pkg/rag/generate"
	"nursing-assistant-be/pkg/rag/relational"
	"nursing-assistant-be/pkg/rag/safety"
	"nursing-assistant-be/pkg/rag/vector"

	pkgNats "nursing-assistant-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController    controller.IChatController
	WebhookController controller.IWebhookController
	AuthController    controller.IAuthController
	AdminController   controller.IAdminController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI capability providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	defaultModel := constant.DefaultGenerationModels[0]
	if len(cfg.Ai.GenerationModels) > 0 {
		defaultModel = cfg.Ai.GenerationModels[0]
	}
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		defaultModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, defaultModel)

	// 4. Infrastructure
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	lineClient := line.NewClient(cfg.Line.ChannelToken)

	// 5. RAG pipeline components
	safetyFilter := safety.NewFilter(constant.RestrictedTerms)
	classifier := classify.NewClassifier(constant.CategoryTriggers)
	relationalRetriever := relational.NewRetriever(sysLogger, cfg.Retrieval.QueryTimeout)
	vectorRetriever := vector.NewRetriever(embeddingProvider, vector.Config{
		Namespace: cfg.Retrieval.VectorNamespace,
		TopK:      cfg.Retrieval.VectorTopK,
		Threshold: cfg.Retrieval.SimilarityThreshold,
	}, sysLogger, cfg.Retrieval.QueryTimeout)
	generator := generate.NewGenerator(llmProvider, cfg.Ai.GenerationModels, sysLogger)

	// 6. Services
	publisherService := service.NewPublisherService(cfg.Keys.EmbedDocumentTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.EmbedDocumentTopic,
		uowFactory,
		embeddingProvider,
		sysLogger,
	)

	identityService := service.NewIdentityService(uowFactory)
	chatbotService := service.NewChatbotService(
		uowFactory,
		identityService,
		safetyFilter,
		classifier,
		relationalRetriever,
		vectorRetriever,
		generator,
		sysLogger,
	)
	webhookService := service.NewWebhookService(
		chatbotService,
		identityService,
		lineClient,
		rdb,
		sysLogger,
	)
	adminService := service.NewAdminService(uowFactory, publisherService, natsPub, sysLogger)
	authService := service.NewAuthService(&cfg.Auth)

	// 7. Controllers
	return &Container{
		ChatController:    controller.NewChatController(chatbotService),
		WebhookController: controller.NewWebhookController(webhookService, &cfg.Line, sysLogger),
		AuthController:    controller.NewAuthController(authService),
		AdminController:   controller.NewAdminController(adminService),

		ConsumerService: consumerService,
	}
}
