package bootstrap

import (
	"log"
	"os"
	"path/filepath"

	"gorm.io/gorm"

	"admission-advisor-be/internal/config"
	"admission-advisor-be/internal/controller"
	"admission-advisor-be/internal/pkg/logger"
	"admission-advisor-be/internal/repository/implementation"
	"admission-advisor-be/internal/service"
	"admission-advisor-be/pkg/ai/router"
	"admission-advisor-be/pkg/ai/supervisor"
	"admission-advisor-be/pkg/embedding"
	"admission-advisor-be/pkg/llm/factory"
	"admission-advisor-be/pkg/rag/docagent"
	"admission-advisor-be/pkg/schoolinfo"
	"admission-advisor-be/pkg/sqlagent"
)

// Container holds the wired application graph. Controllers are the only
// exported surface; everything below them is assembled here once.
type Container struct {
	ChatController controller.IChatController
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Loggers
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	llmLogger := initLLMLogger()

	// 2. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	switch cfg.Ai.EmbeddingProvider {
	case "ollama":
		log.Printf("[INFO] Using Embedding Provider: Ollama (%s)", cfg.Ai.OllamaModel)
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel, cfg.Ai.RequestTimeout)
	default:
		log.Printf("[INFO] Using Embedding Provider: Google Gemini")
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini, cfg.Ai.RequestTimeout)
	}

	llmProvider, err := factory.NewLLMProvider(cfg.Ai.LLMProvider, cfg.Ai.LLMModel, cfg.Ai.OllamaBaseURL, cfg.Ai.RequestTimeout)
	if err != nil {
		log.Fatalf("Failed to initialize LLM Provider: %v", err)
	}

	// 3. Repositories
	chunkRepo := implementation.NewChunkRepository(db)
	sqlExampleRepo := implementation.NewSQLExampleRepository(db)
	intentRouteRepo := implementation.NewIntentRouteRepository(db)
	scoreQueryRepo := implementation.NewScoreQueryRepository(db)
	schoolRepo := implementation.NewSchoolRepository(db)
	checkpointRepo := implementation.NewCheckpointRepository(db)

	// 4. Pipeline agents
	intentRouter := router.NewRouter(embeddingProvider, intentRouteRepo, cfg.Pipeline.RouteThreshold, llmLogger)

	answerCache := docagent.NewAnswerCache(cfg.Pipeline.CacheThreshold, cfg.Pipeline.CacheTTL)
	docAgent := docagent.NewAgent(llmProvider, embeddingProvider, chunkRepo, answerCache, docagent.Config{
		TopK:           cfg.Pipeline.RetrievalTopK,
		MaxRewrites:    cfg.Pipeline.MaxRewrites,
		MinSimilarity:  cfg.Pipeline.MinSimilarity,
		CacheThreshold: cfg.Pipeline.CacheThreshold,
	}, llmLogger)

	sqlAgent := sqlagent.NewAgent(llmProvider, embeddingProvider, sqlExampleRepo, scoreQueryRepo, sqlagent.Config{
		MaxAttempts:  cfg.Pipeline.MaxQueryAttempts,
		FewShotLimit: cfg.Pipeline.FewShotLimit,
	}, llmLogger)

	schoolAgent := schoolinfo.NewAgent(llmProvider, schoolRepo, llmLogger)

	planner := supervisor.NewPlanner()
	exec := supervisor.NewSupervisor(docAgent, sqlAgent, schoolAgent, supervisor.Config{
		StepTimeout: cfg.Ai.RequestTimeout,
	}, llmLogger)

	// 5. Services
	chatService := service.NewChatService(intentRouter, planner, exec, schoolAgent, checkpointRepo, sysLogger)

	// 6. Controllers
	chatController := controller.NewChatController(chatService)

	return &Container{
		ChatController: chatController,
	}
}

// initLLMLogger writes agent traces to a dedicated file so prompt/response
// dumps stay out of the structured application log.
func initLLMLogger() *log.Logger {
	logPath := filepath.Join(".", "logs", "llm_orchestrator.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[LLM] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}
