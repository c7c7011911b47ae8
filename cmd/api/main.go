// @title           Enterprise Brain API
// @version         1.0
// @description     Ask-your-documents assistant: organization-scoped PDF knowledge base with grounded LLM answers.
// @termsOfService  http://swagger.io/terms/

// @contact.name    API Support
// @contact.url
// @contact.email   ank.github@gmail.com

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/akolanti/BrainAPI/internal/config"
	"github.com/akolanti/BrainAPI/internal/data/store"
	"github.com/akolanti/BrainAPI/internal/domain/askModel"
	"github.com/akolanti/BrainAPI/internal/handlers"
	"github.com/akolanti/BrainAPI/internal/knowledge"
	"github.com/akolanti/BrainAPI/internal/knowledge/llm"
	"github.com/akolanti/BrainAPI/internal/knowledge/llm/gemini"
	"github.com/akolanti/BrainAPI/internal/knowledge/llm/openaiChat"
	"github.com/akolanti/BrainAPI/internal/middleware"
	"github.com/akolanti/BrainAPI/internal/server"
	"github.com/akolanti/BrainAPI/pkg/logger_i"
)

var listenAddr string

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//stores - redis first, in-memory fallback if it's offline
	redisSessions := store.GetRedisSessionStore(serviceContext)
	redisTenants := store.GetRedisTenantStore(serviceContext)
	redisDocuments := store.GetRedisDocumentStore(serviceContext)

	var sessionStore askModel.SessionStore = redisSessions
	var tenantStore askModel.TenantStore = redisTenants
	var documentStore askModel.DocumentStore = redisDocuments

	if redisSessions == nil || redisTenants == nil || redisDocuments == nil {
		if !config.FALLBACK_REDIS_TO_INTERNALSTORE {
			logger.Error("Redis stores are offline. Shutting down.")
			return
		}
		logger.Error("Redis stores are offline, falling back to in-memory stores")
		sessionStore, tenantStore, documentStore = initFallbackStores(serviceContext, logger)
	}

	//model client config is injected once, the pipeline only re-checks presence
	modelConfig := knowledge.ModelClientConfig{
		Provider:  config.ModelProvider(),
		APIKey:    config.ModelAPIKey(),
		ModelName: config.ModelName(),
	}

	var llmProvider llm.Provider
	if modelConfig.Configured() {
		switch modelConfig.Provider {
		case "openai":
			llmProvider = openaiChat.GetOpenAIClient(modelConfig.APIKey, modelConfig.ModelName)
		default:
			llmProvider = gemini.GetGeminiClient(serviceContext, modelConfig.APIKey, modelConfig.ModelName)
		}
	}
	if llmProvider == nil {
		//the server still comes up; ask requests answer with the
		//unconfigured error until an operator sets the key
		logger.Error("No model credential configured", "provider", modelConfig.Provider)
	}

	knowledgeService := knowledge.NewService(tenantStore, documentStore, llmProvider, modelConfig)

	handlers.InitHandlers(knowledgeService)
	middleware.InitAuth(sessionStore)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}

// initFallbackStores seeds a dev session so the API is usable without the
// external auth provider writing to redis. Dev only.
func initFallbackStores(ctx context.Context, logger *logger_i.Logger) (askModel.SessionStore, askModel.TenantStore, askModel.DocumentStore) {
	sessions := store.InitInMemorySessionStore()
	tenants := store.InitInMemoryTenantStore()
	documents := store.InitInMemoryDocumentStore()

	if !config.IS_PROD {
		devIdentity := askModel.Identity{Id: "dev-user"}
		if err := sessions.SaveSession(ctx, "dev-token", devIdentity); err != nil {
			logger.Error("Could not seed dev session", "error", err)
		}
		if err := tenants.BindOrganization(ctx, devIdentity.Id, "dev-org"); err != nil {
			logger.Error("Could not seed dev organization", "error", err)
		}
		logger.Info("Seeded dev session", "token", "dev-token", "org", "dev-org")
	}
	return sessions, tenants, documents
}
