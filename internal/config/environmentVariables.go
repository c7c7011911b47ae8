package config

import (
	"log/slog"
	"os"
	"time"
)

const (
	IS_PROD                         = false
	LOG_LEVEL_PROD                  = slog.LevelInfo
	FALLBACK_REDIS_TO_INTERNALSTORE = true //if redis init fails, fall back to the in-memory stores
	TRACE_ID_KEY                    = "traceId"
	IDENTITY_KEY                    = "identity"
	RATE_LIMIT_PER_SECOND           = 2
	BURST_RATE_LIMIT_PER_SECOND     = 5

	//ask pipeline bounds - the only backpressure we have,
	//they keep the outbound model request bounded no matter how much a tenant uploads
	MaxDocumentsPerRequest = 15
	MaxCharsPerDocument    = 8000

	//upload validation
	MaxUploadSize          = 10 << 20 //10mb
	MinExtractedTextLength = 20       //anything shorter is a scanned image pdf

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 60 * time.Second //the model call is synchronous, give it room
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//llm
	LLMRequestTimeout         = 30 * time.Second
	GeminiModelName           = "gemini-2.5-flash"
	OpenAIModelName           = "gpt-4o-mini"
	ModelTemperature  float32 = 0.1 //factual, reproducible answers over creative variation
	ModelMaxOutput    int32   = 2048

	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//redis
	redisHost = "127.0.0.1"
	redisPort = "6379"
	RedisAddr = redisHost + ":" + redisPort

	//redis has 16 DBs we can use
	RedisSessionStore  = 0
	RedisTenantStore   = 1
	RedisDocumentStore = 2

	//sessions are provisioned by the external auth provider, we only read them
	RedisSessionTTL = 24 * time.Hour
)

var RedisPassword = os.Getenv("REDIS_PASSWORD")

// ModelAPIKey returns the credential for the configured provider.
// Presence is re-checked per request by the pipeline, the lookup happens once at wiring time.
func ModelAPIKey() string {
	if ModelProvider() == "openai" {
		return os.Getenv("OPENAI_API_KEY")
	}
	return os.Getenv("GEMINI_API_KEY")
}

func ModelProvider() string {
	provider := os.Getenv("LLM_PROVIDER")
	if provider == "" {
		return "gemini"
	}
	return provider
}

func ModelName() string {
	if ModelProvider() == "openai" {
		return OpenAIModelName
	}
	return GeminiModelName
}
