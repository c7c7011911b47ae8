package llm

import (
	"errors"
	"net/http"
	"strings"

	"github.com/akolanti/BrainAPI/internal/domain/askModel"
	"github.com/openai/openai-go"
	"google.golang.org/genai"
)

// Classify maps a provider failure onto the user-facing error taxonomy.
// Structured codes are checked first; the substring markers exist because
// some provider errors arrive as wrapped transport errors with only a
// message. All sniffing lives here - nothing else inspects raw provider
// errors.
func Classify(err error) askModel.ErrorKind {
	if err == nil {
		return ""
	}

	var geminiErr genai.APIError
	if errors.As(err, &geminiErr) {
		return classifyStatusCode(geminiErr.Code, geminiErr.Message+" "+geminiErr.Status)
	}

	var openaiErr *openai.Error
	if errors.As(err, &openaiErr) {
		return classifyStatusCode(openaiErr.StatusCode, openaiErr.Message)
	}

	return classifyMessage(err.Error())
}

func classifyStatusCode(code int, message string) askModel.ErrorKind {
	switch code {
	case http.StatusTooManyRequests:
		return askModel.RateLimited
	case http.StatusUnauthorized, http.StatusForbidden:
		return askModel.InvalidCredential
	}
	//gemini rejects a bad key with a 400 INVALID_ARGUMENT, the code alone
	//does not identify it
	return classifyMessage(message)
}

func classifyMessage(message string) askModel.ErrorKind {
	switch {
	case strings.Contains(message, "API_KEY_INVALID") || strings.Contains(message, "API key not valid"):
		return askModel.InvalidCredential
	case strings.Contains(message, "QUOTA_EXCEEDED") ||
		strings.Contains(message, "RESOURCE_EXHAUSTED") ||
		strings.Contains(message, "429"):
		return askModel.RateLimited
	default:
		return askModel.ServiceUnavailable
	}
}
