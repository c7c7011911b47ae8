package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/akolanti/BrainAPI/internal/domain/askModel"
	"google.golang.org/genai"
)

func TestClassify_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected askModel.ErrorKind
	}{
		{
			name:     "Gemini_Rate_Limit_Code",
			err:      genai.APIError{Code: 429, Message: "rate limit", Status: "RESOURCE_EXHAUSTED"},
			expected: askModel.RateLimited,
		},
		{
			name:     "Gemini_Unauthorized_Code",
			err:      genai.APIError{Code: 401, Message: "unauthorized", Status: "UNAUTHENTICATED"},
			expected: askModel.InvalidCredential,
		},
		{
			name:     "Gemini_Bad_Key_As_Bad_Request",
			err:      genai.APIError{Code: 400, Message: "API key not valid. Please pass a valid API key.", Status: "INVALID_ARGUMENT"},
			expected: askModel.InvalidCredential,
		},
		{
			name:     "Gemini_Quota_Status_Marker",
			err:      genai.APIError{Code: 400, Message: "try again later", Status: "RESOURCE_EXHAUSTED"},
			expected: askModel.RateLimited,
		},
		{
			name:     "Wrapped_Gemini_Error",
			err:      fmt.Errorf("generate content: %w", genai.APIError{Code: 403, Message: "forbidden", Status: "PERMISSION_DENIED"}),
			expected: askModel.InvalidCredential,
		},
		{
			name:     "Plain_Invalid_Key_Marker",
			err:      errors.New("API_KEY_INVALID"),
			expected: askModel.InvalidCredential,
		},
		{
			name:     "Plain_Quota_Marker",
			err:      errors.New("QUOTA_EXCEEDED for the project"),
			expected: askModel.RateLimited,
		},
		{
			name:     "Plain_429_Marker",
			err:      errors.New("unexpected status 429"),
			expected: askModel.RateLimited,
		},
		{
			name:     "Unknown_Failure",
			err:      errors.New("connection reset by peer"),
			expected: askModel.ServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.expected {
				t.Errorf("Classify got %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestClassifyStatusCode(t *testing.T) {
	if got := classifyStatusCode(429, ""); got != askModel.RateLimited {
		t.Errorf("429 got %s, want %s", got, askModel.RateLimited)
	}
	if got := classifyStatusCode(500, "internal"); got != askModel.ServiceUnavailable {
		t.Errorf("500 got %s, want %s", got, askModel.ServiceUnavailable)
	}
}
