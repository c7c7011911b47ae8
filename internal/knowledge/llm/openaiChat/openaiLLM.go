package openaiChat

import (
	"context"
	"errors"
	"sync"

	"github.com/akolanti/BrainAPI/internal/config"
	"github.com/akolanti/BrainAPI/internal/customHttpClient"
	"github.com/akolanti/BrainAPI/internal/knowledge/llm"
	"github.com/akolanti/BrainAPI/pkg/logger_i"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Alternate provider for deployments without Gemini access. Same contract,
// same decoding parameters.
type llmClient struct {
	client    openai.Client
	modelName string
}

var logger *logger_i.Logger
var openaiClient *llmClient
var once sync.Once

func GetOpenAIClient(apikey string, modelName string) llm.Provider {
	once.Do(func() {
		logger = logger_i.NewLogger("llm_openai")
		if apikey == "" {
			logger.Error("No OpenAI API key configured")
			return
		}
		client := openai.NewClient(
			option.WithAPIKey(apikey),
			option.WithHTTPClient(customHttpClient.PooledClient()),
		)
		openaiClient = &llmClient{client: client, modelName: modelName}
		logger.Info("OpenAI client created", "model", modelName)
	})

	if openaiClient == nil {
		return nil
	}
	return openaiClient
}

func (c *llmClient) Generate(ctx context.Context, systemInstruction string, question string) (string, error) {
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.modelName),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemInstruction),
			openai.UserMessage(question),
		},
		Temperature: openai.Float(float64(config.ModelTemperature)),
		MaxTokens:   openai.Int(int64(config.ModelMaxOutput)),
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("empty completion result")
	}
	return completion.Choices[0].Message.Content, nil
}
