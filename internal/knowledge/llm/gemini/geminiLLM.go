package gemini

import (
	"context"
	"errors"
	"sync"

	"github.com/akolanti/BrainAPI/internal/config"
	"github.com/akolanti/BrainAPI/internal/knowledge/llm"
	"github.com/akolanti/BrainAPI/pkg/logger_i"
	"google.golang.org/genai"
)

type llmClient struct {
	client    *genai.Client
	modelName string
}

var logger *logger_i.Logger
var geminiClient *llmClient
var once sync.Once

func GetGeminiClient(ctx context.Context, apikey string, modelName string) llm.Provider {
	once.Do(func() {
		logger = logger_i.NewLogger("llm_gemini")
		newGeminiClient(ctx, apikey, modelName)
	})

	if geminiClient == nil {
		return nil
	}
	return &llmClient{client: geminiClient.client, modelName: geminiClient.modelName}
}

func newGeminiClient(ctx context.Context, apikey string, modelName string) {

	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apikey})
	if err != nil {
		logger.Error("Error creating Gemini client:", "error", err)
		return
	}
	geminiClient = &llmClient{client: c, modelName: modelName}
	logger.Info("Gemini client created", "model", modelName)
	go closeClient(ctx, geminiClient)
}

func (c *llmClient) Generate(ctx context.Context, systemInstruction string, question string) (string, error) {
	contentConfig := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{
				{Text: systemInstruction},
			},
		},
		Temperature:     genai.Ptr(config.ModelTemperature),
		MaxOutputTokens: config.ModelMaxOutput,
	}

	result, err := c.client.Models.GenerateContent(
		ctx,
		c.modelName,
		genai.Text(question),
		contentConfig,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", errors.New("empty generation result")
	}
	return result.Text(), nil
}

func closeClient(ctx context.Context, llmC *llmClient) {
	<-ctx.Done()
	logger.Info("Closing Gemini client")
	llmC.client = nil
	llmC.modelName = ""
}
