package knowledge

import (
	"context"
	"strings"
	"time"

	"github.com/akolanti/BrainAPI/internal/config"
	"github.com/akolanti/BrainAPI/internal/domain/askModel"
	"github.com/akolanti/BrainAPI/internal/knowledge/llm"
	"github.com/akolanti/BrainAPI/internal/metrics"
	"github.com/akolanti/BrainAPI/pkg/logger_i"
)

// ModelClientConfig is injected at construction time. Presence of the
// credential is re-checked per request (cheap), everything else is fixed.
type ModelClientConfig struct {
	Provider  string
	APIKey    string
	ModelName string
}

func (c ModelClientConfig) Configured() bool {
	return c.APIKey != ""
}

// Upload is what survives of an uploaded file after extraction - the binary
// itself is never persisted.
type Upload struct {
	Title    string
	Content  string
	FileSize int64
}

// Service is the ask pipeline. Handlers only see this - they don't need to
// know the stores or the llm behind it.
type Service interface {
	Ask(ctx context.Context, identity askModel.Identity, question string) (string, *askModel.AskError)
	StoreUpload(ctx context.Context, identity askModel.Identity, upload Upload) *askModel.AskError
	ListDocuments(ctx context.Context, identity askModel.Identity) ([]askModel.Document, *askModel.AskError)
}

type service struct {
	tenants     askModel.TenantStore
	documents   askModel.DocumentStore
	llmProvider llm.Provider
	modelConfig ModelClientConfig
	logger      *logger_i.Logger
}

// NewService constructor
func NewService(tenants askModel.TenantStore, documents askModel.DocumentStore, provider llm.Provider, modelConfig ModelClientConfig) Service {
	return &service{
		tenants:     tenants,
		documents:   documents,
		llmProvider: provider,
		modelConfig: modelConfig,
		logger:      logger_i.NewLogger("Knowledge Service :"),
	}
}

// Ask runs the full pipeline for one question: tenant resolve, document
// fetch, context assembly, model call. Stages run strictly in this order,
// each on the previous one's output. Nothing is written anywhere, so
// cancellation needs no cleanup.
func (s *service) Ask(ctx context.Context, identity askModel.Identity, question string) (string, *askModel.AskError) {
	inMethodLogger := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "identity", identity.Id)
	start := time.Now()

	question = strings.TrimSpace(question)
	if question == "" {
		return "", s.askError(inMethodLogger, askModel.InvalidInput, nil, time.Since(start))
	}

	// credential presence is checked before any store read
	if !s.modelConfig.Configured() || s.llmProvider == nil {
		return "", s.askError(inMethodLogger, askModel.ServiceUnconfigured, nil, time.Since(start))
	}

	processContext, cancel := context.WithTimeout(ctx, config.LLMRequestTimeout)
	defer cancel()

	orgId, found := s.executeTenantStep(processContext, inMethodLogger, identity)
	if !found {
		return "", s.askError(inMethodLogger, askModel.TenantUnresolved, nil, time.Since(start))
	}

	documents, err := s.executeFetchStep(processContext, inMethodLogger, orgId)
	if err != nil {
		return "", s.askError(inMethodLogger, askModel.StoreUnavailable, err, time.Since(start))
	}

	metrics.CaptureContextSize(len(documents))
	if len(documents) == 0 {
		// empty knowledge base short-circuits before the model call
		inMethodLogger.Debug("No documents in knowledge base, returning canned answer")
		metrics.CaptureAskMetrics("no_documents", time.Since(start))
		return config.NoDocumentsAnswer, nil
	}

	systemInstruction := config.SystemPromptContract + AssembleDocumentContext(documents)

	answer, err := s.executeLLMStep(processContext, inMethodLogger, systemInstruction, question)
	if err != nil {
		return "", s.askError(inMethodLogger, llm.Classify(err), err, time.Since(start))
	}

	metrics.CaptureAskMetrics("success", time.Since(start))
	return answer, nil
}

func (s *service) StoreUpload(ctx context.Context, identity askModel.Identity, upload Upload) *askModel.AskError {
	inMethodLogger := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "identity", identity.Id)

	orgId, found := s.executeTenantStep(ctx, inMethodLogger, identity)
	if !found {
		inMethodLogger.Warn("Upload for identity without organization")
		return askModel.NewAskError(askModel.TenantUnresolved, nil)
	}

	doc := newDocument(orgId, identity, upload)

	start := time.Now()
	err := s.documents.SaveDocument(ctx, doc)
	metrics.CaptureExecutionMetrics("document_save", time.Since(start))
	if err != nil {
		inMethodLogger.Error("Saving document failed", "error", err)
		return askModel.NewAskError(askModel.StoreUnavailable, err)
	}

	inMethodLogger.Info("Stored document", "document Id", doc.Id, "title", doc.Title)
	return nil
}

func (s *service) ListDocuments(ctx context.Context, identity askModel.Identity) ([]askModel.Document, *askModel.AskError) {
	inMethodLogger := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "identity", identity.Id)

	orgId, found := s.executeTenantStep(ctx, inMethodLogger, identity)
	if !found {
		return nil, askModel.NewAskError(askModel.TenantUnresolved, nil)
	}

	documents, err := s.executeFetchStep(ctx, inMethodLogger, orgId)
	if err != nil {
		return nil, askModel.NewAskError(askModel.StoreUnavailable, err)
	}
	return documents, nil
}
