package knowledge

import (
	"context"
	"time"

	"github.com/akolanti/BrainAPI/internal/adapter/utils"
	"github.com/akolanti/BrainAPI/internal/config"
	"github.com/akolanti/BrainAPI/internal/domain/askModel"
	"github.com/akolanti/BrainAPI/internal/metrics"
	"github.com/akolanti/BrainAPI/pkg/logger_i"
)

func (s *service) askError(log *logger_i.Logger, kind askModel.ErrorKind, err error, elapsed time.Duration) *askModel.AskError {
	log.Error("Ask pipeline failed", "kind", kind, "error", err)
	metrics.CaptureAskMetrics(string(kind), elapsed)
	return askModel.NewAskError(kind, err)
}

func (s *service) executeTenantStep(ctx context.Context, log *logger_i.Logger, identity askModel.Identity) (string, bool) {
	log.Debug("Ask", "Current Step", "TenantResolve")

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("tenant_lookup", time.Since(start)) }()

	return s.tenants.OrganizationOf(ctx, identity.Id)
}

func (s *service) executeFetchStep(ctx context.Context, log *logger_i.Logger, orgId string) ([]askModel.Document, error) {
	log.Debug("Ask", "Current Step", "DocumentFetch")

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("document_fetch", time.Since(start)) }()

	return s.documents.FetchRecentDocuments(ctx, orgId, config.MaxDocumentsPerRequest)
}

func (s *service) executeLLMStep(ctx context.Context, log *logger_i.Logger, systemInstruction string, question string) (string, error) {
	log.Debug("Ask", "Current Step", "LLMGeneration")

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("llm_generation", time.Since(start)) }()

	return s.llmProvider.Generate(ctx, systemInstruction, question)
}

func newDocument(orgId string, identity askModel.Identity, upload Upload) askModel.Document {
	return askModel.Document{
		Id:             utils.GetNewUUID(),
		OrganizationId: orgId,
		Title:          upload.Title,
		Content:        upload.Content,
		FileSize:       upload.FileSize,
		CreatedBy:      identity.Id,
		CreatedAt:      time.Now(),
	}
}
