package knowledge_test

import (
	"context"

	"github.com/akolanti/BrainAPI/internal/domain/askModel"
)

// MockTenantStore implements askModel.TenantStore
type MockTenantStore struct {
	// Control fields to simulate different behaviors
	OnOrganizationOf   func(ctx context.Context, identityId string) (string, bool)
	OnBindOrganization func(ctx context.Context, identityId string, orgId string) error
}

func (m *MockTenantStore) OrganizationOf(ctx context.Context, identityId string) (string, bool) {
	if m.OnOrganizationOf != nil {
		return m.OnOrganizationOf(ctx, identityId)
	}
	return "org-default", true
}

func (m *MockTenantStore) BindOrganization(ctx context.Context, identityId string, orgId string) error {
	if m.OnBindOrganization != nil {
		return m.OnBindOrganization(ctx, identityId, orgId)
	}
	return nil
}

// MockDocumentStore implements askModel.DocumentStore
type MockDocumentStore struct {
	OnSaveDocument         func(ctx context.Context, doc askModel.Document) error
	OnFetchRecentDocuments func(ctx context.Context, orgId string, limit int) ([]askModel.Document, error)

	FetchCalls int
	SavedDocs  []askModel.Document
}

func (m *MockDocumentStore) SaveDocument(ctx context.Context, doc askModel.Document) error {
	m.SavedDocs = append(m.SavedDocs, doc)
	if m.OnSaveDocument != nil {
		return m.OnSaveDocument(ctx, doc)
	}
	return nil
}

func (m *MockDocumentStore) FetchRecentDocuments(ctx context.Context, orgId string, limit int) ([]askModel.Document, error) {
	m.FetchCalls++
	if m.OnFetchRecentDocuments != nil {
		return m.OnFetchRecentDocuments(ctx, orgId, limit)
	}
	return nil, nil
}

// MockLLM implements llm.Provider
type MockLLM struct {
	OnGenerate func(ctx context.Context, systemInstruction string, question string) (string, error)

	CallCount             int
	LastSystemInstruction string
	LastQuestion          string
}

func (m *MockLLM) Generate(ctx context.Context, systemInstruction string, question string) (string, error) {
	m.CallCount++
	m.LastSystemInstruction = systemInstruction
	m.LastQuestion = question
	if m.OnGenerate != nil {
		return m.OnGenerate(ctx, systemInstruction, question)
	}
	return "mocked llm response", nil
}
