package store

import (
	"context"
	"sort"
	"sync"

	"github.com/akolanti/BrainAPI/internal/domain/askModel"
	"github.com/akolanti/BrainAPI/pkg/logger_i"
)

var inMemLogger = logger_i.NewLogger("InMem DocumentStore")

type InMemoryDocumentStore struct {
	docMutex *sync.RWMutex
	orgDocs  map[string][]askModel.Document
}

func InitInMemoryDocumentStore() *InMemoryDocumentStore {
	return &InMemoryDocumentStore{
		docMutex: new(sync.RWMutex),
		orgDocs:  make(map[string][]askModel.Document),
	}
}

func (store *InMemoryDocumentStore) SaveDocument(ctx context.Context, doc askModel.Document) error {
	store.docMutex.Lock()
	defer store.docMutex.Unlock()
	store.orgDocs[doc.OrganizationId] = append(store.orgDocs[doc.OrganizationId], doc)
	inMemLogger.Info("Saved document to store", "document Id", doc.Id)
	return nil
}

func (store *InMemoryDocumentStore) FetchRecentDocuments(ctx context.Context, orgId string, limit int) ([]askModel.Document, error) {
	store.docMutex.RLock()
	defer store.docMutex.RUnlock()

	docs := make([]askModel.Document, len(store.orgDocs[orgId]))
	copy(docs, store.orgDocs[orgId])

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].CreatedAt.After(docs[j].CreatedAt)
	})
	if limit < len(docs) {
		docs = docs[:limit]
	}
	return docs, nil
}
