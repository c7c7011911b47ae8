package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/akolanti/BrainAPI/internal/config"
	"github.com/akolanti/BrainAPI/internal/data/redisStore"
	"github.com/akolanti/BrainAPI/internal/domain/askModel"
	"github.com/akolanti/BrainAPI/pkg/logger_i"
)

// RedisDocumentStore keeps one JSON blob per document and one sorted set per
// organization (scored by creation time). Reads only ever touch the caller's
// own organization set, so tenant isolation holds at the key level.
type RedisDocumentStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisDocumentStore(ctx context.Context) *RedisDocumentStore {
	internal := redisStore.GetRedisStore(ctx, config.RedisDocumentStore)
	if internal == nil {
		return nil
	}
	return &RedisDocumentStore{
		store:  internal,
		logger: logger_i.NewLogger("DocumentStore"),
	}
}

func documentKey(docId string) string {
	return "document:" + docId
}

func orgDocumentsKey(orgId string) string {
	return "org:" + orgId + ":documents"
}

func (s *RedisDocumentStore) SaveDocument(ctx context.Context, doc askModel.Document) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "document Id", doc.Id)
	log.Debug("saving document")

	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	if err = s.store.Set(ctx, documentKey(doc.Id), data, 0); err != nil {
		return err
	}

	err = s.store.SortedAdd(ctx, orgDocumentsKey(doc.OrganizationId), doc.Id, float64(doc.CreatedAt.UnixNano()))
	if err == nil {
		log.Debug("Saved document to Redis")
	}
	return err
}

func (s *RedisDocumentStore) FetchRecentDocuments(ctx context.Context, orgId string, limit int) ([]askModel.Document, error) {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "org Id", orgId)
	log.Debug("fetching recent documents", "limit", limit)

	ids, err := s.store.SortedTopN(ctx, orgDocumentsKey(orgId), limit)
	if err != nil {
		return nil, fmt.Errorf("listing organization documents: %w", err)
	}

	documents := make([]askModel.Document, 0, len(ids))
	for _, id := range ids {
		val, err := s.store.Get(ctx, documentKey(id))
		if s.store.IsNil(err) {
			//index entry without a blob - drop the dangling reference and move on
			log.Warn("document index entry has no blob", "document Id", id)
			_ = s.store.SortedRemove(ctx, orgDocumentsKey(orgId), id)
			continue
		} else if err != nil {
			return nil, fmt.Errorf("reading document %s: %w", id, err)
		}

		var doc askModel.Document
		if err := json.Unmarshal([]byte(val), &doc); err != nil {
			return nil, fmt.Errorf("decoding document %s: %w", id, err)
		}
		documents = append(documents, doc)
	}

	log.Debug("fetched documents", "count", len(documents))
	return documents, nil
}

func TestDocumentStore(store *redisStore.Store) *RedisDocumentStore {
	return &RedisDocumentStore{
		store:  store,
		logger: logger_i.NewLogger("test document store"),
	}
}
