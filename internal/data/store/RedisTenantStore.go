package store

import (
	"context"

	"github.com/akolanti/BrainAPI/internal/config"
	"github.com/akolanti/BrainAPI/internal/data/redisStore"
	"github.com/akolanti/BrainAPI/pkg/logger_i"
)

// RedisTenantStore holds the identity -> organization binding. Provisioning
// writes it, the ask/upload pipelines only read it.
type RedisTenantStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisTenantStore(ctx context.Context) *RedisTenantStore {
	internal := redisStore.GetRedisStore(ctx, config.RedisTenantStore)
	if internal == nil {
		return nil
	}
	return &RedisTenantStore{
		store:  internal,
		logger: logger_i.NewLogger("TenantStore"),
	}
}

func profileKey(identityId string) string {
	return "profile:" + identityId
}

func (s *RedisTenantStore) OrganizationOf(ctx context.Context, identityId string) (string, bool) {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "identity Id", identityId)

	orgId, err := s.store.Get(ctx, profileKey(identityId))
	if s.store.IsNil(err) {
		log.Warn("identity has no organization binding")
		return "", false
	} else if err != nil {
		//a failed lookup fails closed, same as a missing binding
		log.Error("tenant lookup failed", "error", err)
		return "", false
	}
	if orgId == "" {
		return "", false
	}
	return orgId, true
}

func (s *RedisTenantStore) BindOrganization(ctx context.Context, identityId string, orgId string) error {
	return s.store.Set(ctx, profileKey(identityId), orgId, 0)
}

func TestTenantStore(store *redisStore.Store) *RedisTenantStore {
	return &RedisTenantStore{
		store:  store,
		logger: logger_i.NewLogger("test tenant store"),
	}
}
