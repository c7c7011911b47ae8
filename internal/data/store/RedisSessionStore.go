package store

import (
	"context"
	"encoding/json"

	"github.com/akolanti/BrainAPI/internal/config"
	"github.com/akolanti/BrainAPI/internal/data/redisStore"
	"github.com/akolanti/BrainAPI/internal/domain/askModel"
	"github.com/akolanti/BrainAPI/pkg/logger_i"
)

// RedisSessionStore resolves opaque bearer tokens to verified identities.
// Sessions are written by the external auth provider (or by SaveSession in
// dev setups); this service only validates and reads them.
type RedisSessionStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisSessionStore(ctx context.Context) *RedisSessionStore {
	internal := redisStore.GetRedisStore(ctx, config.RedisSessionStore)
	if internal == nil {
		return nil
	}
	return &RedisSessionStore{
		store:  internal,
		logger: logger_i.NewLogger("SessionStore"),
	}
}

func sessionKey(token string) string {
	return "session:" + token
}

func (s *RedisSessionStore) CurrentIdentity(ctx context.Context, token string) (askModel.Identity, bool) {
	var identity askModel.Identity
	if token == "" {
		return identity, false
	}

	val, err := s.store.Get(ctx, sessionKey(token))
	if s.store.IsNil(err) {
		return identity, false
	} else if err != nil {
		s.logger.Error("session lookup failed", "error", err)
		return identity, false
	}

	if err := json.Unmarshal([]byte(val), &identity); err != nil {
		s.logger.Error("corrupt session payload", "error", err)
		return identity, false
	}
	return identity, identity.Id != ""
}

func (s *RedisSessionStore) SaveSession(ctx context.Context, token string, identity askModel.Identity) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, sessionKey(token), data, config.RedisSessionTTL)
}

func TestSessionStore(store *redisStore.Store) *RedisSessionStore {
	return &RedisSessionStore{
		store:  store,
		logger: logger_i.NewLogger("test session store"),
	}
}
