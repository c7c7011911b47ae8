package store

import (
	"context"
	"sync"

	"github.com/akolanti/BrainAPI/internal/domain/askModel"
)

type InMemorySessionStore struct {
	mutex    *sync.RWMutex
	sessions map[string]askModel.Identity
}

func InitInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{
		mutex:    new(sync.RWMutex),
		sessions: make(map[string]askModel.Identity),
	}
}

func (store *InMemorySessionStore) CurrentIdentity(ctx context.Context, token string) (askModel.Identity, bool) {
	store.mutex.RLock()
	defer store.mutex.RUnlock()
	identity, found := store.sessions[token]
	return identity, found
}

func (store *InMemorySessionStore) SaveSession(ctx context.Context, token string, identity askModel.Identity) error {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	store.sessions[token] = identity
	return nil
}

type InMemoryTenantStore struct {
	mutex    *sync.RWMutex
	bindings map[string]string
}

func InitInMemoryTenantStore() *InMemoryTenantStore {
	return &InMemoryTenantStore{
		mutex:    new(sync.RWMutex),
		bindings: make(map[string]string),
	}
}

func (store *InMemoryTenantStore) OrganizationOf(ctx context.Context, identityId string) (string, bool) {
	store.mutex.RLock()
	defer store.mutex.RUnlock()
	orgId, found := store.bindings[identityId]
	if orgId == "" {
		return "", false
	}
	return orgId, found
}

func (store *InMemoryTenantStore) BindOrganization(ctx context.Context, identityId string, orgId string) error {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	store.bindings[identityId] = orgId
	return nil
}
