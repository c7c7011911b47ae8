package store_test

import (
	"context"
	"testing"

	"github.com/akolanti/BrainAPI/internal/config"
	"github.com/akolanti/BrainAPI/internal/data/redisStore"
	"github.com/akolanti/BrainAPI/internal/data/store"
	"github.com/akolanti/BrainAPI/internal/domain/askModel"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestRedisSessionStore_Lifecycle(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sessionStore := store.TestSessionStore(redisStore.NewTestStore(client))

	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")
	identity := askModel.Identity{Id: "user-42"}

	t.Run("Save and Resolve Roundtrip", func(t *testing.T) {
		if err := sessionStore.SaveSession(ctx, "token-abc", identity); err != nil {
			t.Fatalf("SaveSession failed: %v", err)
		}

		got, ok := sessionStore.CurrentIdentity(ctx, "token-abc")
		if !ok {
			t.Fatal("session was saved but not resolved")
		}
		if got.Id != identity.Id {
			t.Errorf("identity got %s, want %s", got.Id, identity.Id)
		}
	})

	t.Run("Unknown Token", func(t *testing.T) {
		if _, ok := sessionStore.CurrentIdentity(ctx, "ghost-token"); ok {
			t.Error("expected ok=false for an unknown token")
		}
	})

	t.Run("Empty Token", func(t *testing.T) {
		if _, ok := sessionStore.CurrentIdentity(ctx, ""); ok {
			t.Error("expected ok=false for an empty token")
		}
	})

	t.Run("Session Expiry", func(t *testing.T) {
		mr.FastForward(config.RedisSessionTTL * 2)

		if _, ok := sessionStore.CurrentIdentity(ctx, "token-abc"); ok {
			t.Error("expected ok=false after the session TTL elapsed")
		}
	})
}

func TestRedisTenantStore_Lifecycle(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	tenantStore := store.TestTenantStore(redisStore.NewTestStore(client))

	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")

	t.Run("Bind and Resolve Roundtrip", func(t *testing.T) {
		if err := tenantStore.BindOrganization(ctx, "user-1", "org-1"); err != nil {
			t.Fatalf("BindOrganization failed: %v", err)
		}

		orgId, ok := tenantStore.OrganizationOf(ctx, "user-1")
		if !ok {
			t.Fatal("binding was saved but not resolved")
		}
		if orgId != "org-1" {
			t.Errorf("orgId got %s, want org-1", orgId)
		}
	})

	t.Run("Unbound Identity Fails Closed", func(t *testing.T) {
		if _, ok := tenantStore.OrganizationOf(ctx, "user-without-org"); ok {
			t.Error("expected ok=false for an identity without an organization")
		}
	})

	t.Run("Store Offline Fails Closed", func(t *testing.T) {
		mr.Close()

		if _, ok := tenantStore.OrganizationOf(ctx, "user-1"); ok {
			t.Error("expected ok=false when the store is unreachable")
		}
	})
}
