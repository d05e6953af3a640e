package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"

	model "github.com/syncailabs/mitra-backend/internal/model/dialogue"
	"github.com/syncailabs/mitra-backend/internal/service/session"
)

func newRedisStore(t *testing.T, opts ...session.RedisOption) (*session.RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	return session.NewRedisStoreFromClient(client, opts...), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	sess := model.NewSession("visitor-1")
	sess.BeginFlow()
	sess.Flow.Stage = model.FlowStageAsking
	sess.Flow.QuestionIndex = 2
	sess.Flow.Answers = []string{"FinTech", "Startup"}
	sess.Profile = &model.Profile{Name: "John", Phone: "+1 555-123-4567", Email: "john@x.com"}

	if err := store.Put(ctx, sess.ID, sess); err != nil {
		t.Fatalf("Put err: %v", err)
	}

	got, err := store.Get(ctx, "visitor-1")
	if err != nil {
		t.Fatalf("Get err: %v", err)
	}
	if got.Flow == nil || got.Flow.Stage != model.FlowStageAsking || got.Flow.QuestionIndex != 2 {
		t.Fatalf("unexpected flow state: %+v", got.Flow)
	}
	if len(got.Flow.Answers) != 2 || got.Flow.Answers[0] != "FinTech" {
		t.Fatalf("unexpected answers: %+v", got.Flow.Answers)
	}
	if got.Profile == nil || got.Profile.Name != "John" {
		t.Fatalf("unexpected profile: %+v", got.Profile)
	}
}

func TestRedisStoreNotFound(t *testing.T) {
	store, _ := newRedisStore(t)

	_, err := store.Get(context.Background(), "missing")
	if !errors.Is(err, session.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestRedisStoreDelete(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	sess := model.NewSession("visitor-1")
	if err := store.Put(ctx, sess.ID, sess); err != nil {
		t.Fatalf("Put err: %v", err)
	}
	if err := store.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("Delete err: %v", err)
	}
	if _, err := store.Get(ctx, sess.ID); !errors.Is(err, session.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
}

func TestRedisStoreAppliesTTL(t *testing.T) {
	store, mr := newRedisStore(t, session.WithTTL(time.Hour), session.WithPrefix("test:"))
	ctx := context.Background()

	sess := model.NewSession("visitor-1")
	if err := store.Put(ctx, sess.ID, sess); err != nil {
		t.Fatalf("Put err: %v", err)
	}

	ttl := mr.TTL("test:visitor-1")
	if ttl != time.Hour {
		t.Fatalf("expected 1h TTL, got %v", ttl)
	}

	mr.FastForward(2 * time.Hour)
	if _, err := store.Get(ctx, sess.ID); !errors.Is(err, session.ErrSessionNotFound) {
		t.Fatalf("expected expiry after fast forward, got %v", err)
	}
}
