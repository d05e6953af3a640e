package session_test

import (
	"context"
	"errors"
	"testing"

	model "github.com/syncailabs/mitra-backend/internal/model/dialogue"
	"github.com/syncailabs/mitra-backend/internal/service/session"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()

	sess := model.NewSession("visitor-1")
	sess.BeginOnboarding()
	sess.Onboarding.Collected["name"] = "John"
	sess.Onboarding.StepIndex = 1

	if err := store.Put(ctx, sess.ID, sess); err != nil {
		t.Fatalf("Put err: %v", err)
	}

	got, err := store.Get(ctx, "visitor-1")
	if err != nil {
		t.Fatalf("Get err: %v", err)
	}
	if got.Onboarding == nil || got.Onboarding.StepIndex != 1 {
		t.Fatalf("unexpected onboarding state: %+v", got.Onboarding)
	}
	if got.Onboarding.Collected["name"] != "John" {
		t.Fatalf("unexpected collected values: %+v", got.Onboarding.Collected)
	}
}

func TestMemoryStoreNotFound(t *testing.T) {
	store := session.NewMemoryStore()

	_, err := store.Get(context.Background(), "missing")
	if !errors.Is(err, session.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestMemoryStoreIsolatesCallers(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()

	sess := model.NewSession("visitor-1")
	sess.BeginFlow()
	sess.Flow.Answers = append(sess.Flow.Answers, "FinTech")
	if err := store.Put(ctx, sess.ID, sess); err != nil {
		t.Fatalf("Put err: %v", err)
	}

	// Mutating the original after Put must not leak into the store.
	sess.Flow.Answers[0] = "mutated"
	sess.Flow.Stage = model.FlowStageAsking

	got, err := store.Get(ctx, "visitor-1")
	if err != nil {
		t.Fatalf("Get err: %v", err)
	}
	if got.Flow.Answers[0] != "FinTech" {
		t.Fatalf("store leaked caller mutation: %+v", got.Flow)
	}
	if got.Flow.Stage != model.FlowStageConfirm {
		t.Fatalf("store leaked stage mutation: %q", got.Flow.Stage)
	}

	// And mutating a Get result must not affect subsequent reads.
	got.Flow.Answers[0] = "mutated again"
	again, _ := store.Get(ctx, "visitor-1")
	if again.Flow.Answers[0] != "FinTech" {
		t.Fatal("Get must return an independent copy")
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	store := session.NewMemoryStore()
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

	// Deleting again is a no-op.
	if err := store.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("Delete of missing id err: %v", err)
	}
}
