// Package session provides per-visitor storage for dialogue state. The core
// treats a session as exclusively owned for the duration of a turn; stores only
// need read-your-own-write consistency per key.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/syncailabs/mitra-backend/internal/model/dialogue"
)

var ErrSessionNotFound = errors.New("session not found")

// Store persists session records keyed by the visitor's session id.
type Store interface {
	Get(ctx context.Context, id string) (*dialogue.Session, error)
	Put(ctx context.Context, id string, sess *dialogue.Session) error
	Delete(ctx context.Context, id string) error
}

// MemoryStore implements Store with an in-process map, suitable for
// development and tests.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*dialogue.Session
}

// NewMemoryStore bootstraps an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*dialogue.Session)}
}

// Get retrieves a copy of the stored session so callers can mutate it freely
// before writing it back.
func (s *MemoryStore) Get(_ context.Context, id string) (*dialogue.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return cloneSession(sess), nil
}

// Put stores a copy of the session under the given id.
func (s *MemoryStore) Put(_ context.Context, id string, sess *dialogue.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = cloneSession(sess)
	return nil
}

// Delete removes the session. Deleting a missing id is not an error.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func cloneSession(in *dialogue.Session) *dialogue.Session {
	if in == nil {
		return nil
	}
	out := *in
	if in.Onboarding != nil {
		ob := *in.Onboarding
		if in.Onboarding.Collected != nil {
			ob.Collected = make(map[string]string, len(in.Onboarding.Collected))
			for k, v := range in.Onboarding.Collected {
				ob.Collected[k] = v
			}
		}
		out.Onboarding = &ob
	}
	if in.Flow != nil {
		f := *in.Flow
		f.Answers = append([]string(nil), in.Flow.Answers...)
		out.Flow = &f
	}
	if in.Profile != nil {
		p := *in.Profile
		out.Profile = &p
	}
	return &out
}
