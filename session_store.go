package goShop

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MrEthical07/goShop/session"
)

// SessionStore is the single source of truth for "who is logged in". It
// holds the identity and bearer credential in memory, persists them
// write-through via a [session.Backend], and exposes the read-only
// [SessionSnapshot] consumers render from.
//
// All mutation goes through Initialize, Login, and Logout; the request
// gateway only ever reads the credential via [SessionStore.Token].
//
//	Docs: docs/session.md
type SessionStore struct {
	mu      sync.RWMutex
	backend session.Backend

	identity    *Identity
	credential  string
	state       SessionState
	initialized bool

	audit   *auditDispatcher
	metrics *Metrics
}

// NewSessionStore creates a [SessionStore] over the given backend. A nil
// backend falls back to an in-memory record that does not survive the
// process.
func NewSessionStore(backend session.Backend) *SessionStore {
	if backend == nil {
		backend = session.NewMemoryBackend()
	}
	return &SessionStore{
		backend: backend,
		state:   StateUninitialized,
	}
}

func (s *SessionStore) setObservers(audit *auditDispatcher, metrics *Metrics) {
	s.audit = audit
	s.metrics = metrics
}

// Initialize loads the persisted record and adopts it when, and only when,
// both entries are present and the identity deserializes. A corrupt or
// half-present record is discarded from persistence and the session comes up
// anonymous; corruption is never surfaced to the user. The initializing flag
// flips to false exactly once regardless of outcome.
//
// Initialize is meant to be called once per process lifetime; a second call
// returns [ErrAlreadyInitialized] without touching state.
func (s *SessionStore) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return ErrAlreadyInitialized
	}
	s.initialized = true
	s.state = StateInitializing

	rec, err := s.backend.Load(ctx)
	if err != nil {
		// Unreachable storage adopts nothing; the session starts
		// anonymous and the error is reported, not hidden.
		s.state = StateAnonymous
		return fmt.Errorf("session restore: %w", err)
	}

	if rec.IsZero() {
		s.state = StateAnonymous
		return nil
	}

	if !rec.Complete() {
		return s.discardLocked(ctx, "half-present record")
	}

	id, err := session.DecodeIdentity(rec.User)
	if err != nil {
		return s.discardLocked(ctx, "identity decode failed")
	}

	s.credential = rec.Token
	s.identity = identityFromRecord(id)
	s.state = StateAuthenticated

	s.metrics.Inc(MetricSessionRestored)
	s.audit.emit(ctx, auditEventSessionRestored, true, s.identity.Email, nil, nil)

	return nil
}

// discardLocked clears both persisted entries and settles on Anonymous.
// Caller holds the write lock.
func (s *SessionStore) discardLocked(ctx context.Context, reason string) error {
	s.identity = nil
	s.credential = ""
	s.state = StateAnonymous

	s.metrics.Inc(MetricSessionDiscarded)
	s.audit.emit(ctx, auditEventSessionDiscarded, false, "", ErrSessionCorrupt, func() map[string]string {
		return map[string]string{"reason": reason}
	})

	if err := s.backend.Clear(ctx); err != nil {
		return fmt.Errorf("session discard: %w", err)
	}
	return nil
}

// Login unconditionally replaces the in-memory identity and credential,
// then persists both entries before returning. When the persistence write
// fails, memory stays authoritative and the error is returned: the
// in-memory/persisted divergence lasts until the next Login or Logout.
//
// Postcondition: Snapshot().IsAuthenticated == true.
func (s *SessionStore) Login(ctx context.Context, credential string, identity Identity) error {
	if credential == "" {
		return errors.New("login requires a credential")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := identity
	s.identity = &id
	s.credential = credential
	s.state = StateAuthenticated

	encoded, err := session.EncodeIdentity(identityToRecord(identity))
	if err != nil {
		return fmt.Errorf("session persist: %w", err)
	}

	if err := s.backend.Save(ctx, session.Record{Token: credential, User: encoded}); err != nil {
		return fmt.Errorf("session persist: %w", err)
	}

	s.audit.emit(ctx, auditEventSessionAdopted, true, identity.Email, nil, nil)

	return nil
}

// Logout unconditionally clears the in-memory identity and credential, then
// removes both persisted entries. Safe to call when already logged out.
//
// Postcondition: Snapshot().IsAuthenticated == false.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := ""
	if s.identity != nil {
		email = s.identity.Email
	}

	s.identity = nil
	s.credential = ""
	if s.state != StateUninitialized && s.state != StateInitializing {
		s.state = StateAnonymous
	}

	if err := s.backend.Clear(ctx); err != nil {
		return fmt.Errorf("session clear: %w", err)
	}

	s.metrics.Inc(MetricLogout)
	s.audit.emit(ctx, auditEventLogout, true, email, nil, nil)

	return nil
}

// Snapshot returns the session tuple by value. The identity is a copy;
// callers cannot mutate store state through it.
func (s *SessionStore) Snapshot() SessionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := SessionSnapshot{
		Credential:      s.credential,
		IsAuthenticated: s.credential != "",
		IsInitializing:  s.state == StateInitializing,
		State:           s.state,
	}
	if s.identity != nil {
		id := *s.identity
		snap.Identity = &id
	}
	return snap
}

// Token returns the current credential, or "" when anonymous. The gateway
// calls this on every outbound request and never caches the result.
func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential
}

func identityToRecord(id Identity) session.Identity {
	return session.Identity{
		ID:        id.ID,
		Email:     id.Email,
		Role:      id.Role,
		FirstName: id.FirstName,
		LastName:  id.LastName,
		CreatedAt: id.CreatedAt,
	}
}

func identityFromRecord(id session.Identity) *Identity {
	return &Identity{
		ID:        id.ID,
		Email:     id.Email,
		Role:      id.Role,
		FirstName: id.FirstName,
		LastName:  id.LastName,
		CreatedAt: id.CreatedAt,
	}
}
