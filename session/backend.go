package session

import (
	"context"
	"errors"
	"sync"
)

// ErrStoreUnavailable wraps transport-level failures of a persistence
// backend (unreadable file, unreachable redis). It never signals a corrupt
// record; that is [ErrDecode] territory, decided by the caller.
var ErrStoreUnavailable = errors.New("session storage unavailable")

// Backend is the persistence contract for the session record. All three
// operations act on the token and user entries as a unit: Save writes both,
// Clear removes both, Load returns both (or a zero [Record] when absent).
//
// Backends never validate the record. A half-present record is returned
// as-is so the caller can observe and discard it.
type Backend interface {
	Load(ctx context.Context) (Record, error)
	Save(ctx context.Context, rec Record) error
	Clear(ctx context.Context) error
}

// MemoryBackend is a process-local [Backend] used in tests and as the
// default when no durable backend is configured.
type MemoryBackend struct {
	mu  sync.RWMutex
	rec Record
	set bool
}

// NewMemoryBackend describes the newmemorybackend operation and its observable behavior.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

// Load describes the load operation and its observable behavior.
func (b *MemoryBackend) Load(ctx context.Context) (Record, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.set {
		return Record{}, nil
	}
	return b.rec, nil
}

// Save describes the save operation and its observable behavior.
func (b *MemoryBackend) Save(ctx context.Context, rec Record) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rec = rec
	b.set = true
	return nil
}

// Clear describes the clear operation and its observable behavior.
func (b *MemoryBackend) Clear(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rec = Record{}
	b.set = false
	return nil
}
