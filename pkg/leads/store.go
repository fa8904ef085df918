package leads

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/plinyoo/starfield/pkg/errors"
)

// Store persists leads.
type Store interface {
	// Save stores a new lead. Saving an ID twice is a CONFLICT error.
	Save(ctx context.Context, l *Lead) error
	// List returns leads newest first.
	List(ctx context.Context, opts ListOptions) ([]Lead, error)
	Close() error
}

// MemoryStore keeps leads in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	leads map[uuid.UUID]Lead
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{leads: make(map[uuid.UUID]Lead)}
}

func (s *MemoryStore) Save(_ context.Context, l *Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.leads[l.ID]; exists {
		return errors.New(errors.ErrCodeConflict, "lead %s already exists", l.ID)
	}
	s.leads[l.ID] = *l
	return nil
}

func (s *MemoryStore) List(_ context.Context, opts ListOptions) ([]Lead, error) {
	s.mu.RLock()
	out := make([]Lead, 0, len(s.leads))
	for _, l := range s.leads {
		if opts.FormType != "" && l.FormType != opts.FormType {
			continue
		}
		out = append(out, l)
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b Lead) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})
	if n := opts.limit(); len(out) > n {
		out = out[:n]
	}
	return out, nil
}

// Len returns the number of stored leads.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.leads)
}

func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
