package settings

import (
	"context"
	"sync"
)

// Repository persists the flat key/value game snapshot.
type Repository interface {
	// Load returns every stored key. An empty map means nothing was saved yet.
	Load(ctx context.Context) (map[string]string, error)
	// Save upserts every key in kv.
	Save(ctx context.Context, kv map[string]string) error
}

// MemoryRepository keeps the snapshot in process memory.
type MemoryRepository struct {
	mu sync.RWMutex
	kv map[string]string
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{kv: make(map[string]string)}
}

func (r *MemoryRepository) Load(_ context.Context) (map[string]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]string, len(r.kv))
	for k, v := range r.kv {
		out[k] = v
	}
	return out, nil
}

func (r *MemoryRepository) Save(_ context.Context, kv map[string]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for k, v := range kv {
		r.kv[k] = v
	}
	return nil
}
