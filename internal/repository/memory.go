package repository

import (
	"context"
	"sync"
)

// MemoryAdapter keeps blobs in process memory. Used by tests and by the demo
// deployment that runs without durable storage.
type MemoryAdapter struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryAdapter returns an empty in-memory adapter.
func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{blobs: make(map[string][]byte)}
}

// Read returns the blob stored under key, if any.
func (a *MemoryAdapter) Read(_ context.Context, key string) ([]byte, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	blob, ok := a.blobs[key]
	if !ok {
		return nil, false
	}
	copied := make([]byte, len(blob))
	copy(copied, blob)
	return copied, true
}

// Write stores the blob under key, replacing any previous value.
func (a *MemoryAdapter) Write(_ context.Context, key string, blob []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	copied := make([]byte, len(blob))
	copy(copied, blob)
	a.blobs[key] = copied
	return nil
}
