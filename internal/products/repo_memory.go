package products

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]ProductDocument
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]ProductDocument),
	}
}

// Upsert stores or replaces the document for its key.
func (r *MemoryRepo) Upsert(ctx context.Context, doc ProductDocument) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[doc.DocumentKey] = doc
	return nil
}

// GetByKey returns the document stored under key.
func (r *MemoryRepo) GetByKey(ctx context.Context, key string) (ProductDocument, error) {
	if err := ctx.Err(); err != nil {
		return ProductDocument{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.data[key]
	if !ok {
		return ProductDocument{}, ErrNotFound
	}
	return doc, nil
}
