package tokens

import (
	"context"
	"sync"
)

type MemoryRepository struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{values: make(map[string]string)}
}

func (r *MemoryRepository) Get(_ context.Context, kind Kind) (string, bool, error) {
	key, err := kind.Key()
	if err != nil {
		return "", false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	v := r.values[key]
	return v, v != "", nil
}

func (r *MemoryRepository) Set(_ context.Context, kind Kind, value string) error {
	key, err := kind.Key()
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
	return nil
}

func (r *MemoryRepository) SetPair(_ context.Context, access, refresh string) error {
	accessKey, _ := Access.Key()
	refreshKey, _ := Refresh.Key()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[accessKey] = access
	r.values[refreshKey] = refresh
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, kind Kind) error {
	key, err := kind.Key()
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, key)
	return nil
}

func (r *MemoryRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.values)
	return nil
}
