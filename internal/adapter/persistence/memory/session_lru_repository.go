// Package memory keeps selection sessions in process memory.
package memory

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"webquote/internal/domain/entities"
	"webquote/internal/usecase/interfaces"
)

// SessionLRURepository is a bounded session store. When full, the least
// recently used session is evicted.
type SessionLRURepository struct {
	cache *lru.Cache
}

var _ interfaces.ISessionRepository = (*SessionLRURepository)(nil)

func NewSessionLRURepository(capacity int) (*SessionLRURepository, error) {
	cache, err := lru.New(capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create session cache: %w", err)
	}
	return &SessionLRURepository{cache: cache}, nil
}

func (r *SessionLRURepository) Save(_ context.Context, s entities.Session) error {
	r.cache.Add(s.ID, s)
	return nil
}

func (r *SessionLRURepository) Get(_ context.Context, id string) (entities.Session, error) {
	v, ok := r.cache.Get(id)
	if !ok {
		return entities.Session{}, nil
	}
	s, ok := v.(entities.Session)
	if !ok {
		return entities.Session{}, fmt.Errorf("unexpected session value %T", v)
	}
	return s, nil
}

func (r *SessionLRURepository) Delete(_ context.Context, id string) (bool, error) {
	if !r.cache.Contains(id) {
		return false, nil
	}
	r.cache.Remove(id)
	return true, nil
}

func (r *SessionLRURepository) Len() int {
	return r.cache.Len()
}
