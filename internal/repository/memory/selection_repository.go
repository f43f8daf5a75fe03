package memory

import (
	"context"

	"harvestguard-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

// SelectionRepository is the in-process store used in tests and as a
// degraded-mode fallback when Redis is unreachable. Entries never expire.
type SelectionRepository struct {
	cache *cache.Cache
}

func NewSelectionRepository() contract.SelectionRepository {
	return &SelectionRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (r *SelectionRepository) Get(ctx context.Context, key string) (string, error) {
	if x, found := r.cache.Get(key); found {
		return x.(string), nil
	}
	return "", nil
}

func (r *SelectionRepository) Set(ctx context.Context, key, value string) error {
	r.cache.Set(key, value, cache.NoExpiration)
	return nil
}

func (r *SelectionRepository) Remove(ctx context.Context, key string) error {
	r.cache.Delete(key)
	return nil
}
