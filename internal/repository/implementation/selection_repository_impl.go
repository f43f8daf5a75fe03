// FILE: internal/repository/implementation/selection_repository_impl.go
// Redis-backed implementation of SelectionRepository
package implementation

import (
	"context"
	"errors"

	"harvestguard-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces the selection keys inside a shared Redis instance.
const keyPrefix = "harvestguard:"

type SelectionRepositoryImpl struct {
	rdb *redis.Client
}

func NewSelectionRepository(rdb *redis.Client) contract.SelectionRepository {
	return &SelectionRepositoryImpl{rdb: rdb}
}

func (r *SelectionRepositoryImpl) Get(ctx context.Context, key string) (string, error) {
	val, err := r.rdb.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *SelectionRepositoryImpl) Set(ctx context.Context, key, value string) error {
	// No TTL: the selection survives restarts the way localStorage survives
	// page reloads.
	return r.rdb.Set(ctx, keyPrefix+key, value, 0).Err()
}

func (r *SelectionRepositoryImpl) Remove(ctx context.Context, key string) error {
	return r.rdb.Del(ctx, keyPrefix+key).Err()
}
