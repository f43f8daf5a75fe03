package contract

import (
	"context"

	"harvestguard-be/internal/entity"
)

type ProductRepository interface {
	FindByName(ctx context.Context, name string) (*entity.Product, error)
	FindAll(ctx context.Context) ([]*entity.Product, error)
}
