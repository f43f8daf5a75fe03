package memory

import (
	"context"
	"sort"

	"harvestguard-be/internal/entity"
	"harvestguard-be/internal/repository/contract"
)

// ProductRepository serves the built-in catalog when no database is
// configured.
type ProductRepository struct {
	byName map[string]entity.Product
}

func NewProductRepository(catalog []entity.Product) contract.ProductRepository {
	byName := make(map[string]entity.Product, len(catalog))
	for _, p := range catalog {
		byName[p.Name] = p
	}
	return &ProductRepository{byName: byName}
}

func (r *ProductRepository) FindByName(ctx context.Context, name string) (*entity.Product, error) {
	if p, ok := r.byName[name]; ok {
		product := p
		return &product, nil
	}
	return nil, nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	products := make([]*entity.Product, 0, len(r.byName))
	for name := range r.byName {
		p := r.byName[name]
		products = append(products, &p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	return products, nil
}
