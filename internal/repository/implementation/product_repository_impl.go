// FILE: internal/repository/implementation/product_repository_impl.go
// Implementation of ProductRepository
package implementation

import (
	"context"
	"errors"

	"harvestguard-be/internal/entity"
	"harvestguard-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepositoryImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) contract.ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

// MigrateAndSeed creates the products table and upserts the built-in catalog.
// Existing rows keep any manual edits to non-conflict columns untouched only
// when the name is new; catalog rows are the source of truth otherwise.
func MigrateAndSeed(db *gorm.DB, catalog []entity.Product) error {
	if err := db.AutoMigrate(&entity.Product{}); err != nil {
		return err
	}
	if len(catalog) == 0 {
		return nil
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		UpdateAll: true,
	}).Create(&catalog).Error
}

func (r *ProductRepositoryImpl) FindByName(ctx context.Context, name string) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Product, error) {
	var products []*entity.Product
	if err := r.db.WithContext(ctx).Order("name asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
