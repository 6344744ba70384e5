package mysql

import (
	"context"
	"errors"

	"github.com/wyfcoding/ecommerce/internal/catalog/domain"
	"github.com/wyfcoding/pkg/contextx"
	"gorm.io/gorm"
)

type productRepository struct{ db *gorm.DB }

// NewProductRepository 创建商品 MySQL 仓储
func NewProductRepository(db *gorm.DB) domain.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := contextx.GetTx(ctx).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

func (r *productRepository) WithTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(contextx.WithTx(ctx, tx))
	})
}

func (r *productRepository) Save(ctx context.Context, product *domain.Product) error {
	model, err := toProductModel(product)
	if err != nil {
		return err
	}
	db := r.getDB(ctx)
	if model.ID == 0 {
		if err := db.Create(model).Error; err != nil {
			return err
		}
		product.ID = model.ID
		product.CreatedAt = model.CreatedAt
		product.UpdatedAt = model.UpdatedAt
		return nil
	}
	return db.Save(model).Error
}

func (r *productRepository) GetByID(ctx context.Context, id uint) (*domain.Product, error) {
	var model ProductModel
	err := r.getDB(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toProduct(&model)
}

func (r *productRepository) Delete(ctx context.Context, id uint) error {
	return r.getDB(ctx).Delete(&ProductModel{}, id).Error
}

func (r *productRepository) List(ctx context.Context, status domain.ProductStatus, offset, limit int) ([]*domain.Product, int64, error) {
	db := r.getDB(ctx).Model(&ProductModel{})
	if status != "" {
		db = db.Where("status = ?", string(status))
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []ProductModel
	if err := db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&models).Error; err != nil {
		return nil, 0, err
	}
	products, err := toProducts(models)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *productRepository) ListActive(ctx context.Context) ([]*domain.Product, error) {
	var models []ProductModel
	err := r.getDB(ctx).
		Where("status = ?", string(domain.ProductStatusActive)).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toProducts(models)
}

func toProducts(models []ProductModel) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0, len(models))
	for i := range models {
		product, err := toProduct(&models[i])
		if err != nil {
			return nil, err
		}
		out = append(out, product)
	}
	return out, nil
}
