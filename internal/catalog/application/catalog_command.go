// 生成摘要：商品目录命令服务，写库与事件发布走事务性 outbox，更新后失效缓存。
package application

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/ecommerce/internal/catalog/domain"
	"github.com/wyfcoding/pkg/contextx"
	"github.com/wyfcoding/pkg/logging"
)

// CreateProductCommand 创建商品命令
type CreateProductCommand struct {
	Name          string
	Description   string
	Brand         string
	Category      string
	Price         decimal.Decimal
	OriginalPrice decimal.Decimal
	Stock         int
	Tags          []string
	Featured      bool
}

// UpdateProductCommand 更新商品命令
type UpdateProductCommand struct {
	ID            uint
	Name          string
	Description   string
	Brand         string
	Category      string
	Price         decimal.Decimal
	OriginalPrice decimal.Decimal
	Stock         int
	Tags          []string
	Featured      bool
	Status        domain.ProductStatus
}

// CatalogCommandService 商品目录命令服务
type CatalogCommandService struct {
	repo      domain.ProductRepository
	cache     domain.ProductCache
	publisher domain.EventPublisher
}

// NewCatalogCommandService 创建商品目录命令服务实例
func NewCatalogCommandService(
	repo domain.ProductRepository,
	cache domain.ProductCache,
	publisher domain.EventPublisher,
) *CatalogCommandService {
	return &CatalogCommandService{repo: repo, cache: cache, publisher: publisher}
}

// CreateProduct 创建商品
func (s *CatalogCommandService) CreateProduct(ctx context.Context, cmd CreateProductCommand) (uint, error) {
	if !cmd.Price.IsPositive() {
		return 0, fmt.Errorf("price must be positive")
	}

	product := &domain.Product{
		Name:          cmd.Name,
		Description:   cmd.Description,
		Brand:         cmd.Brand,
		Category:      cmd.Category,
		Price:         cmd.Price,
		OriginalPrice: cmd.OriginalPrice,
		Stock:         cmd.Stock,
		Tags:          cmd.Tags,
		Featured:      cmd.Featured,
		Status:        domain.ProductStatusActive,
	}

	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.Save(txCtx, product); err != nil {
			return err
		}
		event := domain.ProductCreatedEvent{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price.StringFixed(2),
			Stock:     product.Stock,
			Category:  product.Category,
			Timestamp: time.Now(),
		}
		return s.publisher.PublishInTx(ctx, contextx.GetTx(txCtx), domain.ProductCreatedEventType, product.Name, event)
	})
	if err != nil {
		return 0, err
	}
	return product.ID, nil
}

// UpdateProduct 更新商品并失效读缓存
func (s *CatalogCommandService) UpdateProduct(ctx context.Context, cmd UpdateProductCommand) error {
	product, err := s.loadProduct(ctx, cmd.ID)
	if err != nil {
		return err
	}

	product.Name = cmd.Name
	product.Description = cmd.Description
	product.Brand = cmd.Brand
	product.Category = cmd.Category
	product.Price = cmd.Price
	product.OriginalPrice = cmd.OriginalPrice
	product.Stock = cmd.Stock
	product.Tags = cmd.Tags
	product.Featured = cmd.Featured
	if cmd.Status != "" {
		product.Status = cmd.Status
	}

	err = s.repo.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.Save(txCtx, product); err != nil {
			return err
		}
		event := domain.ProductUpdatedEvent{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price.StringFixed(2),
			Stock:     product.Stock,
			Category:  product.Category,
			Timestamp: time.Now(),
		}
		return s.publisher.PublishInTx(ctx, contextx.GetTx(txCtx), domain.ProductUpdatedEventType, product.Name, event)
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx, product.ID)
	return nil
}

// AdjustStock 按增量调整库存
func (s *CatalogCommandService) AdjustStock(ctx context.Context, productID uint, delta int) error {
	product, err := s.loadProduct(ctx, productID)
	if err != nil {
		return err
	}

	oldStock := product.AdjustStock(delta)

	err = s.repo.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.Save(txCtx, product); err != nil {
			return err
		}
		event := domain.ProductStockChangedEvent{
			ProductID: product.ID,
			OldStock:  oldStock,
			NewStock:  product.Stock,
			Timestamp: time.Now(),
		}
		return s.publisher.PublishInTx(ctx, contextx.GetTx(txCtx), domain.ProductStockChangedEventType, product.Name, event)
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx, product.ID)
	return nil
}

// DeleteProduct 删除商品
func (s *CatalogCommandService) DeleteProduct(ctx context.Context, productID uint) error {
	product, err := s.loadProduct(ctx, productID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, product.ID); err != nil {
		return err
	}
	s.invalidate(ctx, product.ID)
	return nil
}

func (s *CatalogCommandService) loadProduct(ctx context.Context, id uint) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

func (s *CatalogCommandService) invalidate(ctx context.Context, id uint) {
	if err := s.cache.Invalidate(ctx, id); err != nil {
		logging.Warn(ctx, "failed to invalidate product cache", "product_id", id, "error", err)
	}
}
