package application

import (
	"context"

	"github.com/wyfcoding/ecommerce/internal/catalog/domain"
)

// CatalogService 商品目录服务门面，整合命令服务和查询服务
type CatalogService struct {
	commandService *CatalogCommandService
	queryService   *CatalogQueryService
}

// NewCatalogService 创建商品目录服务门面实例
func NewCatalogService(
	repo domain.ProductRepository,
	cache domain.ProductCache,
	publisher domain.EventPublisher,
) *CatalogService {
	return &CatalogService{
		commandService: NewCatalogCommandService(repo, cache, publisher),
		queryService:   NewCatalogQueryService(repo, cache),
	}
}

// GetProduct 按 ID 查询
func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*ProductDTO, error) {
	return s.queryService.GetProduct(ctx, id)
}

// ListProducts 分页列出上架商品
func (s *CatalogService) ListProducts(ctx context.Context, page, pageSize int) ([]*ProductDTO, int64, error) {
	return s.queryService.ListProducts(ctx, page, pageSize)
}

// SearchProducts 搜索上架商品
func (s *CatalogService) SearchProducts(ctx context.Context, query string, filters domain.Filters, sortBy domain.SortBy) ([]*ProductDTO, error) {
	return s.queryService.SearchProducts(ctx, query, filters, sortBy)
}

// CreateProduct 创建商品
func (s *CatalogService) CreateProduct(ctx context.Context, cmd CreateProductCommand) (uint, error) {
	return s.commandService.CreateProduct(ctx, cmd)
}

// UpdateProduct 更新商品
func (s *CatalogService) UpdateProduct(ctx context.Context, cmd UpdateProductCommand) error {
	return s.commandService.UpdateProduct(ctx, cmd)
}

// AdjustStock 调整库存
func (s *CatalogService) AdjustStock(ctx context.Context, productID uint, delta int) error {
	return s.commandService.AdjustStock(ctx, productID, delta)
}

// DeleteProduct 删除商品
func (s *CatalogService) DeleteProduct(ctx context.Context, productID uint) error {
	return s.commandService.DeleteProduct(ctx, productID)
}
