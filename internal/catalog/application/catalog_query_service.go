// 生成摘要：商品目录查询服务，单品走 redis 读缓存，搜索在内存打分。
package application

import (
	"context"

	"github.com/wyfcoding/ecommerce/internal/catalog/domain"
	"github.com/wyfcoding/pkg/logging"
)

// CatalogQueryService 商品目录查询服务
type CatalogQueryService struct {
	repo  domain.ProductRepository
	cache domain.ProductCache
}

// NewCatalogQueryService 创建商品目录查询服务实例
func NewCatalogQueryService(repo domain.ProductRepository, cache domain.ProductCache) *CatalogQueryService {
	return &CatalogQueryService{repo: repo, cache: cache}
}

// GetProduct 按 ID 查询，缓存未命中时回源并回填。
// 购物车和结算服务取价格库存都走这里。
func (s *CatalogQueryService) GetProduct(ctx context.Context, id uint) (*ProductDTO, error) {
	cached, err := s.cache.Get(ctx, id)
	if err != nil {
		logging.Warn(ctx, "product cache read failed", "product_id", id, "error", err)
	}
	if cached != nil {
		return toProductDTO(cached), nil
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	if err := s.cache.Set(ctx, product); err != nil {
		logging.Warn(ctx, "product cache write failed", "product_id", id, "error", err)
	}
	return toProductDTO(product), nil
}

// ListProducts 分页列出上架商品
func (s *CatalogQueryService) ListProducts(ctx context.Context, page, pageSize int) ([]*ProductDTO, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	products, total, err := s.repo.List(ctx, domain.ProductStatusActive, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, err
	}
	return toProductDTOs(products), total, nil
}

// SearchProducts 搜索上架商品
func (s *CatalogQueryService) SearchProducts(ctx context.Context, query string, filters domain.Filters, sortBy domain.SortBy) ([]*ProductDTO, error) {
	products, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	matched := domain.Search(products, query, filters, sortBy)
	return toProductDTOs(matched), nil
}
