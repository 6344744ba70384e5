package domain

import "context"

// ProductRepository 商品仓储
type ProductRepository interface {
	// WithTx 在单个数据库事务内执行 fn，事务通过 context 传递
	WithTx(ctx context.Context, fn func(txCtx context.Context) error) error
	Save(ctx context.Context, product *Product) error
	// GetByID 商品不存在时返回 (nil, nil)
	GetByID(ctx context.Context, id uint) (*Product, error)
	Delete(ctx context.Context, id uint) error
	// List 按上架状态分页列出
	List(ctx context.Context, status ProductStatus, offset, limit int) ([]*Product, int64, error)
	// ListActive 列出全部上架商品，搜索在内存里打分排序
	ListActive(ctx context.Context) ([]*Product, error)
}

// ProductCache 商品读缓存，更新时失效
type ProductCache interface {
	// Get 未命中时返回 (nil, nil)
	Get(ctx context.Context, id uint) (*Product, error)
	Set(ctx context.Context, product *Product) error
	Invalidate(ctx context.Context, id uint) error
}
