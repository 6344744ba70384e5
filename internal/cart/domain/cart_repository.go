package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// CartRepository 购物车快照仓储。快照整体读写，最后写入者胜出。
type CartRepository interface {
	// GetByUserID 读取用户购物车；不存在时返回 nil, nil
	GetByUserID(ctx context.Context, userID string) (*Cart, error)
	Save(ctx context.Context, cart *Cart) error
	Delete(ctx context.Context, userID string) error
}

// CouponRepository 优惠券仓储
type CouponRepository interface {
	// GetByCode 按券码查找（大小写不敏感）；不存在时返回 nil, nil
	GetByCode(ctx context.Context, code string) (*Coupon, error)
	Save(ctx context.Context, coupon *Coupon) error
	List(ctx context.Context) ([]*Coupon, error)
	// IncrementUsage 累计用量。按 orderNo 幂等：同一订单重复投递只记一次。
	IncrementUsage(ctx context.Context, code, orderNo string) error
}

// ProductCatalog 商品目录防腐接口，由 catalog 服务客户端实现
type ProductCatalog interface {
	GetProduct(ctx context.Context, productID uint) (*CatalogProduct, error)
}

// CatalogProduct 购物车视角消费的商品字段
type CatalogProduct struct {
	ID            uint
	Name          string
	UnitPrice     decimal.Decimal
	OriginalPrice decimal.Decimal
	Stock         int
}
