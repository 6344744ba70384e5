package domain

import "context"

// OrderRepository 订单仓储
type OrderRepository interface {
	// WithTx 在单个数据库事务内执行 fn，事务通过 context 传递
	WithTx(ctx context.Context, fn func(txCtx context.Context) error) error
	// Save 创建订单；在事务内执行时通过 tx 传入 *gorm.DB
	Save(ctx context.Context, order *Order) error
	// Update 更新订单状态字段
	Update(ctx context.Context, order *Order) error
	// GetByOrderNo 订单不存在时返回 (nil, nil)
	GetByOrderNo(ctx context.Context, orderNo string) (*Order, error)
	// ListByUserID 按创建时间倒序分页
	ListByUserID(ctx context.Context, userID string, offset, limit int) ([]*Order, int64, error)
}
