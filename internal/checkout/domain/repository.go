// 生成摘要：结算上下文的仓储与协作方端口定义。
package domain

import "context"

// DraftRepository 结算草稿仓储，redis 快照实现
type DraftRepository interface {
	// GetByUserID 草稿不存在时返回 (nil, nil)
	GetByUserID(ctx context.Context, userID string) (*OrderDraft, error)
	Save(ctx context.Context, draft *OrderDraft) error
	Delete(ctx context.Context, userID string) error
}

// CartSnapshot 从购物车服务取回的结算快照
type CartSnapshot struct {
	Items  []DraftItem
	Coupon *CouponSnapshot
}

// CartGateway 购物车服务防腐层
type CartGateway interface {
	GetCart(ctx context.Context, userID string) (*CartSnapshot, error)
	ClearCart(ctx context.Context, userID string) error
}

// PostalAddress 邮编查询结果，仅用于地址预填
type PostalAddress struct {
	Street       string
	Neighborhood string
	City         string
	State        string
}

// PostalLookup 邮编查询端口。查询失败返回 (nil, nil)，
// 预填是尽力而为，绝不阻塞结算流程。
type PostalLookup interface {
	Lookup(ctx context.Context, cep string) (*PostalAddress, error)
}

// OrderSubmitter 订单服务防腐层，提交成功返回订单号
type OrderSubmitter interface {
	Submit(ctx context.Context, draft *OrderDraft) (string, error)
}
