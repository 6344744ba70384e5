package application

import (
	"context"

	"github.com/wyfcoding/ecommerce/internal/cart/domain"
)

// CartService 购物车服务门面，整合命令服务和查询服务
type CartService struct {
	commandService *CartCommandService
	queryService   *CartQueryService
}

// NewCartService 创建购物车服务门面实例
func NewCartService(
	carts domain.CartRepository,
	coupons domain.CouponRepository,
	catalog domain.ProductCatalog,
	engine *domain.PricingEngine,
	publisher domain.EventPublisher,
) *CartService {
	return &CartService{
		commandService: NewCartCommandService(carts, coupons, catalog, engine, publisher),
		queryService:   NewCartQueryService(carts, coupons, engine),
	}
}

// GetCart 读取购物车及金额汇总
func (s *CartService) GetCart(ctx context.Context, userID string) (*CartDTO, error) {
	return s.queryService.GetCart(ctx, userID)
}

// GetItemCount 购物车商品总件数
func (s *CartService) GetItemCount(ctx context.Context, userID string) (int, error) {
	return s.queryService.GetItemCount(ctx, userID)
}

// AddItem 添加商品
func (s *CartService) AddItem(ctx context.Context, userID string, productID uint, quantity int) error {
	return s.commandService.AddItem(ctx, AddItemCommand{UserID: userID, ProductID: productID, Quantity: quantity})
}

// RemoveItem 移除商品
func (s *CartService) RemoveItem(ctx context.Context, userID string, productID uint) error {
	return s.commandService.RemoveItem(ctx, userID, productID)
}

// UpdateQuantity 调整数量
func (s *CartService) UpdateQuantity(ctx context.Context, userID string, productID uint, quantity int) error {
	return s.commandService.UpdateQuantity(ctx, UpdateQuantityCommand{UserID: userID, ProductID: productID, Quantity: quantity})
}

// ApplyCoupon 应用优惠券
func (s *CartService) ApplyCoupon(ctx context.Context, userID, code string) (*domain.Coupon, error) {
	return s.commandService.ApplyCoupon(ctx, ApplyCouponCommand{UserID: userID, Code: code})
}

// RemoveCoupon 移除优惠券
func (s *CartService) RemoveCoupon(ctx context.Context, userID string) error {
	return s.commandService.RemoveCoupon(ctx, userID)
}

// ClearCart 清空购物车
func (s *CartService) ClearCart(ctx context.Context, userID string) error {
	return s.commandService.ClearCart(ctx, userID)
}

// ListCoupons 列出全部优惠券
func (s *CartService) ListCoupons(ctx context.Context) ([]*domain.Coupon, error) {
	return s.queryService.ListCoupons(ctx)
}

// GetCoupon 按券码查询优惠券
func (s *CartService) GetCoupon(ctx context.Context, code string) (*domain.Coupon, error) {
	return s.queryService.GetCoupon(ctx, code)
}
