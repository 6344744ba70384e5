package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wyfcoding/ecommerce/internal/cart/domain"
	"github.com/wyfcoding/pkg/logging"
)

// AddItemCommand 添加商品到购物车命令
type AddItemCommand struct {
	UserID    string
	ProductID uint
	Quantity  int
}

// UpdateQuantityCommand 调整购物车商品数量命令
type UpdateQuantityCommand struct {
	UserID    string
	ProductID uint
	Quantity  int
}

// ApplyCouponCommand 应用优惠券命令
type ApplyCouponCommand struct {
	UserID string
	Code   string
}

// CartCommandService 购物车命令服务
type CartCommandService struct {
	carts     domain.CartRepository
	coupons   domain.CouponRepository
	catalog   domain.ProductCatalog
	engine    *domain.PricingEngine
	publisher domain.EventPublisher
	now       func() time.Time
}

// NewCartCommandService 创建购物车命令服务实例
func NewCartCommandService(
	carts domain.CartRepository,
	coupons domain.CouponRepository,
	catalog domain.ProductCatalog,
	engine *domain.PricingEngine,
	publisher domain.EventPublisher,
) *CartCommandService {
	return &CartCommandService{
		carts:     carts,
		coupons:   coupons,
		catalog:   catalog,
		engine:    engine,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *CartCommandService) loadCart(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := s.carts.GetByUserID(ctx, userID)
	if err != nil {
		// 快照损坏或存储不可用时回退为空购物车，绝不阻断前台
		logging.Warn(ctx, "cart snapshot unavailable, falling back to empty cart", "user_id", userID, "error", err)
		return domain.NewCart(userID), nil
	}
	if cart == nil {
		return domain.NewCart(userID), nil
	}
	return cart, nil
}

// AddItem 处理添加商品：从商品目录取快照，校验库存后入车
func (s *CartCommandService) AddItem(ctx context.Context, cmd AddItemCommand) error {
	if cmd.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", cmd.Quantity)
	}

	product, err := s.catalog.GetProduct(ctx, cmd.ProductID)
	if err != nil {
		return fmt.Errorf("lookup product %d: %w", cmd.ProductID, err)
	}

	cart, err := s.loadCart(ctx, cmd.UserID)
	if err != nil {
		return err
	}

	item := domain.LineItem{
		ProductID:     product.ID,
		Name:          product.Name,
		UnitPrice:     product.UnitPrice,
		OriginalPrice: product.OriginalPrice,
		Quantity:      cmd.Quantity,
		StockLimit:    product.Stock,
	}
	if err := cart.AddItem(item); err != nil {
		return err
	}
	if err := s.carts.Save(ctx, cart); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}

	event := domain.CartItemAddedEvent{
		UserID:    cmd.UserID,
		ProductID: product.ID,
		Quantity:  cmd.Quantity,
		UnitPrice: product.UnitPrice.StringFixed(2),
		Timestamp: s.now(),
	}
	if err := s.publisher.Publish(ctx, domain.CartItemAddedEventType, cmd.UserID, event); err != nil {
		logging.Error(ctx, "failed to publish cart item added event", "user_id", cmd.UserID, "error", err)
	}
	return nil
}

// RemoveItem 处理移除商品
func (s *CartCommandService) RemoveItem(ctx context.Context, userID string, productID uint) error {
	cart, err := s.loadCart(ctx, userID)
	if err != nil {
		return err
	}
	cart.RemoveItem(productID)
	if err := s.carts.Save(ctx, cart); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}

	event := domain.CartItemRemovedEvent{UserID: userID, ProductID: productID, Timestamp: s.now()}
	if err := s.publisher.Publish(ctx, domain.CartItemRemovedEventType, userID, event); err != nil {
		logging.Error(ctx, "failed to publish cart item removed event", "user_id", userID, "error", err)
	}
	return nil
}

// UpdateQuantity 处理数量调整；数量收敛规则见聚合根
func (s *CartCommandService) UpdateQuantity(ctx context.Context, cmd UpdateQuantityCommand) error {
	cart, err := s.loadCart(ctx, cmd.UserID)
	if err != nil {
		return err
	}
	cart.UpdateQuantity(cmd.ProductID, cmd.Quantity)
	if err := s.carts.Save(ctx, cart); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// ApplyCoupon 校验并应用优惠券。重复应用同一券码幂等；
// 应用另一张有效券会替换现有券，折扣不叠加。
func (s *CartCommandService) ApplyCoupon(ctx context.Context, cmd ApplyCouponCommand) (*domain.Coupon, error) {
	code := strings.ToUpper(strings.TrimSpace(cmd.Code))

	coupon, err := s.coupons.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("lookup coupon %s: %w", code, err)
	}
	if coupon == nil {
		return nil, domain.ErrCouponNotFound
	}

	cart, err := s.loadCart(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	subtotal := s.engine.Subtotal(cart.Items)
	if err := coupon.CheckEligibility(subtotal, s.now()); err != nil {
		return nil, err
	}

	if cart.AppliedCoupon == coupon.Code {
		return coupon, nil
	}

	cart.ApplyCoupon(coupon.Code)
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	event := domain.CouponAppliedEvent{
		UserID:    cmd.UserID,
		Code:      coupon.Code,
		Discount:  s.engine.Discount(cart.Items, coupon, s.now()).StringFixed(2),
		Timestamp: s.now(),
	}
	if err := s.publisher.Publish(ctx, domain.CouponAppliedEventType, cmd.UserID, event); err != nil {
		logging.Error(ctx, "failed to publish coupon applied event", "user_id", cmd.UserID, "error", err)
	}
	return coupon, nil
}

// RemoveCoupon 移除已应用的优惠券
func (s *CartCommandService) RemoveCoupon(ctx context.Context, userID string) error {
	cart, err := s.loadCart(ctx, userID)
	if err != nil {
		return err
	}
	cart.RemoveCoupon()
	if err := s.carts.Save(ctx, cart); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// ClearCart 清空购物车
func (s *CartCommandService) ClearCart(ctx context.Context, userID string) error {
	if err := s.carts.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	event := domain.CartClearedEvent{UserID: userID, Timestamp: s.now()}
	if err := s.publisher.Publish(ctx, domain.CartClearedEventType, userID, event); err != nil {
		logging.Error(ctx, "failed to publish cart cleared event", "user_id", userID, "error", err)
	}
	return nil
}
