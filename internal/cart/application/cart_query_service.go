package application

import (
	"context"
	"time"

	"github.com/wyfcoding/ecommerce/internal/cart/domain"
	"github.com/wyfcoding/pkg/logging"
)

// CartQueryService 购物车查询服务
type CartQueryService struct {
	carts   domain.CartRepository
	coupons domain.CouponRepository
	engine  *domain.PricingEngine
	now     func() time.Time
}

// NewCartQueryService 创建购物车查询服务实例
func NewCartQueryService(
	carts domain.CartRepository,
	coupons domain.CouponRepository,
	engine *domain.PricingEngine,
) *CartQueryService {
	return &CartQueryService{
		carts:   carts,
		coupons: coupons,
		engine:  engine,
		now:     time.Now,
	}
}

// GetCart 读取购物车并计算金额汇总
func (s *CartQueryService) GetCart(ctx context.Context, userID string) (*CartDTO, error) {
	cart, err := s.carts.GetByUserID(ctx, userID)
	if err != nil {
		logging.Warn(ctx, "cart snapshot unavailable, returning empty cart", "user_id", userID, "error", err)
		cart = domain.NewCart(userID)
	}
	if cart == nil {
		cart = domain.NewCart(userID)
	}

	var coupon *domain.Coupon
	if cart.AppliedCoupon != "" {
		coupon, err = s.coupons.GetByCode(ctx, cart.AppliedCoupon)
		if err != nil {
			return nil, err
		}
	}

	totals := s.engine.Compute(cart.Items, coupon, s.now())
	return toCartDTO(cart, totals), nil
}

// GetItemCount 购物车商品总件数，前台角标用
func (s *CartQueryService) GetItemCount(ctx context.Context, userID string) (int, error) {
	cart, err := s.carts.GetByUserID(ctx, userID)
	if err != nil || cart == nil {
		return 0, nil
	}
	return cart.TotalQuantity(), nil
}

// ListCoupons 列出全部优惠券（运营后台用）
func (s *CartQueryService) ListCoupons(ctx context.Context) ([]*domain.Coupon, error) {
	return s.coupons.List(ctx)
}

// GetCoupon 按券码查询优惠券，供结算服务锁定快照
func (s *CartQueryService) GetCoupon(ctx context.Context, code string) (*domain.Coupon, error) {
	coupon, err := s.coupons.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, domain.ErrCouponNotFound
	}
	return coupon, nil
}
