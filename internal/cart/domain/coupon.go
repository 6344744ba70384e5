package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// CouponKind 优惠券类型
type CouponKind string

const (
	CouponKindPercentage   CouponKind = "percentage"    // 按比例折扣，Amount 为小数比例（0.10 = 10%）
	CouponKindFixed        CouponKind = "fixed"         // 固定金额折扣
	CouponKindFreeShipping CouponKind = "free_shipping" // 免运费
)

var (
	// ErrCouponNotFound 优惠券不存在、已停用或已用尽
	ErrCouponNotFound = errors.New("coupon not found")
	// ErrCouponExpired 优惠券已过期
	ErrCouponExpired = errors.New("coupon expired")
	// ErrCouponBelowMinimum 订单金额未达到优惠券使用门槛
	ErrCouponBelowMinimum = errors.New("order value below coupon minimum")
)

// Coupon 优惠券聚合根
type Coupon struct {
	ID                uint            `json:"id"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	Code              string          `json:"code"`
	Description       string          `json:"description"`
	Kind              CouponKind      `json:"kind"`
	Amount            decimal.Decimal `json:"amount"`
	MinimumOrderValue decimal.Decimal `json:"minimum_order_value"`
	MaxDiscount       decimal.Decimal `json:"max_discount"` // 零值表示不封顶
	ExpiresAt         *time.Time      `json:"expires_at,omitempty"`
	Active            bool            `json:"active"`
	UsageCount        int             `json:"usage_count"`
	MaxUsage          int             `json:"max_usage"` // 零值表示不限次数
	NewCustomersOnly  bool            `json:"new_customers_only"`
}

// Available 优惠券是否还可被领用（不含金额门槛判断）
func (c *Coupon) Available() bool {
	if !c.Active {
		return false
	}
	if c.MaxUsage > 0 && c.UsageCount >= c.MaxUsage {
		return false
	}
	return true
}

// Expired 在给定时刻是否已过期；恰好等于过期时刻视为过期
func (c *Coupon) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && !now.Before(*c.ExpiresAt)
}

// CheckEligibility 校验优惠券在给定小计和时刻下能否应用
func (c *Coupon) CheckEligibility(subtotal decimal.Decimal, now time.Time) error {
	if !c.Available() {
		return ErrCouponNotFound
	}
	if c.Expired(now) {
		return ErrCouponExpired
	}
	if subtotal.LessThan(c.MinimumOrderValue) {
		return ErrCouponBelowMinimum
	}
	return nil
}

// MarkUsed 累计一次使用
func (c *Coupon) MarkUsed() {
	c.UsageCount++
}
