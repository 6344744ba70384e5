package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricingConfig 定价参数，来自配置而非硬编码
type PricingConfig struct {
	FreeShippingThreshold decimal.Decimal // 达到该小计免运费
	FlatShippingRate      decimal.Decimal // 未达门槛时的固定运费
}

// DefaultPricingConfig 参考实现的默认参数：满 200 免运费，固定运费 15
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		FreeShippingThreshold: decimal.NewFromInt(200),
		FlatShippingRate:      decimal.NewFromInt(15),
	}
}

// Totals 购物车金额汇总
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

// PricingEngine 购物车定价引擎。所有方法均为纯函数：不修改入参，
// 中间计算保留完整精度，只在展示层做两位小数舍入。
type PricingEngine struct {
	cfg PricingConfig
}

// NewPricingEngine 创建定价引擎
func NewPricingEngine(cfg PricingConfig) *PricingEngine {
	return &PricingEngine{cfg: cfg}
}

// Subtotal 行项目小计之和，空购物车为零
func (e *PricingEngine) Subtotal(items []LineItem) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return subtotal
}

// Discount 优惠券折扣金额。券为空、未达门槛或已过期时为零；
// 折扣不超过小计，设置了 MaxDiscount 时同时受其封顶。
func (e *PricingEngine) Discount(items []LineItem, coupon *Coupon, now time.Time) decimal.Decimal {
	subtotal := e.Subtotal(items)
	return e.discount(subtotal, coupon, e.Shipping(subtotal), now)
}

func (e *PricingEngine) discount(subtotal decimal.Decimal, coupon *Coupon, shipping decimal.Decimal, now time.Time) decimal.Decimal {
	if coupon == nil {
		return decimal.Zero
	}
	if subtotal.LessThan(coupon.MinimumOrderValue) || coupon.Expired(now) {
		return decimal.Zero
	}

	var discount decimal.Decimal
	switch coupon.Kind {
	case CouponKindPercentage:
		discount = subtotal.Mul(coupon.Amount)
	case CouponKindFixed:
		discount = coupon.Amount
	case CouponKindFreeShipping:
		discount = shipping
	default:
		return decimal.Zero
	}

	if coupon.MaxDiscount.IsPositive() && discount.GreaterThan(coupon.MaxDiscount) {
		discount = coupon.MaxDiscount
	}
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}
	return discount
}

// Shipping 运费：小计达到免邮门槛为零，否则为固定运费。
// 边界：恰好等于门槛时免邮。
func (e *PricingEngine) Shipping(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(e.cfg.FreeShippingThreshold) {
		return decimal.Zero
	}
	return e.cfg.FlatShippingRate
}

// Compute 汇总小计、折扣、运费与总额。Total 恒等于三者的组合，
// 不存在独立的总额计算路径。
func (e *PricingEngine) Compute(items []LineItem, coupon *Coupon, now time.Time) Totals {
	subtotal := e.Subtotal(items)
	shipping := e.Shipping(subtotal)
	discount := e.discount(subtotal, coupon, shipping, now)
	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		Shipping: shipping,
		Total:    subtotal.Sub(discount).Add(shipping),
	}
}

// ComputeWithShipping 结账流程中用户已选择配送方式时，以方式运费替代
// 免邮门槛规则重算总额；折扣规则不变。
func (e *PricingEngine) ComputeWithShipping(items []LineItem, coupon *Coupon, shipping decimal.Decimal, now time.Time) Totals {
	subtotal := e.Subtotal(items)
	discount := e.discount(subtotal, coupon, shipping, now)
	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		Shipping: shipping,
		Total:    subtotal.Sub(discount).Add(shipping),
	}
}
