package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testEngine() *PricingEngine {
	return NewPricingEngine(DefaultPricingConfig())
}

func item(price string, qty int) LineItem {
	return LineItem{ProductID: uint(qty), UnitPrice: dec(price), Quantity: qty, StockLimit: 100}
}

func TestSubtotalEmptyCart(t *testing.T) {
	e := testEngine()
	assert.True(t, e.Subtotal(nil).IsZero())
}

func TestSubtotalSumsLines(t *testing.T) {
	e := testEngine()
	items := []LineItem{item("10.50", 2), item("5.25", 3)}
	assert.Equal(t, "36.75", e.Subtotal(items).StringFixed(2))
}

func TestShippingFlatRateBelowThreshold(t *testing.T) {
	e := testEngine()
	assert.Equal(t, "15.00", e.Shipping(dec("199.99")).StringFixed(2))
}

func TestShippingFreeAtExactThreshold(t *testing.T) {
	e := testEngine()
	assert.True(t, e.Shipping(dec("200.00")).IsZero())
	assert.True(t, e.Shipping(dec("250.00")).IsZero())
}

func TestPercentageCouponExample(t *testing.T) {
	// 参考用例：100 元购物车 + WELCOME10（10%，门槛 100）
	e := testEngine()
	items := []LineItem{item("100.00", 1)}
	coupon := &Coupon{
		Code:              "WELCOME10",
		Kind:              CouponKindPercentage,
		Amount:            dec("0.10"),
		MinimumOrderValue: dec("100.00"),
		Active:            true,
	}

	totals := e.Compute(items, coupon, time.Now())
	assert.Equal(t, "100.00", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "10.00", totals.Discount.StringFixed(2))
	assert.Equal(t, "15.00", totals.Shipping.StringFixed(2))
	assert.Equal(t, "105.00", totals.Total.StringFixed(2))
}

func TestNoCouponFreeShippingExample(t *testing.T) {
	e := testEngine()
	items := []LineItem{item("250.00", 1)}

	totals := e.Compute(items, nil, time.Now())
	assert.Equal(t, "250.00", totals.Subtotal.StringFixed(2))
	assert.True(t, totals.Discount.IsZero())
	assert.True(t, totals.Shipping.IsZero())
	assert.Equal(t, "250.00", totals.Total.StringFixed(2))
}

func TestDiscountZeroBelowMinimum(t *testing.T) {
	e := testEngine()
	items := []LineItem{item("50.00", 1)}
	coupon := &Coupon{Kind: CouponKindPercentage, Amount: dec("0.20"), MinimumOrderValue: dec("200.00"), Active: true}
	assert.True(t, e.Discount(items, coupon, time.Now()).IsZero())
}

func TestDiscountZeroWhenExpired(t *testing.T) {
	e := testEngine()
	past := time.Now().Add(-time.Hour)
	items := []LineItem{item("300.00", 1)}
	coupon := &Coupon{Kind: CouponKindFixed, Amount: dec("50.00"), Active: true, ExpiresAt: &past}
	assert.True(t, e.Discount(items, coupon, time.Now()).IsZero())
}

func TestFixedDiscountCappedAtSubtotal(t *testing.T) {
	e := testEngine()
	items := []LineItem{item("30.00", 1)}
	coupon := &Coupon{Kind: CouponKindFixed, Amount: dec("50.00"), Active: true}
	assert.Equal(t, "30.00", e.Discount(items, coupon, time.Now()).StringFixed(2))
}

func TestPercentageDiscountCappedByMaxDiscount(t *testing.T) {
	e := testEngine()
	items := []LineItem{item("2000.00", 1)}
	coupon := &Coupon{Kind: CouponKindPercentage, Amount: dec("0.05"), MaxDiscount: dec("50.00"), Active: true}
	assert.Equal(t, "50.00", e.Discount(items, coupon, time.Now()).StringFixed(2))
}

func TestFreeShippingCouponDiscountsShipping(t *testing.T) {
	e := testEngine()
	items := []LineItem{item("100.00", 1)}
	coupon := &Coupon{Kind: CouponKindFreeShipping, MinimumOrderValue: dec("50.00"), Active: true}

	totals := e.Compute(items, coupon, time.Now())
	assert.Equal(t, "15.00", totals.Discount.StringFixed(2))
	assert.Equal(t, "100.00", totals.Total.StringFixed(2))
}

func TestTotalEqualsComponents(t *testing.T) {
	e := testEngine()
	now := time.Now()
	carts := [][]LineItem{
		{item("19.99", 1)},
		{item("100.00", 2), item("49.90", 3)},
		{item("200.00", 1)},
		{item("7.77", 7), item("0.01", 1)},
	}
	coupon := &Coupon{Kind: CouponKindPercentage, Amount: dec("0.10"), Active: true}
	for _, items := range carts {
		totals := e.Compute(items, coupon, now)
		want := e.Subtotal(items).Sub(e.Discount(items, coupon, now)).Add(e.Shipping(e.Subtotal(items)))
		require.True(t, totals.Total.Equal(want), "total mismatch for %v", items)
	}
}

func TestComputeDoesNotMutateItems(t *testing.T) {
	e := testEngine()
	items := []LineItem{item("10.00", 2), item("5.00", 1)}
	before := make([]LineItem, len(items))
	copy(before, items)

	e.Compute(items, nil, time.Now())
	assert.Equal(t, before, items)
}

func TestComputeWithShippingUsesSelectedRate(t *testing.T) {
	e := testEngine()
	items := []LineItem{item("300.00", 1)}
	totals := e.ComputeWithShipping(items, nil, dec("25.00"), time.Now())
	assert.Equal(t, "25.00", totals.Shipping.StringFixed(2))
	assert.Equal(t, "325.00", totals.Total.StringFixed(2))
}
