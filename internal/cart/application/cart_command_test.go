package application

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wyfcoding/ecommerce/internal/cart/domain"
)

type fakeCartRepo struct {
	carts map[string]*domain.Cart
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[string]*domain.Cart)}
}

func (f *fakeCartRepo) GetByUserID(_ context.Context, userID string) (*domain.Cart, error) {
	return f.carts[userID], nil
}

func (f *fakeCartRepo) Save(_ context.Context, cart *domain.Cart) error {
	f.carts[cart.UserID] = cart
	return nil
}

func (f *fakeCartRepo) Delete(_ context.Context, userID string) error {
	delete(f.carts, userID)
	return nil
}

type fakeCouponRepo struct {
	coupons map[string]*domain.Coupon
	usage   map[string]int
}

func newFakeCouponRepo(coupons ...*domain.Coupon) *fakeCouponRepo {
	f := &fakeCouponRepo{coupons: make(map[string]*domain.Coupon), usage: make(map[string]int)}
	for _, c := range coupons {
		f.coupons[c.Code] = c
	}
	return f
}

func (f *fakeCouponRepo) GetByCode(_ context.Context, code string) (*domain.Coupon, error) {
	return f.coupons[code], nil
}

func (f *fakeCouponRepo) Save(_ context.Context, c *domain.Coupon) error {
	f.coupons[c.Code] = c
	return nil
}

func (f *fakeCouponRepo) List(_ context.Context) ([]*domain.Coupon, error) {
	out := make([]*domain.Coupon, 0, len(f.coupons))
	for _, c := range f.coupons {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCouponRepo) IncrementUsage(_ context.Context, code, _ string) error {
	f.usage[code]++
	return nil
}

type fakeCatalog struct {
	products map[uint]*domain.CatalogProduct
}

func (f *fakeCatalog) GetProduct(_ context.Context, id uint) (*domain.CatalogProduct, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, fmt.Errorf("product %d not found", id)
	}
	return p, nil
}

type nopPublisher struct{ events []string }

func (p *nopPublisher) Publish(_ context.Context, topic, _ string, _ any) error {
	p.events = append(p.events, topic)
	return nil
}

func mustDec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newTestService(coupons *fakeCouponRepo) (*CartCommandService, *fakeCartRepo, *nopPublisher) {
	carts := newFakeCartRepo()
	catalog := &fakeCatalog{products: map[uint]*domain.CatalogProduct{
		1: {ID: 1, Name: "Notebook", UnitPrice: mustDec("4500.00"), Stock: 10},
		2: {ID: 2, Name: "Mouse", UnitPrice: mustDec("89.90"), Stock: 3},
	}}
	pub := &nopPublisher{}
	svc := NewCartCommandService(carts, coupons, catalog, domain.NewPricingEngine(domain.DefaultPricingConfig()), pub)
	return svc, carts, pub
}

func TestAddItemSnapshotsProduct(t *testing.T) {
	svc, carts, pub := newTestService(newFakeCouponRepo())

	require.NoError(t, svc.AddItem(context.Background(), AddItemCommand{UserID: "u1", ProductID: 1, Quantity: 2}))

	cart := carts.carts["u1"]
	require.NotNil(t, cart)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Notebook", cart.Items[0].Name)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 10, cart.Items[0].StockLimit)
	assert.Contains(t, pub.events, domain.CartItemAddedEventType)
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc, _, _ := newTestService(newFakeCouponRepo())
	err := svc.AddItem(context.Background(), AddItemCommand{UserID: "u1", ProductID: 99, Quantity: 1})
	assert.Error(t, err)
}

func TestAddItemBeyondStock(t *testing.T) {
	svc, _, _ := newTestService(newFakeCouponRepo())
	err := svc.AddItem(context.Background(), AddItemCommand{UserID: "u1", ProductID: 2, Quantity: 4})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestApplyCouponBelowMinimumLeavesCartUnchanged(t *testing.T) {
	coupons := newFakeCouponRepo(&domain.Coupon{
		Code: "SAVE20", Kind: domain.CouponKindPercentage, Amount: mustDec("0.20"),
		MinimumOrderValue: mustDec("200.00"), Active: true,
	})
	svc, carts, _ := newTestService(coupons)
	require.NoError(t, svc.AddItem(context.Background(), AddItemCommand{UserID: "u1", ProductID: 2, Quantity: 1}))

	_, err := svc.ApplyCoupon(context.Background(), ApplyCouponCommand{UserID: "u1", Code: "SAVE20"})
	assert.ErrorIs(t, err, domain.ErrCouponBelowMinimum)
	assert.Empty(t, carts.carts["u1"].AppliedCoupon)
}

func TestApplyCouponUnknownCode(t *testing.T) {
	svc, _, _ := newTestService(newFakeCouponRepo())
	_, err := svc.ApplyCoupon(context.Background(), ApplyCouponCommand{UserID: "u1", Code: "NOPE"})
	assert.ErrorIs(t, err, domain.ErrCouponNotFound)
}

func TestApplyCouponCaseInsensitiveAndIdempotent(t *testing.T) {
	coupons := newFakeCouponRepo(&domain.Coupon{
		Code: "WELCOME10", Kind: domain.CouponKindPercentage, Amount: mustDec("0.10"),
		MinimumOrderValue: mustDec("100.00"), Active: true,
	})
	svc, carts, _ := newTestService(coupons)
	require.NoError(t, svc.AddItem(context.Background(), AddItemCommand{UserID: "u1", ProductID: 1, Quantity: 1}))

	first, err := svc.ApplyCoupon(context.Background(), ApplyCouponCommand{UserID: "u1", Code: "welcome10"})
	require.NoError(t, err)
	second, err := svc.ApplyCoupon(context.Background(), ApplyCouponCommand{UserID: "u1", Code: "WELCOME10"})
	require.NoError(t, err)

	assert.Equal(t, first.Code, second.Code)
	assert.Equal(t, "WELCOME10", carts.carts["u1"].AppliedCoupon)
}

func TestApplyCouponExpired(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	coupons := newFakeCouponRepo(&domain.Coupon{
		Code: "OLD", Kind: domain.CouponKindFixed, Amount: mustDec("10.00"), Active: true, ExpiresAt: &past,
	})
	svc, _, _ := newTestService(coupons)
	require.NoError(t, svc.AddItem(context.Background(), AddItemCommand{UserID: "u1", ProductID: 1, Quantity: 1}))

	_, err := svc.ApplyCoupon(context.Background(), ApplyCouponCommand{UserID: "u1", Code: "OLD"})
	assert.ErrorIs(t, err, domain.ErrCouponExpired)
}

func TestClearCartPublishesEvent(t *testing.T) {
	svc, carts, pub := newTestService(newFakeCouponRepo())
	require.NoError(t, svc.AddItem(context.Background(), AddItemCommand{UserID: "u1", ProductID: 1, Quantity: 1}))
	require.NoError(t, svc.ClearCart(context.Background(), "u1"))

	assert.Nil(t, carts.carts["u1"])
	assert.Contains(t, pub.events, domain.CartClearedEventType)
}
