package domain

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems() []DraftItem {
	return []DraftItem{
		{ProductID: 1, Name: "Notebook", UnitPrice: decimal.NewFromInt(1000), Quantity: 1},
		{ProductID: 2, Name: "Mouse", UnitPrice: decimal.NewFromInt(100), Quantity: 2},
	}
}

func validPersonal() PersonalInfo {
	return PersonalInfo{
		FirstName: "Ana", LastName: "Silva", Email: "ana@example.com",
		CPF: "123.456.789-01", Phone: "(11) 98765-4321",
	}
}

func validAddress() ShippingAddress {
	return ShippingAddress{
		CEP: "01310-100", Street: "Av. Paulista", Number: "1000",
		Neighborhood: "Bela Vista", City: "São Paulo", State: "SP",
		Method: "express",
	}
}

func draftAtReview(t *testing.T) *OrderDraft {
	t.Helper()
	ctx := context.Background()
	d := NewOrderDraft("u1", testItems(), nil)
	require.NoError(t, d.SubmitPersonal(ctx, validPersonal()))
	require.NoError(t, d.SubmitShipping(ctx, validAddress(), DefaultShippingMethods()))
	require.NoError(t, d.SubmitPayment(ctx, PaymentInfo{Method: PaymentMethodPix}))
	return d
}

func TestWizardHappyPath(t *testing.T) {
	d := draftAtReview(t)
	assert.Equal(t, StepReview, d.Step)

	d.AcceptTerms(true)
	require.NoError(t, d.Complete(context.Background(), "ORD123"))
	assert.Equal(t, StepCompleted, d.Step)
	assert.Equal(t, "ORD123", d.OrderNo)
	assert.True(t, d.Terminal())
}

func TestSubmitOutOfOrder(t *testing.T) {
	d := NewOrderDraft("u1", testItems(), nil)
	err := d.SubmitPayment(context.Background(), PaymentInfo{Method: PaymentMethodPix})
	assert.ErrorIs(t, err, ErrWrongStep)
	assert.Equal(t, StepPersonal, d.Step)
}

func TestShippingMethodSetsRateAndRecomputes(t *testing.T) {
	ctx := context.Background()
	d := NewOrderDraft("u1", testItems(), nil)
	require.NoError(t, d.SubmitPersonal(ctx, validPersonal()))
	require.NoError(t, d.SubmitShipping(ctx, validAddress(), DefaultShippingMethods()))

	assert.True(t, d.ShippingRate.Equal(decimal.NewFromInt(25)), "express rate")
	assert.True(t, d.Totals.Total.Equal(decimal.NewFromInt(1225)), "got %s", d.Totals.Total)
}

func TestUnknownShippingMethodRejected(t *testing.T) {
	ctx := context.Background()
	d := NewOrderDraft("u1", testItems(), nil)
	require.NoError(t, d.SubmitPersonal(ctx, validPersonal()))

	addr := validAddress()
	addr.Method = "drone"
	err := d.SubmitShipping(ctx, addr, DefaultShippingMethods())
	assert.ErrorIs(t, err, ErrUnknownShippingMethod)
	assert.Equal(t, StepShipping, d.Step)
}

func TestRetreatIsNoOpAtFirstStep(t *testing.T) {
	d := NewOrderDraft("u1", testItems(), nil)
	require.NoError(t, d.Retreat(context.Background()))
	assert.Equal(t, StepPersonal, d.Step)
}

func TestRetreatWalksBackwards(t *testing.T) {
	ctx := context.Background()
	d := draftAtReview(t)
	require.NoError(t, d.Retreat(ctx))
	assert.Equal(t, StepPayment, d.Step)
	require.NoError(t, d.Retreat(ctx))
	assert.Equal(t, StepShipping, d.Step)
	require.NoError(t, d.Retreat(ctx))
	assert.Equal(t, StepPersonal, d.Step)
}

func TestJumpForwardRejected(t *testing.T) {
	d := NewOrderDraft("u1", testItems(), nil)
	assert.ErrorIs(t, d.JumpTo(StepPayment), ErrForwardJump)
	assert.ErrorIs(t, d.JumpTo(StepPersonal), ErrForwardJump)
	assert.Equal(t, StepPersonal, d.Step)
}

func TestJumpBackwardThenAdvanceAgain(t *testing.T) {
	ctx := context.Background()
	d := draftAtReview(t)
	require.NoError(t, d.JumpTo(StepPersonal))
	assert.Equal(t, StepPersonal, d.Step)

	// 跳回后仍保留已填写的数据，可以重新一路前进
	require.NoError(t, d.SubmitPersonal(ctx, validPersonal()))
	require.NoError(t, d.SubmitShipping(ctx, validAddress(), DefaultShippingMethods()))
	require.NoError(t, d.SubmitPayment(ctx, PaymentInfo{Method: PaymentMethodBoleto}))
	assert.Equal(t, StepReview, d.Step)
}

func TestCompleteRequiresTerms(t *testing.T) {
	d := draftAtReview(t)
	err := d.Complete(context.Background(), "ORD123")
	assert.ErrorIs(t, err, ErrTermsNotAccepted)
	assert.Equal(t, StepReview, d.Step)
}

func TestAbandonFromAnyStep(t *testing.T) {
	ctx := context.Background()
	d := NewOrderDraft("u1", testItems(), nil)
	require.NoError(t, d.Abandon(ctx))
	assert.Equal(t, StepAbandoned, d.Step)
	assert.True(t, d.Terminal())

	// 终态后不再接受任何操作
	assert.Error(t, d.Abandon(ctx))
	assert.ErrorIs(t, d.SubmitPersonal(ctx, validPersonal()), ErrWrongStep)
}

func TestNonCardPaymentDropsInstallments(t *testing.T) {
	ctx := context.Background()
	d := NewOrderDraft("u1", testItems(), nil)
	require.NoError(t, d.SubmitPersonal(ctx, validPersonal()))
	require.NoError(t, d.SubmitShipping(ctx, validAddress(), DefaultShippingMethods()))
	require.NoError(t, d.SubmitPayment(ctx, PaymentInfo{Method: PaymentMethodPix, Installments: 10}))
	assert.Zero(t, d.Payment.Installments)
}

func TestRecomputeTotalsWithCouponSnapshots(t *testing.T) {
	coupon := &CouponSnapshot{Code: "WELCOME10", Kind: CouponKindPercentage, Amount: decimal.NewFromFloat(0.10)}
	d := NewOrderDraft("u1", testItems(), coupon)
	d.ShippingRate = decimal.NewFromInt(15)
	d.RecomputeTotals()

	assert.True(t, d.Totals.Subtotal.Equal(decimal.NewFromInt(1200)))
	assert.True(t, d.Totals.Discount.Equal(decimal.NewFromInt(120)))
	assert.True(t, d.Totals.Total.Equal(decimal.NewFromInt(1095)))

	// 免运费券抵扣当前选择的运费
	d.Coupon = &CouponSnapshot{Code: "FRETEGRATIS", Kind: CouponKindFreeShipping}
	d.RecomputeTotals()
	assert.True(t, d.Totals.Discount.Equal(decimal.NewFromInt(15)))
	assert.True(t, d.Totals.Total.Equal(decimal.NewFromInt(1200)))
}

func TestFreeShippingCouponHonorsMaxDiscount(t *testing.T) {
	coupon := &CouponSnapshot{
		Code: "FRETE10", Kind: CouponKindFreeShipping,
		MaxDiscount: decimal.NewFromInt(10),
	}
	d := NewOrderDraft("u1", testItems(), coupon)
	d.ShippingRate = decimal.NewFromInt(15)
	d.RecomputeTotals()

	assert.True(t, d.Totals.Discount.Equal(decimal.NewFromInt(10)), "got %s", d.Totals.Discount)
	assert.True(t, d.Totals.Total.Equal(decimal.NewFromInt(1205)), "got %s", d.Totals.Total)
}

func TestShippingMethodCarriesDeliveryDays(t *testing.T) {
	ctx := context.Background()
	methods := []ShippingMethod{
		{Code: "express", Label: "Entrega expressa", Rate: decimal.NewFromInt(40), Days: 1},
	}
	d := NewOrderDraft("u1", testItems(), nil)
	require.NoError(t, d.SubmitPersonal(ctx, validPersonal()))
	require.NoError(t, d.SubmitShipping(ctx, validAddress(), methods))

	// 配置覆盖了默认方式时，天数跟随配置而不是默认表
	assert.Equal(t, 1, d.ShippingDays)
	assert.True(t, d.ShippingRate.Equal(decimal.NewFromInt(40)))
}
