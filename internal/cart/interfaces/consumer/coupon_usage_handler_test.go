package consumer

import (
	"context"
	"log/slog"
	"testing"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wyfcoding/ecommerce/internal/cart/domain"
)

// fakeCouponRepo 按订单号去重，与 MySQL 仓储的核销标记语义一致
type fakeCouponRepo struct {
	usage    map[string]int
	redeemed map[string]bool
}

func newFakeCouponRepo() *fakeCouponRepo {
	return &fakeCouponRepo{usage: map[string]int{}, redeemed: map[string]bool{}}
}

func (f *fakeCouponRepo) GetByCode(context.Context, string) (*domain.Coupon, error) {
	return nil, nil
}

func (f *fakeCouponRepo) Save(context.Context, *domain.Coupon) error { return nil }

func (f *fakeCouponRepo) List(context.Context) ([]*domain.Coupon, error) { return nil, nil }

func (f *fakeCouponRepo) IncrementUsage(_ context.Context, code, orderNo string) error {
	if f.redeemed[orderNo] {
		return nil
	}
	f.redeemed[orderNo] = true
	f.usage[code]++
	return nil
}

func TestRedeliveredOrderEventCountsOnce(t *testing.T) {
	repo := newFakeCouponRepo()
	h := NewCouponUsageHandler(repo, slog.Default())

	msg := kafkago.Message{Value: []byte(`{"order_no":"ORD1001","coupon_code":"WELCOME10"}`)}
	require.NoError(t, h.Handle(context.Background(), msg))
	require.NoError(t, h.Handle(context.Background(), msg))

	assert.Equal(t, 1, repo.usage["WELCOME10"])
}

func TestDistinctOrdersEachCount(t *testing.T) {
	repo := newFakeCouponRepo()
	h := NewCouponUsageHandler(repo, slog.Default())

	require.NoError(t, h.Handle(context.Background(), kafkago.Message{
		Value: []byte(`{"order_no":"ORD1001","coupon_code":"WELCOME10"}`),
	}))
	require.NoError(t, h.Handle(context.Background(), kafkago.Message{
		Value: []byte(`{"order_no":"ORD1002","coupon_code":"WELCOME10"}`),
	}))

	assert.Equal(t, 2, repo.usage["WELCOME10"])
}

func TestOrderWithoutCouponIsIgnored(t *testing.T) {
	repo := newFakeCouponRepo()
	h := NewCouponUsageHandler(repo, slog.Default())

	require.NoError(t, h.Handle(context.Background(), kafkago.Message{
		Value: []byte(`{"order_no":"ORD1003"}`),
	}))

	assert.Empty(t, repo.usage)
	assert.Empty(t, repo.redeemed)
}
