package application

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wyfcoding/ecommerce/internal/admin/domain"
)

type fakeAnalyticsRepo struct {
	recorded []domain.RecordedOrder
	summary  domain.DashboardSummary
	daily    []domain.DailySales
	top      []domain.ProductSales

	lastDays  int
	lastLimit int
}

func (f *fakeAnalyticsRepo) RecordOrder(_ context.Context, rec domain.RecordedOrder) error {
	f.recorded = append(f.recorded, rec)
	return nil
}

func (f *fakeAnalyticsRepo) Summary(context.Context) (domain.DashboardSummary, error) {
	return f.summary, nil
}

func (f *fakeAnalyticsRepo) ListDailySales(_ context.Context, days int) ([]domain.DailySales, error) {
	f.lastDays = days
	return f.daily, nil
}

func (f *fakeAnalyticsRepo) TopProducts(_ context.Context, limit int) ([]domain.ProductSales, error) {
	f.lastLimit = limit
	return f.top, nil
}

func TestRecordOrderTruncatesToDay(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	svc := NewAnalyticsCommandService(repo)

	err := svc.RecordOrder(context.Background(), domain.RecordedOrder{
		OrderNo: "ORD1001",
		Day:     time.Date(2026, 3, 15, 23, 42, 7, 0, time.FixedZone("BRT", -3*3600)),
		Total:   decimal.NewFromFloat(105),
	})
	require.NoError(t, err)
	require.Len(t, repo.recorded, 1)

	day := repo.recorded[0].Day
	assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), day)
}

func TestRecordOrderRequiresOrderNo(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	svc := NewAnalyticsCommandService(repo)

	err := svc.RecordOrder(context.Background(), domain.RecordedOrder{Total: decimal.NewFromInt(50)})
	assert.ErrorIs(t, err, ErrMissingOrderNo)
	assert.Empty(t, repo.recorded)
}

func TestSummaryComputesAverageTicket(t *testing.T) {
	repo := &fakeAnalyticsRepo{summary: domain.DashboardSummary{
		Revenue: decimal.NewFromInt(1000),
		Orders:  3,
	}}
	svc := NewAnalyticsQueryService(repo)

	summary, err := svc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1000.00", summary.Revenue)
	assert.Equal(t, 3, summary.Orders)
	assert.Equal(t, "333.33", summary.AverageTicket)
}

func TestSummaryWithNoOrders(t *testing.T) {
	svc := NewAnalyticsQueryService(&fakeAnalyticsRepo{})

	summary, err := svc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Orders)
	assert.Equal(t, "0.00", summary.AverageTicket)
}

func TestDailySalesWindowClamped(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	svc := NewAnalyticsQueryService(repo)

	_, err := svc.ListDailySales(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 30, repo.lastDays)

	_, err = svc.ListDailySales(context.Background(), 1000)
	require.NoError(t, err)
	assert.Equal(t, 365, repo.lastDays)
}

func TestTopProductsLimitClamped(t *testing.T) {
	repo := &fakeAnalyticsRepo{top: []domain.ProductSales{
		{ProductID: 7, Name: "Notebook Pro", Units: 12, Revenue: decimal.NewFromInt(54000)},
	}}
	svc := NewAnalyticsQueryService(repo)

	products, err := svc.TopProducts(context.Background(), -1)
	require.NoError(t, err)
	assert.Equal(t, 10, repo.lastLimit)
	require.Len(t, products, 1)
	assert.Equal(t, "54000.00", products[0].Revenue)

	_, err = svc.TopProducts(context.Background(), 500)
	require.NoError(t, err)
	assert.Equal(t, 50, repo.lastLimit)
}
