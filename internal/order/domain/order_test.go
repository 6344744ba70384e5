package domain

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder() *Order {
	return NewOrder("ORD1", "u1", []OrderItem{
		{ProductID: 1, Name: "Notebook", UnitPrice: decimal.NewFromInt(1000), Quantity: 1},
	})
}

func TestOrderLifecycle(t *testing.T) {
	ctx := context.Background()
	order := newTestOrder()
	assert.Equal(t, OrderStatusPending, order.Status)

	require.NoError(t, order.Confirm(ctx))
	assert.Equal(t, OrderStatusConfirmed, order.Status)
	assert.NotNil(t, order.ConfirmedAt)

	require.NoError(t, order.Ship(ctx))
	require.NoError(t, order.Deliver(ctx))
	assert.Equal(t, OrderStatusDelivered, order.Status)
	assert.NotNil(t, order.DeliveredAt)
}

func TestOrderCancelBeforeShipment(t *testing.T) {
	ctx := context.Background()

	order := newTestOrder()
	require.NoError(t, order.Cancel(ctx, "customer request"))
	assert.Equal(t, OrderStatusCancelled, order.Status)
	assert.Equal(t, "customer request", order.CancelReason)

	confirmed := newTestOrder()
	require.NoError(t, confirmed.Confirm(ctx))
	require.NoError(t, confirmed.Cancel(ctx, "out of stock"))
	assert.Equal(t, OrderStatusCancelled, confirmed.Status)
}

func TestOrderCancelAfterShipmentRejected(t *testing.T) {
	ctx := context.Background()
	order := newTestOrder()
	require.NoError(t, order.Confirm(ctx))
	require.NoError(t, order.Ship(ctx))

	assert.Error(t, order.Cancel(ctx, "too late"))
	assert.Equal(t, OrderStatusShipped, order.Status)
}

func TestOrderIllegalTransitions(t *testing.T) {
	ctx := context.Background()
	order := newTestOrder()

	assert.Error(t, order.Ship(ctx), "cannot ship before confirm")
	assert.Error(t, order.Deliver(ctx), "cannot deliver before ship")
}

func TestEstimatedDelivery(t *testing.T) {
	order := newTestOrder()
	order.Address.Days = 5
	from := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	order.SetEstimatedDelivery(from)

	require.NotNil(t, order.EstimatedDelivery)
	assert.Equal(t, time.Date(2026, 3, 6, 10, 0, 0, 0, time.UTC), *order.EstimatedDelivery)

	pickup := newTestOrder()
	pickup.SetEstimatedDelivery(from)
	assert.Nil(t, pickup.EstimatedDelivery, "pickup has no delivery estimate")
}

func TestOrderItemLineTotal(t *testing.T) {
	item := OrderItem{UnitPrice: decimal.NewFromFloat(89.90), Quantity: 3}
	assert.Equal(t, "269.70", item.LineTotal().StringFixed(2))
}
