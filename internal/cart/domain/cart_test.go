package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stocked(id uint, price string, qty, stock int) LineItem {
	return LineItem{ProductID: id, Name: "p", UnitPrice: dec(price), Quantity: qty, StockLimit: stock}
}

func TestAddItemMergesSameProduct(t *testing.T) {
	cart := NewCart("u1")
	require.NoError(t, cart.AddItem(stocked(1, "10.00", 1, 5)))
	require.NoError(t, cart.AddItem(stocked(1, "10.00", 2, 5)))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestAddItemRejectsBeyondStock(t *testing.T) {
	cart := NewCart("u1")
	require.NoError(t, cart.AddItem(stocked(1, "10.00", 4, 5)))
	err := cart.AddItem(stocked(1, "10.00", 2, 5))
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 4, cart.Items[0].Quantity)
}

func TestAddItemPreservesInsertionOrder(t *testing.T) {
	cart := NewCart("u1")
	require.NoError(t, cart.AddItem(stocked(3, "1.00", 1, 9)))
	require.NoError(t, cart.AddItem(stocked(1, "1.00", 1, 9)))
	require.NoError(t, cart.AddItem(stocked(2, "1.00", 1, 9)))

	ids := []uint{cart.Items[0].ProductID, cart.Items[1].ProductID, cart.Items[2].ProductID}
	assert.Equal(t, []uint{3, 1, 2}, ids)
}

func TestUpdateQuantityClampsToStock(t *testing.T) {
	cart := NewCart("u1")
	require.NoError(t, cart.AddItem(stocked(1, "10.00", 1, 3)))
	cart.UpdateQuantity(1, 10)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	cart := NewCart("u1")
	require.NoError(t, cart.AddItem(stocked(1, "10.00", 2, 5)))
	cart.UpdateQuantity(1, 0)
	assert.True(t, cart.IsEmpty())
}

func TestClearDropsItemsAndCoupon(t *testing.T) {
	cart := NewCart("u1")
	require.NoError(t, cart.AddItem(stocked(1, "10.00", 1, 5)))
	cart.ApplyCoupon("WELCOME10")
	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.Empty(t, cart.AppliedCoupon)
}

func TestCartSnapshotRoundTrip(t *testing.T) {
	cart := NewCart("u1")
	require.NoError(t, cart.AddItem(stocked(1, "19.90", 2, 10)))
	require.NoError(t, cart.AddItem(stocked(2, "5.00", 1, 3)))
	require.NoError(t, cart.AddItem(stocked(3, "120.00", 1, 2)))
	cart.ApplyCoupon("SAVE20")

	data, err := json.Marshal(cart)
	require.NoError(t, err)

	var restored Cart
	require.NoError(t, json.Unmarshal(data, &restored))

	assert.Equal(t, cart.UserID, restored.UserID)
	assert.Equal(t, cart.AppliedCoupon, restored.AppliedCoupon)
	require.Len(t, restored.Items, 3)
	for i := range cart.Items {
		assert.Equal(t, cart.Items[i].ProductID, restored.Items[i].ProductID)
		assert.Equal(t, cart.Items[i].Quantity, restored.Items[i].Quantity)
		assert.True(t, cart.Items[i].UnitPrice.Equal(restored.Items[i].UnitPrice))
	}
}
