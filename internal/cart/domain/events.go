package domain

import (
	"context"
	"time"
)

const (
	CartItemAddedEventType   = "cart.item.added"
	CartItemRemovedEventType = "cart.item.removed"
	CartClearedEventType     = "cart.cleared"
	CouponAppliedEventType   = "cart.coupon.applied"
)

// CartItemAddedEvent 购物车添加商品事件
type CartItemAddedEvent struct {
	UserID    string    `json:"user_id"`
	ProductID uint      `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UnitPrice string    `json:"unit_price"`
	Timestamp time.Time `json:"timestamp"`
}

// CartItemRemovedEvent 购物车移除商品事件
type CartItemRemovedEvent struct {
	UserID    string    `json:"user_id"`
	ProductID uint      `json:"product_id"`
	Timestamp time.Time `json:"timestamp"`
}

// CartClearedEvent 购物车清空事件
type CartClearedEvent struct {
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

// CouponAppliedEvent 优惠券应用事件
type CouponAppliedEvent struct {
	UserID    string    `json:"user_id"`
	Code      string    `json:"code"`
	Discount  string    `json:"discount"`
	Timestamp time.Time `json:"timestamp"`
}

// EventPublisher 事件发布者接口
type EventPublisher interface {
	Publish(ctx context.Context, topic string, key string, event any) error
}
