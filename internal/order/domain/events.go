package domain

import (
	"context"
	"time"
)

const (
	OrderCreatedEventType   = "order.created"
	OrderConfirmedEventType = "order.confirmed"
	OrderShippedEventType   = "order.shipped"
	OrderDeliveredEventType = "order.delivered"
	OrderCancelledEventType = "order.cancelled"
)

// OrderItemEvent 事件里的商品行
type OrderItemEvent struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

// OrderCreatedEvent 订单创建事件，购物车和后台统计都订阅它
type OrderCreatedEvent struct {
	OrderNo    string           `json:"order_no"`
	UserID     string           `json:"user_id"`
	Items      []OrderItemEvent `json:"items"`
	CouponCode string           `json:"coupon_code,omitempty"`
	Subtotal   string           `json:"subtotal"`
	Discount   string           `json:"discount"`
	Shipping   string           `json:"shipping"`
	Total      string           `json:"total"`
	Timestamp  time.Time        `json:"timestamp"`
}

// OrderStatusChangedEvent 订单状态流转事件
type OrderStatusChangedEvent struct {
	OrderNo   string    `json:"order_no"`
	UserID    string    `json:"user_id"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	Reason    string    `json:"reason,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// EventPublisher 事件发布端口，outbox 实现保证与订单写入同事务
type EventPublisher interface {
	Publish(ctx context.Context, topic string, key string, event any) error
	PublishInTx(ctx context.Context, tx any, topic string, key string, event any) error
}
