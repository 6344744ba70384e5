package mysql

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/ecommerce/internal/order/domain"
)

// OrderModel MySQL 订单表映射。
// 商品行和各类快照序列化为 JSON 列，订单一旦创建即为不可变快照。
type OrderModel struct {
	ID                uint            `gorm:"primaryKey;autoIncrement"`
	CreatedAt         time.Time       `gorm:"column:created_at"`
	UpdatedAt         time.Time       `gorm:"column:updated_at"`
	OrderNo           string          `gorm:"column:order_no;type:varchar(32);uniqueIndex;not null"`
	UserID            string          `gorm:"column:user_id;type:varchar(50);index;not null"`
	Items             string          `gorm:"column:items;type:json;not null"`
	CouponCode        string          `gorm:"column:coupon_code;type:varchar(50)"`
	Customer          string          `gorm:"column:customer;type:json;not null"`
	Address           string          `gorm:"column:address;type:json;not null"`
	Payment           string          `gorm:"column:payment;type:json;not null"`
	Subtotal          decimal.Decimal `gorm:"column:subtotal;type:decimal(20,4);not null"`
	Discount          decimal.Decimal `gorm:"column:discount;type:decimal(20,4);not null"`
	Shipping          decimal.Decimal `gorm:"column:shipping;type:decimal(20,4);not null"`
	Total             decimal.Decimal `gorm:"column:total;type:decimal(20,4);not null"`
	Status            string          `gorm:"column:status;type:varchar(20);index;not null"`
	EstimatedDelivery *time.Time      `gorm:"column:estimated_delivery"`
	ConfirmedAt       *time.Time      `gorm:"column:confirmed_at"`
	ShippedAt         *time.Time      `gorm:"column:shipped_at"`
	DeliveredAt       *time.Time      `gorm:"column:delivered_at"`
	CancelledAt       *time.Time      `gorm:"column:cancelled_at"`
	CancelReason      string          `gorm:"column:cancel_reason;type:varchar(255)"`
}

func (OrderModel) TableName() string { return "orders" }

func toOrderModel(o *domain.Order) (*OrderModel, error) {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return nil, fmt.Errorf("marshal order items: %w", err)
	}
	customer, err := json.Marshal(o.Customer)
	if err != nil {
		return nil, fmt.Errorf("marshal customer: %w", err)
	}
	address, err := json.Marshal(o.Address)
	if err != nil {
		return nil, fmt.Errorf("marshal address: %w", err)
	}
	payment, err := json.Marshal(o.Payment)
	if err != nil {
		return nil, fmt.Errorf("marshal payment: %w", err)
	}
	return &OrderModel{
		ID:                o.ID,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
		OrderNo:           o.OrderNo,
		UserID:            o.UserID,
		Items:             string(items),
		CouponCode:        o.CouponCode,
		Customer:          string(customer),
		Address:           string(address),
		Payment:           string(payment),
		Subtotal:          o.Subtotal,
		Discount:          o.Discount,
		Shipping:          o.Shipping,
		Total:             o.Total,
		Status:            string(o.Status),
		EstimatedDelivery: o.EstimatedDelivery,
		ConfirmedAt:       o.ConfirmedAt,
		ShippedAt:         o.ShippedAt,
		DeliveredAt:       o.DeliveredAt,
		CancelledAt:       o.CancelledAt,
		CancelReason:      o.CancelReason,
	}, nil
}

func toOrder(m *OrderModel) (*domain.Order, error) {
	order := &domain.Order{
		ID:                m.ID,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
		OrderNo:           m.OrderNo,
		UserID:            m.UserID,
		CouponCode:        m.CouponCode,
		Subtotal:          m.Subtotal,
		Discount:          m.Discount,
		Shipping:          m.Shipping,
		Total:             m.Total,
		Status:            domain.OrderStatus(m.Status),
		EstimatedDelivery: m.EstimatedDelivery,
		ConfirmedAt:       m.ConfirmedAt,
		ShippedAt:         m.ShippedAt,
		DeliveredAt:       m.DeliveredAt,
		CancelledAt:       m.CancelledAt,
		CancelReason:      m.CancelReason,
	}
	if err := json.Unmarshal([]byte(m.Items), &order.Items); err != nil {
		return nil, fmt.Errorf("unmarshal order items: %w", err)
	}
	if err := json.Unmarshal([]byte(m.Customer), &order.Customer); err != nil {
		return nil, fmt.Errorf("unmarshal customer: %w", err)
	}
	if err := json.Unmarshal([]byte(m.Address), &order.Address); err != nil {
		return nil, fmt.Errorf("unmarshal address: %w", err)
	}
	if err := json.Unmarshal([]byte(m.Payment), &order.Payment); err != nil {
		return nil, fmt.Errorf("unmarshal payment: %w", err)
	}
	order.InitFSM()
	return order, nil
}
