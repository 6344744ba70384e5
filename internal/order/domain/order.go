// 生成摘要：订单聚合根，从结算草稿生成，状态机管理履约流程。
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/pkg/fsm"
)

// OrderStatus 订单状态
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"   // 已创建，待确认
	OrderStatusConfirmed OrderStatus = "CONFIRMED" // 已确认，备货中
	OrderStatusShipped   OrderStatus = "SHIPPED"   // 已发货
	OrderStatusDelivered OrderStatus = "DELIVERED" // 已送达
	OrderStatusCancelled OrderStatus = "CANCELLED" // 已取消
)

// ErrOrderNotFound 订单不存在
var ErrOrderNotFound = errors.New("order not found")

// OrderItem 订单商品行，下单时从草稿快照而来
type OrderItem struct {
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// LineTotal 行小计
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CustomerInfo 下单人信息快照
type CustomerInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	CPF       string `json:"cpf"`
	Phone     string `json:"phone"`
}

// DeliveryAddress 收货地址快照
type DeliveryAddress struct {
	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	Method       string `json:"method"`
	Days         int    `json:"days"`
}

// PaymentSummary 支付摘要，不保存完整卡号
type PaymentSummary struct {
	Method       string `json:"method"`
	CardLast4    string `json:"card_last4,omitempty"`
	Installments int    `json:"installments,omitempty"`
}

// Order 订单聚合根
type Order struct {
	ID                uint            `json:"id"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	OrderNo           string          `json:"order_no"`
	UserID            string          `json:"user_id"`
	Items             []OrderItem     `json:"items"`
	CouponCode        string          `json:"coupon_code,omitempty"`
	Customer          CustomerInfo    `json:"customer"`
	Address           DeliveryAddress `json:"address"`
	Payment           PaymentSummary  `json:"payment"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	Discount          decimal.Decimal `json:"discount"`
	Shipping          decimal.Decimal `json:"shipping"`
	Total             decimal.Decimal `json:"total"`
	Status            OrderStatus     `json:"status"`
	EstimatedDelivery *time.Time      `json:"estimated_delivery,omitempty"`
	ConfirmedAt       *time.Time      `json:"confirmed_at,omitempty"`
	ShippedAt         *time.Time      `json:"shipped_at,omitempty"`
	DeliveredAt       *time.Time      `json:"delivered_at,omitempty"`
	CancelledAt       *time.Time      `json:"cancelled_at,omitempty"`
	CancelReason      string          `json:"cancel_reason,omitempty"`
	fsm               *fsm.Machine[string, string]
}

// NewOrder 创建订单，预计送达时间按配送方式天数推算
func NewOrder(orderNo, userID string, items []OrderItem) *Order {
	o := &Order{
		OrderNo: orderNo,
		UserID:  userID,
		Items:   items,
		Status:  OrderStatusPending,
	}
	o.initFSM()
	return o
}

func (o *Order) initFSM() {
	m := fsm.NewMachine[string, string](string(o.Status))
	m.AddTransition(string(OrderStatusPending), "CONFIRM", string(OrderStatusConfirmed))
	m.AddTransition(string(OrderStatusConfirmed), "SHIP", string(OrderStatusShipped))
	m.AddTransition(string(OrderStatusShipped), "DELIVER", string(OrderStatusDelivered))
	m.AddTransition(string(OrderStatusPending), "CANCEL", string(OrderStatusCancelled))
	m.AddTransition(string(OrderStatusConfirmed), "CANCEL", string(OrderStatusCancelled))
	o.fsm = m
}

// InitFSM 确保状态机已初始化
func (o *Order) InitFSM() {
	if o.fsm == nil {
		o.initFSM()
	}
}

// SetEstimatedDelivery 按配送天数推算预计送达时间
func (o *Order) SetEstimatedDelivery(from time.Time) {
	if o.Address.Days <= 0 {
		return
	}
	eta := from.AddDate(0, 0, o.Address.Days)
	o.EstimatedDelivery = &eta
}

// Confirm 确认订单
func (o *Order) Confirm(ctx context.Context) error {
	o.InitFSM()
	if err := o.fsm.Trigger(ctx, "CONFIRM"); err != nil {
		return err
	}
	o.Status = OrderStatusConfirmed
	now := time.Now()
	o.ConfirmedAt = &now
	return nil
}

// Ship 发货
func (o *Order) Ship(ctx context.Context) error {
	o.InitFSM()
	if err := o.fsm.Trigger(ctx, "SHIP"); err != nil {
		return err
	}
	o.Status = OrderStatusShipped
	now := time.Now()
	o.ShippedAt = &now
	return nil
}

// Deliver 确认送达
func (o *Order) Deliver(ctx context.Context) error {
	o.InitFSM()
	if err := o.fsm.Trigger(ctx, "DELIVER"); err != nil {
		return err
	}
	o.Status = OrderStatusDelivered
	now := time.Now()
	o.DeliveredAt = &now
	return nil
}

// Cancel 取消订单，发货后不可取消
func (o *Order) Cancel(ctx context.Context, reason string) error {
	o.InitFSM()
	if err := o.fsm.Trigger(ctx, "CANCEL"); err != nil {
		return err
	}
	o.Status = OrderStatusCancelled
	o.CancelReason = reason
	now := time.Now()
	o.CancelledAt = &now
	return nil
}
