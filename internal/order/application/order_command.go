// 生成摘要：订单命令服务：下单走事务性 outbox，状态流转发布变更事件。
package application

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/ecommerce/internal/order/domain"
	"github.com/wyfcoding/pkg/contextx"
	"github.com/wyfcoding/pkg/idgen"
	"github.com/wyfcoding/pkg/logging"
)

// SubmitOrderItem 下单商品行
type SubmitOrderItem struct {
	ProductID uint
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// SubmitOrderCommand 下单命令，由结算服务组装
type SubmitOrderCommand struct {
	UserID     string
	Items      []SubmitOrderItem
	CouponCode string
	Customer   domain.CustomerInfo
	Address    domain.DeliveryAddress
	Payment    domain.PaymentSummary
	Subtotal   decimal.Decimal
	Discount   decimal.Decimal
	Shipping   decimal.Decimal
	Total      decimal.Decimal
}

// OrderCommandService 订单命令服务
type OrderCommandService struct {
	repo      domain.OrderRepository
	publisher domain.EventPublisher
}

// NewOrderCommandService 创建订单命令服务实例
func NewOrderCommandService(repo domain.OrderRepository, publisher domain.EventPublisher) *OrderCommandService {
	return &OrderCommandService{repo: repo, publisher: publisher}
}

// SubmitOrder 创建订单。订单写入与 order.created 事件在同一事务内落库，
// 由 outbox 处理器异步推送，购物车与后台统计各自消费。
func (s *OrderCommandService) SubmitOrder(ctx context.Context, cmd SubmitOrderCommand) (string, error) {
	if len(cmd.Items) == 0 {
		return "", fmt.Errorf("order must contain at least one item")
	}

	items := make([]domain.OrderItem, 0, len(cmd.Items))
	for _, item := range cmd.Items {
		if item.Quantity <= 0 {
			return "", fmt.Errorf("invalid quantity %d for product %d", item.Quantity, item.ProductID)
		}
		items = append(items, domain.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	order := domain.NewOrder(fmt.Sprintf("ORD%d", idgen.GenID()), cmd.UserID, items)
	order.CouponCode = cmd.CouponCode
	order.Customer = cmd.Customer
	order.Address = cmd.Address
	order.Payment = cmd.Payment
	order.Subtotal = cmd.Subtotal
	order.Discount = cmd.Discount
	order.Shipping = cmd.Shipping
	order.Total = cmd.Total
	order.SetEstimatedDelivery(time.Now())

	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.Save(txCtx, order); err != nil {
			return err
		}
		event := domain.OrderCreatedEvent{
			OrderNo:    order.OrderNo,
			UserID:     order.UserID,
			Items:      toItemEvents(order.Items),
			CouponCode: order.CouponCode,
			Subtotal:   order.Subtotal.StringFixed(2),
			Discount:   order.Discount.StringFixed(2),
			Shipping:   order.Shipping.StringFixed(2),
			Total:      order.Total.StringFixed(2),
			Timestamp:  time.Now(),
		}
		return s.publisher.PublishInTx(ctx, contextx.GetTx(txCtx), domain.OrderCreatedEventType, order.OrderNo, event)
	})
	if err != nil {
		return "", fmt.Errorf("submit order: %w", err)
	}

	logging.Info(ctx, "order created", "order_no", order.OrderNo, "user_id", order.UserID, "total", order.Total.StringFixed(2))
	return order.OrderNo, nil
}

// ConfirmOrder 确认订单
func (s *OrderCommandService) ConfirmOrder(ctx context.Context, orderNo string) error {
	return s.transition(ctx, orderNo, domain.OrderConfirmedEventType, "", func(ctx context.Context, o *domain.Order) error {
		return o.Confirm(ctx)
	})
}

// ShipOrder 发货
func (s *OrderCommandService) ShipOrder(ctx context.Context, orderNo string) error {
	return s.transition(ctx, orderNo, domain.OrderShippedEventType, "", func(ctx context.Context, o *domain.Order) error {
		return o.Ship(ctx)
	})
}

// DeliverOrder 确认送达
func (s *OrderCommandService) DeliverOrder(ctx context.Context, orderNo string) error {
	return s.transition(ctx, orderNo, domain.OrderDeliveredEventType, "", func(ctx context.Context, o *domain.Order) error {
		return o.Deliver(ctx)
	})
}

// CancelOrder 取消订单
func (s *OrderCommandService) CancelOrder(ctx context.Context, orderNo, reason string) error {
	return s.transition(ctx, orderNo, domain.OrderCancelledEventType, reason, func(ctx context.Context, o *domain.Order) error {
		return o.Cancel(ctx, reason)
	})
}

func (s *OrderCommandService) transition(
	ctx context.Context,
	orderNo, eventType, reason string,
	apply func(ctx context.Context, o *domain.Order) error,
) error {
	order, err := s.repo.GetByOrderNo(ctx, orderNo)
	if err != nil {
		return fmt.Errorf("load order %s: %w", orderNo, err)
	}
	if order == nil {
		return domain.ErrOrderNotFound
	}

	oldStatus := order.Status
	if err := apply(ctx, order); err != nil {
		return err
	}

	return s.repo.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.Update(txCtx, order); err != nil {
			return err
		}
		event := domain.OrderStatusChangedEvent{
			OrderNo:   order.OrderNo,
			UserID:    order.UserID,
			OldStatus: string(oldStatus),
			NewStatus: string(order.Status),
			Reason:    reason,
			Timestamp: time.Now(),
		}
		return s.publisher.PublishInTx(ctx, contextx.GetTx(txCtx), eventType, order.OrderNo, event)
	})
}

func toItemEvents(items []domain.OrderItem) []domain.OrderItemEvent {
	out := make([]domain.OrderItemEvent, 0, len(items))
	for _, item := range items {
		out = append(out, domain.OrderItemEvent{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice.StringFixed(2),
			Quantity:  item.Quantity,
		})
	}
	return out
}
