package application

import (
	"context"

	"github.com/wyfcoding/ecommerce/internal/order/domain"
)

// OrderService 订单服务门面，整合命令服务和查询服务
type OrderService struct {
	commandService *OrderCommandService
	queryService   *OrderQueryService
}

// NewOrderService 创建订单服务门面实例
func NewOrderService(repo domain.OrderRepository, publisher domain.EventPublisher) *OrderService {
	return &OrderService{
		commandService: NewOrderCommandService(repo, publisher),
		queryService:   NewOrderQueryService(repo),
	}
}

// SubmitOrder 下单
func (s *OrderService) SubmitOrder(ctx context.Context, cmd SubmitOrderCommand) (string, error) {
	return s.commandService.SubmitOrder(ctx, cmd)
}

// GetOrder 按订单号查询
func (s *OrderService) GetOrder(ctx context.Context, orderNo string) (*OrderDTO, error) {
	return s.queryService.GetOrder(ctx, orderNo)
}

// ListOrders 按用户分页查询
func (s *OrderService) ListOrders(ctx context.Context, userID string, page, pageSize int) ([]*OrderDTO, int64, error) {
	return s.queryService.ListOrders(ctx, userID, page, pageSize)
}

// ConfirmOrder 确认订单
func (s *OrderService) ConfirmOrder(ctx context.Context, orderNo string) error {
	return s.commandService.ConfirmOrder(ctx, orderNo)
}

// ShipOrder 发货
func (s *OrderService) ShipOrder(ctx context.Context, orderNo string) error {
	return s.commandService.ShipOrder(ctx, orderNo)
}

// DeliverOrder 确认送达
func (s *OrderService) DeliverOrder(ctx context.Context, orderNo string) error {
	return s.commandService.DeliverOrder(ctx, orderNo)
}

// CancelOrder 取消订单
func (s *OrderService) CancelOrder(ctx context.Context, orderNo, reason string) error {
	return s.commandService.CancelOrder(ctx, orderNo, reason)
}
