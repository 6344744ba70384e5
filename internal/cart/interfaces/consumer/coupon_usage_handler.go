package consumer

import (
	"context"
	"encoding/json"
	"log/slog"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/wyfcoding/ecommerce/internal/cart/domain"
	"github.com/wyfcoding/pkg/messagequeue/kafka"
)

// CouponUsageHandler 消费订单创建事件，累计优惠券使用次数
type CouponUsageHandler struct {
	coupons domain.CouponRepository
	logger  *slog.Logger
}

// NewCouponUsageHandler 创建优惠券用量投影处理器
func NewCouponUsageHandler(coupons domain.CouponRepository, logger *slog.Logger) *CouponUsageHandler {
	return &CouponUsageHandler{coupons: coupons, logger: logger}
}

func (h *CouponUsageHandler) Handle(ctx context.Context, msg kafkago.Message) error {
	var event struct {
		OrderNo    string `json:"order_no"`
		CouponCode string `json:"coupon_code"`
	}
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.ErrorContext(ctx, "failed to unmarshal order created event", "error", err)
		return err
	}
	if event.CouponCode == "" {
		return nil
	}
	if err := h.coupons.IncrementUsage(ctx, event.CouponCode, event.OrderNo); err != nil {
		h.logger.ErrorContext(ctx, "failed to increment coupon usage", "code", event.CouponCode, "order_no", event.OrderNo, "error", err)
		return err
	}
	return nil
}

// Subscribe 订阅订单事件
func (h *CouponUsageHandler) Subscribe(ctx context.Context, consumer *kafka.Consumer) {
	consumer.Start(ctx, 1, h.Handle)
}
