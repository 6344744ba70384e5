package consumer

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/wyfcoding/ecommerce/internal/admin/application"
	"github.com/wyfcoding/ecommerce/internal/admin/domain"
	"github.com/wyfcoding/pkg/messagequeue/kafka"
)

// OrderProjectionHandler 消费订单创建事件，投影进销售统计
type OrderProjectionHandler struct {
	analytics *application.AnalyticsService
	logger    *slog.Logger
}

// NewOrderProjectionHandler 创建订单投影处理器
func NewOrderProjectionHandler(analytics *application.AnalyticsService, logger *slog.Logger) *OrderProjectionHandler {
	return &OrderProjectionHandler{analytics: analytics, logger: logger}
}

func (h *OrderProjectionHandler) Handle(ctx context.Context, msg kafkago.Message) error {
	var event struct {
		OrderNo string `json:"order_no"`
		Items   []struct {
			ProductID uint   `json:"product_id"`
			Name      string `json:"name"`
			UnitPrice string `json:"unit_price"`
			Quantity  int    `json:"quantity"`
		} `json:"items"`
		Total     string    `json:"total"`
		Timestamp time.Time `json:"timestamp"`
	}
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.ErrorContext(ctx, "failed to unmarshal order created event", "error", err)
		return err
	}

	total, err := decimal.NewFromString(event.Total)
	if err != nil {
		h.logger.ErrorContext(ctx, "order event carries invalid total", "order_no", event.OrderNo, "total", event.Total, "error", err)
		return err
	}
	day := event.Timestamp
	if day.IsZero() {
		day = msg.Time
	}

	rec := domain.RecordedOrder{
		OrderNo: event.OrderNo,
		Day:     day,
		Total:   total,
		Items:   make([]domain.SoldItem, 0, len(event.Items)),
	}
	for _, item := range event.Items {
		price, err := decimal.NewFromString(item.UnitPrice)
		if err != nil {
			h.logger.ErrorContext(ctx, "order event carries invalid unit price", "order_no", event.OrderNo, "product_id", item.ProductID, "error", err)
			return err
		}
		rec.Items = append(rec.Items, domain.SoldItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: price,
			Quantity:  item.Quantity,
		})
	}

	if err := h.analytics.RecordOrder(ctx, rec); err != nil {
		h.logger.ErrorContext(ctx, "failed to project order into sales stats", "order_no", event.OrderNo, "error", err)
		return err
	}
	return nil
}

// Subscribe 订阅订单事件
func (h *OrderProjectionHandler) Subscribe(ctx context.Context, consumer *kafka.Consumer) {
	consumer.Start(ctx, 1, h.Handle)
}
