// 生成摘要：看板统计命令服务：把订单事件写入销售投影。
package application

import (
	"context"
	"errors"
	"time"

	"github.com/wyfcoding/ecommerce/internal/admin/domain"
	"github.com/wyfcoding/pkg/logging"
)

// ErrMissingOrderNo 事件缺少订单号，无法去重
var ErrMissingOrderNo = errors.New("order number is required")

// AnalyticsCommandService 统计投影写入侧
type AnalyticsCommandService struct {
	analytics domain.AnalyticsRepository
}

// NewAnalyticsCommandService 创建统计命令服务实例
func NewAnalyticsCommandService(analytics domain.AnalyticsRepository) *AnalyticsCommandService {
	return &AnalyticsCommandService{analytics: analytics}
}

// RecordOrder 把一笔订单计入当日销售额与商品销量。
// 仓储按订单号去重，重复投递安全。
func (s *AnalyticsCommandService) RecordOrder(ctx context.Context, rec domain.RecordedOrder) error {
	if rec.OrderNo == "" {
		return ErrMissingOrderNo
	}
	rec.Day = rec.Day.UTC().Truncate(24 * time.Hour)
	if err := s.analytics.RecordOrder(ctx, rec); err != nil {
		return err
	}
	logging.Info(ctx, "order recorded in sales projection",
		"order_no", rec.OrderNo, "total", rec.Total.StringFixed(2), "items", len(rec.Items))
	return nil
}
