package application

import (
	"context"

	"github.com/wyfcoding/ecommerce/internal/admin/domain"
)

// AnalyticsService 看板服务门面，整合命令服务和查询服务
type AnalyticsService struct {
	commandService *AnalyticsCommandService
	queryService   *AnalyticsQueryService
}

// NewAnalyticsService 创建看板服务门面实例
func NewAnalyticsService(analytics domain.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{
		commandService: NewAnalyticsCommandService(analytics),
		queryService:   NewAnalyticsQueryService(analytics),
	}
}

// RecordOrder 投影一笔订单
func (s *AnalyticsService) RecordOrder(ctx context.Context, rec domain.RecordedOrder) error {
	return s.commandService.RecordOrder(ctx, rec)
}

// GetSummary 看板汇总
func (s *AnalyticsService) GetSummary(ctx context.Context) (*SummaryDTO, error) {
	return s.queryService.GetSummary(ctx)
}

// ListDailySales 逐日销售序列
func (s *AnalyticsService) ListDailySales(ctx context.Context, days int) ([]DailySalesDTO, error) {
	return s.queryService.ListDailySales(ctx, days)
}

// TopProducts 商品销量排行
func (s *AnalyticsService) TopProducts(ctx context.Context, limit int) ([]ProductSalesDTO, error) {
	return s.queryService.TopProducts(ctx, limit)
}
