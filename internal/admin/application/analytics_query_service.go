// 生成摘要：看板统计查询服务。
package application

import (
	"context"
	"fmt"

	"github.com/wyfcoding/ecommerce/internal/admin/domain"
)

const (
	defaultSeriesDays = 30
	maxSeriesDays     = 365
	defaultTopCount   = 10
	maxTopCount       = 50
)

// AnalyticsQueryService 统计投影读取侧
type AnalyticsQueryService struct {
	analytics domain.AnalyticsRepository
}

// NewAnalyticsQueryService 创建统计查询服务实例
func NewAnalyticsQueryService(analytics domain.AnalyticsRepository) *AnalyticsQueryService {
	return &AnalyticsQueryService{analytics: analytics}
}

// GetSummary 汇总卡片：总销售额、总订单数、客单价
func (s *AnalyticsQueryService) GetSummary(ctx context.Context) (*SummaryDTO, error) {
	summary, err := s.analytics.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard summary: %w", err)
	}
	return toSummaryDTO(summary.WithAverage()), nil
}

// ListDailySales 最近 days 天的逐日销售序列
func (s *AnalyticsQueryService) ListDailySales(ctx context.Context, days int) ([]DailySalesDTO, error) {
	if days <= 0 {
		days = defaultSeriesDays
	}
	if days > maxSeriesDays {
		days = maxSeriesDays
	}
	series, err := s.analytics.ListDailySales(ctx, days)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily sales: %w", err)
	}
	return toDailySalesDTOs(series), nil
}

// TopProducts 按销量降序的商品排行
func (s *AnalyticsQueryService) TopProducts(ctx context.Context, limit int) ([]ProductSalesDTO, error) {
	if limit <= 0 {
		limit = defaultTopCount
	}
	if limit > maxTopCount {
		limit = maxTopCount
	}
	products, err := s.analytics.TopProducts(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list top products: %w", err)
	}
	return toProductSalesDTOs(products), nil
}
