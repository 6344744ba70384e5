// 生成摘要：运营看板领域模型：订单事件投影出的销售统计。
package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DailySales 按自然日聚合的销售额与订单数
type DailySales struct {
	Date    time.Time       `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int             `json:"orders"`
}

// ProductSales 商品维度的累计销量
type ProductSales struct {
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	Units     int             `json:"units"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// DashboardSummary 看板顶部汇总卡片
type DashboardSummary struct {
	Revenue       decimal.Decimal `json:"revenue"`
	Orders        int             `json:"orders"`
	AverageTicket decimal.Decimal `json:"average_ticket"`
}

// SoldItem 被记录订单里的一行商品
type SoldItem struct {
	ProductID uint
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// RecordedOrder 一笔待投影的订单
type RecordedOrder struct {
	OrderNo string
	Day     time.Time
	Total   decimal.Decimal
	Items   []SoldItem
}

// WithAverage 补算客单价，订单数为 0 时保持 0
func (s DashboardSummary) WithAverage() DashboardSummary {
	if s.Orders > 0 {
		s.AverageTicket = s.Revenue.Div(decimal.NewFromInt(int64(s.Orders))).Round(2)
	}
	return s
}

// AnalyticsRepository 统计投影仓储端口。
// RecordOrder 必须幂等：同一 order_no 重复投递只记一次。
type AnalyticsRepository interface {
	RecordOrder(ctx context.Context, rec RecordedOrder) error
	Summary(ctx context.Context) (DashboardSummary, error)
	ListDailySales(ctx context.Context, days int) ([]DailySales, error)
	TopProducts(ctx context.Context, limit int) ([]ProductSales, error)
}
