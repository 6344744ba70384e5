// 生成摘要：销售投影 MySQL 仓储：幂等写入加看板聚合查询。
package mysql

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/ecommerce/internal/admin/domain"
	"github.com/wyfcoding/pkg/logging"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type analyticsRepository struct{ db *gorm.DB }

// NewAnalyticsRepository 创建销售投影 MySQL 仓储
func NewAnalyticsRepository(db *gorm.DB) domain.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// RecordOrder 在一个事务里打去重标记并累计日销售与商品销量。
// 订单号已存在时整笔跳过，消费端重复投递不会重复计数。
func (r *analyticsRepository) RecordOrder(ctx context.Context, rec domain.RecordedOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		marker := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_no"}},
			DoNothing: true,
		}).Create(&ProcessedOrderModel{OrderNo: rec.OrderNo})
		if marker.Error != nil {
			return fmt.Errorf("failed to mark order processed: %w", marker.Error)
		}
		if marker.RowsAffected == 0 {
			logging.Debug(ctx, "order already projected, skipping", "order_no", rec.OrderNo)
			return nil
		}

		daily := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "day"}},
			DoUpdates: clause.Assignments(map[string]any{
				"revenue": gorm.Expr("revenue + ?", rec.Total),
				"orders":  gorm.Expr("orders + 1"),
			}),
		}).Create(&DailySalesModel{Day: rec.Day, Revenue: rec.Total, Orders: 1})
		if daily.Error != nil {
			return fmt.Errorf("failed to upsert daily sales: %w", daily.Error)
		}

		for _, item := range rec.Items {
			lineRevenue := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
			product := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "product_id"}},
				DoUpdates: clause.Assignments(map[string]any{
					"name":    item.Name,
					"units":   gorm.Expr("units + ?", item.Quantity),
					"revenue": gorm.Expr("revenue + ?", lineRevenue),
				}),
			}).Create(&ProductSalesModel{
				ProductID: item.ProductID,
				Name:      item.Name,
				Units:     item.Quantity,
				Revenue:   lineRevenue,
			})
			if product.Error != nil {
				return fmt.Errorf("failed to upsert product sales: %w", product.Error)
			}
		}
		return nil
	})
}

func (r *analyticsRepository) Summary(ctx context.Context) (domain.DashboardSummary, error) {
	var row struct {
		Revenue decimal.Decimal
		Orders  int
	}
	err := r.db.WithContext(ctx).Model(&DailySalesModel{}).
		Select("COALESCE(SUM(revenue), 0) AS revenue, COALESCE(SUM(orders), 0) AS orders").
		Scan(&row).Error
	if err != nil {
		return domain.DashboardSummary{}, err
	}
	return domain.DashboardSummary{Revenue: row.Revenue, Orders: row.Orders}, nil
}

// windowStart 最近 days 天窗口的首日（含当天）
func windowStart(now time.Time, days int) time.Time {
	return now.UTC().Truncate(24 * time.Hour).AddDate(0, 0, -(days - 1))
}

func (r *analyticsRepository) ListDailySales(ctx context.Context, days int) ([]domain.DailySales, error) {
	start := windowStart(time.Now(), days)
	var models []DailySalesModel
	err := r.db.WithContext(ctx).
		Where("day >= ?", start.Format("2006-01-02")).
		Order("day ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.DailySales, 0, len(models))
	for _, m := range models {
		out = append(out, domain.DailySales{Date: m.Day, Revenue: m.Revenue, Orders: m.Orders})
	}
	return out, nil
}

func (r *analyticsRepository) TopProducts(ctx context.Context, limit int) ([]domain.ProductSales, error) {
	var models []ProductSalesModel
	err := r.db.WithContext(ctx).
		Order("units DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.ProductSales, 0, len(models))
	for _, m := range models {
		out = append(out, domain.ProductSales{
			ProductID: m.ProductID,
			Name:      m.Name,
			Units:     m.Units,
			Revenue:   m.Revenue,
		})
	}
	return out, nil
}
