// 生成摘要：销售投影 MySQL 模型。
package mysql

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProcessedOrderModel 已投影订单标记，按订单号去重
type ProcessedOrderModel struct {
	ID        uint      `gorm:"primarykey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	OrderNo   string    `gorm:"column:order_no;type:varchar(64);uniqueIndex;not null"`
}

func (ProcessedOrderModel) TableName() string {
	return "processed_orders"
}

// DailySalesModel 按日聚合的销售行
type DailySalesModel struct {
	ID        uint            `gorm:"primarykey"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime"`
	Day       time.Time       `gorm:"column:day;type:date;uniqueIndex;not null"`
	Revenue   decimal.Decimal `gorm:"column:revenue;type:decimal(20,4);not null"`
	Orders    int             `gorm:"column:orders;not null"`
}

func (DailySalesModel) TableName() string {
	return "daily_sales"
}

// ProductSalesModel 商品维度累计销量
type ProductSalesModel struct {
	ID        uint            `gorm:"primarykey"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime"`
	ProductID uint            `gorm:"column:product_id;uniqueIndex;not null"`
	Name      string          `gorm:"column:name;type:varchar(255);not null"`
	Units     int             `gorm:"column:units;not null"`
	Revenue   decimal.Decimal `gorm:"column:revenue;type:decimal(20,4);not null"`
}

func (ProductSalesModel) TableName() string {
	return "product_sales"
}
