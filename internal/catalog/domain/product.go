// 生成摘要：商品目录领域模型。
package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ProductStatus 商品状态
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// ErrProductNotFound 商品不存在
var ErrProductNotFound = errors.New("product not found")

// Product 商品聚合根
type Product struct {
	ID            uint            `json:"id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Brand         string          `json:"brand"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"original_price"` // 零值表示无划线价
	Stock         int             `json:"stock"`
	Rating        float64         `json:"rating"`
	Reviews       int             `json:"reviews"`
	Featured      bool            `json:"featured"`
	Tags          []string        `json:"tags"`
	Status        ProductStatus   `json:"status"`
}

// InStock 是否有库存
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// Active 是否上架
func (p *Product) Active() bool {
	return p.Status == ProductStatusActive
}

// OnSale 是否有划线价折扣
func (p *Product) OnSale() bool {
	return p.OriginalPrice.IsPositive() && p.OriginalPrice.GreaterThan(p.Price)
}

// AdjustStock 调整库存，返回旧库存；减到负数视为 0
func (p *Product) AdjustStock(delta int) int {
	old := p.Stock
	p.Stock += delta
	if p.Stock < 0 {
		p.Stock = 0
	}
	return old
}
