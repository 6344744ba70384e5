package application

import (
	"github.com/shopspring/decimal"

	"github.com/wyfcoding/ecommerce/internal/cart/domain"
)

func decimalFromInt(n int) decimal.Decimal { return decimal.NewFromInt(int64(n)) }

// LineItemDTO 购物车行项目视图
type LineItemDTO struct {
	ProductID     uint   `json:"product_id"`
	Name          string `json:"name"`
	UnitPrice     string `json:"unit_price"`
	OriginalPrice string `json:"original_price,omitempty"`
	Quantity      int    `json:"quantity"`
	StockLimit    int    `json:"stock_limit"`
	LineTotal     string `json:"line_total"`
}

// CartDTO 购物车视图，金额统一两位小数字符串
type CartDTO struct {
	UserID        string        `json:"user_id"`
	Items         []LineItemDTO `json:"items"`
	AppliedCoupon string        `json:"applied_coupon,omitempty"`
	Subtotal      string        `json:"subtotal"`
	Discount      string        `json:"discount"`
	Shipping      string        `json:"shipping"`
	Total         string        `json:"total"`
	TotalItems    int           `json:"total_items"`
}

func toCartDTO(cart *domain.Cart, totals domain.Totals) *CartDTO {
	dto := &CartDTO{
		UserID:        cart.UserID,
		Items:         make([]LineItemDTO, 0, len(cart.Items)),
		AppliedCoupon: cart.AppliedCoupon,
		Subtotal:      totals.Subtotal.StringFixed(2),
		Discount:      totals.Discount.StringFixed(2),
		Shipping:      totals.Shipping.StringFixed(2),
		Total:         totals.Total.StringFixed(2),
		TotalItems:    cart.TotalQuantity(),
	}
	for _, item := range cart.Items {
		line := LineItemDTO{
			ProductID:  item.ProductID,
			Name:       item.Name,
			UnitPrice:  item.UnitPrice.StringFixed(2),
			Quantity:   item.Quantity,
			StockLimit: item.StockLimit,
			LineTotal:  item.UnitPrice.Mul(decimalFromInt(item.Quantity)).StringFixed(2),
		}
		if item.OriginalPrice.IsPositive() {
			line.OriginalPrice = item.OriginalPrice.StringFixed(2)
		}
		dto.Items = append(dto.Items, line)
	}
	return dto
}
