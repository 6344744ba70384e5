package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInsufficientStock 商品库存不足
var ErrInsufficientStock = errors.New("insufficient stock")

// LineItem 购物车行项目，保存加购时的商品快照
type LineItem struct {
	ProductID     uint            `json:"product_id"`
	Name          string          `json:"name"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	Quantity      int             `json:"quantity"`
	StockLimit    int             `json:"stock_limit"`
}

// Cart 购物车聚合根，行项目保持插入顺序
type Cart struct {
	UserID        string     `json:"user_id"`
	Items         []LineItem `json:"items"`
	AppliedCoupon string     `json:"applied_coupon,omitempty"`
}

// NewCart 创建空购物车
func NewCart(userID string) *Cart {
	return &Cart{UserID: userID}
}

// AddItem 添加商品；同一商品合并数量，超出库存上限则拒绝
func (c *Cart) AddItem(item LineItem) error {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			if c.Items[i].Quantity+item.Quantity > c.Items[i].StockLimit {
				return ErrInsufficientStock
			}
			c.Items[i].Quantity += item.Quantity
			return nil
		}
	}
	if item.Quantity > item.StockLimit {
		return ErrInsufficientStock
	}
	c.Items = append(c.Items, item)
	return nil
}

// RemoveItem 移除商品
func (c *Cart) RemoveItem(productID uint) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity 更新数量；<=0 时移除该行，超出库存则收敛到库存上限
func (c *Cart) UpdateQuantity(productID uint, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			if quantity > c.Items[i].StockLimit {
				quantity = c.Items[i].StockLimit
			}
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// TotalQuantity 购物车内商品总件数
func (c *Cart) TotalQuantity() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// IsEmpty 是否为空购物车
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ApplyCoupon 记录已应用的优惠券码；重复应用同一券码为幂等操作
func (c *Cart) ApplyCoupon(code string) {
	c.AppliedCoupon = code
}

// RemoveCoupon 移除优惠券
func (c *Cart) RemoveCoupon() {
	c.AppliedCoupon = ""
}

// Clear 清空购物车（含优惠券）
func (c *Cart) Clear() {
	c.Items = nil
	c.AppliedCoupon = ""
}
