package application

import (
	"time"

	"github.com/wyfcoding/ecommerce/internal/order/domain"
)

// OrderItemDTO 订单商品行视图
type OrderItemDTO struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

// OrderDTO 订单视图，金额统一两位小数字符串
type OrderDTO struct {
	OrderNo           string                 `json:"order_no"`
	UserID            string                 `json:"user_id"`
	Status            string                 `json:"status"`
	Items             []OrderItemDTO         `json:"items"`
	CouponCode        string                 `json:"coupon_code,omitempty"`
	Customer          domain.CustomerInfo    `json:"customer"`
	Address           domain.DeliveryAddress `json:"address"`
	Payment           domain.PaymentSummary  `json:"payment"`
	Subtotal          string                 `json:"subtotal"`
	Discount          string                 `json:"discount"`
	Shipping          string                 `json:"shipping"`
	Total             string                 `json:"total"`
	EstimatedDelivery *time.Time             `json:"estimated_delivery,omitempty"`
	CreatedAt         time.Time              `json:"created_at"`
}

func toOrderDTO(order *domain.Order) *OrderDTO {
	dto := &OrderDTO{
		OrderNo:           order.OrderNo,
		UserID:            order.UserID,
		Status:            string(order.Status),
		Items:             make([]OrderItemDTO, 0, len(order.Items)),
		CouponCode:        order.CouponCode,
		Customer:          order.Customer,
		Address:           order.Address,
		Payment:           order.Payment,
		Subtotal:          order.Subtotal.StringFixed(2),
		Discount:          order.Discount.StringFixed(2),
		Shipping:          order.Shipping.StringFixed(2),
		Total:             order.Total.StringFixed(2),
		EstimatedDelivery: order.EstimatedDelivery,
		CreatedAt:         order.CreatedAt,
	}
	for _, item := range order.Items {
		dto.Items = append(dto.Items, OrderItemDTO{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice.StringFixed(2),
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal().StringFixed(2),
		})
	}
	return dto
}
