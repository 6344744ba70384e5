// 生成摘要：订单服务 HTTP 客户端，提交草稿换取订单号。
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/wyfcoding/ecommerce/internal/checkout/domain"
)

// OrderClient 订单服务客户端
type OrderClient struct {
	http *resty.Client
}

// NewOrderClient 创建订单客户端。提交不重试，避免重复下单。
func NewOrderClient(baseURL string) *OrderClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second)
	return &OrderClient{http: c}
}

type submitOrderItem struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

type submitOrderRequest struct {
	UserID       string                 `json:"user_id"`
	Items        []submitOrderItem      `json:"items"`
	CouponCode   string                 `json:"coupon_code,omitempty"`
	Personal     domain.PersonalInfo    `json:"personal"`
	Address      domain.ShippingAddress `json:"address"`
	Payment      paymentPayload         `json:"payment"`
	Subtotal     string                 `json:"subtotal"`
	Discount     string                 `json:"discount"`
	Shipping     string                 `json:"shipping"`
	Total        string                 `json:"total"`
	ShippingDays int                    `json:"shipping_days"`
}

// paymentPayload 只传递订单需要的支付摘要，完整卡号不出结算服务
type paymentPayload struct {
	Method       string `json:"method"`
	CardLast4    string `json:"card_last4,omitempty"`
	Installments int    `json:"installments,omitempty"`
}

type submitOrderResponse struct {
	OrderNo string `json:"order_no"`
}

// Submit 提交订单，成功返回订单号
func (c *OrderClient) Submit(ctx context.Context, draft *domain.OrderDraft) (string, error) {
	req := submitOrderRequest{
		UserID:   draft.UserID,
		Items:    make([]submitOrderItem, 0, len(draft.Items)),
		Personal: draft.Personal,
		Address:  draft.Address,
		Payment: paymentPayload{
			Method:       string(draft.Payment.Method),
			CardLast4:    lastFourDigits(draft.Payment.CardNumber),
			Installments: draft.Payment.Installments,
		},
		Subtotal: draft.Totals.Subtotal.StringFixed(2),
		Discount: draft.Totals.Discount.StringFixed(2),
		Shipping: draft.Totals.Shipping.StringFixed(2),
		Total:    draft.Totals.Total.StringFixed(2),
	}
	if draft.Coupon != nil {
		req.CouponCode = draft.Coupon.Code
	}
	req.ShippingDays = draft.ShippingDays
	for _, item := range draft.Items {
		req.Items = append(req.Items, submitOrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice.StringFixed(2),
			Quantity:  item.Quantity,
		})
	}

	var body submitOrderResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&body).
		Post("/api/v1/orders")
	if err != nil {
		return "", fmt.Errorf("order request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("order service returned status %d", resp.StatusCode())
	}
	if body.OrderNo == "" {
		return "", fmt.Errorf("order service returned empty order number")
	}
	return body.OrderNo, nil
}

func lastFourDigits(s string) string {
	digits := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			digits = append(digits, s[i])
		}
	}
	if len(digits) < 4 {
		return ""
	}
	return string(digits[len(digits)-4:])
}
