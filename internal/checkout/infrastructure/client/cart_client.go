// 生成摘要：购物车服务 HTTP 客户端，结算发起时取快照、完成后清空。
package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"github.com/wyfcoding/ecommerce/internal/checkout/domain"
)

// CartClient 购物车服务客户端
type CartClient struct {
	http *resty.Client
}

// NewCartClient 创建购物车客户端
func NewCartClient(baseURL string) *CartClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(5 * time.Second).
		SetRetryCount(2)
	return &CartClient{http: c}
}

type cartItemResponse struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

type cartResponse struct {
	UserID        string             `json:"user_id"`
	Items         []cartItemResponse `json:"items"`
	AppliedCoupon string             `json:"applied_coupon"`
}

type couponResponse struct {
	Code        string `json:"code"`
	Kind        string `json:"kind"`
	Amount      string `json:"amount"`
	MaxDiscount string `json:"max_discount"`
}

// GetCart 读取购物车快照，连同生效的优惠券一起锁定到草稿里
func (c *CartClient) GetCart(ctx context.Context, userID string) (*domain.CartSnapshot, error) {
	var body cartResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&body).
		Get("/api/v1/cart/" + userID)
	if err != nil {
		return nil, fmt.Errorf("cart request failed: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if resp.IsError() {
		return nil, fmt.Errorf("cart service returned status %d", resp.StatusCode())
	}

	snapshot := &domain.CartSnapshot{Items: make([]domain.DraftItem, 0, len(body.Items))}
	for _, item := range body.Items {
		price, err := decimal.NewFromString(item.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("invalid unit price %q for product %d: %w", item.UnitPrice, item.ProductID, err)
		}
		snapshot.Items = append(snapshot.Items, domain.DraftItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: price,
			Quantity:  item.Quantity,
		})
	}

	if body.AppliedCoupon != "" {
		coupon, err := c.getCoupon(ctx, body.AppliedCoupon)
		if err != nil {
			return nil, err
		}
		snapshot.Coupon = coupon
	}
	return snapshot, nil
}

func (c *CartClient) getCoupon(ctx context.Context, code string) (*domain.CouponSnapshot, error) {
	var body couponResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&body).
		Get("/api/v1/coupons/" + code)
	if err != nil {
		return nil, fmt.Errorf("coupon request failed: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if resp.IsError() {
		return nil, fmt.Errorf("cart service returned status %d", resp.StatusCode())
	}

	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid coupon amount %q: %w", body.Amount, err)
	}
	maxDiscount := decimal.Zero
	if body.MaxDiscount != "" {
		maxDiscount, err = decimal.NewFromString(body.MaxDiscount)
		if err != nil {
			return nil, fmt.Errorf("invalid coupon max discount %q: %w", body.MaxDiscount, err)
		}
	}
	return &domain.CouponSnapshot{
		Code:        body.Code,
		Kind:        domain.CouponKind(body.Kind),
		Amount:      amount,
		MaxDiscount: maxDiscount,
	}, nil
}

// ClearCart 结算成功后清空购物车
func (c *CartClient) ClearCart(ctx context.Context, userID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete("/api/v1/cart/" + userID)
	if err != nil {
		return fmt.Errorf("cart request failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("cart service returned status %d", resp.StatusCode())
	}
	return nil
}
