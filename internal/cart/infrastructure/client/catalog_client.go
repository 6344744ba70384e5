package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"github.com/wyfcoding/ecommerce/internal/cart/domain"
)

// CatalogClient 商品目录服务 HTTP 客户端
type CatalogClient struct {
	http *resty.Client
}

// NewCatalogClient 创建商品目录客户端
func NewCatalogClient(baseURL string) *CatalogClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(5 * time.Second).
		SetRetryCount(2)
	return &CatalogClient{http: c}
}

type productResponse struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Price         string `json:"price"`
	OriginalPrice string `json:"original_price"`
	Stock         int    `json:"stock"`
}

// GetProduct 查询商品快照
func (c *CatalogClient) GetProduct(ctx context.Context, productID uint) (*domain.CatalogProduct, error) {
	var body productResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&body).
		Get(fmt.Sprintf("/api/v1/catalog/products/%d", productID))
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("product %d not found", productID)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode())
	}

	price, err := decimal.NewFromString(body.Price)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q for product %d: %w", body.Price, productID, err)
	}
	original := decimal.Zero
	if body.OriginalPrice != "" {
		original, err = decimal.NewFromString(body.OriginalPrice)
		if err != nil {
			return nil, fmt.Errorf("invalid original price %q for product %d: %w", body.OriginalPrice, productID, err)
		}
	}

	return &domain.CatalogProduct{
		ID:            body.ID,
		Name:          body.Name,
		UnitPrice:     price,
		OriginalPrice: original,
		Stock:         body.Stock,
	}, nil
}
