package application

import (
	"time"

	"github.com/wyfcoding/ecommerce/internal/catalog/domain"
)

// ProductDTO 商品视图，金额统一两位小数字符串
type ProductDTO struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Brand         string    `json:"brand"`
	Category      string    `json:"category"`
	Price         string    `json:"price"`
	OriginalPrice string    `json:"original_price,omitempty"`
	Stock         int       `json:"stock"`
	Rating        float64   `json:"rating"`
	Reviews       int       `json:"reviews"`
	Featured      bool      `json:"featured"`
	Tags          []string  `json:"tags,omitempty"`
	Status        string    `json:"status"`
	InStock       bool      `json:"in_stock"`
	OnSale        bool      `json:"on_sale"`
	CreatedAt     time.Time `json:"created_at"`
}

func toProductDTO(p *domain.Product) *ProductDTO {
	dto := &ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Brand:       p.Brand,
		Category:    p.Category,
		Price:       p.Price.StringFixed(2),
		Stock:       p.Stock,
		Rating:      p.Rating,
		Reviews:     p.Reviews,
		Featured:    p.Featured,
		Tags:        p.Tags,
		Status:      string(p.Status),
		InStock:     p.InStock(),
		OnSale:      p.OnSale(),
		CreatedAt:   p.CreatedAt,
	}
	if p.OriginalPrice.IsPositive() {
		dto.OriginalPrice = p.OriginalPrice.StringFixed(2)
	}
	return dto
}

func toProductDTOs(products []*domain.Product) []*ProductDTO {
	out := make([]*ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, toProductDTO(p))
	}
	return out
}
