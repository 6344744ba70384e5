package mysql

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/ecommerce/internal/catalog/domain"
)

// ProductModel MySQL 商品表映射
type ProductModel struct {
	ID            uint            `gorm:"primaryKey;autoIncrement"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
	Name          string          `gorm:"column:name;type:varchar(255);not null;index"`
	Description   string          `gorm:"column:description;type:text"`
	Brand         string          `gorm:"column:brand;type:varchar(100);index"`
	Category      string          `gorm:"column:category;type:varchar(100);index"`
	Price         decimal.Decimal `gorm:"column:price;type:decimal(20,2);not null"`
	OriginalPrice decimal.Decimal `gorm:"column:original_price;type:decimal(20,2)"`
	Stock         int             `gorm:"column:stock;not null;default:0"`
	Rating        float64         `gorm:"column:rating;type:decimal(3,2);default:0"`
	Reviews       int             `gorm:"column:reviews;default:0"`
	Featured      bool            `gorm:"column:featured;default:false"`
	Tags          string          `gorm:"column:tags;type:json"`
	Status        string          `gorm:"column:status;type:varchar(20);index;not null;default:'active'"`
}

func (ProductModel) TableName() string { return "products" }

func toProductModel(p *domain.Product) (*ProductModel, error) {
	tags, err := json.Marshal(p.Tags)
	if err != nil {
		return nil, fmt.Errorf("marshal product tags: %w", err)
	}
	return &ProductModel{
		ID:            p.ID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Name:          p.Name,
		Description:   p.Description,
		Brand:         p.Brand,
		Category:      p.Category,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Stock:         p.Stock,
		Rating:        p.Rating,
		Reviews:       p.Reviews,
		Featured:      p.Featured,
		Tags:          string(tags),
		Status:        string(p.Status),
	}, nil
}

func toProduct(m *ProductModel) (*domain.Product, error) {
	product := &domain.Product{
		ID:            m.ID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		Name:          m.Name,
		Description:   m.Description,
		Brand:         m.Brand,
		Category:      m.Category,
		Price:         m.Price,
		OriginalPrice: m.OriginalPrice,
		Stock:         m.Stock,
		Rating:        m.Rating,
		Reviews:       m.Reviews,
		Featured:      m.Featured,
		Status:        domain.ProductStatus(m.Status),
	}
	if m.Tags != "" {
		if err := json.Unmarshal([]byte(m.Tags), &product.Tags); err != nil {
			return nil, fmt.Errorf("unmarshal product tags: %w", err)
		}
	}
	return product, nil
}
