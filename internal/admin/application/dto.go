// 生成摘要：看板接口层数据传输对象，金额统一两位小数字符串。
package application

import (
	"github.com/wyfcoding/ecommerce/internal/admin/domain"
)

// SummaryDTO 看板汇总
type SummaryDTO struct {
	Revenue       string `json:"revenue"`
	Orders        int    `json:"orders"`
	AverageTicket string `json:"average_ticket"`
}

// DailySalesDTO 单日销售
type DailySalesDTO struct {
	Date    string `json:"date"`
	Revenue string `json:"revenue"`
	Orders  int    `json:"orders"`
}

// ProductSalesDTO 商品销量
type ProductSalesDTO struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Units     int    `json:"units"`
	Revenue   string `json:"revenue"`
}

func toSummaryDTO(s domain.DashboardSummary) *SummaryDTO {
	return &SummaryDTO{
		Revenue:       s.Revenue.StringFixed(2),
		Orders:        s.Orders,
		AverageTicket: s.AverageTicket.StringFixed(2),
	}
}

func toDailySalesDTOs(series []domain.DailySales) []DailySalesDTO {
	out := make([]DailySalesDTO, 0, len(series))
	for _, d := range series {
		out = append(out, DailySalesDTO{
			Date:    d.Date.Format("2006-01-02"),
			Revenue: d.Revenue.StringFixed(2),
			Orders:  d.Orders,
		})
	}
	return out
}

func toProductSalesDTOs(products []domain.ProductSales) []ProductSalesDTO {
	out := make([]ProductSalesDTO, 0, len(products))
	for _, p := range products {
		out = append(out, ProductSalesDTO{
			ProductID: p.ProductID,
			Name:      p.Name,
			Units:     p.Units,
			Revenue:   p.Revenue.StringFixed(2),
		})
	}
	return out
}
