// 生成摘要：商品搜索：文本相关性打分加多维过滤和排序。
// 排序在副本上进行，不改动调用方的切片。
package domain

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// SortBy 排序方式
type SortBy string

const (
	SortByRelevance  SortBy = "relevance"
	SortByPriceAsc   SortBy = "price_asc"
	SortByPriceDesc  SortBy = "price_desc"
	SortByName       SortBy = "name"
	SortByRating     SortBy = "rating"
	SortByNewest     SortBy = "newest"
	SortByBestseller SortBy = "bestseller"
)

// Filters 搜索过滤条件，零值字段表示不过滤
type Filters struct {
	Category  string
	Brand     string
	PriceMin  decimal.Decimal
	PriceMax  decimal.Decimal
	MinRating float64
	InStock   bool
}

// Match 商品是否通过全部过滤条件
func (f Filters) Match(p *Product) bool {
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.Brand != "" && !strings.EqualFold(p.Brand, f.Brand) {
		return false
	}
	if f.PriceMin.IsPositive() && p.Price.LessThan(f.PriceMin) {
		return false
	}
	if f.PriceMax.IsPositive() && p.Price.GreaterThan(f.PriceMax) {
		return false
	}
	if f.MinRating > 0 && p.Rating < f.MinRating {
		return false
	}
	if f.InStock && !p.InStock() {
		return false
	}
	return true
}

// Relevance 对单个商品按查询词打分，0 分表示不相关
func Relevance(p *Product, query string) float64 {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0
	}

	var score float64
	name := strings.ToLower(p.Name)
	switch {
	case name == q:
		score += 100
	case strings.HasPrefix(name, q):
		score += 50
	case strings.Contains(name, q):
		score += 25
	}
	if strings.Contains(strings.ToLower(p.Brand), q) {
		score += 15
	}
	if strings.Contains(strings.ToLower(p.Category), q) {
		score += 10
	}
	if strings.Contains(strings.ToLower(p.Description), q) {
		score += 5
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			score += 3
			break
		}
	}
	if score == 0 {
		return 0
	}

	// 同等文本相关性下，高评分和有货的商品排前面
	score += 2 * p.Rating
	if p.InStock() {
		score += 5
	}
	return score
}

// Search 过滤、打分并排序。query 为空时跳过相关性筛选，仅过滤排序。
func Search(products []*Product, query string, filters Filters, sortBy SortBy) []*Product {
	out := make([]*Product, 0, len(products))
	scores := make(map[uint]float64, len(products))
	hasQuery := strings.TrimSpace(query) != ""

	for _, p := range products {
		if !filters.Match(p) {
			continue
		}
		if hasQuery {
			score := Relevance(p, query)
			if score == 0 {
				continue
			}
			scores[p.ID] = score
		}
		out = append(out, p)
	}

	sortProducts(out, scores, sortBy, hasQuery)
	return out
}

func sortProducts(products []*Product, scores map[uint]float64, sortBy SortBy, hasQuery bool) {
	switch sortBy {
	case SortByPriceAsc:
		slices.SortStableFunc(products, func(a, b *Product) int {
			return a.Price.Cmp(b.Price)
		})
	case SortByPriceDesc:
		slices.SortStableFunc(products, func(a, b *Product) int {
			return b.Price.Cmp(a.Price)
		})
	case SortByName:
		slices.SortStableFunc(products, func(a, b *Product) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		})
	case SortByRating:
		slices.SortStableFunc(products, func(a, b *Product) int {
			return compareFloat(b.Rating, a.Rating)
		})
	case SortByNewest:
		slices.SortStableFunc(products, func(a, b *Product) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	case SortByBestseller:
		slices.SortStableFunc(products, func(a, b *Product) int {
			return b.Reviews - a.Reviews
		})
	default:
		if hasQuery {
			slices.SortStableFunc(products, func(a, b *Product) int {
				return compareFloat(scores[b.ID], scores[a.ID])
			})
		}
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
