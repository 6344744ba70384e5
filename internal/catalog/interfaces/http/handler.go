package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/wyfcoding/ecommerce/internal/catalog/application"
	"github.com/wyfcoding/ecommerce/internal/catalog/domain"
)

// Handler 商品目录 HTTP 处理器
type Handler struct {
	app *application.CatalogService
}

// NewHandler 创建商品目录 HTTP 处理器
func NewHandler(app *application.CatalogService) *Handler {
	return &Handler{app: app}
}

// RegisterRoutes 注册路由
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	g := r.Group("/v1/catalog")
	g.GET("/products", h.ListProducts)
	g.GET("/search", h.SearchProducts)
	g.GET("/products/:id", h.GetProduct)
	g.POST("/products", h.CreateProduct)
	g.PUT("/products/:id", h.UpdateProduct)
	g.PUT("/products/:id/stock", h.AdjustStock)
	g.DELETE("/products/:id", h.DeleteProduct)
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseUint(c, "id")
	if !ok {
		return
	}
	product, err := h.app.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	products, total, err := h.app.ListProducts(c.Request.Context(), page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products, "total": total})
}

func (h *Handler) SearchProducts(c *gin.Context) {
	filters := domain.Filters{
		Category: c.Query("category"),
		Brand:    c.Query("brand"),
		InStock:  c.Query("in_stock") == "true",
	}
	if v := c.Query("price_min"); v != "" {
		min, err := decimal.NewFromString(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price_min"})
			return
		}
		filters.PriceMin = min
	}
	if v := c.Query("price_max"); v != "" {
		max, err := decimal.NewFromString(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price_max"})
			return
		}
		filters.PriceMax = max
	}
	if v := c.Query("min_rating"); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_rating"})
			return
		}
		filters.MinRating = rating
	}

	sortBy := domain.SortBy(c.DefaultQuery("sort", string(domain.SortByRelevance)))
	products, err := h.app.SearchProducts(c.Request.Context(), c.Query("q"), filters, sortBy)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
}

type productRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Brand         string   `json:"brand"`
	Category      string   `json:"category"`
	Price         string   `json:"price" binding:"required"`
	OriginalPrice string   `json:"original_price"`
	Stock         int      `json:"stock"`
	Tags          []string `json:"tags"`
	Featured      bool     `json:"featured"`
	Status        string   `json:"status"`
}

func (r productRequest) prices(c *gin.Context) (price, original decimal.Decimal, ok bool) {
	var err error
	if price, err = decimal.NewFromString(r.Price); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
		return decimal.Zero, decimal.Zero, false
	}
	if r.OriginalPrice != "" {
		if original, err = decimal.NewFromString(r.OriginalPrice); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid original_price"})
			return decimal.Zero, decimal.Zero, false
		}
	}
	return price, original, true
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	price, original, ok := req.prices(c)
	if !ok {
		return
	}

	id, err := h.app.CreateProduct(c.Request.Context(), application.CreateProductCommand{
		Name:          req.Name,
		Description:   req.Description,
		Brand:         req.Brand,
		Category:      req.Category,
		Price:         price,
		OriginalPrice: original,
		Stock:         req.Stock,
		Tags:          req.Tags,
		Featured:      req.Featured,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseUint(c, "id")
	if !ok {
		return
	}
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	price, original, ok := req.prices(c)
	if !ok {
		return
	}

	err := h.app.UpdateProduct(c.Request.Context(), application.UpdateProductCommand{
		ID:            id,
		Name:          req.Name,
		Description:   req.Description,
		Brand:         req.Brand,
		Category:      req.Category,
		Price:         price,
		OriginalPrice: original,
		Stock:         req.Stock,
		Tags:          req.Tags,
		Featured:      req.Featured,
		Status:        domain.ProductStatus(req.Status),
	})
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) AdjustStock(c *gin.Context) {
	id, ok := parseUint(c, "id")
	if !ok {
		return
	}
	var req struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.app.AdjustStock(c.Request.Context(), id, req.Delta); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseUint(c, "id")
	if !ok {
		return
	}
	if err := h.app.DeleteProduct(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func parseUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(v), true
}
