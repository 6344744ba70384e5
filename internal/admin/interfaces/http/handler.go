package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/ecommerce/internal/admin/application"
)

// Handler 运营看板 HTTP 处理器
type Handler struct {
	app *application.AnalyticsService
}

// NewHandler 创建运营看板 HTTP 处理器
func NewHandler(app *application.AnalyticsService) *Handler {
	return &Handler{app: app}
}

// RegisterRoutes 注册路由
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	g := r.Group("/v1/dashboard")
	g.GET("/summary", h.GetSummary)
	g.GET("/daily-sales", h.ListDailySales)
	g.GET("/top-products", h.TopProducts)
}

// GetSummary 汇总卡片
func (h *Handler) GetSummary(c *gin.Context) {
	summary, err := h.app.GetSummary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ListDailySales 逐日销售序列，?days= 控制窗口
func (h *Handler) ListDailySales(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	series, err := h.app.ListDailySales(c.Request.Context(), days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"daily_sales": series})
}

// TopProducts 商品销量排行，?limit= 控制条数
func (h *Handler) TopProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	products, err := h.app.TopProducts(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"top_products": products})
}
