package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/ecommerce/internal/cart/application"
	"github.com/wyfcoding/ecommerce/internal/cart/domain"
)

// Handler 购物车 HTTP 处理器
type Handler struct {
	app *application.CartService
}

// NewHandler 创建购物车 HTTP 处理器
func NewHandler(app *application.CartService) *Handler {
	return &Handler{app: app}
}

// RegisterRoutes 注册路由
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	g := r.Group("/v1/cart")
	g.GET("/:user_id", h.GetCart)
	g.GET("/:user_id/count", h.GetItemCount)
	g.POST("/:user_id/items", h.AddItem)
	g.PUT("/:user_id/items/:product_id", h.UpdateQuantity)
	g.DELETE("/:user_id/items/:product_id", h.RemoveItem)
	g.POST("/:user_id/coupon", h.ApplyCoupon)
	g.DELETE("/:user_id/coupon", h.RemoveCoupon)
	g.DELETE("/:user_id", h.ClearCart)

	coupons := r.Group("/v1/coupons")
	coupons.GET("", h.ListCoupons)
	coupons.GET("/:code", h.GetCoupon)
}

func (h *Handler) GetCart(c *gin.Context) {
	cart, err := h.app.GetCart(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *Handler) GetItemCount(c *gin.Context) {
	count, err := h.app.GetItemCount(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *Handler) AddItem(c *gin.Context) {
	var req struct {
		ProductID uint `json:"product_id" binding:"required"`
		Quantity  int  `json:"quantity" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.app.AddItem(c.Request.Context(), c.Param("user_id"), req.ProductID, req.Quantity); err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "ok"})
}

func (h *Handler) UpdateQuantity(c *gin.Context) {
	productID, ok := parseID(c, "product_id")
	if !ok {
		return
	}
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.app.UpdateQuantity(c.Request.Context(), c.Param("user_id"), productID, req.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) RemoveItem(c *gin.Context) {
	productID, ok := parseID(c, "product_id")
	if !ok {
		return
	}
	if err := h.app.RemoveItem(c.Request.Context(), c.Param("user_id"), productID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) ApplyCoupon(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	coupon, err := h.app.ApplyCoupon(c.Request.Context(), c.Param("user_id"), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCouponNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrCouponExpired), errors.Is(err, domain.ErrCouponBelowMinimum):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": coupon.Code, "kind": coupon.Kind, "description": coupon.Description})
}

func (h *Handler) RemoveCoupon(c *gin.Context) {
	if err := h.app.RemoveCoupon(c.Request.Context(), c.Param("user_id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) ClearCart(c *gin.Context) {
	if err := h.app.ClearCart(c.Request.Context(), c.Param("user_id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) ListCoupons(c *gin.Context) {
	coupons, err := h.app.ListCoupons(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"coupons": coupons})
}

func (h *Handler) GetCoupon(c *gin.Context) {
	coupon, err := h.app.GetCoupon(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, domain.ErrCouponNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, coupon)
}
