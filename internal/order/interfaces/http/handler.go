package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/wyfcoding/ecommerce/internal/order/application"
	"github.com/wyfcoding/ecommerce/internal/order/domain"
)

// Handler 订单 HTTP 处理器
type Handler struct {
	app *application.OrderService
}

// NewHandler 创建订单 HTTP 处理器
func NewHandler(app *application.OrderService) *Handler {
	return &Handler{app: app}
}

// RegisterRoutes 注册路由
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	g := r.Group("/v1/orders")
	g.POST("", h.SubmitOrder)
	g.GET("/:order_no", h.GetOrder)
	g.POST("/:order_no/confirm", h.ConfirmOrder)
	g.POST("/:order_no/ship", h.ShipOrder)
	g.POST("/:order_no/deliver", h.DeliverOrder)
	g.POST("/:order_no/cancel", h.CancelOrder)

	r.GET("/v1/users/:user_id/orders", h.ListOrders)
}

type submitItemRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	UnitPrice string `json:"unit_price" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type submitOrderRequest struct {
	UserID     string                 `json:"user_id" binding:"required"`
	Items      []submitItemRequest    `json:"items" binding:"required,min=1"`
	CouponCode string                 `json:"coupon_code"`
	Personal   domain.CustomerInfo    `json:"personal"`
	Address    domain.DeliveryAddress `json:"address"`
	Payment    domain.PaymentSummary  `json:"payment"`
	Subtotal   string                 `json:"subtotal" binding:"required"`
	Discount   string                 `json:"discount" binding:"required"`
	Shipping   string                 `json:"shipping" binding:"required"`
	Total      string                 `json:"total" binding:"required"`
	Days       int                    `json:"shipping_days"`
}

func (h *Handler) SubmitOrder(c *gin.Context) {
	var req submitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cmd := application.SubmitOrderCommand{
		UserID:     req.UserID,
		CouponCode: req.CouponCode,
		Customer:   req.Personal,
		Address:    req.Address,
		Payment:    req.Payment,
	}
	cmd.Address.Days = req.Days

	var err error
	if cmd.Subtotal, err = decimal.NewFromString(req.Subtotal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subtotal"})
		return
	}
	if cmd.Discount, err = decimal.NewFromString(req.Discount); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid discount"})
		return
	}
	if cmd.Shipping, err = decimal.NewFromString(req.Shipping); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shipping"})
		return
	}
	if cmd.Total, err = decimal.NewFromString(req.Total); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid total"})
		return
	}
	for _, item := range req.Items {
		price, err := decimal.NewFromString(item.UnitPrice)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid unit price"})
			return
		}
		cmd.Items = append(cmd.Items, application.SubmitOrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: price,
			Quantity:  item.Quantity,
		})
	}

	orderNo, err := h.app.SubmitOrder(c.Request.Context(), cmd)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order_no": orderNo})
}

func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.app.GetOrder(c.Request.Context(), c.Param("order_no"))
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) ListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	orders, total, err := h.app.ListOrders(c.Request.Context(), c.Param("user_id"), page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders, "total": total})
}

func (h *Handler) ConfirmOrder(c *gin.Context) {
	h.applyTransition(c, h.app.ConfirmOrder)
}

func (h *Handler) ShipOrder(c *gin.Context) {
	h.applyTransition(c, h.app.ShipOrder)
}

func (h *Handler) DeliverOrder(c *gin.Context) {
	h.applyTransition(c, h.app.DeliverOrder)
}

func (h *Handler) CancelOrder(c *gin.Context) {
	var req struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&req)

	if err := h.app.CancelOrder(c.Request.Context(), c.Param("order_no"), req.Reason); err != nil {
		respondTransitionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) applyTransition(c *gin.Context, fn func(ctx context.Context, orderNo string) error) {
	if err := fn(c.Request.Context(), c.Param("order_no")); err != nil {
		respondTransitionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func respondTransitionError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
}
