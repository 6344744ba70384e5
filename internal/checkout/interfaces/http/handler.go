package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/ecommerce/internal/checkout/application"
	"github.com/wyfcoding/ecommerce/internal/checkout/domain"
)

// Handler 结算 HTTP 处理器
type Handler struct {
	app *application.CheckoutService
}

// NewHandler 创建结算 HTTP 处理器
func NewHandler(app *application.CheckoutService) *Handler {
	return &Handler{app: app}
}

// RegisterRoutes 注册路由
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	g := r.Group("/v1/checkout")
	g.POST("/:user_id/start", h.Start)
	g.GET("/:user_id", h.GetDraft)
	g.POST("/:user_id/personal", h.SubmitPersonal)
	g.POST("/:user_id/shipping", h.SubmitShipping)
	g.POST("/:user_id/payment", h.SubmitPayment)
	g.POST("/:user_id/back", h.Retreat)
	g.POST("/:user_id/jump", h.JumpTo)
	g.POST("/:user_id/terms", h.AcceptTerms)
	g.POST("/:user_id/finish", h.Finish)
	g.DELETE("/:user_id", h.Abandon)
	g.GET("/:user_id/installments", h.ListInstallments)

	r.GET("/v1/postal/:cep", h.LookupPostal)
}

// respondError 把领域错误映射为 HTTP 状态码。
// 字段校验错误单独展开，前端按字段渲染。
func respondError(c *gin.Context, err error) {
	var verrs domain.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "fields": verrs})
	case errors.Is(err, domain.ErrEmptyCart):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrWrongStep),
		errors.Is(err, domain.ErrForwardJump),
		errors.Is(err, domain.ErrTermsNotAccepted),
		errors.Is(err, domain.ErrUnknownShippingMethod):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (h *Handler) Start(c *gin.Context) {
	draft, err := h.app.StartCheckout(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, draft)
}

func (h *Handler) GetDraft(c *gin.Context) {
	draft, err := h.app.GetDraft(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if draft == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active checkout"})
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (h *Handler) SubmitPersonal(c *gin.Context) {
	var req domain.PersonalInfo
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	draft, err := h.app.SubmitPersonal(c.Request.Context(), c.Param("user_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (h *Handler) SubmitShipping(c *gin.Context) {
	var req domain.ShippingAddress
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	draft, err := h.app.SubmitShipping(c.Request.Context(), c.Param("user_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (h *Handler) SubmitPayment(c *gin.Context) {
	var req domain.PaymentInfo
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	draft, err := h.app.SubmitPayment(c.Request.Context(), c.Param("user_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (h *Handler) Retreat(c *gin.Context) {
	draft, err := h.app.Retreat(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (h *Handler) JumpTo(c *gin.Context) {
	var req struct {
		Step string `json:"step" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	draft, err := h.app.JumpTo(c.Request.Context(), c.Param("user_id"), domain.WizardStep(req.Step))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (h *Handler) AcceptTerms(c *gin.Context) {
	var req struct {
		Accepted bool `json:"accepted"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	draft, err := h.app.AcceptTerms(c.Request.Context(), c.Param("user_id"), req.Accepted)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (h *Handler) Finish(c *gin.Context) {
	orderNo, err := h.app.FinishOrder(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order_no": orderNo})
}

func (h *Handler) Abandon(c *gin.Context) {
	if err := h.app.Abandon(c.Request.Context(), c.Param("user_id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) ListInstallments(c *gin.Context) {
	plans, err := h.app.ListInstallmentPlans(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

func (h *Handler) LookupPostal(c *gin.Context) {
	addr := h.app.LookupAddress(c.Request.Context(), c.Param("cep"))
	if addr == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"street":       addr.Street,
		"neighborhood": addr.Neighborhood,
		"city":         addr.City,
		"state":        addr.State,
	})
}
