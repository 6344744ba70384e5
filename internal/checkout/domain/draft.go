// 生成摘要：结算向导草稿聚合根，分步收集收货与支付信息。
// 草稿内保存购物车快照，结算期间价格不随购物车变化。
package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/pkg/fsm"
)

// WizardStep 结算向导步骤
type WizardStep string

const (
	StepPersonal  WizardStep = "PERSONAL"  // 个人信息
	StepShipping  WizardStep = "SHIPPING"  // 收货地址
	StepPayment   WizardStep = "PAYMENT"   // 支付方式
	StepReview    WizardStep = "REVIEW"    // 订单确认
	StepCompleted WizardStep = "COMPLETED" // 已提交
	StepAbandoned WizardStep = "ABANDONED" // 已放弃
)

// stepOrder 定义向导的线性顺序，终态不参与前进后退
var stepOrder = map[WizardStep]int{
	StepPersonal: 0,
	StepShipping: 1,
	StepPayment:  2,
	StepReview:   3,
}

// PaymentMethod 支付方式
type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodPix        PaymentMethod = "pix"
	PaymentMethodBoleto     PaymentMethod = "boleto"
)

// CouponKind 草稿内优惠券快照类型
type CouponKind string

const (
	CouponKindPercentage   CouponKind = "percentage"
	CouponKindFixed        CouponKind = "fixed"
	CouponKindFreeShipping CouponKind = "free_shipping"
)

// DraftItem 草稿中的商品行快照
type DraftItem struct {
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// CouponSnapshot 结算时锁定的优惠券快照
type CouponSnapshot struct {
	Code        string          `json:"code"`
	Kind        CouponKind      `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	MaxDiscount decimal.Decimal `json:"max_discount"`
}

// DraftTotals 草稿金额汇总
type DraftTotals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

// ShippingMethod 可选配送方式
type ShippingMethod struct {
	Code  string          `json:"code"`
	Label string          `json:"label"`
	Rate  decimal.Decimal `json:"rate"`
	Days  int             `json:"days"`
}

// DefaultShippingMethods 默认配送方式表，可被配置覆盖
func DefaultShippingMethods() []ShippingMethod {
	return []ShippingMethod{
		{Code: "standard", Label: "Standard", Rate: decimal.NewFromInt(15), Days: 5},
		{Code: "express", Label: "Express", Rate: decimal.NewFromInt(25), Days: 2},
		{Code: "pickup", Label: "Store pickup", Rate: decimal.Zero, Days: 0},
	}
}

// PersonalInfo 第一步：个人信息
type PersonalInfo struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	CPF       string `json:"cpf" validate:"required,cpf"`
	Phone     string `json:"phone" validate:"required,brphone"`
	BirthDate string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
}

// ShippingAddress 第二步：收货地址与配送方式
type ShippingAddress struct {
	CEP          string `json:"cep" validate:"required,cep"`
	Street       string `json:"street" validate:"required"`
	Number       string `json:"number" validate:"required"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood" validate:"required"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	Method       string `json:"method" validate:"required"`
}

// PaymentInfo 第三步：支付方式，信用卡字段按方式条件校验
type PaymentInfo struct {
	Method       PaymentMethod `json:"method" validate:"required,oneof=credit_card pix boleto"`
	CardNumber   string        `json:"card_number"`
	CardName     string        `json:"card_name"`
	CardExpiry   string        `json:"card_expiry"`
	CVV          string        `json:"cvv"`
	Installments int           `json:"installments"`
}

// OrderDraft 结算草稿聚合根
type OrderDraft struct {
	UserID        string          `json:"user_id"`
	Step          WizardStep      `json:"step"`
	Items         []DraftItem     `json:"items"`
	Coupon        *CouponSnapshot `json:"coupon,omitempty"`
	Personal      PersonalInfo    `json:"personal"`
	Address       ShippingAddress `json:"address"`
	Payment       PaymentInfo     `json:"payment"`
	ShippingRate  decimal.Decimal `json:"shipping_rate"`
	ShippingDays  int             `json:"shipping_days"`
	Totals        DraftTotals     `json:"totals"`
	TermsAccepted bool            `json:"terms_accepted"`
	OrderNo       string          `json:"order_no,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	fsm           *fsm.Machine[string, string]
}

// NewOrderDraft 从购物车快照创建结算草稿
func NewOrderDraft(userID string, items []DraftItem, coupon *CouponSnapshot) *OrderDraft {
	d := &OrderDraft{
		UserID:    userID,
		Step:      StepPersonal,
		Items:     items,
		Coupon:    coupon,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	d.RecomputeTotals()
	d.initFSM()
	return d
}

// Subtotal 草稿商品小计
func (d *OrderDraft) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range d.Items {
		sum = sum.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return sum
}

// RecomputeTotals 按当前商品、配送费率和优惠券快照重算金额。
// 配送方式或优惠券变化时同步调用，草稿金额不允许过期。
func (d *OrderDraft) RecomputeTotals() {
	subtotal := d.Subtotal()
	shipping := d.ShippingRate
	discount := d.discount(subtotal, shipping)

	d.Totals = DraftTotals{
		Subtotal: subtotal,
		Discount: discount,
		Shipping: shipping,
		Total:    subtotal.Sub(discount).Add(shipping),
	}
	d.UpdatedAt = time.Now()
}

func (d *OrderDraft) discount(subtotal, shipping decimal.Decimal) decimal.Decimal {
	if d.Coupon == nil {
		return decimal.Zero
	}
	var discount decimal.Decimal
	switch d.Coupon.Kind {
	case CouponKindPercentage:
		discount = subtotal.Mul(d.Coupon.Amount)
	case CouponKindFixed:
		discount = d.Coupon.Amount
	case CouponKindFreeShipping:
		discount = shipping
	default:
		return decimal.Zero
	}
	if d.Coupon.MaxDiscount.IsPositive() && discount.GreaterThan(d.Coupon.MaxDiscount) {
		discount = d.Coupon.MaxDiscount
	}
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}
	return discount
}
