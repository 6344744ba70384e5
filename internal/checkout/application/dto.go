package application

import (
	"github.com/shopspring/decimal"

	"github.com/wyfcoding/ecommerce/internal/checkout/domain"
)

// DraftItemDTO 草稿商品行视图
type DraftItemDTO struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

// TotalsDTO 金额汇总视图，统一两位小数字符串
type TotalsDTO struct {
	Subtotal string `json:"subtotal"`
	Discount string `json:"discount"`
	Shipping string `json:"shipping"`
	Total    string `json:"total"`
}

// ShippingMethodDTO 可选配送方式视图
type ShippingMethodDTO struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Rate  string `json:"rate"`
	Days  int    `json:"days"`
}

// InstallmentOptionDTO 分期方案视图
type InstallmentOptionDTO struct {
	Count          int    `json:"count"`
	PerInstallment string `json:"per_installment"`
	Total          string `json:"total"`
	InterestFree   bool   `json:"interest_free"`
}

// DraftDTO 结算草稿视图，返回给前端渲染当前步骤
type DraftDTO struct {
	UserID          string                 `json:"user_id"`
	Step            string                 `json:"step"`
	Items           []DraftItemDTO         `json:"items"`
	CouponCode      string                 `json:"coupon_code,omitempty"`
	Personal        domain.PersonalInfo    `json:"personal"`
	Address         domain.ShippingAddress `json:"address"`
	PaymentMethod   string                 `json:"payment_method,omitempty"`
	CardLast4       string                 `json:"card_last4,omitempty"`
	Installments    int                    `json:"installments,omitempty"`
	Totals          TotalsDTO              `json:"totals"`
	ShippingMethods []ShippingMethodDTO    `json:"shipping_methods"`
	TermsAccepted   bool                   `json:"terms_accepted"`
	OrderNo         string                 `json:"order_no,omitempty"`
}

func toDraftDTO(draft *domain.OrderDraft, methods []domain.ShippingMethod) *DraftDTO {
	dto := &DraftDTO{
		UserID:        draft.UserID,
		Step:          string(draft.Step),
		Items:         make([]DraftItemDTO, 0, len(draft.Items)),
		Personal:      draft.Personal,
		Address:       draft.Address,
		PaymentMethod: string(draft.Payment.Method),
		Installments:  draft.Payment.Installments,
		Totals: TotalsDTO{
			Subtotal: draft.Totals.Subtotal.StringFixed(2),
			Discount: draft.Totals.Discount.StringFixed(2),
			Shipping: draft.Totals.Shipping.StringFixed(2),
			Total:    draft.Totals.Total.StringFixed(2),
		},
		TermsAccepted: draft.TermsAccepted,
		OrderNo:       draft.OrderNo,
	}
	if draft.Coupon != nil {
		dto.CouponCode = draft.Coupon.Code
	}
	dto.CardLast4 = cardLast4(draft.Payment.CardNumber)
	for _, item := range draft.Items {
		dto.Items = append(dto.Items, DraftItemDTO{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice.StringFixed(2),
			Quantity:  item.Quantity,
			LineTotal: item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))).StringFixed(2),
		})
	}
	for _, m := range methods {
		dto.ShippingMethods = append(dto.ShippingMethods, ShippingMethodDTO{
			Code:  m.Code,
			Label: m.Label,
			Rate:  m.Rate.StringFixed(2),
			Days:  m.Days,
		})
	}
	return dto
}

// cardLast4 卡号只回显末四位
func cardLast4(cardNumber string) string {
	digits := make([]byte, 0, len(cardNumber))
	for i := 0; i < len(cardNumber); i++ {
		if cardNumber[i] >= '0' && cardNumber[i] <= '9' {
			digits = append(digits, cardNumber[i])
		}
	}
	if len(digits) < 4 {
		return ""
	}
	return string(digits[len(digits)-4:])
}

func toInstallmentDTOs(opts []domain.InstallmentOption) []InstallmentOptionDTO {
	out := make([]InstallmentOptionDTO, 0, len(opts))
	for _, opt := range opts {
		out = append(out, InstallmentOptionDTO{
			Count:          opt.Count,
			PerInstallment: opt.PerInstallment.StringFixed(2),
			Total:          opt.Total.StringFixed(2),
			InterestFree:   opt.InterestFree,
		})
	}
	return out
}
