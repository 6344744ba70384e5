// 生成摘要：结算表单校验，巴西格式（CPF、电话、CEP）为自定义规则。
package domain

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
)

// FieldError 单个字段的校验错误
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors 一步校验产生的全部字段错误
type ValidationErrors []FieldError

func (ve ValidationErrors) Error() string {
	fields := make([]string, 0, len(ve))
	for _, fe := range ve {
		fields = append(fields, fe.Field)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

var (
	phonePattern      = regexp.MustCompile(`^\(\d{2}\)\s\d{4,5}-\d{4}$`)
	cepPattern        = regexp.MustCompile(`^\d{5}-\d{3}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)
	cardExpiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	nonDigits         = regexp.MustCompile(`\D`)
)

// StepValidator 按步骤校验草稿输入
type StepValidator struct {
	validate *validatorv10.Validate
}

// NewStepValidator 创建校验器并注册巴西格式规则
func NewStepValidator() *StepValidator {
	v := validatorv10.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("cpf", validCPF)
	_ = v.RegisterValidation("brphone", func(fl validatorv10.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("cep", func(fl validatorv10.FieldLevel) bool {
		return cepPattern.MatchString(fl.Field().String())
	})
	v.RegisterStructValidation(creditCardStructValidation, PaymentInfo{})

	return &StepValidator{validate: v}
}

// validCPF 去掉分隔符后必须是 11 位数字且不能全部相同
func validCPF(fl validatorv10.FieldLevel) bool {
	digits := nonDigits.ReplaceAllString(fl.Field().String(), "")
	if len(digits) != 11 {
		return false
	}
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return true
		}
	}
	return false
}

// creditCardStructValidation 信用卡支付时补充卡片字段校验
func creditCardStructValidation(sl validatorv10.StructLevel) {
	info := sl.Current().Interface().(PaymentInfo)
	if info.Method != PaymentMethodCreditCard {
		return
	}

	digits := nonDigits.ReplaceAllString(info.CardNumber, "")
	if len(digits) < 13 || len(digits) > 19 {
		sl.ReportError(info.CardNumber, "card_number", "CardNumber", "cardnumber", "")
	}
	if strings.TrimSpace(info.CardName) == "" {
		sl.ReportError(info.CardName, "card_name", "CardName", "required", "")
	}
	if !cardExpiryPattern.MatchString(info.CardExpiry) {
		sl.ReportError(info.CardExpiry, "card_expiry", "CardExpiry", "cardexpiry", "")
	}
	if !cvvPattern.MatchString(info.CVV) {
		sl.ReportError(info.CVV, "cvv", "CVV", "cvv", "")
	}
	if info.Installments < 1 || info.Installments > MaxInstallments {
		sl.ReportError(info.Installments, "installments", "Installments", "installments", "")
	}
}

// fieldMessages 按规则给出面向用户的错误文案
var fieldMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email address",
	"cpf":          "must be a valid CPF",
	"brphone":      "must match (DD) DDDDD-DDDD",
	"cep":          "must match DDDDD-DDD",
	"datetime":     "must be a valid date (YYYY-MM-DD)",
	"oneof":        "is not an accepted value",
	"cardnumber":   "must be 13 to 19 digits",
	"cardexpiry":   "must match MM/YY",
	"cvv":          "must be 3 or 4 digits",
	"installments": "must be between 1 and 12",
}

// Struct 校验任意步骤结构体，返回按字段展开的错误列表
func (sv *StepValidator) Struct(input any) ValidationErrors {
	err := sv.validate.Struct(input)
	if err == nil {
		return nil
	}
	ve, ok := err.(validatorv10.ValidationErrors)
	if !ok {
		return ValidationErrors{{Field: "_", Message: err.Error()}}
	}
	out := make(ValidationErrors, 0, len(ve))
	for _, fe := range ve {
		msg, ok := fieldMessages[fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("failed %s validation", fe.Tag())
		}
		out = append(out, FieldError{Field: fe.Field(), Message: msg})
	}
	return out
}

// ValidatePersonal 校验个人信息步骤
func (sv *StepValidator) ValidatePersonal(info PersonalInfo) ValidationErrors {
	return sv.Struct(info)
}

// ValidateShipping 校验收货地址步骤
func (sv *StepValidator) ValidateShipping(addr ShippingAddress) ValidationErrors {
	return sv.Struct(addr)
}

// ValidatePayment 校验支付步骤
func (sv *StepValidator) ValidatePayment(info PaymentInfo) ValidationErrors {
	return sv.Struct(info)
}
