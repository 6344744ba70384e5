package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldNames(errs ValidationErrors) []string {
	out := make([]string, 0, len(errs))
	for _, fe := range errs {
		out = append(out, fe.Field)
	}
	return out
}

func TestValidatePersonalOK(t *testing.T) {
	sv := NewStepValidator()
	assert.Empty(t, sv.ValidatePersonal(validPersonal()))
}

func TestValidatePersonalMissingRequired(t *testing.T) {
	sv := NewStepValidator()
	info := validPersonal()
	info.FirstName = ""
	info.Email = ""

	errs := sv.ValidatePersonal(info)
	require.NotEmpty(t, errs)
	assert.Contains(t, fieldNames(errs), "first_name")
	assert.Contains(t, fieldNames(errs), "email")
}

func TestValidateCPF(t *testing.T) {
	sv := NewStepValidator()
	cases := []struct {
		cpf   string
		valid bool
	}{
		{"123.456.789-01", true},
		{"12345678901", true},
		{"111.111.111-11", false}, // 全部相同
		{"123.456.789", false},    // 位数不足
		{"", false},
	}
	for _, tc := range cases {
		info := validPersonal()
		info.CPF = tc.cpf
		errs := sv.ValidatePersonal(info)
		if tc.valid {
			assert.Empty(t, errs, "cpf %q", tc.cpf)
		} else {
			assert.Contains(t, fieldNames(errs), "cpf", "cpf %q", tc.cpf)
		}
	}
}

func TestValidatePhoneFormats(t *testing.T) {
	sv := NewStepValidator()
	for _, phone := range []string{"(11) 98765-4321", "(21) 3456-7890"} {
		info := validPersonal()
		info.Phone = phone
		assert.Empty(t, sv.ValidatePersonal(info), "phone %q", phone)
	}
	for _, phone := range []string{"11987654321", "(11)98765-4321", "(11) 987654321"} {
		info := validPersonal()
		info.Phone = phone
		assert.Contains(t, fieldNames(sv.ValidatePersonal(info)), "phone", "phone %q", phone)
	}
}

func TestValidateShippingCEP(t *testing.T) {
	sv := NewStepValidator()
	addr := validAddress()
	assert.Empty(t, sv.ValidateShipping(addr))

	addr.CEP = "01310100"
	assert.Contains(t, fieldNames(sv.ValidateShipping(addr)), "cep")
}

func TestValidatePaymentPixNeedsNoCard(t *testing.T) {
	sv := NewStepValidator()
	assert.Empty(t, sv.ValidatePayment(PaymentInfo{Method: PaymentMethodPix}))
	assert.Empty(t, sv.ValidatePayment(PaymentInfo{Method: PaymentMethodBoleto}))
}

func TestValidatePaymentUnknownMethod(t *testing.T) {
	sv := NewStepValidator()
	errs := sv.ValidatePayment(PaymentInfo{Method: "cheque"})
	assert.Contains(t, fieldNames(errs), "method")
}

func TestValidatePaymentCreditCard(t *testing.T) {
	sv := NewStepValidator()
	valid := PaymentInfo{
		Method:       PaymentMethodCreditCard,
		CardNumber:   "4111 1111 1111 1111",
		CardName:     "ANA SILVA",
		CardExpiry:   "12/27",
		CVV:          "123",
		Installments: 6,
	}
	assert.Empty(t, sv.ValidatePayment(valid))

	bad := valid
	bad.CardNumber = "4111"
	bad.CardExpiry = "13/27"
	bad.CVV = "12"
	bad.Installments = 13

	names := fieldNames(sv.ValidatePayment(bad))
	assert.Contains(t, names, "card_number")
	assert.Contains(t, names, "card_expiry")
	assert.Contains(t, names, "cvv")
	assert.Contains(t, names, "installments")
}
