package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskCPF(t *testing.T) {
	assert.Equal(t, "123.456.789-01", MaskCPF("12345678901"))
	assert.Equal(t, "123.456", MaskCPF("123456"))
	assert.Equal(t, "123.456.789-01", MaskCPF("123a456b789c01d99"))
	assert.Equal(t, "", MaskCPF("abc"))
}

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "(11) 98765-4321", MaskPhone("11987654321"))
	assert.Equal(t, "(21) 3456-7890", MaskPhone("2134567890"))
	assert.Equal(t, "(11", MaskPhone("11"))
	assert.Equal(t, "(11) 987", MaskPhone("11987"))
	assert.Equal(t, "", MaskPhone(""))
}

func TestMaskCEP(t *testing.T) {
	assert.Equal(t, "01310-100", MaskCEP("01310100"))
	assert.Equal(t, "01310", MaskCEP("01310"))
	assert.Equal(t, "01310-100", MaskCEP("01310-100"))
}

func TestMaskCardNumber(t *testing.T) {
	assert.Equal(t, "4111 1111 1111 1111", MaskCardNumber("4111111111111111"))
	assert.Equal(t, "4111 11", MaskCardNumber("411111"))
}

func TestMaskCardExpiry(t *testing.T) {
	assert.Equal(t, "12/27", MaskCardExpiry("1227"))
	assert.Equal(t, "12", MaskCardExpiry("12"))
	assert.Equal(t, "12/27", MaskCardExpiry("12/27x"))
}
