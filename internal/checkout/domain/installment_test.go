package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallmentInterestFree(t *testing.T) {
	total := decimal.NewFromInt(1200)
	opt := InstallmentFor(total, 6)
	assert.True(t, opt.InterestFree)
	assert.Equal(t, "200.00", opt.PerInstallment.StringFixed(2))
	assert.Equal(t, "1200.00", opt.Total.StringFixed(2))
}

func TestInstallmentWithSurcharge(t *testing.T) {
	total := decimal.NewFromInt(1200)
	// 12 期：1200/12=100，加 12% 手续费后每期 112
	opt := InstallmentFor(total, 12)
	assert.False(t, opt.InterestFree)
	assert.Equal(t, "112.00", opt.PerInstallment.StringFixed(2))
	assert.Equal(t, "1344.00", opt.Total.StringFixed(2))
}

func TestInstallmentPlansCoverAllCounts(t *testing.T) {
	plans := InstallmentPlans(decimal.NewFromFloat(999.90))
	require.Len(t, plans, MaxInstallments)
	for i, p := range plans {
		assert.Equal(t, i+1, p.Count)
		assert.Equal(t, p.Count <= InterestFreeInstallments, p.InterestFree)
		assert.True(t, p.PerInstallment.IsPositive())
	}
	// 有手续费的方案总额必须高于本金
	assert.True(t, plans[11].Total.GreaterThan(decimal.NewFromFloat(999.90)))
	// 免息方案每期金额随期数单调下降
	assert.True(t, plans[0].PerInstallment.GreaterThan(plans[5].PerInstallment))
}
