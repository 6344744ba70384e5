// 生成摘要：信用卡分期方案计算，超过免息期数按月加收百分比手续费。
package domain

import "github.com/shopspring/decimal"

const (
	// MaxInstallments 最大分期期数
	MaxInstallments = 12
	// InterestFreeInstallments 免手续费的最大期数
	InterestFreeInstallments = 6
)

// surchargePerInstallment 超出免息期后每期加收的费率
var surchargePerInstallment = decimal.NewFromFloat(0.02)

// InstallmentOption 一种分期方案
type InstallmentOption struct {
	Count          int             `json:"count"`
	PerInstallment decimal.Decimal `json:"per_installment"`
	Total          decimal.Decimal `json:"total"`
	InterestFree   bool            `json:"interest_free"`
}

// InstallmentFor 计算指定期数的分期方案。
// N 期以内按本金均分；超出后每期金额为 (total/N)*(1+0.02*(N-免息期数))。
func InstallmentFor(total decimal.Decimal, count int) InstallmentOption {
	n := decimal.NewFromInt(int64(count))
	per := total.Div(n)
	interestFree := count <= InterestFreeInstallments
	if !interestFree {
		extra := decimal.NewFromInt(int64(count - InterestFreeInstallments))
		factor := decimal.NewFromInt(1).Add(surchargePerInstallment.Mul(extra))
		per = per.Mul(factor)
	}
	per = per.Round(2)
	return InstallmentOption{
		Count:          count,
		PerInstallment: per,
		Total:          per.Mul(n),
		InterestFree:   interestFree,
	}
}

// InstallmentPlans 列出从一次性付清到最大期数的全部方案
func InstallmentPlans(total decimal.Decimal) []InstallmentOption {
	plans := make([]InstallmentOption, 0, MaxInstallments)
	for count := 1; count <= MaxInstallments; count++ {
		plans = append(plans, InstallmentFor(total, count))
	}
	return plans
}
