package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheckEligibilityInactive(t *testing.T) {
	c := &Coupon{Code: "X", Active: false}
	assert.ErrorIs(t, c.CheckEligibility(dec("100"), time.Now()), ErrCouponNotFound)
}

func TestCheckEligibilityUsageExhausted(t *testing.T) {
	c := &Coupon{Code: "X", Active: true, MaxUsage: 10, UsageCount: 10}
	assert.ErrorIs(t, c.CheckEligibility(dec("100"), time.Now()), ErrCouponNotFound)
}

func TestCheckEligibilityExpired(t *testing.T) {
	past := time.Now().Add(-time.Minute)
	c := &Coupon{Code: "X", Active: true, ExpiresAt: &past}
	assert.ErrorIs(t, c.CheckEligibility(dec("100"), time.Now()), ErrCouponExpired)
}

func TestCheckEligibilityExactlyAtExpiryIsExpired(t *testing.T) {
	now := time.Now()
	c := &Coupon{Code: "X", Active: true, ExpiresAt: &now}
	assert.ErrorIs(t, c.CheckEligibility(dec("100"), now), ErrCouponExpired)
}

func TestCheckEligibilityBelowMinimum(t *testing.T) {
	c := &Coupon{Code: "X", Active: true, MinimumOrderValue: dec("150.00")}
	assert.ErrorIs(t, c.CheckEligibility(dec("149.99"), time.Now()), ErrCouponBelowMinimum)
}

func TestCheckEligibilityOK(t *testing.T) {
	future := time.Now().Add(time.Hour)
	c := &Coupon{Code: "X", Active: true, MinimumOrderValue: dec("150.00"), ExpiresAt: &future}
	assert.NoError(t, c.CheckEligibility(dec("150.00"), time.Now()))
}
