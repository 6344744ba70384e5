package mysql

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/ecommerce/internal/cart/domain"
)

// CouponModel MySQL 优惠券表映射
type CouponModel struct {
	ID                uint            `gorm:"primaryKey;autoIncrement"`
	CreatedAt         time.Time       `gorm:"column:created_at"`
	UpdatedAt         time.Time       `gorm:"column:updated_at"`
	Code              string          `gorm:"column:code;type:varchar(50);uniqueIndex;not null"`
	Description       string          `gorm:"column:description;type:varchar(255)"`
	Kind              string          `gorm:"column:kind;type:varchar(20);not null"`
	Amount            decimal.Decimal `gorm:"column:amount;type:decimal(20,4);not null"`
	MinimumOrderValue decimal.Decimal `gorm:"column:minimum_order_value;type:decimal(20,2);not null;default:0"`
	MaxDiscount       decimal.Decimal `gorm:"column:max_discount;type:decimal(20,2);not null;default:0"`
	ExpiresAt         *time.Time      `gorm:"column:expires_at"`
	Active            bool            `gorm:"column:active;default:true"`
	UsageCount        int             `gorm:"column:usage_count;not null;default:0"`
	MaxUsage          int             `gorm:"column:max_usage;not null;default:0"`
	NewCustomersOnly  bool            `gorm:"column:new_customers_only;default:false"`
}

func (CouponModel) TableName() string {
	return "coupons"
}

// CouponRedemptionModel 优惠券核销标记，按订单号去重
type CouponRedemptionModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `gorm:"column:created_at"`
	OrderNo   string    `gorm:"column:order_no;type:varchar(64);uniqueIndex;not null"`
	Code      string    `gorm:"column:code;type:varchar(50);index;not null"`
}

func (CouponRedemptionModel) TableName() string {
	return "coupon_redemptions"
}

func toCouponModel(coupon *domain.Coupon) *CouponModel {
	if coupon == nil {
		return nil
	}
	return &CouponModel{
		ID:                coupon.ID,
		CreatedAt:         coupon.CreatedAt,
		UpdatedAt:         coupon.UpdatedAt,
		Code:              coupon.Code,
		Description:       coupon.Description,
		Kind:              string(coupon.Kind),
		Amount:            coupon.Amount,
		MinimumOrderValue: coupon.MinimumOrderValue,
		MaxDiscount:       coupon.MaxDiscount,
		ExpiresAt:         coupon.ExpiresAt,
		Active:            coupon.Active,
		UsageCount:        coupon.UsageCount,
		MaxUsage:          coupon.MaxUsage,
		NewCustomersOnly:  coupon.NewCustomersOnly,
	}
}

func toCoupon(model *CouponModel) *domain.Coupon {
	if model == nil {
		return nil
	}
	return &domain.Coupon{
		ID:                model.ID,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
		Code:              model.Code,
		Description:       model.Description,
		Kind:              domain.CouponKind(model.Kind),
		Amount:            model.Amount,
		MinimumOrderValue: model.MinimumOrderValue,
		MaxDiscount:       model.MaxDiscount,
		ExpiresAt:         model.ExpiresAt,
		Active:            model.Active,
		UsageCount:        model.UsageCount,
		MaxUsage:          model.MaxUsage,
		NewCustomersOnly:  model.NewCustomersOnly,
	}
}
