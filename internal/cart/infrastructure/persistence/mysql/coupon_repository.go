package mysql

import (
	"context"
	"errors"
	"strings"

	"github.com/wyfcoding/ecommerce/internal/cart/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type couponRepository struct{ db *gorm.DB }

// NewCouponRepository 创建基于 MySQL 的优惠券仓储
func NewCouponRepository(db *gorm.DB) domain.CouponRepository {
	return &couponRepository{db: db}
}

func (r *couponRepository) GetByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	var model CouponModel
	err := r.db.WithContext(ctx).Where("code = ?", strings.ToUpper(code)).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toCoupon(&model), nil
}

func (r *couponRepository) Save(ctx context.Context, coupon *domain.Coupon) error {
	model := toCouponModel(coupon)
	model.Code = strings.ToUpper(model.Code)
	if model.ID == 0 {
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			return err
		}
		coupon.ID = model.ID
		return nil
	}
	return r.db.WithContext(ctx).Save(model).Error
}

func (r *couponRepository) List(ctx context.Context) ([]*domain.Coupon, error) {
	var models []CouponModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	coupons := make([]*domain.Coupon, 0, len(models))
	for i := range models {
		coupons = append(coupons, toCoupon(&models[i]))
	}
	return coupons, nil
}

// IncrementUsage 在一个事务里打核销标记并累计用量。
// 订单号已存在时整笔跳过，消费端重复投递不会重复计数。
func (r *couponRepository) IncrementUsage(ctx context.Context, code, orderNo string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		marker := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_no"}},
			DoNothing: true,
		}).Create(&CouponRedemptionModel{OrderNo: orderNo, Code: strings.ToUpper(code)})
		if marker.Error != nil {
			return marker.Error
		}
		if marker.RowsAffected == 0 {
			return nil
		}
		return tx.Model(&CouponModel{}).
			Where("code = ?", strings.ToUpper(code)).
			UpdateColumn("usage_count", gorm.Expr("usage_count + 1")).Error
	})
}
