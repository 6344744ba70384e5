// 生成摘要：结算查询服务：草稿状态与分期方案。
package application

import (
	"context"
	"fmt"

	"github.com/wyfcoding/ecommerce/internal/checkout/domain"
)

// CheckoutQueryService 结算查询服务
type CheckoutQueryService struct {
	drafts  domain.DraftRepository
	methods []domain.ShippingMethod
}

// NewCheckoutQueryService 创建结算查询服务实例
func NewCheckoutQueryService(drafts domain.DraftRepository, methods []domain.ShippingMethod) *CheckoutQueryService {
	if len(methods) == 0 {
		methods = domain.DefaultShippingMethods()
	}
	return &CheckoutQueryService{drafts: drafts, methods: methods}
}

// GetDraft 读取当前结算草稿，没有进行中的结算时返回 (nil, nil)
func (s *CheckoutQueryService) GetDraft(ctx context.Context, userID string) (*DraftDTO, error) {
	draft, err := s.drafts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	if draft == nil {
		return nil, nil
	}
	return toDraftDTO(draft, s.methods), nil
}

// ListInstallmentPlans 按草稿当前总额列出全部分期方案
func (s *CheckoutQueryService) ListInstallmentPlans(ctx context.Context, userID string) ([]InstallmentOptionDTO, error) {
	draft, err := s.drafts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	if draft == nil {
		return nil, fmt.Errorf("no active checkout for user %s", userID)
	}
	return toInstallmentDTOs(domain.InstallmentPlans(draft.Totals.Total)), nil
}
