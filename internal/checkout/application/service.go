package application

import (
	"context"

	"github.com/wyfcoding/ecommerce/internal/checkout/domain"
)

// CheckoutService 结算服务门面，整合命令服务和查询服务
type CheckoutService struct {
	commandService *CheckoutCommandService
	queryService   *CheckoutQueryService
}

// NewCheckoutService 创建结算服务门面实例
func NewCheckoutService(
	drafts domain.DraftRepository,
	cart domain.CartGateway,
	orders domain.OrderSubmitter,
	postal domain.PostalLookup,
	methods []domain.ShippingMethod,
) *CheckoutService {
	return &CheckoutService{
		commandService: NewCheckoutCommandService(drafts, cart, orders, postal, methods),
		queryService:   NewCheckoutQueryService(drafts, methods),
	}
}

// StartCheckout 发起结算
func (s *CheckoutService) StartCheckout(ctx context.Context, userID string) (*DraftDTO, error) {
	return s.commandService.StartCheckout(ctx, userID)
}

// GetDraft 当前草稿
func (s *CheckoutService) GetDraft(ctx context.Context, userID string) (*DraftDTO, error) {
	return s.queryService.GetDraft(ctx, userID)
}

// SubmitPersonal 提交个人信息
func (s *CheckoutService) SubmitPersonal(ctx context.Context, userID string, info domain.PersonalInfo) (*DraftDTO, error) {
	return s.commandService.SubmitPersonal(ctx, userID, info)
}

// SubmitShipping 提交收货地址
func (s *CheckoutService) SubmitShipping(ctx context.Context, userID string, addr domain.ShippingAddress) (*DraftDTO, error) {
	return s.commandService.SubmitShipping(ctx, userID, addr)
}

// SubmitPayment 提交支付方式
func (s *CheckoutService) SubmitPayment(ctx context.Context, userID string, info domain.PaymentInfo) (*DraftDTO, error) {
	return s.commandService.SubmitPayment(ctx, userID, info)
}

// Retreat 回退一步
func (s *CheckoutService) Retreat(ctx context.Context, userID string) (*DraftDTO, error) {
	return s.commandService.Retreat(ctx, userID)
}

// JumpTo 跳回已完成的步骤
func (s *CheckoutService) JumpTo(ctx context.Context, userID string, step domain.WizardStep) (*DraftDTO, error) {
	return s.commandService.JumpTo(ctx, userID, step)
}

// AcceptTerms 勾选条款
func (s *CheckoutService) AcceptTerms(ctx context.Context, userID string, accepted bool) (*DraftDTO, error) {
	return s.commandService.AcceptTerms(ctx, userID, accepted)
}

// FinishOrder 提交订单
func (s *CheckoutService) FinishOrder(ctx context.Context, userID string) (string, error) {
	return s.commandService.FinishOrder(ctx, userID)
}

// Abandon 放弃结算
func (s *CheckoutService) Abandon(ctx context.Context, userID string) error {
	return s.commandService.Abandon(ctx, userID)
}

// LookupAddress 邮编预填
func (s *CheckoutService) LookupAddress(ctx context.Context, cep string) *domain.PostalAddress {
	return s.commandService.LookupAddress(ctx, cep)
}

// ListInstallmentPlans 分期方案列表
func (s *CheckoutService) ListInstallmentPlans(ctx context.Context, userID string) ([]InstallmentOptionDTO, error) {
	return s.queryService.ListInstallmentPlans(ctx, userID)
}
