// 生成摘要：结算向导命令服务：发起结算、逐步推进、提交订单。
package application

import (
	"context"
	"fmt"

	"github.com/wyfcoding/ecommerce/internal/checkout/domain"
	"github.com/wyfcoding/pkg/logging"
)

// CheckoutCommandService 结算命令服务
type CheckoutCommandService struct {
	drafts    domain.DraftRepository
	cart      domain.CartGateway
	orders    domain.OrderSubmitter
	postal    domain.PostalLookup
	validator *domain.StepValidator
	methods   []domain.ShippingMethod
}

// NewCheckoutCommandService 创建结算命令服务实例
func NewCheckoutCommandService(
	drafts domain.DraftRepository,
	cart domain.CartGateway,
	orders domain.OrderSubmitter,
	postal domain.PostalLookup,
	methods []domain.ShippingMethod,
) *CheckoutCommandService {
	if len(methods) == 0 {
		methods = domain.DefaultShippingMethods()
	}
	return &CheckoutCommandService{
		drafts:    drafts,
		cart:      cart,
		orders:    orders,
		postal:    postal,
		validator: domain.NewStepValidator(),
		methods:   methods,
	}
}

func (s *CheckoutCommandService) loadDraft(ctx context.Context, userID string) (*domain.OrderDraft, error) {
	draft, err := s.drafts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	if draft == nil {
		return nil, fmt.Errorf("no active checkout for user %s", userID)
	}
	draft.InitFSM()
	return draft, nil
}

// StartCheckout 从购物车快照发起结算。已有未完成草稿时直接续用，
// 避免刷新页面丢进度。
func (s *CheckoutCommandService) StartCheckout(ctx context.Context, userID string) (*DraftDTO, error) {
	existing, err := s.drafts.GetByUserID(ctx, userID)
	if err != nil {
		logging.Warn(ctx, "draft snapshot unavailable, starting fresh", "user_id", userID, "error", err)
	}
	if existing != nil && !existing.Terminal() {
		existing.InitFSM()
		return toDraftDTO(existing, s.methods), nil
	}

	snapshot, err := s.cart.GetCart(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch cart: %w", err)
	}
	if snapshot == nil || len(snapshot.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	draft := domain.NewOrderDraft(userID, snapshot.Items, snapshot.Coupon)
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}
	logging.Info(ctx, "checkout started", "user_id", userID, "items", len(snapshot.Items))
	return toDraftDTO(draft, s.methods), nil
}

// SubmitPersonal 校验并提交个人信息步骤
func (s *CheckoutCommandService) SubmitPersonal(ctx context.Context, userID string, info domain.PersonalInfo) (*DraftDTO, error) {
	if errs := s.validator.ValidatePersonal(info); len(errs) > 0 {
		return nil, errs
	}
	draft, err := s.loadDraft(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := draft.SubmitPersonal(ctx, info); err != nil {
		return nil, err
	}
	return s.saveAndRespond(ctx, draft)
}

// SubmitShipping 校验并提交收货地址步骤，金额按所选配送方式重算
func (s *CheckoutCommandService) SubmitShipping(ctx context.Context, userID string, addr domain.ShippingAddress) (*DraftDTO, error) {
	if errs := s.validator.ValidateShipping(addr); len(errs) > 0 {
		return nil, errs
	}
	draft, err := s.loadDraft(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := draft.SubmitShipping(ctx, addr, s.methods); err != nil {
		return nil, err
	}
	return s.saveAndRespond(ctx, draft)
}

// SubmitPayment 校验并提交支付步骤
func (s *CheckoutCommandService) SubmitPayment(ctx context.Context, userID string, info domain.PaymentInfo) (*DraftDTO, error) {
	if errs := s.validator.ValidatePayment(info); len(errs) > 0 {
		return nil, errs
	}
	draft, err := s.loadDraft(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := draft.SubmitPayment(ctx, info); err != nil {
		return nil, err
	}
	return s.saveAndRespond(ctx, draft)
}

// Retreat 回退一步
func (s *CheckoutCommandService) Retreat(ctx context.Context, userID string) (*DraftDTO, error) {
	draft, err := s.loadDraft(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := draft.Retreat(ctx); err != nil {
		return nil, err
	}
	return s.saveAndRespond(ctx, draft)
}

// JumpTo 跳回已完成的步骤
func (s *CheckoutCommandService) JumpTo(ctx context.Context, userID string, step domain.WizardStep) (*DraftDTO, error) {
	draft, err := s.loadDraft(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := draft.JumpTo(step); err != nil {
		return nil, err
	}
	return s.saveAndRespond(ctx, draft)
}

// AcceptTerms 记录条款勾选
func (s *CheckoutCommandService) AcceptTerms(ctx context.Context, userID string, accepted bool) (*DraftDTO, error) {
	draft, err := s.loadDraft(ctx, userID)
	if err != nil {
		return nil, err
	}
	draft.AcceptTerms(accepted)
	return s.saveAndRespond(ctx, draft)
}

// FinishOrder 提交订单。提交失败时草稿留在确认步骤可重试；
// 成功后清空购物车并销毁草稿。
func (s *CheckoutCommandService) FinishOrder(ctx context.Context, userID string) (string, error) {
	draft, err := s.loadDraft(ctx, userID)
	if err != nil {
		return "", err
	}
	if draft.Step != domain.StepReview {
		return "", fmt.Errorf("%w: step is %s", domain.ErrWrongStep, draft.Step)
	}
	if !draft.TermsAccepted {
		return "", domain.ErrTermsNotAccepted
	}

	orderNo, err := s.orders.Submit(ctx, draft)
	if err != nil {
		logging.Error(ctx, "order submission failed", "user_id", userID, "error", err)
		return "", fmt.Errorf("submit order: %w", err)
	}
	if err := draft.Complete(ctx, orderNo); err != nil {
		return "", err
	}

	if err := s.cart.ClearCart(ctx, userID); err != nil {
		logging.Warn(ctx, "failed to clear cart after checkout", "user_id", userID, "error", err)
	}
	if err := s.drafts.Delete(ctx, userID); err != nil {
		logging.Warn(ctx, "failed to delete draft after checkout", "user_id", userID, "error", err)
	}
	logging.Info(ctx, "checkout completed", "user_id", userID, "order_no", orderNo)
	return orderNo, nil
}

// Abandon 放弃结算并销毁草稿
func (s *CheckoutCommandService) Abandon(ctx context.Context, userID string) error {
	draft, err := s.loadDraft(ctx, userID)
	if err != nil {
		return err
	}
	if err := draft.Abandon(ctx); err != nil {
		return err
	}
	if err := s.drafts.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}

// LookupAddress 邮编预填，失败时返回空结果而不是错误
func (s *CheckoutCommandService) LookupAddress(ctx context.Context, cep string) *domain.PostalAddress {
	addr, err := s.postal.Lookup(ctx, cep)
	if err != nil || addr == nil {
		return nil
	}
	return addr
}

func (s *CheckoutCommandService) saveAndRespond(ctx context.Context, draft *domain.OrderDraft) (*DraftDTO, error) {
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}
	return toDraftDTO(draft, s.methods), nil
}
