// 生成摘要：结算向导状态机：逐步前进、任意回退、仅向后跳转。
package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/pkg/fsm"
)

var (
	// ErrEmptyCart 空购物车不允许发起结算
	ErrEmptyCart = errors.New("cart is empty")
	// ErrWrongStep 提交的数据与当前步骤不符
	ErrWrongStep = errors.New("operation not allowed at current step")
	// ErrForwardJump 跳转只允许回到已完成的步骤
	ErrForwardJump = errors.New("cannot jump forward")
	// ErrTermsNotAccepted 未勾选条款不能提交订单
	ErrTermsNotAccepted = errors.New("terms must be accepted")
	// ErrUnknownShippingMethod 配送方式不在可选列表中
	ErrUnknownShippingMethod = errors.New("unknown shipping method")
)

const (
	eventAdvance  = "ADVANCE"
	eventRetreat  = "RETREAT"
	eventComplete = "COMPLETE"
	eventAbandon  = "ABANDON"
)

func (d *OrderDraft) initFSM() {
	m := fsm.NewMachine[string, string](string(d.Step))
	m.AddTransition(string(StepPersonal), eventAdvance, string(StepShipping))
	m.AddTransition(string(StepShipping), eventAdvance, string(StepPayment))
	m.AddTransition(string(StepPayment), eventAdvance, string(StepReview))
	m.AddTransition(string(StepShipping), eventRetreat, string(StepPersonal))
	m.AddTransition(string(StepPayment), eventRetreat, string(StepShipping))
	m.AddTransition(string(StepReview), eventRetreat, string(StepPayment))
	m.AddTransition(string(StepReview), eventComplete, string(StepCompleted))
	m.AddTransition(string(StepPersonal), eventAbandon, string(StepAbandoned))
	m.AddTransition(string(StepShipping), eventAbandon, string(StepAbandoned))
	m.AddTransition(string(StepPayment), eventAbandon, string(StepAbandoned))
	m.AddTransition(string(StepReview), eventAbandon, string(StepAbandoned))
	d.fsm = m
}

// InitFSM 确保状态机已初始化（反序列化后的草稿没有状态机）
func (d *OrderDraft) InitFSM() {
	if d.fsm == nil {
		d.initFSM()
	}
}

// SubmitPersonal 提交个人信息并前进到收货地址步骤
func (d *OrderDraft) SubmitPersonal(ctx context.Context, info PersonalInfo) error {
	if d.Step != StepPersonal {
		return fmt.Errorf("%w: step is %s", ErrWrongStep, d.Step)
	}
	d.InitFSM()
	if err := d.fsm.Trigger(ctx, eventAdvance); err != nil {
		return err
	}
	d.Personal = info
	d.Step = StepShipping
	d.UpdatedAt = time.Now()
	return nil
}

// SubmitShipping 提交收货地址与配送方式并前进到支付步骤。
// 配送费率取自所选方式，随后立即重算金额。
func (d *OrderDraft) SubmitShipping(ctx context.Context, addr ShippingAddress, methods []ShippingMethod) error {
	if d.Step != StepShipping {
		return fmt.Errorf("%w: step is %s", ErrWrongStep, d.Step)
	}
	var rate decimal.Decimal
	days := 0
	found := false
	for _, m := range methods {
		if m.Code == addr.Method {
			rate = m.Rate
			days = m.Days
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrUnknownShippingMethod, addr.Method)
	}
	d.InitFSM()
	if err := d.fsm.Trigger(ctx, eventAdvance); err != nil {
		return err
	}
	d.Address = addr
	d.ShippingRate = rate
	d.ShippingDays = days
	d.Step = StepPayment
	d.RecomputeTotals()
	return nil
}

// SubmitPayment 提交支付方式并前进到确认步骤
func (d *OrderDraft) SubmitPayment(ctx context.Context, payment PaymentInfo) error {
	if d.Step != StepPayment {
		return fmt.Errorf("%w: step is %s", ErrWrongStep, d.Step)
	}
	d.InitFSM()
	if err := d.fsm.Trigger(ctx, eventAdvance); err != nil {
		return err
	}
	if payment.Method != PaymentMethodCreditCard {
		payment.Installments = 0
	}
	d.Payment = payment
	d.Step = StepReview
	d.UpdatedAt = time.Now()
	return nil
}

// Retreat 回到上一步，个人信息步骤时为空操作
func (d *OrderDraft) Retreat(ctx context.Context) error {
	if d.Step == StepPersonal {
		return nil
	}
	if _, ok := stepOrder[d.Step]; !ok {
		return fmt.Errorf("%w: step is %s", ErrWrongStep, d.Step)
	}
	d.InitFSM()
	if err := d.fsm.Trigger(ctx, eventRetreat); err != nil {
		return err
	}
	switch d.Step {
	case StepShipping:
		d.Step = StepPersonal
	case StepPayment:
		d.Step = StepShipping
	case StepReview:
		d.Step = StepPayment
	}
	d.UpdatedAt = time.Now()
	return nil
}

// JumpTo 跳转到之前已经完成的步骤，向前跳转一律拒绝
func (d *OrderDraft) JumpTo(target WizardStep) error {
	current, ok := stepOrder[d.Step]
	if !ok {
		return fmt.Errorf("%w: step is %s", ErrWrongStep, d.Step)
	}
	wanted, ok := stepOrder[target]
	if !ok {
		return fmt.Errorf("%w: target %s", ErrWrongStep, target)
	}
	if wanted >= current {
		return fmt.Errorf("%w: %s -> %s", ErrForwardJump, d.Step, target)
	}
	d.Step = target
	d.initFSM()
	d.UpdatedAt = time.Now()
	return nil
}

// AcceptTerms 记录条款勾选状态
func (d *OrderDraft) AcceptTerms(accepted bool) {
	d.TermsAccepted = accepted
	d.UpdatedAt = time.Now()
}

// Complete 订单提交成功后关闭向导
func (d *OrderDraft) Complete(ctx context.Context, orderNo string) error {
	if d.Step != StepReview {
		return fmt.Errorf("%w: step is %s", ErrWrongStep, d.Step)
	}
	if !d.TermsAccepted {
		return ErrTermsNotAccepted
	}
	d.InitFSM()
	if err := d.fsm.Trigger(ctx, eventComplete); err != nil {
		return err
	}
	d.Step = StepCompleted
	d.OrderNo = orderNo
	d.UpdatedAt = time.Now()
	return nil
}

// Abandon 放弃结算，任何非终态均可
func (d *OrderDraft) Abandon(ctx context.Context) error {
	if _, ok := stepOrder[d.Step]; !ok {
		return fmt.Errorf("%w: step is %s", ErrWrongStep, d.Step)
	}
	d.InitFSM()
	if err := d.fsm.Trigger(ctx, eventAbandon); err != nil {
		return err
	}
	d.Step = StepAbandoned
	d.UpdatedAt = time.Now()
	return nil
}

// Terminal 向导是否已结束
func (d *OrderDraft) Terminal() bool {
	return d.Step == StepCompleted || d.Step == StepAbandoned
}
