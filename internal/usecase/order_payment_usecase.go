package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"webpay_gateway/internal/domain/entities"
	"webpay_gateway/internal/usecase/interfaces"
)

var (
	ErrOrderPaymentNotFound = errors.New("order payment not found")
	ErrInvalidOrderRef      = errors.New("invalid order_ref")
)

// IOrderPaymentUseCase is the shop side of the integration: it records what the
// gateway reported for each order.

type IOrderPaymentUseCase interface {
	RecordNotification(ctx context.Context, result entities.GatewayResult) (entities.OrderPayment, error)
	GetByOrderRef(ctx context.Context, orderRef string) (entities.OrderPayment, error)
}

type OrderPaymentUseCase struct {
	repo interfaces.IOrderPaymentRepository
	now  func() time.Time
}

var _ IOrderPaymentUseCase = (*OrderPaymentUseCase)(nil)

func NewOrderPaymentUseCase(repo interfaces.IOrderPaymentRepository) *OrderPaymentUseCase {
	return &OrderPaymentUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *OrderPaymentUseCase) RecordNotification(ctx context.Context, result entities.GatewayResult) (entities.OrderPayment, error) {
	orderRef := strings.TrimSpace(result.OrderRef())
	if orderRef == "" {
		log.Printf("[payment][orders] notification without order ref code=%s", result.Code())
		return entities.OrderPayment{}, ErrInvalidOrderRef
	}

	p := entities.OrderPayment{
		OrderRef:      orderRef,
		Token:         result.Token(),
		TransactionID: result.TransactionID(),
		Status:        entities.OrderPaymentStatusFromResult(result),
		ResultCode:    result.Code(),
		PrivateData:   result.PrivateData(),
		UpdatedAt:     u.now(),
	}

	saved, err := u.repo.Save(ctx, p)
	if err != nil {
		log.Printf("[payment][orders] save failed order_ref=%s err=%v", orderRef, err)
		return entities.OrderPayment{}, err
	}
	log.Printf("[payment][orders] recorded order_ref=%s status=%s code=%s", orderRef, saved.Status, saved.ResultCode)
	return saved, nil
}

func (u *OrderPaymentUseCase) GetByOrderRef(ctx context.Context, orderRef string) (entities.OrderPayment, error) {
	orderRef = strings.TrimSpace(orderRef)
	if orderRef == "" {
		return entities.OrderPayment{}, ErrInvalidOrderRef
	}
	p, err := u.repo.GetByOrderRef(ctx, orderRef)
	if err != nil {
		return entities.OrderPayment{}, err
	}
	if p.OrderRef == "" {
		return entities.OrderPayment{}, ErrOrderPaymentNotFound
	}
	return p, nil
}

// Listener records every on-notification outcome. Store failures are logged:
// the gateway acknowledgement does not depend on the shop's bookkeeping.
func (u *OrderPaymentUseCase) Listener() Listener {
	return func(ctx context.Context, n *entities.Notification) {
		if _, err := u.RecordNotification(ctx, n.Result); err != nil {
			log.Printf("[payment][orders] listener failed kind=%s err=%v", n.Kind, err)
		}
	}
}
