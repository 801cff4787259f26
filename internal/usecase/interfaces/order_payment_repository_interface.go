package interfaces

import (
	"context"
	"webpay_gateway/internal/domain/entities"
)

// IOrderPaymentRepository abstracts the shop-side store the order listener
// writes notification outcomes to.

type IOrderPaymentRepository interface {
	Save(ctx context.Context, p entities.OrderPayment) (entities.OrderPayment, error)
	GetByOrderRef(ctx context.Context, orderRef string) (entities.OrderPayment, error)
}
