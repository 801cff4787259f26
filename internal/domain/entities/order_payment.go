package entities

import "time"

// OrderPaymentStatus is the shop-side view of an order after a gateway callback.
type OrderPaymentStatus string

const (
	OrderPaymentStatusPaid      OrderPaymentStatus = "paid"
	OrderPaymentStatusCanceled  OrderPaymentStatus = "canceled"
	OrderPaymentStatusDuplicate OrderPaymentStatus = "duplicate"
	OrderPaymentStatusFailed    OrderPaymentStatus = "failed"
)

// OrderPayment is what the shop records when a notification arrives.
//
// Storage model (DynamoDB):
//   - PK: order_ref
//
// This belongs to the shop side: the gateway integration itself keeps no state,
// the order listener writes it from the on-notification event.
type OrderPayment struct {
	OrderRef      string             `json:"order_ref"`
	Token         string             `json:"token"`
	TransactionID string             `json:"transaction_id"`
	Status        OrderPaymentStatus `json:"status"`
	ResultCode    string             `json:"result_code"`
	PrivateData   map[string]string  `json:"private_data,omitempty"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// OrderPaymentStatusFromResult classifies a verified gateway result.
func OrderPaymentStatusFromResult(r GatewayResult) OrderPaymentStatus {
	switch {
	case r.IsSuccessful():
		return OrderPaymentStatusPaid
	case r.IsCanceled():
		return OrderPaymentStatusCanceled
	case r.IsDuplicate():
		return OrderPaymentStatusDuplicate
	default:
		return OrderPaymentStatusFailed
	}
}
