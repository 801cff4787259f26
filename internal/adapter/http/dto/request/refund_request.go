package request

// RefundRequest is the payload for the refund route. A missing amount refunds
// what the gateway recorded for the payment.
type RefundRequest struct {
	Comment        string `json:"comment"`
	SequenceNumber int    `json:"sequence_number" binding:"gte=0"`
	Amount         *int   `json:"amount" binding:"omitempty,gt=0"`
}
