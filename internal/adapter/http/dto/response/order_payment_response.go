package response

import (
	"time"

	"webpay_gateway/internal/domain/entities"
)

type OrderPaymentResponse struct {
	OrderRef      string            `json:"order_ref"`
	Token         string            `json:"token,omitempty"`
	TransactionID string            `json:"transaction_id,omitempty"`
	Status        string            `json:"status"`
	ResultCode    string            `json:"result_code"`
	PrivateData   map[string]string `json:"private_data,omitempty"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func FromOrderPayment(p entities.OrderPayment) OrderPaymentResponse {
	return OrderPaymentResponse{
		OrderRef:      p.OrderRef,
		Token:         p.Token,
		TransactionID: p.TransactionID,
		Status:        string(p.Status),
		ResultCode:    p.ResultCode,
		PrivateData:   p.PrivateData,
		UpdatedAt:     p.UpdatedAt,
	}
}
