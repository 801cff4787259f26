package response

import "webpay_gateway/internal/domain/entities"

type GatewayResultResponse struct {
	Code          string            `json:"code"`
	ShortMessage  string            `json:"short_message,omitempty"`
	LongMessage   string            `json:"long_message,omitempty"`
	Successful    bool              `json:"successful"`
	Canceled      bool              `json:"canceled"`
	Duplicate     bool              `json:"duplicate"`
	Token         string            `json:"token,omitempty"`
	RedirectURL   string            `json:"redirect_url,omitempty"`
	TransactionID string            `json:"transaction_id,omitempty"`
	OrderRef      string            `json:"order_ref,omitempty"`
	PrivateData   map[string]string `json:"private_data,omitempty"`

	Raw map[string]any `json:"raw,omitempty"`
}

func FromGatewayResult(r entities.GatewayResult) GatewayResultResponse {
	privateData := r.PrivateData()
	if len(privateData) == 0 {
		privateData = nil
	}
	return GatewayResultResponse{
		Code:          r.Code(),
		ShortMessage:  r.ShortMessage(),
		LongMessage:   r.LongMessage(),
		Successful:    r.IsSuccessful(),
		Canceled:      r.IsCanceled(),
		Duplicate:     r.IsDuplicate(),
		Token:         r.Token(),
		RedirectURL:   r.RedirectURL(),
		TransactionID: r.TransactionID(),
		OrderRef:      r.OrderRef(),
		PrivateData:   privateData,
		Raw:           r.Raw(),
	}
}
