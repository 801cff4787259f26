package request

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"webpay_gateway/internal/domain/entities"
)

var ErrInvalidExtraOption = errors.New("invalid extra option")

// WebPaymentRequest is the payload for the "initiate web payment" route.
//
// `extra_options` is merged as a nested hash; `options` is a flat
// path => value map ("buyer.email", "[buyer][email]") applied on top of it.
type WebPaymentRequest struct {
	Amount         int               `json:"amount" binding:"required,gt=0"`
	Currency       int               `json:"currency" binding:"gte=0"`
	Action         int               `json:"action" binding:"omitempty,oneof=100 101"`
	Mode           string            `json:"mode" binding:"omitempty,oneof=CPT DIF REC NX"`
	ContractNumber string            `json:"contract_number"`
	OrderRef       string            `json:"order_ref" binding:"required"`
	OrderAmount    int               `json:"order_amount" binding:"gte=0"`
	OrderCurrency  int               `json:"order_currency" binding:"gte=0"`
	OrderTaxes     int               `json:"order_taxes" binding:"gte=0"`
	OrderCountry   string            `json:"order_country"`
	OrderDate      *time.Time        `json:"order_date"`
	ExtraOptions   map[string]any    `json:"extra_options"`
	Options        map[string]any    `json:"options"`
	PrivateData    map[string]string `json:"private_data"`
}

// ToTransaction builds the transaction; a missing order date defaults to now.
// A blank order_ref is kept blank so that Validate rejects it.
func (r WebPaymentRequest) ToTransaction(now time.Time) (*entities.TransactionRequest, error) {
	orderDate := now
	if r.OrderDate != nil && !r.OrderDate.IsZero() {
		orderDate = *r.OrderDate
	}

	tx := entities.NewTransactionRequest(r.Amount, strings.TrimSpace(r.OrderRef), orderDate).
		SetCurrency(r.Currency).
		SetContractNumber(r.ContractNumber).
		SetOrderAmount(r.OrderAmount).
		SetOrderCurrency(r.OrderCurrency).
		SetOrderTaxes(r.OrderTaxes).
		SetOrderCountry(strings.TrimSpace(r.OrderCountry))
	if r.Action != 0 {
		tx.SetAction(entities.PaymentAction(r.Action))
	}
	if r.Mode != "" {
		tx.SetMode(entities.PaymentMode(r.Mode))
	}
	if len(r.ExtraOptions) > 0 {
		tx.SetExtraOptions(entities.Options(r.ExtraOptions).Clone())
	}

	// sorted so that "a" is applied before "a.b"
	paths := make([]string, 0, len(r.Options))
	for p := range r.Options {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		if err := tx.AddExtraOption(p, r.Options[p]); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidExtraOption, err)
		}
	}

	for k, v := range r.PrivateData {
		tx.AddPrivateData(k, v)
	}
	return tx, nil
}
