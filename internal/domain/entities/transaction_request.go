package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ISO 4217 numeric currency codes commonly used with the gateway.
const (
	CurrencyEUR = 978
	CurrencyUSD = 840
	CurrencyCHF = 756
	CurrencyGBP = 826
	CurrencyCAD = 124
)

// PaymentAction is the gateway action code sent in payment.action.
type PaymentAction int

const (
	PaymentActionAuthorization        PaymentAction = 100
	PaymentActionAuthorizationCapture PaymentAction = 101
	PaymentActionRefund               PaymentAction = 421
)

// PaymentMode is the gateway payment mode sent in payment.mode.
type PaymentMode string

const (
	PaymentModeCash      PaymentMode = "CPT"
	PaymentModeDiffered  PaymentMode = "DIF"
	PaymentModeRecurrent PaymentMode = "REC"
	PaymentModeMultiple  PaymentMode = "NX"
)

// OrderDateLayout is the gateway format for order.date (dd/mm/yyyy HH:MM).
const OrderDateLayout = "02/01/2006 15:04"

var ErrInvalidTransactionRequest = errors.New("invalid transaction request")

// TransactionRequest describes one web payment attempt (doWebPayment).
//
// Zero values mean "unset": Currency, OrderAmount and OrderCurrency fall back
// at mapping time, ContractNumber falls back to the configured contract and
// then to an empty string. The request lives for a single attempt; the caller
// keeps OrderRef and Token if it needs them later.
type TransactionRequest struct {
	// Amount in the smallest currency unit (e.g. 145 for 1.45 EUR).
	Amount   int `json:"amount" validate:"gt=0"`
	Currency int `json:"currency,omitempty" validate:"gte=0"`

	Action PaymentAction `json:"action" validate:"oneof=100 101"`
	Mode   PaymentMode   `json:"mode" validate:"oneof=CPT DIF REC NX"`

	// ContractNumber identifies the means of payment contract (VISA, Mastercard...).
	ContractNumber string `json:"contract_number,omitempty"`

	// OrderRef must be unique per logical order, the gateway uses it for duplicate control.
	OrderRef      string    `json:"order_ref" validate:"required"`
	OrderAmount   int       `json:"order_amount,omitempty" validate:"gte=0"`
	OrderCurrency int       `json:"order_currency,omitempty" validate:"gte=0"`
	OrderTaxes    int       `json:"order_taxes,omitempty" validate:"gte=0"`
	OrderCountry  string    `json:"order_country,omitempty"`
	OrderDate     time.Time `json:"order_date" validate:"required"`

	ExtraOptions Options           `json:"extra_options,omitempty"`
	PrivateData  map[string]string `json:"private_data,omitempty"`

	// Token is the gateway session token, known once the payment is initiated.
	Token string `json:"token,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewTransactionRequest returns a request with the default action and mode.
func NewTransactionRequest(amount int, orderRef string, orderDate time.Time) *TransactionRequest {
	return &TransactionRequest{
		Amount:       amount,
		Action:       PaymentActionAuthorizationCapture,
		Mode:         PaymentModeCash,
		OrderRef:     orderRef,
		OrderDate:    orderDate,
		ExtraOptions: Options{},
		PrivateData:  map[string]string{},
	}
}

func (t *TransactionRequest) SetAmount(amount int) *TransactionRequest {
	t.Amount = amount
	return t
}

func (t *TransactionRequest) SetCurrency(currency int) *TransactionRequest {
	t.Currency = currency
	return t
}

func (t *TransactionRequest) SetAction(action PaymentAction) *TransactionRequest {
	t.Action = action
	return t
}

func (t *TransactionRequest) SetMode(mode PaymentMode) *TransactionRequest {
	t.Mode = mode
	return t
}

func (t *TransactionRequest) SetContractNumber(contractNumber string) *TransactionRequest {
	t.ContractNumber = contractNumber
	return t
}

func (t *TransactionRequest) SetOrderRef(orderRef string) *TransactionRequest {
	t.OrderRef = orderRef
	return t
}

func (t *TransactionRequest) SetOrderAmount(amount int) *TransactionRequest {
	t.OrderAmount = amount
	return t
}

func (t *TransactionRequest) SetOrderCurrency(currency int) *TransactionRequest {
	t.OrderCurrency = currency
	return t
}

func (t *TransactionRequest) SetOrderTaxes(taxes int) *TransactionRequest {
	t.OrderTaxes = taxes
	return t
}

func (t *TransactionRequest) SetOrderCountry(country string) *TransactionRequest {
	t.OrderCountry = country
	return t
}

func (t *TransactionRequest) SetOrderDate(date time.Time) *TransactionRequest {
	t.OrderDate = date
	return t
}

func (t *TransactionRequest) SetExtraOptions(options Options) *TransactionRequest {
	t.ExtraOptions = options
	return t
}

func (t *TransactionRequest) SetPrivateData(data map[string]string) *TransactionRequest {
	t.PrivateData = data
	return t
}

// AddExtraOption sets one gateway parameter identified by path.
//
// Both "buyer.email" and "[buyer][email]" address {"buyer": {"email": ...}}.
// See the gateway documentation for what can be set.
func (t *TransactionRequest) AddExtraOption(path string, value any) error {
	if t.ExtraOptions == nil {
		t.ExtraOptions = Options{}
	}
	return t.ExtraOptions.Set(path, value)
}

// AddPrivateData stores shop specific data returned as-is at the end of the
// payment process (order type, internal id...).
func (t *TransactionRequest) AddPrivateData(key, value string) *TransactionRequest {
	if t.PrivateData == nil {
		t.PrivateData = map[string]string{}
	}
	t.PrivateData[key] = value
	return t
}

// ResolvedCurrency returns Currency, or def when unset.
func (t *TransactionRequest) ResolvedCurrency(def int) int {
	if t.Currency != 0 {
		return t.Currency
	}
	return def
}

// ResolvedOrderAmount returns OrderAmount, or Amount when unset.
func (t *TransactionRequest) ResolvedOrderAmount() int {
	if t.OrderAmount != 0 {
		return t.OrderAmount
	}
	return t.Amount
}

// ResolvedOrderCurrency returns OrderCurrency, then Currency, then def.
func (t *TransactionRequest) ResolvedOrderCurrency(def int) int {
	if t.OrderCurrency != 0 {
		return t.OrderCurrency
	}
	return t.ResolvedCurrency(def)
}

// ResolvedContractNumber returns ContractNumber, then def. Both may be empty,
// in which case the gateway receives an empty contract number.
func (t *TransactionRequest) ResolvedContractNumber(def string) string {
	if c := strings.TrimSpace(t.ContractNumber); c != "" {
		return c
	}
	return def
}

// Validate checks the request before anything is sent to the gateway.
func (t *TransactionRequest) Validate() error {
	if t == nil {
		return fmt.Errorf("%w: nil request", ErrInvalidTransactionRequest)
	}
	if strings.TrimSpace(t.OrderRef) == "" {
		return fmt.Errorf("%w: order_ref is required", ErrInvalidTransactionRequest)
	}
	if err := validate.Struct(t); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s(%s)", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidTransactionRequest, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidTransactionRequest, err)
	}
	return nil
}
