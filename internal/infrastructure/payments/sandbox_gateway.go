package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"webpay_gateway/internal/domain/entities"
	"webpay_gateway/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrSandboxInvalidRequest = errors.New("sandbox: invalid request")

const defaultSandboxPaymentPage = "https://sandbox.invalid/webpayment/"

type sandboxPayment struct {
	token         string
	transactionID string
	params        entities.Options
	privateData   []map[string]string
	code          string
	refunded      int
}

// SandboxGateway is an in-memory gateway used for local runs and tests.
//
// Every initiated payment is approved unless its order ref was already used,
// in which case it is flagged as a duplicate. SetOutcome overrides the result
// a later getWebPaymentDetails returns (e.g. canceled by the payer).
type SandboxGateway struct {
	mu          sync.Mutex
	paymentPage string
	byToken     map[string]*sandboxPayment
	byTxID      map[string]*sandboxPayment
	orderRefs   map[string]bool
}

func NewSandboxGateway(paymentPage string) *SandboxGateway {
	if strings.TrimSpace(paymentPage) == "" {
		paymentPage = defaultSandboxPaymentPage
	}
	log.Printf("[payment][sandbox] sandbox gateway enabled payment_page=%s", paymentPage)
	return &SandboxGateway{
		paymentPage: paymentPage,
		byToken:     map[string]*sandboxPayment{},
		byTxID:      map[string]*sandboxPayment{},
		orderRefs:   map[string]bool{},
	}
}

// NewSession implements interfaces.SDKFactory.
func (g *SandboxGateway) NewSession() interfaces.IGatewaySDK {
	return &sandboxSession{gw: g}
}

// SetOutcome forces the result code returned for token.
func (g *SandboxGateway) SetOutcome(token, code string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, ok := g.byToken[token]
	if !ok {
		return fmt.Errorf("%w: unknown token %s", ErrSandboxInvalidRequest, token)
	}
	p.code = code
	return nil
}

type sandboxSession struct {
	gw          *SandboxGateway
	privateData []map[string]string
}

func (s *sandboxSession) AddPrivateData(entry map[string]string) {
	s.privateData = append(s.privateData, map[string]string{"key": entry["key"], "value": entry["value"]})
}

func (s *sandboxSession) takePrivateData() []map[string]string {
	data := s.privateData
	s.privateData = nil
	return data
}

func (s *sandboxSession) DoWebPayment(ctx context.Context, params map[string]any) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts := entities.Options(params).Clone()
	ref, ok := opts.Get("order.ref")
	if !ok || fmt.Sprint(ref) == "" {
		return nil, fmt.Errorf("%w: missing order.ref", ErrSandboxInvalidRequest)
	}
	if _, ok := opts.Get("payment.amount"); !ok {
		return nil, fmt.Errorf("%w: missing payment.amount", ErrSandboxInvalidRequest)
	}

	g := s.gw
	g.mu.Lock()
	defer g.mu.Unlock()

	orderRef := fmt.Sprint(ref)
	code := entities.ResultCodeApproved
	if g.orderRefs[orderRef] {
		code = entities.ResultCodeDuplicate
	}
	g.orderRefs[orderRef] = true

	p := &sandboxPayment{
		token:         uuid.NewString(),
		transactionID: strings.ReplaceAll(uuid.NewString(), "-", "")[:20],
		params:        opts,
		privateData:   s.takePrivateData(),
		code:          code,
	}
	g.byToken[p.token] = p
	g.byTxID[p.transactionID] = p
	log.Printf("[payment][sandbox] doWebPayment order_ref=%s token=%s outcome=%s", orderRef, p.token, code)

	return map[string]any{
		"result":      resultSection(entities.ResultCodeApproved, "ACCEPTED", "Transaction approved"),
		"token":       p.token,
		"redirectURL": g.paymentPage + "?token=" + p.token,
	}, nil
}

func (s *sandboxSession) GetWebPaymentDetails(ctx context.Context, params map[string]any) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	token := fmt.Sprint(params["token"])

	g := s.gw
	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.byToken[token]
	if !ok {
		log.Printf("[payment][sandbox] getWebPaymentDetails unknown token=%s", token)
		return map[string]any{
			"result": resultSection(entities.ResultCodeTokenNotFound, "ERROR", "No transaction found for this token"),
		}, nil
	}

	entries := make([]any, 0, len(p.privateData))
	for _, e := range p.privateData {
		entries = append(entries, map[string]any{"key": e["key"], "value": e["value"]})
	}

	payment, _ := p.params.Get("payment")
	order, _ := p.params.Get("order")

	return map[string]any{
		"result": resultSection(p.code, shortMessageFor(p.code), ""),
		"token":  p.token,
		"transaction": map[string]any{
			"id":   p.transactionID,
			"date": time.Now().UTC().Format(entities.OrderDateLayout),
		},
		"payment":         payment,
		"order":           order,
		"privateDataList": map[string]any{"privateData": entries},
	}, nil
}

func (s *sandboxSession) DoRefund(ctx context.Context, params map[string]any) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.takePrivateData()
	opts := entities.Options(params)
	txID := fmt.Sprint(params["transactionID"])

	g := s.gw
	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.byTxID[txID]
	if !ok {
		return map[string]any{
			"result": resultSection(entities.ResultCodeTokenNotFound, "ERROR", "Transaction not found"),
		}, nil
	}

	amount := toInt(mustGet(opts, "payment.amount"))
	paid := toInt(mustGet(p.params, "payment.amount"))
	if amount <= 0 || p.refunded+amount > paid {
		log.Printf("[payment][sandbox] doRefund rejected transaction_id=%s amount=%d refunded=%d paid=%d", txID, amount, p.refunded, paid)
		return map[string]any{
			"result": resultSection(entities.ResultCodeInternalError, "REFUSED", "Refund amount exceeds captured amount"),
		}, nil
	}
	p.refunded += amount
	log.Printf("[payment][sandbox] doRefund transaction_id=%s amount=%d", txID, amount)

	return map[string]any{
		"result":      resultSection(entities.ResultCodeApproved, "ACCEPTED", "Transaction approved"),
		"transaction": map[string]any{"id": strings.ReplaceAll(uuid.NewString(), "-", "")[:20]},
	}, nil
}

func resultSection(code, short, long string) map[string]any {
	return map[string]any{"code": code, "shortMessage": short, "longMessage": long}
}

func shortMessageFor(code string) string {
	switch code {
	case entities.ResultCodeApproved:
		return "ACCEPTED"
	case entities.ResultCodeCanceled:
		return "CANCELLED"
	case entities.ResultCodeDuplicate:
		return "REFUSED"
	case entities.ResultCodeInProgress:
		return "INPROGRESS"
	default:
		return "ERROR"
	}
}

func mustGet(o entities.Options, path string) any {
	v, _ := o.Get(path)
	return v
}

func toInt(v any) int {
	switch t := v.(type) {
	case int:
		return t
	case int64:
		return int(t)
	case float64:
		return int(t)
	default:
		return 0
	}
}

// IsMockEnabled reports whether the sandbox gateway is forced by environment.
func IsMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "WEBPAY_GATEWAY_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
