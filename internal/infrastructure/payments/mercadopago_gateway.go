package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"strconv"
	"strings"

	"webpay_gateway/internal/domain/entities"
	"webpay_gateway/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/mercadopago/sdk-go/pkg/refund"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing mercado pago access token")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// Mercado Pago result code for a refused payment (bank refusal family).
const resultCodeRefused = "01100"

var numericToAlpha = map[int]string{
	32:  "ARS",
	124: "CAD",
	152: "CLP",
	170: "COP",
	484: "MXN",
	604: "PEN",
	756: "CHF",
	826: "GBP",
	840: "USD",
	858: "UYU",
	978: "EUR",
	986: "BRL",
}

// MercadoPagoGateway runs web payments through Mercado Pago Checkout Pro.
//
// Mapping to the web payment schema:
//   - doWebPayment creates a checkout preference; token is the preference id and
//     redirectURL its init point. order.ref becomes the external reference and
//     private data travels as preference metadata.
//   - getWebPaymentDetails takes the Mercado Pago payment id as token.
//   - doRefund refunds transactionID (the payment id), partially when
//     payment.amount is set.
type MercadoPagoGateway struct {
	preferences preference.Client
	payments    payment.Client
	refunds     refund.Client
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if strings.TrimSpace(accessToken) == "" {
		log.Printf("[payment][mercadopago] missing access token")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][mercadopago] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][mercadopago] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		preferences: preference.NewClient(cfg),
		payments:    payment.NewClient(cfg),
		refunds:     refund.NewClient(cfg),
	}, nil
}

// NewSession implements interfaces.SDKFactory.
func (g *MercadoPagoGateway) NewSession() interfaces.IGatewaySDK {
	return &mercadoPagoSession{gw: g}
}

type mercadoPagoSession struct {
	gw          *MercadoPagoGateway
	privateData []map[string]string
}

func (s *mercadoPagoSession) AddPrivateData(entry map[string]string) {
	s.privateData = append(s.privateData, map[string]string{"key": entry["key"], "value": entry["value"]})
}

func (s *mercadoPagoSession) DoWebPayment(ctx context.Context, params map[string]any) (map[string]any, error) {
	if s.gw == nil || s.gw.preferences == nil {
		return nil, ErrMercadoPagoGatewayNotConfigured
	}
	opts := entities.Options(params)

	orderRef := optString(opts, "order.ref")
	amount := toInt(mustGet(opts, "payment.amount"))
	currency := toInt(mustGet(opts, "payment.currency"))
	currencyID, ok := numericToAlpha[currency]
	if !ok {
		return nil, fmt.Errorf("mercadopago: unsupported currency %d", currency)
	}

	metadata := map[string]any{}
	for _, e := range s.privateData {
		metadata[e["key"]] = e["value"]
	}
	s.privateData = nil

	req := preference.Request{
		ExternalReference: orderRef,
		NotificationURL:   optString(opts, "notificationURL"),
		BackURLs: &preference.BackURLsRequest{
			Success: optString(opts, "returnURL"),
			Pending: optString(opts, "returnURL"),
			Failure: optString(opts, "cancelURL"),
		},
		Items: []preference.ItemRequest{
			{
				ID:         orderRef,
				Title:      "Order " + orderRef,
				Quantity:   1,
				UnitPrice:  float64(amount) / 100,
				CurrencyID: currencyID,
			},
		},
		Metadata: metadata,
	}

	log.Printf("[payment][mercadopago] create preference start order_ref=%s amount=%d currency=%s", orderRef, amount, currencyID)
	resp, err := s.gw.preferences.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][mercadopago] create preference failed order_ref=%s err=%v", orderRef, err)
		return nil, err
	}
	log.Printf("[payment][mercadopago] create preference success order_ref=%s preference_id=%s", orderRef, resp.ID)

	return map[string]any{
		"result":      resultSection(entities.ResultCodeApproved, "ACCEPTED", "Preference created"),
		"token":       resp.ID,
		"redirectURL": resp.InitPoint,
	}, nil
}

func (s *mercadoPagoSession) GetWebPaymentDetails(ctx context.Context, params map[string]any) (map[string]any, error) {
	if s.gw == nil || s.gw.payments == nil {
		return nil, ErrMercadoPagoGatewayNotConfigured
	}
	token := strings.TrimSpace(fmt.Sprint(params["token"]))
	id, err := strconv.Atoi(token)
	if err != nil {
		log.Printf("[payment][mercadopago] token is not a payment id token=%s", token)
		return notFoundResponse(), nil
	}

	resp, err := s.gw.payments.Get(ctx, id)
	if err != nil {
		if isMercadoPagoNotFound(err) {
			log.Printf("[payment][mercadopago] payment not found payment_id=%d", id)
			return notFoundResponse(), nil
		}
		log.Printf("[payment][mercadopago] get payment failed payment_id=%d err=%v", id, err)
		return nil, err
	}
	log.Printf("[payment][mercadopago] get payment success payment_id=%d status=%s", resp.ID, resp.Status)

	keys := make([]string, 0, len(resp.Metadata))
	for k := range resp.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	entries := make([]any, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, map[string]any{"key": k, "value": fmt.Sprint(resp.Metadata[k])})
	}

	return map[string]any{
		"result": resultSection(codeForPaymentStatus(resp.Status), resp.Status, resp.StatusDetail),
		"token":  token,
		"transaction": map[string]any{
			"id": strconv.Itoa(resp.ID),
		},
		"payment": map[string]any{
			"amount":   int(math.Round(resp.TransactionAmount * 100)),
			"currency": alphaToNumeric(resp.CurrencyID),
			"action":   int(entities.PaymentActionAuthorizationCapture),
			"mode":     string(entities.PaymentModeCash),
		},
		"order":           map[string]any{"ref": resp.ExternalReference},
		"privateDataList": map[string]any{"privateData": entries},
	}, nil
}

func (s *mercadoPagoSession) DoRefund(ctx context.Context, params map[string]any) (map[string]any, error) {
	if s.gw == nil || s.gw.refunds == nil {
		return nil, ErrMercadoPagoGatewayNotConfigured
	}
	s.privateData = nil
	opts := entities.Options(params)

	paymentID, err := strconv.Atoi(strings.TrimSpace(fmt.Sprint(params["transactionID"])))
	if err != nil {
		return nil, fmt.Errorf("mercadopago: invalid transaction id: %w", err)
	}
	amount := toInt(mustGet(opts, "payment.amount"))

	var resp *refund.Response
	if amount > 0 {
		log.Printf("[payment][mercadopago] partial refund start payment_id=%d amount=%d", paymentID, amount)
		resp, err = s.gw.refunds.CreatePartialRefund(ctx, paymentID, float64(amount)/100)
	} else {
		log.Printf("[payment][mercadopago] refund start payment_id=%d", paymentID)
		resp, err = s.gw.refunds.Create(ctx, paymentID)
	}
	if err != nil {
		log.Printf("[payment][mercadopago] refund failed payment_id=%d err=%v", paymentID, err)
		return nil, err
	}
	log.Printf("[payment][mercadopago] refund success payment_id=%d refund_id=%d status=%s", paymentID, resp.ID, resp.Status)

	code := entities.ResultCodeApproved
	if resp.Status != "" && resp.Status != "approved" {
		code = entities.ResultCodeInProgress
	}
	return map[string]any{
		"result":      resultSection(code, resp.Status, ""),
		"transaction": map[string]any{"id": strconv.Itoa(resp.ID)},
	}, nil
}

func codeForPaymentStatus(status string) string {
	switch status {
	case "approved":
		return entities.ResultCodeApproved
	case "cancelled":
		return entities.ResultCodeCanceled
	case "rejected":
		return resultCodeRefused
	default:
		return entities.ResultCodeInProgress
	}
}

func alphaToNumeric(alpha string) int {
	for n, a := range numericToAlpha {
		if strings.EqualFold(a, alpha) {
			return n
		}
	}
	return 0
}

func notFoundResponse() map[string]any {
	return map[string]any{
		"result": resultSection(entities.ResultCodeTokenNotFound, "ERROR", "No transaction found for this token"),
	}
}

func optString(o entities.Options, path string) string {
	v, ok := o.Get(path)
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func isMercadoPagoNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"status\":404") || strings.Contains(msg, "not_found") || strings.Contains(msg, "not found")
}
