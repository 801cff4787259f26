package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"webpay_gateway/internal/config"
	"webpay_gateway/internal/domain/entities"
	"webpay_gateway/internal/usecase/interfaces"
)

var ErrGatewayNotConfigured = errors.New("payment gateway not configured")

// IGatewayClient is the web payment surface used by handlers and commands.

type IGatewayClient interface {
	Initiate(ctx context.Context, tx *entities.TransactionRequest) (entities.GatewayResult, error)
	Verify(ctx context.Context, token string) (entities.GatewayResult, error)
	Refund(ctx context.Context, req RefundRequest) (entities.GatewayResult, error)
}

// RefundRequest refunds a previously verified web payment.
// A nil Amount refunds the amount recorded by the gateway.
type RefundRequest struct {
	Token          string
	Comment        string
	SequenceNumber int
	Amount         *int
}

// GatewayClient maps transactions to the gateway request schema and wraps
// every response into a GatewayResult.
type GatewayClient struct {
	newSession interfaces.SDKFactory
	events     IEventDispatcher
	cfg        config.GatewayConfig
}

var _ IGatewayClient = (*GatewayClient)(nil)

func NewGatewayClient(newSession interfaces.SDKFactory, events IEventDispatcher, cfg config.GatewayConfig) *GatewayClient {
	if events == nil {
		events = noopDispatcher{}
	}
	return &GatewayClient{newSession: newSession, events: events, cfg: cfg}
}

func (c *GatewayClient) session() (interfaces.IGatewaySDK, error) {
	if c.newSession == nil {
		return nil, ErrGatewayNotConfigured
	}
	sdk := c.newSession()
	if sdk == nil {
		return nil, ErrGatewayNotConfigured
	}
	return sdk, nil
}

// BuildWebPaymentRequest maps tx to the doWebPayment parameters, extra
// options included.
func (c *GatewayClient) BuildWebPaymentRequest(tx *entities.TransactionRequest) entities.Options {
	payment := entities.Options{
		"amount":         tx.Amount,
		"currency":       tx.ResolvedCurrency(c.cfg.DefaultCurrency),
		"action":         int(tx.Action),
		"mode":           string(tx.Mode),
		"contractNumber": tx.ResolvedContractNumber(c.cfg.ContractNumber),
	}

	order := entities.Options{
		"ref":      tx.OrderRef,
		"amount":   tx.ResolvedOrderAmount(),
		"currency": tx.ResolvedOrderCurrency(c.cfg.DefaultCurrency),
		"date":     tx.OrderDate.Format(entities.OrderDateLayout),
	}
	if tx.OrderTaxes != 0 {
		order["taxes"] = tx.OrderTaxes
	}
	if tx.OrderCountry != "" {
		order["country"] = tx.OrderCountry
	}

	base := entities.Options{
		"payment":         payment,
		"order":           order,
		"returnURL":       c.cfg.ReturnURL,
		"cancelURL":       c.cfg.CancelURL,
		"notificationURL": c.cfg.NotificationURL,
	}

	return entities.DeepMerge(base, tx.ExtraOptions)
}

func (c *GatewayClient) Initiate(ctx context.Context, tx *entities.TransactionRequest) (entities.GatewayResult, error) {
	if err := tx.Validate(); err != nil {
		log.Printf("[payment][gateway] initiate invalid transaction err=%v", err)
		return entities.GatewayResult{}, validationError(err)
	}
	log.Printf("[payment][gateway] initiate start order_ref=%s amount=%d", tx.OrderRef, tx.Amount)

	sdk, err := c.session()
	if err != nil {
		log.Printf("[payment][gateway] initiate gateway not configured order_ref=%s", tx.OrderRef)
		return entities.GatewayResult{}, err
	}

	c.events.Dispatch(ctx, entities.NewTransactionNotification(entities.NotificationPreInitiate, tx))
	// listeners may have changed the request
	if err := tx.Validate(); err != nil {
		log.Printf("[payment][gateway] initiate invalid after pre-initiate order_ref=%s err=%v", tx.OrderRef, err)
		return entities.GatewayResult{}, validationError(err)
	}

	params := c.BuildWebPaymentRequest(tx)
	for key, value := range tx.PrivateData {
		sdk.AddPrivateData(map[string]string{"key": key, "value": value})
	}

	raw, err := sdk.DoWebPayment(ctx, params)
	if err != nil {
		log.Printf("[payment][gateway] doWebPayment failed order_ref=%s err=%v", tx.OrderRef, err)
		return entities.GatewayResult{}, transportError("doWebPayment", "", err)
	}
	if raw == nil {
		log.Printf("[payment][gateway] doWebPayment empty response order_ref=%s", tx.OrderRef)
		return entities.GatewayResult{}, transportError("doWebPayment", "", errors.New("empty response"))
	}

	result := entities.NewGatewayResult(raw)
	if token := result.Token(); token != "" {
		tx.Token = token
	}
	log.Printf("[payment][gateway] initiate done order_ref=%s code=%s token=%s", tx.OrderRef, result.Code(), result.Token())

	c.events.Dispatch(ctx, entities.NewResultNotification(entities.NotificationPostInitiate, result))

	return result, nil
}

func (c *GatewayClient) Verify(ctx context.Context, token string) (entities.GatewayResult, error) {
	token = strings.TrimSpace(token)
	log.Printf("[payment][gateway] verify start token=%s", token)

	result, err := c.fetchDetails(ctx, "getWebPaymentDetails", token)
	if err != nil {
		return entities.GatewayResult{}, err
	}
	log.Printf("[payment][gateway] verify done token=%s code=%s", token, result.Code())

	c.events.Dispatch(ctx, entities.NewResultNotification(entities.NotificationVerify, result))

	return result, nil
}

func (c *GatewayClient) Refund(ctx context.Context, req RefundRequest) (entities.GatewayResult, error) {
	token := strings.TrimSpace(req.Token)
	log.Printf("[payment][gateway] refund start token=%s sequence=%d", token, req.SequenceNumber)
	if req.Amount != nil && *req.Amount <= 0 {
		return entities.GatewayResult{}, validationError(errors.New("refund amount must be positive"))
	}

	details, err := c.fetchDetails(ctx, "doRefund", token)
	if err != nil {
		return entities.GatewayResult{}, err
	}

	sdk, err := c.session()
	if err != nil {
		return entities.GatewayResult{}, err
	}
	for key, value := range details.PrivateData() {
		sdk.AddPrivateData(map[string]string{"key": key, "value": value})
	}

	payment := entities.Options{}
	if v, ok := details.Get("payment"); ok {
		if section, isSection := v.(entities.Options); isSection {
			payment = section
		}
	}
	payment["action"] = int(entities.PaymentActionRefund)
	if req.Amount != nil {
		payment["amount"] = *req.Amount
	}

	params := map[string]any{
		"transactionID":  details.TransactionID(),
		"payment":        payment,
		"comment":        req.Comment,
		"sequenceNumber": req.SequenceNumber,
	}

	raw, err := sdk.DoRefund(ctx, params)
	if err != nil {
		log.Printf("[payment][gateway] doRefund failed token=%s transaction_id=%s err=%v", token, details.TransactionID(), err)
		return entities.GatewayResult{}, transportError("doRefund", token, err)
	}
	if raw == nil {
		return entities.GatewayResult{}, transportError("doRefund", token, errors.New("empty response"))
	}

	result := entities.NewGatewayResult(raw)
	log.Printf("[payment][gateway] refund done token=%s transaction_id=%s code=%s", token, details.TransactionID(), result.Code())
	return result, nil
}

// fetchDetails runs getWebPaymentDetails on its own session.
func (c *GatewayClient) fetchDetails(ctx context.Context, op, token string) (entities.GatewayResult, error) {
	if token == "" {
		log.Printf("[payment][gateway] %s missing token", op)
		return entities.GatewayResult{}, validationError(errors.New("token is required"))
	}

	sdk, err := c.session()
	if err != nil {
		log.Printf("[payment][gateway] %s gateway not configured token=%s", op, token)
		return entities.GatewayResult{}, err
	}

	raw, err := sdk.GetWebPaymentDetails(ctx, map[string]any{"token": token})
	if err != nil {
		log.Printf("[payment][gateway] getWebPaymentDetails failed token=%s err=%v", token, err)
		return entities.GatewayResult{}, transportError(op, token, err)
	}
	if raw == nil {
		log.Printf("[payment][gateway] getWebPaymentDetails empty response token=%s", token)
		return entities.GatewayResult{}, transportError(op, token, errors.New("empty response"))
	}

	result := entities.NewGatewayResult(raw)
	if result.IsTokenNotFound() {
		log.Printf("[payment][gateway] %s unknown token=%s", op, token)
		return entities.GatewayResult{}, tokenNotFoundError(op, token)
	}
	return result, nil
}
