package usecase

import (
	"context"
	"log"
	"strings"

	"webpay_gateway/internal/config"
	"webpay_gateway/internal/domain/entities"
)

// Acknowledgement is the body the gateway expects back from the async
// notification endpoint.
const Acknowledgement = "OK"

// BrowserReturn is the outcome of a payer coming back from the hosted page:
// either a listener supplied Response, or a redirect to RedirectURL.
type BrowserReturn struct {
	Response    *entities.Response
	RedirectURL string
	Result      entities.GatewayResult
}

// INotificationUseCase handles the two ways the gateway calls back the shop.

type INotificationUseCase interface {
	HandleAsyncNotification(ctx context.Context, token string) (string, error)
	HandleBrowserReturn(ctx context.Context, token string) (BrowserReturn, error)
}

type NotificationUseCase struct {
	gateway IGatewayClient
	events  IEventDispatcher
	cfg     config.GatewayConfig
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(gateway IGatewayClient, events IEventDispatcher, cfg config.GatewayConfig) *NotificationUseCase {
	if events == nil {
		events = noopDispatcher{}
	}
	if cfg.AckPolicy == "" {
		cfg.AckPolicy = config.AckPolicySignalFailure
	}
	return &NotificationUseCase{gateway: gateway, events: events, cfg: cfg}
}

// HandleAsyncNotification verifies the token and emits on-notification. The
// gateway only needs to know the callback was received, so the payment outcome
// never changes the answer.
func (u *NotificationUseCase) HandleAsyncNotification(ctx context.Context, token string) (string, error) {
	token = strings.TrimSpace(token)
	log.Printf("[payment][notification] async start token=%s", token)

	result, err := u.verify(ctx, token)
	if err != nil {
		if u.cfg.AckPolicy == config.AckPolicyAlways {
			log.Printf("[payment][notification] async verify failed, acknowledging anyway token=%s err=%v", token, err)
			return Acknowledgement, nil
		}
		log.Printf("[payment][notification] async verify failed token=%s err=%v", token, err)
		return "", err
	}

	u.events.Dispatch(ctx, entities.NewResultNotification(entities.NotificationOnNotify, result))
	log.Printf("[payment][notification] async acknowledged token=%s code=%s", token, result.Code())

	return Acknowledgement, nil
}

// HandleBrowserReturn verifies the token and emits on-back-to-shop. A response
// attached by a listener wins; otherwise the payer is redirected to the
// confirmation or error URL. Verification failures end on the error URL.
func (u *NotificationUseCase) HandleBrowserReturn(ctx context.Context, token string) (BrowserReturn, error) {
	token = strings.TrimSpace(token)
	log.Printf("[payment][notification] back-to-shop start token=%s", token)

	result, err := u.verify(ctx, token)
	if err != nil {
		log.Printf("[payment][notification] back-to-shop verify failed token=%s err=%v", token, err)
		return BrowserReturn{RedirectURL: u.cfg.ErrorURL}, nil
	}

	n := entities.NewResultNotification(entities.NotificationOnBackToShop, result)
	u.events.Dispatch(ctx, n)

	if n.HasResponse() {
		log.Printf("[payment][notification] back-to-shop listener response token=%s status=%d", token, n.Response().Status)
		return BrowserReturn{Response: n.Response(), Result: result}, nil
	}

	target := u.cfg.ErrorURL
	if result.IsSuccessful() {
		target = u.cfg.ConfirmationURL
	}
	log.Printf("[payment][notification] back-to-shop redirect token=%s code=%s target=%s", token, result.Code(), target)

	return BrowserReturn{RedirectURL: target, Result: result}, nil
}

func (u *NotificationUseCase) verify(ctx context.Context, token string) (entities.GatewayResult, error) {
	if u.gateway == nil {
		return entities.GatewayResult{}, ErrGatewayNotConfigured
	}
	return u.gateway.Verify(ctx, token)
}
