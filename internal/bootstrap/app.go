package bootstrap

import (
	"context"
	"fmt"
	"log"
	"strings"

	"webpay_gateway/internal/adapter/persistence/repository"
	"webpay_gateway/internal/config"
	"webpay_gateway/internal/domain/entities"
	"webpay_gateway/internal/infrastructure/database"
	"webpay_gateway/internal/infrastructure/payments"
	"webpay_gateway/internal/usecase"
	"webpay_gateway/internal/usecase/interfaces"
)

// App holds the wired use cases shared by the HTTP server and the CLI.
type App struct {
	Config        config.Config
	Events        *usecase.EventDispatcher
	Gateway       *usecase.GatewayClient
	Notifications *usecase.NotificationUseCase
	Orders        *usecase.OrderPaymentUseCase

	// ProviderTokenParams are extra callback parameter names carrying the token.
	ProviderTokenParams []string
	// ProviderTopicParams tag provider notifications; only ProviderTopic is verified.
	ProviderTopicParams []string
	ProviderTopic       string
}

// providerCallbacks describes how a provider calls back the shop.
type providerCallbacks struct {
	tokenParams []string
	topicParams []string
	topic       string
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	newSession, callbacks, err := newSDKFactory(cfg.Provider)
	if err != nil {
		return nil, err
	}

	events := usecase.NewEventDispatcher()
	gateway := usecase.NewGatewayClient(newSession, events, cfg.Gateway)
	app := &App{
		Config:              cfg,
		Events:              events,
		Gateway:             gateway,
		Notifications:       usecase.NewNotificationUseCase(gateway, events, cfg.Gateway),
		ProviderTokenParams: callbacks.tokenParams,
		ProviderTopicParams: callbacks.topicParams,
		ProviderTopic:       callbacks.topic,
	}

	if cfg.Orders.Enabled {
		ddb, err := database.NewDynamoDBClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("order store: %w", err)
		}
		app.Orders = usecase.NewOrderPaymentUseCase(repository.NewOrderPaymentDynamoRepository(ddb, cfg.Orders.Table))
		events.Subscribe(entities.NotificationOnNotify, app.Orders.Listener())
		log.Printf("[payment][bootstrap] order store enabled table=%s", cfg.Orders.Table)
	}

	return app, nil
}

func newSDKFactory(cfg config.ProviderConfig) (interfaces.SDKFactory, providerCallbacks, error) {
	name := strings.ToLower(cfg.Name)
	if payments.IsMockEnabled() {
		log.Printf("[payment][bootstrap] mock mode enabled, using sandbox gateway")
		name = "sandbox"
	}

	switch name {
	case "mercadopago":
		gw, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
		if err != nil {
			return nil, providerCallbacks{}, err
		}
		// payment_id comes on the back URLs, data.id on webhooks and id on IPN.
		return gw.NewSession, providerCallbacks{
			tokenParams: []string{"payment_id", "data.id", "id"},
			topicParams: []string{"type", "topic"},
			topic:       "payment",
		}, nil
	default:
		return payments.NewSandboxGateway("").NewSession, providerCallbacks{}, nil
	}
}
