package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"webpay_gateway/internal/config"
	"webpay_gateway/internal/domain/entities"
	mock_interfaces "webpay_gateway/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newNotificationFixture(t *testing.T, cfg config.GatewayConfig) (*NotificationUseCase, *mock_interfaces.MockIGatewaySDK, *EventDispatcher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	sdk := mock_interfaces.NewMockIGatewaySDK(ctrl)
	events := NewEventDispatcher()
	gateway := NewGatewayClient(factoryOf(sdk), events, cfg)
	return NewNotificationUseCase(gateway, events, cfg), sdk, events
}

func TestNotificationUseCase_HandleAsyncNotification(t *testing.T) {
	t.Run("acknowledges and emits on-notification", func(t *testing.T) {
		uc, sdk, events := newNotificationFixture(t, testGatewayConfig)
		var got *entities.Notification
		events.Subscribe(entities.NotificationOnNotify, func(_ context.Context, n *entities.Notification) { got = n })

		sdk.EXPECT().GetWebPaymentDetails(gomock.Any(), map[string]any{"token": "tok-1"}).Return(approvedDetails("tok-1", "X"), nil)

		ack, err := uc.HandleAsyncNotification(context.Background(), "tok-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if ack != Acknowledgement {
			t.Fatalf("ack = %q, want OK", ack)
		}
		if got == nil || !got.IsPaymentSuccessful() {
			t.Fatalf("on-notification not dispatched with the verified result")
		}
	})

	t.Run("refused payment is still acknowledged", func(t *testing.T) {
		uc, sdk, _ := newNotificationFixture(t, testGatewayConfig)
		sdk.EXPECT().GetWebPaymentDetails(gomock.Any(), gomock.Any()).Return(map[string]any{
			"result": map[string]any{"code": "01100"},
		}, nil)

		ack, err := uc.HandleAsyncNotification(context.Background(), "tok-1")
		if err != nil || ack != Acknowledgement {
			t.Fatalf("ack=%q err=%v, want OK and nil", ack, err)
		}
	})

	t.Run("listener response does not change the acknowledgement", func(t *testing.T) {
		uc, sdk, events := newNotificationFixture(t, testGatewayConfig)
		events.Subscribe(entities.NotificationOnNotify, func(_ context.Context, n *entities.Notification) {
			_ = n.SetResponse(entities.HTMLResponse("ignored"))
		})
		sdk.EXPECT().GetWebPaymentDetails(gomock.Any(), gomock.Any()).Return(approvedDetails("tok-1", "X"), nil)

		ack, err := uc.HandleAsyncNotification(context.Background(), "tok-1")
		if err != nil || ack != Acknowledgement {
			t.Fatalf("ack=%q err=%v, want OK and nil", ack, err)
		}
	})

	t.Run("verification failure is signalled by default", func(t *testing.T) {
		uc, sdk, events := newNotificationFixture(t, testGatewayConfig)
		called := false
		events.Subscribe(entities.NotificationOnNotify, func(context.Context, *entities.Notification) { called = true })
		sdk.EXPECT().GetWebPaymentDetails(gomock.Any(), gomock.Any()).Return(nil, errors.New("down"))

		ack, err := uc.HandleAsyncNotification(context.Background(), "tok-1")
		if !errors.Is(err, ErrGatewayTransport) {
			t.Fatalf("expected ErrGatewayTransport, got %v", err)
		}
		if ack != "" || called {
			t.Fatalf("no acknowledgement or event expected on failure")
		}
	})

	t.Run("ack-always policy hides verification failures", func(t *testing.T) {
		cfg := testGatewayConfig
		cfg.AckPolicy = config.AckPolicyAlways
		uc, sdk, _ := newNotificationFixture(t, cfg)
		sdk.EXPECT().GetWebPaymentDetails(gomock.Any(), gomock.Any()).Return(map[string]any{
			"result": map[string]any{"code": entities.ResultCodeTokenNotFound},
		}, nil)

		ack, err := uc.HandleAsyncNotification(context.Background(), "unknown")
		if err != nil || ack != Acknowledgement {
			t.Fatalf("ack=%q err=%v, want OK and nil", ack, err)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		uc, _, _ := newNotificationFixture(t, testGatewayConfig)
		if _, err := uc.HandleAsyncNotification(context.Background(), ""); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("no gateway", func(t *testing.T) {
		uc := NewNotificationUseCase(nil, nil, testGatewayConfig)
		if _, err := uc.HandleAsyncNotification(context.Background(), "tok-1"); !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})
}

func TestNotificationUseCase_HandleBrowserReturn(t *testing.T) {
	t.Run("successful payment redirects to confirmation", func(t *testing.T) {
		uc, sdk, _ := newNotificationFixture(t, testGatewayConfig)
		sdk.EXPECT().GetWebPaymentDetails(gomock.Any(), gomock.Any()).Return(approvedDetails("tok-1", "X"), nil)

		out, err := uc.HandleBrowserReturn(context.Background(), "tok-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if out.Response != nil || out.RedirectURL != testGatewayConfig.ConfirmationURL {
			t.Fatalf("redirect = %q, want confirmation url", out.RedirectURL)
		}
		if !out.Result.IsSuccessful() {
			t.Fatalf("result should be carried along")
		}
	})

	t.Run("canceled payment redirects to error", func(t *testing.T) {
		uc, sdk, events := newNotificationFixture(t, testGatewayConfig)
		var canceled bool
		events.Subscribe(entities.NotificationOnBackToShop, func(_ context.Context, n *entities.Notification) {
			canceled = n.IsPaymentCanceledByUser()
		})
		sdk.EXPECT().GetWebPaymentDetails(gomock.Any(), gomock.Any()).Return(map[string]any{
			"result": map[string]any{"code": entities.ResultCodeCanceled},
		}, nil)

		out, err := uc.HandleBrowserReturn(context.Background(), "tok-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if out.RedirectURL != testGatewayConfig.ErrorURL {
			t.Fatalf("redirect = %q, want error url", out.RedirectURL)
		}
		if !canceled {
			t.Fatalf("listener should see the canceled result")
		}
	})

	t.Run("listener response overrides the redirect", func(t *testing.T) {
		uc, sdk, events := newNotificationFixture(t, testGatewayConfig)
		second := false
		events.Subscribe(entities.NotificationOnBackToShop, func(_ context.Context, n *entities.Notification) {
			_ = n.SetResponse(entities.HTMLResponse("<h1>Thanks</h1>"))
		})
		events.Subscribe(entities.NotificationOnBackToShop, func(context.Context, *entities.Notification) { second = true })
		sdk.EXPECT().GetWebPaymentDetails(gomock.Any(), gomock.Any()).Return(approvedDetails("tok-1", "X"), nil)

		out, err := uc.HandleBrowserReturn(context.Background(), "tok-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if out.Response == nil || out.Response.Status != http.StatusOK || string(out.Response.Body) != "<h1>Thanks</h1>" {
			t.Fatalf("expected listener response, got %+v", out)
		}
		if out.RedirectURL != "" {
			t.Fatalf("no redirect expected when a response is attached")
		}
		if second {
			t.Fatalf("listeners after the responding one must be skipped")
		}
	})

	t.Run("verification failure redirects to error", func(t *testing.T) {
		uc, sdk, _ := newNotificationFixture(t, testGatewayConfig)
		sdk.EXPECT().GetWebPaymentDetails(gomock.Any(), gomock.Any()).Return(nil, errors.New("down"))

		out, err := uc.HandleBrowserReturn(context.Background(), "tok-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if out.RedirectURL != testGatewayConfig.ErrorURL {
			t.Fatalf("redirect = %q, want error url", out.RedirectURL)
		}
	})
}
