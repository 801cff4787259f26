package payments

import (
	"context"
	"errors"
	"testing"

	"webpay_gateway/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMercadoPagoGateway_RequiresToken(t *testing.T) {
	_, err := NewMercadoPagoGateway("  ")
	assert.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)
}

func TestMercadoPagoSession_NotConfigured(t *testing.T) {
	s := (&MercadoPagoGateway{}).NewSession()
	ctx := context.Background()

	_, err := s.DoWebPayment(ctx, map[string]any{})
	assert.ErrorIs(t, err, ErrMercadoPagoGatewayNotConfigured)
	_, err = s.GetWebPaymentDetails(ctx, map[string]any{"token": "1"})
	assert.ErrorIs(t, err, ErrMercadoPagoGatewayNotConfigured)
	_, err = s.DoRefund(ctx, map[string]any{"transactionID": "1"})
	assert.ErrorIs(t, err, ErrMercadoPagoGatewayNotConfigured)
}

func TestMercadoPagoSession_NonNumericTokenIsNotFound(t *testing.T) {
	gw, err := NewMercadoPagoGateway("TEST-0000000000000000-000000-00000000000000000000000000000000-000000000")
	require.NoError(t, err)

	raw, err := gw.NewSession().GetWebPaymentDetails(context.Background(), map[string]any{"token": "pref-123"})
	require.NoError(t, err)
	assert.True(t, entities.NewGatewayResult(raw).IsTokenNotFound())
}

func TestMercadoPagoSession_UnsupportedCurrency(t *testing.T) {
	gw, err := NewMercadoPagoGateway("TEST-token")
	require.NoError(t, err)

	_, err = gw.NewSession().DoWebPayment(context.Background(), map[string]any{
		"payment": map[string]any{"amount": 100, "currency": 1},
		"order":   map[string]any{"ref": "ORD-1"},
	})
	assert.ErrorContains(t, err, "unsupported currency")
}

func TestCodeForPaymentStatus(t *testing.T) {
	cases := map[string]string{
		"approved":     entities.ResultCodeApproved,
		"cancelled":    entities.ResultCodeCanceled,
		"rejected":     resultCodeRefused,
		"pending":      entities.ResultCodeInProgress,
		"in_process":   entities.ResultCodeInProgress,
		"charged_back": entities.ResultCodeInProgress,
	}
	for status, want := range cases {
		assert.Equal(t, want, codeForPaymentStatus(status), status)
	}
}

func TestCurrencyMapping(t *testing.T) {
	assert.Equal(t, "EUR", numericToAlpha[entities.CurrencyEUR])
	assert.Equal(t, entities.CurrencyEUR, alphaToNumeric("eur"))
	assert.Equal(t, 986, alphaToNumeric("BRL"))
	assert.Equal(t, 0, alphaToNumeric("XXX"))
}

func TestIsMercadoPagoNotFound(t *testing.T) {
	assert.False(t, isMercadoPagoNotFound(nil))
	assert.True(t, isMercadoPagoNotFound(errors.New(`{"message":"Payment not found","status":404}`)))
	assert.True(t, isMercadoPagoNotFound(errors.New("resource not_found")))
	assert.False(t, isMercadoPagoNotFound(errors.New("timeout")))
}
