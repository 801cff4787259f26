package interfaces

import "context"

// IGatewaySDK abstracts the web payment gateway client (SOAP/HTTP transport,
// signing and session handling live behind it).
//
// AddPrivateData is stateful: entries added on a session are sent with the
// next DoWebPayment/DoRefund call of that same session. Sessions must not be
// shared between requests, see SDKFactory.
type IGatewaySDK interface {
	DoWebPayment(ctx context.Context, params map[string]any) (map[string]any, error)
	GetWebPaymentDetails(ctx context.Context, params map[string]any) (map[string]any, error)
	DoRefund(ctx context.Context, params map[string]any) (map[string]any, error)
	AddPrivateData(entry map[string]string)
}

// SDKFactory opens a fresh gateway session for one operation.
type SDKFactory func() IGatewaySDK
