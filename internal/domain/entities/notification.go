package entities

import (
	"errors"
	"net/http"
)

// NotificationKind identifies a payment lifecycle event.
type NotificationKind string

const (
	NotificationPreInitiate  NotificationKind = "payline.pre_web_transaction_initiate"
	NotificationPostInitiate NotificationKind = "payline.post_web_transaction_initiate"
	NotificationVerify       NotificationKind = "payline.web_transaction_verify"
	NotificationOnNotify     NotificationKind = "payline.on_notification"
	NotificationOnBackToShop NotificationKind = "payline.on_back_to_shop"
)

var ErrResponseNotAllowed = errors.New("notification kind does not accept a response")

// AcceptsResponse reports whether listeners may attach a response to this kind.
func (k NotificationKind) AcceptsResponse() bool {
	return k == NotificationOnNotify || k == NotificationOnBackToShop
}

// Response is a ready-to-send HTTP answer a listener can attach to a
// callback notification (e.g. a rendered "thank you" page).
type Response struct {
	Status      int
	ContentType string
	Headers     map[string]string
	Body        []byte
}

// HTMLResponse is a 200 text/html response.
func HTMLResponse(body string) *Response {
	return &Response{Status: http.StatusOK, ContentType: "text/html; charset=utf-8", Body: []byte(body)}
}

// Notification is the envelope handed to listeners.
//
// Transaction is set for NotificationPreInitiate, Result for every other kind.
type Notification struct {
	Kind        NotificationKind
	Transaction *TransactionRequest
	Result      GatewayResult

	response *Response
}

func NewTransactionNotification(kind NotificationKind, tx *TransactionRequest) *Notification {
	return &Notification{Kind: kind, Transaction: tx}
}

func NewResultNotification(kind NotificationKind, result GatewayResult) *Notification {
	return &Notification{Kind: kind, Result: result}
}

// SetResponse attaches a response overriding the default handling.
func (n *Notification) SetResponse(resp *Response) error {
	if !n.Kind.AcceptsResponse() {
		return ErrResponseNotAllowed
	}
	n.response = resp
	return nil
}

func (n *Notification) Response() *Response { return n.response }

func (n *Notification) HasResponse() bool { return n.response != nil }

func (n *Notification) IsPaymentSuccessful() bool     { return n.Result.IsSuccessful() }
func (n *Notification) IsPaymentCanceledByUser() bool { return n.Result.IsCanceled() }
func (n *Notification) IsPaymentDuplicate() bool      { return n.Result.IsDuplicate() }
