package request

import (
	"errors"
	"testing"
	"time"

	"webpay_gateway/internal/domain/entities"
)

func TestWebPaymentRequest_ToTransaction_Defaults(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	r := WebPaymentRequest{Amount: 1000, OrderRef: "ORD-1"}

	tx, err := r.ToTransaction(now)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if tx.OrderRef != "ORD-1" {
		t.Fatalf("order ref = %q, want ORD-1", tx.OrderRef)
	}
	if !tx.OrderDate.Equal(now) {
		t.Fatalf("order date = %v, want now", tx.OrderDate)
	}
	if tx.Action != entities.PaymentActionAuthorizationCapture || tx.Mode != entities.PaymentModeCash {
		t.Fatalf("unexpected defaults action=%d mode=%s", tx.Action, tx.Mode)
	}
}

func TestWebPaymentRequest_ToTransaction_Fields(t *testing.T) {
	date := time.Date(2024, 3, 24, 18, 30, 0, 0, time.UTC)
	r := WebPaymentRequest{
		Amount:         1000,
		Currency:       entities.CurrencyUSD,
		Action:         100,
		Mode:           "DIF",
		ContractNumber: "1234567",
		OrderRef:       " ORD-1 ",
		OrderTaxes:     200,
		OrderCountry:   " FR ",
		OrderDate:      &date,
		ExtraOptions:   map[string]any{"buyer": map[string]any{"firstName": "Ada"}},
		Options:        map[string]any{"buyer.email": "a@b.c", "[payment][differedActionDate]": "30/03/2024"},
		PrivateData:    map[string]string{"cart_id": "42"},
	}

	tx, err := r.ToTransaction(time.Now())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if tx.OrderRef != "ORD-1" || tx.OrderCountry != "FR" || tx.OrderTaxes != 200 {
		t.Fatalf("unexpected order fields %+v", tx)
	}
	if tx.Action != entities.PaymentActionAuthorization || tx.Mode != entities.PaymentModeDiffered {
		t.Fatalf("action=%d mode=%s", tx.Action, tx.Mode)
	}
	if !tx.OrderDate.Equal(date) {
		t.Fatalf("order date = %v", tx.OrderDate)
	}
	for path, want := range map[string]any{
		"buyer.firstName":            "Ada",
		"buyer.email":                "a@b.c",
		"payment.differedActionDate": "30/03/2024",
	} {
		if got, _ := tx.ExtraOptions.Get(path); got != want {
			t.Fatalf("%s = %v, want %v", path, got, want)
		}
	}
	if tx.PrivateData["cart_id"] != "42" {
		t.Fatalf("private data = %v", tx.PrivateData)
	}
	if _, ok := r.ExtraOptions["buyer"].(map[string]any)["email"]; ok {
		t.Fatalf("request extra options must not be mutated")
	}
}

func TestWebPaymentRequest_ToTransaction_InvalidOption(t *testing.T) {
	r := WebPaymentRequest{Amount: 1000, OrderRef: "ORD-1", Options: map[string]any{"[buyer": "x"}}
	if _, err := r.ToTransaction(time.Now()); !errors.Is(err, ErrInvalidExtraOption) {
		t.Fatalf("expected ErrInvalidExtraOption, got %v", err)
	}
}

func TestWebPaymentRequest_ToTransaction_BlankOrderRefFailsValidation(t *testing.T) {
	r := WebPaymentRequest{Amount: 1000, OrderRef: "   "}

	tx, err := r.ToTransaction(time.Now())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if tx.OrderRef != "" {
		t.Fatalf("order ref = %q, want empty", tx.OrderRef)
	}
	if err := tx.Validate(); err == nil {
		t.Fatalf("expected validation error for blank order ref")
	}
}
