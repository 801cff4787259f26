package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	request "webpay_gateway/internal/adapter/http/dto/request"
	response "webpay_gateway/internal/adapter/http/dto/response"
	"webpay_gateway/internal/domain/entities"
	"webpay_gateway/internal/usecase"
	"webpay_gateway/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
	errInvalidRefundPayload  = pkg.NewDomainErrorSimple("INVALID_REFUND_INPUT", "Invalid refund payload", http.StatusBadRequest)
)

// PaymentHandler exposes web payment initiation, verification and refund.

type PaymentHandler struct {
	gateway usecase.IGatewayClient
	orders  usecase.IOrderPaymentUseCase
	now     func() time.Time
}

func NewPaymentHandler(gateway usecase.IGatewayClient, orders usecase.IOrderPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		gateway: gateway,
		orders:  orders,
		now:     time.Now,
	}
}

// InitiatePayment starts a web payment and returns the token and hosted page URL.
//
// @Summary  Initiate a web payment
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    payload body request.WebPaymentRequest true "Web payment"
// @Success  201 {object} response.GatewayResultResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  502 {object} pkg.HTTPError
// @Router   /payments [post]
func (h *PaymentHandler) InitiatePayment(c *gin.Context) {
	var payload request.WebPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] initiate invalid payload err=%v", err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	tx, err := payload.ToTransaction(h.now())
	if err != nil {
		log.Printf("[payment][handler] initiate invalid extra options err=%v", err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] initiate start order_ref=%s amount=%d", tx.OrderRef, tx.Amount)

	result, err := h.gateway.Initiate(c.Request.Context(), tx)
	if err != nil {
		log.Printf("[payment][handler] initiate failed order_ref=%s err=%v", tx.OrderRef, err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] initiate success order_ref=%s token=%s code=%s", tx.OrderRef, tx.Token, result.Code())

	c.JSON(http.StatusCreated, response.FromGatewayResult(result))
}

// GetPayment verifies a payment by token.
//
// @Summary  Verify a web payment
// @Tags     payments
// @Produce  json
// @Param    token path string true "Payment token"
// @Success  200 {object} response.GatewayResultResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /payments/{token} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	token := c.Param("token")
	log.Printf("[payment][handler] verify start token=%s", token)

	result, err := h.gateway.Verify(c.Request.Context(), token)
	if err != nil {
		log.Printf("[payment][handler] verify failed token=%s err=%v", token, err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGatewayResult(result))
}

// RefundPayment refunds a payment, fully or partially.
//
// @Summary  Refund a web payment
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    token   path string                true  "Payment token"
// @Param    payload body request.RefundRequest false "Refund"
// @Success  200 {object} response.GatewayResultResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /payments/{token}/refund [post]
func (h *PaymentHandler) RefundPayment(c *gin.Context) {
	token := c.Param("token")

	var payload request.RefundRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			log.Printf("[payment][handler] refund invalid payload token=%s err=%v", token, err)
			c.JSON(errInvalidRefundPayload.HTTPStatus, errInvalidRefundPayload.ToHTTPError())
			return
		}
	}
	log.Printf("[payment][handler] refund start token=%s sequence=%d", token, payload.SequenceNumber)

	result, err := h.gateway.Refund(c.Request.Context(), usecase.RefundRequest{
		Token:          token,
		Comment:        payload.Comment,
		SequenceNumber: payload.SequenceNumber,
		Amount:         payload.Amount,
	})
	if err != nil {
		log.Printf("[payment][handler] refund failed token=%s err=%v", token, err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] refund success token=%s code=%s", token, result.Code())

	c.JSON(http.StatusOK, response.FromGatewayResult(result))
}

// GetOrderPayment returns what the shop recorded for an order from gateway notifications.
//
// @Summary  Order payment status
// @Tags     orders
// @Produce  json
// @Param    order_ref path string true "Order reference"
// @Success  200 {object} response.OrderPaymentResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /orders/{order_ref}/payment [get]
func (h *PaymentHandler) GetOrderPayment(c *gin.Context) {
	orderRef := c.Param("order_ref")
	if h.orders == nil {
		appErr := pkg.NewDomainErrorSimple("ORDERS_DISABLED", "Order store not configured", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	p, err := h.orders.GetByOrderRef(c.Request.Context(), orderRef)
	if err != nil {
		log.Printf("[payment][handler] get order payment failed order_ref=%s err=%v", orderRef, err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderPayment(p))
}

func mapGatewayError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation), errors.Is(err, entities.ErrInvalidTransactionRequest), errors.Is(err, usecase.ErrInvalidOrderRef):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTokenNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderPaymentNotFound):
		return pkg.NewDomainErrorSimple("ORDER_PAYMENT_NOT_FOUND", "Order payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrGatewayTransport):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider error", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
