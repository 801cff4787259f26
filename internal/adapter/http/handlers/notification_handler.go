package handlers

import (
	"log"
	"net/http"
	"strings"

	"webpay_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
)

// Token parameter names, primary first. "token" is the legacy name.
const (
	TokenParam       = "paylinetoken"
	LegacyTokenParam = "token"
)

// NotificationHandler receives the gateway callbacks: the server-to-server
// notification and the payer's browser coming back to the shop.

type NotificationHandler struct {
	usecase     usecase.INotificationUseCase
	tokenParams []string
	topic       CallbackTopic
}

// CallbackTopic names the query parameters a provider uses to tag its
// notifications ("type", "topic") and the only value that carries a payment.
// Notifications tagged with any other value are acknowledged unverified.
type CallbackTopic struct {
	Params []string
	Accept string
}

// NewNotificationHandler reads the token from TokenParam, then LegacyTokenParam,
// then any extra names (e.g. a provider specific one).
func NewNotificationHandler(uc usecase.INotificationUseCase, extraTokenParams ...string) *NotificationHandler {
	params := append([]string{TokenParam, LegacyTokenParam}, extraTokenParams...)
	return &NotificationHandler{usecase: uc, tokenParams: params}
}

// WithTopic restricts async notifications to topic.Accept.
func (h *NotificationHandler) WithTopic(topic CallbackTopic) *NotificationHandler {
	h.topic = topic
	return h
}

// PaymentNotification is the gateway's asynchronous callback.
//
// @Summary  Gateway payment notification
// @Tags     callbacks
// @Produce  plain
// @Param    paylinetoken query string false "Payment token"
// @Param    token        query string false "Payment token (legacy)"
// @Success  200 {string} string "OK"
// @Failure  502 {object} pkg.HTTPError
// @Router   /payline/notification [get]
func (h *NotificationHandler) PaymentNotification(c *gin.Context) {
	if topic, ok := h.foreignTopic(c); ok {
		log.Printf("[payment][callback] notification ignored topic=%s", topic)
		c.String(http.StatusOK, usecase.Acknowledgement)
		return
	}

	token := h.token(c)
	ack, err := h.usecase.HandleAsyncNotification(c.Request.Context(), token)
	if err != nil {
		log.Printf("[payment][callback] notification not acknowledged token=%s err=%v", token, err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.String(http.StatusOK, ack)
}

// BackToShop is where the gateway sends the payer after the hosted page.
//
// @Summary  Payer return from the hosted payment page
// @Tags     callbacks
// @Param    paylinetoken query string false "Payment token"
// @Param    token        query string false "Payment token (legacy)"
// @Success  302
// @Router   /payline/back-to-shop [get]
func (h *NotificationHandler) BackToShop(c *gin.Context) {
	token := h.token(c)
	out, err := h.usecase.HandleBrowserReturn(c.Request.Context(), token)
	if err != nil {
		log.Printf("[payment][callback] back-to-shop failed token=%s err=%v", token, err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if resp := out.Response; resp != nil {
		for k, v := range resp.Headers {
			c.Header(k, v)
		}
		status := resp.Status
		if status == 0 {
			status = http.StatusOK
		}
		contentType := resp.ContentType
		if contentType == "" {
			contentType = "text/html; charset=utf-8"
		}
		c.Data(status, contentType, resp.Body)
		return
	}

	c.Redirect(http.StatusFound, out.RedirectURL)
}

// token returns the first non-empty token parameter, from the query string or
// the form body.
func (h *NotificationHandler) token(c *gin.Context) string {
	for _, name := range h.tokenParams {
		if v := strings.TrimSpace(c.Query(name)); v != "" {
			return v
		}
		if v := strings.TrimSpace(c.PostForm(name)); v != "" {
			return v
		}
	}
	return ""
}

// foreignTopic reports a tagged notification that does not concern a payment.
func (h *NotificationHandler) foreignTopic(c *gin.Context) (string, bool) {
	if h.topic.Accept == "" {
		return "", false
	}
	for _, name := range h.topic.Params {
		v := strings.TrimSpace(c.Query(name))
		if v == "" {
			continue
		}
		return v, !strings.EqualFold(v, h.topic.Accept)
	}
	return "", false
}
