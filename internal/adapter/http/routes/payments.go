package routes

import (
	"webpay_gateway/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
	PathOrders   = "/orders"
	PathCallback = "/payline"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.InitiatePayment)
		payments.GET("/:token", paymentHandler.GetPayment)
		payments.POST("/:token/refund", paymentHandler.RefundPayment)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("/:order_ref/payment", paymentHandler.GetOrderPayment)
	}
}

// addCallbackRoutes registers the URLs the gateway calls back. Both accept
// GET and POST since the token may come as query or form parameter.
func addCallbackRoutes(r gin.IRouter, notificationHandler *handlers.NotificationHandler) {
	callbacks := r.Group(PathCallback)
	{
		callbacks.GET("/notification", notificationHandler.PaymentNotification)
		callbacks.POST("/notification", notificationHandler.PaymentNotification)
		callbacks.GET("/back-to-shop", notificationHandler.BackToShop)
		callbacks.POST("/back-to-shop", notificationHandler.BackToShop)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
