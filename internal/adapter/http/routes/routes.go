package routes

import (
	"fmt"
	"log"
	"strconv"

	_ "webpay_gateway/docs" // registers the swagger spec
	"webpay_gateway/internal/adapter/http/handlers"
	"webpay_gateway/internal/bootstrap"
	"webpay_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter builds the gin engine with every route of the service.
func NewRouter(app *bootstrap.App) *gin.Engine {
	if app.Config.Server.Mode != "" {
		gin.SetMode(app.Config.Server.Mode)
	}
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	var orders usecase.IOrderPaymentUseCase
	if app.Orders != nil {
		orders = app.Orders
	}
	paymentHandler := handlers.NewPaymentHandler(app.Gateway, orders)
	notificationHandler := handlers.NewNotificationHandler(app.Notifications, app.ProviderTokenParams...).
		WithTopic(handlers.CallbackTopic{Params: app.ProviderTopicParams, Accept: app.ProviderTopic})

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler)

	// The gateway is configured with absolute callback URLs outside the API version.
	addCallbackRoutes(router, notificationHandler)

	return router
}

// Run will start the server
func Run(app *bootstrap.App) error {
	router := NewRouter(app)
	port := app.Config.Server.Port
	log.Printf("[payment][server] listening port=%d", port)

	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
