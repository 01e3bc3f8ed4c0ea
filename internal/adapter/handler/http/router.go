package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/valdes557/digitalmarket/internal/adapter/config"
	"github.com/valdes557/digitalmarket/internal/core/domain"
	"github.com/valdes557/digitalmarket/internal/core/port"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	limiter RateLimiter,
	userHandler *UserHandler,
	orderHandler *OrderHandler,
	paymentHandler *PaymentHandler,
	downloadHandler *DownloadHandler,
	withdrawalHandler *WithdrawalHandler,
	logger *zap.Logger) (*Router, error) {

	router := gin.New()
	h := NewHandler(logger)

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		user := api.Group("/user")
		{
			user.POST("/register", userHandler.RegisterUser)
			user.POST("/login", userHandler.LoginUser)
		}

		payments := api.Group("/payments")
		{
			// gateway callback, no session
			payments.POST("/webhook", paymentHandler.Webhook)
			payments.GET("/verify/:transaction_id", paymentHandler.Verify)

			authed := payments.Group("")
			{
				authed.Use(authCheck(tokenService, h))
				authed.POST("/initialize", orderHandler.Checkout)
				authed.GET("/status/:order_number", paymentHandler.Status)
			}
		}

		orders := api.Group("/orders")
		{
			orders.Use(authCheck(tokenService, h))
			orders.GET("", orderHandler.ListOrdersByUser)
		}

		downloads := api.Group("/downloads")
		{
			// capability token is the only credential on redemption
			downloads.GET("/file/:token",
				rateLimit(limiter, "download", h), downloadHandler.Redeem)

			authed := downloads.Group("")
			{
				authed.Use(authCheck(tokenService, h))
				authed.POST("/generate", downloadHandler.Generate)
				authed.GET("/history", downloadHandler.History)
			}
		}

		vendor := api.Group("/vendor")
		{
			vendor.Use(authCheck(tokenService, h))
			vendor.Use(roleCheck(h, domain.UserRoleVendor, domain.UserRoleAdmin))
			vendor.GET("/balance", withdrawalHandler.Balance)
			vendor.GET("/withdrawals", withdrawalHandler.ListByVendor)
			vendor.POST("/withdrawals", withdrawalHandler.Request)
		}

		admin := api.Group("/admin")
		{
			admin.Use(authCheck(tokenService, h))
			admin.Use(roleCheck(h, domain.UserRoleAdmin))
			admin.GET("/withdrawals", withdrawalHandler.ListAll)
			admin.PUT("/withdrawals/:id", withdrawalHandler.Process)
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
