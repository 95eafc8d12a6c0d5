package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/shopwave/storefront-api/internal/config"
	"github.com/shopwave/storefront-api/internal/events"
	"github.com/shopwave/storefront-api/internal/handler"
	"github.com/shopwave/storefront-api/internal/middleware"
	"github.com/shopwave/storefront-api/internal/payment"
	"github.com/shopwave/storefront-api/internal/pricing"
	"github.com/shopwave/storefront-api/internal/repository"
	"github.com/shopwave/storefront-api/internal/seed"
	"github.com/shopwave/storefront-api/internal/service"
	"github.com/shopwave/storefront-api/internal/session"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis is optional; without it carts and the product cache stay in
	// process memory, matching the demo's single-process scope.
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Error("connect to Redis", "error", err)
			os.Exit(1)
		}
		log.Info("connected to Redis")
	}

	// RabbitMQ is optional; without it order-placed events are not published.
	var amqpConn *amqp.Connection
	var publisher events.Publisher
	if cfg.RabbitMQ.URL != "" {
		amqpConn, err = amqp.Dial(cfg.RabbitMQ.URL)
		if err != nil {
			log.Error("connect to RabbitMQ", "error", err)
			os.Exit(1)
		}
		defer amqpConn.Close()

		amqpCh, err := amqpConn.Channel()
		if err != nil {
			log.Error("open RabbitMQ channel", "error", err)
			os.Exit(1)
		}
		defer amqpCh.Close()

		publisher, err = events.NewAMQPPublisher(amqpCh)
		if err != nil {
			log.Error("setup RabbitMQ publisher", "error", err)
			os.Exit(1)
		}
		log.Info("connected to RabbitMQ")
	}

	// Repositories, seeded with the demo fixtures.
	userRepo := repository.NewUserRepository()
	productRepo := repository.NewProductRepository(seed.Categories)
	orderRepo := repository.NewOrderRepository()
	if err := seed.Apply(ctx, userRepo, productRepo, orderRepo); err != nil {
		log.Error("seed fixtures", "error", err)
		os.Exit(1)
	}
	log.Info("seeded demo data")

	// Session-backed cart storage.
	var store session.Store
	if redisClient != nil {
		store = session.NewRedisStore(redisClient)
	} else {
		store = session.NewMemoryStore()
	}
	cartStore := session.NewCartStore(store)

	pricer := pricing.NewCalculator(cfg.Pricing)
	gateway := payment.NewSimulatedGateway(cfg.Simulate.PaymentConfirmDelay)

	// Services
	authSvc := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration, cfg.Simulate.AuthDelay)
	productSvc := service.NewProductService(productRepo, redisClient)
	cartSvc := service.NewCartService(cartStore, productRepo)
	checkoutSvc := service.NewCheckoutService(cartSvc, orderRepo, pricer, gateway, publisher, log)
	orderSvc := service.NewOrderService(orderRepo)
	reportSvc := service.NewReportService(userRepo, productRepo, orderRepo)

	// Handlers
	authH := handler.NewAuthHandler(authSvc)
	productH := handler.NewProductHandler(productSvc)
	cartH := handler.NewCartHandler(cartSvc, pricer)
	checkoutH := handler.NewCheckoutHandler(checkoutSvc, cartSvc, cartH)
	orderH := handler.NewOrderHandler(orderSvc)
	adminH := handler.NewAdminHandler(orderSvc, reportSvc)
	healthH := handler.NewHealthHandler(redisClient, amqpConn)

	// Router
	router := gin.Default()
	router.GET("/healthz", healthH.Healthz)
	router.GET("/readyz", healthH.Readyz)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		auth.POST("/register", authH.Register)
		auth.POST("/login", authH.Login)
		v1.GET("/me", middleware.AuthRequired(cfg.JWT.Secret), authH.Me)

		products := v1.Group("/products")
		products.GET("", productH.List)
		products.GET("/:id", productH.GetByID)
		v1.GET("/categories", productH.Categories)

		adminProducts := products.Group("", middleware.AuthRequired(cfg.JWT.Secret), middleware.AdminOnly())
		adminProducts.POST("", productH.Create)
		adminProducts.PUT("/:id", productH.Update)
		adminProducts.DELETE("/:id", productH.Delete)

		// Guests get a cart too: session key falls back to the guest
		// partition when no token is presented.
		cart := v1.Group("/cart", middleware.AuthOptional(cfg.JWT.Secret))
		cart.GET("", cartH.GetCart)
		cart.DELETE("", cartH.ClearCart)
		cart.POST("/items", cartH.AddItem)
		cart.PUT("/items/:id", cartH.UpdateItem)
		cart.DELETE("/items/:id", cartH.DeleteItem)

		checkout := v1.Group("/checkout", middleware.AuthRequired(cfg.JWT.Secret))
		checkout.GET("", checkoutH.GetState)
		checkout.POST("/shipping", checkoutH.SubmitShipping)
		checkout.POST("/payment", checkoutH.SubmitPayment)
		checkout.POST("/back", checkoutH.Back)
		checkout.POST("/order", checkoutH.PlaceOrder)

		orders := v1.Group("/orders", middleware.AuthRequired(cfg.JWT.Secret))
		orders.GET("", orderH.ListOrders)
		orders.GET("/:id", orderH.GetOrder)

		admin := v1.Group("/admin", middleware.AuthRequired(cfg.JWT.Secret), middleware.AdminOnly())
		admin.GET("/dashboard", adminH.Dashboard)
		admin.GET("/orders", adminH.ListOrders)
		admin.PATCH("/orders/:id/status", adminH.UpdateOrderStatus)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting HTTP server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "error", err)
	}

	cancel()
	log.Info("server stopped")
}
