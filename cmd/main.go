package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/OmarHosamCodes/noocommerce/internal/cart"
	"github.com/OmarHosamCodes/noocommerce/internal/catalog"
	"github.com/OmarHosamCodes/noocommerce/internal/events"
	"github.com/OmarHosamCodes/noocommerce/internal/handler"
	"github.com/OmarHosamCodes/noocommerce/internal/repository"
	"github.com/OmarHosamCodes/noocommerce/internal/service"
	"github.com/OmarHosamCodes/noocommerce/internal/session"
	"github.com/OmarHosamCodes/noocommerce/internal/woo"
	"github.com/OmarHosamCodes/noocommerce/pkg/config"
	"github.com/OmarHosamCodes/noocommerce/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger.Info("Service configuration",
		zap.String("port", cfg.Port),
		zap.String("woo_base_url", cfg.WooBaseURL),
		zap.String("redis_addr", cfg.RedisAddr),
		zap.String("kafka_brokers", cfg.KafkaBrokers),
		zap.String("shipping_flat_rate", cfg.ShippingFlatRate))

	// Initialize components
	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	dynamoClient, err := repository.NewDynamoDBClient(cfg)
	if err != nil {
		log.Fatal("Failed to create DynamoDB client:", err)
	}

	producer := events.NewProducer(cfg.KafkaBrokers, logger)
	defer producer.Close()

	wooClient := woo.NewClient(cfg.WooBaseURL, cfg.WooConsumerKey, cfg.WooConsumerSecret)
	variantLoader := catalog.NewLoader(wooClient, redisClient, cfg.CatalogCacheTTL, logger)
	cartAggregator := cart.NewAggregator(cart.NewRedisStorage(redisClient, cfg.CartTTL), logger)
	sessionStore := session.NewStore(redisClient, cfg.SessionTTL)
	orderRepo := repository.NewOrderRepository(dynamoClient, cfg.OrderTableName)

	storefront := service.NewStorefrontService(service.Deps{
		API:          wooClient,
		Catalog:      variantLoader,
		Carts:        cartAggregator,
		Orders:       orderRepo,
		Sessions:     sessionStore,
		Producer:     producer,
		ShippingRate: cfg.ShippingRate(),
		Currency:     cfg.Currency,
		Logger:       logger,
	})

	productHandler := handler.NewProductHandler(storefront, logger)
	cartHandler := handler.NewCartHandler(storefront, logger)
	checkoutHandler := handler.NewCheckoutHandler(storefront, logger)
	authHandler := handler.NewAuthHandler(storefront, logger)

	// Setup Gin Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))

	// Routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/products", productHandler.ListProducts)
		v1.GET("/products/:slug", productHandler.GetProduct)
		v1.GET("/variations/:id", productHandler.ListVariations)
		v1.POST("/variations/:id/resolve", productHandler.ResolveVariant)
		v1.GET("/reviews/:id", productHandler.ListReviews)
		v1.POST("/reviews/:id", productHandler.CreateReview)

		v1.GET("/cart", cartHandler.GetCart)
		v1.POST("/cart/items", cartHandler.AddItem)
		v1.PATCH("/cart/items/:id", cartHandler.UpdateItem)
		v1.DELETE("/cart/items/:id", cartHandler.RemoveItem)
		v1.DELETE("/cart", cartHandler.ClearCart)
		v1.GET("/cart/totals", cartHandler.Totals)

		v1.POST("/checkout", checkoutHandler.Checkout)

		v1.POST("/auth/login", authHandler.Login)
		v1.POST("/auth/register", authHandler.Register)
		v1.GET("/auth/validate", authHandler.Validate)
		v1.GET("/user/me", authHandler.Me)
		v1.GET("/user/orders", authHandler.Orders)
		v1.GET("/user/orders/:id", authHandler.Order)

		v1.GET("/health", func(c *gin.Context) {
			status := gin.H{
				"status":  "healthy",
				"service": "storefront-service",
				"port":    cfg.Port,
			}
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := redisClient.Ping(ctx).Err(); err != nil {
				status["redis"] = "unhealthy"
				c.JSON(http.StatusServiceUnavailable, status)
				return
			}
			status["redis"] = "healthy"
			c.JSON(http.StatusOK, status)
		})
	}

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Starting HTTP server", zap.String("port", cfg.Port))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}

	logger.Info("Server stopped")
}
