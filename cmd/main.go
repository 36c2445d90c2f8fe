package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"payment-config-service/internal/cache"
	"payment-config-service/internal/config"
	"payment-config-service/internal/events"
	"payment-config-service/internal/handlers"
	"payment-config-service/internal/middleware"
	"payment-config-service/internal/models"
	"payment-config-service/internal/repository"
	"payment-config-service/internal/services"
	"payment-config-service/internal/storage"
)

// @title Payment Configuration API
// @version 1.0.0
// @description Admin service for merchants, PSPs, payment methods and reference data
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.bearer BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// Global logger
var log *logrus.Logger

func main() {
	// Initialize structured logger
	log = logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Warn("Warning: .env file not found, using system environment variables")
	}

	// Initialize configuration
	cfg := config.Load()

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize database")
	}

	// Run database migrations
	if err := runMigrations(db); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}

	// Seed the read-only reference tables
	if err := repository.SeedReferenceData(db); err != nil {
		log.WithError(err).Fatal("Failed to seed reference data")
	}

	// Initialize cache store; without Redis the service runs on the
	// in-process store
	store := newCacheStore(cfg)
	lookupCache := cache.NewLookupCache(store, log)

	// Initialize NATS events publisher
	var publisher *events.Publisher
	if cfg.NatsURL != "" {
		publisher, err = events.NewPublisher(cfg.NatsURL, log)
		if err != nil {
			log.WithError(err).Warn("Failed to initialize events publisher (events won't be published)")
		} else {
			defer publisher.Close()
			log.Info("NATS events publisher initialized")
		}
	}

	// File storage for logos and merchant setting uploads
	files := storage.NewFileStore(cfg.StorageRoot, log)

	// Repositories
	merchantRepo := repository.NewMerchantRepository(db)
	merchantInvoiceRepo := repository.NewMerchantInvoiceRepository(db)
	pspRepo := repository.NewPspRepository(db)
	methodRepo := repository.NewPaymentMethodRepository(db)
	configRepo := repository.NewPspPaymentMethodRepository(db)
	bankRepo := repository.NewBankRepository(db)
	networkRepo := repository.NewPaymentNetworkRepository(db)
	productRepo := repository.NewProductRepository(db)
	userRepo := repository.NewUserRepository(db)
	lookupRepo := repository.NewLookupRepository(db)
	invoiceTypeRepo := repository.NewInvoiceTypeRepository(db)
	messageTypeRepo := repository.NewMessageTypeRepository(db)
	termsRepo := repository.NewTermsRepository(db)

	// Services
	merchantService := services.NewMerchantService(merchantRepo, merchantInvoiceRepo, files, publisher, log)
	pspService := services.NewPspService(pspRepo, lookupCache, publisher)
	methodService := services.NewPaymentMethodService(methodRepo, files, lookupCache, publisher, log)
	configService := services.NewPspPaymentMethodService(configRepo, pspRepo, methodRepo, publisher)
	bankService := services.NewBankService(bankRepo, files, lookupCache, publisher, log)
	networkService := services.NewPaymentNetworkService(networkRepo, publisher)
	productService := services.NewProductService(productRepo, lookupCache, publisher, log)
	userService := services.NewUserService(userRepo, publisher)
	referenceService := services.NewReferenceService(invoiceTypeRepo, messageTypeRepo, termsRepo, lookupCache, publisher, log)
	lookupService := services.NewLookupService(lookupRepo, bankRepo, invoiceTypeRepo, methodRepo, productRepo, lookupCache)

	// Handlers
	merchantHandler := handlers.NewMerchantHandler(merchantService)
	pspHandler := handlers.NewPspHandler(pspService)
	methodHandler := handlers.NewPaymentMethodHandler(methodService)
	configHandler := handlers.NewPspPaymentMethodHandler(configService)
	bankHandler := handlers.NewBankHandler(bankService, networkService)
	productHandler := handlers.NewProductHandler(productService)
	userHandler := handlers.NewUserHandler(userService, cfg.JWTSecret, cfg.TokenTTL)
	referenceHandler := handlers.NewReferenceHandler(referenceService)
	lookupHandler := handlers.NewLookupHandler(lookupService)
	healthHandler := handlers.NewHealthHandler(db, store)

	// Initialize Gin router
	router := setupRouter(cfg,
		merchantHandler, pspHandler, methodHandler, configHandler,
		bankHandler, productHandler, userHandler, referenceHandler,
		lookupHandler, healthHandler)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.WithFields(logrus.Fields{
			"port":        cfg.Port,
			"environment": cfg.Environment,
			"db_host":     cfg.DBHost,
			"db_name":     cfg.DBName,
		}).Info("Payment config service starting")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Forced shutdown")
	}
}

// newCacheStore selects Redis when configured, otherwise the in-process
// store
func newCacheStore(cfg *config.Config) cache.Store {
	if cfg.RedisAddr == "" {
		log.Info("REDIS_ADDR not set, using in-process cache store")
		return cache.NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	return cache.NewRedisStore(client)
}

// runMigrations runs database migrations
func runMigrations(db *gorm.DB) error {
	log.Info("Running database migrations...")

	if err := db.AutoMigrate(
		&models.Country{},
		&models.Currency{},
		&models.Language{},
		&models.MerchantStatus{},
		&models.PspStatus{},
		&models.UserStatus{},
		&models.InvoiceType{},
		&models.MessageType{},
		&models.TermsAndCondition{},
		&models.Bank{},
		&models.PaymentNetwork{},
		&models.Product{},
		&models.Merchant{},
		&models.MerchantSetting{},
		&models.MerchantInvoice{},
		&models.Psp{},
		&models.PaymentMethod{},
		&models.PspPaymentMethod{},
		&models.User{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Info("Database migrations completed")
	return nil
}

// setupRouter configures the Gin router with middleware and routes
func setupRouter(
	cfg *config.Config,
	merchantHandler *handlers.MerchantHandler,
	pspHandler *handlers.PspHandler,
	methodHandler *handlers.PaymentMethodHandler,
	configHandler *handlers.PspPaymentMethodHandler,
	bankHandler *handlers.BankHandler,
	productHandler *handlers.ProductHandler,
	userHandler *handlers.UserHandler,
	referenceHandler *handlers.ReferenceHandler,
	lookupHandler *handlers.LookupHandler,
	healthHandler *handlers.HealthHandler,
) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(splitOrigins(cfg.AllowedOrigins)))
	router.Use(middleware.Metrics())

	// Health and metrics endpoints (no auth required)
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/ready", healthHandler.ReadinessCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Every /api/v1 route except login requires a bearer token
	router.Use(middleware.AuthMiddleware(cfg.JWTSecret))

	api := router.Group("/api/v1")

	api.POST("/auth/login", userHandler.Login)

	merchants := api.Group("/merchants")
	{
		merchants.GET("", merchantHandler.ListMerchants)
		merchants.POST("", merchantHandler.CreateMerchant)
		merchants.GET("/:id", merchantHandler.GetMerchant)
		merchants.PUT("/:id", merchantHandler.UpdateMerchant)
		merchants.DELETE("/:id", merchantHandler.DeleteMerchant)
		merchants.POST("/:id/restore", merchantHandler.RestoreMerchant)
		merchants.PUT("/:id/invoice-types", merchantHandler.SyncInvoiceTypes)
	}

	psps := api.Group("/psps")
	{
		psps.GET("", pspHandler.ListPsps)
		psps.POST("", pspHandler.CreatePsp)
		psps.GET("/:id", pspHandler.GetPsp)
		psps.PUT("/:id", pspHandler.UpdatePsp)
		psps.DELETE("/:id", pspHandler.DeletePsp)
		psps.POST("/:id/restore", pspHandler.RestorePsp)
	}

	methods := api.Group("/payment-methods")
	{
		methods.GET("", methodHandler.ListPaymentMethods)
		methods.POST("", methodHandler.CreatePaymentMethod)
		methods.GET("/:id", methodHandler.GetPaymentMethod)
		methods.PUT("/:id", methodHandler.UpdatePaymentMethod)
		methods.DELETE("/:id", methodHandler.DeletePaymentMethod)
		methods.POST("/:id/restore", methodHandler.RestorePaymentMethod)
	}

	configs := api.Group("/psp-payment-methods")
	{
		configs.GET("", configHandler.ListConfigurations)
		configs.POST("", configHandler.CreateConfigurations)
		configs.GET("/:id", configHandler.GetConfiguration)
		configs.PUT("/:id", configHandler.UpdateConfiguration)
		configs.DELETE("/:id", configHandler.DeleteConfiguration)
		configs.POST("/:id/restore", configHandler.RestoreConfiguration)
	}

	banks := api.Group("/banks")
	{
		banks.GET("", bankHandler.ListBanks)
		banks.POST("", bankHandler.CreateBank)
		banks.GET("/:id", bankHandler.GetBank)
		banks.PUT("/:id", bankHandler.UpdateBank)
		banks.DELETE("/:id", bankHandler.DeleteBank)
		banks.POST("/:id/restore", bankHandler.RestoreBank)
	}

	networks := api.Group("/payment-networks")
	{
		networks.GET("", bankHandler.ListNetworks)
		networks.POST("", bankHandler.CreateNetwork)
		networks.GET("/:id", bankHandler.GetNetwork)
		networks.PUT("/:id", bankHandler.UpdateNetwork)
		networks.DELETE("/:id", bankHandler.DeleteNetwork)
		networks.POST("/:id/restore", bankHandler.RestoreNetwork)
	}

	products := api.Group("/products")
	{
		products.GET("", productHandler.ListProducts)
		products.POST("", productHandler.CreateProduct)
		products.GET("/:id", productHandler.GetProduct)
		products.PUT("/:id", productHandler.UpdateProduct)
		products.DELETE("/:id", productHandler.DeleteProduct)
		products.POST("/:id/restore", productHandler.RestoreProduct)
	}

	users := api.Group("/users")
	{
		users.GET("", userHandler.ListUsers)
		users.POST("", userHandler.CreateUser)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
		users.POST("/:id/restore", userHandler.RestoreUser)
	}

	invoiceTypes := api.Group("/invoice-types")
	{
		invoiceTypes.GET("", referenceHandler.ListInvoiceTypes)
		invoiceTypes.POST("", referenceHandler.CreateInvoiceType)
		invoiceTypes.GET("/:id", referenceHandler.GetInvoiceType)
		invoiceTypes.PUT("/:id", referenceHandler.UpdateInvoiceType)
		invoiceTypes.DELETE("/:id", referenceHandler.DeleteInvoiceType)
		invoiceTypes.POST("/:id/restore", referenceHandler.RestoreInvoiceType)
	}

	messageTypes := api.Group("/message-types")
	{
		messageTypes.GET("", referenceHandler.ListMessageTypes)
		messageTypes.POST("", referenceHandler.CreateMessageType)
		messageTypes.GET("/:id", referenceHandler.GetMessageType)
		messageTypes.PUT("/:id", referenceHandler.UpdateMessageType)
		messageTypes.DELETE("/:id", referenceHandler.DeleteMessageType)
		messageTypes.POST("/:id/restore", referenceHandler.RestoreMessageType)
	}

	terms := api.Group("/terms")
	{
		terms.GET("", referenceHandler.ListTerms)
		terms.POST("", referenceHandler.CreateTerms)
		terms.GET("/latest", referenceHandler.GetLatestTerms)
		terms.GET("/:id", referenceHandler.GetTerms)
		terms.PUT("/:id", referenceHandler.UpdateTerms)
		terms.DELETE("/:id", referenceHandler.DeleteTerms)
		terms.POST("/:id/restore", referenceHandler.RestoreTerms)
	}

	lookups := api.Group("/lookups")
	{
		lookups.GET("/countries", lookupHandler.ListCountries)
		lookups.GET("/currencies", lookupHandler.ListCurrencies)
		lookups.GET("/languages", lookupHandler.ListLanguages)
		lookups.GET("/merchant-statuses", lookupHandler.MerchantStatusDropdown)
		lookups.GET("/psp-statuses", lookupHandler.PspStatusDropdown)
		lookups.GET("/user-statuses", lookupHandler.UserStatusDropdown)
		lookups.GET("/banks", lookupHandler.BankDropdown)
		lookups.GET("/invoice-types", lookupHandler.InvoiceTypeDropdown)
		lookups.GET("/payment-methods", lookupHandler.PaymentMethodDropdown)
		lookups.GET("/products", lookupHandler.ProductDropdown)
		lookups.POST("/clear-cache", lookupHandler.ClearCache)
	}

	// Swagger documentation (no auth required for docs)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
