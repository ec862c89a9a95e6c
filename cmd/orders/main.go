package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	custadapters "go-shop/internal/customers/adapters"
	custapp "go-shop/internal/customers/application"
	custhttp "go-shop/internal/customers/infrastructure"
	custports "go-shop/internal/customers/ports"
	orderadapters "go-shop/internal/orders/adapters"
	orderapp "go-shop/internal/orders/application"
	orderhttp "go-shop/internal/orders/infrastructure"
	orderports "go-shop/internal/orders/ports"
	"go-shop/pkg/config"
	"go-shop/pkg/db"
	"go-shop/pkg/eventbus"
	"go-shop/pkg/events"
	"go-shop/pkg/logger"
	"go-shop/pkg/middleware"
	"go-shop/pkg/rabbitmq"
	pkgtls "go-shop/pkg/tls"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log := logger.New(cfg.ServiceName, cfg.LogLevel)
	defer log.Sync()

	log.Info("starting orders service")

	// Select storage driver
	var orderRepo orderports.OrderRepository
	var customerRepo custports.CustomerRepository

	switch cfg.StorageDriver {
	case config.StoragePostgres:
		dbConn, err := db.NewConnection(db.Config{
			DSN:     cfg.DSN(),
			Timeout: cfg.DBTimeout,
		})
		if err != nil {
			log.Fatal("failed to connect to database: " + err.Error())
		}
		log.Info("connected to database")

		pgOrders := orderadapters.NewPostgresOrderRepository(dbConn)
		if err := pgOrders.Migrate(); err != nil {
			log.Fatal("failed to migrate orders: " + err.Error())
		}
		pgCustomers := custadapters.NewPostgresCustomerRepository(dbConn)
		if err := pgCustomers.Migrate(); err != nil {
			log.Fatal("failed to migrate customers: " + err.Error())
		}

		orderRepo = pgOrders
		customerRepo = pgCustomers
	default:
		log.Info("using in-memory storage")
		orderRepo = orderadapters.NewMemoryOrderRepository()
		customerRepo = custadapters.NewMemoryCustomerRepository()
	}

	// Synchronous in-process event bus
	bus := eventbus.New(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Optionally relay events to RabbitMQ and run the audit consumer
	if cfg.RabbitMQEnabled {
		rabbitConn, err := rabbitmq.NewConnection(cfg.RabbitMQURL, log)
		if err != nil {
			log.Warn("failed to connect to RabbitMQ, events stay in-process: " + err.Error())
		} else {
			defer rabbitConn.Close()

			pub, err := rabbitmq.NewPublisher(rabbitConn, events.ExchangeOrders, log)
			if err != nil {
				log.Warn("failed to create publisher: " + err.Error())
			} else {
				orderadapters.NewBrokerRelay(pub, log).Register(bus)
				log.Info("broker relay registered")
			}

			auditor, err := orderadapters.NewOrderAuditConsumer(rabbitConn, log)
			if err != nil {
				log.Warn("failed to create audit consumer: " + err.Error())
			} else if err := auditor.Start(ctx); err != nil {
				log.Warn("failed to start audit consumer: " + err.Error())
			}
		}
	}

	// Wire use cases
	customerUseCase := custapp.NewCustomerUseCase(customerRepo, log)
	orderUseCase := orderapp.NewOrderUseCase(
		orderRepo,
		orderadapters.NewBusPublisher(bus),
		orderadapters.NewCustomerLookup(customerUseCase),
		log,
	)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(middleware.TraceID())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.ErrorHandler(log))
	router.Use(middleware.CORS())

	api := router.Group("/api/v1")
	orderhttp.NewHTTPHandler(orderUseCase).RegisterRoutes(api)
	custhttp.NewHTTPHandler(customerUseCase).RegisterRoutes(api)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Start server
	if cfg.TLSEnabled {
		startHTTPSServer(cfg, log, router)
	} else {
		startHTTPServer(cfg, log, router)
	}
}

func startHTTPServer(cfg *config.Config, log *logger.Logger, router *gin.Engine) {
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  cfg.HTTPTimeout,
		WriteTimeout: cfg.HTTPTimeout,
	}

	go func() {
		log.Info("HTTP server listening on http://localhost:" + cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error: " + err.Error())
		}
	}()

	waitForShutdown(server, log)
}

func startHTTPSServer(cfg *config.Config, log *logger.Logger, router *gin.Engine) {
	tlsConfig, err := pkgtls.ServerConfig(cfg.TLSCertFile, cfg.TLSKeyFile)
	if err != nil {
		log.Fatal("failed to load TLS config: " + err.Error())
	}

	server := &http.Server{
		Addr:         ":" + cfg.HTTPSPort,
		Handler:      router,
		TLSConfig:    tlsConfig,
		ReadTimeout:  cfg.HTTPTimeout,
		WriteTimeout: cfg.HTTPTimeout,
	}

	go func() {
		log.Info("HTTPS server listening on https://localhost:" + cfg.HTTPSPort)
		if err := server.ListenAndServeTLS("", ""); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTPS server error: " + err.Error())
		}
	}()

	waitForShutdown(server, log)
}

func waitForShutdown(server *http.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error: " + err.Error())
	}

	log.Info("server stopped")
}
