package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tixbase/dibs-payment-service/internal/api/handlers"
	"github.com/tixbase/dibs-payment-service/internal/api/middleware"
	"github.com/tixbase/dibs-payment-service/internal/cache"
	"github.com/tixbase/dibs-payment-service/internal/config"
	"github.com/tixbase/dibs-payment-service/internal/health"
	"github.com/tixbase/dibs-payment-service/internal/metrics"
	repository "github.com/tixbase/dibs-payment-service/internal/repositories"
	service "github.com/tixbase/dibs-payment-service/internal/services"
	"github.com/tixbase/dibs-payment-service/internal/telemetry"
	"github.com/tixbase/dibs-payment-service/pkg/dibs"
	"github.com/tixbase/dibs-payment-service/pkg/sendgrid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracing, err := telemetry.Setup(context.Background(), &cfg.Telemetry)
	if err != nil {
		slog.Error("❌ Error setting up tracing", "error", err.Error())
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisConnect.Host,
		Username: cfg.RedisConnect.Username,
		Password: cfg.RedisConnect.Password,
		DB:       cfg.RedisConnect.DB,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	cacheStore := cache.NewRedisCache(redisClient, &cfg.Cache)

	jwtKey := []byte(cfg.Security.JWTKey)
	dibsClient := dibs.NewClient(cfg.DIBS.PaymentWindowURL, cfg.DIBS.APIBaseURL, nil)
	emailService := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	settingsService := service.NewSettingsService(repos.Settings, cacheStore, cfg)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	notificationService := service.NewNotificationService(repos.Notification, emailService)
	paymentService := service.NewPaymentService(repos.Payment, settingsService, cacheStore, dibsClient, notificationService, cfg)
	paymentHandler := handlers.NewPaymentHandler(paymentService, cfg)
	refundService := service.NewRefundService(repos.Refund, repos.Payment, settingsService, dibsClient)
	refundHandler := handlers.NewRefundHandler(refundService, paymentService)
	notificationHandler := handlers.NewNotificationHandler(notificationService, paymentService)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{DB: repos.DB, RedisClient: redisClient})
	if err != nil {
		slog.Error("❌ Error creating health checks", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()

	// Organizer API
	routerMux.HandleFunc("POST /api/v1/events/{organizer}/{event}/payments", authMiddleware.Authenticate(paymentHandler.InitiatePayment()))
	routerMux.HandleFunc("GET /api/v1/events/{organizer}/{event}/payments", authMiddleware.Authenticate(paymentHandler.ListPayments()))
	routerMux.HandleFunc("GET /api/v1/payments/{id}", authMiddleware.Authenticate(paymentHandler.GetPayment()))
	routerMux.HandleFunc("POST /api/v1/payments/{id}/capture", authMiddleware.Authenticate(paymentHandler.CapturePayment()))
	routerMux.HandleFunc("POST /api/v1/payments/{id}/refunds", authMiddleware.Authenticate(refundHandler.CreateRefund()))
	routerMux.HandleFunc("GET /api/v1/payments/{id}/refunds", authMiddleware.Authenticate(refundHandler.ListRefunds()))
	routerMux.HandleFunc("GET /api/v1/payments/{id}/notifications", authMiddleware.Authenticate(notificationHandler.ListNotifications()))
	routerMux.HandleFunc("PUT /api/v1/events/{organizer}/{event}/settings", authMiddleware.Authenticate(settingsHandler.UpdateSettings()))
	routerMux.HandleFunc("GET /api/v1/events/{organizer}/{event}/settings", authMiddleware.Authenticate(settingsHandler.GetSettings()))

	// Payer-facing pages and the gateway callback; no token auth here, the
	// checkout id and return hash are the credentials.
	routerMux.HandleFunc("GET /api/v1/events/{organizer}/{event}/payments/{id}/checkout", paymentHandler.Checkout())
	routerMux.HandleFunc("GET /api/v1/events/{organizer}/{event}/payments/{id}/return", paymentHandler.Return())
	routerMux.HandleFunc("POST /api/v1/dibs/callback", paymentHandler.HandleCallback())
	routerMux.HandleFunc("GET /api/v1/dibs/callback", paymentHandler.HandleCallback())

	// Operational endpoints
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.HandleFunc("GET /health", healthHandler.HandlerFunc)

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)

	if cfg.Telemetry.Enabled {
		handler = otelhttp.NewHandler(handler, "dibs-payment-service")
	}

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Trace exporter shutdown encountered an issue", slog.String("error", err.Error()))
	}
}
