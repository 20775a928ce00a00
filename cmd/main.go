package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	submitFormHandler "github.com/m04kA/OPS-OnboardingService/internal/api/handlers/submit_form"
	verifyPasswordHandler "github.com/m04kA/OPS-OnboardingService/internal/api/handlers/verify_password"
	"github.com/m04kA/OPS-OnboardingService/internal/api/middleware"
	"github.com/m04kA/OPS-OnboardingService/internal/config"
	n8nClient "github.com/m04kA/OPS-OnboardingService/internal/integrations/n8n"
	accessService "github.com/m04kA/OPS-OnboardingService/internal/service/access"
	"github.com/m04kA/OPS-OnboardingService/pkg/logger"
	"github.com/m04kA/OPS-OnboardingService/pkg/metrics"
)

// metricsRelay оборачивает n8n клиента сбором метрик исходящих запросов
type metricsRelay struct {
	client  *n8nClient.Client
	metrics *metrics.Metrics
}

func (r *metricsRelay) Forward(ctx context.Context, payload interface{}) (*n8nClient.Result, error) {
	start := time.Now()
	result, err := r.client.Forward(ctx, payload)

	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	r.metrics.ObserveForward(outcome, time.Since(start).Seconds())

	return result, err
}

func main() {
	// .env опционален - в проде секрет приходит из окружения напрямую
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting OPS-OnboardingService...")
	log.Info("Configuration loaded from config.toml (environment=%s)", cfg.Server.Environment)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем клиента n8n webhook
	webhook := n8nClient.NewClient(
		cfg.Webhook.URL,
		time.Duration(cfg.Webhook.Timeout)*time.Second,
		cfg.Webhook.UserAgent,
		log,
	)
	log.Info("Webhook client initialized (timeout=%ds)", cfg.Webhook.Timeout)

	// Relay для handler: с метриками или без
	var relay submitFormHandler.WebhookRelay = webhook
	if cfg.Metrics.Enabled {
		relay = &metricsRelay{client: webhook, metrics: metricsCollector}
	}

	// Инициализируем сервисы
	accessSvc := accessService.NewService(cfg.Access.Password, log)

	// Инициализируем handlers
	submitForm := submitFormHandler.NewHandler(relay, log, cfg.IsDevelopment())
	verifyPassword := verifyPasswordHandler.NewHandler(accessSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// Пересылка заявки онбординга во внешний workflow
	api.HandleFunc("/submit-form", submitForm.Handle).Methods(http.MethodPost)

	// Проверка пароля доступа к форме
	api.HandleFunc("/verify-password", verifyPassword.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
