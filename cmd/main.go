package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/festive-rides/booking-service/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/festive-rides/booking-service/internal/api/handlers/check_availability"
	createBookingHandler "github.com/festive-rides/booking-service/internal/api/handlers/create_booking"
	getBookingHandler "github.com/festive-rides/booking-service/internal/api/handlers/get_booking"
	healthHandler "github.com/festive-rides/booking-service/internal/api/handlers/health"
	"github.com/festive-rides/booking-service/internal/api/middleware"
	"github.com/festive-rides/booking-service/internal/config"
	bookingRepo "github.com/festive-rides/booking-service/internal/infra/storage/booking"
	resendClient "github.com/festive-rides/booking-service/internal/integrations/resend"
	bookingsService "github.com/festive-rides/booking-service/internal/service/bookings"
	checkAvailabilityUC "github.com/festive-rides/booking-service/internal/usecase/check_availability"
	createBookingUC "github.com/festive-rides/booking-service/internal/usecase/create_booking"
	"github.com/festive-rides/booking-service/pkg/dbmetrics"
	"github.com/festive-rides/booking-service/pkg/logger"
	"github.com/festive-rides/booking-service/pkg/metrics"
	"github.com/festive-rides/booking-service/pkg/refgen"
)

func main() {
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

	log.Info("Starting festive-rides booking service...")
	log.Info("Configuration loaded from config.toml")

	// Момент закрытия бронирования вычисляется один раз при старте
	cutoff, err := cfg.Service.CutoffTime()
	if err != nil {
		log.Fatal("Failed to compute booking cutoff: %v", err)
	}
	log.Info("Service date %s, bookings close at %s", cfg.Service.ServiceDate, cutoff.Format(time.RFC3339))

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиент email-рассылки
	notifier := resendClient.NewClient(
		cfg.Resend.BaseURL,
		cfg.Resend.APIKey,
		cfg.Resend.FromEmail,
		cfg.Resend.AdminEmail,
		time.Duration(cfg.Resend.Timeout)*time.Second,
		log,
	)
	log.Info("Resend client initialized (from=%s, admin=%s, timeout=%ds)",
		cfg.Resend.FromEmail, cfg.Resend.AdminEmail, cfg.Resend.Timeout)

	// Инициализируем репозиторий (с метриками или без)
	var bookingRepository *bookingRepo.Repository

	var createMetrics createBookingUC.Metrics = metrics.Noop{}
	var cancelMetrics bookingsService.Metrics = metrics.Noop{}

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)

		serviceMetrics := metricsCollector.ForService(cfg.Metrics.ServiceName)
		createMetrics = serviceMetrics
		cancelMetrics = serviceMetrics
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
	}

	// Инициализируем сервис бронирований
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		cancelMetrics,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		refgen.New(),
		notifier,
		createMetrics,
		cutoff,
		log,
	)

	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		bookingRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	health := healthHandler.NewHandler(db, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check
	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Карта доступности слотов
	api.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Отмена бронирования по паре (код, email)
	api.HandleFunc("/bookings/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по коду
	api.HandleFunc("/bookings/{reference}", getBooking.Handle).Methods(http.MethodGet)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped")
}
