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

	cancelBookingHandler "github.com/m04kA/SMC-ConsultService/internal/api/handlers/cancel_booking"
	completeBookingHandler "github.com/m04kA/SMC-ConsultService/internal/api/handlers/complete_booking"
	completePastDueHandler "github.com/m04kA/SMC-ConsultService/internal/api/handlers/complete_past_due"
	confirmBookingHandler "github.com/m04kA/SMC-ConsultService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/m04kA/SMC-ConsultService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/SMC-ConsultService/internal/api/handlers/delete_booking"
	dismissPastDueHandler "github.com/m04kA/SMC-ConsultService/internal/api/handlers/dismiss_past_due"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ConsultService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-ConsultService/internal/api/handlers/get_booking"
	getPastDueHandler "github.com/m04kA/SMC-ConsultService/internal/api/handlers/get_past_due"
	getUpcomingBookingsHandler "github.com/m04kA/SMC-ConsultService/internal/api/handlers/get_upcoming_bookings"
	listBookingsHandler "github.com/m04kA/SMC-ConsultService/internal/api/handlers/list_bookings"
	rescheduleBookingHandler "github.com/m04kA/SMC-ConsultService/internal/api/handlers/reschedule_booking"
	updateBookingHandler "github.com/m04kA/SMC-ConsultService/internal/api/handlers/update_booking"
	"github.com/m04kA/SMC-ConsultService/internal/api/middleware"
	"github.com/m04kA/SMC-ConsultService/internal/config"
	bookingRepo "github.com/m04kA/SMC-ConsultService/internal/infra/storage/booking"
	reviewServiceClient "github.com/m04kA/SMC-ConsultService/internal/integrations/reviewservice"
	bookingsService "github.com/m04kA/SMC-ConsultService/internal/service/bookings"
	createBookingUC "github.com/m04kA/SMC-ConsultService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-ConsultService/internal/usecase/get_available_slots"
	sweepPastDueUC "github.com/m04kA/SMC-ConsultService/internal/usecase/sweep_past_due"
	"github.com/m04kA/SMC-ConsultService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ConsultService/pkg/logger"
	"github.com/m04kA/SMC-ConsultService/pkg/metrics"
	"github.com/m04kA/SMC-ConsultService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ConsultService/pkg/txmanager"
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

	log.Info("Starting SMC-ConsultService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем клиента ReviewService
	reviewClient := reviewServiceClient.NewClient(
		cfg.ReviewService.URL,
		time.Duration(cfg.ReviewService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (ReviewService=%s timeout=%ds)",
		cfg.ReviewService.URL, cfg.ReviewService.Timeout)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var bookingRepository *bookingRepo.Repository

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		reviewClient,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingRepository, log)
	sweepPastDueUseCase := sweepPastDueUC.NewUseCase(bookingRepository, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	createBookingAdmin := createBookingHandler.NewAdminHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, sweepPastDueUseCase, log)
	getUpcomingBookings := getUpcomingBookingsHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(bookingSvc, log)
	completeBooking := completeBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getPastDue := getPastDueHandler.NewHandler(sweepPastDueUseCase, log)
	completePastDue := completePastDueHandler.NewHandler(sweepPastDueUseCase, log)
	dismissPastDue := dismissPastDueHandler.NewHandler(sweepPastDueUseCase, log)

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

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты на дату
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание заявки на консультацию
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Отмена своей заявки
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Перенос своей заявки
	api.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPatch)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-ID header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth)

	// --- Бронирования ---
	// Список бронирований с фильтрами
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Создание бронирования от имени администратора
	admin.HandleFunc("/bookings", createBookingAdmin.Handle).Methods(http.MethodPost)

	// Предстоящие бронирования
	admin.HandleFunc("/bookings/upcoming", getUpcomingBookings.Handle).Methods(http.MethodGet)

	// --- Просроченные бронирования ---
	admin.HandleFunc("/bookings/past-due", getPastDue.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/past-due/complete", completePastDue.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/past-due/dismiss", dismissPastDue.Handle).Methods(http.MethodPost)

	// --- Карточка бронирования ---
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/complete", completeBooking.Handle).Methods(http.MethodPatch)

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

	log.Info("Server stopped gracefully")
}
