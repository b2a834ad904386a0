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

	checkAvailabilityHandler "github.com/tomspera05/NH-BookingService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/tomspera05/NH-BookingService/internal/api/handlers/create_booking"
	getAlternativeSlotsHandler "github.com/tomspera05/NH-BookingService/internal/api/handlers/get_alternative_slots"
	getBookingHandler "github.com/tomspera05/NH-BookingService/internal/api/handlers/get_booking"
	getCurrentUserHandler "github.com/tomspera05/NH-BookingService/internal/api/handlers/get_current_user"
	getUserBookingsHandler "github.com/tomspera05/NH-BookingService/internal/api/handlers/get_user_bookings"
	listServicesHandler "github.com/tomspera05/NH-BookingService/internal/api/handlers/list_services"
	loadMoreSlotsHandler "github.com/tomspera05/NH-BookingService/internal/api/handlers/load_more_slots"
	loginHandler "github.com/tomspera05/NH-BookingService/internal/api/handlers/login"
	logoutHandler "github.com/tomspera05/NH-BookingService/internal/api/handlers/logout"
	registerHandler "github.com/tomspera05/NH-BookingService/internal/api/handlers/register"
	"github.com/tomspera05/NH-BookingService/internal/api/middleware"
	"github.com/tomspera05/NH-BookingService/internal/catalog"
	"github.com/tomspera05/NH-BookingService/internal/config"
	blockedSlotsRepo "github.com/tomspera05/NH-BookingService/internal/infra/storage/blockedslots"
	bookingRepo "github.com/tomspera05/NH-BookingService/internal/infra/storage/booking"
	sessionRepo "github.com/tomspera05/NH-BookingService/internal/infra/storage/session"
	userRepo "github.com/tomspera05/NH-BookingService/internal/infra/storage/user"
	accountsService "github.com/tomspera05/NH-BookingService/internal/service/accounts"
	availabilityService "github.com/tomspera05/NH-BookingService/internal/service/availability"
	bookingsService "github.com/tomspera05/NH-BookingService/internal/service/bookings"
	createBookingUC "github.com/tomspera05/NH-BookingService/internal/usecase/create_booking"
	"github.com/tomspera05/NH-BookingService/pkg/dbmetrics"
	"github.com/tomspera05/NH-BookingService/pkg/idgen"
	"github.com/tomspera05/NH-BookingService/pkg/logger"
	"github.com/tomspera05/NH-BookingService/pkg/metrics"
	"github.com/tomspera05/NH-BookingService/pkg/simpletxmanager"
	"github.com/tomspera05/NH-BookingService/pkg/txmanager"
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

	log.Info("Starting NH-BookingService...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		userRepository    *userRepo.Repository
		sessionRepository *sessionRepo.Repository
		bookingRepository *bookingRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		userRepository = userRepo.NewRepository(wrappedDB)
		sessionRepository = sessionRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		userRepository = userRepo.NewRepository(db)
		sessionRepository = sessionRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Таблица занятых слотов задается при старте процесса
	blockedRepository := blockedSlotsRepo.NewRepository()

	// Статический каталог услуг и генератор идентификаторов
	serviceCatalog := catalog.New()
	idGenerator := idgen.New()

	// Инициализируем сервисы
	accountsSvc := accountsService.NewService(
		userRepository,
		sessionRepository,
		idGenerator,
		log,
	)
	availabilitySvc := availabilityService.NewService(
		blockedRepository,
		log,
	)
	bookingsSvc := bookingsService.NewService(
		bookingRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		serviceCatalog,
		txMgr,
		idGenerator,
		log,
	)

	// Инициализируем handlers
	register := registerHandler.NewHandler(accountsSvc, log)
	login := loginHandler.NewHandler(accountsSvc, log)
	logout := logoutHandler.NewHandler(accountsSvc, log)
	getCurrentUser := getCurrentUserHandler.NewHandler(accountsSvc, log)
	listServices := listServicesHandler.NewHandler(serviceCatalog, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(availabilitySvc, log)
	getAlternativeSlots := getAlternativeSlotsHandler.NewHandler(availabilitySvc, log)
	loadMoreSlots := loadMoreSlotsHandler.NewHandler(availabilitySvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingsSvc, log)

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

	// Регистрация и вход
	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Каталог услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Доступность слотов
	api.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/slots", getAlternativeSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/slots/more", loadMoreSlots.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Session-Token header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.NewAuth(accountsSvc, log))

	// --- Учетная запись ---
	protected.HandleFunc("/auth/me", getCurrentUser.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// История бронирований пользователя
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

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
