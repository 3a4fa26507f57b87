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

	cancelAppointmentHandler "github.com/agendaplus/booking-service/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/agendaplus/booking-service/internal/api/handlers/create_appointment"
	createServiceHandler "github.com/agendaplus/booking-service/internal/api/handlers/create_service"
	createTimeOffHandler "github.com/agendaplus/booking-service/internal/api/handlers/create_time_off"
	deactivateServiceHandler "github.com/agendaplus/booking-service/internal/api/handlers/deactivate_service"
	deleteTimeOffHandler "github.com/agendaplus/booking-service/internal/api/handlers/delete_time_off"
	getAppointmentHandler "github.com/agendaplus/booking-service/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/agendaplus/booking-service/internal/api/handlers/get_available_slots"
	getCalendarHandler "github.com/agendaplus/booking-service/internal/api/handlers/get_calendar"
	getClientAppointmentsHandler "github.com/agendaplus/booking-service/internal/api/handlers/get_client_appointments"
	getTenantAppointmentsHandler "github.com/agendaplus/booking-service/internal/api/handlers/get_tenant_appointments"
	listServicesHandler "github.com/agendaplus/booking-service/internal/api/handlers/list_services"
	listTimeOffHandler "github.com/agendaplus/booking-service/internal/api/handlers/list_time_off"
	moveEventHandler "github.com/agendaplus/booking-service/internal/api/handlers/move_event"
	updateAppointmentStatusHandler "github.com/agendaplus/booking-service/internal/api/handlers/update_appointment_status"
	updateServiceHandler "github.com/agendaplus/booking-service/internal/api/handlers/update_service"
	"github.com/agendaplus/booking-service/internal/api/middleware"
	"github.com/agendaplus/booking-service/internal/cache"
	"github.com/agendaplus/booking-service/internal/calendar"
	"github.com/agendaplus/booking-service/internal/config"
	"github.com/agendaplus/booking-service/internal/domain"
	appointmentRepo "github.com/agendaplus/booking-service/internal/infra/storage/appointment"
	servicecatalogRepo "github.com/agendaplus/booking-service/internal/infra/storage/servicecatalog"
	timeoffRepo "github.com/agendaplus/booking-service/internal/infra/storage/timeoff"
	slotEngineClient "github.com/agendaplus/booking-service/internal/integrations/slotengine"
	appointmentsService "github.com/agendaplus/booking-service/internal/service/appointments"
	catalogService "github.com/agendaplus/booking-service/internal/service/catalog"
	timeoffService "github.com/agendaplus/booking-service/internal/service/timeoff"
	createAppointmentUC "github.com/agendaplus/booking-service/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/agendaplus/booking-service/internal/usecase/get_available_slots"
	getCalendarUC "github.com/agendaplus/booking-service/internal/usecase/get_calendar"
	moveAppointmentUC "github.com/agendaplus/booking-service/internal/usecase/move_appointment"
	"github.com/agendaplus/booking-service/pkg/dbmetrics"
	"github.com/agendaplus/booking-service/pkg/logger"
	"github.com/agendaplus/booking-service/pkg/metrics"
	"github.com/agendaplus/booking-service/pkg/simpletxmanager"
	"github.com/agendaplus/booking-service/pkg/txmanager"
	"github.com/agendaplus/booking-service/pkg/types"
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

	log.Info("Starting booking-service...")
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

	// Инициализируем кеш
	var appCache cache.Cache
	cacheTTL := time.Duration(cfg.Cache.TTL) * time.Second
	if cfg.Cache.Enabled {
		redisCache := cache.NewRedis(cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB)
		if err := redisCache.Ping(context.Background()); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		appCache = redisCache
		log.Info("Redis cache connected (addr=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.TTL)
	} else {
		appCache = cache.NewNoop()
		log.Info("Cache disabled, using noop cache")
	}

	// Инициализируем клиента движка слотов
	engineClient := slotEngineClient.NewClient(
		cfg.SlotEngine.URL,
		time.Duration(cfg.SlotEngine.Timeout)*time.Second,
		log,
	)
	log.Info("Slot engine client initialized (url=%s, timeout=%ds)", cfg.SlotEngine.URL, cfg.SlotEngine.Timeout)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		catalogRepository     *servicecatalogRepo.Repository
		timeoffRepository     *timeoffRepo.Repository
	)

	var txMgr appointmentsService.TransactionManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		catalogRepository = servicecatalogRepo.NewRepository(wrappedDB)
		timeoffRepository = timeoffRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		catalogRepository = servicecatalogRepo.NewRepository(db)
		timeoffRepository = timeoffRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Реестр календарных сессий
	sessionRegistry := calendar.NewRegistry()

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, txMgr, log)
	catalogSvc := catalogService.NewService(catalogRepository, appCache, cacheTTL, log)
	timeoffSvc := timeoffService.NewService(timeoffRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		catalogSvc,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		engineClient,
		appCache,
		cacheTTL,
		log,
	)

	getCalendarUseCase := getCalendarUC.NewUseCase(
		appointmentRepository,
		timeoffRepository,
		sessionRegistry,
		domain.BusinessHours{
			Start: types.TimeString(cfg.Booking.BusinessStart),
			End:   types.TimeString(cfg.Booking.BusinessEnd),
		},
		log,
	)

	moveAppointmentUseCase := moveAppointmentUC.NewUseCase(
		appointmentSvc,
		sessionRegistry,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentSvc, log)
	getTenantAppointments := getTenantAppointmentsHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	moveEvent := moveEventHandler.NewHandler(moveAppointmentUseCase, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deactivateService := deactivateServiceHandler.NewHandler(catalogSvc, log)
	createTimeOff := createTimeOffHandler.NewHandler(timeoffSvc, log)
	listTimeOff := listTimeOffHandler.NewHandler(timeoffSvc, log)
	deleteTimeOff := deleteTimeOffHandler.NewHandler(timeoffSvc, log)

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

	// API prefix, все маршруты требуют заголовков X-User-ID и X-Tenant-ID
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// --- Слоты и каталог ---
	// Доступные слоты на дату
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Каталог услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	api.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPut)
	api.HandleFunc("/services/{serviceId}", deactivateService.Handle).Methods(http.MethodDelete)

	// --- Записи ---
	// Создание записи
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Записи арендатора с фильтрацией (для сотрудников)
	api.HandleFunc("/appointments", getTenantAppointments.Handle).Methods(http.MethodGet)

	// История записей клиента
	api.HandleFunc("/me/appointments", getClientAppointments.Handle).Methods(http.MethodGet)

	// Запись по ID
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Смена статуса записи
	api.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// Отмена записи
	api.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// --- Календарь ---
	// Построение календаря, открывает сессию
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Оптимистичный перенос события в сессии
	api.HandleFunc("/calendar/{sessionId}/events/{eventId}/move", moveEvent.Handle).Methods(http.MethodPatch)

	// --- Отгулы сотрудников ---
	api.HandleFunc("/time-off", createTimeOff.Handle).Methods(http.MethodPost)
	api.HandleFunc("/time-off", listTimeOff.Handle).Methods(http.MethodGet)
	api.HandleFunc("/time-off/{timeOffId}", deleteTimeOff.Handle).Methods(http.MethodDelete)

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
