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

	createBookingHandler "github.com/nangenlabs/NGL-SiteService/internal/api/handlers/create_booking"
	createContactHandler "github.com/nangenlabs/NGL-SiteService/internal/api/handlers/create_contact"
	deleteBookingHandler "github.com/nangenlabs/NGL-SiteService/internal/api/handlers/delete_booking"
	getAvailabilityHandler "github.com/nangenlabs/NGL-SiteService/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/nangenlabs/NGL-SiteService/internal/api/handlers/get_available_slots"
	getBookedSlotsHandler "github.com/nangenlabs/NGL-SiteService/internal/api/handlers/get_booked_slots"
	getBookingHandler "github.com/nangenlabs/NGL-SiteService/internal/api/handlers/get_booking"
	listBookingsHandler "github.com/nangenlabs/NGL-SiteService/internal/api/handlers/list_bookings"
	listContactsHandler "github.com/nangenlabs/NGL-SiteService/internal/api/handlers/list_contacts"
	updateAvailabilityHandler "github.com/nangenlabs/NGL-SiteService/internal/api/handlers/update_availability"
	updateContactStatusHandler "github.com/nangenlabs/NGL-SiteService/internal/api/handlers/update_contact_status"
	"github.com/nangenlabs/NGL-SiteService/internal/api/middleware"
	"github.com/nangenlabs/NGL-SiteService/internal/config"
	"github.com/nangenlabs/NGL-SiteService/internal/domain"
	bookingRepo "github.com/nangenlabs/NGL-SiteService/internal/infra/storage/booking"
	contactRepo "github.com/nangenlabs/NGL-SiteService/internal/infra/storage/contact"
	settingsRepo "github.com/nangenlabs/NGL-SiteService/internal/infra/storage/settings"
	"github.com/nangenlabs/NGL-SiteService/internal/integrations/mailer"
	bookingsService "github.com/nangenlabs/NGL-SiteService/internal/service/bookings"
	contactsService "github.com/nangenlabs/NGL-SiteService/internal/service/contacts"
	settingsService "github.com/nangenlabs/NGL-SiteService/internal/service/settings"
	createBookingUC "github.com/nangenlabs/NGL-SiteService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/nangenlabs/NGL-SiteService/internal/usecase/get_available_slots"
	"github.com/nangenlabs/NGL-SiteService/pkg/dbmetrics"
	"github.com/nangenlabs/NGL-SiteService/pkg/logger"
	"github.com/nangenlabs/NGL-SiteService/pkg/metrics"
	"github.com/nangenlabs/NGL-SiteService/pkg/simpletxmanager"
	"github.com/nangenlabs/NGL-SiteService/pkg/txmanager"
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

	log.Info("Starting NGL-SiteService...")
	log.Info("Configuration loaded from config.toml")

	// Бизнес-таймзона: все локальные даты считаются в ней
	location, err := cfg.Server.Location()
	if err != nil {
		log.Fatal("Failed to load timezone: %v", err)
	}
	log.Info("Business timezone: %s", location)

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

	// Почтовый клиент: SMTP или консольная заглушка
	var mailClient mailerClient
	if cfg.Mailer.Enabled {
		mailClient = mailer.NewClient(
			cfg.Mailer.Host,
			cfg.Mailer.Port,
			cfg.Mailer.Username,
			cfg.Mailer.Password,
			cfg.Mailer.From,
			cfg.Mailer.NotifyTo,
			log,
		)
		log.Info("Mailer initialized (host=%s, port=%d, from=%s)",
			cfg.Mailer.Host, cfg.Mailer.Port, cfg.Mailer.From)
	} else {
		mailClient = mailer.NewConsole(log)
		log.Info("Mailer disabled, emails will be logged to console")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		contactRepository  *contactRepo.Repository
		settingsRepository *settingsRepo.Repository
	)

	var txMgr txManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		contactRepository = contactRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		contactRepository = contactRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Расписание слотов
	schedule := domain.DefaultWeeklySchedule()

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, location, log)
	contactSvc := contactsService.NewService(contactRepository, mailClient, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		settingsRepository,
		mailClient,
		txMgr,
		schedule,
		location,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		settingsRepository,
		schedule,
		location,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, location, log)
	getBookedSlots := getBookedSlotsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	createContact := createContactHandler.NewHandler(contactSvc, log)
	listContacts := listContactsHandler.NewHandler(contactSvc, log)
	updateContactStatus := updateContactStatusHandler.NewHandler(contactSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(settingsSvc, log)
	updateAvailability := updateAvailabilityHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
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

	// Состояние приема бронирований
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Слоты на дату с пометками занятости
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Занятые слоты без персональных данных
	api.HandleFunc("/booked-slots", getBookedSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Контактная форма
	api.HandleFunc("/contacts", createContact.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(cfg.Auth.AdminToken, log))

	// --- Бронирования ---
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Глобальный тумблер ---
	admin.HandleFunc("/availability", updateAvailability.Handle).Methods(http.MethodPut)

	// --- Обращения ---
	admin.HandleFunc("/contacts", listContacts.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/contacts/{contactId}/status", updateContactStatus.Handle).Methods(http.MethodPatch)

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

// txManager общий интерфейс обоих менеджеров транзакций
type txManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// mailerClient общий интерфейс SMTP клиента и консольной заглушки
type mailerClient interface {
	SendContactNotification(data *mailer.ContactEmailData) error
	SendContactConfirmation(data *mailer.ContactEmailData) error
	SendBookingConfirmation(data *mailer.BookingEmailData) error
}
