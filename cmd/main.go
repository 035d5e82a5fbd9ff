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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	adminLoginHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/admin_login"
	adminLogoutHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/admin_logout"
	blockPhoneHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/block_phone"
	createBookingHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/create_booking"
	getAppointmentsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_appointments"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_available_slots"
	getAvailableStylistsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_available_stylists"
	getBlockedPhonesHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_blocked_phones"
	getBookingStatusHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_booking_status"
	getServicesHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_services"
	healthHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/health"
	moderateBookingHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/moderate_booking"
	unblockPhoneHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/unblock_phone"
	updateClientNameHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/update_client_name"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/config"
	appointmentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/appointment"
	blocklistRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/blocklist"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/mailer"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/telegram"
	appointmentsService "github.com/m04kA/SMC-SalonBooking/internal/service/appointments"
	blocklistService "github.com/m04kA/SMC-SalonBooking/internal/service/blocklist"
	"github.com/m04kA/SMC-SalonBooking/internal/service/notifications"
	"github.com/m04kA/SMC-SalonBooking/internal/service/reminders"
	salonService "github.com/m04kA/SMC-SalonBooking/internal/service/salon"
	createBookingUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_available_slots"
	getAvailableStylistsUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_available_stylists"
	moderateBookingUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/moderate_booking"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/keymutex"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/metrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/txmanager"
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

	log.Info("Starting SMC-SalonBooking...")
	log.Info("Configuration loaded from config.toml: services=%v, stylists=%v, work_hours=%v",
		cfg.ServiceNames(), cfg.Salon.Stylists, cfg.Salon.WorkHours)

	salon := cfg.BuildSalon()

	// Инициализируем метрики (если включены); nil коллектор безопасен
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

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	blocklistRepository := blocklistRepo.NewRepository(wrappedDB)

	// Инициализируем каналы уведомлений; выключенный канал = nil sender
	notifyTimeout := time.Duration(cfg.Telegram.Timeout) * time.Second

	var messageSender notifications.MessageSender
	if cfg.Telegram.Enabled {
		messageSender = telegram.NewClient(cfg.Telegram.APIURL, cfg.Telegram.BotToken, notifyTimeout, log)
		log.Info("Telegram notifications enabled (timeout=%ds)", cfg.Telegram.Timeout)
	} else {
		log.Warn("Telegram notifications disabled")
	}

	var mailSender notifications.MailSender
	if cfg.SMTP.Enabled {
		mailSender = mailer.NewClient(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From)
		log.Info("Email notifications enabled (smtp=%s:%d)", cfg.SMTP.Host, cfg.SMTP.Port)
	} else {
		log.Warn("Email notifications disabled")
	}

	telegramNotifier := notifications.NewTelegram(messageSender, cfg.Telegram.AdminChatID, metricsCollector, log)
	emailNotifier := notifications.NewEmail(mailSender, metricsCollector, log)
	dispatcher := notifications.NewDispatcher(notifyTimeout, log)

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, salon, log)
	blocklistSvc := blocklistService.NewService(blocklistRepository, salon, log)
	salonSvc := salonService.NewService(salon)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		appointmentRepository,
		blocklistRepository,
		txMgr,
		keymutex.New(),
		telegramNotifier,
		dispatcher,
		metricsCollector,
		salon,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(appointmentRepository, salon, log)
	getAvailableStylistsUseCase := getAvailableStylistsUC.NewUseCase(appointmentRepository, salon, log)
	moderateBookingUseCase := moderateBookingUC.NewUseCase(
		appointmentRepository,
		txMgr,
		telegramNotifier,
		emailNotifier,
		metricsCollector,
		notifyTimeout,
		log,
	)

	// Сессии администратора
	adminAuth := middleware.NewAdminAuth(cfg.Admin.JWTSecret, time.Duration(cfg.Admin.SessionTTL)*time.Minute)
	if cfg.Admin.PasswordHash == "" {
		log.Warn("Admin password hash is not configured, admin login is disabled")
	}

	// Инициализируем handlers
	health := healthHandler.NewHandler(wrappedDB, log)
	getServices := getServicesHandler.NewHandler(salonSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAvailableStylists := getAvailableStylistsHandler.NewHandler(getAvailableStylistsUseCase, log)
	getBookingStatus := getBookingStatusHandler.NewHandler(appointmentsSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	adminLogin := adminLoginHandler.NewHandler(cfg.Admin.PasswordHash, adminAuth, cfg.Admin.SecureCookie, log)
	adminLogout := adminLogoutHandler.NewHandler(cfg.Admin.SecureCookie, log)
	getAppointments := getAppointmentsHandler.NewHandler(appointmentsSvc, log)
	moderateBooking := moderateBookingHandler.NewHandler(moderateBookingUseCase, log)
	updateClientName := updateClientNameHandler.NewHandler(appointmentsSvc, log)
	blockPhone := blockPhoneHandler.NewHandler(blocklistSvc, log)
	unblockPhone := unblockPhoneHandler.NewHandler(blocklistSvc, log)
	getBlockedPhones := getBlockedPhonesHandler.NewHandler(blocklistSvc, log)

	// Rate limit записи через Redis (если включен)
	var rdb *redis.Client
	bookHandler := http.Handler(http.HandlerFunc(createBooking.Handle))
	if cfg.Redis.Enabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is unavailable (%s), rate limiter will fail open: %v", cfg.Redis.Addr, err)
		}
		cancelPing()

		limiter := middleware.NewRedisRateLimiter(
			rdb,
			cfg.Redis.BookingLimit,
			time.Duration(cfg.Redis.BookingWindow)*time.Second,
			cfg.Redis.RateLimitPrefix,
			cfg.Redis.TrustForwardedFor,
			log,
		)
		bookHandler = limiter.Middleware(bookHandler)
		log.Info("Booking rate limit enabled: %d requests per %ds", cfg.Redis.BookingLimit, cfg.Redis.BookingWindow)
	}

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Прайс, рабочая сетка и мастера
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)

	// Свободные слоты на дату
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Свободные мастера на дату и время
	api.HandleFunc("/available-stylists", getAvailableStylists.Handle).Methods(http.MethodGet)

	// Статус заявки по коду подтверждения
	api.HandleFunc("/status/{code}", getBookingStatus.Handle).Methods(http.MethodGet)

	// Создание заявки
	api.Handle("/book", bookHandler).Methods(http.MethodPost)

	// Вход и выход администратора
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)
	api.HandleFunc("/admin/logout", adminLogout.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют сессию администратора)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(adminAuth.Middleware)

	// --- Заявки ---
	admin.HandleFunc("/appointments", getAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}", updateClientName.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/action", moderateBooking.Handle).Methods(http.MethodPost)

	// --- Чёрный список ---
	admin.HandleFunc("/block-phone", blockPhone.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/unblock-phone", unblockPhone.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/blocked-phones", getBlockedPhones.Handle).Methods(http.MethodGet)

	// CORS и восстановление после panic
	handler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.Server.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization", middleware.RequestIDHeader}),
		gorillaHandlers.AllowCredentials(),
	)(r)
	handler = gorillaHandlers.RecoveryHandler(gorillaHandlers.PrintRecoveryStack(true))(handler)

	// Воркер напоминаний (если включен)
	workerCtx, stopWorker := context.WithCancel(context.Background())
	workerDone := make(chan struct{})
	if cfg.Reminders.Enabled {
		worker := reminders.NewWorker(
			appointmentRepository,
			emailNotifier,
			time.Duration(cfg.Reminders.Interval)*time.Second,
			log,
		)
		go func() {
			defer close(workerDone)
			worker.Run(workerCtx)
		}()
	} else {
		close(workerDone)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

	stopWorker()
	<-workerDone

	// Дожидаемся отправки уведомлений по уже созданным заявкам
	if err := dispatcher.Wait(shutdownCtx); err != nil {
		log.Warn("Pending notifications were not delivered before shutdown: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}
