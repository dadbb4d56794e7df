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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminLoginHandler "github.com/m04kA/MMC-AppointmentService/internal/api/handlers/admin_login"
	createAdminHandler "github.com/m04kA/MMC-AppointmentService/internal/api/handlers/create_admin"
	createBookingHandler "github.com/m04kA/MMC-AppointmentService/internal/api/handlers/create_booking"
	createBookingWithUserHandler "github.com/m04kA/MMC-AppointmentService/internal/api/handlers/create_booking_with_user"
	createUserHandler "github.com/m04kA/MMC-AppointmentService/internal/api/handlers/create_user"
	dashboardHandler "github.com/m04kA/MMC-AppointmentService/internal/api/handlers/dashboard"
	deleteAdminHandler "github.com/m04kA/MMC-AppointmentService/internal/api/handlers/delete_admin"
	getSlotsHandler "github.com/m04kA/MMC-AppointmentService/internal/api/handlers/get_slots"
	getUserHandler "github.com/m04kA/MMC-AppointmentService/internal/api/handlers/get_user"
	listAdminsHandler "github.com/m04kA/MMC-AppointmentService/internal/api/handlers/list_admins"
	notifyBookingHandler "github.com/m04kA/MMC-AppointmentService/internal/api/handlers/notify_booking"
	"github.com/m04kA/MMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/MMC-AppointmentService/internal/auth"
	"github.com/m04kA/MMC-AppointmentService/internal/config"
	adminRepo "github.com/m04kA/MMC-AppointmentService/internal/infra/storage/admin"
	bookingRepo "github.com/m04kA/MMC-AppointmentService/internal/infra/storage/booking"
	userRepo "github.com/m04kA/MMC-AppointmentService/internal/infra/storage/user"
	"github.com/m04kA/MMC-AppointmentService/internal/integrations/textlk"
	adminsService "github.com/m04kA/MMC-AppointmentService/internal/service/admins"
	dashboardService "github.com/m04kA/MMC-AppointmentService/internal/service/dashboard"
	notificationsService "github.com/m04kA/MMC-AppointmentService/internal/service/notifications"
	"github.com/m04kA/MMC-AppointmentService/internal/service/scheduling"
	usersService "github.com/m04kA/MMC-AppointmentService/internal/service/users"
	createBookingUC "github.com/m04kA/MMC-AppointmentService/internal/usecase/create_booking"
	createBookingWithUserUC "github.com/m04kA/MMC-AppointmentService/internal/usecase/create_booking_with_user"
	getSlotsUC "github.com/m04kA/MMC-AppointmentService/internal/usecase/get_slots"
	"github.com/m04kA/MMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/MMC-AppointmentService/pkg/logger"
	"github.com/m04kA/MMC-AppointmentService/pkg/metrics"
	"github.com/m04kA/MMC-AppointmentService/pkg/simpletxmanager"
	"github.com/m04kA/MMC-AppointmentService/pkg/txmanager"
	"github.com/m04kA/MMC-AppointmentService/pkg/types"
)

func main() {
	// Загружаем .env (если есть) и конфигурацию
	_ = godotenv.Load()

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

	log.Info("Starting MMC-AppointmentService...")
	log.Info("Configuration loaded from config.toml")

	// Собираем расписание сессий
	schedule, err := cfg.Schedule()
	if err != nil {
		log.Fatal("Failed to build schedule: %v", err)
	}
	openTime, err := types.NewTimeStringFromString(cfg.Booking.OpenTime)
	if err != nil {
		log.Fatal("Failed to parse booking.open_time: %v", err)
	}

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

	// Инициализируем SMS клиент Text.lk
	smsClient := textlk.NewClient(
		cfg.SMS.BaseURL,
		cfg.SMS.SenderID,
		cfg.SMS.APIToken,
		cfg.SMS.Mode == config.SMSModeSimulate,
		time.Duration(cfg.SMS.Timeout)*time.Second,
		log,
	)
	log.Info("Text.lk client initialized (mode=%s)", cfg.SMS.Mode)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		userRepository    *userRepo.Repository
		adminRepository   *adminRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		adminRepository = adminRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		adminRepository = adminRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	tokenManager := auth.NewTokenManager(
		cfg.Auth.Secret,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
	)

	slotValidator := scheduling.NewValidator(scheduling.Rules{
		OpenTime:            openTime,
		SlotDurationMinutes: cfg.Booking.SlotDurationMinutes,
		Schedule:            schedule,
	})
	allocator := scheduling.NewService(bookingRepository, log)

	usersSvc := usersService.NewService(userRepository, log)
	adminsSvc := adminsService.NewService(adminRepository, tokenManager, log)
	dashboardSvc := dashboardService.NewService(bookingRepository, schedule, log)
	notificationsSvc := notificationsService.NewService(bookingRepository, smsClient, log)

	// Создаем суперадмина из конфигурации, если его еще нет
	if err := adminsSvc.BootstrapSuperAdmin(context.Background(),
		cfg.Bootstrap.SuperAdminUsername, cfg.Bootstrap.SuperAdminPassword); err != nil {
		log.Fatal("Failed to bootstrap superadmin: %v", err)
	}

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		userRepository,
		slotValidator,
		allocator,
		txMgr,
		log,
	)
	createBookingWithUserUseCase := createBookingWithUserUC.NewUseCase(
		userRepository,
		slotValidator,
		allocator,
		txMgr,
		log,
	)
	getSlotsUseCase := getSlotsUC.NewUseCase(bookingRepository, log)

	// Инициализируем handlers
	createUser := createUserHandler.NewHandler(usersSvc, log)
	getUser := getUserHandler.NewHandler(usersSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	createBookingWithUser := createBookingWithUserHandler.NewHandler(createBookingWithUserUseCase, log)
	getSlots := getSlotsHandler.NewHandler(getSlotsUseCase, log)
	adminLogin := adminLoginHandler.NewHandler(adminsSvc, log)
	createAdmin := createAdminHandler.NewHandler(adminsSvc, log)
	listAdmins := listAdminsHandler.NewHandler(adminsSvc, log)
	deleteAdmin := deleteAdminHandler.NewHandler(adminsSvc, log)
	dashboard := dashboardHandler.NewHandler(dashboardSvc, log)
	notifyBooking := notifyBookingHandler.NewHandler(notificationsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Пользователи
	r.HandleFunc("/users/", createUser.Handle).Methods(http.MethodPost)
	r.HandleFunc("/users/{id}", getUser.Handle).Methods(http.MethodGet)

	// Бронирования
	r.HandleFunc("/bookings/", createBooking.Handle).Methods(http.MethodPost)
	r.HandleFunc("/bookings/create_with_user", createBookingWithUser.Handle).Methods(http.MethodPost)

	// Брони на дату
	r.HandleFunc("/slots/{date}", getSlots.Handle).Methods(http.MethodGet)

	// Вход администратора
	r.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := r.PathPrefix("/admin").Subrouter()
	protected.Use(middleware.Auth(tokenManager, log))

	// Доступно администраторам и суперадминам
	protected.HandleFunc("/dashboard-data", dashboard.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/notify/{booking_id}", notifyBooking.Handle).Methods(http.MethodPost)

	// Только для суперадминов
	superadmin := protected.PathPrefix("").Subrouter()
	superadmin.Use(middleware.RequireSuperAdmin(log))
	superadmin.HandleFunc("/create-admin", createAdmin.Handle).Methods(http.MethodPost)
	superadmin.HandleFunc("/list-admins", listAdmins.Handle).Methods(http.MethodGet)
	superadmin.HandleFunc("/delete-admin/{id}", deleteAdmin.Handle).Methods(http.MethodDelete)

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
