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
	"github.com/redis/go-redis/v9"

	addCartItemHandler "github.com/m04kA/AutoSchool-BookingService/internal/api/handlers/add_cart_item"
	cancelBookingHandler "github.com/m04kA/AutoSchool-BookingService/internal/api/handlers/cancel_booking"
	checkoutHandler "github.com/m04kA/AutoSchool-BookingService/internal/api/handlers/checkout"
	completeBookingHandler "github.com/m04kA/AutoSchool-BookingService/internal/api/handlers/complete_booking"
	createInstructorHandler "github.com/m04kA/AutoSchool-BookingService/internal/api/handlers/create_instructor"
	createPaymentIntentHandler "github.com/m04kA/AutoSchool-BookingService/internal/api/handlers/create_payment_intent"
	deleteInstructorHandler "github.com/m04kA/AutoSchool-BookingService/internal/api/handlers/delete_instructor"
	deleteTimeslotHandler "github.com/m04kA/AutoSchool-BookingService/internal/api/handlers/delete_timeslot"
	getCartHandler "github.com/m04kA/AutoSchool-BookingService/internal/api/handlers/get_cart"
	getInstructorBookingsHandler "github.com/m04kA/AutoSchool-BookingService/internal/api/handlers/get_instructor_bookings"
	getInstructorSlotsHandler "github.com/m04kA/AutoSchool-BookingService/internal/api/handlers/get_instructor_slots"
	getInstructorsHandler "github.com/m04kA/AutoSchool-BookingService/internal/api/handlers/get_instructors"
	getTimeslotsHandler "github.com/m04kA/AutoSchool-BookingService/internal/api/handlers/get_timeslots"
	getUserBookingsHandler "github.com/m04kA/AutoSchool-BookingService/internal/api/handlers/get_user_bookings"
	paymentWebhookHandler "github.com/m04kA/AutoSchool-BookingService/internal/api/handlers/payment_webhook"
	publishTimeslotsHandler "github.com/m04kA/AutoSchool-BookingService/internal/api/handlers/publish_timeslots"
	removeCartEntryHandler "github.com/m04kA/AutoSchool-BookingService/internal/api/handlers/remove_cart_entry"
	resetCartHandler "github.com/m04kA/AutoSchool-BookingService/internal/api/handlers/reset_cart"
	updateInstructorCostsHandler "github.com/m04kA/AutoSchool-BookingService/internal/api/handlers/update_instructor_costs"
	"github.com/m04kA/AutoSchool-BookingService/internal/api/middleware"
	"github.com/m04kA/AutoSchool-BookingService/internal/config"
	"github.com/m04kA/AutoSchool-BookingService/internal/infra/cartstore"
	bookingRepo "github.com/m04kA/AutoSchool-BookingService/internal/infra/storage/booking"
	instructorRepo "github.com/m04kA/AutoSchool-BookingService/internal/infra/storage/instructor"
	timeslotRepo "github.com/m04kA/AutoSchool-BookingService/internal/infra/storage/timeslot"
	notifyServiceClient "github.com/m04kA/AutoSchool-BookingService/internal/integrations/notifyservice"
	paymentServiceClient "github.com/m04kA/AutoSchool-BookingService/internal/integrations/paymentservice"
	bookingsService "github.com/m04kA/AutoSchool-BookingService/internal/service/bookings"
	cartService "github.com/m04kA/AutoSchool-BookingService/internal/service/cart"
	instructorsService "github.com/m04kA/AutoSchool-BookingService/internal/service/instructors"
	timeslotsService "github.com/m04kA/AutoSchool-BookingService/internal/service/timeslots"
	checkoutUC "github.com/m04kA/AutoSchool-BookingService/internal/usecase/checkout"
	confirmPaymentUC "github.com/m04kA/AutoSchool-BookingService/internal/usecase/confirm_payment"
	createPaymentIntentUC "github.com/m04kA/AutoSchool-BookingService/internal/usecase/create_payment_intent"
	getInstructorSlotsUC "github.com/m04kA/AutoSchool-BookingService/internal/usecase/get_instructor_slots"
	"github.com/m04kA/AutoSchool-BookingService/pkg/dbmetrics"
	"github.com/m04kA/AutoSchool-BookingService/pkg/logger"
	"github.com/m04kA/AutoSchool-BookingService/pkg/metrics"
	"github.com/m04kA/AutoSchool-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/AutoSchool-BookingService/pkg/txmanager"
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

	log.Info("Starting AutoSchool-BookingService...")
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

	// Подключаемся к Redis (хранилище корзины)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		pingCancel()
		log.Fatal("Failed to ping redis: %v", err)
	}
	pingCancel()
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Инициализируем интеграционных клиентов
	paymentClient := paymentServiceClient.NewClient(
		cfg.PaymentService.URL,
		cfg.PaymentService.APIKey,
		time.Duration(cfg.PaymentService.Timeout)*time.Second,
		log,
	)
	notifyClient := notifyServiceClient.NewClient(
		cfg.NotifyService.URL,
		cfg.NotifyService.APIKey,
		time.Duration(cfg.NotifyService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (PaymentService=%s timeout=%ds, NotifyService=%s timeout=%ds)",
		cfg.PaymentService.URL, cfg.PaymentService.Timeout, cfg.NotifyService.URL, cfg.NotifyService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		timeslotRepository   *timeslotRepo.Repository
		bookingRepository    *bookingRepo.Repository
		instructorRepository *instructorRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		timeslotRepository = timeslotRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		instructorRepository = instructorRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		timeslotRepository = timeslotRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		instructorRepository = instructorRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Хранилище корзины поверх Redis
	cartStorage := cartstore.NewStore(redisClient, time.Duration(cfg.Redis.CartTTL)*time.Second)

	// Инициализируем сервисы
	cartSvc := cartService.NewService(cartStorage, log)
	timeslotsSvc := timeslotsService.NewService(timeslotRepository, instructorRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, instructorRepository, log)
	instructorsSvc := instructorsService.NewService(instructorRepository, timeslotRepository, log)

	// Инициализируем use cases
	checkoutUseCase := checkoutUC.NewUseCase(
		timeslotRepository,
		bookingRepository,
		instructorRepository,
		cartSvc,
		notifyClient,
		txMgr,
		log,
	)
	getInstructorSlotsUseCase := getInstructorSlotsUC.NewUseCase(
		timeslotRepository,
		bookingRepository,
		instructorRepository,
		log,
	)
	createPaymentIntentUseCase := createPaymentIntentUC.NewUseCase(cartSvc, paymentClient, log)
	confirmPaymentUseCase := confirmPaymentUC.NewUseCase(bookingRepository, log)

	// Инициализируем handlers
	addCartItem := addCartItemHandler.NewHandler(cartSvc, log)
	getCart := getCartHandler.NewHandler(cartSvc, log)
	removeCartEntry := removeCartEntryHandler.NewHandler(cartSvc, log)
	resetCart := resetCartHandler.NewHandler(cartSvc, log)
	checkout := checkoutHandler.NewHandler(checkoutUseCase, cartSvc, log)
	createPaymentIntent := createPaymentIntentHandler.NewHandler(createPaymentIntentUseCase, log)
	paymentWebhook := paymentWebhookHandler.NewHandler(confirmPaymentUseCase, log)
	getInstructorSlots := getInstructorSlotsHandler.NewHandler(getInstructorSlotsUseCase, log)
	getInstructors := getInstructorsHandler.NewHandler(instructorRepository, log)
	createInstructor := createInstructorHandler.NewHandler(instructorsSvc, log)
	updateInstructorCosts := updateInstructorCostsHandler.NewHandler(instructorsSvc, log)
	deleteInstructor := deleteInstructorHandler.NewHandler(instructorsSvc, log)
	publishTimeslots := publishTimeslotsHandler.NewHandler(timeslotsSvc, log)
	getTimeslots := getTimeslotsHandler.NewHandler(timeslotsSvc, log)
	deleteTimeslot := deleteTimeslotHandler.NewHandler(timeslotsSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingsSvc, log)
	getInstructorBookings := getInstructorBookingsHandler.NewHandler(bookingsSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingsSvc, log)
	completeBooking := completeBookingHandler.NewHandler(bookingsSvc, log)

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

	// Витрина инструкторов
	api.HandleFunc("/instructors", getInstructors.Handle).Methods(http.MethodGet)

	// Эффективная доступность инструктора
	api.HandleFunc("/instructors/{instructorId}/slots", getInstructorSlots.Handle).Methods(http.MethodGet)

	// Вебхук платежного шлюза (подпись проверяет API-шлюз)
	api.HandleFunc("/payments/webhook", paymentWebhook.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Корзина ---
	protected.HandleFunc("/cart", getCart.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/cart", resetCart.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/cart/items", addCartItem.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/cart/items", removeCartEntry.Handle).Methods(http.MethodDelete)

	// --- Оформление и оплата ---
	protected.HandleFunc("/checkout", checkout.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/payments/intent", createPaymentIntent.Handle).Methods(http.MethodPost)

	// --- Управление профилями инструкторов (для администратора) ---
	protected.HandleFunc("/instructors", createInstructor.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/instructors/{id}/costs", updateInstructorCosts.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/instructors/{id}", deleteInstructor.Handle).Methods(http.MethodDelete)

	// --- Публикации интервалов (для инструкторов) ---
	protected.HandleFunc("/timeslots", publishTimeslots.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/timeslots", getTimeslots.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/timeslots/{id}", deleteTimeslot.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{id}/complete", completeBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/instructor/bookings", getInstructorBookings.Handle).Methods(http.MethodGet)

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
