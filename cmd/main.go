package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	askChatbotHandler "github.com/m04kA/SPAuto-BookingService/internal/api/handlers/ask_chatbot"
	cancelBookingHandler "github.com/m04kA/SPAuto-BookingService/internal/api/handlers/cancel_booking"
	clearChatHandler "github.com/m04kA/SPAuto-BookingService/internal/api/handlers/clear_chat"
	createBookingHandler "github.com/m04kA/SPAuto-BookingService/internal/api/handlers/create_booking"
	createQuestionHandler "github.com/m04kA/SPAuto-BookingService/internal/api/handlers/create_chatbot_question"
	createServiceHandler "github.com/m04kA/SPAuto-BookingService/internal/api/handlers/create_service"
	deleteQuestionHandler "github.com/m04kA/SPAuto-BookingService/internal/api/handlers/delete_chatbot_question"
	deleteServiceHandler "github.com/m04kA/SPAuto-BookingService/internal/api/handlers/delete_service"
	exportBookingsHandler "github.com/m04kA/SPAuto-BookingService/internal/api/handlers/export_bookings"
	generateSlotsHandler "github.com/m04kA/SPAuto-BookingService/internal/api/handlers/generate_slots"
	getAvailableSlotsHandler "github.com/m04kA/SPAuto-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SPAuto-BookingService/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/m04kA/SPAuto-BookingService/internal/api/handlers/get_calendar"
	getChatMessagesHandler "github.com/m04kA/SPAuto-BookingService/internal/api/handlers/get_chat_messages"
	getDashboardHandler "github.com/m04kA/SPAuto-BookingService/internal/api/handlers/get_dashboard"
	getHoursHandler "github.com/m04kA/SPAuto-BookingService/internal/api/handlers/get_hours"
	getServiceHandler "github.com/m04kA/SPAuto-BookingService/internal/api/handlers/get_service"
	getShopHandler "github.com/m04kA/SPAuto-BookingService/internal/api/handlers/get_shop"
	getSlotBookingHandler "github.com/m04kA/SPAuto-BookingService/internal/api/handlers/get_slot_booking"
	getTimeSlotsHandler "github.com/m04kA/SPAuto-BookingService/internal/api/handlers/get_time_slots"
	listBookingsHandler "github.com/m04kA/SPAuto-BookingService/internal/api/handlers/list_bookings"
	listQuestionsHandler "github.com/m04kA/SPAuto-BookingService/internal/api/handlers/list_chatbot_questions"
	listServicesHandler "github.com/m04kA/SPAuto-BookingService/internal/api/handlers/list_services"
	loginHandler "github.com/m04kA/SPAuto-BookingService/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/SPAuto-BookingService/internal/api/handlers/logout"
	meHandler "github.com/m04kA/SPAuto-BookingService/internal/api/handlers/me"
	updateStatusHandler "github.com/m04kA/SPAuto-BookingService/internal/api/handlers/update_booking_status"
	updateQuestionHandler "github.com/m04kA/SPAuto-BookingService/internal/api/handlers/update_chatbot_question"
	updateHoursHandler "github.com/m04kA/SPAuto-BookingService/internal/api/handlers/update_hours"
	updateServiceHandler "github.com/m04kA/SPAuto-BookingService/internal/api/handlers/update_service"
	updateShopHandler "github.com/m04kA/SPAuto-BookingService/internal/api/handlers/update_shop"
	"github.com/m04kA/SPAuto-BookingService/internal/api/middleware"
	"github.com/m04kA/SPAuto-BookingService/internal/config"
	"github.com/m04kA/SPAuto-BookingService/internal/infra/kvstore"
	bookingRepo "github.com/m04kA/SPAuto-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SPAuto-BookingService/internal/infra/storage/catalog"
	chatbotRepo "github.com/m04kA/SPAuto-BookingService/internal/infra/storage/chatbot"
	sessionRepo "github.com/m04kA/SPAuto-BookingService/internal/infra/storage/session"
	"github.com/m04kA/SPAuto-BookingService/internal/seed"
	authService "github.com/m04kA/SPAuto-BookingService/internal/service/auth"
	bookingsService "github.com/m04kA/SPAuto-BookingService/internal/service/bookings"
	calendarService "github.com/m04kA/SPAuto-BookingService/internal/service/calendar"
	catalogService "github.com/m04kA/SPAuto-BookingService/internal/service/catalog"
	chatbotService "github.com/m04kA/SPAuto-BookingService/internal/service/chatbot"
	slotsService "github.com/m04kA/SPAuto-BookingService/internal/service/slots"
	createBookingUC "github.com/m04kA/SPAuto-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SPAuto-BookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SPAuto-BookingService/pkg/logger"
	"github.com/m04kA/SPAuto-BookingService/pkg/metrics"
	"github.com/m04kA/SPAuto-BookingService/pkg/sqlbuilder"
	"github.com/m04kA/SPAuto-BookingService/pkg/types"
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

	log.Info("Starting SPAuto-BookingService...")
	log.Info("Configuration loaded (storage=%s)", cfg.Storage.Backend)

	ctx := context.Background()

	// Метрики собираются всегда, endpoint публикуется только если включен
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metricsCollector := metrics.New(cfg.Metrics.ServiceName, registry)

	// Подключаем хранилище
	rawStore, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to open %s storage: %v", cfg.Storage.Backend, err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Error("Failed to close storage: %v", err)
		}
	}()
	store := kvstore.NewInstrumented(rawStore, cfg.Storage.Backend, metricsCollector)

	// Загружаем состояние; отсутствующие ключи означают первый запуск
	fixture, err := seed.Default()
	if err != nil {
		log.Fatal("Failed to load seed fixture: %v", err)
	}

	catalogRepository := catalogRepo.NewRepository(store)
	if err := catalogRepository.Load(ctx, catalogRepo.Snapshot{
		Services: fixture.Services,
		Hours:    fixture.Hours,
		Profile:  fixture.Shop,
	}); err != nil {
		log.Fatal("Failed to load catalog: %v", err)
	}

	bookingRepository := bookingRepo.NewRepository(store)
	slotsFound, err := bookingRepository.Load(ctx)
	if err != nil {
		log.Fatal("Failed to load booking ledger: %v", err)
	}

	chatbotRepository := chatbotRepo.NewRepository(store)
	if err := chatbotRepository.Load(ctx, fixture.Questions); err != nil {
		log.Fatal("Failed to load chatbot data: %v", err)
	}

	sessionRepository := sessionRepo.NewRepository(store)
	if err := sessionRepository.Load(ctx); err != nil {
		log.Fatal("Failed to load sessions: %v", err)
	}

	// Инициализируем сервисы
	closedWeekday, err := cfg.Bootstrap.Weekday()
	if err != nil {
		log.Fatal("Invalid bootstrap config: %v", err)
	}

	catalogSvc := catalogService.NewService(catalogRepository, log)
	slotsSvc := slotsService.NewService(
		bookingRepository,
		catalogSvc,
		metricsCollector,
		slotsService.BootstrapOptions{
			Days:          cfg.Bootstrap.Days,
			OpenTime:      types.TimeString(cfg.Bootstrap.OpenTime),
			CloseTime:     types.TimeString(cfg.Bootstrap.CloseTime),
			Interval:      cfg.Bootstrap.IntervalMinutes,
			ClosedWeekday: closedWeekday,
		},
		log,
	)
	bookingSvc := bookingsService.NewService(bookingRepository, catalogSvc, metricsCollector, log)
	calendarSvc := calendarService.NewService(bookingRepository, catalogSvc, cfg.Calendar.WindowDays, log)
	chatbotSvc := chatbotService.NewService(
		chatbotRepository,
		metricsCollector,
		time.Duration(cfg.Chatbot.ReplyDelayMs)*time.Millisecond,
		log,
	)
	authSvc := authService.NewService(
		authService.NewStaticCredentials(cfg.Auth.AdminUsername, cfg.Auth.AdminPasswordHash),
		sessionRepository,
		metricsCollector,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
		log,
	)

	// Первый запуск: расписание пустое, заполняем окно слотов
	if !slotsFound {
		created, err := slotsSvc.Bootstrap(ctx)
		if err != nil {
			log.Fatal("Failed to bootstrap slots: %v", err)
		}
		log.Info("Slots bootstrapped: created=%d, days=%d", created, cfg.Bootstrap.Days)
	}

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(catalogSvc, bookingSvc, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingRepository, log)

	// Инициализируем handlers
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getService := getServiceHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)
	getHours := getHoursHandler.NewHandler(catalogSvc, log)
	updateHours := updateHoursHandler.NewHandler(catalogSvc, log)
	getShop := getShopHandler.NewHandler(catalogSvc, log)
	updateShop := updateShopHandler.NewHandler(catalogSvc, log)

	generateSlots := generateSlotsHandler.NewHandler(slotsSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(calendarSvc, log)
	getTimeSlots := getTimeSlotsHandler.NewHandler(calendarSvc, log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	exportBookings := exportBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateStatus := updateStatusHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getSlotBooking := getSlotBookingHandler.NewHandler(bookingSvc, log)
	getDashboard := getDashboardHandler.NewHandler(bookingSvc, log)

	askChatbot := askChatbotHandler.NewHandler(chatbotSvc, log)
	getChatMessages := getChatMessagesHandler.NewHandler(chatbotSvc, log)
	clearChat := clearChatHandler.NewHandler(chatbotSvc, log)
	listQuestions := listQuestionsHandler.NewHandler(chatbotSvc, log)
	createQuestion := createQuestionHandler.NewHandler(chatbotSvc, log)
	updateQuestion := updateQuestionHandler.NewHandler(chatbotSvc, log)
	deleteQuestion := deleteQuestionHandler.NewHandler(chatbotSvc, log)

	login := loginHandler.NewHandler(authSvc, log)
	logout := logoutHandler.NewHandler(authSvc, log)
	me := meHandler.NewHandler(log)

	adminAuth := middleware.AdminAuth(authSvc, log)

	// Ограничение частоты для публичных POST (логин, бронирование, чат-бот)
	limit := func(h http.HandlerFunc) http.Handler { return h }
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, log)
		limit = func(h http.HandlerFunc) http.Handler { return limiter.Limit(h) }
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.MetricsMiddleware(metricsCollector))

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// --- Каталог и мастерская ---
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", getService.Handle).Methods(http.MethodGet)
	api.HandleFunc("/hours", getHours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/shop", getShop.Handle).Methods(http.MethodGet)

	// --- Доступность ---
	api.HandleFunc("/services/{serviceId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}/calendar", getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}/time-slots", getTimeSlots.Handle).Methods(http.MethodGet)

	// --- Бронирование ---
	api.Handle("/bookings", limit(createBooking.Handle)).Methods(http.MethodPost)

	// --- Чат-бот ---
	api.HandleFunc("/chatbot/questions", listQuestions.Handle).Methods(http.MethodGet)
	api.Handle("/chatbot/conversations/{conversationId}/messages", limit(askChatbot.Handle)).Methods(http.MethodPost)
	api.HandleFunc("/chatbot/conversations/{conversationId}/messages", getChatMessages.Handle).Methods(http.MethodGet)
	api.HandleFunc("/chatbot/conversations/{conversationId}/messages", clearChat.Handle).Methods(http.MethodDelete)

	// --- Аутентификация ---
	api.Handle("/auth/login", limit(login.Handle)).Methods(http.MethodPost)
	api.Handle("/auth/logout", adminAuth(http.HandlerFunc(logout.Handle))).Methods(http.MethodPost)
	api.Handle("/auth/me", adminAuth(http.HandlerFunc(me.Handle))).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (Bearer token администратора)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(adminAuth)

	// --- Каталог ---
	admin.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/hours", updateHours.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/shop", updateShop.Handle).Methods(http.MethodPut)

	// --- Слоты ---
	admin.HandleFunc("/slots", generateSlots.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/slots/booking", getSlotBooking.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// export регистрируется раньше {bookingId}
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/export", exportBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)

	// --- Чат-бот ---
	admin.HandleFunc("/chatbot/questions", createQuestion.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/chatbot/questions/{questionId}", updateQuestion.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/chatbot/questions/{questionId}", deleteQuestion.Handle).Methods(http.MethodDelete)

	// CORS для SPA-клиента
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: cfg.CORS.AllowCredentials,
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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

// openStore открывает key-value хранилище выбранного бэкенда.
// Возвращаемая функция закрывает соединение.
func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (kvstore.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Storage.Backend {
	case config.BackendMemory:
		log.Warn("Using in-memory storage, state is lost on restart")
		return kvstore.NewMemoryStore(), noop, nil

	case config.BackendSQLite:
		if dir := filepath.Dir(cfg.Storage.SQLite.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("create sqlite dir: %w", err)
			}
		}
		db, err := sql.Open(string(sqlbuilder.SQLite), cfg.Storage.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		// SQLite допускает одного писателя
		db.SetMaxOpenConns(1)

		store, err := newSQLStore(ctx, db, sqlbuilder.SQLite)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		log.Info("Successfully opened sqlite storage (path=%s)", cfg.Storage.SQLite.Path)
		return store, db.Close, nil

	case config.BackendPostgres:
		pg := cfg.Storage.Postgres
		db, err := sql.Open(string(sqlbuilder.Postgres), pg.DSN())
		if err != nil {
			return nil, nil, err
		}

		// Настраиваем connection pool
		db.SetMaxOpenConns(pg.MaxOpenConns)
		db.SetMaxIdleConns(pg.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(pg.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("ping postgres: %w", err)
		}

		store, err := newSQLStore(ctx, db, sqlbuilder.Postgres)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		log.Info("Successfully connected to postgres (host=%s, port=%d, db=%s)", pg.Host, pg.Port, pg.DBName)
		return store, db.Close, nil

	case config.BackendRedis:
		rc := cfg.Storage.Redis
		client := redis.NewClient(&redis.Options{
			Addr:     rc.Addr,
			Password: rc.Password,
			DB:       rc.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		log.Info("Successfully connected to redis (addr=%s, db=%d)", rc.Addr, rc.DB)
		return kvstore.NewRedisStore(client, rc.KeyPrefix), client.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func newSQLStore(ctx context.Context, db *sql.DB, dialect sqlbuilder.Dialect) (*kvstore.SQLStore, error) {
	builder, err := sqlbuilder.New(dialect)
	if err != nil {
		return nil, err
	}
	return kvstore.NewSQLStore(ctx, db, builder)
}
