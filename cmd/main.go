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

	cancelReservationHandler "github.com/m04kA/GymSpace-BookingService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/m04kA/GymSpace-BookingService/internal/api/handlers/create_reservation"
	deleteUserReservationsHandler "github.com/m04kA/GymSpace-BookingService/internal/api/handlers/delete_user_reservations"
	eventsHandler "github.com/m04kA/GymSpace-BookingService/internal/api/handlers/events"
	getReservationsHandler "github.com/m04kA/GymSpace-BookingService/internal/api/handlers/get_reservations"
	getSessionStateHandler "github.com/m04kA/GymSpace-BookingService/internal/api/handlers/get_session_state"
	getSessionsHandler "github.com/m04kA/GymSpace-BookingService/internal/api/handlers/get_sessions"
	getUserReservationsHandler "github.com/m04kA/GymSpace-BookingService/internal/api/handlers/get_user_reservations"
	verifyAccountTokenHandler "github.com/m04kA/GymSpace-BookingService/internal/api/handlers/verify_account_token"
	"github.com/m04kA/GymSpace-BookingService/internal/api/middleware"
	"github.com/m04kA/GymSpace-BookingService/internal/config"
	"github.com/m04kA/GymSpace-BookingService/internal/domain"
	memoryStorage "github.com/m04kA/GymSpace-BookingService/internal/infra/storage/memory"
	postgresStorage "github.com/m04kA/GymSpace-BookingService/internal/infra/storage/postgres"
	authService "github.com/m04kA/GymSpace-BookingService/internal/service/auth"
	bookingsService "github.com/m04kA/GymSpace-BookingService/internal/service/bookings"
	scheduleService "github.com/m04kA/GymSpace-BookingService/internal/service/schedule"
	teamsService "github.com/m04kA/GymSpace-BookingService/internal/service/teams"
	getSessionStateUC "github.com/m04kA/GymSpace-BookingService/internal/usecase/get_session_state"
	getSessionsUC "github.com/m04kA/GymSpace-BookingService/internal/usecase/get_sessions"
	"github.com/m04kA/GymSpace-BookingService/pkg/logger"
	"github.com/m04kA/GymSpace-BookingService/pkg/metrics"
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

	log.Info("Starting GymSpace-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Каталог команд и еженедельное расписание
	teams := make([]domain.Team, 0, len(cfg.Teams))
	for _, team := range cfg.Teams {
		teams = append(teams, team.ToDomain())
	}
	teamsSvc := teamsService.NewService(teams)
	log.Info("Team catalog loaded: %d teams, %d schedule entries", len(cfg.Teams), len(cfg.Schedule))
	for _, team := range teamsSvc.All() {
		log.Debug("Team %s (%s): duration=%s, limits=%v", team.ID, team.Name, team.Duration, team.Limits)
	}

	generator := scheduleService.NewGenerator(cfg.WeeklySchedule())
	space := scheduleService.NewSpaceSchedule(generator, teamsSvc, cfg.Space.Size)
	resolver := scheduleService.NewResolver(teamsSvc, space)

	// Хранилище бронирований
	var storage bookingsService.BookingStorage
	switch cfg.Storage.Backend {
	case config.StoragePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		storage = postgresStorage.NewRepository(db, teamsSvc)

	default:
		storage = memoryStorage.NewStorage()
		log.Info("Using in-memory reservation storage")
	}

	// Сервис бронирований
	notifier := bookingsService.NewNotifier()
	bookingSvc := bookingsService.NewService(storage, teamsSvc, notifier, log)

	if cfg.Metrics.Enabled {
		bookingSvc.Subscribe(func() {
			metricsCollector.ObserveNotification()
		})
	}

	tokenVerifier := authService.NewTokenVerifier(cfg.Auth.AccountCreationTokenHash)

	// Инициализируем use cases
	getSessionsUseCase := getSessionsUC.NewUseCase(generator, resolver, bookingSvc, log)
	getSessionStateUseCase := getSessionStateUC.NewUseCase(resolver, bookingSvc, log)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(bookingSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(bookingSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(bookingSvc, log)
	deleteUserReservations := deleteUserReservationsHandler.NewHandler(bookingSvc, log)
	getSessions := getSessionsHandler.NewHandler(getSessionsUseCase, log)
	getSessionState := getSessionStateHandler.NewHandler(getSessionStateUseCase, log)
	getReservations := getReservationsHandler.NewHandler(bookingSvc, log)
	events := eventsHandler.NewHandler(bookingSvc, log)
	verifyAccountToken := verifyAccountTokenHandler.NewHandler(tokenVerifier, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Расписание сессий с вместимостью и текущей занятостью
	api.HandleFunc("/sessions", getSessions.Handle).Methods(http.MethodGet)

	// SSE-поток событий изменения бронирований
	api.HandleFunc("/events", events.Handle).Methods(http.MethodGet)

	// Проверка токена создания аккаунта
	api.HandleFunc("/account-tokens/verify", verifyAccountToken.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Бронирование сессии
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Отмена бронирования
	protected.HandleFunc("/reservations/cancel", cancelReservation.Handle).Methods(http.MethodPost)

	// Сводка бронирований по слотам (для тренерского обзора)
	protected.HandleFunc("/reservations", getReservations.Handle).Methods(http.MethodGet)

	// Состояние одной сессии для пользователя
	protected.HandleFunc("/sessions/{teamId}/state", getSessionState.Handle).Methods(http.MethodGet)

	// --- Бронирования пользователя ---
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/reservations", deleteUserReservations.Handle).Methods(http.MethodDelete)

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
