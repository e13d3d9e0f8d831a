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

	createReservationHandler "github.com/m04kA/SMC-ReservationsService/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/m04kA/SMC-ReservationsService/internal/api/handlers/delete_reservation"
	getReportHandler "github.com/m04kA/SMC-ReservationsService/internal/api/handlers/get_report"
	getReservationHandler "github.com/m04kA/SMC-ReservationsService/internal/api/handlers/get_reservation"
	getReservationsHandler "github.com/m04kA/SMC-ReservationsService/internal/api/handlers/get_reservations"
	getStatisticsHandler "github.com/m04kA/SMC-ReservationsService/internal/api/handlers/get_statistics"
	updateReservationHandler "github.com/m04kA/SMC-ReservationsService/internal/api/handlers/update_reservation"
	"github.com/m04kA/SMC-ReservationsService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationsService/internal/config"
	reservationRepo "github.com/m04kA/SMC-ReservationsService/internal/infra/storage/reservation"
	reservationServicesRepo "github.com/m04kA/SMC-ReservationsService/internal/infra/storage/reservationservices"
	"github.com/m04kA/SMC-ReservationsService/internal/notify"
	"github.com/m04kA/SMC-ReservationsService/internal/report"
	reservationsService "github.com/m04kA/SMC-ReservationsService/internal/service/reservations"
	createReservationUC "github.com/m04kA/SMC-ReservationsService/internal/usecase/create_reservation"
	updateReservationUC "github.com/m04kA/SMC-ReservationsService/internal/usecase/update_reservation"
	"github.com/m04kA/SMC-ReservationsService/pkg/logger"
	"github.com/m04kA/SMC-ReservationsService/pkg/metrics"
	"github.com/m04kA/SMC-ReservationsService/pkg/txmanager"
)

const dbStatsInterval = 15 * time.Second

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

	log.Info("Starting SMC-ReservationsService...")
	log.Info("Configuration loaded from config.toml")

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

	if cfg.Metrics.Enabled {
		go metricsCollector.CollectDBStats(db, dbStatsInterval, stopMetricsCh)
		log.Info("Database pool metrics collection started")
	}

	// Инициализируем репозитории и менеджер транзакций
	reservationRepository := reservationRepo.NewRepository(db)
	serviceLinkRepository := reservationServicesRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем диспетчер уведомлений
	sender := notify.NewSMTPSender(cfg.SMTP.Addr(), cfg.SMTP.From, cfg.SMTP.User, cfg.SMTP.Password)

	var notifyMetrics notify.Metrics
	if cfg.Metrics.Enabled {
		notifyMetrics = metricsCollector
	}

	dispatcher, err := notify.NewDispatcher(
		sender,
		cfg.Notifications.TemplatesDir,
		cfg.Notifications.QueueSize,
		log,
		notifyMetrics,
	)
	if err != nil {
		log.Fatal("Failed to initialize notification dispatcher: %v", err)
	}
	dispatcher.Start()
	log.Info("Notification dispatcher started (queue_size=%d, templates=%s)",
		cfg.Notifications.QueueSize, cfg.Notifications.TemplatesDir)

	// Инициализируем генератор отчетов
	reportGenerator := report.NewGenerator(cfg.Reports.OutputDir)

	// Инициализируем сервис
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		serviceLinkRepository,
		reportGenerator,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		serviceLinkRepository,
		dispatcher,
		txMgr,
		log,
	)
	updateReservationUseCase := updateReservationUC.NewUseCase(
		reservationRepository,
		serviceLinkRepository,
		dispatcher,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, log)
	getReservations := getReservationsHandler.NewHandler(reservationsSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)
	getReport := getReportHandler.NewHandler(reservationsSvc, log)
	getStatistics := getStatisticsHandler.NewHandler(reservationsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Все маршруты требуют заголовков X-User-ID / X-User-Role
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Резервации ---
	// Фиксированные пути регистрируются раньше пути с параметром,
	// иначе "informe" матчится как {reserva_id}
	protected.HandleFunc("/reservas/informe", getReport.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservas/estadisticas", getStatistics.Handle).Methods(http.MethodGet)

	protected.HandleFunc("/reservas", getReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservas", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservas/{reserva_id}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservas/{reserva_id}", updateReservation.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/reservas/{reserva_id}", deleteReservation.Handle).Methods(http.MethodDelete)

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

	// Дожидаемся отправки уведомлений, оставшихся в очереди
	dispatcher.Close()
	log.Info("Notification dispatcher drained")

	log.Info("Server stopped gracefully")
}
