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

	cancelBookingHandler "github.com/tritoncc/booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/tritoncc/booking-service/internal/api/handlers/create_booking"
	getAvailableDatesHandler "github.com/tritoncc/booking-service/internal/api/handlers/get_available_dates"
	getAvailableSlotsHandler "github.com/tritoncc/booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/tritoncc/booking-service/internal/api/handlers/get_booking"
	getBusinessHoursHandler "github.com/tritoncc/booking-service/internal/api/handlers/get_business_hours"
	getDailyScheduleHandler "github.com/tritoncc/booking-service/internal/api/handlers/get_daily_schedule"
	"github.com/tritoncc/booking-service/internal/api/middleware"
	"github.com/tritoncc/booking-service/internal/clock"
	"github.com/tritoncc/booking-service/internal/config"
	bookingRepo "github.com/tritoncc/booking-service/internal/infra/storage/booking"
	notifierClient "github.com/tritoncc/booking-service/internal/integrations/notifier"
	bookingsService "github.com/tritoncc/booking-service/internal/service/bookings"
	createBookingUC "github.com/tritoncc/booking-service/internal/usecase/create_booking"
	getAvailableDatesUC "github.com/tritoncc/booking-service/internal/usecase/get_available_dates"
	getAvailableSlotsUC "github.com/tritoncc/booking-service/internal/usecase/get_available_slots"
	"github.com/tritoncc/booking-service/pkg/dbmetrics"
	"github.com/tritoncc/booking-service/pkg/logger"
	"github.com/tritoncc/booking-service/pkg/metrics"
	"github.com/tritoncc/booking-service/pkg/simpletxmanager"
	"github.com/tritoncc/booking-service/pkg/txmanager"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Build the business calendar (already validated during config load)
	calendar, err := cfg.Business.ToCalendar()
	if err != nil {
		log.Fatal("Failed to build business calendar: %v", err)
	}
	businessClock := clock.NewBusinessClock(calendar.Location)
	log.Info("Business calendar loaded (timezone=%s, slot=%dm, buffer=%dm, notice=%dm, lookahead=%dd)",
		calendar.Location, calendar.SlotDurationMinutes, calendar.BufferMinutes,
		calendar.MinNoticeMinutes, calendar.LookAheadDays)

	// Initialize metrics (if enabled)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Connect to the database
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Configure the connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Verify connectivity
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Initialize the notification publisher
	type Publisher interface {
		PublishBestEffort(ctx context.Context, event *notifierClient.BookingEvent)
	}
	var publisher Publisher
	if cfg.Notifier.Enabled {
		publisher = notifierClient.NewClient(
			cfg.Notifier.URL,
			time.Duration(cfg.Notifier.Timeout)*time.Second,
			log,
		)
		log.Info("Notification gateway client initialized (url=%s, timeout=%ds)",
			cfg.Notifier.URL, cfg.Notifier.Timeout)
	} else {
		publisher = notifierClient.NewNoop(log)
		log.Info("Notification gateway disabled")
	}

	// Initialize repositories (with or without the metrics wrapper)
	var bookingRepository *bookingRepo.Repository

	// Transaction manager interface shared by both implementations
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

	// Initialize use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		calendar,
		businessClock,
		log,
	)

	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(
		getAvailableSlotsUseCase,
		calendar,
		businessClock,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		getAvailableSlotsUseCase,
		publisher,
		txMgr,
		log,
	)

	// Initialize services
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		getAvailableSlotsUseCase,
		publisher,
		businessClock,
		log,
	)

	// Initialize handlers
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, calendar.LookAheadDays, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getDailySchedule := getDailyScheduleHandler.NewHandler(bookingSvc, log)
	getBusinessHours := getBusinessHoursHandler.NewHandler(calendar)

	// Configure the router
	r := mux.NewRouter()

	// Metrics middleware and endpoint (if enabled)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (customer-facing, no authentication)
	// ============================================================

	// Dates with at least one bookable slot
	api.HandleFunc("/availability/dates", getAvailableDates.Handle).Methods(http.MethodGet)

	// Bookable slots for a single date
	api.HandleFunc("/availability/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Confirm a booking
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Published weekly schedule
	api.HandleFunc("/schedule/business-hours", getBusinessHours.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (require X-Staff-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.StaffAuth)

	// Booking lookup by reference
	protected.HandleFunc("/bookings/{reference}", getBooking.Handle).Methods(http.MethodGet)

	// Booking cancellation
	protected.HandleFunc("/bookings/{reference}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Daily schedule for staff
	protected.HandleFunc("/schedule/daily", getDailySchedule.Handle).Methods(http.MethodGet)

	// Create the HTTP server
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

	// Wait for a termination signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Stop connection pool metrics collection
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

	log.Info("Server stopped")
}
