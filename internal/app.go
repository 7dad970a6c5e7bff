package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"listing-portal/internal/adapters/backend_client"
	logger_adapter "listing-portal/internal/adapters/logger"
	rabbitmq_adapter "listing-portal/internal/adapters/rabbitmq"
	"listing-portal/internal/adapters/rest"
	session_adapter "listing-portal/internal/adapters/session"
	"listing-portal/internal/configs"
	"listing-portal/internal/core/port"
	"listing-portal/internal/core/usecase"
	fluentlogger "listing-portal/pkg/fluent_logger"
	"listing-portal/pkg/rabbitmq/rabbitmq_common"
	"listing-portal/pkg/rabbitmq/rabbitmq_producer"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// App - основная структура приложения
type App struct {
	server       *rest.Server
	logger       port.LoggerPort
	publisher    port.ActivityPublisherPort
	rabbitConn   *rabbitmq_common.ConnectionManager
	fluentClient *fluent.Fluent
}

// NewApp создает и связывает все компоненты портала.
func NewApp(envPath ...string) (*App, error) {
	appConfig, err := configs.LoadConfig(envPath...)
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// инициализация логгеров
	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		JSON:     appConfig.StdoutLogger.JSON,
		UseColor: true,
	})
	activeLoggers := []port.LoggerPort{stdoutLogger}

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
			Async:     true,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	baseLogger := logger_adapter.NewMultiLoggerAdapter(activeLoggers...).WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Debug("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// шина событий
	var (
		publisher  port.ActivityPublisherPort = rabbitmq_adapter.NoopActivityPublisher{}
		rabbitConn *rabbitmq_common.ConnectionManager
	)
	if appConfig.RabbitMQ.Enabled {
		amqpLogger := rabbitmq_adapter.NewPkgLogger(baseLogger.WithFields(port.Fields{"component": "rabbitmq"}))
		rabbitConn, err = rabbitmq_common.NewConnectionManager(appConfig.RabbitMQ.URL, amqpLogger)
		if err != nil {
			appLogger.Error("Failed to connect to RabbitMQ", err, nil)
			return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
		}

		producer, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
			ExchangeName:    appConfig.RabbitMQ.ActivityExchange,
			ExchangeType:    "topic",
			Durable:         true,
			DeclareExchange: true,
			Logger:          amqpLogger,
		}, rabbitConn)
		if err != nil {
			rabbitConn.Close()
			return nil, fmt.Errorf("failed to create activity producer: %w", err)
		}

		activityPublisher, err := rabbitmq_adapter.NewActivityPublisherAdapter(producer)
		if err != nil {
			rabbitConn.Close()
			return nil, err
		}
		publisher = activityPublisher
		appLogger.Debug("Activity publisher initialized", port.Fields{"exchange": appConfig.RabbitMQ.ActivityExchange})
	}

	// исходящие адаптеры
	backend := backend_client.NewListingBackendClient(appConfig.BackendBaseURL, &http.Client{})
	sessionStore, err := session_adapter.NewCookieStore(appConfig.Session.Secret, appConfig.Session.CookieSecure, appConfig.Session.TTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create session store: %w", err)
	}

	// use cases
	loadPendingUC := usecase.NewLoadPendingListingsUseCase(backend)
	approveUC := usecase.NewApproveListingUseCase(backend, loadPendingUC, publisher)
	rejectUC := usecase.NewRejectListingUseCase(backend, loadPendingUC, publisher)
	myPropertiesUC := usecase.NewLoadMyPropertiesUseCase(backend)
	statsUC := usecase.NewDashboardStatsUseCase(backend)
	profileUC := usecase.NewGetAgentProfileUseCase(backend)
	agentsUC := usecase.NewLoadAgentsUseCase(backend)
	createUC := usecase.NewCreatePropertyUseCase(backend, myPropertiesUC, statsUC, publisher)
	verifyUC := usecase.NewVerifySessionUseCase(backend)

	// входящий адаптер
	renderer, err := rest.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load page templates: %w", err)
	}
	pageConfig := rest.PageConfig{
		BackendBaseURL:      appConfig.BackendBaseURL,
		PlaceholderImageURL: appConfig.Pages.PlaceholderImageURL,
		ViewPropertyPath:    appConfig.Pages.ViewPropertyPath,
		LoginPath:           appConfig.Pages.LoginPath,
		UserLandingPath:     appConfig.Pages.UserLandingPath,
	}
	guard := rest.NewSessionGuard(sessionStore, renderer, pageConfig)
	router := rest.NewRouter(rest.Handlers{
		Admin: rest.NewAdminHandler(loadPendingUC, approveUC, rejectUC, renderer, pageConfig),
		Agent: rest.NewAgentHandler(myPropertiesUC, statsUC, profileUC, agentsUC, createUC, renderer, pageConfig),
		Auth:  rest.NewAuthHandler(sessionStore, guard, verifyUC, appConfig.CORSAllowedOrigins, pageConfig),
		Guard: guard,
	}, appConfig.CORSAllowedOrigins, baseLogger)

	appLogger.Debug("Backend client initialized", port.Fields{"target_url": appConfig.BackendBaseURL})

	return &App{
		server:       rest.NewServer(appConfig.Port, router, baseLogger),
		logger:       appLogger,
		publisher:    publisher,
		rabbitConn:   rabbitConn,
		fluentClient: fluentClient,
	}, nil
}

// Run запускает сервер и ждет сигнала остановки.
func (a *App) Run() error {
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- a.server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			a.shutdownClients()
			return err
		}
	case sig := <-quit:
		a.logger.Info("Portal is shutting down...", port.Fields{"signal": sig.String()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.server.Stop(ctx); err != nil {
		a.logger.Error("Portal shutdown failed", err, nil)
		a.shutdownClients()
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	a.logger.Info("Application shut down gracefully.", nil)
	a.shutdownClients()
	return nil
}

// shutdownClients закрывает шину и Fluent Bit. Fluent закрывается последним, чтобы успеть отправить логи.
func (a *App) shutdownClients() {
	if err := a.publisher.Close(); err != nil {
		a.logger.Error("Failed to close activity publisher", err, nil)
	}
	if a.rabbitConn != nil {
		if err := a.rabbitConn.Close(); err != nil {
			a.logger.Error("Failed to close RabbitMQ connection", err, nil)
		}
	}
	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
		}
	}
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
