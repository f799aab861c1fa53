package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	blogapi "blogcore/internal/blog/adapters/http"
	"blogcore/internal/blog/adapters/postgres"
	adaptersvc "blogcore/internal/blog/adapters/services"
	"blogcore/internal/blog/app"
	"blogcore/internal/blog/config"
	"blogcore/internal/blog/db"
	"blogcore/internal/blog/domain/services"
	"blogcore/pkg/logger"
	"blogcore/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "BLOG_LOGGER_MODE"
	EnvLoggerLevel = "BLOG_LOGGER_LEVEL"
	EnvConfigPath  = "BLOG_CONFIG_PATH"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitDatabase         = "failed to initialize database"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "blog service started"
	LogServiceShutdownDone = "blog service shutdown complete"
	LogInitDatabase        = "initializing database"
	LogInitServices        = "initializing services"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
	LogStoppingHTTP        = "stopping HTTP server"
	LogClosingDatabase     = "closing database connection"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx, os.Getenv(EnvConfigPath))
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitDatabase)
		database, err := db.New(ctx, &cfg.Postgres)
		if err != nil {
			log.Error(ctx, ErrInitDatabase, zap.Error(err))
			exitCode = 1
			return
		}

		// Часовой пояс уже проверен в config.Load.
		loc, _ := cfg.Limits.Location()
		calendar := services.NewCalendar(loc, nil)
		limits := cfg.Limits.Limits()

		log.Info(ctx, LogInitServices)
		repoFactory := postgres.NewRepositoryFactory(database.Pool())
		serviceFactory := adaptersvc.NewServiceFactory(cfg.Password.Params())

		userRepo := repoFactory.UserRepository()
		blogRepo := repoFactory.BlogRepository()

		httpApp := blogapi.NewApp(&cfg.HTTP, blogapi.Services{
			Credentials: app.NewCredentialUseCase(userRepo, serviceFactory.PasswordService()),
			Profiles:    app.NewProfileUseCase(userRepo),
			Content:     app.NewContentUseCase(blogRepo, calendar, limits.BlogsPerDay),
			Comments:    app.NewCommentUseCase(repoFactory.CommentRepository(), blogRepo, calendar, limits.CommentsPerDay),
			Analytics:   app.NewAnalyticsUseCase(repoFactory.AnalyticsRepository(), calendar),
		})
		log.Info(ctx, LogInitHTTPServer)

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.Address()))
		go func() {
			if err := httpApp.Listen(cfg.HTTP.Address(), fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		shutdown.Wait(ctx, cfg.Shutdown.GetTimeout(),
			// Остановка HTTP сервера, затем закрытие пула.
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				if err := httpApp.ShutdownWithContext(ctx); err != nil {
					return fmt.Errorf("stopping HTTP server: %w", err)
				}
				log.Info(ctx, LogClosingDatabase)
				database.Close(ctx)
				return nil
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
