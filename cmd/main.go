package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go-folder-cleanup/config"
	"go-folder-cleanup/internal/domain/models"
	domainNotification "go-folder-cleanup/internal/domain/notification"
	"go-folder-cleanup/internal/infrastructure/filesystem"
	loggerPkg "go-folder-cleanup/internal/infrastructure/logger"
	prometheusMetrics "go-folder-cleanup/internal/infrastructure/metrics"
	"go-folder-cleanup/internal/infrastructure/notification"
	sqliteRepos "go-folder-cleanup/internal/infrastructure/repositories"
	"go-folder-cleanup/internal/infrastructure/safety"
	"go-folder-cleanup/internal/interfaces/console"
	"go-folder-cleanup/internal/interfaces/http/handlers"
	"go-folder-cleanup/internal/interfaces/http/router"
	"go-folder-cleanup/internal/interfaces/prompt"
	"go-folder-cleanup/internal/usecases/cleanup"
	"go-folder-cleanup/internal/usecases/scheduler"
	"go-folder-cleanup/pkg/constants"
	"go-folder-cleanup/pkg/helper"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Version and BuildTime are set during build
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	once := flag.Bool("once", false, "run a single cleanup cycle and exit")
	flag.Parse()

	fmt.Printf("Folder Cleanup Service %s (built at %s)\n", Version, BuildTime)

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *once {
		cfg.Logger.Console = true
	}

	log, err := loggerPkg.NewLogger(cfg.Logger)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	logStartupInfo(log, cfg, Version, BuildTime)

	validator := safety.NewPathValidator()

	settings, err := acceptSettings(cfg.SettingsPath, validator, log)
	if err != nil {
		log.Error("No valid cleanup settings", zap.Error(err))
		fmt.Fprintf(os.Stderr, "No valid cleanup settings: %v\n", err)
		os.Exit(1)
	}

	log.Info("Cleanup settings accepted",
		zap.String("folder", settings.Folder),
		zap.Strings("keep_list", settings.KeepList),
		zap.Int("interval_seconds", settings.Interval))

	// Infrastructure dependencies
	folderRepo := filesystem.NewOSFolderRepository(log)
	reportRepo, err := sqliteRepos.NewSQLiteCycleReportRepository(cfg.DatabasePath, log)
	if err != nil {
		log.Fatal("Failed to open report database", zap.Error(err))
	}
	defer reportRepo.Close()

	var notifier *notification.TelegramNotifier
	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != "" {
		notifier = notification.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID, log)
	}

	metricsCollector := prometheusMetrics.NewPrometheusMetrics(log)

	keep := models.NewKeepSet(settings.KeepList...)
	cleanupService := cleanup.NewCleanupService(
		settings.Folder, keep,
		folderRepo, reportRepo, notifierOrNil(notifier), metricsCollector, validator, log)

	printer := console.NewPrinter(os.Stdout, constants.ServiceName)

	if *once {
		os.Exit(runOnce(cleanupService, printer))
	}

	// HTTP surface
	h := handlers.NewHandlers(log, Version, BuildTime, metricsCollector, cleanupService, reportRepo)
	app := router.NewFiberApp(log)
	router.SetupRoutes(app, h, metricsCollector, log)

	cleanupCtx, cleanupCancel := context.WithCancel(context.Background())
	defer cleanupCancel()

	schedulerDone := make(chan struct{})
	var cronScheduler *cron.Cron

	if cfg.CronSchedule != "" {
		cronScheduler = setupCronJobs(cleanupCtx, cleanupService, printer, cfg.CronSchedule, log)
		cronScheduler.Start()
		close(schedulerDone)
	} else {
		intervalScheduler := scheduler.New(
			cleanupService, settings.IntervalDuration(), constants.SleepTick, printer, log)
		go func() {
			defer close(schedulerDone)
			intervalScheduler.Run(cleanupCtx)
		}()
	}

	serverErrChan := startServer(app, cfg.HTTPPort, log)
	handleGracefulShutdown(app, serverErrChan, cleanupCancel, schedulerDone, cronScheduler, log)
}

// acceptSettings loads persisted settings and validates them, falling
// back to the interactive prompt when they are missing or rejected.
// Settings are trusted for the process lifetime once accepted here;
// the engine additionally re-validates the folder before every cycle.
func acceptSettings(path string, validator *safety.PathValidator, log *zap.Logger) (*config.Settings, error) {
	settings, err := config.LoadSettings(path)
	switch {
	case err == nil:
		verr := validateSettings(settings, validator)
		if verr == nil {
			return settings, nil
		}
		log.Warn("Persisted settings rejected", zap.Error(verr))
	case !errors.Is(err, os.ErrNotExist):
		log.Warn("Failed to load settings file", zap.Error(err))
	}

	setup := prompt.NewSetup(os.Stdin, os.Stdout, validator)
	settings, err = setup.Run()
	if err != nil {
		return nil, err
	}

	if err := config.SaveSettings(path, settings); err != nil {
		log.Warn("Failed to persist settings", zap.Error(err))
	}

	return settings, nil
}

func validateSettings(settings *config.Settings, validator *safety.PathValidator) error {
	if err := validator.ValidateFolder(settings.Folder); err != nil {
		return fmt.Errorf("folder rejected: %w", err)
	}
	for _, name := range settings.KeepList {
		if err := safety.ValidateName(name); err != nil {
			return fmt.Errorf("keep name %q rejected: %w", name, err)
		}
	}
	if settings.Interval <= 0 {
		return config.ErrInvalidInterval
	}
	return nil
}

func runOnce(cleanupService *cleanup.CleanupService, printer *console.Printer) int {
	printer.Banner()

	spinner := console.NewSpinner(os.Stdout, "Cleaning")
	spinner.Start()
	report, err := cleanupService.Cleanup(context.Background())
	spinner.Stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Cleanup failed: %v\n", err)
		return 1
	}

	printer.Summary(report)
	return 0
}

// notifierOrNil keeps a missing notifier as a nil interface value so
// the engine can test for it; wrapping a typed nil pointer would not.
func notifierOrNil(n *notification.TelegramNotifier) domainNotification.Notifier {
	if n == nil {
		return nil
	}
	return n
}

func logStartupInfo(log *zap.Logger, cfg *config.Config, version, buildTime string) {
	log.Info("Starting Folder Cleanup Service",
		zap.String("version", version),
		zap.String("buildTime", buildTime))

	log.Info("Configuration loaded",
		zap.String("telegram_bot_token", helper.MaskValue(cfg.TelegramBotToken)),
		zap.String("telegram_chat_id", helper.MaskValue(cfg.TelegramChatID)),
		zap.String("cron_schedule", cfg.CronSchedule),
		zap.String("settings_path", cfg.SettingsPath),
		zap.String("database_path", cfg.DatabasePath),
		zap.String("http_port", cfg.HTTPPort))

	log.Info("Logger configuration",
		zap.String("log_level", cfg.Logger.Level),
		zap.String("log_dir", cfg.Logger.LogDir),
		zap.Int("log_max_size", cfg.Logger.MaxSize),
		zap.Int("log_max_backups", cfg.Logger.MaxBackups),
		zap.Int("log_max_age", cfg.Logger.MaxAge),
		zap.Bool("log_compress", cfg.Logger.Compress))
}

func setupCronJobs(ctx context.Context, cleanupService *cleanup.CleanupService, sink scheduler.ReportSink, schedule string, log *zap.Logger) *cron.Cron {
	c := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
		cron.Recover(cron.DefaultLogger),
	))

	_, err := c.AddFunc(schedule, func() {
		report, err := cleanupService.Cleanup(ctx)
		if err != nil {
			log.Error("Cleanup cycle failed",
				zap.Error(err),
				zap.String("schedule", schedule))
			return
		}
		if sink != nil {
			sink.Summary(report)
		}
	})
	if err != nil {
		log.Fatal("Failed to schedule cleanup job", zap.Error(err))
	}

	log.Info("Cron scheduler started", zap.String("schedule", schedule))
	return c
}

func startServer(app *router.FiberApp, port string, log *zap.Logger) chan error {
	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", zap.String("port", port))
		if err := app.Listen(":" + port); err != nil {
			if !strings.Contains(err.Error(), "server closed") {
				log.Error("Server error", zap.Error(err))
				serverErr <- err
			} else {
				log.Info("Server shutdown successfully")
			}
		}
	}()

	log.Info("Service started successfully",
		zap.String("port", port),
		zap.String("version", Version),
		zap.String("buildTime", BuildTime))

	return serverErr
}

func handleGracefulShutdown(app *router.FiberApp, serverErr chan error, cleanupCancel context.CancelFunc, schedulerDone chan struct{}, cronScheduler *cron.Cron, log *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	var shutdownErr error
	select {
	case <-quit:
		log.Info("Received shutdown signal, initiating graceful shutdown...")
	case err := <-serverErr:
		log.Error("Server error occurred", zap.Error(err))
		shutdownErr = err
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer shutdownCancel()

	// Stop the cleanup schedule first. An in-flight cycle runs to
	// completion; only the sleep in between is interrupted.
	log.Info("Stopping cleanup schedule...")
	cleanupCancel()
	if cronScheduler != nil {
		<-cronScheduler.Stop().Done()
	}

	select {
	case <-schedulerDone:
	case <-shutdownCtx.Done():
		log.Warn("Timed out waiting for the scheduler to stop")
	}

	log.Info("Shutting down HTTP server...")
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("Error during server shutdown", zap.Error(err))
		shutdownErr = err
	}

	if shutdownErr != nil {
		log.Error("Service shutdown completed with errors", zap.Error(shutdownErr))
		os.Exit(1)
	}

	log.Info("Service shutdown completed successfully")
	os.Exit(0)
}
