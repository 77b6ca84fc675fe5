package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/CrueChan/Timer/internal/adapters/appearance"
	"github.com/CrueChan/Timer/internal/adapters/notification"
	"github.com/CrueChan/Timer/internal/adapters/storage"
	"github.com/CrueChan/Timer/internal/adapters/ticker"
	"github.com/CrueChan/Timer/internal/config"
	"github.com/CrueChan/Timer/internal/domain"
	"github.com/CrueChan/Timer/internal/i18n"
	"github.com/CrueChan/Timer/internal/logging"
	"github.com/CrueChan/Timer/internal/ports"
	"github.com/CrueChan/Timer/internal/services"
	"github.com/CrueChan/Timer/internal/theme"
)

// appDeps groups all service-layer dependencies initialized at startup.
type appDeps struct {
	config    *config.Config
	logger    *zap.Logger
	storage   ports.Storage
	localizer *i18n.Localizer
	detector  *appearance.Detector
	theme     *theme.Theme
	prefs     *services.PreferenceService
	notifier  *notification.Notifier
}

// app holds all initialized service dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices sets up all the required services and adapters.
func initializeServices() error {
	cfg, err := config.Load()
	if err != nil {
		// If config loading fails, use defaults
		cfg = config.DefaultConfig()
	}

	logger, err := logging.New(cfg.Log.Level, config.GetLogPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logger = zap.NewNop()
	}

	if dbPath == "" {
		dbPath = config.GetDBPath(cfg)
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	store, err := storage.New(dbPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	app = newAppDeps(context.Background(), cfg, store, logger, i18n.DetectLocale())
	logger.Debug("services initialized",
		zap.String("db", dbPath),
		zap.String("language", string(app.localizer.Language())),
		zap.String("theme_mode", string(app.theme.Mode())),
		zap.String("color_scheme", string(app.theme.Scheme())))
	return nil
}

// newAppDeps wires the preference stack on top of an open store.
func newAppDeps(ctx context.Context, cfg *config.Config, store ports.Storage, logger *zap.Logger, locale string) appDeps {
	prefs := store.Preferences()
	localizer := i18n.NewLocalizer(ctx, prefs, locale, logger)
	detector := appearance.NewDetector(cfg.Theme.SystemAppearance)
	th := theme.New(ctx, prefs, detector, logger)

	return appDeps{
		config:    cfg,
		logger:    logger,
		storage:   store,
		localizer: localizer,
		detector:  detector,
		theme:     th,
		prefs:     services.NewPreferenceService(prefs, localizer, th, detector, logger),
		notifier:  notification.New(cfg.Alert, localizer),
	}
}

// cleanupServices closes all resources.
func cleanupServices() error {
	if app.logger != nil {
		_ = app.logger.Sync()
	}
	if app.storage != nil {
		return app.storage.Close()
	}
	return nil
}

// initialFields returns the configured duration inputs with any
// --duration, then --hours/--minutes/--seconds flags applied.
func initialFields() domain.DurationFields {
	fields := domain.DurationFields{
		Hours:   strconv.Itoa(app.config.Timer.Hours),
		Minutes: strconv.Itoa(app.config.Timer.Minutes),
		Seconds: strconv.Itoa(app.config.Timer.Seconds),
	}
	if durationFlag > 0 {
		fields = domain.FieldsFromDuration(durationFlag)
	}
	if hoursFlag != "" {
		fields.Hours = hoursFlag
	}
	if minutesFlag != "" {
		fields.Minutes = minutesFlag
	}
	if secondsFlag != "" {
		fields.Seconds = secondsFlag
	}
	return fields
}

// newEngine builds a countdown engine on the system clock.
func newEngine(display ports.Display) *services.CountdownService {
	var alerter ports.Alerter
	if app.notifier.IsEnabled() {
		alerter = app.notifier
	}
	return services.NewCountdownService(ticker.SystemClock{}, ticker.Scheduler{}, display, alerter,
		services.WithLogger(app.logger),
		services.WithTranslator(app.localizer),
		services.WithRefreshInterval(time.Duration(app.config.Timer.RefreshInterval)),
		services.WithAlertTimeout(time.Duration(app.config.Alert.Timeout)),
		services.WithInputs(initialFields()),
	)
}

// watchAppearance follows theme.system_appearance in the config file
// and calls onChange after the theme has been re-applied. The terminal
// background is read once at startup; in auto mode a later change of
// the terminal colors is only picked up through a config edit.
func watchAppearance(onChange func()) {
	path, err := config.GetConfigPath()
	if err != nil {
		app.logger.Warn("config watch disabled", zap.Error(err))
		return
	}

	err = config.Watch(path, func(cfg *config.Config) {
		applyAppearance(cfg.Theme.SystemAppearance, onChange)
	}, func(err error) {
		app.logger.Warn("config reload failed", zap.Error(err))
	})
	if err != nil {
		app.logger.Warn("config watch disabled", zap.Error(err))
	}
}

// applyAppearance feeds a new appearance setting to the detector and
// re-applies the theme when it follows the system and the mode changed.
func applyAppearance(setting string, onChange func()) {
	app.detector.SetSetting(setting)
	if app.theme.SystemChanged(app.detector.PrefersDark()) {
		app.logger.Info("system appearance changed",
			zap.String("setting", app.detector.Setting()),
			zap.String("mode", string(app.theme.Mode())))
		onChange()
	}
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}
