// Package app composes the shortcut demo with fx.
package app

import (
	"context"

	"github.com/matheus3301/shorty/internal/bus"
	"github.com/matheus3301/shorty/internal/config"
	"github.com/matheus3301/shorty/internal/keyfmt"
	"github.com/matheus3301/shorty/internal/logging"
	"github.com/matheus3301/shorty/internal/scope"
	"github.com/matheus3301/shorty/internal/shortcut"
	"github.com/matheus3301/shorty/internal/trap"
	"github.com/matheus3301/shorty/internal/tui"
	"github.com/rivo/tview"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Params holds the command line configuration passed to the fx module.
type Params struct {
	ConfigPath string // empty = config.DefaultPath()
	Stderr     bool   // also log to stderr; only for modes without a screen
}

// Module returns the fx options shared by every mode: configuration,
// logging, the bus and the shortcut service backed by the trap manager.
func Module(p Params) fx.Option {
	return fx.Options(
		fx.Module("shorty",
			fx.Supply(p),
			fx.Provide(
				provideConfig,
				provideLogger,
				provideBus,
				provideApplication,
				provideTraps,
				provideService,
				provideRoot,
				provideFormatter,
			),
		),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
	)
}

// TUI returns the fx options that run the terminal UI until it quits.
func TUI(p Params) fx.Option {
	return fx.Options(
		Module(p),
		fx.Provide(tui.NewApp),
		fx.Invoke(registerLifecycle),
	)
}

func provideConfig(p Params) (*config.Config, error) {
	path := p.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}
	return config.LoadOrDefault(path)
}

func provideLogger(p Params, cfg *config.Config) (*zap.Logger, error) {
	return logging.New(logging.Options{
		Path:   cfg.LogFile,
		Level:  cfg.LogLevel,
		Stderr: p.Stderr,
	}, "shorty")
}

func provideBus() *bus.Bus {
	return bus.New()
}

func provideApplication() *tview.Application {
	return tview.NewApplication()
}

func provideTraps(app *tview.Application, cfg *config.Config, logger *zap.Logger) *trap.Manager {
	return trap.NewManager(logger.Named("trap"),
		trap.WithTimeout(cfg.SequenceTimeout.Duration),
		trap.WithStopFunc(trap.InputFocused(app)),
	)
}

func provideService(traps *trap.Manager, logger *zap.Logger) *shortcut.Service {
	return shortcut.NewService(traps, logger.Named("shortcut"))
}

func provideRoot(b *bus.Bus, logger *zap.Logger) *scope.Scope {
	return scope.NewRoot(b, logger.Named("scope"))
}

func provideFormatter(cfg *config.Config) *keyfmt.Formatter {
	return keyfmt.New().SetKeyMap(cfg.Glyphs)
}

func registerLifecycle(lc fx.Lifecycle, sd fx.Shutdowner, a *tui.App, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				if err := a.Run(); err != nil {
					logger.Error("tui exited", zap.Error(err))
					_ = sd.Shutdown(fx.ExitCode(1))
					return
				}
				_ = sd.Shutdown()
			}()
			logger.Info("tui started")
			return nil
		},
		OnStop: func(_ context.Context) error {
			a.Stop()
			logger.Info("tui stopped")
			return nil
		},
	})
}
