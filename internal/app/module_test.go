package app

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/matheus3301/shorty/internal/config"
	"github.com/matheus3301/shorty/internal/keyfmt"
	"github.com/matheus3301/shorty/internal/shortcut"
	"github.com/matheus3301/shorty/internal/trap"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestModuleProvidesService(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	cfg := config.Default()
	cfg.LogFile = filepath.Join(dir, "shorty.log")
	cfg.SequenceTimeout = config.Duration{Duration: 500 * time.Millisecond}
	cfg.Glyphs = map[string]string{"ctrl": "^"}
	if err := config.Save(cfgPath, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	var (
		svc   *shortcut.Service
		traps *trap.Manager
		f     *keyfmt.Formatter
	)
	app := fxtest.New(t,
		Module(Params{ConfigPath: cfgPath}),
		fx.Populate(&svc, &traps, &f),
	)
	app.RequireStart()
	defer app.RequireStop()

	if svc.Shared() != traps.Shared() {
		t.Error("service does not use the manager's shared trap")
	}
	if got := f.Format("ctrl+s"); got != "^+s" {
		t.Errorf("Format(ctrl+s) = %q, want %q", got, "^+s")
	}
}

func TestModuleMissingConfigUsesDefaults(t *testing.T) {
	var cfg *config.Config
	app := fxtest.New(t,
		fx.Supply(Params{ConfigPath: filepath.Join(t.TempDir(), "missing.toml")}),
		fx.Provide(provideConfig),
		fx.Populate(&cfg),
	)
	app.RequireStart()
	defer app.RequireStop()

	if cfg.SequenceTimeout.Duration != time.Second {
		t.Errorf("sequence timeout = %v, want 1s", cfg.SequenceTimeout.Duration)
	}
}
