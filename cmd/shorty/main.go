package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/matheus3301/shorty/internal/app"
	"github.com/matheus3301/shorty/internal/helpkeys"
	"github.com/matheus3301/shorty/internal/keyfmt"
	"github.com/matheus3301/shorty/internal/scope"
	"github.com/matheus3301/shorty/internal/shortcut"
	"github.com/matheus3301/shorty/internal/tui"
	"go.uber.org/fx"
)

func main() {
	configFlag := flag.String("config", "", "config file (default ~/.shorty/config.toml)")
	listFlag := flag.Bool("list", false, "print the demo shortcuts and exit")
	groupFlag := flag.String("group", "", "with -list, only print this group")
	widthFlag := flag.Int("width", 100, "with -list, help width in columns")
	flag.Parse()

	p := params(*configFlag, *listFlag)

	if *listFlag {
		out, err := list(p, *groupFlag, *widthFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(out)
		return
	}

	fx.New(app.TUI(p)).Run()
}

// params builds the fx parameters. Only -list logs to stderr, since the
// TUI owns the screen.
func params(configPath string, list bool) app.Params {
	return app.Params{ConfigPath: configPath, Stderr: list}
}

// list activates every demo shortcut on a throwaway scope and renders the
// registry as help text.
func list(p app.Params, group string, width int) (string, error) {
	var out string
	a := fx.New(
		app.Module(p),
		fx.Invoke(func(svc *shortcut.Service, root *scope.Scope, f *keyfmt.Formatter) error {
			ctx := root.New()
			defer ctx.Destroy()

			if err := tui.DeclareAll(svc).BroadcastTo(ctx).Err(); err != nil {
				return err
			}
			active := svc.ActiveShortcuts(group)
			if len(active) == 0 {
				return fmt.Errorf("no shortcuts in group %q", group)
			}
			out = helpkeys.Render(active, f, width)
			return nil
		}),
	)
	return out, a.Err()
}
