package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/swaypad/swaypad/internal/config"
	"github.com/swaypad/swaypad/internal/engine"
	"github.com/swaypad/swaypad/internal/ipc"
	"github.com/swaypad/swaypad/internal/util"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(argv []string) error {
	fs := flag.NewFlagSet("swaypad", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	cfgPath := fs.String("config", config.DefaultPath(), "path to YAML config")
	dryRun := fs.Bool("dry-run", false, "log the decision without dispatching it")
	logLevel := fs.String("log-level", "info", "log level (debug|info|warn|error)")
	ipcStrategy := fs.String("ipc", string(ipc.StrategySocket), "ipc strategy (socket|swaymsg)")
	check := fs.Bool("check", false, "validate the config and exit")
	timeout := fs.Duration("timeout", 5*time.Second, "sway request timeout")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] <app>\n", fs.Name())
		fmt.Fprintln(fs.Output())
		fmt.Fprintln(fs.Output(), "Toggles the named application: launch it when absent, focus it when")
		fmt.Fprintln(fs.Output(), "unfocused, move it to the scratchpad when focused.")
		fmt.Fprintln(fs.Output())
		fmt.Fprintln(fs.Output(), "Flags:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	logger := util.NewLogger(util.ParseLogLevel(*logLevel))

	if *check {
		return runCheck(*cfgPath, os.Stdout)
	}

	args := fs.Args()
	if len(args) != 1 {
		fs.Usage()
		return fmt.Errorf("expected exactly one application name")
	}
	appName := args[0]

	selected := ipc.Strategy(strings.ToLower(*ipcStrategy))
	switch selected {
	case ipc.StrategySocket, ipc.StrategySwaymsg:
	default:
		return fmt.Errorf("unsupported ipc strategy %q", *ipcStrategy)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	conn, strategy, err := ipc.NewConn(logger, selected)
	if err != nil {
		return fmt.Errorf("configure ipc strategy: %w", err)
	}
	logger.Debugf("using %s ipc strategy", strategy)

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	eng := engine.New(conn, logger, cfg, *dryRun)
	return eng.Toggle(ctx, appName)
}

// runCheck validates a configuration file without touching sway.
func runCheck(path string, stdout io.Writer) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Configuration OK (%d apps)\n", len(cfg.Apps))
	return nil
}
