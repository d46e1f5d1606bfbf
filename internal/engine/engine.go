package engine

import (
	"context"
	"fmt"

	"github.com/swaypad/swaypad/internal/config"
	"github.com/swaypad/swaypad/internal/state"
	"github.com/swaypad/swaypad/internal/toggle"
	"github.com/swaypad/swaypad/internal/util"
)

// Conn is the sway connection the engine drives: one tree query and one
// dispatched action per invocation.
type Conn interface {
	state.TreeSource
	toggle.Dispatcher
}

// Engine derives and applies a single toggle decision.
type Engine struct {
	conn   Conn
	cfg    *config.Config
	logger *util.Logger
	dryRun bool
}

// New creates an engine bound to a connection and loaded configuration.
func New(conn Conn, logger *util.Logger, cfg *config.Config, dryRun bool) *Engine {
	return &Engine{conn: conn, cfg: cfg, logger: logger, dryRun: dryRun}
}

// Toggle performs one launch/focus/hide transition for the named app.
// Every failure aborts before anything is dispatched; exactly one action is
// issued on success.
func (e *Engine) Toggle(ctx context.Context, name string) error {
	app, ok := e.cfg.App(name)
	if !ok {
		return fmt.Errorf("unknown application %q", name)
	}
	id, err := toggle.BuildIdentifier(app.Identifier)
	if err != nil {
		return fmt.Errorf("app %q: %w", name, err)
	}

	snapshot, err := state.NewSnapshot(ctx, e.conn)
	if err != nil {
		return err
	}

	st := toggle.Resolve(snapshot.Windows, id)
	action := toggle.Decide(st, id, app, e.cfg.Terminal)
	e.logger.Debugf("%s is %s across %d windows", name, st, len(snapshot.Windows))

	if e.dryRun {
		e.logger.Infof("dry-run: would %s %s", action.Kind, describe(action))
		return nil
	}
	e.logger.Infof("%s %s", action.Kind, describe(action))

	switch action.Kind {
	case toggle.ActionLaunch:
		if err := e.conn.Exec(ctx, action.Command); err != nil {
			return fmt.Errorf("launch %q: %w", name, err)
		}
	case toggle.ActionFocus:
		if err := e.conn.Focus(ctx, action.Criteria); err != nil {
			return fmt.Errorf("focus %q: %w", name, err)
		}
	case toggle.ActionHide:
		if err := e.conn.MoveToScratchpad(ctx, action.Criteria); err != nil {
			return fmt.Errorf("hide %q: %w", name, err)
		}
	default:
		return fmt.Errorf("unhandled action %v", action.Kind)
	}
	return nil
}

func describe(action toggle.Action) string {
	if action.Kind == toggle.ActionLaunch {
		return action.Command
	}
	return action.Criteria
}
