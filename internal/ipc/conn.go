package ipc

import (
	"context"
	"fmt"

	"github.com/swaypad/swaypad/internal/state"
	"github.com/swaypad/swaypad/internal/toggle"
	"github.com/swaypad/swaypad/internal/util"
)

// Strategy describes how commands and queries are issued to sway.
type Strategy string

const (
	// StrategySocket uses the sway IPC socket directly.
	StrategySocket Strategy = "socket"
	// StrategySwaymsg shells out to the swaymsg binary.
	StrategySwaymsg Strategy = "swaymsg"
)

// Conn is a sway connection backed by the selected strategy.
type Conn struct {
	*Client
	socket *socketClient
}

// NewConn returns a connection using the requested strategy when possible.
// Socket access falls back to swaymsg when SWAYSOCK is unavailable.
func NewConn(logger *util.Logger, requested Strategy) (*Conn, Strategy, error) {
	base := NewClient()
	switch requested {
	case StrategySocket:
		sock, err := newSocketClient()
		if err != nil {
			if logger != nil {
				logger.Warnf("falling back to swaymsg: %v", err)
			}
			return &Conn{Client: base}, StrategySwaymsg, nil
		}
		if logger != nil {
			logger.Debugf("using sway socket at %s", sock.SocketPath())
		}
		return &Conn{Client: base, socket: sock}, StrategySocket, nil
	case StrategySwaymsg:
		return &Conn{Client: base}, StrategySwaymsg, nil
	default:
		return nil, "", fmt.Errorf("unknown ipc strategy %q", requested)
	}
}

func (c *Conn) Tree(ctx context.Context) ([]byte, error) {
	if c.socket != nil {
		return c.socket.Tree(ctx)
	}
	return c.Client.Tree(ctx)
}

func (c *Conn) Exec(ctx context.Context, command string) error {
	if c.socket != nil {
		return c.socket.Exec(ctx, command)
	}
	return c.Client.Exec(ctx, command)
}

func (c *Conn) Focus(ctx context.Context, criteria string) error {
	if c.socket != nil {
		return c.socket.Focus(ctx, criteria)
	}
	return c.Client.Focus(ctx, criteria)
}

func (c *Conn) MoveToScratchpad(ctx context.Context, criteria string) error {
	if c.socket != nil {
		return c.socket.MoveToScratchpad(ctx, criteria)
	}
	return c.Client.MoveToScratchpad(ctx, criteria)
}

var _ state.TreeSource = (*Conn)(nil)
var _ toggle.Dispatcher = (*Conn)(nil)
