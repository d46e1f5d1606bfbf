package ipc

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/swaypad/swaypad/internal/state"
	"github.com/swaypad/swaypad/internal/toggle"
)

// Client wraps swaymsg shell-outs.
type Client struct {
	Binary string
}

// NewClient returns a swaymsg client using the binary on PATH.
func NewClient() *Client {
	return &Client{Binary: "swaymsg"}
}

func (c *Client) run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, c.Binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("swaymsg %s: %v: %s", strings.Join(args, " "), err, stderr.String())
	}
	return stdout.Bytes(), nil
}

// Tree returns the raw window tree document.
func (c *Client) Tree(ctx context.Context) ([]byte, error) {
	return c.run(ctx, "-t", "get_tree")
}

// Exec asks sway to spawn the given command.
func (c *Client) Exec(ctx context.Context, command string) error {
	_, err := c.run(ctx, "exec", command)
	return err
}

// Focus focuses the window addressed by the criteria expression.
func (c *Client) Focus(ctx context.Context, criteria string) error {
	_, err := c.run(ctx, criteria+" focus")
	return err
}

// MoveToScratchpad hides the window addressed by the criteria expression.
func (c *Client) MoveToScratchpad(ctx context.Context, criteria string) error {
	_, err := c.run(ctx, criteria+" move scratchpad")
	return err
}

var _ state.TreeSource = (*Client)(nil)
var _ toggle.Dispatcher = (*Client)(nil)
