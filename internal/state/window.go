package state

import (
	"context"
	"fmt"
)

// Window describes one window-bearing node from a sway tree snapshot.
// Optional fields stay pointers so an absent field is distinguishable from
// an empty string.
type Window struct {
	Title      *string
	AppID      *string
	Focused    bool
	Type       string
	Properties *WindowProperties
}

// WindowProperties carries the legacy X11 properties block.
type WindowProperties struct {
	Class *string
}

// TreeSource abstracts the window-tree query.
type TreeSource interface {
	Tree(ctx context.Context) ([]byte, error)
}

// Snapshot is the flat view of one tree fetch. It is rebuilt on every
// invocation and never cached.
type Snapshot struct {
	Windows []Window
}

// NewSnapshot fetches the current tree and extracts its windows.
func NewSnapshot(ctx context.Context, src TreeSource) (*Snapshot, error) {
	data, err := src.Tree(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch tree: %w", err)
	}
	windows, err := ExtractWindows(data)
	if err != nil {
		return nil, err
	}
	return &Snapshot{Windows: windows}, nil
}
