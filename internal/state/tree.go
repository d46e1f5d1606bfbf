package state

import (
	"encoding/json"
	"fmt"
)

// Node types that carry an actual window. Everything else in the tree
// (root, outputs, workspaces, split containers) is traversal-only.
const (
	nodeTypeCon         = "con"
	nodeTypeFloatingCon = "floating_con"
)

// maxTreeDepth bounds recursion so a corrupt snapshot cannot recurse
// without limit. Real sway trees stay in the single digits.
const maxTreeDepth = 64

// treeNode is the loose per-node shell used for traversal. Children stay
// raw so one undecodable subtree never poisons its siblings.
type treeNode struct {
	Type          string            `json:"type"`
	Nodes         []json.RawMessage `json:"nodes"`
	FloatingNodes []json.RawMessage `json:"floating_nodes"`
}

// windowNode is the strict decode applied only to window-bearing nodes.
type windowNode struct {
	Title      *string         `json:"name"`
	AppID      *string         `json:"app_id"`
	Focused    bool            `json:"focused"`
	Type       string          `json:"type"`
	Properties *propertiesNode `json:"window_properties"`
}

type propertiesNode struct {
	Class *string `json:"class"`
}

// ExtractWindows walks a raw tree document and returns every window it
// holds, in pre-order. Window-bearing nodes that fail to decode are
// skipped; their children are still visited.
func ExtractWindows(data []byte) ([]Window, error) {
	var root treeNode
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse tree: %w", err)
	}
	var windows []Window
	extract(data, 0, &windows)
	return windows, nil
}

func extract(raw json.RawMessage, depth int, out *[]Window) {
	if depth > maxTreeDepth {
		return
	}
	var node treeNode
	if err := json.Unmarshal(raw, &node); err != nil {
		return
	}
	if node.Type == nodeTypeCon || node.Type == nodeTypeFloatingCon {
		var wn windowNode
		if err := json.Unmarshal(raw, &wn); err == nil {
			window := Window{
				Title:   wn.Title,
				AppID:   wn.AppID,
				Focused: wn.Focused,
				Type:    wn.Type,
			}
			if wn.Properties != nil {
				window.Properties = &WindowProperties{Class: wn.Properties.Class}
			}
			*out = append(*out, window)
		}
	}
	for _, child := range node.Nodes {
		extract(child, depth+1, out)
	}
	for _, child := range node.FloatingNodes {
		extract(child, depth+1, out)
	}
}
