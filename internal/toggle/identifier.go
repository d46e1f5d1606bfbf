package toggle

import (
	"context"
	"fmt"

	"github.com/swaypad/swaypad/internal/config"
	"github.com/swaypad/swaypad/internal/state"
)

// IdentifierKind enumerates the window identifier variants.
type IdentifierKind int

const (
	ByTitle IdentifierKind = iota
	ByAppID
	ByClass
)

func (k IdentifierKind) String() string {
	switch k {
	case ByTitle:
		return "title"
	case ByAppID:
		return "app_id"
	case ByClass:
		return "class"
	default:
		return fmt.Sprintf("IdentifierKind(%d)", int(k))
	}
}

// Identifier is the compiled form of a configured window identifier.
type Identifier struct {
	Kind  IdentifierKind
	Value string
}

// BuildIdentifier compiles an identifier configuration. Exactly one variant
// must be set; Config.Validate enforces this earlier, but compilation stays
// strict so a hand-built config cannot slip through.
func BuildIdentifier(ic config.IdentifierConfig) (Identifier, error) {
	var (
		id    Identifier
		found int
	)
	if ic.Title != "" {
		id = Identifier{Kind: ByTitle, Value: ic.Title}
		found++
	}
	if ic.AppID != "" {
		id = Identifier{Kind: ByAppID, Value: ic.AppID}
		found++
	}
	if ic.Class != "" {
		id = Identifier{Kind: ByClass, Value: ic.Class}
		found++
	}
	if found != 1 {
		return Identifier{}, fmt.Errorf("identifier must set exactly one of title, app_id or class")
	}
	return id, nil
}

// Matches reports whether the window satisfies the identifier. Comparison is
// ASCII case-insensitive equality; an absent field, at any level, never
// matches.
func (id Identifier) Matches(w state.Window) bool {
	switch id.Kind {
	case ByTitle:
		return w.Title != nil && equalFoldASCII(*w.Title, id.Value)
	case ByAppID:
		return w.AppID != nil && equalFoldASCII(*w.AppID, id.Value)
	case ByClass:
		return w.Properties != nil && w.Properties.Class != nil && equalFoldASCII(*w.Properties.Class, id.Value)
	default:
		return false
	}
}

// Criteria renders the identifier as a sway selection expression. The value
// is quoted so it round-trips losslessly.
func (id Identifier) Criteria() string {
	return fmt.Sprintf("[%s=%q]", id.Kind, id.Value)
}

// equalFoldASCII compares two strings for equality ignoring ASCII letter
// case only. strings.EqualFold would apply Unicode simple folding, which is
// wider than the matching policy here.
func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// Dispatcher issues window manager commands for decided actions.
type Dispatcher interface {
	Exec(ctx context.Context, command string) error
	Focus(ctx context.Context, criteria string) error
	MoveToScratchpad(ctx context.Context, criteria string) error
}
