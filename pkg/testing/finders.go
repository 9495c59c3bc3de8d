package testing

import (
	"fmt"
	"strings"

	"github.com/pocket-ui/pocket/pkg/display"
)

// Finder locates nodes in a frame description.
type Finder interface {
	// Evaluate returns all matching nodes under root in declaration
	// order (depth-first pre-order).
	Evaluate(root *display.Node) []*display.Node
	// Description returns a human-readable description for error
	// messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	nodes  []*display.Node
	finder Finder
}

// First returns the first match. Panics if there are none.
func (r FinderResult) First() *display.Node {
	if len(r.nodes) == 0 {
		panic(fmt.Sprintf("finder matched no nodes: %s", r.describe()))
	}
	return r.nodes[0]
}

// FirstOrNil returns the first match, or nil if there are none.
func (r FinderResult) FirstOrNil() *display.Node {
	if len(r.nodes) == 0 {
		return nil
	}
	return r.nodes[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) *display.Node {
	if index < 0 || index >= len(r.nodes) {
		panic(fmt.Sprintf("finder index %d out of range (found %d): %s",
			index, len(r.nodes), r.describe()))
	}
	return r.nodes[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []*display.Node { return r.nodes }

// Count returns the number of matches.
func (r FinderResult) Count() int { return len(r.nodes) }

// Exists reports whether at least one node matched.
func (r FinderResult) Exists() bool { return len(r.nodes) > 0 }

func (r FinderResult) describe() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

func collectMatches(root *display.Node, match func(*display.Node) bool) []*display.Node {
	var out []*display.Node
	display.Walk(root, func(n *display.Node) bool {
		if match(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// predicateFinder matches nodes for which the predicate holds.
type predicateFinder struct {
	desc string
	pred func(*display.Node) bool
}

func (f *predicateFinder) Evaluate(root *display.Node) []*display.Node {
	return collectMatches(root, f.pred)
}

func (f *predicateFinder) Description() string { return f.desc }

// ByPredicate returns a finder matching nodes for which pred holds.
func ByPredicate(desc string, pred func(*display.Node) bool) Finder {
	return &predicateFinder{desc: desc, pred: pred}
}

// ByKind returns a finder matching nodes of the given kind.
func ByKind(kind display.Kind) Finder {
	return ByPredicate(fmt.Sprintf("ByKind(%s)", kind), func(n *display.Node) bool {
		return n.Kind == kind
	})
}

// ByText returns a finder matching nodes whose text equals s exactly.
func ByText(s string) Finder {
	return ByPredicate(fmt.Sprintf("ByText(%q)", s), func(n *display.Node) bool {
		return n.Text == s
	})
}

// ByTextContaining returns a finder matching nodes whose text contains
// the substring.
func ByTextContaining(sub string) Finder {
	return ByPredicate(fmt.Sprintf("ByTextContaining(%q)", sub), func(n *display.Node) bool {
		return sub != "" && strings.Contains(n.Text, sub)
	})
}

// ByButton returns a finder matching buttons with the given label.
func ByButton(label string) Finder {
	return ByPredicate(fmt.Sprintf("ByButton(%q)", label), func(n *display.Node) bool {
		return n.Kind == display.KindButton && n.Text == label
	})
}
