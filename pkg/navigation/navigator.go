// Package navigation provides named-route navigation on top of the
// render loop: a registry mapping route names to widget builders, and a
// stack navigator that swaps the mounted root as routes are pushed and
// popped.
//
// Each push builds a fresh widget tree for the route; the outgoing tree
// is unmounted before the incoming one mounts, so cell subscriptions
// never leak across screens. Popping remounts the retained tree of the
// previous route, restoring its subscriptions.
package navigation

import (
	"github.com/pocket-ui/pocket/pkg/core"
	"github.com/pocket-ui/pocket/pkg/errors"
)

// Params carries push-time arguments into a route builder.
type Params map[string]any

// String returns the named parameter as a string, or fallback.
func (p Params) String(key, fallback string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return fallback
}

// Int returns the named parameter as an int, or fallback.
func (p Params) Int(key string, fallback int) int {
	if v, ok := p[key].(int); ok {
		return v
	}
	return fallback
}

// Builder constructs the widget tree for one visit to a route.
type Builder func(params Params) core.Widget

// Registry maps route names to builders. Register everything up front;
// lookups at push time are read-only.
type Registry struct {
	routes map[string]Builder
}

// NewRegistry creates an empty route registry.
func NewRegistry() *Registry {
	return &Registry{routes: make(map[string]Builder)}
}

// Register binds a route name to a builder. Re-registering a name or
// passing a nil builder is a configuration error.
func (r *Registry) Register(name string, builder Builder) error {
	if builder == nil {
		return &errors.ConfigError{Op: "navigation.Register", Field: "builder", Value: name, Reason: "must not be nil"}
	}
	if _, exists := r.routes[name]; exists {
		return &errors.ConfigError{Op: "navigation.Register", Field: "name", Value: name, Reason: "route already registered"}
	}
	r.routes[name] = builder
	return nil
}

// Host receives the navigator's current root. The render loop's App
// satisfies it.
type Host interface {
	SetRoot(root core.Widget)
}

type entry struct {
	name   string
	params Params
	widget core.Widget
}

// Navigator maintains the route stack. All methods must be called from
// the render loop goroutine, typically inside widget handlers.
type Navigator struct {
	registry *Registry
	host     Host
	stack    []entry
}

// NewNavigator creates a navigator pushing its routes into host.
func NewNavigator(registry *Registry, host Host) *Navigator {
	return &Navigator{registry: registry, host: host}
}

// Push builds the named route and makes it the mounted root. Unknown
// route names are a configuration error and leave the stack unchanged.
func (n *Navigator) Push(name string, params Params) error {
	builder, ok := n.registry.routes[name]
	if !ok {
		return &errors.ConfigError{Op: "navigation.Push", Field: "name", Value: name, Reason: "route not registered"}
	}
	w := builder(params)
	n.stack = append(n.stack, entry{name: name, params: params, widget: w})
	n.host.SetRoot(w)
	return nil
}

// Replace swaps the top route for the named one without growing the
// stack. On an empty stack it behaves like Push.
func (n *Navigator) Replace(name string, params Params) error {
	if len(n.stack) > 0 {
		n.stack = n.stack[:len(n.stack)-1]
	}
	return n.Push(name, params)
}

// Pop unmounts the top route and remounts the one beneath it. It
// reports false, changing nothing, when the stack has no previous route
// to return to.
func (n *Navigator) Pop() bool {
	if len(n.stack) < 2 {
		return false
	}
	n.stack = n.stack[:len(n.stack)-1]
	top := n.stack[len(n.stack)-1]
	n.host.SetRoot(top.widget)
	return true
}

// CanPop reports whether Pop would succeed.
func (n *Navigator) CanPop() bool { return len(n.stack) >= 2 }

// Depth returns the number of routes on the stack.
func (n *Navigator) Depth() int { return len(n.stack) }

// Current returns the top route's name and params, or "" when the stack
// is empty.
func (n *Navigator) Current() (string, Params) {
	if len(n.stack) == 0 {
		return "", nil
	}
	top := n.stack[len(n.stack)-1]
	return top.name, top.params
}
