// Package actions binds the page's call-to-action buttons to callbacks owned
// by the page assembler and dispatches activations to them.
//
// A button never holds a function value. It holds a Ref, which renders as the
// URL the browser posts to when the button is activated. The Registry maps that
// URL back to the callback.
package actions

import (
	"fmt"
	"regexp"
	"sort"
	"sync"

	"github.com/beaconhouse/beacon/internal/domain"
	g "maragu.dev/gomponents"
)

// PathPrefix is the route prefix every bound action is served under.
const PathPrefix = "/actions/"

var validName = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Callback is invoked exactly once per activation of the button it is bound to.
// It takes no arguments; the Outcome tells the dispatcher what the visitor sees next.
type Callback func() Outcome

// Outcome describes the result of an activation. Redirect wins over Fragment.
// An empty Outcome answers with no content.
type Outcome struct {
	Redirect string
	Fragment g.Node
}

// Navigate is an Outcome that sends the visitor to url.
func Navigate(url string) Outcome {
	return Outcome{Redirect: url}
}

// Show is an Outcome that renders node in place of the button's target.
func Show(node g.Node) Outcome {
	return Outcome{Fragment: node}
}

// Ref is an opaque handle to a bound callback. The zero Ref is bound to nothing.
type Ref struct {
	name string
}

// Name returns the action name, or "" for the zero Ref.
func (r Ref) Name() string { return r.name }

// IsZero reports whether the Ref is bound to nothing.
func (r Ref) IsZero() bool { return r.name == "" }

// Path is the URL an activation of this Ref is posted to.
func (r Ref) Path() string { return PathPrefix + r.name }

// Registry holds the bound callbacks. It is filled while the page is assembled
// at startup and only read afterwards.
type Registry struct {
	mu        sync.RWMutex
	callbacks map[string]Callback
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{callbacks: make(map[string]Callback)}
}

// Bind registers cb under name and returns the Ref components render with.
func (r *Registry) Bind(name string, cb Callback) (Ref, error) {
	if cb == nil || !validName.MatchString(name) {
		return Ref{}, fmt.Errorf("%w: %q", domain.ErrInvalidAction, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.callbacks[name]; exists {
		return Ref{}, fmt.Errorf("%w: %q", domain.ErrDuplicateAction, name)
	}
	r.callbacks[name] = cb
	return Ref{name: name}, nil
}

// MustBind is Bind for wiring code that cannot continue on error.
func (r *Registry) MustBind(name string, cb Callback) Ref {
	ref, err := r.Bind(name, cb)
	if err != nil {
		panic(err)
	}
	return ref
}

// Invoke runs the callback bound to name once and returns its Outcome.
func (r *Registry) Invoke(name string) (Outcome, error) {
	r.mu.RLock()
	cb, ok := r.callbacks[name]
	r.mu.RUnlock()
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %q", domain.ErrUnknownAction, name)
	}
	return cb(), nil
}

// Names lists the bound action names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.callbacks))
	for name := range r.callbacks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
