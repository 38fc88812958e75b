package signalbus

import (
	"log"
	"reflect"
	"sync"
)

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Registry routes emitted events to the receivers bound for their type.
//
// Each event type keeps its bindings in registration order. Slices stored in
// the map are never modified in place below their length: Bind appends and
// Unbind replaces the slice, so an Emit in progress keeps iterating the
// snapshot it started with.
type Registry struct {
	bindings     map[reflect.Type][]binding
	mu           sync.RWMutex
	panicHandler PanicHandler
	logger       *log.Logger
}

// New creates a Registry with optional configuration.
// With no options, receiver panics propagate and nothing is logged.
func New(opts ...Option) *Registry {
	r := &Registry{
		bindings: make(map[reflect.Type][]binding),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Default returns the process-wide Registry, creating it on first use with
// the options passed to Configure.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = newConfigured()
	})
	return defaultRegistry
}

// newConfigured builds a Registry from the options last passed to Configure.
func newConfigured() *Registry {
	defaultOptMu.Lock()
	opts := defaultOptions
	defaultOptMu.Unlock()
	return New(opts...)
}

// Bind subscribes method on receiver to events of type E. The method is a
// method expression, e.g. Bind(r, printer, (*Printer).OnMsg). Binding the
// same receiver and method twice subscribes it twice. Receivers are told
// apart by pointer, so their type must have a non-zero size.
func Bind[E, C any](r *Registry, receiver *C, method func(*C, E)) {
	if method == nil {
		return
	}
	r.add(reflect.TypeFor[E](), newMethodHandler(receiver, method))
}

// BindFunc subscribes the free function fn to events of type E and returns a
// Subscription that removes exactly this binding. Closures should be removed
// through the Subscription; see UnbindFunc. Returns nil if fn is nil.
func BindFunc[E any](r *Registry, fn func(E)) *Subscription {
	if fn == nil {
		return nil
	}
	key := reflect.TypeFor[E]()
	h := newFuncHandler(fn)
	r.add(key, h)
	return &Subscription{registry: r, key: key, bound: h}
}

// Unbind removes every subscription of method on receiver for events of type E.
// Unbinding something that was never bound is a no-op. A receiver whose type
// has zero size may compare equal to another receiver of that type, in which
// case both are removed.
func Unbind[E, C any](r *Registry, receiver *C, method func(*C, E)) {
	if method == nil {
		return
	}
	r.remove(reflect.TypeFor[E](), receiver, methodSymbol[C](method))
}

// UnbindFunc removes every subscription of the free function fn for events of
// type E. Functions are matched by their code, which identifies declared
// functions exactly. Closures are not told apart by captured state, and the
// compiler decides whether two closures share code, so remove closures with
// the Subscription returned by BindFunc instead.
func UnbindFunc[E any](r *Registry, fn func(E)) {
	if fn == nil {
		return
	}
	r.remove(reflect.TypeFor[E](), nil, symbolOf(nil, fn))
}

// Emit calls every receiver bound to events of type E, in registration order,
// passing each its own copy of event. Emitting a type with no bindings is a
// no-op. Bindings added while Emit runs are not called by it; bindings removed
// while it runs still are.
func Emit[E any](r *Registry, event E) {
	key := reflect.TypeFor[E]()

	r.mu.RLock()
	snapshot := r.bindings[key]
	r.mu.RUnlock()

	r.logf("emit %s to %d receiver(s)", key, len(snapshot))

	for _, b := range snapshot {
		dispatch(r, key, b.(*eventHandler[E]), event)
	}
}

// dispatch delivers one event, recovering receiver panics when a handler is set.
func dispatch[E any](r *Registry, key reflect.Type, h *eventHandler[E], event E) {
	if r.panicHandler != nil {
		defer func() {
			if recovered := recover(); recovered != nil {
				r.panicHandler(key, recovered)
			}
		}()
	}
	h.emit(event)
}

func (r *Registry) add(key reflect.Type, b binding) {
	r.mu.Lock()
	r.bindings[key] = append(r.bindings[key], b)
	n := len(r.bindings[key])
	r.mu.Unlock()

	r.logf("bind %s to %s (%d bound)", b.symbol(), key, n)
}

// remove drops matching bindings under key, keeping the survivors in order.
func (r *Registry) remove(key reflect.Type, receiver any, symbol Symbol) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.bindings[key]
	if !exists {
		return
	}

	kept := make([]binding, 0, len(current))
	for _, b := range current {
		if !b.matches(receiver, symbol) {
			kept = append(kept, b)
		}
	}

	removed := len(current) - len(kept)
	if removed == 0 {
		return
	}

	// Clean up empty event type entries
	if len(kept) == 0 {
		delete(r.bindings, key)
	} else {
		r.bindings[key] = kept
	}

	r.logf("unbind %s from %s (%d removed)", symbol, key, removed)
}

// removeBinding drops the one binding b under key, if it is still present.
func (r *Registry) removeBinding(key reflect.Type, b binding) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.bindings[key]
	if !exists {
		return false
	}

	kept := make([]binding, 0, len(current))
	for _, existing := range current {
		if existing != b {
			kept = append(kept, existing)
		}
	}
	if len(kept) == len(current) {
		return false
	}

	if len(kept) == 0 {
		delete(r.bindings, key)
	} else {
		r.bindings[key] = kept
	}

	r.logf("unbind %s from %s (subscription closed)", b.symbol(), key)
	return true
}

// Stats returns binding counts for the Registry.
func (r *Registry) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := Stats{
		EventTypes: len(r.bindings),
		Bindings:   make(map[reflect.Type]int, len(r.bindings)),
	}
	for key, bs := range r.bindings {
		stats.Bindings[key] = len(bs)
	}
	return stats
}

func (r *Registry) logf(format string, args ...any) {
	if r.logger == nil {
		return
	}
	r.logger.Printf("signalbus: "+format, args...)
}
