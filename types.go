// Package signalbus provides type-safe callbacks and a registry that routes
// typed events to them.
//
// Two pieces make up the package. A Delegate binds a free function or a method
// of a specific receiver to one uniform call signature, and can later tell
// whether it is bound to a given receiver and function. A Registry stores
// delegates keyed by event type and calls them, in registration order, when an
// event of that type is emitted.
//
// Quick example:
//
//	type Msg struct{ Text string }
//
//	type Printer struct{}
//
//	func (p *Printer) OnMsg(m Msg) { fmt.Println(m.Text) }
//
//	bus := signalbus.New()
//	p := &Printer{}
//
//	signalbus.Bind(bus, p, (*Printer).OnMsg)
//	signalbus.Emit(bus, Msg{Text: "hi"}) // hi
//	signalbus.Unbind(bus, p, (*Printer).OnMsg)
//	signalbus.Emit(bus, Msg{Text: "bye"}) // nothing
//
// Emit is synchronous: every receiver runs on the caller's goroutine before
// Emit returns. Receivers are referenced, not owned; unbind a receiver before
// discarding it.
package signalbus

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
)

// ErrUnboundCall is returned (or raised) when a Delegate with nothing bound is called.
var ErrUnboundCall = errors.New("signalbus: call on unbound delegate")

// Symbol identifies a bound function independently of any receiver.
type Symbol struct {
	// Owner is the receiver type for methods, nil for free functions.
	Owner reflect.Type

	// Name is the fully qualified function name.
	Name string
}

// String returns the function name, qualified by the owner type when present.
func (s Symbol) String() string {
	if s.Owner == nil {
		return s.Name
	}
	return fmt.Sprintf("%s (%s)", s.Name, s.Owner)
}

// symbolOf resolves the identity of fn. Every evaluation of the same function
// or method expression yields the same code pointer, so the name is stable.
func symbolOf(owner reflect.Type, fn any) Symbol {
	pc := reflect.ValueOf(fn).Pointer()
	name := fmt.Sprintf("func@%#x", pc)
	if f := runtime.FuncForPC(pc); f != nil {
		name = f.Name()
	}
	return Symbol{Owner: owner, Name: name}
}

// methodSymbol resolves the identity of a method expression on C.
func methodSymbol[C any](method any) Symbol {
	return symbolOf(reflect.TypeFor[C](), method)
}

// PanicHandler is called when a receiver panics during Emit.
// Receives the event type being dispatched and the recovered panic value.
type PanicHandler func(eventType reflect.Type, recovered any)

// Stats provides a point-in-time view of a Registry's bindings.
type Stats struct {
	// EventTypes is the number of event types with at least one binding.
	EventTypes int

	// Bindings maps each event type to the number of bound receivers.
	Bindings map[reflect.Type]int
}
