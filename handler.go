package signalbus

import "reflect"

// binding is the payload-independent view of an eventHandler, letting handlers
// for unrelated event types share one registry.
type binding interface {
	matches(receiver any, symbol Symbol) bool
	symbol() Symbol
}

// eventHandler wraps the delegate for one subscription to events of type E.
type eventHandler[E any] struct {
	delegate Delegate[E, struct{}]
}

func newMethodHandler[E, C any](receiver *C, method func(*C, E)) *eventHandler[E] {
	h := &eventHandler[E]{}
	h.delegate.set(receiver, methodSymbol[C](method), func(r any, event E) struct{} {
		method(r.(*C), event)
		return struct{}{}
	})
	return h
}

func newFuncHandler[E any](fn func(E)) *eventHandler[E] {
	h := &eventHandler[E]{}
	h.delegate.set(nil, symbolOf(nil, fn), func(_ any, event E) struct{} {
		fn(event)
		return struct{}{}
	})
	return h
}

// emit forwards event to the bound receiver.
func (h *eventHandler[E]) emit(event E) {
	h.delegate.Call(event)
}

func (h *eventHandler[E]) matches(receiver any, symbol Symbol) bool {
	return h.delegate.matches(receiver, symbol)
}

func (h *eventHandler[E]) symbol() Symbol {
	return h.delegate.symbol
}

// Subscription is the handle for one BindFunc binding.
// Call Close to remove that binding and nothing else.
type Subscription struct {
	registry *Registry
	key      reflect.Type
	bound    binding
}

// Close removes the binding from its registry. Closing twice, or closing a
// nil Subscription, is a no-op.
func (s *Subscription) Close() {
	if s == nil {
		return
	}
	s.registry.removeBinding(s.key, s.bound)
}
