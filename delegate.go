package signalbus

// Delegate is a callable bound to a function and an optional receiver, invoked
// through the single signature func(A) R. Functions taking several arguments
// are bound with a struct as A.
//
// The zero value is unbound. A Delegate stores references only; it does not
// own its receiver. Delegates are copyable; copies share the receiver.
type Delegate[A, R any] struct {
	receiver any
	stub     func(receiver any, arg A) R
	symbol   Symbol
}

// set replaces every field at once so a Delegate is never half bound.
func (d *Delegate[A, R]) set(receiver any, symbol Symbol, stub func(any, A) R) {
	*d = Delegate[A, R]{receiver: receiver, stub: stub, symbol: symbol}
}

// Bind binds a free function. Any previous binding and receiver are dropped.
// Binding nil leaves the delegate unbound.
func (d *Delegate[A, R]) Bind(fn func(A) R) {
	if fn == nil {
		d.Reset()
		return
	}
	d.set(nil, symbolOf(nil, fn), func(_ any, arg A) R {
		return fn(arg)
	})
}

// BindMethod binds a pointer-receiver method expression, such as
// (*Counter).Add, to receiver. The method may mutate the receiver.
func BindMethod[C, A, R any](d *Delegate[A, R], receiver *C, method func(*C, A) R) {
	if method == nil {
		d.Reset()
		return
	}
	d.set(receiver, methodSymbol[C](method), func(r any, arg A) R {
		return method(r.(*C), arg)
	})
}

// BindConstMethod binds a value-receiver method expression, such as
// Counter.Peek, to receiver. The method sees a copy of *receiver taken at
// call time and cannot mutate it.
func BindConstMethod[C, A, R any](d *Delegate[A, R], receiver *C, method func(C, A) R) {
	if method == nil {
		d.Reset()
		return
	}
	d.set(receiver, methodSymbol[C](method), func(r any, arg A) R {
		return method(*r.(*C), arg)
	})
}

// Reset unbinds the delegate.
func (d *Delegate[A, R]) Reset() {
	*d = Delegate[A, R]{}
}

// IsBound reports whether a function is bound.
func (d Delegate[A, R]) IsBound() bool {
	return d.stub != nil
}

// Symbol returns the identity of the bound function, or the zero Symbol.
func (d Delegate[A, R]) Symbol() Symbol {
	return d.symbol
}

// Invoke calls the bound function with arg.
// Returns ErrUnboundCall if nothing is bound.
func (d Delegate[A, R]) Invoke(arg A) (R, error) {
	if d.stub == nil {
		var zero R
		return zero, ErrUnboundCall
	}
	return d.stub(d.receiver, arg), nil
}

// Call is like Invoke but panics with ErrUnboundCall if nothing is bound.
func (d Delegate[A, R]) Call(arg A) R {
	if d.stub == nil {
		panic(ErrUnboundCall)
	}
	return d.stub(d.receiver, arg)
}

// MatchesFunc reports whether d is bound to the free function fn.
func (d Delegate[A, R]) MatchesFunc(fn func(A) R) bool {
	if fn == nil {
		return false
	}
	return d.matches(nil, symbolOf(nil, fn))
}

// MatchesMethod reports whether d is bound to method on exactly receiver.
func MatchesMethod[C, A, R any](d Delegate[A, R], receiver *C, method func(*C, A) R) bool {
	if method == nil {
		return false
	}
	return d.matches(receiver, methodSymbol[C](method))
}

// MatchesConstMethod reports whether d is bound to the value-receiver method
// on exactly receiver.
func MatchesConstMethod[C, A, R any](d Delegate[A, R], receiver *C, method func(C, A) R) bool {
	if method == nil {
		return false
	}
	return d.matches(receiver, methodSymbol[C](method))
}

func (d Delegate[A, R]) matches(receiver any, symbol Symbol) bool {
	return d.stub != nil && d.receiver == receiver && d.symbol == symbol
}
