package signalbus

import (
	"log"
	"sync"
)

var (
	defaultOptions []Option
	defaultOptMu   sync.Mutex
)

// Option configures a Registry.
type Option func(*Registry)

// Configure sets options for the default Registry.
// Must be called before the first call to Default.
// Subsequent calls have no effect once the default instance is created.
func Configure(opts ...Option) {
	defaultOptMu.Lock()
	defaultOptions = opts
	defaultOptMu.Unlock()
}

// WithPanicHandler sets a callback to be invoked when a receiver panics
// during Emit. The panic is recovered and dispatch continues with the next
// receiver. Without a handler, receiver panics propagate to the Emit caller.
func WithPanicHandler(handler PanicHandler) Option {
	return func(r *Registry) {
		r.panicHandler = handler
	}
}

// WithLogger traces Bind, Unbind and Emit calls to logger.
// A nil logger disables tracing, which is the default.
func WithLogger(logger *log.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}
