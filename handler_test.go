package signalbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMethodHandlerEmit verifies a method handler forwards events to its receiver.
func TestMethodHandlerEmit(t *testing.T) {
	rec := &recorder{}
	h := newMethodHandler(rec, (*recorder).OnMsg)

	h.emit(message{Text: "one"})
	h.emit(message{Text: "two"})

	assert.Equal(t, []string{"one", "two"}, rec.got)
}

// TestMethodHandlerMatches verifies handler matching delegates to receiver and symbol.
func TestMethodHandlerMatches(t *testing.T) {
	rec := &recorder{}
	var b binding = newMethodHandler(rec, (*recorder).OnMsg)

	assert.True(t, b.matches(rec, methodSymbol[recorder]((*recorder).OnMsg)))
	assert.False(t, b.matches(&recorder{}, methodSymbol[recorder]((*recorder).OnMsg)))
	assert.False(t, b.matches(rec, methodSymbol[recorder]((*recorder).OnMsgLoud)))
	assert.Equal(t, methodSymbol[recorder]((*recorder).OnMsg), b.symbol())
}

// TestFuncHandler verifies free-function handlers have no receiver.
func TestFuncHandler(t *testing.T) {
	var got []string
	fn := func(m message) { got = append(got, m.Text) }
	h := newFuncHandler(fn)

	h.emit(message{Text: "x"})

	assert.Equal(t, []string{"x"}, got)
	assert.True(t, h.matches(nil, symbolOf(nil, fn)))
	assert.False(t, h.matches(&recorder{}, symbolOf(nil, fn)))
}
