package signalbus_test

import (
	"errors"
	"fmt"

	"github.com/zoobzio/signalbus"
)

type Msg struct {
	Text string
}

type Printer struct {
	Prefix string
}

func (p *Printer) OnMsg(m Msg) {
	fmt.Println(p.Prefix + m.Text)
}

func Example() {
	bus := signalbus.New()
	p := &Printer{Prefix: "got: "}

	signalbus.Bind(bus, p, (*Printer).OnMsg)
	signalbus.Emit(bus, Msg{Text: "hi"})

	signalbus.Unbind(bus, p, (*Printer).OnMsg)
	signalbus.Emit(bus, Msg{Text: "bye"})
	// Output:
	// got: hi
}

func ExampleBindFunc() {
	bus := signalbus.New()

	signalbus.BindFunc(bus, func(n int) { fmt.Println("first", n) })
	signalbus.BindFunc(bus, func(n int) { fmt.Println("second", n) })
	signalbus.Emit(bus, 7)
	// Output:
	// first 7
	// second 7
}

func ExampleDelegate() {
	var d signalbus.Delegate[string, int]

	if _, err := d.Invoke("unbound"); errors.Is(err, signalbus.ErrUnboundCall) {
		fmt.Println("not bound yet")
	}

	d.Bind(func(s string) int { return len(s) })
	n, _ := d.Invoke("hello")
	fmt.Println(n)
	// Output:
	// not bound yet
	// 5
}

func ExampleBindMethod() {
	var d signalbus.Delegate[Msg, struct{}]
	p := &Printer{Prefix: "> "}

	signalbus.BindMethod(&d, p, func(p *Printer, m Msg) struct{} {
		p.OnMsg(m)
		return struct{}{}
	})
	d.Call(Msg{Text: "bound"})
	// Output:
	// > bound
}
