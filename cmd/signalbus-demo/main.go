// Command signalbus-demo binds a printer to a string event, emits the
// configured messages, then unbinds and emits once more to show the printer
// no longer receives anything. Each delivered line is prefixed with the
// event's ID.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"

	"github.com/zoobzio/signalbus"
)

type config struct {
	Messages []string `env:"SIGNALBUS_DEMO_MESSAGES" envDefault:"Test1,Test2"`
	Verbose  bool     `env:"SIGNALBUS_DEMO_VERBOSE"`
}

// StringEvent carries one line of text, tagged with an ID so its delivery can
// be traced back to the emit that produced it.
type StringEvent struct {
	ID   string
	Text string
}

type printer struct {
	out io.Writer
}

func (p *printer) Say(e StringEvent) {
	fmt.Fprintf(p.out, "%s %s\n", e.ID, e.Text)
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse env: %v", err)
	}
	run(cfg, os.Stdout)
}

func run(cfg config, out io.Writer) {
	var opts []signalbus.Option
	if cfg.Verbose {
		opts = append(opts, signalbus.WithLogger(log.New(os.Stderr, "", log.LstdFlags)))
	}
	bus := signalbus.New(opts...)

	p := &printer{out: out}
	signalbus.Bind(bus, p, (*printer).Say)

	for _, text := range cfg.Messages {
		emit(bus, cfg.Verbose, text)
	}

	signalbus.Unbind(bus, p, (*printer).Say)
	emit(bus, cfg.Verbose, "unheard")
}

func emit(bus *signalbus.Registry, verbose bool, text string) {
	event := StringEvent{ID: uuid.NewString(), Text: text}
	if verbose {
		log.Printf("Emitting event %s: %q", event.ID, event.Text)
	}
	signalbus.Emit(bus, event)
}
