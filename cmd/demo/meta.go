package main

import (
	"flag"
	"io"
	"time"

	"github.com/hashicorp/cli"
	hclog "github.com/hashicorp/go-hclog"
)

// Meta holds what every demo command shares.
type Meta struct {
	Ui     cli.Ui
	Logger hclog.Logger

	logLevel string
}

// Commands returns the factories for every demo command.
func Commands(meta Meta) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"assoc": func() (cli.Command, error) { return &AssocCommand{Meta: meta}, nil },
		"stack": func() (cli.Command, error) { return &StackCommand{Meta: meta}, nil },
		"queue": func() (cli.Command, error) { return &QueueCommand{Meta: meta}, nil },
	}
}

// FlagSet returns a flag set carrying the shared -log-level flag.
func (m *Meta) FlagSet(name string) *flag.FlagSet {
	f := flag.NewFlagSet(name, flag.ContinueOnError)
	f.SetOutput(io.Discard)
	f.StringVar(&m.logLevel, "log-level", "info", "")
	return f
}

// applyLogLevel sets the logger level after flags are parsed.
func (m *Meta) applyLogLevel() {
	if lvl := hclog.LevelFromString(m.logLevel); lvl != hclog.NoLevel {
		m.Logger.SetLevel(lvl)
	}
}

// timed logs around op the way every command reports its work.
func (m *Meta) timed(op string, fn func()) {
	m.Logger.Debug("running", "op", op)
	start := time.Now()
	fn()
	m.Logger.Debug("finished", "op", op, "duration", time.Since(start))
}

const generalOptionsUsage = `General Options:

  -log-level=<level>
    Logger level: trace, debug, info, warn or error. Defaults to info.`
