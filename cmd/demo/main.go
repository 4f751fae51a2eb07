package main

import (
	"os"

	"github.com/hashicorp/cli"
	hclog "github.com/hashicorp/go-hclog"
)

func main() {
	ui := &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "linkedds-demo",
		Level:  hclog.Info,
		Output: &cli.UiWriter{Ui: ui},
	})

	c := cli.NewCLI("linkedds-demo", "0.1.0")
	c.Args = os.Args[1:]
	c.Commands = Commands(Meta{Ui: ui, Logger: logger})

	exitStatus, err := c.Run()
	if err != nil {
		logger.Error("command exited with non-zero status", "status", exitStatus, "error", err)
	}
	os.Exit(exitStatus)
}
