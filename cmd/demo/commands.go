package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/comalice/linkedds"
	"github.com/comalice/linkedds/internal/extensibility"
	"github.com/comalice/linkedds/internal/production"
)

// AssocCommand builds an AssocList from key=value arguments, filters it and
// prints it.
type AssocCommand struct {
	Meta
}

func (c *AssocCommand) Help() string {
	helpText := `
Usage: linkedds-demo assoc [options] <key=value>...

  Sets every key=value pair, in order, into an associative list, applies the
  requested filters and prints the result. Repeating a key replaces its value
  without moving it.

Assoc Options:

  -select=<expr>
    Keep only entries matching expr, e.g. "value > 3" or "key == a".

  -reject=<expr>
    Drop entries matching expr.

  -delete=<key>
    Delete key before filtering. A missing key is reported, not an error.

  -format=<format>
    Output format: text, json, yaml, msgpack or dot. Defaults to text.

` + generalOptionsUsage
	return strings.TrimSpace(helpText)
}

func (c *AssocCommand) Synopsis() string {
	return "Build, filter and print an associative list"
}

func (c *AssocCommand) Run(args []string) int {
	var selectExpr, rejectExpr, deleteKey, format string
	flags := c.Meta.FlagSet("assoc")
	flags.StringVar(&selectExpr, "select", "", "")
	flags.StringVar(&rejectExpr, "reject", "", "")
	flags.StringVar(&deleteKey, "delete", "", "")
	flags.StringVar(&format, "format", "text", "")
	if err := flags.Parse(args); err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	c.Meta.applyLogLevel()

	l := linkedds.NewAssocList[string, string]()
	for _, arg := range flags.Args() {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			c.Ui.Error(fmt.Sprintf("Argument %q is not key=value", arg))
			return 1
		}
		l.Set(key, value)
	}
	c.Logger.Debug("built list", "entries", l.Len())

	if deleteKey != "" {
		v := l.DeleteOr(deleteKey, func(k string) string {
			c.Logger.Warn("key not present", "key", k)
			return ""
		})
		c.Logger.Info("deleted", "key", deleteKey, "value", v)
	}

	for _, f := range []struct {
		expr  string
		apply func(extensibility.Predicate)
	}{
		{selectExpr, func(p extensibility.Predicate) { l.SelectInPlace(p) }},
		{rejectExpr, func(p extensibility.Predicate) { l.RejectInPlace(p) }},
	} {
		if f.expr == "" {
			continue
		}
		p, err := extensibility.ParsePredicate(f.expr)
		if err != nil {
			c.Ui.Error(fmt.Sprintf("Error parsing filter: %s", err))
			return 1
		}
		c.timed("filter "+f.expr, func() { f.apply(p) })
	}

	out, err := formatAssoc(l, format)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Error formatting list: %s", err))
		return 1
	}
	c.Ui.Output(out)
	return 0
}

func formatAssoc(l *linkedds.AssocList[string, string], format string) (string, error) {
	switch format {
	case "text":
		return l.String(), nil
	case "dot":
		return production.AssocListDOT(&production.DOTVisualizer{}, l), nil
	}

	codec, err := production.CodecFor[string, string](format)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := codec.Encode(&buf, l); err != nil {
		return "", err
	}
	if format == "msgpack" {
		return fmt.Sprintf("%x", buf.Bytes()), nil
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// StackCommand pushes its arguments and pops them back.
type StackCommand struct {
	Meta
}

func (c *StackCommand) Help() string {
	helpText := `
Usage: linkedds-demo stack [options] <value>...

  Pushes every value onto a stack, prints the stack, then pops until empty
  and prints the popped values in order.

Stack Options:

  -dot
    Print the stack as Graphviz DOT before popping.

` + generalOptionsUsage
	return strings.TrimSpace(helpText)
}

func (c *StackCommand) Synopsis() string {
	return "Push values onto a stack and pop them back"
}

func (c *StackCommand) Run(args []string) int {
	var dot bool
	flags := c.Meta.FlagSet("stack")
	flags.BoolVar(&dot, "dot", false, "")
	if err := flags.Parse(args); err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	c.Meta.applyLogLevel()

	s := linkedds.NewStack[string]()
	for _, v := range flags.Args() {
		s.Push(v)
	}
	if dot {
		c.Ui.Output(production.StackDOT(&production.DOTVisualizer{}, s))
	} else {
		c.Ui.Output(s.String())
	}

	var popped []string
	c.timed("drain stack", func() {
		for v, ok := s.Pop(); ok; v, ok = s.Pop() {
			popped = append(popped, v)
		}
	})
	c.Ui.Output("popped: " + strings.Join(popped, " "))
	return 0
}

// QueueCommand enqueues its arguments and dequeues them back.
type QueueCommand struct {
	Meta
}

func (c *QueueCommand) Help() string {
	helpText := `
Usage: linkedds-demo queue [options] <value>...

  Enqueues every value, prints the queue, then dequeues until empty and
  prints the dequeued values in order.

Queue Options:

  -dot
    Print the queue as Graphviz DOT before dequeuing.

` + generalOptionsUsage
	return strings.TrimSpace(helpText)
}

func (c *QueueCommand) Synopsis() string {
	return "Enqueue values and dequeue them back"
}

func (c *QueueCommand) Run(args []string) int {
	var dot bool
	flags := c.Meta.FlagSet("queue")
	flags.BoolVar(&dot, "dot", false, "")
	if err := flags.Parse(args); err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	c.Meta.applyLogLevel()

	q := linkedds.NewQueue[string]()
	for _, v := range flags.Args() {
		q.Enqueue(v)
	}
	if dot {
		c.Ui.Output(production.QueueDOT(&production.DOTVisualizer{}, q))
	} else {
		c.Ui.Output(q.String())
	}

	var dequeued []string
	c.timed("drain queue", func() {
		for v, ok := q.Dequeue(); ok; v, ok = q.Dequeue() {
			dequeued = append(dequeued, v)
		}
	})
	c.Ui.Output("dequeued: " + strings.Join(dequeued, " "))
	return 0
}
