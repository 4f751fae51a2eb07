package production

import (
	"bytes"
	"fmt"

	"github.com/comalice/linkedds"
)

// DOTVisualizer renders container chains as Graphviz DOT source.
type DOTVisualizer struct {
	// RankDir is the graph layout direction; LR when empty.
	RankDir string
}

// AssocListDOT renders l with one node per entry, labelled "key: value".
func AssocListDOT[K comparable, V any](v *DOTVisualizer, l *linkedds.AssocList[K, V]) string {
	var labels []string
	for k, val := range l.All() {
		labels = append(labels, fmt.Sprintf("%v: %v", k, val))
	}
	return v.ExportDOT("AssocList", labels, true)
}

// StackDOT renders s top first. Stacks have no tail marker.
func StackDOT[T any](v *DOTVisualizer, s *linkedds.Stack[T]) string {
	var labels []string
	for val := range s.All() {
		labels = append(labels, fmt.Sprint(val))
	}
	return v.ExportDOT("Stack", labels, false)
}

// QueueDOT renders q front first.
func QueueDOT[T any](v *DOTVisualizer, q *linkedds.Queue[T]) string {
	var labels []string
	for val := range q.All() {
		labels = append(labels, fmt.Sprint(val))
	}
	return v.ExportDOT("Queue", labels, true)
}

// ExportDOT generates DOT source for a chain whose nodes carry labels, in
// link order. A head marker points at the first node, and when withTail is
// set a dashed tail marker points at the last one.
func (v *DOTVisualizer) ExportDOT(name string, labels []string, withTail bool) string {
	rankdir := v.RankDir
	if rankdir == "" {
		rankdir = "LR"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %s {\n", name)
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  node [shape=box, fontsize=10, style=rounded];\n")
	buf.WriteString("  head [shape=plaintext];\n")
	if withTail {
		buf.WriteString("  tail [shape=plaintext];\n")
	}

	if len(labels) == 0 {
		buf.WriteString("  nil [shape=point];\n")
		buf.WriteString("  head -> nil;\n")
		if withTail {
			buf.WriteString("  tail -> nil [style=dashed];\n")
		}
		buf.WriteString("}\n")
		return buf.String()
	}

	for i, label := range labels {
		fmt.Fprintf(&buf, "  \"n%d\" [label=%q];\n", i, label)
	}
	for i := 1; i < len(labels); i++ {
		fmt.Fprintf(&buf, "  \"n%d\" -> \"n%d\";\n", i-1, i)
	}
	buf.WriteString("  head -> \"n0\";\n")
	if withTail {
		fmt.Fprintf(&buf, "  tail -> \"n%d\" [style=dashed];\n", len(labels)-1)
	}
	buf.WriteString("}\n")
	return buf.String()
}
