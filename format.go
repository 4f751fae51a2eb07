package linkedds

import (
	"fmt"
	"iter"
	"strings"
)

// String renders the list as AssocList[k1:v1 k2:v2].
func (l *AssocList[K, V]) String() string {
	var b strings.Builder
	b.WriteString("AssocList[")
	sep := ""
	for n := l.head; n != nil; n = n.next {
		fmt.Fprintf(&b, "%s%v:%v", sep, n.key, n.value)
		sep = " "
	}
	b.WriteString("]")
	return b.String()
}

// String renders the stack top first, as Stack[3 2 1].
func (s *Stack[T]) String() string {
	return formatSeq("Stack", s.All())
}

// String renders the queue front first, as Queue[1 2 3].
func (q *Queue[T]) String() string {
	return formatSeq("Queue", q.All())
}

func formatSeq[T any](name string, seq iter.Seq[T]) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString("[")
	sep := ""
	for v := range seq {
		fmt.Fprintf(&b, "%s%v", sep, v)
		sep = " "
	}
	b.WriteString("]")
	return b.String()
}
