package testutil

import "github.com/comalice/linkedds"

// Order is the removal order of a Sequence.
type Order int

const (
	LIFO Order = iota
	FIFO
)

func (o Order) String() string {
	if o == LIFO {
		return "LIFO"
	}
	return "FIFO"
}

// Sequence provides a common interface for Stack and Queue.
// This allows running the same test suite on both containers.
type Sequence[T any] interface {
	Put(v T)
	Take() (T, bool)
	Peek() (T, bool)
	Len() int
	IsEmpty() bool
	Clear()
	Order() Order
}

// StackAdapter wraps a Stack.
type StackAdapter[T any] struct {
	s *linkedds.Stack[T]
}

// NewStackAdapter creates a new adapter around an empty stack.
func NewStackAdapter[T any]() *StackAdapter[T] {
	return &StackAdapter[T]{s: linkedds.NewStack[T]()}
}

func (a *StackAdapter[T]) Put(v T) { a.s.Push(v) }
func (a *StackAdapter[T]) Take() (T, bool) { return a.s.Pop() }
func (a *StackAdapter[T]) Peek() (T, bool) { return a.s.Peek() }
func (a *StackAdapter[T]) Len() int { return a.s.Len() }
func (a *StackAdapter[T]) IsEmpty() bool { return a.s.IsEmpty() }
func (a *StackAdapter[T]) Clear() { a.s.Clear() }
func (a *StackAdapter[T]) Order() Order { return LIFO }
func (a *StackAdapter[T]) String() string { return a.s.String() }

// QueueAdapter wraps a Queue.
type QueueAdapter[T any] struct {
	q *linkedds.Queue[T]
}

// NewQueueAdapter creates a new adapter around an empty queue.
func NewQueueAdapter[T any]() *QueueAdapter[T] {
	return &QueueAdapter[T]{q: linkedds.NewQueue[T]()}
}

func (a *QueueAdapter[T]) Put(v T) { a.q.Enqueue(v) }
func (a *QueueAdapter[T]) Take() (T, bool) { return a.q.Dequeue() }
func (a *QueueAdapter[T]) Peek() (T, bool) { return a.q.Peek() }
func (a *QueueAdapter[T]) Len() int { return a.q.Count() }
func (a *QueueAdapter[T]) IsEmpty() bool { return a.q.IsEmpty() }
func (a *QueueAdapter[T]) Clear() { a.q.Clear() }
func (a *QueueAdapter[T]) Order() Order { return FIFO }
func (a *QueueAdapter[T]) String() string { return a.q.String() }

// Expected returns the order in which a Sequence of the given Order hands
// back values that were put in as puts.
func Expected[T any](o Order, puts []T) []T {
	out := make([]T, len(puts))
	for i, v := range puts {
		if o == LIFO {
			out[len(puts)-1-i] = v
		} else {
			out[i] = v
		}
	}
	return out
}
