package linkedds

import "iter"

// Queue is a FIFO container. The zero value is an empty queue ready to use.
type Queue[T any] struct {
	head  *element[T]
	tail  *element[T]
	count int
}

// NewQueue returns an empty queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue adds value at the rear.
func (q *Queue[T]) Enqueue(value T) {
	e := &element[T]{value: value}
	if q.head == nil {
		q.head = e
	} else {
		q.tail.next = e
	}
	q.tail = e
	q.count++
}

// Dequeue removes and returns the front value. ok is false if the queue is
// empty.
func (q *Queue[T]) Dequeue() (value T, ok bool) {
	if q.head == nil {
		return value, false
	}
	front := q.head
	q.head = front.detach()
	q.count--
	if q.head == nil {
		q.tail = nil
	}
	return front.value, true
}

// Peek returns the front value without removing it.
func (q *Queue[T]) Peek() (value T, ok bool) {
	if q.head == nil {
		return value, false
	}
	return q.head.value, true
}

// Clear drops every value.
func (q *Queue[T]) Clear() {
	q.head = nil
	q.tail = nil
	q.count = 0
}

func (q *Queue[T]) IsEmpty() bool {
	return q.count == 0
}

// Count returns the number of queued values.
func (q *Queue[T]) Count() int {
	return q.count
}

// Len is Count, so that Queue and Stack share a method set.
func (q *Queue[T]) Len() int {
	return q.count
}

// All yields values from front to rear without dequeuing them.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := q.head; e != nil; e = e.next {
			if !yield(e.value) {
				return
			}
		}
	}
}
