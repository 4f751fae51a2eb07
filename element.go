package linkedds

// element is the node shared by Stack and Queue.
type element[T any] struct {
	value T
	next  *element[T]
}

// detach clears the outgoing link of e and returns what it pointed at.
func (e *element[T]) detach() *element[T] {
	next := e.next
	e.next = nil
	return next
}
