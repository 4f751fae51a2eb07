package linkedds

import "iter"

// Stack is a LIFO container. The zero value is an empty stack ready to use.
type Stack[T any] struct {
	head  *element[T]
	count int
}

// NewStack returns an empty stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push places value on top of the stack.
func (s *Stack[T]) Push(value T) {
	s.head = &element[T]{value: value, next: s.head}
	s.count++
}

// Pop removes and returns the top value. ok is false if the stack is empty.
func (s *Stack[T]) Pop() (value T, ok bool) {
	if s.head == nil {
		return value, false
	}
	top := s.head
	s.head = top.detach()
	s.count--
	return top.value, true
}

// Peek returns the top value without removing it.
func (s *Stack[T]) Peek() (value T, ok bool) {
	if s.head == nil {
		return value, false
	}
	return s.head.value, true
}

// Clear drops every value.
func (s *Stack[T]) Clear() {
	s.head = nil
	s.count = 0
}

func (s *Stack[T]) IsEmpty() bool {
	return s.count == 0
}

func (s *Stack[T]) Len() int {
	return s.count
}

// All yields values from top to bottom without popping them.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := s.head; e != nil; e = e.next {
			if !yield(e.value) {
				return
			}
		}
	}
}
