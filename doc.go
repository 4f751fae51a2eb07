// Package linkedds provides generic containers built on singly linked chains
// of owned nodes.
//
//   - AssocList: ordered key/value list with upsert, lookup and filtering
//   - Stack: LIFO container
//   - Queue: FIFO container
//
// # Example Usage
//
//	l := linkedds.NewAssocList[string, int]()
//	l.Set("a", 1)
//	l.Set("b", 2)
//	v, ok := l.Get("b") // 2, true
//
//	s := &linkedds.Stack[int]{}
//	s.Push(1)
//	top, _ := s.Pop()
//
// # Ownership
//
// Every node is owned by exactly one slot: the container's head or the
// previous node's next link. Detached nodes have their next link cleared
// before they are dropped. Nodes are never returned to callers; the API only
// deals in keys, values, booleans and counts.
//
// # Absence
//
// Lookups and removals on a missing key or an empty container report absence
// through a comma-ok boolean. No operation panics or returns an error for
// routine absence.
//
// Containers are not safe for concurrent use.
package linkedds
