package testutil

import (
	"slices"
	"testing"

	"github.com/shoenig/test/must"
	"pgregory.net/rapid"
)

func adapters() []struct {
	name string
	seq  func() Sequence[int]
} {
	return []struct {
		name string
		seq  func() Sequence[int]
	}{
		{name: "Stack", seq: func() Sequence[int] { return NewStackAdapter[int]() }},
		{name: "Queue", seq: func() Sequence[int] { return NewQueueAdapter[int]() }},
	}
}

// TestSequenceInterface runs one suite against both containers.
func TestSequenceInterface(t *testing.T) {
	for _, tc := range adapters() {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.seq()
			must.True(t, s.IsEmpty())
			_, ok := s.Take()
			must.False(t, ok)
			_, ok = s.Peek()
			must.False(t, ok)

			puts := []int{1, 2, 3}
			for _, v := range puts {
				s.Put(v)
			}
			must.Eq(t, 3, s.Len())

			var got []int
			for !s.IsEmpty() {
				v, ok := s.Take()
				must.True(t, ok)
				got = append(got, v)
			}
			must.Eq(t, Expected(s.Order(), puts), got)

			s.Put(9)
			s.Clear()
			must.Eq(t, 0, s.Len())
			_, ok = s.Take()
			must.False(t, ok)
		})
	}
}

func TestSequence_PropInterleaved(t *testing.T) {
	for _, tc := range adapters() {
		t.Run(tc.name, func(t *testing.T) {
			rapid.Check(t, func(t *rapid.T) {
				s := tc.seq()
				var ref []int
				ops := rapid.SliceOf(rapid.IntRange(-1, 100)).Draw(t, "ops")
				for _, op := range ops {
					if op >= 0 {
						s.Put(op)
						ref = append(ref, op)
						continue
					}
					v, ok := s.Take()
					must.Eq(t, len(ref) > 0, ok)
					if !ok {
						continue
					}
					var want int
					if s.Order() == LIFO {
						want, ref = ref[len(ref)-1], ref[:len(ref)-1]
					} else {
						want, ref = ref[0], ref[1:]
					}
					must.Eq(t, want, v)
				}
				must.Eq(t, len(ref), s.Len())

				peek, ok := s.Peek()
				if len(ref) > 0 {
					must.True(t, ok)
					if s.Order() == LIFO {
						must.Eq(t, ref[len(ref)-1], peek)
					} else {
						must.Eq(t, ref[0], peek)
					}
				}
				must.Eq(t, len(ref), s.Len())
			})
		})
	}
}

func TestExpected(t *testing.T) {
	puts := []string{"a", "b", "c"}
	must.Eq(t, []string{"c", "b", "a"}, Expected(LIFO, puts))
	must.Eq(t, []string{"a", "b", "c"}, Expected(FIFO, puts))
	must.True(t, slices.Equal(puts, []string{"a", "b", "c"}))
	must.Eq(t, "LIFO", LIFO.String())
	must.Eq(t, "FIFO", FIFO.String())
}
