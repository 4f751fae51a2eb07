// Package benchmarks provides AssocList throughput benchmarks.
package benchmarks

import (
	"fmt"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/comalice/linkedds"
)

func BenchmarkAssocListSet(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("entries=%d", n), func(b *testing.B) {
			keys := GenKeys(n)
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				l := linkedds.NewAssocList[string, int]()
				for j, k := range keys {
					l.Set(k, j)
				}
			}
		})
	}
}

func BenchmarkAssocListGetLast(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("entries=%d", n), func(b *testing.B) {
			l := GenAssocList(n)
			last := fmt.Sprintf("k%d", n-1)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, ok := l.Get(last); !ok {
					b.Fatal("missing key")
				}
			}
		})
	}
}

func BenchmarkAssocListSelect(b *testing.B) {
	l := GenAssocList(1000)
	even := func(_ string, v int) bool { return v%2 == 0 }
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if got := l.Select(even); got.Len() != 500 {
			b.Fatalf("got %d entries", got.Len())
		}
	}
}

func BenchmarkAssocListYAML(b *testing.B) {
	data := GenSnapshotYAML(100)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var l linkedds.AssocList[string, int]
		if err := yaml.Unmarshal(data, &l); err != nil {
			b.Fatal(err)
		}
	}
}
