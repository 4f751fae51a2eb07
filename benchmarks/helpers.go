// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/comalice/linkedds"
)

// GenAssocList creates a list with n entries "k0".."k{n-1}" mapped to their
// index.
func GenAssocList(n int) *linkedds.AssocList[string, int] {
	l := linkedds.NewAssocList[string, int]()
	for i := 0; i < n; i++ {
		l.Set(fmt.Sprintf("k%d", i), i)
	}
	return l
}

// GenKeys returns the keys GenAssocList uses for n entries.
func GenKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("k%d", i)
	}
	return keys
}

// GenSnapshotYAML generates YAML bytes for a list of the given size.
func GenSnapshotYAML(n int) []byte {
	data, err := yaml.Marshal(GenAssocList(n))
	if err != nil {
		panic(err)
	}
	return data
}
