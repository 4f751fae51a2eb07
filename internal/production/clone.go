package production

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/mitchellh/copystructure"

	"github.com/comalice/linkedds"
)

// ErrLossyCopy is returned by DeepClone when a copied value no longer equals
// its source, e.g. a struct with unexported fields, which copystructure
// leaves zeroed.
var ErrLossyCopy = errors.New("value does not survive a deep copy")

// DeepClone is AssocList.Clone that also copies every value, so values holding
// slices, maps or pointers are not shared with l. Every copy must be
// reflect.DeepEqual to its source; otherwise DeepClone returns ErrLossyCopy
// and no list.
func DeepClone[K comparable, V any](l *linkedds.AssocList[K, V]) (*linkedds.AssocList[K, V], error) {
	c := l.Clone()
	for k, v := range l.All() {
		raw, err := copystructure.Copy(v)
		if err != nil {
			return nil, fmt.Errorf("copy value of %v: %w", k, err)
		}
		var copied V
		if raw != nil {
			copied = raw.(V)
		}
		if !reflect.DeepEqual(copied, v) {
			return nil, fmt.Errorf("copy value of %v: %w", k, ErrLossyCopy)
		}
		c.Set(k, copied)
	}
	return c, nil
}
