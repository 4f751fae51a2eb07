// Package production provides integrations around the containers: stream
// codecs for AssocList snapshots, Graphviz export and deep cloning.
package production

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-msgpack/v2/codec"
	"gopkg.in/yaml.v3"

	"github.com/comalice/linkedds"
)

var ErrUnknownFormat = errors.New("unknown format")

// Codec encodes an AssocList to a stream and decodes it back, keeping entry
// order.
type Codec[K comparable, V any] interface {
	Encode(w io.Writer, l *linkedds.AssocList[K, V]) error
	// Decode replaces the contents of into. into is left untouched on error.
	Decode(r io.Reader, into *linkedds.AssocList[K, V]) error
}

// CodecFor returns the codec registered under format: json, yaml or msgpack.
func CodecFor[K comparable, V any](format string) (Codec[K, V], error) {
	switch format {
	case "json":
		return JSONCodec[K, V]{Indent: "  "}, nil
	case "yaml":
		return YAMLCodec[K, V]{}, nil
	case "msgpack":
		return MsgpackCodec[K, V]{}, nil
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// JSONCodec is a stdlib-only codec writing the list as an array of
// {"key","value"} objects.
type JSONCodec[K comparable, V any] struct {
	Indent string
}

func (c JSONCodec[K, V]) Encode(w io.Writer, l *linkedds.AssocList[K, V]) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", c.Indent)
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

func (c JSONCodec[K, V]) Decode(r io.Reader, into *linkedds.AssocList[K, V]) error {
	var pairs []linkedds.Pair[K, V]
	if err := json.NewDecoder(r).Decode(&pairs); err != nil {
		return fmt.Errorf("json decode: %w", err)
	}
	into.Clear()
	into.SetPairs(pairs)
	return nil
}

// YAMLCodec writes the list as an ordered YAML mapping.
type YAMLCodec[K comparable, V any] struct{}

func (YAMLCodec[K, V]) Encode(w io.Writer, l *linkedds.AssocList[K, V]) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return nil
}

func (YAMLCodec[K, V]) Decode(r io.Reader, into *linkedds.AssocList[K, V]) error {
	// decode into a scratch list so into keeps its contents on error
	var scratch linkedds.AssocList[K, V]
	if err := yaml.NewDecoder(r).Decode(&scratch); err != nil {
		if errors.Is(err, io.EOF) {
			into.Clear()
			return nil
		}
		return fmt.Errorf("yaml decode: %w", err)
	}
	into.Clear()
	into.SetPairs(scratch.Pairs())
	return nil
}

// msgpackHandle is shared by every MsgpackCodec. RawToString lives on the
// embedded DecodeOptions, so it is set after construction.
var msgpackHandle = func() *codec.MsgpackHandle {
	h := &codec.MsgpackHandle{}
	h.RawToString = true
	return h
}()

// MsgpackCodec writes the list as a msgpack array of key/value maps.
type MsgpackCodec[K comparable, V any] struct{}

func (MsgpackCodec[K, V]) Encode(w io.Writer, l *linkedds.AssocList[K, V]) error {
	if err := codec.NewEncoder(w, msgpackHandle).Encode(l.Pairs()); err != nil {
		return fmt.Errorf("msgpack encode: %w", err)
	}
	return nil
}

func (MsgpackCodec[K, V]) Decode(r io.Reader, into *linkedds.AssocList[K, V]) error {
	var pairs []linkedds.Pair[K, V]
	if err := codec.NewDecoder(r, msgpackHandle).Decode(&pairs); err != nil {
		return fmt.Errorf("msgpack decode: %w", err)
	}
	into.Clear()
	into.SetPairs(pairs)
	return nil
}
