// Tests for codec round-trips and format selection.
package production

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/shoenig/test/must"

	"github.com/comalice/linkedds"
)

func sampleList() *linkedds.AssocList[string, int] {
	l := linkedds.NewAssocList[string, int]()
	l.Set("zeta", 26)
	l.Set("alpha", 1)
	l.Set("mu", 12)
	return l
}

func TestCodec_RoundTrip(t *testing.T) {
	for _, format := range []string{"json", "yaml", "msgpack"} {
		t.Run(format, func(t *testing.T) {
			c, err := CodecFor[string, int](format)
			must.NoError(t, err)

			src := sampleList()
			var buf bytes.Buffer
			must.NoError(t, c.Encode(&buf, src))

			got := linkedds.NewAssocList[string, int]()
			got.Set("stale", -1)
			must.NoError(t, c.Decode(&buf, got))
			must.True(t, got.Equal(src), must.Sprintf("got %s want %s", got, src))
		})
	}
}

func TestCodec_EmptyList(t *testing.T) {
	for _, format := range []string{"json", "yaml", "msgpack"} {
		t.Run(format, func(t *testing.T) {
			c, err := CodecFor[int, string](format)
			must.NoError(t, err)

			var buf bytes.Buffer
			must.NoError(t, c.Encode(&buf, linkedds.NewAssocList[int, string]()))

			got := linkedds.NewAssocList[int, string]()
			got.Set(1, "stale")
			must.NoError(t, c.Decode(&buf, got))
			must.True(t, got.IsEmpty())
		})
	}
}

func TestCodec_YAMLOutput(t *testing.T) {
	var buf bytes.Buffer
	must.NoError(t, YAMLCodec[string, int]{}.Encode(&buf, sampleList()))
	must.Eq(t, "zeta: 26\nalpha: 1\nmu: 12\n", buf.String())
}

func TestCodec_DecodeErrorKeepsTarget(t *testing.T) {
	for _, format := range []string{"json", "yaml", "msgpack"} {
		t.Run(format, func(t *testing.T) {
			c, err := CodecFor[string, int](format)
			must.NoError(t, err)

			target := sampleList()
			err = c.Decode(strings.NewReader("\x00not: [valid"), target)
			must.Error(t, err)
			must.Eq(t, 3, target.Len())
		})
	}
}

func TestCodecFor_Unknown(t *testing.T) {
	_, err := CodecFor[string, int]("xml")
	must.ErrorIs(t, err, ErrUnknownFormat)
	must.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestMsgpackCodec_StringsDecodeAsStrings(t *testing.T) {
	must.True(t, msgpackHandle.RawToString)

	src := linkedds.NewAssocListFunc[string, any](nil)
	src.Set("name", "web")
	src.Set("region", "eu")

	var buf bytes.Buffer
	c := MsgpackCodec[string, any]{}
	must.NoError(t, c.Encode(&buf, src))

	got := linkedds.NewAssocListFunc[string, any](nil)
	must.NoError(t, c.Decode(&buf, got))
	v, ok := got.Get("name")
	must.True(t, ok)
	_, isString := v.(string)
	must.True(t, isString, must.Sprintf("decoded %T, want string", v))
	must.True(t, got.Equal(src))
}
