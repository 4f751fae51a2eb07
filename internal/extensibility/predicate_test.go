package extensibility

import (
	"testing"

	"github.com/shoenig/test/must"

	"github.com/comalice/linkedds"
)

func TestParsePredicate(t *testing.T) {
	tests := []struct {
		expr  string
		key   string
		value string
		want  bool
	}{
		{"value == 30", "temp", "30", true},
		{"value == 30", "temp", "30.0", true},
		{"value == 30", "temp", "31", false},
		{"value != 30", "temp", "31", true},
		{"value > 30", "temp", "35", true},
		{"value > 30", "temp", "9", false},
		{"value < 30", "temp", "9", true},
		{"value >= 30", "temp", "30", true},
		{"value <= 30", "temp", "31", false},
		{"key == loggedIn", "loggedIn", "true", true},
		{"key > b", "c", "", true},
		{"value < 10", "x", "abc", false},
	}
	for _, tc := range tests {
		t.Run(tc.expr+"/"+tc.value, func(t *testing.T) {
			p, err := ParsePredicate(tc.expr)
			must.NoError(t, err)
			must.Eq(t, tc.want, p(tc.key, tc.value))
		})
	}
}

func TestParsePredicate_Errors(t *testing.T) {
	for _, expr := range []string{"", "value >", "value ~ 3", "name == x", "a b c d"} {
		_, err := ParsePredicate(expr)
		must.ErrorIs(t, err, ErrBadExpression, must.Sprintf("expr %q", expr))
	}
}

func TestMustParsePredicate_Panics(t *testing.T) {
	defer func() {
		must.NotNil(t, recover())
	}()
	MustParsePredicate("bogus")
}

func TestPredicate_FiltersAssocList(t *testing.T) {
	l := linkedds.NewAssocList[string, string]()
	l.Set("a", "1")
	l.Set("b", "20")
	l.Set("c", "3")

	big := MustParsePredicate("value > 2")
	must.Eq(t, []string{"b", "c"}, keys(l.Select(big)))
	must.Eq(t, []string{"a"}, keys(l.Reject(big)))
	must.Eq(t, []string{"a"}, keys(l.Select(Not(big))))
	must.Eq(t, 3, l.Len())
}

func keys(l *linkedds.AssocList[string, string]) []string {
	var out []string
	for k := range l.Keys() {
		out = append(out, k)
	}
	return out
}
