package mal

import (
	"testing"
)

func TestPrintForms(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Nil, "nil"},
		{True, "true"},
		{False, "false"},
		{Int(42), "42"},
		{Num(mustFrac(t, 2, 3)), "2/3"},
		{Key(":kw"), ":kw"},
		{Sym("sym"), "sym"},
		{List(Int(1), Int(2), Int(3)), "(1 2 3)"},
		{Vector(Int(1), List()), "[1 ()]"},
		{Fn(nil, "d"), "#<builtin>"},
		{Func(&Closure{}), "#<function>"},
		{NewAtom(Int(42)), "(atom 42)"},
		{Char('x'), "x"},
	}
	for _, c := range cases {
		if got := Print(c.v); got != c.want {
			t.Errorf("expected %s, is %s", c.want, got)
		}
	}
}

func TestPrintStringModes(t *testing.T) {
	s := Str("a\"b\n\\")
	if got := PrintString(s, false); got != "a\"b\n\\" {
		t.Errorf("non-readable mode must emit characters verbatim, is %q", got)
	}
	if got := PrintString(s, true); got != `"a\"b\n\\"` {
		t.Errorf("readable mode must escape, is %q", got)
	}
}

func TestPrintMap(t *testing.T) {
	m, err := MakeMap([]Value{Key(":b"), Int(2), Str("a"), Int(1)})
	if err != nil {
		t.Fatal(err)
	}
	// string keys sort before the sentinel-prefixed keyword keys
	if got := Print(m); got != `{"a" 1 :b 2}` {
		t.Errorf("unexpected map rendering: %s", got)
	}
}

func mustFrac(t *testing.T, num, den int64) Frac {
	f, err := NewFrac(num, den)
	if err != nil {
		t.Fatal(err)
	}
	return f
}
