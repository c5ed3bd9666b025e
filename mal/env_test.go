package mal

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEnvDefineLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.mal")
	defer teardown()
	//
	root := NewEnv(nil)
	root.Define("a", Int(1))
	v, err := root.Lookup("a")
	if err != nil {
		t.Fatal(err)
	}
	if !Equals(v, Int(1)) {
		t.Errorf("expected a = 1, is %s", Print(v))
	}
	if _, err := root.Lookup("b"); err == nil {
		t.Errorf("expected lookup of unbound symbol to fail")
	}
}

func TestEnvShadowing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.mal")
	defer teardown()
	//
	root := NewEnv(nil)
	root.Define("x", Int(1))
	inner := NewEnv(root)
	inner.Define("x", Int(2))
	v, _ := inner.Lookup("x")
	if !Equals(v, Int(2)) {
		t.Errorf("expected inner x = 2, is %s", Print(v))
	}
	v, _ = root.Lookup("x")
	if !Equals(v, Int(1)) {
		t.Errorf("inner define must not leak outward, root x is %s", Print(v))
	}
	if inner.Root() != root {
		t.Errorf("expected Root() to find the outermost frame")
	}
}

func TestEnvKeysSorted(t *testing.T) {
	root := NewEnv(nil)
	root.Define("zeta", Nil)
	root.Define("alpha", Nil)
	root.Define("mid", Nil)
	keys := root.Keys()
	if len(keys) != 3 || keys[0] != "alpha" || keys[1] != "mid" || keys[2] != "zeta" {
		t.Errorf("expected sorted keys, got %v", keys)
	}
}

func TestBindParams(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.mal")
	defer teardown()
	//
	root := NewEnv(nil)
	params := []Value{Sym("a"), Sym("b"), Sym("c")}
	inner, err := root.BindParams(params, []Value{Int(1), Int(2)})
	if err != nil {
		t.Fatal(err)
	}
	b, _ := inner.Lookup("b")
	if !Equals(b, Int(2)) {
		t.Errorf("expected b = 2, is %s", Print(b))
	}
	c, _ := inner.Lookup("c")
	if !c.IsNil() {
		t.Errorf("expected trailing parameter c to be nil, is %s", Print(c))
	}
	if _, err := root.BindParams(params[:1], []Value{Int(1), Int(2)}); err == nil {
		t.Errorf("expected surplus arguments to be refused")
	}
	if _, err := root.BindParams([]Value{Int(7)}, []Value{Int(1)}); err == nil {
		t.Errorf("expected non-symbol parameter to be refused")
	}
}
