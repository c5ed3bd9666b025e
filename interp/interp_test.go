package interp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/gomal/mal"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewSeedsRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.interp")
	defer teardown()
	//
	ip := New()
	for _, name := range []string{"+", "list", "slurp", "MAL_HOME", "*ARGV*"} {
		if _, err := ip.Root().Lookup(name); err != nil {
			t.Errorf("expected %s to be seeded: %v", name, err)
		}
	}
}

func TestMalHomeOverride(t *testing.T) {
	t.Setenv("MAL_HOME", "/tmp/gomal-test")
	if MalHome() != "/tmp/gomal-test" {
		t.Errorf("expected MAL_HOME override, is %s", MalHome())
	}
}

func TestSetArgv(t *testing.T) {
	ip := New()
	ip.SetArgv([]string{"a", "b"})
	v, err := ip.Root().Lookup("*ARGV*")
	if err != nil {
		t.Fatal(err)
	}
	if mal.Print(v) != `("a" "b")` {
		t.Errorf("unexpected *ARGV*: %s", mal.Print(v))
	}
}

func TestLoadFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.interp")
	defer teardown()
	//
	dir := t.TempDir()
	file := filepath.Join(dir, "prog.mal")
	src := `; a program with a form spanning lines
(def! a
  (+ 1
     2))
(def! b (* a a))
`
	if err := os.WriteFile(file, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	ip := New()
	if err := ip.LoadFile(file); err != nil {
		t.Fatal(err)
	}
	b, err := ip.Root().Lookup("b")
	if err != nil {
		t.Fatal(err)
	}
	if mal.Print(b) != "9" {
		t.Errorf("expected b = 9, is %s", mal.Print(b))
	}
}

func TestLoadFileUnknownState(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.interp")
	defer teardown()
	//
	dir := t.TempDir()
	file := filepath.Join(dir, "broken.mal")
	if err := os.WriteFile(file, []byte("(def! a\n"), 0644); err != nil {
		t.Fatal(err)
	}
	ip := New()
	if err := ip.LoadFile(file); err == nil {
		t.Errorf("expected a dangling form to be reported")
	}
}

func TestLoadFileContinuesAfterError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.interp")
	defer teardown()
	//
	dir := t.TempDir()
	file := filepath.Join(dir, "errors.mal")
	src := "(/ 1 0)\n(def! ok 1)\n"
	if err := os.WriteFile(file, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	ip := New()
	if err := ip.LoadFile(file); err != nil {
		t.Fatal(err)
	}
	if _, err := ip.Root().Lookup("ok"); err != nil {
		t.Errorf("an evaluation error must not stop the file: %v", err)
	}
}

func TestPreludeContract(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.interp")
	defer teardown()
	//
	home := t.TempDir()
	t.Setenv("MAL_HOME", home)
	core := `(def! not (fn* (x) (if x false true)))
(def! BANNER "hello")
`
	if err := os.WriteFile(filepath.Join(home, "core.mal"), []byte(core), 0644); err != nil {
		t.Fatal(err)
	}
	ip := New()
	ip.LoadPrelude()
	if _, err := ip.Root().Lookup("not"); err != nil {
		t.Errorf("expected the prelude to define not: %v", err)
	}
	banner, err := ip.Root().Lookup("BANNER")
	if err != nil {
		t.Fatal(err)
	}
	if s, _ := banner.IfString(); s != "hello" {
		t.Errorf("unexpected BANNER: %q", s)
	}
}
