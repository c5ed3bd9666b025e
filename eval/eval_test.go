package eval

import (
	"testing"

	"github.com/npillmayer/gomal"
	"github.com/npillmayer/gomal/builtins"
	"github.com/npillmayer/gomal/mal"
	"github.com/npillmayer/gomal/reader"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func testEnv() *mal.Env {
	root := mal.NewEnv(nil)
	builtins.Register(root)
	return root
}

// run reads and evaluates every form of the input, returning the last value.
func run(t *testing.T, env *mal.Env, input string) mal.Value {
	t.Helper()
	r := reader.New().Push(input)
	last := mal.Nil
	for !r.Exhausted() {
		form, err := r.ReadForm()
		if err != nil {
			t.Fatalf("reading %q: %v", input, err)
		}
		if last, err = Eval(form, env); err != nil {
			t.Fatalf("evaluating %q: %v", input, err)
		}
	}
	return last
}

func mustFail(t *testing.T, env *mal.Env, input string) error {
	t.Helper()
	form, err := reader.New().Push(input).ReadForm()
	if err != nil {
		t.Fatalf("reading %q: %v", input, err)
	}
	_, err = Eval(form, env)
	if err == nil {
		t.Fatalf("expected %q to fail", input)
	}
	if gomal.IsRecoverable(err) {
		t.Fatalf("evaluator errors must be unrecoverable: %q", input)
	}
	return err
}

func TestSelfEvaluating(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.eval")
	defer teardown()
	//
	env := testEnv()
	assert.Equal(t, "42", mal.Print(run(t, env, "42")))
	assert.Equal(t, `"x"`, mal.Print(run(t, env, `"x"`)))
	assert.Equal(t, ":k", mal.Print(run(t, env, ":k")))
	assert.Equal(t, "()", mal.Print(run(t, env, "()")))
}

func TestArithmeticScenarios(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.eval")
	defer teardown()
	//
	env := testEnv()
	assert.Equal(t, "6", mal.Print(run(t, env, "(+ 1 2 3)")))
	assert.Equal(t, "4", mal.Print(run(t, env, "(- 5 1)")))
	assert.Equal(t, "-5", mal.Print(run(t, env, "(- 5)")))
	assert.Equal(t, "1/2", mal.Print(run(t, env, "(/ 2)")))
	assert.Equal(t, "0", mal.Print(run(t, env, "(+)")))
	assert.Equal(t, "1", mal.Print(run(t, env, "(*)")))
	assert.Equal(t, "true", mal.Print(run(t, env, "(= (/ 4 6) (/ 2 3))")))
	assert.Equal(t, "true", mal.Print(run(t, env, "(= (+ 1 2 3) (+ (+ 1 2) 3))")))
	assert.Equal(t, "7", mal.Print(run(t, env, "(* 1 7)")))
	assert.Equal(t, "7", mal.Print(run(t, env, "(/ 7 1)")))
	mustFail(t, env, "(/ 1 0)")
	mustFail(t, env, "(+ 1 \"x\")")
}

func TestVectorAndMapEvaluate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.eval")
	defer teardown()
	//
	env := testEnv()
	assert.Equal(t, "[1 3]", mal.Print(run(t, env, "[1 (+ 1 2)]")))
	assert.Equal(t, "{:a 3}", mal.Print(run(t, env, "{:a (+ 1 2)}")))
}

func TestDefAndClosure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.eval")
	defer teardown()
	//
	env := testEnv()
	v := run(t, env, "(def! sq (fn* (x) (* x x)))")
	assert.Equal(t, mal.ClosureType, v.Type())
	assert.Equal(t, "49", mal.Print(run(t, env, "(sq 7)")))
	// λ is an alias for fn*
	assert.Equal(t, "9", mal.Print(run(t, env, "((λ (x) (* x x)) 3)")))
	mustFail(t, env, "(def! x)")
	mustFail(t, env, "(def! 1 2)")
}

func TestClosureCapture(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.eval")
	defer teardown()
	//
	env := testEnv()
	run(t, env, "(def! adder (let* (n 10) (fn* (x) (+ x n))))")
	// the defining let* scope is gone, the closure keeps it alive
	assert.Equal(t, "17", mal.Print(run(t, env, "(adder 7)")))
	if _, err := env.Lookup("n"); err == nil {
		t.Errorf("let* binding n must not leak into the outer environment")
	}
}

func TestLetLocality(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.eval")
	defer teardown()
	//
	env := testEnv()
	assert.Equal(t, "3", mal.Print(run(t, env, "(let* (a 1 b (+ a 2)) (* a b))")))
	if _, err := env.Lookup("a"); err == nil {
		t.Errorf("expected a to be local to the let*")
	}
	run(t, env, "(def! y 2)")
	if _, err := env.Lookup("y"); err != nil {
		t.Errorf("expected y to be defined at top level: %v", err)
	}
	mustFail(t, env, "(let* (a) a)")
	mustFail(t, env, "(let* (1 2) 3)")
}

func TestIfFalsiness(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.eval")
	defer teardown()
	//
	env := testEnv()
	assert.Equal(t, ":no", mal.Print(run(t, env, "(if (= 0 1) :yes :no)")))
	assert.Equal(t, ":yes", mal.Print(run(t, env, "(if 0 :yes :no)")))
	assert.Equal(t, ":yes", mal.Print(run(t, env, `(if "" :yes :no)`)))
	assert.Equal(t, ":yes", mal.Print(run(t, env, "(if () :yes :no)")))
	assert.Equal(t, ":yes", mal.Print(run(t, env, "(if [] :yes :no)")))
	assert.Equal(t, ":yes", mal.Print(run(t, env, "(if {} :yes :no)")))
	assert.Equal(t, ":no", mal.Print(run(t, env, "(if nil :yes :no)")))
	assert.Equal(t, ":no", mal.Print(run(t, env, "(if false :yes :no)")))
	assert.Equal(t, "nil", mal.Print(run(t, env, "(if false :yes)")))
	mustFail(t, env, "(if true)")
}

func TestDo(t *testing.T) {
	env := testEnv()
	assert.Equal(t, "nil", mal.Print(run(t, env, "(do)")))
	assert.Equal(t, "2", mal.Print(run(t, env, "(do (def! a 1) 2)")))
	if _, err := env.Lookup("a"); err != nil {
		t.Errorf("do must evaluate leading expressions for effect: %v", err)
	}
}

func TestQuote(t *testing.T) {
	env := testEnv()
	assert.Equal(t, "(+ 1 2)", mal.Print(run(t, env, "(quote (+ 1 2))")))
	assert.Equal(t, "x", mal.Print(run(t, env, "'x")))
}

func TestOkForm(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.eval")
	defer teardown()
	//
	env := testEnv()
	assert.Equal(t, "true", mal.Print(run(t, env, "(ok? (+ 1 2))")))
	assert.Equal(t, "nil", mal.Print(run(t, env, "(ok? (/ 1 0))")))
	assert.Equal(t, "nil", mal.Print(run(t, env, "(ok? unbound-symbol)")))
	assert.Equal(t, "nil", mal.Print(run(t, env, `(ok? (raise "boom"))`)))
}

func TestEvalForm(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.eval")
	defer teardown()
	//
	env := testEnv()
	assert.Equal(t, "3", mal.Print(run(t, env, "(eval (quote (+ 1 2)))")))
	assert.Equal(t, "3", mal.Print(run(t, env, `(eval (read-string "(+ 1 2)"))`)))
	// eval runs in the root environment, not the local scope
	run(t, env, "(def! z 1)")
	assert.Equal(t, "1", mal.Print(run(t, env, "(let* (z 99) (eval (quote z)))")))
}

func TestTCOBoundedness(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.eval")
	defer teardown()
	//
	env := testEnv()
	run(t, env, "(def! loop (fn* (n) (if (= n 0) :done (loop (- n 1)))))")
	assert.Equal(t, ":done", mal.Print(run(t, env, "(loop 100000)")))
}

func TestMutualTailCalls(t *testing.T) {
	env := testEnv()
	run(t, env, "(def! even? (fn* (n) (if (= n 0) true (odd? (- n 1)))))")
	run(t, env, "(def! odd? (fn* (n) (if (= n 0) false (even? (- n 1)))))")
	assert.Equal(t, "true", mal.Print(run(t, env, "(even? 10000)")))
}

func TestMapAsCallee(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.eval")
	defer teardown()
	//
	env := testEnv()
	run(t, env, `(def! m {:a 1 "b" 2})`)
	assert.Equal(t, "1", mal.Print(run(t, env, "(m :a)")))
	assert.Equal(t, "2", mal.Print(run(t, env, `(m "b")`)))
	assert.Equal(t, "nil", mal.Print(run(t, env, "(m :missing)")))
	assert.Equal(t, "nil", mal.Print(run(t, env, `(m :a) (m "a")`)), "string key must not see keyword entry")
	mustFail(t, env, "(m)")
	mustFail(t, env, "(m 1)")
}

func TestVectorAsCallee(t *testing.T) {
	env := testEnv()
	run(t, env, "(def! v [10 20 30])")
	assert.Equal(t, "10", mal.Print(run(t, env, "(v 0)")))
	assert.Equal(t, "30", mal.Print(run(t, env, "(v 2)")))
	assert.Equal(t, "20", mal.Print(run(t, env, "(v 3/2)")))
	assert.Equal(t, "nil", mal.Print(run(t, env, "(v 3)")))
	assert.Equal(t, "nil", mal.Print(run(t, env, "(v -1)")))
	mustFail(t, env, "(v :x)")
}

func TestNotAFunction(t *testing.T) {
	env := testEnv()
	mustFail(t, env, "(1 2 3)")
	mustFail(t, env, `("s")`)
}

func TestAtomScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.eval")
	defer teardown()
	//
	env := testEnv()
	assert.Equal(t, "(atom 1)", mal.Print(run(t, env, "(def! a (atom 1))")))
	assert.Equal(t, "42", mal.Print(run(t, env, "(reset! a (+ (deref a) 41))")))
	assert.Equal(t, "42", mal.Print(run(t, env, "(deref a)")))
}

func TestBoomScenario(t *testing.T) {
	env := testEnv()
	assert.Equal(t, "3", mal.Print(run(t, env, `(count (boom "abc"))`)))
}

func TestShadowingBuiltins(t *testing.T) {
	env := testEnv()
	assert.Equal(t, ":shadowed", mal.Print(run(t, env, "(let* (+ (fn* (a b) :shadowed)) (+ 1 2))")))
	assert.Equal(t, "3", mal.Print(run(t, env, "(+ 1 2)")))
}

func TestArgumentBinding(t *testing.T) {
	env := testEnv()
	run(t, env, "(def! f (fn* (a b) (list a b)))")
	assert.Equal(t, "(1 nil)", mal.Print(run(t, env, "(f 1)")))
	mustFail(t, env, "(f 1 2 3)")
}
