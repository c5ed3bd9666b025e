/*
Package eval implements the tree-walking evaluator: special-form dispatch,
function application, collection evaluation, and the tail-call optimizing
trampoline.

The evaluator is a loop that rewrites its (ast, env) pair in place for
every tail position — let* and do bodies, if branches, eval, and the
application of user-defined functions — and returns only from non-tail
terminations. Arbitrary recursion depth in user programs therefore does
not grow the host call stack.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package eval

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gomal.eval'.
func tracer() tracing.Trace {
	return tracing.Select("gomal.eval")
}
