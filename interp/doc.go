/*
Package interp wires reader, evaluator and builtins into an interactive
interpreter: it seeds the root environment, locates MAL_HOME, loads the
prelude and optional config, evaluates source files, and runs the
read-eval-print loop with line editing and persisted history.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package interp

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gomal.interp'.
func tracer() tracing.Trace {
	return tracing.Select("gomal.interp")
}
