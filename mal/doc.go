/*
Package mal implements the value model of the GoMAL interpreter: the
tagged runtime value shared by reader, evaluator and builtins, rational
numbers, the environment chain, and the printer.

Values are immutable, with two exceptions: the contents of an Atom cell
and the bindings of an Environment. Shared values (list storage, strings,
maps, closures, environments) live as long as their longest holder; the
Go garbage collector stands in for the reference counting a systems
language would use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package mal

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gomal.mal'.
func tracer() tracing.Trace {
	return tracing.Select("gomal.mal")
}
