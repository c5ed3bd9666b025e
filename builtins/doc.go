/*
Package builtins provides the host functions seeded into the root
environment: arithmetic on rationals, comparison, structural equality,
sequence access, string and I/O helpers, and atom cells. There are no map
builtins; a map is looked up by applying it to a key (package eval). Every
builtin carries a description string, surfaced by the help form; users
may shadow any of them in inner scopes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package builtins

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gomal.builtins'.
func tracer() tracing.Trace {
	return tracing.Select("gomal.builtins")
}
