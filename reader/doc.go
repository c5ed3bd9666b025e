/*
Package reader turns source text into values. It is a stateful tokenizer
plus a recursive-descent parser: text is pushed into a buffer, possibly
across multiple REPL submissions, and forms are read off the resulting
token stream one at a time.

Incompleteness is not fatal. A missing closing delimiter, or an end of
buffer inside a string literal, yields a recoverable error; the caller is
expected to push more text and retry. This, together with the surviving
buffer, is the entire multi-line input mechanism — the evaluator is not
involved.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package reader

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gomal.reader'.
func tracer() tracing.Trace {
	return tracing.Select("gomal.reader")
}
