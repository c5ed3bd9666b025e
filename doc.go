/*
Package gomal is the root package of an interpreter for a small
Lisp-family language in the tradition of the Make-A-Lisp (MAL) series.

GoMAL is a tree-walking interpreter with a REPL front-end. Package
structure is as follows:

■ mal: Package mal implements the value model: the tagged runtime value,
rational numbers, environments, and the printer.

■ reader: Package reader implements a stateful tokenizer and a
recursive-descent parser, turning source text into values.

■ eval: Package eval implements the evaluator: special forms, function
application and the tail-call optimizing trampoline.

■ builtins: Package builtins provides the host functions seeded into the
root environment.

■ interp: Package interp wires everything into an interactive
interpreter (prelude loading, file loading, the REPL loop).

The base package contains the error contract which is used throughout all
the other packages: error values carry a severity, and the
recoverable/unrecoverable split is what drives multi-line input at the
REPL.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gomal
