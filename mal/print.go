package mal

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
)

// PrintString renders a value as text. In readable mode strings are quoted
// with special characters in their escape form, so that the reader can
// round-trip the output; in non-readable mode string characters are emitted
// verbatim.
func PrintString(v Value, readably bool) string {
	switch v.typ {
	case NilType:
		return "nil"
	case BoolType:
		if v.Data.(bool) {
			return "true"
		}
		return "false"
	case NumType:
		return v.Data.(Frac).String()
	case CharType:
		return string(v.Data.(rune))
	case StringType:
		if readably {
			return EscapeString(v.Data.(string))
		}
		return v.Data.(string)
	case KeywordType:
		return KeywordName(v.Data.(string))
	case SymbolType:
		return v.Data.(string)
	case ListType:
		return printSeq(v.Data.([]Value), readably, "(", ")")
	case VectorType:
		return printSeq(v.Data.([]Value), readably, "[", "]")
	case MapType:
		return printMap(v, readably)
	case BuiltinType:
		return "#<builtin>"
	case ClosureType:
		return "#<function>"
	case AtomType:
		return "(atom " + PrintString(v.Data.(*Atom).Val, readably) + ")"
	}
	return "#<none>"
}

// Print renders a value readably.
func Print(v Value) string {
	return PrintString(v, true)
}

// String makes values print naturally in traces and tests.
func (v Value) String() string {
	return Print(v)
}

func printSeq(els []Value, readably bool, open, close string) string {
	var b strings.Builder
	b.WriteString(open)
	for i, el := range els {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(PrintString(el, readably))
	}
	b.WriteString(close)
	return b.String()
}

func printMap(v Value, readably bool) string {
	var b strings.Builder
	b.WriteString("{")
	first := true
	v.MapEach(func(key string, val Value) {
		if !first {
			b.WriteString(" ")
		}
		first = false
		if strings.HasPrefix(key, string(KeywordSentinel)) {
			b.WriteString(KeywordName(key))
		} else if readably {
			b.WriteString(EscapeString(key))
		} else {
			b.WriteString(key)
		}
		b.WriteString(" ")
		b.WriteString(PrintString(val, readably))
	})
	b.WriteString("}")
	return b.String()
}

// EscapeString quotes a string and emits the escape forms the reader
// understands: \\ \n \r \t \".
func EscapeString(s string) string {
	var b strings.Builder
	b.WriteString("\"")
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteString("\"")
	return b.String()
}
