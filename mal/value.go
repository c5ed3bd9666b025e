package mal

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/gomal"
)

// Value is the universal runtime value: a tagged union over all variants of
// the language. Values travel by value; variants with shared state (lists,
// maps, closures, atoms) carry a pointer or slice in Data.
type Value struct {
	typ  Type
	Data interface{}
}

// Type is a type specifier for a value.
type Type int

//go:generate stringer -type Type
const (
	NoType Type = iota
	NilType
	BoolType
	NumType
	CharType
	StringType
	KeywordType
	SymbolType
	ListType
	VectorType
	MapType
	BuiltinType
	ClosureType
	AtomType
)

// Canonical values. The zero value of Value has type NoType and is distinct
// from Nil.
var (
	Nil   = Value{typ: NilType}
	True  = Value{typ: BoolType, Data: true}
	False = Value{typ: BoolType, Data: false}
)

// Type returns a value's type tag.
func (v Value) Type() Type {
	return v.typ
}

// IsNil is true for the Nil value only.
func (v Value) IsNil() bool {
	return v.typ == NilType
}

// Truthy implements the branching rule: everything is truthy except Nil and
// false. 0, "", (), [] and {} all count as true.
func (v Value) Truthy() bool {
	if v.typ == NilType {
		return false
	}
	if v.typ == BoolType {
		return v.Data.(bool)
	}
	return true
}

// --- Constructors ----------------------------------------------------------

// Bool returns one of the canonical True/False values.
func Bool(b bool) Value {
	if b {
		return True
	}
	return False
}

// Num wraps a rational number.
func Num(f Frac) Value {
	return Value{typ: NumType, Data: f}
}

// Int wraps an integer as a rational with denominator 1.
func Int(n int64) Value {
	return Num(FromInt(n))
}

// Str wraps immutable text.
func Str(s string) Value {
	return Value{typ: StringType, Data: s}
}

// Sym wraps an identifier to be resolved in an environment.
func Sym(name string) Value {
	return Value{typ: SymbolType, Data: name}
}

// KeywordSentinel prefixes the internal text of every keyword. It is a code
// point absent from user input, so a keyword and a string with the same
// visible name remain distinct map keys.
const KeywordSentinel = 'ʞ'

// Key wraps a keyword. The argument is the reader form including the leading
// colon, e.g. ":name".
func Key(text string) Value {
	return Value{typ: KeywordType, Data: string(KeywordSentinel) + text}
}

// Char wraps a single Unicode scalar.
func Char(r rune) Value {
	return Value{typ: CharType, Data: r}
}

// List makes a list value from the given elements.
func List(els ...Value) Value {
	if els == nil {
		els = []Value{}
	}
	return Value{typ: ListType, Data: els}
}

// Vector makes a vector value from the given elements.
func Vector(els ...Value) Value {
	if els == nil {
		els = []Value{}
	}
	return Value{typ: VectorType, Data: els}
}

// Builtin is a host function registered in the root environment. The
// description is mandatory metadata, surfaced by the help form.
type Builtin struct {
	Call func(args []Value) (Value, error)
	Desc string
}

// Fn wraps a host function together with its help text.
func Fn(call func(args []Value) (Value, error), desc string) Value {
	return Value{typ: BuiltinType, Data: &Builtin{Call: call, Desc: desc}}
}

// Closure is a user-defined function: parameter symbols, body expressions and
// the captured defining environment. The environment is retained for the
// closure's lifetime, independent of whether its defining scope still exists.
type Closure struct {
	Params []Value // symbols
	Body   []Value // expressions, evaluated as an implicit do
	Env    *Env
}

// Func wraps a closure.
func Func(cl *Closure) Value {
	return Value{typ: ClosureType, Data: cl}
}

// Atom is a mutable single-cell holder, the sole user-visible mutation
// primitive.
type Atom struct {
	Val Value
}

// NewAtom wraps a fresh atom cell around a value.
func NewAtom(v Value) Value {
	return Value{typ: AtomType, Data: &Atom{Val: v}}
}

// --- Typed accessors -------------------------------------------------------

// Seq returns the elements of a list or vector.
func (v Value) Seq() ([]Value, bool) {
	if v.typ == ListType || v.typ == VectorType {
		return v.Data.([]Value), true
	}
	return nil, false
}

// IfList returns the value's elements or an error if it is not a list.
func (v Value) IfList() ([]Value, error) {
	if v.typ != ListType {
		return nil, gomal.Errorf("%s is not a list", Print(v))
	}
	return v.Data.([]Value), nil
}

// IfSeq returns the value's elements or an error if it is neither a list nor
// a vector.
func (v Value) IfSeq() ([]Value, error) {
	if els, ok := v.Seq(); ok {
		return els, nil
	}
	return nil, gomal.Errorf("%s is not a sequence", Print(v))
}

// IfSymbol returns the symbol's name or an error.
func (v Value) IfSymbol() (string, error) {
	if v.typ != SymbolType {
		return "", gomal.Errorf("%s is not a symbol", Print(v))
	}
	return v.Data.(string), nil
}

// IfString returns the string's text or an error.
func (v Value) IfString() (string, error) {
	if v.typ != StringType {
		return "", gomal.Errorf("%s is not a string", Print(v))
	}
	return v.Data.(string), nil
}

// IfNumber returns the value's rational or an error.
func (v Value) IfNumber() (Frac, error) {
	if v.typ != NumType {
		return Frac{}, gomal.Errorf("%s is not a number", Print(v))
	}
	return v.Data.(Frac), nil
}

// IfAtom returns the value's atom cell or an error.
func (v Value) IfAtom() (*Atom, error) {
	if v.typ != AtomType {
		return nil, gomal.Errorf("%s is not an atom", Print(v))
	}
	return v.Data.(*Atom), nil
}

// MapKey returns the internal key text if the value may be used as a map
// key, i.e. it is a string or a keyword.
func (v Value) MapKey() (string, bool) {
	switch v.typ {
	case StringType, KeywordType:
		return v.Data.(string), true
	}
	return "", false
}

// KeywordName strips the sentinel prefix from a keyword's internal text.
func KeywordName(internal string) string {
	return strings.TrimPrefix(internal, string(KeywordSentinel))
}

// --- Introspection ---------------------------------------------------------

// TypeLabel returns a keyword naming the value's variant, for the type
// builtin.
func (v Value) TypeLabel() Value {
	var label string
	switch v.typ {
	case NilType:
		label = ":nil"
	case BoolType:
		label = ":bool"
	case NumType:
		label = ":number"
	case CharType:
		label = ":char"
	case StringType:
		label = ":string"
	case KeywordType:
		label = ":keyword"
	case SymbolType:
		label = ":symbol"
	case ListType:
		label = ":list"
	case VectorType:
		label = ":vector"
	case MapType:
		label = ":map"
	case BuiltinType:
		label = ":builtin"
	case ClosureType:
		label = ":function"
	case AtomType:
		label = ":atom"
	default:
		label = ":none"
	}
	return Key(label)
}

// Equals compares two values structurally. Numbers compare by value equality
// of the rational, not by representation. Maps, builtins, closures and atoms
// never compare equal.
func Equals(a, b Value) bool {
	if a.typ != b.typ {
		return false
	}
	switch a.typ {
	case NilType:
		return true
	case BoolType:
		return a.Data.(bool) == b.Data.(bool)
	case NumType:
		return a.Data.(Frac).Equals(b.Data.(Frac))
	case CharType:
		return a.Data.(rune) == b.Data.(rune)
	case StringType, KeywordType, SymbolType:
		return a.Data.(string) == b.Data.(string)
	case ListType, VectorType:
		as, bs := a.Data.([]Value), b.Data.([]Value)
		if len(as) != len(bs) {
			return false
		}
		for i := range as {
			if !Equals(as[i], bs[i]) {
				return false
			}
		}
		return true
	}
	return false
}
