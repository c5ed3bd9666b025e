package mal

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/gomal"
)

// Env is a frame of symbol→value bindings with a link to an outer frame.
// Frames form a chain up to the root environment, which has no outer link.
// Closures retain their defining frame by holding a reference; a frame lives
// as long as its longest holder.
//
// Bindings are kept sorted so that Keys enumerates deterministically (the
// find command depends on that).
type Env struct {
	bindings *treemap.Map // string → Value
	outer    *Env
}

// NewEnv creates a fresh, empty environment frame. outer may be nil for the
// root environment.
func NewEnv(outer *Env) *Env {
	return &Env{
		bindings: treemap.NewWithStringComparator(),
		outer:    outer,
	}
}

// Outer returns the parent frame, or nil for the root environment.
func (env *Env) Outer() *Env {
	return env.outer
}

// Root walks the chain to the outermost frame.
func (env *Env) Root() *Env {
	for env.outer != nil {
		env = env.outer
	}
	return env
}

// Define writes a binding into this innermost frame, shadowing any binding
// of the same name further out. The parent chain is never mutated.
func (env *Env) Define(name string, v Value) {
	tracer().Debugf("define %s = %s", name, Print(v))
	env.bindings.Put(name, v)
}

// Lookup resolves a symbol name, walking the chain from this frame to the
// root. An unbound name is an unrecoverable error.
func (env *Env) Lookup(name string) (Value, error) {
	for e := env; e != nil; e = e.outer {
		if v, found := e.bindings.Get(name); found {
			return v.(Value), nil
		}
	}
	return Nil, gomal.Errorf("symbol '%s' not defined", name)
}

// Keys lists the names bound in this frame only, in sorted order.
func (env *Env) Keys() []string {
	keys := make([]string, 0, env.bindings.Size())
	for _, k := range env.bindings.Keys() {
		keys = append(keys, k.(string))
	}
	return keys
}

// BindParams creates an inner frame binding each parameter symbol to its
// positional argument. Trailing parameters without an argument are bound to
// Nil; surplus arguments are an unrecoverable error.
func (env *Env) BindParams(params []Value, args []Value) (*Env, error) {
	if len(args) > len(params) {
		return nil, gomal.Errorf("too many arguments: %d parameters, %d arguments",
			len(params), len(args))
	}
	inner := NewEnv(env)
	for i, p := range params {
		name, err := p.IfSymbol()
		if err != nil {
			return nil, err
		}
		if i < len(args) {
			inner.Define(name, args[i])
		} else {
			inner.Define(name, Nil)
		}
	}
	return inner, nil
}
