package eval

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/gomal"
	"github.com/npillmayer/gomal/mal"
	"github.com/pterm/pterm"
)

// defForm evaluates the value expression and writes the binding into the
// current (innermost) environment. Returns the value.
func defForm(args []mal.Value, env *mal.Env) (mal.Value, error) {
	if len(args) != 2 {
		return mal.Nil, gomal.Errorf("def! form: needs 2 arguments")
	}
	name, err := args[0].IfSymbol()
	if err != nil {
		return mal.Nil, err
	}
	v, err := Eval(args[1], env)
	if err != nil {
		return mal.Nil, err
	}
	env.Define(name, v)
	return v, nil
}

// letForm creates an inner environment, binds the pairs of the binding
// sequence in declaration order, and hands the body back to the trampoline
// as an implicit do.
func letForm(args []mal.Value, env *mal.Env) (mal.Value, *mal.Env, error) {
	if len(args) < 1 {
		return mal.Nil, nil, gomal.Errorf("let* form: needs a binding sequence")
	}
	bindings, err := args[0].IfSeq()
	if err != nil {
		return mal.Nil, nil, err
	}
	if len(bindings)%2 != 0 {
		return mal.Nil, nil, gomal.Errorf("let* form: bindings must pair a symbol with a value")
	}
	inner := mal.NewEnv(env)
	for i := 0; i < len(bindings); i += 2 {
		name, err := bindings[i].IfSymbol()
		if err != nil {
			return mal.Nil, nil, err
		}
		v, err := Eval(bindings[i+1], inner)
		if err != nil {
			return mal.Nil, nil, err
		}
		inner.Define(name, v)
	}
	return implicitDo(args[1:]), inner, nil
}

// doForm evaluates all but the last expression and returns the last one for
// the trampoline.
func doForm(body []mal.Value, env *mal.Env) (mal.Value, error) {
	if len(body) == 0 {
		return mal.Nil, nil
	}
	for _, e := range body[:len(body)-1] {
		if _, err := Eval(e, env); err != nil {
			return mal.Nil, err
		}
	}
	return body[len(body)-1], nil
}

// ifForm evaluates the condition and picks the branch for the trampoline.
// Only Nil and false take the else branch.
func ifForm(args []mal.Value, env *mal.Env) (mal.Value, error) {
	if len(args) < 2 || len(args) > 3 {
		return mal.Nil, gomal.Errorf("if form: needs 2 or 3 arguments")
	}
	cond, err := Eval(args[0], env)
	if err != nil {
		return mal.Nil, err
	}
	if cond.Truthy() {
		return args[1], nil
	}
	if len(args) == 3 {
		return args[2], nil
	}
	return mal.Nil, nil
}

// fnForm captures the current environment into a closure. Parameters are
// validated up front so that a malformed parameter list fails at definition
// time, not at the first call.
func fnForm(args []mal.Value, env *mal.Env) (mal.Value, error) {
	if len(args) < 1 {
		return mal.Nil, gomal.Errorf("fn* form: needs a parameter sequence")
	}
	params, err := args[0].IfSeq()
	if err != nil {
		return mal.Nil, err
	}
	for _, p := range params {
		if _, err := p.IfSymbol(); err != nil {
			return mal.Nil, err
		}
	}
	body := make([]mal.Value, len(args)-1)
	copy(body, args[1:])
	return mal.Func(&mal.Closure{Params: params, Body: body, Env: env}), nil
}

// implicitDo wraps a body in a do form, or yields Nil for an empty body.
func implicitDo(body []mal.Value) mal.Value {
	if len(body) == 0 {
		return mal.Nil
	}
	if len(body) == 1 {
		return body[0]
	}
	forms := append([]mal.Value{mal.Sym("do")}, body...)
	return mal.List(forms...)
}

// helpForm prints documentation for a symbol: the description of a builtin,
// the signature and body of a closure, or the printed value otherwise.
func helpForm(args []mal.Value, env *mal.Env) (mal.Value, error) {
	if len(args) != 1 {
		return mal.Nil, gomal.Errorf("help form: needs 1 argument")
	}
	name, err := args[0].IfSymbol()
	if err != nil {
		return mal.Nil, err
	}
	v, err := env.Lookup(name)
	if err != nil {
		return mal.Nil, err
	}
	switch v.Type() {
	case mal.BuiltinType:
		pterm.Println(fmt.Sprintf("%s\t[builtin]: %s", name, v.Data.(*mal.Builtin).Desc))
	case mal.ClosureType:
		cl := v.Data.(*mal.Closure)
		pterm.Println(fmt.Sprintf("%s\t[function]: %s", name, mal.Print(mal.Vector(cl.Params...))))
		for _, e := range cl.Body {
			pterm.Println(";   " + mal.Print(e))
		}
	default:
		pterm.Println(fmt.Sprintf("%s\t[symbol]: %s", name, mal.Print(v)))
	}
	return mal.Nil, nil
}

// findForm prints every root binding whose name contains all given
// substrings. Arguments are taken literally: symbols or strings.
func findForm(args []mal.Value, env *mal.Env) (mal.Value, error) {
	patterns := make([]string, len(args))
	for i, a := range args {
		switch a.Type() {
		case mal.SymbolType, mal.StringType:
			patterns[i] = a.Data.(string)
		default:
			return mal.Nil, gomal.Errorf("find form: %s is not a symbol", mal.Print(a))
		}
	}
	for _, key := range env.Root().Keys() {
		matches := true
		for _, p := range patterns {
			if !strings.Contains(key, p) {
				matches = false
				break
			}
		}
		if matches {
			pterm.Println(key)
		}
	}
	return mal.Nil, nil
}
