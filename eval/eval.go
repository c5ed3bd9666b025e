package eval

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/gomal"
	"github.com/npillmayer/gomal/mal"
)

// Eval evaluates an AST in an environment. This is the TCO trampoline: tail
// positions rewrite ast/env and continue the loop instead of recursing.
func Eval(ast mal.Value, env *mal.Env) (mal.Value, error) {
	for {
		if ast.Type() != mal.ListType {
			return evalAST(ast, env)
		}
		list, _ := ast.Seq()
		if len(list) == 0 {
			return ast, nil
		}
		// The head is inspected before evaluation: special forms get their
		// arguments raw.
		if name, err := list[0].IfSymbol(); err == nil {
			switch name {
			case "def!":
				return defForm(list[1:], env)
			case "let*":
				next, inner, err := letForm(list[1:], env)
				if err != nil {
					return mal.Nil, err
				}
				ast, env = next, inner
				continue
			case "do":
				next, err := doForm(list[1:], env)
				if err != nil {
					return mal.Nil, err
				}
				ast = next
				continue
			case "if":
				next, err := ifForm(list[1:], env)
				if err != nil {
					return mal.Nil, err
				}
				ast = next
				continue
			case "fn*", "λ":
				return fnForm(list[1:], env)
			case "quote":
				if len(list) != 2 {
					return mal.Nil, gomal.Errorf("quote form: needs 1 argument")
				}
				return list[1], nil
			case "ok?":
				if len(list) != 2 {
					return mal.Nil, gomal.Errorf("ok? form: needs 1 argument")
				}
				if _, err := Eval(list[1], env); err != nil {
					tracer().Debugf("ok? caught: %v", err)
					return mal.Nil, nil
				}
				return mal.True, nil
			case "eval":
				if len(list) != 2 {
					return mal.Nil, gomal.Errorf("eval form: needs 1 argument")
				}
				v, err := Eval(list[1], env)
				if err != nil {
					return mal.Nil, err
				}
				// The value is itself evaluated as an AST, in the root
				// environment. Tail position: continue the loop.
				ast, env = v, env.Root()
				continue
			case "help", "h":
				return helpForm(list[1:], env)
			case "find":
				return findForm(list[1:], env)
			}
		}
		// Not a special form: evaluate the whole list and apply the callee.
		evaluated, err := evalSeq(list, env)
		if err != nil {
			return mal.Nil, err
		}
		callee, args := evaluated[0], evaluated[1:]
		switch callee.Type() {
		case mal.BuiltinType:
			// Builtins are leaf calls, no TCO.
			return callee.Data.(*mal.Builtin).Call(args)
		case mal.ClosureType:
			cl := callee.Data.(*mal.Closure)
			inner, err := cl.Env.BindParams(cl.Params, args)
			if err != nil {
				return mal.Nil, err
			}
			if len(cl.Body) == 0 {
				return mal.Nil, nil
			}
			for _, e := range cl.Body[:len(cl.Body)-1] {
				if _, err := Eval(e, inner); err != nil {
					return mal.Nil, err
				}
			}
			// The hot path: the last body expression continues the loop in
			// the freshly bound environment.
			ast, env = cl.Body[len(cl.Body)-1], inner
			continue
		case mal.MapType:
			return applyMap(callee, args)
		case mal.VectorType:
			return applyVector(callee, args)
		}
		return mal.Nil, gomal.Errorf("%s is not a function", mal.Print(callee))
	}
}

// evalAST evaluates the non-call cases: symbols resolve, collections map
// themselves element-wise, everything else is self-evaluating.
func evalAST(ast mal.Value, env *mal.Env) (mal.Value, error) {
	switch ast.Type() {
	case mal.SymbolType:
		return env.Lookup(ast.Data.(string))
	case mal.ListType:
		els, err := evalSeq(ast.Data.([]mal.Value), env)
		if err != nil {
			return mal.Nil, err
		}
		return mal.List(els...), nil
	case mal.VectorType:
		els, err := evalSeq(ast.Data.([]mal.Value), env)
		if err != nil {
			return mal.Nil, err
		}
		return mal.Vector(els...), nil
	case mal.MapType:
		return ast.MapValues(func(v mal.Value) (mal.Value, error) {
			return Eval(v, env)
		})
	}
	return ast, nil
}

// evalSeq evaluates elements strictly left to right into a fresh slice.
func evalSeq(els []mal.Value, env *mal.Env) ([]mal.Value, error) {
	ret := make([]mal.Value, len(els))
	for i, el := range els {
		v, err := Eval(el, env)
		if err != nil {
			return nil, err
		}
		ret[i] = v
	}
	return ret, nil
}

// applyMap treats a map in call position as a lookup: one string or keyword
// argument, Nil for an absent key.
func applyMap(m mal.Value, args []mal.Value) (mal.Value, error) {
	if len(args) != 1 {
		return mal.Nil, gomal.Errorf("map lookup: needs 1 argument")
	}
	key, ok := args[0].MapKey()
	if !ok {
		return mal.Nil, gomal.Errorf("map lookup: %s is not a valid key", mal.Print(args[0]))
	}
	v, _ := m.MapGet(key)
	return v, nil
}

// applyVector treats a vector in call position as indexing: one number
// argument, Nil when the integer part is out of range.
func applyVector(vec mal.Value, args []mal.Value) (mal.Value, error) {
	if len(args) != 1 {
		return mal.Nil, gomal.Errorf("vector lookup: needs 1 argument")
	}
	f, err := args[0].IfNumber()
	if err != nil {
		return mal.Nil, err
	}
	els, _ := vec.Seq()
	idx := f.Num() / f.Den()
	if idx < 0 || idx >= int64(len(els)) {
		return mal.Nil, nil
	}
	return els[idx], nil
}
