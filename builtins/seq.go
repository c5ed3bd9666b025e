package builtins

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

// first returns the first argument of a builtin call.
func first(args []mal.Value) (mal.Value, error) {
	if len(args) == 0 {
		return mal.Nil, gomal.Errorf("missing argument")
	}
	return args[0], nil
}

// malCar returns the first element of a sequence, or Nil if it is empty.
func malCar(args []mal.Value) (mal.Value, error) {
	arg, err := first(args)
	if err != nil {
		return mal.Nil, err
	}
	els, err := arg.IfSeq()
	if err != nil {
		return mal.Nil, err
	}
	if len(els) == 0 {
		return mal.Nil, nil
	}
	return els[0], nil
}

// malCdr returns all but the first element, as a fresh list. The empty
// sequence yields the empty list.
func malCdr(args []mal.Value) (mal.Value, error) {
	arg, err := first(args)
	if err != nil {
		return mal.Nil, err
	}
	els, err := arg.IfSeq()
	if err != nil {
		return mal.Nil, err
	}
	if len(els) == 0 {
		return mal.List(), nil
	}
	rest := make([]mal.Value, len(els)-1)
	copy(rest, els[1:])
	return mal.List(rest...), nil
}

// malCons prepends an element to a list or vector, producing a fresh list.
func malCons(args []mal.Value) (mal.Value, error) {
	if len(args) != 2 {
		return mal.Nil, gomal.Errorf("cons: needs 2 arguments")
	}
	els, err := args[1].IfSeq()
	if err != nil {
		return mal.Nil, err
	}
	fresh := make([]mal.Value, 0, len(els)+1)
	fresh = append(fresh, args[0])
	fresh = append(fresh, els...)
	return mal.List(fresh...), nil
}

// malCount returns the element count of a list or vector; Nil counts as 0.
func malCount(args []mal.Value) (mal.Value, error) {
	arg, err := first(args)
	if err != nil {
		return mal.Nil, err
	}
	if arg.IsNil() {
		return mal.Int(0), nil
	}
	els, err := arg.IfSeq()
	if err != nil {
		return mal.Nil, err
	}
	return mal.Int(int64(len(els))), nil
}

// malBoom splits a string into a list of its characters.
func malBoom(args []mal.Value) (mal.Value, error) {
	arg, err := first(args)
	if err != nil {
		return mal.Nil, err
	}
	s, err := arg.IfString()
	if err != nil {
		return mal.Nil, err
	}
	chars := []mal.Value{}
	for _, r := range s {
		chars = append(chars, mal.Char(r))
	}
	return mal.List(chars...), nil
}

// malEquals is structural equality on the first two arguments.
func malEquals(args []mal.Value) (mal.Value, error) {
	if len(args) < 2 {
		return mal.Nil, gomal.Errorf("=: needs 2 arguments")
	}
	return mal.Bool(mal.Equals(args[0], args[1])), nil
}
