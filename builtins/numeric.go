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

// arithFold folds an operation over the arguments, left to right. Zero
// arguments yield the identity; one argument combines the identity with the
// argument (so (- 5) is -5 and (/ 2) is 1/2); two or more fold from the
// first argument. The result is reduced to lowest terms unconditionally.
func arithFold(identity mal.Frac, op func(mal.Frac, mal.Frac) mal.Frac, args []mal.Value) (mal.Value, error) {
	if len(args) == 0 {
		return mal.Num(identity), nil
	}
	first, err := args[0].IfNumber()
	if err != nil {
		return mal.Nil, err
	}
	var acc mal.Frac
	var rest []mal.Value
	if len(args) == 1 {
		acc, rest = op(identity, first), nil
	} else {
		acc, rest = first, args[1:]
	}
	for _, a := range rest {
		f, err := a.IfNumber()
		if err != nil {
			return mal.Nil, err
		}
		acc = op(acc, f)
	}
	return mal.Num(acc.Reduce()), nil
}

// anyZero guards division: a zero numerator anywhere among the operands is
// an error, checked before the fold starts.
func anyZero(args []mal.Value) ([]mal.Value, error) {
	for _, a := range args {
		f, err := a.IfNumber()
		if err != nil {
			return nil, err
		}
		if f.IsZero() {
			return nil, gomal.Errorf("division by zero")
		}
	}
	return args, nil
}

// compareFold applies a predicate to each adjacent pair of arguments. All
// pairs must satisfy it for True; any failing pair yields Nil. With no
// arguments there is nothing to affirm: Nil. A single argument is vacuously
// True.
func compareFold(pred func(int) bool, args []mal.Value) (mal.Value, error) {
	if len(args) == 0 {
		return mal.Nil, nil
	}
	left, err := args[0].IfNumber()
	if err != nil {
		return mal.Nil, err
	}
	for _, a := range args[1:] {
		right, err := a.IfNumber()
		if err != nil {
			return mal.Nil, err
		}
		if !pred(left.Cmp(right)) {
			return mal.Nil, nil
		}
		left = right
	}
	return mal.True, nil
}
