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

// Register seeds an environment with the builtin namespace. Builtins are
// ordinary values: inner scopes may shadow them.
func Register(env *mal.Env) {
	def := func(name string, call func([]mal.Value) (mal.Value, error), desc string) {
		env.Define(name, mal.Fn(call, desc))
	}

	// arithmetic
	def("+", func(a []mal.Value) (mal.Value, error) {
		return arithFold(mal.FromInt(0), mal.Frac.Add, a)
	}, "Returns the sum of the arguments")
	def("-", func(a []mal.Value) (mal.Value, error) {
		return arithFold(mal.FromInt(0), mal.Frac.Sub, a)
	}, "Returns the difference of the arguments")
	def("*", func(a []mal.Value) (mal.Value, error) {
		return arithFold(mal.FromInt(1), mal.Frac.Mul, a)
	}, "Returns the product of the arguments")
	def("/", func(a []mal.Value) (mal.Value, error) {
		a, err := anyZero(a)
		if err != nil {
			return mal.Nil, err
		}
		return arithFold(mal.FromInt(1), mal.Frac.Div, a)
	}, "Returns the quotient of the arguments (checking for division by 0)")

	// comparison
	def("<", func(a []mal.Value) (mal.Value, error) {
		return compareFold(func(c int) bool { return c < 0 }, a)
	}, "Returns true if each argument is strictly smaller than the next one, nil otherwise")
	def(">", func(a []mal.Value) (mal.Value, error) {
		return compareFold(func(c int) bool { return c > 0 }, a)
	}, "Returns true if each argument is strictly greater than the next one, nil otherwise")
	def("<=", func(a []mal.Value) (mal.Value, error) {
		return compareFold(func(c int) bool { return c <= 0 }, a)
	}, "Returns true if each argument is smaller than or equal to the next one, nil otherwise")
	def(">=", func(a []mal.Value) (mal.Value, error) {
		return compareFold(func(c int) bool { return c >= 0 }, a)
	}, "Returns true if each argument is greater than or equal to the next one, nil otherwise")
	def("=", malEquals,
		"Return true if the first two arguments are the same type and content, recursing into sequences (never true for maps and functions)")

	// sequences
	def("list", func(a []mal.Value) (mal.Value, error) {
		return mal.List(a...), nil
	}, "Return the arguments as a list")
	def("count", malCount, "Return the number of elements in the first argument")
	def("car", malCar, "Returns the first element of the list, nil if it is empty")
	def("cdr", malCdr, "Returns all the list but the first element")
	def("cons", malCons, "Prepend the first argument to the second one, returning a list")

	// introspection
	def("type", func(a []mal.Value) (mal.Value, error) {
		arg, err := first(a)
		if err != nil {
			return mal.Nil, err
		}
		return arg.TypeLabel(), nil
	}, "Returns a label indicating the type of its argument")

	// numbers
	def("num", func(a []mal.Value) (mal.Value, error) {
		f, err := firstNumber(a)
		if err != nil {
			return mal.Nil, err
		}
		return mal.Int(f.Num()), nil
	}, "Get the numerator of the number")
	def("den", func(a []mal.Value) (mal.Value, error) {
		f, err := firstNumber(a)
		if err != nil {
			return mal.Nil, err
		}
		return mal.Int(f.Den()), nil
	}, "Get the denominator of the number")
	def("floor", func(a []mal.Value) (mal.Value, error) {
		f, err := firstNumber(a)
		if err != nil {
			return mal.Nil, err
		}
		return mal.Int(f.Floor()), nil
	}, "Round the number down to the closest smaller integer")

	// strings
	def("pr-str", func(a []mal.Value) (mal.Value, error) {
		return mal.Str(joinPrinted(a, true, " ")), nil
	}, "Print readably all arguments into a string")
	def("str", func(a []mal.Value) (mal.Value, error) {
		return mal.Str(joinPrinted(a, false, "")), nil
	}, "Concatenate all arguments, printed non-readably, into a string")
	def("prn", malPrn, "Print readably all the arguments")
	def("println", malPrintln, "Print non-readably all the arguments")
	def("boom", malBoom, "Split a string into a list of characters\n; BE CAREFUL WHEN USING")
	def("read-string", malReadString, "Tokenize and read the first argument")

	// I/O
	def("slurp", malSlurp, "Read a file and return the content as a string")
	def("env", malEnv, "Retrieve the specified environment variable, nil if that variable does not exist")
	def("read-line", malReadLine, "Read a line from input and return its content")
	def("exit", malExit, "Quit the program with the specified status")
	def("raise", malRaise, "Raise an unrecoverable error with the specified message")

	// atoms
	def("atom", func(a []mal.Value) (mal.Value, error) {
		v := mal.Nil
		if len(a) > 0 {
			v = a[0]
		}
		return mal.NewAtom(v), nil
	}, "Return an atom pointing to the given argument")
	def("deref", func(a []mal.Value) (mal.Value, error) {
		arg, err := first(a)
		if err != nil {
			return mal.Nil, err
		}
		cell, err := arg.IfAtom()
		if err != nil {
			return mal.Nil, err
		}
		return cell.Val, nil
	}, "Return the content of the atom argument")
	def("reset!", func(a []mal.Value) (mal.Value, error) {
		if len(a) != 2 {
			return mal.Nil, gomal.Errorf("reset!: needs 2 arguments")
		}
		cell, err := a[0].IfAtom()
		if err != nil {
			return mal.Nil, err
		}
		cell.Val = a[1]
		return a[1], nil
	}, "Change the value of the atom (first argument) to the second argument")

	// testing
	def("assert", func(a []mal.Value) (mal.Value, error) {
		for _, arg := range a {
			if !arg.Truthy() {
				return mal.Nil, gomal.Errorf("assertion failed: %s", mal.Print(arg))
			}
		}
		return mal.True, nil
	}, "Raise an error if any argument is nil or false")

	tracer().Infof("registered %d builtins", len(env.Keys()))
}

func firstNumber(args []mal.Value) (mal.Frac, error) {
	arg, err := first(args)
	if err != nil {
		return mal.Frac{}, err
	}
	return arg.IfNumber()
}
