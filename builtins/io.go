package builtins

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/gomal"
	"github.com/npillmayer/gomal/mal"
	"github.com/npillmayer/gomal/reader"
)

// joinPrinted renders all arguments in the given mode, joined by sep.
func joinPrinted(args []mal.Value, readably bool, sep string) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = mal.PrintString(a, readably)
	}
	return strings.Join(parts, sep)
}

// malPrn prints all arguments readably, space-joined, and flushes the line.
func malPrn(args []mal.Value) (mal.Value, error) {
	fmt.Println(joinPrinted(args, true, " "))
	return mal.Nil, nil
}

// malPrintln prints all arguments non-readably, space-joined.
func malPrintln(args []mal.Value) (mal.Value, error) {
	fmt.Println(joinPrinted(args, false, " "))
	return mal.Nil, nil
}

// malSlurp reads a whole file into a string. The handle is closed before the
// builtin returns.
func malSlurp(args []mal.Value) (mal.Value, error) {
	arg, err := first(args)
	if err != nil {
		return mal.Nil, err
	}
	filename, err := arg.IfString()
	if err != nil {
		return mal.Nil, err
	}
	content, err := os.ReadFile(filename)
	if err != nil {
		return mal.Nil, gomal.Errorf("unable to read file '%s'", filename)
	}
	return mal.Str(string(content)), nil
}

// malEnv retrieves an environment variable, or Nil if it is not set.
func malEnv(args []mal.Value) (mal.Value, error) {
	arg, err := first(args)
	if err != nil {
		return mal.Nil, err
	}
	name, err := arg.IfString()
	if err != nil {
		return mal.Nil, err
	}
	if val, ok := os.LookupEnv(name); ok {
		return mal.Str(val), nil
	}
	return mal.Nil, nil
}

var stdin = bufio.NewReader(os.Stdin)

// malReadLine reads one line from standard input.
func malReadLine(args []mal.Value) (mal.Value, error) {
	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		return mal.Nil, gomal.Errorf("end of input")
	}
	return mal.Str(strings.TrimSuffix(line, "\n")), nil
}

// malReadString invokes the reader on a string. Reader errors surface as
// unrecoverable here: there is no more input to wait for.
func malReadString(args []mal.Value) (mal.Value, error) {
	arg, err := first(args)
	if err != nil {
		return mal.Nil, err
	}
	src, err := arg.IfString()
	if err != nil {
		return mal.Nil, err
	}
	form, err := reader.New().Push(src).ReadForm()
	if err != nil {
		return mal.Nil, gomal.Severe(err)
	}
	return form, nil
}

// malExit terminates the process: status 0 without an argument, the integer
// part of a number argument, −1 for anything else.
func malExit(args []mal.Value) (mal.Value, error) {
	status := 0
	if len(args) > 0 {
		if f, err := args[0].IfNumber(); err == nil {
			status = int(f.Num() / f.Den())
		} else {
			status = -1
		}
	}
	tracer().Infof("exiting with status %d", status)
	os.Exit(status)
	return mal.Nil, nil // not reached
}

// malRaise produces an unrecoverable error with the given message.
func malRaise(args []mal.Value) (mal.Value, error) {
	arg, err := first(args)
	if err != nil {
		return mal.Nil, err
	}
	msg, err := arg.IfString()
	if err != nil {
		return mal.Nil, err
	}
	return mal.Nil, gomal.Errorf("%s", msg)
}
