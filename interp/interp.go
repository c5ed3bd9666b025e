package interp

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
	"path/filepath"

	"github.com/npillmayer/gomal"
	"github.com/npillmayer/gomal/builtins"
	"github.com/npillmayer/gomal/eval"
	"github.com/npillmayer/gomal/mal"
	"github.com/npillmayer/gomal/reader"
	"github.com/pterm/pterm"
)

// Interp is the interpreter object: the root environment, the stateful
// reader whose buffer survives across REPL submissions, and the expression
// counter for the output prefix.
type Interp struct {
	root  *mal.Env
	rd    *reader.Reader
	count int
}

// New creates an interpreter with a seeded root environment: all builtins,
// MAL_HOME, and an empty *ARGV*.
func New() *Interp {
	root := mal.NewEnv(nil)
	builtins.Register(root)
	root.Define("MAL_HOME", mal.Str(MalHome()))
	root.Define("*ARGV*", mal.List())
	return &Interp{
		root: root,
		rd:   reader.New(),
	}
}

// Root returns the root environment.
func (ip *Interp) Root() *mal.Env {
	return ip.root
}

// MalHome is the directory holding the prelude (core.mal), the optional
// config (config.mal) and the REPL history. Defaults to $HOME/.config/gomal
// when the MAL_HOME environment variable is unset.
func MalHome() string {
	if dir := os.Getenv("MAL_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".config", "gomal")
}

// SetArgv defines *ARGV* in the root environment as a list of strings.
func (ip *Interp) SetArgv(args []string) {
	vals := make([]mal.Value, len(args))
	for i, a := range args {
		vals[i] = mal.Str(a)
	}
	ip.root.Define("*ARGV*", mal.List(vals...))
}

// LoadPrelude loads $MAL_HOME/core.mal as a single (do …) form — this is
// where language-level helpers like not and load-file come into existence —
// and then the optional config.mal. A missing file is not an error.
func (ip *Interp) LoadPrelude() {
	home := MalHome()
	if err := ip.loadDo(filepath.Join(home, "core.mal")); err != nil {
		pterm.Println("; Error @ " + err.Error())
	}
	if err := ip.loadDo(filepath.Join(home, "config.mal")); err != nil {
		pterm.Println("; Error @ " + err.Error())
	}
}

// loadDo evaluates a whole file as one (do …) form in the root environment.
func (ip *Interp) loadDo(filename string) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		tracer().Infof("no init file '%s'", filename)
		return nil
	}
	tracer().Infof("loading '%s'", filename)
	form, err := reader.New().Push("(do " + string(content) + "\n)").ReadForm()
	if err != nil {
		return gomal.Severe(err)
	}
	_, err = eval.Eval(form, ip.root)
	return err
}

// LoadFile evaluates a source file, feeding it to a stateful reader line by
// line: forms may span lines, and an unrecoverable error aborts only the
// current form. A form left incomplete at end of file means the environment
// is in an unknown state, which is reported as an error.
func (ip *Interp) LoadFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return gomal.Errorf("unable to open file '%s'", filename)
	}
	defer f.Close()

	rd := reader.New()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		rd.Push(scanner.Text() + "\n")
		for !rd.Exhausted() {
			form, err := rd.ReadForm()
			if err != nil {
				if gomal.IsRecoverable(err) {
					break // the form continues on the next line
				}
				pterm.Println("; Error @ " + err.Error())
				rd.Clear()
				break
			}
			if _, err := eval.Eval(form, ip.root); err != nil {
				pterm.Println("; Error @ " + err.Error())
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return gomal.Errorf("error reading '%s': %s", filename, err)
	}
	if !rd.Exhausted() {
		return gomal.Errorf("ERROR parsing: '%s'\n;   the environment is in an unknown state", filename)
	}
	return nil
}

// Rep processes one REPL submission: push the line, then read and evaluate
// every complete form, printing each result with the expression counter. A
// recoverable error is returned to the caller, which keeps the buffer and
// asks for more input.
func (ip *Interp) Rep(line string) error {
	ip.rd.Push(line + "\n")
	for !ip.rd.Exhausted() {
		form, err := ip.rd.ReadForm()
		if err != nil {
			if gomal.IsRecoverable(err) {
				return err
			}
			pterm.Println(fmt.Sprintf("; [%d]> Error @ %s", ip.count, err.Error()))
			ip.count++
			ip.rd.Clear()
			return nil
		}
		v, err := eval.Eval(form, ip.root)
		if err != nil {
			pterm.Println(fmt.Sprintf("; [%d]> Error @ %s", ip.count, err.Error()))
			ip.count++
			continue
		}
		pterm.Println(fmt.Sprintf("[%d]> %s", ip.count, mal.Print(v)))
		ip.count++
	}
	return nil
}

// Banner prints the value of the symbol BANNER, if the prelude defined one.
func (ip *Interp) Banner() {
	if v, err := ip.root.Lookup("BANNER"); err == nil {
		pterm.Println(mal.PrintString(v, false))
	}
}
