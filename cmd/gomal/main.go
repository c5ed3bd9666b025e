/*
Command gomal starts the GoMAL interpreter.

    gomal [--trace LEVEL] [FILE [ARGV…]]

With no FILE it enters the REPL. With a FILE, the file is evaluated first
(with *ARGV* bound to the remaining arguments as strings) and the REPL is
entered afterwards. The process exit status is 0 on normal termination;
the exit builtin terminates with its argument.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"os"

	"github.com/npillmayer/gomal/interp"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// traceKeys are the trace selectors of all interpreter packages.
var traceKeys = []string{
	"gomal", "gomal.mal", "gomal.reader", "gomal.eval", "gomal.builtins", "gomal.interp",
}

func main() {
	app := &cli.App{
		Name:      "gomal",
		Usage:     "an interpreter for a small Lisp-family language",
		ArgsUsage: "[FILE [ARGV...]]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "trace",
				Value: "Error",
				Usage: "trace level [Debug|Info|Error]",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	level := tracing.TraceLevelFromString(c.String("trace"))
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}

	ip := interp.New()
	ip.LoadPrelude()
	args := c.Args().Slice()
	if len(args) > 0 {
		ip.SetArgv(args[1:])
		if err := ip.LoadFile(args[0]); err != nil {
			pterm.Println("; Error @ " + err.Error())
		}
	}
	ip.Banner()
	return ip.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
