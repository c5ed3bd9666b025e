package interp

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/npillmayer/gomal"
	"github.com/pterm/pterm"
)

// Prompt is the fixed REPL prompt.
const Prompt = "; mal> "

// REPL starts interactive mode. Lines are read with history and line
// editing; a recoverable reader error makes the prompt reappear with the
// buffer intact, which is all there is to multi-line input. Interrupting
// with ctrl-C discards the current buffer; ctrl-D leaves the loop.
func (ip *Interp) REPL() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      Prompt,
		HistoryFile: filepath.Join(MalHome(), ".mal-history"),
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	tracer().Infof("quit with <ctrl>D")
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			ip.rd.Clear()
			continue
		}
		if err != nil { // io.EOF
			break
		}
		if err := ip.Rep(line); err != nil {
			if gomal.IsRecoverable(err) {
				continue // more input, please
			}
			return err
		}
	}
	pterm.Println("Good bye!")
	return nil
}
