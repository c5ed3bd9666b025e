package gomal

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// --- A shared error contract for all interpreter components ----------------

// Severity classifies interpreter errors. There are exactly two severities:
// recoverable errors, raised by the reader for incomplete input (the REPL
// reacts by asking for more), and unrecoverable errors, raised for everything
// else (the REPL discards the current form and resumes).
type Severity int8

const (
	// Recoverable signals "feed me more input". Only the reader raises this.
	Recoverable Severity = iota
	// Unrecoverable aborts the current top-level form.
	Unrecoverable
)

// Err is the error type common to reader, evaluator and builtins. It carries
// a human-readable message and a severity, nothing else: no structured
// payload, no cause chain.
type Err struct {
	Msg      string
	Severity Severity
}

func (e *Err) Error() string {
	return e.Msg
}

// ErrorRecoverable creates a recoverable error.
func ErrorRecoverable(msg string) *Err {
	return &Err{Msg: msg, Severity: Recoverable}
}

// Errorf creates an unrecoverable error from a format string.
func Errorf(format string, args ...interface{}) *Err {
	return &Err{Msg: fmt.Sprintf(format, args...), Severity: Unrecoverable}
}

// IsRecoverable is the only severity probe clients should need. Errors not
// created by this package count as unrecoverable.
func IsRecoverable(err error) bool {
	if e, ok := err.(*Err); ok {
		return e.Severity == Recoverable
	}
	return false
}

// Severe re-classifies any error as unrecoverable, keeping its message.
// Used when a recoverable reader error crosses an API boundary where no
// further input can arrive, e.g. the read-string builtin.
func Severe(err error) *Err {
	if err == nil {
		return nil
	}
	return &Err{Msg: err.Error(), Severity: Unrecoverable}
}
