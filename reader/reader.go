package reader

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/gomal"
	"github.com/npillmayer/gomal/mal"
)

// Reader is a stateful form reader. Its buffer survives across submissions:
// after a recoverable error the caller pushes more text and retries the same
// form.
type Reader struct {
	buffer string
	tokens []string
	pos    int
}

// New creates an empty reader.
func New() *Reader {
	return &Reader{}
}

// Push appends text to the buffer and re-tokenizes. When called after a
// completed parse (all tokens consumed) the buffer is reset first, so a
// fresh submission starts clean. Returns the reader for chaining.
func (r *Reader) Push(text string) *Reader {
	if r.pos > 0 && r.pos >= len(r.tokens) {
		r.Clear()
	}
	r.buffer += text
	r.tokens = tokenize(r.buffer)
	return r
}

// Clear resets buffer and cursor.
func (r *Reader) Clear() {
	r.buffer = ""
	r.tokens = nil
	r.pos = 0
}

// Exhausted is true when the cursor has consumed all tokens.
func (r *Reader) Exhausted() bool {
	return r.pos >= len(r.tokens)
}

// ReadForm parses the next top-level form, advancing the cursor. On error the
// cursor is rewound to the start of the form: after a recoverable error the
// caller may Push more text and retry, after an unrecoverable one it should
// Clear.
func (r *Reader) ReadForm() (mal.Value, error) {
	start := r.pos
	v, err := r.readForm()
	if err != nil {
		r.pos = start
		return mal.Nil, err
	}
	return v, nil
}

func (r *Reader) peek() (string, error) {
	if r.Exhausted() {
		return "", gomal.ErrorRecoverable("unexpected end of input")
	}
	return r.tokens[r.pos], nil
}

func (r *Reader) readForm() (mal.Value, error) {
	tok, err := r.peek()
	if err != nil {
		return mal.Nil, err
	}
	switch tok {
	case "(":
		r.pos++
		els, err := r.readSeq(")")
		if err != nil {
			return mal.Nil, err
		}
		return mal.List(els...), nil
	case "[":
		r.pos++
		els, err := r.readSeq("]")
		if err != nil {
			return mal.Nil, err
		}
		return mal.Vector(els...), nil
	case "{":
		r.pos++
		els, err := r.readSeq("}")
		if err != nil {
			return mal.Nil, err
		}
		return mal.MakeMap(els)
	case "'":
		r.pos++
		form, err := r.readForm()
		if err != nil {
			return mal.Nil, err
		}
		return mal.List(mal.Sym("quote"), form), nil
	case ")", "]", "}":
		return mal.Nil, gomal.Errorf("unexpected '%s'", tok)
	}
	return r.readAtom()
}

// readSeq accumulates forms up to the matching terminator. Running out of
// tokens first is the recoverable case; a foreign terminator is not.
func (r *Reader) readSeq(terminator string) ([]mal.Value, error) {
	els := []mal.Value{}
	for {
		tok, err := r.peek()
		if err != nil {
			return nil, gomal.ErrorRecoverable("missing closing '" + terminator + "'")
		}
		switch tok {
		case ")", "]", "}":
			if tok != terminator {
				return nil, gomal.Errorf("unexpected '%s', expected '%s'", tok, terminator)
			}
			r.pos++
			return els, nil
		}
		el, err := r.readForm()
		if err != nil {
			return nil, err
		}
		els = append(els, el)
	}
}

var numberPattern = regexp.MustCompile(`^-?[0-9]+(?:/[0-9]+)?$`)

func (r *Reader) readAtom() (mal.Value, error) {
	tok, err := r.peek()
	if err != nil {
		return mal.Nil, err
	}
	r.pos++
	switch {
	case tok == "nil":
		return mal.Nil, nil
	case tok == "true":
		return mal.True, nil
	case tok == "false":
		return mal.False, nil
	case strings.HasPrefix(tok, `"`):
		return r.readString(tok)
	case strings.HasPrefix(tok, ":"):
		return mal.Key(tok), nil
	case numberPattern.MatchString(tok):
		return r.readNumber(tok)
	}
	return mal.Sym(tok), nil
}

func (r *Reader) readNumber(tok string) (mal.Value, error) {
	numtext, dentext, isFrac := strings.Cut(tok, "/")
	num, err := strconv.ParseInt(numtext, 10, 64)
	if err != nil {
		return mal.Nil, gomal.Errorf("number out of range: %s", tok)
	}
	var den int64 = 1
	if isFrac {
		if den, err = strconv.ParseInt(dentext, 10, 64); err != nil {
			return mal.Nil, gomal.Errorf("number out of range: %s", tok)
		}
	}
	f, err := mal.NewFrac(num, den)
	if err != nil {
		return mal.Nil, err
	}
	return mal.Num(f), nil
}

// readString undoes the escapes of the printer's readable mode. A token
// without a closing unescaped quote is the "string still open" case and
// therefore recoverable.
func (r *Reader) readString(tok string) (mal.Value, error) {
	body := tok[1:]
	var b strings.Builder
	closed := false
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '\\' {
			if i+1 >= len(body) {
				break // lone trailing backslash: the literal is still open
			}
			i++
			switch body[i] {
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			default: // covers \\ and \" and leaves unknown escapes verbatim
				b.WriteByte(body[i])
			}
			continue
		}
		if c == '"' {
			closed = true
			break
		}
		b.WriteByte(c)
	}
	if !closed {
		return mal.Nil, gomal.ErrorRecoverable("unterminated string literal")
	}
	return mal.Str(b.String()), nil
}
