// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package netlist parses wiring descriptions of the form
//
//	broadcaster -> a, b, c
//	%a -> b
//	&inv -> a
//
// into records. It does not check that labels are unique or that referenced
// labels are declared; that is the job of the network builder.
//
package netlist

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// Module type prefixes.
const (
	FlipFlop    = '%'
	Conjunction = '&'
	// None is the Prefix of an unprefixed record.
	None = 0
)

// Separator between a declaration and its output list.
const Separator = "->"

// Broadcaster is the only label valid without a prefix.
const Broadcaster = "broadcaster"

// A Record is a single parsed wiring declaration.
//
type Record struct {
	Line    int  // 1-based line number, 0 for records not read from text.
	Prefix  byte // FlipFlop, Conjunction or None
	Label   string
	Outputs []string
}

// MaxLineSize is the maximum size in bytes of a wiring record.
const MaxLineSize = 1 << 20

// SyntaxError reports a malformed record.
//
type SyntaxError struct {
	Line  int
	Input string
	Msg   string
}

func (e *SyntaxError) Error() string {
	msg := e.Msg
	if e.Input != "" {
		msg += " in " + strconv.Quote(e.Input)
	}
	if e.Line > 0 {
		return "line " + strconv.Itoa(e.Line) + ": " + msg
	}
	return msg
}

func syntaxError(line int, in string, msg string) error {
	return errors.WithStack(&SyntaxError{Line: line, Input: in, Msg: msg})
}

// Parse reads all records from r. Blank lines are skipped. Parsing stops at
// the first malformed line. Lines longer than MaxLineSize are a syntax error.
//
func Parse(r io.Reader) ([]Record, error) {
	var rs []Record
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), MaxLineSize)
	n := 0
	for s.Scan() {
		n++
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		rec, err := ParseLine(line)
		if err != nil {
			if se, ok := errors.Cause(err).(*SyntaxError); ok {
				se.Line = n
			}
			return nil, err
		}
		rec.Line = n
		rs = append(rs, rec)
	}
	if err := s.Err(); err != nil {
		if err == bufio.ErrTooLong {
			return nil, syntaxError(n+1, "", "record longer than "+strconv.Itoa(MaxLineSize)+" bytes")
		}
		return nil, errors.Wrap(err, "read wiring")
	}
	return rs, nil
}

// ParseLine parses a single record.
//
func ParseLine(line string) (Record, error) {
	var rec Record
	i := strings.Index(line, Separator)
	if i < 0 {
		return rec, syntaxError(0, line, "missing "+strconv.Quote(Separator))
	}
	decl := strings.TrimSpace(line[:i])
	outs, err := SplitLabels(line[i+len(Separator):])
	if err != nil {
		return rec, syntaxError(0, line, err.Error())
	}
	if len(outs) == 0 {
		return rec, syntaxError(0, line, "empty output list")
	}
	if decl == "" {
		return rec, syntaxError(0, line, "missing module label")
	}
	switch decl[0] {
	case FlipFlop, Conjunction:
		rec.Prefix = decl[0]
		decl = decl[1:]
		if decl == "" {
			return rec, syntaxError(0, line, "missing module label after prefix")
		}
		if decl == Broadcaster {
			return rec, syntaxError(0, line, Broadcaster+" cannot have a type prefix")
		}
	default:
		if decl != Broadcaster {
			return rec, syntaxError(0, line, "unknown module type for "+strconv.Quote(decl))
		}
	}
	if !ValidLabel(decl) {
		return rec, syntaxError(0, line, "invalid label "+strconv.Quote(decl))
	}
	rec.Label = decl
	rec.Outputs = outs
	return rec, nil
}

// SplitLabels splits a comma separated label list. Surrounding whitespace is
// ignored. An empty or blank list yields no labels; empty entries in a non
// empty list are an error.
//
func SplitLabels(list string) ([]string, error) {
	list = strings.TrimSpace(list)
	if list == "" {
		return nil, nil
	}
	parts := strings.Split(list, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, errors.New("empty label in output list")
		}
		if !ValidLabel(p) {
			return nil, errors.New("invalid label " + strconv.Quote(p))
		}
		out = append(out, p)
	}
	return out, nil
}

// ValidLabel reports whether s is a valid module label: a non-empty string of
// printable ASCII characters without commas, whitespace or separator.
//
func ValidLabel(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || r == ',' || unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return false
		}
	}
	return !strings.Contains(s, Separator)
}
