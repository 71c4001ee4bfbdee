// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsenet

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ConfigError reports a malformed or inconsistent wiring record. Networks are
// never partially built: any ConfigError aborts the whole load.
//
type ConfigError struct {
	Line int    // 1-based line number of the record, 0 if unknown
	Text string // offending record
	Err  error
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString("wiring")
	if e.Line > 0 {
		b.WriteString(" line ")
		b.WriteString(strconv.Itoa(e.Line))
	}
	if e.Text != "" {
		b.WriteString(" ")
		b.WriteString(strconv.Quote(e.Text))
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

// Unwrap returns the underlying error.
//
func (e *ConfigError) Unwrap() error { return e.Err }

// UnknownDestinationError is returned in strict mode when a module output
// refers to a label that is never declared.
//
type UnknownDestinationError struct {
	Label string // undeclared label
	From  string // module listing Label as an output
}

func (e *UnknownDestinationError) Error() string {
	return "module " + strconv.Quote(e.From) + " outputs to undeclared module " + strconv.Quote(e.Label)
}

// ErrPreconditionViolated is matched by every *PreconditionError.
//
var ErrPreconditionViolated = errors.New("period analysis precondition violated")

// PreconditionError reports that the independent sub-circuit assumption of the
// period analyzer could not be verified for the given labels. When it is
// returned, only direct simulation yields a correct answer.
//
type PreconditionError struct {
	Labels []string
	Reason string
}

func (e *PreconditionError) Error() string {
	return ErrPreconditionViolated.Error() + " for " + strings.Join(e.Labels, ", ") + ": " + e.Reason
}

// Is reports whether target is ErrPreconditionViolated.
//
func (e *PreconditionError) Is(target error) bool {
	return target == ErrPreconditionViolated
}

func configError(line int, text string, err error) error {
	return errors.WithStack(&ConfigError{Line: line, Text: text, Err: err})
}

func preconditionError(reason string, labels ...string) error {
	return errors.WithStack(&PreconditionError{Labels: labels, Reason: reason})
}
