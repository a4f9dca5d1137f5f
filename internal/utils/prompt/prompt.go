// Package prompt provides the console I/O helpers shared by every menu
// handler: labelled reads from the input stream and formatted reports
// back to the user.
//
// Parsing is a value, not control flow. A read that expects a number
// returns a sentinel-wrapped error instead of panicking or guessing, and
// the caller decides with errors.Is whether to report "please enter a
// valid number" (ErrNotANumber) or to end the session (ErrInputClosed).
// That makes the abort-without-mutation contract of every operation
// checkable in a test: parse fails, store method is never called.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrNotANumber reports input that should have been an integer but
	// did not parse as one.
	ErrNotANumber = errors.New("not a number")

	// ErrInputClosed reports that the input stream has no more lines.
	// Every read can return it; callers treat it as "session over".
	ErrInputClosed = errors.New("input closed")
)

// Prompter reads single-line answers from in and writes prompts and
// reports to out. Handlers receive one Prompter per session; tests feed
// a scripted strings.Reader and assert on a bytes.Buffer.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New returns a Prompter over the given streams.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Printf writes a report line to the console.
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// ReadLine prints the label and returns the next input line without its
// trailing newline. The line is returned exactly as typed; callers that
// care about blank-versus-spaces decide for themselves.
//
// The only failure is ErrInputClosed, when the stream is exhausted or
// broken.
func (p *Prompter) ReadLine(label string) (string, error) {
	fmt.Fprint(p.out, label)

	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("ReadLine: %v: %w", err, ErrInputClosed)
		}
		return "", ErrInputClosed
	}

	return p.in.Text(), nil
}

// ReadInt prints the label and parses the answer as a base-10 integer.
// Surrounding whitespace is tolerated. A non-numeric answer returns an
// error wrapping ErrNotANumber.
func (p *Prompter) ReadInt(label string) (int64, error) {
	line, err := p.ReadLine(label)
	if err != nil {
		return 0, err
	}
	return parseInt(line)
}

// ReadOptionalInt prints the label and reads an answer that may be left
// blank. A blank (or all-whitespace) line means "no value" and returns
// (nil, nil); anything else must parse as an integer. This is the
// explicit "leave unchanged" signal: blank is nil, a typed "0" is a
// pointer to zero, and the two can never be confused.
func (p *Prompter) ReadOptionalInt(label string) (*int64, error) {
	line, err := p.ReadLine(label)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}
	n, err := parseInt(line)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func parseInt(line string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", line, ErrNotANumber)
	}
	return n, nil
}
