// Package guess implements the number-guessing game: the closed range the
// secret is drawn from, guess parsing, the three-way comparison and the
// interactive session loop.
package guess

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Bounds of the closed range secrets are drawn from.
const (
	Start = 1
	End   = 100
)

// ErrInvalidRange indicates a range whose start exceeds its end.
var ErrInvalidRange = errors.New("range start must not exceed end")

// ErrInvalidGuess indicates a line that is not a non-negative base-10 integer.
var ErrInvalidGuess = errors.New("guess must be a non-negative integer")

// ErrInputClosed indicates the input stream ended or failed before a win.
var ErrInputClosed = errors.New("input closed")

// Range is a closed integer interval [Start, End].
type Range struct {
	Start int
	End   int
}

// DefaultRange returns [1, 100].
func DefaultRange() Range {
	return Range{Start: Start, End: End}
}

// Validate reports ErrInvalidRange when Start > End.
func (r Range) Validate() error {
	if r.Start > r.End {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, r.Start, r.End)
	}
	return nil
}

// Contains reports whether n lies within the range, bounds included.
func (r Range) Contains(n int) bool {
	return n >= r.Start && n <= r.End
}

// Outcome is the result of comparing a guess to the secret.
type Outcome int

const (
	OutcomeUnspecified Outcome = iota
	OutcomeTooSmall
	OutcomeTooBig
	OutcomeCorrect
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUnspecified:
		return "Unspecified"
	case OutcomeTooSmall:
		return "Too small"
	case OutcomeTooBig:
		return "Too big"
	case OutcomeCorrect:
		return "Correct"
	default:
		return "Unknown"
	}
}

// Compare resolves guess against secret.
func Compare(guess, secret int) Outcome {
	switch {
	case guess < secret:
		return OutcomeTooSmall
	case guess > secret:
		return OutcomeTooBig
	default:
		return OutcomeCorrect
	}
}

// ParseGuess parses one input line as an unsigned 32-bit base-10 integer.
// Surrounding whitespace and a single leading '+' are accepted. Anything
// else, including an empty line, negative numbers and decimals, returns an
// error wrapping ErrInvalidGuess.
func ParseGuess(line string) (int, error) {
	text := strings.TrimSpace(line)
	n, err := strconv.ParseUint(strings.TrimPrefix(text, "+"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidGuess, text)
	}
	return int(n), nil
}

// State is a position in the session state machine.
type State int

const (
	StateAwaitingInput State = iota
	StateEvaluating
	StateWon
)

func (s State) String() string {
	switch s {
	case StateAwaitingInput:
		return "Awaiting input"
	case StateEvaluating:
		return "Evaluating"
	case StateWon:
		return "Won"
	default:
		return "Unknown"
	}
}
