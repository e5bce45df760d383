package guess

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/guess/internal/platform/random"
	"github.com/louisbranch/guess/internal/services/guess/i18n"
)

const tracerName = "github.com/louisbranch/guess/internal/services/guess"

// ErrSessionOver indicates a guess was submitted after the secret was found.
var ErrSessionOver = errors.New("session already won")

// SessionConfig wires a Session to its collaborators.
type SessionConfig struct {
	// Range bounds the secret. The zero value means DefaultRange.
	Range Range
	// Source draws the secret. Nil means a crypto-seeded source.
	Source random.Source
	// In supplies one guess per line. Required.
	In io.Reader
	// Out receives every player-facing line. Required.
	Out io.Writer
	// Localizer renders message keys. Nil means the default locale.
	Localizer i18n.Localizer
	// Tracer records the session span. Nil means the global provider.
	Tracer trace.Tracer
}

// Session is one game: a secret drawn once and the guesses made against it.
type Session struct {
	bounds   Range
	secret   int
	in       *bufio.Reader
	out      io.Writer
	loc      i18n.Localizer
	tracer   trace.Tracer
	state    State
	attempts int
	// pending carries the result of an in-flight read so a cancelled wait
	// does not start a second concurrent read on in.
	pending chan readResult
}

type readResult struct {
	line string
	err  error
}

// NewSession validates cfg and draws the secret.
func NewSession(cfg SessionConfig) (*Session, error) {
	if cfg.In == nil {
		return nil, errors.New("input is required")
	}
	if cfg.Out == nil {
		return nil, errors.New("output is required")
	}

	bounds := cfg.Range
	if bounds == (Range{}) {
		bounds = DefaultRange()
	}
	if err := bounds.Validate(); err != nil {
		return nil, err
	}

	source := cfg.Source
	if source == nil {
		seeded, err := random.NewSource(0)
		if err != nil {
			return nil, fmt.Errorf("random source: %w", err)
		}
		source = seeded
	}
	loc := cfg.Localizer
	if loc == nil {
		loc = i18n.Printer(i18n.Default())
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}

	return &Session{
		bounds: bounds,
		secret: source.IntRange(bounds.Start, bounds.End),
		in:     bufio.NewReader(cfg.In),
		out:    cfg.Out,
		loc:    loc,
		tracer: tracer,
		state:  StateAwaitingInput,
	}, nil
}

// Secret returns the number being guessed.
func (s *Session) Secret() int {
	return s.secret
}

// State returns the current state machine position.
func (s *Session) State() State {
	return s.state
}

// Attempts returns how many lines parsed as guesses. Invalid lines do not
// count.
func (s *Session) Attempts() int {
	return s.attempts
}

// Run plays the session to completion: it prints the banner and the secret,
// then prompts and reads guesses until one matches.
//
// Run returns nil after the win message. It returns an error wrapping
// ErrInputClosed when the input ends or fails first, and ctx.Err() when ctx
// is cancelled, including while a read is blocked.
func (s *Session) Run(ctx context.Context) (err error) {
	ctx, span := s.tracer.Start(ctx, "guess.session", trace.WithAttributes(
		attribute.Int("guess.range.start", s.bounds.Start),
		attribute.Int("guess.range.end", s.bounds.End),
		attribute.Int("guess.secret", s.secret),
	))
	defer func() {
		span.SetAttributes(attribute.Int("guess.attempts", s.attempts))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if err := s.println(i18n.BannerKey); err != nil {
		return err
	}
	if err := s.println(i18n.SecretKey, strconv.Itoa(s.secret)); err != nil {
		return err
	}

	for s.state != StateWon {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.println(i18n.PromptKey, strconv.Itoa(s.bounds.Start), strconv.Itoa(s.bounds.End)); err != nil {
			return err
		}
		line, err := s.readLine(ctx)
		if err != nil {
			return err
		}
		outcome, err := s.Submit(line)
		switch {
		case errors.Is(err, ErrInvalidGuess):
			span.AddEvent("invalid_input")
		case err != nil:
			return err
		default:
			span.AddEvent("guess", trace.WithAttributes(
				attribute.Int("guess.attempt", s.attempts),
				attribute.String("guess.outcome", outcome.String()),
			))
		}
	}
	return nil
}

// Submit processes one input line and prints its feedback. Lines that do not
// parse print the invalid-input message and return an error wrapping
// ErrInvalidGuess; the session stays awaiting input. A parsed guess is echoed
// and compared, and a correct guess moves the session to StateWon.
func (s *Session) Submit(line string) (Outcome, error) {
	if s.state == StateWon {
		return OutcomeUnspecified, ErrSessionOver
	}

	guess, parseErr := ParseGuess(line)
	if parseErr != nil {
		if err := s.println(i18n.InvalidInputKey); err != nil {
			return OutcomeUnspecified, err
		}
		return OutcomeUnspecified, parseErr
	}

	s.state = StateEvaluating
	s.attempts++
	if err := s.println(i18n.EchoKey, strconv.Itoa(guess)); err != nil {
		return OutcomeUnspecified, err
	}

	outcome := Compare(guess, s.secret)
	var key string
	switch outcome {
	case OutcomeTooSmall:
		key = i18n.TooSmallKey
		s.state = StateAwaitingInput
	case OutcomeTooBig:
		key = i18n.TooBigKey
		s.state = StateAwaitingInput
	default:
		key = i18n.WinKey
		s.state = StateWon
	}
	if err := s.println(key); err != nil {
		return outcome, err
	}
	return outcome, nil
}

// readLine returns the next line without its terminator. A final line with no
// trailing newline is returned before end of input is reported. The read runs
// in its own goroutine so cancelling ctx unblocks the wait; the goroutine
// itself stays parked on in until a line or end of input arrives.
func (s *Session) readLine(ctx context.Context) (string, error) {
	if s.pending == nil {
		pending := make(chan readResult, 1)
		s.pending = pending
		go func() {
			line, err := s.in.ReadString('\n')
			pending <- readResult{line: line, err: err}
		}()
	}

	var result readResult
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case result = <-s.pending:
		s.pending = nil
	}

	if result.err != nil {
		if errors.Is(result.err, io.EOF) && result.line != "" {
			return result.line, nil
		}
		if errors.Is(result.err, io.EOF) {
			return "", fmt.Errorf("read guess: %w", ErrInputClosed)
		}
		return "", fmt.Errorf("read guess: %w: %w", ErrInputClosed, result.err)
	}
	return result.line, nil
}

// println renders key and writes it as one line. Numbers are passed
// pre-formatted so the printer does not apply locale digit grouping.
func (s *Session) println(key string, args ...any) error {
	if _, err := fmt.Fprintln(s.out, s.loc.Sprintf(key, args...)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
