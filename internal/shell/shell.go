// Package shell implements the interactive menu loop over a collection.Store.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/fleet/internal/collection"
)

// Menu choices.
const (
	choiceAdd = iota + 1
	choiceRemove
	choiceList
	choiceCompare
	choiceExit
)

const (
	msgEmpty      = "Collection is empty."
	msgNotANumber = "enter a whole number"
)

// maxLineLength bounds a single input line in bytes. Longer lines are
// discarded up to their newline and the prompt is shown again.
const maxLineLength = 4096

var (
	// errNotANumber is reported when a numeric prompt receives other text.
	errNotANumber = errors.New(msgNotANumber)

	errLineTooLong = fmt.Errorf("input line longer than %d bytes", maxLineLength)
)

// palette holds the colors used for each kind of output line.
type palette struct {
	success *color.Color
	failure *color.Color
	warning *color.Color
	header  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		success: color.New(color.FgGreen, color.Bold),
		failure: color.New(color.FgRed, color.Bold),
		warning: color.New(color.FgYellow),
		header:  color.New(color.FgBlue, color.Bold),
	}
	if !enabled {
		for _, c := range []*color.Color{p.success, p.failure, p.warning, p.header} {
			c.DisableColor()
		}
	}
	return p
}

// Shell reads menu choices from its input and dispatches them to a Store.
type Shell struct {
	store  collection.Store
	in     *bufio.Reader
	out    io.Writer
	logger *zap.Logger
	colors palette
}

// Option configures a Shell.
type Option func(*Shell)

// WithColor enables or disables colored output. Color is on by default and
// subject to terminal detection.
func WithColor(enabled bool) Option {
	return func(s *Shell) { s.colors = newPalette(enabled) }
}

// WithLogger sets the logger for shell lifecycle events.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Shell) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New returns a Shell that reads from in and writes to out.
func New(store collection.Store, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		store:  store,
		in:     bufio.NewReader(in),
		out:    out,
		logger: zap.NewNop(),
		colors: newPalette(true),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run shows the menu until the exit choice or end of input. Validation and
// index errors are printed and the menu is shown again. Run returns an error
// only when reading input fails.
func (s *Shell) Run() error {
	s.logger.Debug("shell started")
	defer s.logger.Debug("shell stopped")

	for {
		s.printMenu()
		line, err := s.readLine("Choose an action: ")
		if err != nil {
			return s.stop(err)
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			s.fail(fmt.Errorf("%s from %d to %d", msgNotANumber, choiceAdd, choiceExit))
			continue
		}

		switch choice {
		case choiceAdd:
			err = s.add()
		case choiceRemove:
			err = s.remove()
		case choiceList:
			s.list()
		case choiceCompare:
			err = s.compare()
		case choiceExit:
			fmt.Fprintln(s.out, "Shutting down...")
			return nil
		default:
			err = fmt.Errorf("unknown choice %d, enter a number from %d to %d", choice, choiceAdd, choiceExit)
		}

		if errors.Is(err, io.EOF) {
			return s.stop(err)
		}
		if err != nil {
			s.fail(err)
		}
		fmt.Fprintln(s.out)
	}
}

func (s *Shell) printMenu() {
	s.colors.header.Fprintln(s.out, "=== Choose an action ===")
	fmt.Fprintf(s.out, "%d. Add a transport\n", choiceAdd)
	fmt.Fprintf(s.out, "%d. Remove a transport by index\n", choiceRemove)
	fmt.Fprintf(s.out, "%d. List all transports\n", choiceList)
	fmt.Fprintf(s.out, "%d. Compare two transports\n", choiceCompare)
	fmt.Fprintf(s.out, "%d. Exit\n", choiceExit)
	s.colors.header.Fprintln(s.out, "========================")
}

// stop ends the loop; end of input is a normal exit.
func (s *Shell) stop(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "Shutting down...")
		return nil
	}
	s.logger.Error("read input", zap.Error(err))
	return fmt.Errorf("read input: %w", err)
}

// readLine prints prompt and returns the next input line. It returns io.EOF
// at end of input. An overlong line is reported and the prompt repeated.
func (s *Shell) readLine(prompt string) (string, error) {
	for {
		fmt.Fprint(s.out, prompt)
		line, err := s.nextLine()
		if errors.Is(err, errLineTooLong) {
			s.fail(err)
			continue
		}
		return line, err
	}
}

// nextLine reads one line without its terminator. A line over maxLineLength
// is consumed in full and reported as errLineTooLong.
func (s *Shell) nextLine() (string, error) {
	var line []byte
	tooLong := false
	for {
		chunk, isPrefix, err := s.in.ReadLine()
		if err != nil {
			if len(line) == 0 && !tooLong {
				return "", err
			}
			break
		}
		if !tooLong {
			if len(line)+len(chunk) > maxLineLength {
				tooLong, line = true, nil
			} else {
				line = append(line, chunk...)
			}
		}
		if !isPrefix {
			break
		}
	}
	if tooLong {
		return "", errLineTooLong
	}
	return strings.TrimRight(string(line), "\r"), nil
}

// readInt prompts until the input parses as an integer.
func (s *Shell) readInt(prompt string) (int, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return n, nil
		}
		s.fail(errNotANumber)
	}
}

func (s *Shell) fail(err error) {
	s.colors.failure.Fprintf(s.out, "Error: %v\n", err)
}

func (s *Shell) warn(format string, args ...any) {
	s.colors.warning.Fprintf(s.out, format+"\n", args...)
}

func (s *Shell) succeed(format string, args ...any) {
	s.colors.success.Fprintf(s.out, format+"\n", args...)
}
