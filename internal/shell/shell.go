// Package shell runs the interactive numbered menus of the store.
//
// The shell reads one answer per line. End of input or a cancelled context
// ends the session cleanly from any menu depth; every other error is printed
// and the current menu is shown again.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/alerts"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/emoji"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/output"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/table"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/shop"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/errors"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/logging"
)

// Shell is one interactive session over a shop.
type Shell struct {
	shop   *shop.Shop
	in     io.Reader
	out    io.Writer
	alerts alerts.Writer
	logger *zerolog.Logger

	lines   chan string
	done    chan struct{}
	readErr error
}

// Option configures a Shell.
type Option func(*Shell)

// WithLogger sets the session logger.
func WithLogger(l *zerolog.Logger) Option {
	return func(sh *Shell) {
		if l != nil {
			sh.logger = l
		}
	}
}

// WithAlerts replaces the writer used for status notices.
func WithAlerts(w alerts.Writer) Option {
	return func(sh *Shell) {
		if w != nil {
			sh.alerts = w
		}
	}
}

// New creates a shell reading answers from in and printing menus to out.
func New(s *shop.Shop, in io.Reader, out io.Writer, opts ...Option) *Shell {
	sh := &Shell{
		shop:   s,
		in:     in,
		out:    out,
		alerts: alerts.NewFormatWriter(out, output.FormatTable),
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(sh)
	}
	return sh
}

// Run shows the main menu until the user exits, input ends or ctx is cancelled.
func (sh *Shell) Run(ctx context.Context) error {
	ctx = logging.WithLogger(ctx, sh.logger)
	sh.startReader()
	defer close(sh.done)

	err := sh.mainMenu(ctx)
	if err == nil || isEnd(err) {
		fmt.Fprintln(sh.out, "Exiting...")
		return nil
	}
	return err
}

// startReader feeds input lines to a channel so a pending read can be
// abandoned when ctx is cancelled.
func (sh *Shell) startReader() {
	sh.lines = make(chan string)
	sh.done = make(chan struct{})
	go func() {
		defer close(sh.lines)
		scanner := bufio.NewScanner(sh.in)
		for scanner.Scan() {
			select {
			case sh.lines <- scanner.Text():
			case <-sh.done:
				return
			}
		}
		sh.readErr = scanner.Err()
	}()
}

// readLine prints prompt and returns the next trimmed answer.
func (sh *Shell) readLine(ctx context.Context, prompt string) (string, error) {
	fmt.Fprintf(sh.out, "%s %s", emoji.Prompt, prompt)
	select {
	case <-ctx.Done():
		fmt.Fprintln(sh.out)
		return "", ctx.Err()
	case line, ok := <-sh.lines:
		if !ok {
			fmt.Fprintln(sh.out)
			if sh.readErr != nil {
				return "", errors.WrapIO("read", "stdin", sh.readErr)
			}
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	}
}

// readRequired rejects an empty answer.
func (sh *Shell) readRequired(ctx context.Context, prompt, field string) (string, error) {
	answer, err := sh.readLine(ctx, prompt)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return "", errors.NewValidationError(field, answer, "is required")
	}
	return answer, nil
}

func (sh *Shell) readInt(ctx context.Context, prompt, field string) (int, error) {
	answer, err := sh.readRequired(ctx, prompt, field)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		return 0, errors.NewValidationError(field, answer, "must be a whole number")
	}
	return n, nil
}

// readOptionalInt returns nil for a blank answer.
func (sh *Shell) readOptionalInt(ctx context.Context, prompt, field string) (*int, error) {
	answer, err := sh.readLine(ctx, prompt)
	if err != nil || answer == "" {
		return nil, err
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		return nil, errors.NewValidationError(field, answer, "must be a whole number")
	}
	return &n, nil
}

// readOptional returns nil for a blank answer.
func (sh *Shell) readOptional(ctx context.Context, prompt string) (*string, error) {
	answer, err := sh.readLine(ctx, prompt)
	if err != nil || answer == "" {
		return nil, err
	}
	return &answer, nil
}

func (sh *Shell) notify(a *alerts.Alert) {
	if err := sh.alerts.WriteAlert(a); err != nil {
		sh.logger.Debug().Err(err).Msg("Failed to write alert")
	}
}

func (sh *Shell) success(format string, args ...any) {
	sh.notify(alerts.Successf(format, args...))
}

func (sh *Shell) info(message string) {
	sh.notify(alerts.NewInfo(message))
}

func (sh *Shell) render(data table.Data) {
	if err := output.NewFormatter(output.FormatTable).Format(sh.out, data); err != nil {
		sh.notify(alerts.FromError(err))
	}
}

// isEnd reports whether err ends the whole session.
func isEnd(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
