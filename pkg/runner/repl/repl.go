// Package repl provides the runner logic for the interactive command prompt.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"tableflip.dev/roster/pkg/logic"
	"tableflip.dev/roster/pkg/store"
)

const DefaultPrompt = "roster> "

// ConfirmFunc asks the user to answer a confirmation prompt.
type ConfirmFunc func(prompt string) (string, error)

// REPL reads command lines until exit or end of input.
type REPL struct {
	Logic logic.Logic
	In    io.Reader
	Out   io.Writer

	// Confirm answers confirmation prompts. When nil the next input line is
	// used as the answer.
	Confirm ConfirmFunc

	// Events, when set, reports changes made to the data files by other
	// processes. Reload is called once per drained batch.
	Events <-chan store.Event
	Reload func() error

	Prompt string
	Logger *zap.Logger
}

// Do runs the loop. It returns nil on exit, end of input or cancellation.
func (r *REPL) Do(ctx context.Context) error {
	if r.Logic == nil {
		return errors.New("can not run, no logic")
	}
	in := r.In
	if in == nil {
		in = os.Stdin
	}
	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	prompt := r.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}

	lines := bufio.NewScanner(in)
	next := func() (string, bool) {
		if !lines.Scan() {
			return "", false
		}
		return lines.Text(), true
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		r.drain(out, logger)

		_, _ = fmt.Fprint(out, prompt)
		line, ok := next()
		if !ok {
			_, _ = fmt.Fprintln(out, "")
			return lines.Err()
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		result, err := r.Logic.Execute(line, false)
		if err != nil {
			RenderError(out, r.Logic, err)
			continue
		}
		Render(out, r.Logic, result)

		if result.Confirmation {
			answer, ok, err := r.answer(out, next)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			result, err = r.Logic.Execute(answer, true)
			if err != nil {
				RenderError(out, r.Logic, err)
				continue
			}
			Render(out, r.Logic, result)
		}

		if result.Exit {
			return nil
		}
	}
}

func (r *REPL) answer(out io.Writer, next func() (string, bool)) (string, bool, error) {
	if r.Confirm != nil {
		answer, err := r.Confirm("Proceed")
		if err != nil {
			return "", false, err
		}
		return answer, true, nil
	}
	_, _ = fmt.Fprint(out, "(y/n) ")
	answer, ok := next()
	return answer, ok, nil
}

// drain consumes queued change notifications without blocking.
func (r *REPL) drain(out io.Writer, logger *zap.Logger) {
	if r.Events == nil {
		return
	}
	changed := false
	for {
		select {
		case ev, ok := <-r.Events:
			if !ok {
				r.Events = nil
				r.reload(out, logger, changed)
				return
			}
			logger.Debug("data changed on disk", zap.Stringer("type", ev.Type), zap.String("path", ev.Path))
			changed = true
		default:
			r.reload(out, logger, changed)
			return
		}
	}
}

func (r *REPL) reload(out io.Writer, logger *zap.Logger, changed bool) {
	if !changed || r.Reload == nil {
		return
	}
	if err := r.Reload(); err != nil {
		logger.Warn("reload", zap.Error(err))
		RenderError(out, r.Logic, err)
		return
	}
	_, _ = fmt.Fprintln(out, "Reloaded data changed outside this session.")
}
