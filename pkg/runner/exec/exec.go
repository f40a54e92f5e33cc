// Package exec provides the runner logic for running a single command line.
package exec

import (
	"context"
	"errors"
	"io"
	"os"

	"tableflip.dev/roster/pkg/logic"
	"tableflip.dev/roster/pkg/runner/repl"
)

// Exec runs one command line and answers its confirmation, if any.
type Exec struct {
	Logic logic.Logic
	Text  string
	Out   io.Writer

	// Yes answers every confirmation prompt with yes.
	Yes bool
	// Confirm is asked when Yes is not set. When nil, commands needing
	// confirmation are cancelled.
	Confirm repl.ConfirmFunc
}

// Do executes the configured command line.
func (n *Exec) Do(ctx context.Context) error {
	if n.Logic == nil {
		return errors.New("can not exec, no logic")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	out := n.Out
	if out == nil {
		out = os.Stdout
	}

	result, err := n.Logic.Execute(n.Text, false)
	if err != nil {
		return err
	}
	if !result.Confirmation {
		repl.Render(out, n.Logic, result)
		return nil
	}

	answer := "n"
	switch {
	case n.Yes:
		answer = "y"
	case n.Confirm != nil:
		repl.Render(out, n.Logic, result)
		if answer, err = n.Confirm("Proceed"); err != nil {
			return err
		}
	}

	result, err = n.Logic.Execute(answer, true)
	if err != nil {
		return err
	}
	repl.Render(out, n.Logic, result)
	return nil
}
