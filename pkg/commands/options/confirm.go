package options

import (
	"errors"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// ConfirmOptions
type ConfirmOptions struct {
	Yes bool
}

func AddConfirmArgs(cmd *cobra.Command, co *ConfirmOptions) {
	cmd.Flags().BoolVarP(&co.Yes, "yes", "y", false,
		"Answer yes to confirmation prompts.")
}

// Interactive reports whether stdin is a terminal.
func Interactive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// PromptConfirm asks for a y/n answer on the terminal. Interrupting the
// prompt answers no.
func PromptConfirm(label string) (string, error) {
	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }} [y/n]: ",
		Valid:   "{{ . | green }} [y/n]: ",
		Invalid: "{{ . | red }} [y/n]: ",
		Success: "{{ . | bold }}: ",
	}

	prompt := promptui.Prompt{
		Label:     label,
		Templates: templates,
	}

	result, err := prompt.Run()
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return "n", nil
	}
	return result, err
}
