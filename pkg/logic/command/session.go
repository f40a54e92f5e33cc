package command

import (
	"tableflip.dev/roster/pkg/model"
)

const (
	MessageShowingHelp = "Opened help window."
	MessageExiting     = "Exiting Address Book as requested ..."
)

type Help struct{}

func (c *Help) Execute(model.Model) (Result, error) {
	return NewResult(MessageShowingHelp, WithHelp()), nil
}

type Exit struct{}

func (c *Exit) Execute(model.Model) (Result, error) {
	return NewResult(MessageExiting, WithExit()), nil
}
