package logic

import (
	"strings"

	"tableflip.dev/roster/pkg/logic/command"
)

// NeedsConfirmation reports whether cmd must be confirmed before it runs.
func NeedsConfirmation(cmd command.Command) bool {
	c, ok := cmd.(command.Confirmable)
	return ok && c.RequiresConfirmation()
}

// IsAccepted reports whether answer confirms the pending command. Only "y",
// ignoring case, is a yes.
func IsAccepted(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}

type state int

const (
	stateIdle state = iota
	stateAwaiting
)

// session remembers the command awaiting a confirmation answer. pending is
// only meaningful in stateAwaiting.
type session struct {
	state   state
	pending command.Command
}

func (s *session) await(cmd command.Command) {
	s.state = stateAwaiting
	s.pending = cmd
}

// take returns the pending command and returns to idle.
func (s *session) take() (command.Command, bool) {
	if s.state != stateAwaiting {
		return nil, false
	}
	cmd := s.pending
	s.reset()
	return cmd, true
}

func (s *session) reset() {
	s.state = stateIdle
	s.pending = nil
}
