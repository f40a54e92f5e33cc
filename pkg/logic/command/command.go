// Package command holds the executable user actions and the result they
// report back to the presentation layer.
package command

import (
	"fmt"

	"tableflip.dev/roster/pkg/model"
)

const (
	MessageInvalidPersonIndex     = "The person index provided is invalid"
	MessageInvalidAssignmentIndex = "The assignment index provided is invalid"
	MessagePersonsListed          = "%d persons listed!"
	MessageAssignmentsListed      = "%d assignments listed!"
)

// Command is a parsed user action.
type Command interface {
	Execute(m model.Model) (Result, error)
}

// Confirmable is implemented by commands that can ask the user to confirm
// before they run.
type Confirmable interface {
	RequiresConfirmation() bool
}

// Validator is implemented by commands that can check their arguments
// against the model without changing it.
type Validator interface {
	Validate(m model.Model) error
}

// Error is a domain rule violation raised while a command executes. The
// message is shown to the user as is.
type Error struct {
	Message string
	Err     error
}

func Errorf(format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// Wrap keeps cause available to errors.Is and errors.As.
func Wrap(cause error, format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Err: cause}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// destructive is embedded by commands that cannot be undone.
type destructive struct{}

func (destructive) RequiresConfirmation() bool { return true }

func personAt(m model.Model, index int) (model.Person, error) {
	list := m.FilteredPersons()
	if index < 1 || index > len(list) {
		return model.Person{}, Errorf(MessageInvalidPersonIndex)
	}
	return list[index-1], nil
}

func assignmentAt(m model.Model, index int) (model.Assignment, error) {
	list := m.FilteredAssignments()
	if index < 1 || index > len(list) {
		return model.Assignment{}, Errorf(MessageInvalidAssignmentIndex)
	}
	return list[index-1], nil
}
