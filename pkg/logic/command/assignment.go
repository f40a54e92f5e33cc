package command

import (
	"errors"
	"fmt"
	"time"

	"tableflip.dev/roster/pkg/model"
)

const (
	MessageAddAssignmentSuccess    = "New assignment added: %s"
	MessageDuplicateAssignment     = "This assignment already exists in the address book"
	MessageDeleteAssignmentSuccess = "Deleted Assignment: %s"
	MessageMarkSuccess             = "Marked assignment as done: %s"
	MessageUnmarkSuccess           = "Marked assignment as not done: %s"
	MessageListAssignments         = "Listed all assignments"
	MessageClearAssignmentsSuccess = "All assignments have been cleared!"
	MessageDueListed               = "%d assignments due within %s!"
)

// AddAssignment adds an assignment. A positive PersonIndex assigns it to the
// person at that one-based index of the filtered person list.
type AddAssignment struct {
	Assignment  model.Assignment
	PersonIndex int
}

func (c *AddAssignment) Execute(m model.Model) (Result, error) {
	a := c.Assignment
	if c.PersonIndex > 0 {
		p, err := personAt(m, c.PersonIndex)
		if err != nil {
			return Result{}, err
		}
		a.Assignee = p.Name
	}
	if m.HasAssignment(a) {
		return Result{}, Errorf(MessageDuplicateAssignment)
	}
	if err := m.AddAssignment(a); err != nil {
		return Result{}, Wrap(err, MessageDuplicateAssignment)
	}
	return NewResult(fmt.Sprintf(MessageAddAssignmentSuccess, a), WithView(ShowAssignmentList)), nil
}

// DeleteAssignment removes the assignment at a one-based index of the
// filtered assignment list.
type DeleteAssignment struct {
	destructive
	Index int
}

func (c *DeleteAssignment) Validate(m model.Model) error {
	_, err := assignmentAt(m, c.Index)
	return err
}

func (c *DeleteAssignment) Execute(m model.Model) (Result, error) {
	target, err := assignmentAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	if err := m.DeleteAssignment(target); err != nil {
		return Result{}, Wrap(err, MessageInvalidAssignmentIndex)
	}
	return NewResult(fmt.Sprintf(MessageDeleteAssignmentSuccess, target), WithView(ShowAssignmentList)), nil
}

// Mark sets the done flag of the assignment at a one-based index.
type Mark struct {
	Index int
	Done  bool
}

func (c *Mark) Execute(m model.Model) (Result, error) {
	target, err := assignmentAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	edited := target
	edited.Done = c.Done
	if err := m.SetAssignment(target, edited); err != nil {
		if errors.Is(err, model.ErrAssignmentNotFound) {
			return Result{}, Wrap(err, MessageInvalidAssignmentIndex)
		}
		return Result{}, Wrap(err, "%v", err)
	}
	msg := MessageMarkSuccess
	if !c.Done {
		msg = MessageUnmarkSuccess
	}
	return NewResult(fmt.Sprintf(msg, edited), WithView(ShowAssignmentList)), nil
}

// ListAssignments shows every assignment.
type ListAssignments struct{}

func (c *ListAssignments) Execute(m model.Model) (Result, error) {
	m.UpdateFilteredAssignments(model.PredicateShowAllAssignments)
	return NewResult(MessageListAssignments, WithView(ShowAssignmentList)), nil
}

// ClearAssignments removes every assignment and keeps the persons.
type ClearAssignments struct {
	destructive
}

func (c *ClearAssignments) Execute(m model.Model) (Result, error) {
	m.ClearAssignments()
	m.UpdateFilteredAssignments(model.PredicateShowAllAssignments)
	return NewResult(MessageClearAssignmentsSuccess, WithView(ShowAssignmentList)), nil
}

// Due lists unfinished assignments due on or before the end of a window of
// days starting today. Overdue assignments are included.
type Due struct {
	Days  int
	Label string
	// Today defaults to time.Now.
	Today func() time.Time
}

func (c *Due) Execute(m model.Model) (Result, error) {
	now := time.Now
	if c.Today != nil {
		now = c.Today
	}
	y, mo, d := now().Date()
	last := time.Date(y, mo, d+c.Days, 0, 0, 0, 0, time.UTC)

	m.UpdateFilteredAssignments(func(a model.Assignment) bool {
		return !a.Done && a.Due != nil && !a.Due.Time.After(last)
	})
	return NewResult(fmt.Sprintf(MessageDueListed, len(m.FilteredAssignments()), c.Label), WithView(ShowAssignmentList)), nil
}
