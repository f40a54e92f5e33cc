package command

import (
	"fmt"
)

// ListPanelView selects which list the presentation layer shows after a
// command.
type ListPanelView int

const (
	// NoEffect leaves the current list on screen.
	NoEffect ListPanelView = iota
	ShowPersonList
	ShowAssignmentList
)

func (v ListPanelView) String() string {
	switch v {
	case NoEffect:
		return "NO_EFFECT"
	case ShowPersonList:
		return "PERSON_LIST"
	case ShowAssignmentList:
		return "ASSIGNMENT_LIST"
	default:
		return fmt.Sprintf("ListPanelView(%d)", int(v))
	}
}

// Result describes one round of interaction. Results are comparable; two
// results are equal when every field matches.
type Result struct {
	Feedback string
	// Confirmation asks the user to confirm before the command runs.
	Confirmation bool
	ShowHelp     bool
	Exit         bool
	View         ListPanelView
}

// ResultOption sets an optional field on a Result.
type ResultOption func(*Result)

func WithConfirmation() ResultOption {
	return func(r *Result) { r.Confirmation = true }
}

func WithHelp() ResultOption {
	return func(r *Result) { r.ShowHelp = true }
}

func WithExit() ResultOption {
	return func(r *Result) { r.Exit = true }
}

func WithView(v ListPanelView) ResultOption {
	return func(r *Result) { r.View = v }
}

// NewResult builds a Result. Feedback must not be empty.
func NewResult(feedback string, opts ...ResultOption) Result {
	if feedback == "" {
		panic("command: result feedback must not be empty")
	}
	r := Result{Feedback: feedback}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r Result) String() string {
	return fmt.Sprintf("command.Result{feedback=%q, confirmation=%t, showHelp=%t, exit=%t, view=%s}",
		r.Feedback, r.Confirmation, r.ShowHelp, r.Exit, r.View)
}
