package repl

import (
	"io"

	"tableflip.dev/roster/pkg/logic"
	"tableflip.dev/roster/pkg/logic/command"
	"tableflip.dev/roster/pkg/logic/parser"
	"tableflip.dev/roster/pkg/printers"
)

// Render prints a result the way the interactive prompt shows it: feedback,
// then help or the selected list.
func Render(out io.Writer, l logic.Logic, r command.Result) {
	pp := printers.PrettyPrint{Out: out, Settings: l.GuiSettings()}
	pp.Feedback(r.Feedback)
	if r.ShowHelp {
		pp.NewLine()
		pp.Help(parser.Words())
	}
	switch r.View {
	case command.ShowPersonList:
		pp.NewLine()
		pp.Persons(l.FilteredPersons()...)
	case command.ShowAssignmentList:
		pp.NewLine()
		pp.Assignments(l.FilteredAssignments()...)
	}
}

// RenderError prints err in the error style.
func RenderError(out io.Writer, l logic.Logic, err error) {
	pp := printers.PrettyPrint{Out: out, Settings: l.GuiSettings()}
	pp.Error(err)
}
