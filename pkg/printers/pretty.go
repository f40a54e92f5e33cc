package printers

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/roster/pkg/logic/parser"
	"tableflip.dev/roster/pkg/model"
)

// PrettyPrint renders lists and feedback for the terminal.
type PrettyPrint struct {
	Out      io.Writer
	Settings model.GuiSettings
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) style(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if !pp.Settings.Color {
		c.DisableColor()
	}
	return c
}

func (pp *PrettyPrint) table() *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	if pp.Settings.Width > 0 {
		tbl.MaxColWidth = uint(pp.Settings.Width / 2)
	}
	return tbl
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	_, _ = pp.style(color.Bold, color.Underline).Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := pp.style(color.Bold, color.Underline)
	c := pp.style(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

func (pp *PrettyPrint) none() {
	_, _ = pp.style(color.Faint, color.Italic).Fprint(pp.out(), " none\n\n")
}

func (pp *PrettyPrint) Feedback(msg string) {
	_, _ = fmt.Fprintln(pp.out(), msg)
}

func (pp *PrettyPrint) Error(err error) {
	_, _ = pp.style(color.FgRed).Fprintln(pp.out(), err.Error())
}

func (pp *PrettyPrint) Persons(persons ...model.Person) {
	pp.TitleWithCount("Persons", len(persons))
	if len(persons) == 0 {
		pp.none()
		return
	}
	y := pp.style(color.FgHiYellow, color.Faint)
	tag := pp.style(color.FgCyan)

	tbl := pp.table()
	for i, p := range persons {
		tags := make([]string, len(p.Tags))
		for j, t := range p.Tags {
			tags[j] = tag.Sprint("#" + t)
		}
		tbl.AddRow(y.Sprint(strconv.Itoa(i+1)+"."), p.Name, p.Phone, p.Email, p.Address, strings.Join(tags, " "))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

func (pp *PrettyPrint) Assignments(assignments ...model.Assignment) {
	pp.TitleWithCount("Assignments", len(assignments))
	if len(assignments) == 0 {
		pp.none()
		return
	}
	y := pp.style(color.FgHiYellow, color.Faint)
	done := pp.style(color.FgGreen)
	faint := pp.style(color.Faint)

	tbl := pp.table()
	for i, a := range assignments {
		status := "[ ]"
		if a.Done {
			status = done.Sprint("[x]")
		}
		due := ""
		if a.Due != nil {
			due = "due " + a.Due.String()
		}
		tbl.AddRow(y.Sprint(strconv.Itoa(i+1)+"."), status, a.Title, faint.Sprint(due), a.Assignee)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Help prints the command words and their usage.
func (pp *PrettyPrint) Help(words []parser.Word) {
	b := pp.style(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(b.Sprint("Command"), b.Sprint("Usage"))
	for _, w := range words {
		tbl.AddRow(w.Word, w.Usage)
	}
	pp.Title("Commands")
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}
