// Package parser turns command lines into commands.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"tableflip.dev/roster/pkg/logic/command"
	"tableflip.dev/roster/pkg/model"
	"tableflip.dev/roster/pkg/timeutil"
)

const (
	MessageInvalidFormat  = "Invalid command format! \n%s"
	MessageUnknownCommand = "Unknown command"
	MessageInvalidIndex   = "Index is not a non-zero unsigned integer."
)

// ParseError reports command text that could not be parsed.
type ParseError struct {
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func invalidFormat(usage string) *ParseError {
	return &ParseError{Message: fmt.Sprintf(MessageInvalidFormat, usage)}
}

func invalidField(err error) *ParseError {
	return &ParseError{Message: err.Error(), Err: err}
}

type parseFunc func(args string) (command.Command, error)

// Word describes a command word for help output.
type Word struct {
	Word  string
	Usage string
}

var usages = map[string]string{
	"add":              "add n/NAME p/PHONE e/EMAIL a/ADDRESS [t/TAG]...",
	"edit":             "edit INDEX [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [t/TAG]...",
	"delete":           "delete INDEX",
	"clear":            "clear",
	"find":             "find KEYWORD [MORE_KEYWORDS]...",
	"list":             "list",
	"addassignment":    "addassignment n/TITLE [d/YYYY-MM-DD] [i/PERSON_INDEX]",
	"deleteassignment": "deleteassignment INDEX",
	"mark":             "mark INDEX",
	"unmark":           "unmark INDEX",
	"listassignments":  "listassignments",
	"due":              "due [WINDOW, e.g. 3d or 1w2d]",
	"clearassignments": "clearassignments",
	"help":             "help",
	"exit":             "exit",
}

var parsers = []struct {
	word  string
	parse parseFunc
}{
	{"add", parseAdd},
	{"edit", parseEdit},
	{"delete", parseDelete},
	{"clear", noArgs(func() command.Command { return &command.Clear{} })},
	{"find", parseFind},
	{"list", noArgs(func() command.Command { return &command.List{} })},
	{"addassignment", parseAddAssignment},
	{"deleteassignment", parseDeleteAssignment},
	{"mark", parseMark(true)},
	{"unmark", parseMark(false)},
	{"listassignments", noArgs(func() command.Command { return &command.ListAssignments{} })},
	{"due", parseDue},
	{"clearassignments", noArgs(func() command.Command { return &command.ClearAssignments{} })},
	{"help", noArgs(func() command.Command { return &command.Help{} })},
	{"exit", noArgs(func() command.Command { return &command.Exit{} })},
}

// Words lists the known command words in help order.
func Words() []Word {
	out := make([]Word, 0, len(parsers))
	for _, p := range parsers {
		out = append(out, Word{Word: p.word, Usage: usages[p.word]})
	}
	return out
}

// Parse parses a full command line.
func Parse(text string) (command.Command, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, invalidFormat(usageOf("help"))
	}
	word, args := text, ""
	if i := strings.IndexAny(text, " \t"); i >= 0 {
		word, args = text[:i], strings.TrimSpace(text[i+1:])
	}
	for _, p := range parsers {
		if p.word == word {
			return p.parse(args)
		}
	}
	return nil, &ParseError{Message: MessageUnknownCommand}
}

func usageOf(word string) string {
	return usages[word]
}

// noArgs ignores trailing arguments.
func noArgs(build func() command.Command) parseFunc {
	return func(string) (command.Command, error) {
		return build(), nil
	}
}

// ParseIndex parses a one-based index.
func ParseIndex(v string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || i <= 0 {
		return 0, &ParseError{Message: MessageInvalidIndex, Err: err}
	}
	return i, nil
}

func parseAdd(args string) (command.Command, error) {
	m := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTag)
	if m.Preamble != "" || !m.Has(PrefixName) || !m.Has(PrefixPhone) || !m.Has(PrefixEmail) || !m.Has(PrefixAddress) {
		return nil, invalidFormat(usageOf("add"))
	}
	name, _ := m.Value(PrefixName)
	phone, _ := m.Value(PrefixPhone)
	email, _ := m.Value(PrefixEmail)
	address, _ := m.Value(PrefixAddress)
	p, err := model.NewPerson(name, phone, email, address, m.All(PrefixTag)...)
	if err != nil {
		return nil, invalidField(err)
	}
	return &command.Add{Person: p}, nil
}

func parseEdit(args string) (command.Command, error) {
	m := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTag)
	index, err := ParseIndex(m.Preamble)
	if err != nil {
		return nil, invalidFormat(usageOf("edit"))
	}
	f := command.EditFields{}
	fields := []struct {
		prefix string
		parse  func(string) (string, error)
		dst    **string
	}{
		{PrefixName, model.ParseName, &f.Name},
		{PrefixPhone, model.ParsePhone, &f.Phone},
		{PrefixEmail, model.ParseEmail, &f.Email},
		{PrefixAddress, model.ParseAddress, &f.Address},
	}
	for _, fd := range fields {
		raw, ok := m.Value(fd.prefix)
		if !ok {
			continue
		}
		v, err := fd.parse(raw)
		if err != nil {
			return nil, invalidField(err)
		}
		*fd.dst = &v
	}
	if m.Has(PrefixTag) {
		// A single empty t/ clears the tags.
		raw := m.All(PrefixTag)
		tags := []string{}
		if !(len(raw) == 1 && raw[0] == "") {
			if tags, err = model.ParseTags(raw...); err != nil {
				return nil, invalidField(err)
			}
		}
		f.Tags = &tags
	}
	return &command.Edit{Index: index, Fields: f}, nil
}

func parseDelete(args string) (command.Command, error) {
	index, err := ParseIndex(args)
	if err != nil {
		return nil, invalidFormat(usageOf("delete"))
	}
	return &command.Delete{Index: index}, nil
}

func parseFind(args string) (command.Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, invalidFormat(usageOf("find"))
	}
	return &command.Find{Keywords: keywords}, nil
}

func parseAddAssignment(args string) (command.Command, error) {
	m := Tokenize(args, PrefixName, PrefixDue, PrefixAssignee)
	if m.Preamble != "" || !m.Has(PrefixName) {
		return nil, invalidFormat(usageOf("addassignment"))
	}
	title, _ := m.Value(PrefixName)
	a, err := model.NewAssignment(title)
	if err != nil {
		return nil, invalidField(err)
	}
	if raw, ok := m.Value(PrefixDue); ok {
		due, err := model.ParseDate(raw)
		if err != nil {
			return nil, invalidField(err)
		}
		a.Due = &due
	}
	c := &command.AddAssignment{Assignment: a}
	if raw, ok := m.Value(PrefixAssignee); ok {
		if c.PersonIndex, err = ParseIndex(raw); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func parseDeleteAssignment(args string) (command.Command, error) {
	index, err := ParseIndex(args)
	if err != nil {
		return nil, invalidFormat(usageOf("deleteassignment"))
	}
	return &command.DeleteAssignment{Index: index}, nil
}

func parseMark(done bool) parseFunc {
	word := "mark"
	if !done {
		word = "unmark"
	}
	return func(args string) (command.Command, error) {
		index, err := ParseIndex(args)
		if err != nil {
			return nil, invalidFormat(usageOf(word))
		}
		return &command.Mark{Index: index, Done: done}, nil
	}
}

func parseDue(args string) (command.Command, error) {
	days, label, err := timeutil.ParseWindow(args)
	if err != nil {
		return nil, &ParseError{Message: fmt.Sprintf(MessageInvalidFormat, usageOf("due")), Err: err}
	}
	return &command.Due{Days: days, Label: label}, nil
}
