package model

import (
	"errors"
	"fmt"
	"strings"
)

const MessageTitleConstraints = "Assignment titles can take any values, and it should not be blank"

// Assignment is a piece of work tracked by the address book. Assignee holds
// the name of the person it is assigned to, or is empty.
type Assignment struct {
	Title    string `json:"title"`
	Due      *Date  `json:"due,omitempty"`
	Assignee string `json:"assignee,omitempty"`
	Done     bool   `json:"done,omitempty"`
}

func NewAssignment(title string) (Assignment, error) {
	t, err := ParseTitle(title)
	if err != nil {
		return Assignment{}, err
	}
	return Assignment{Title: t}, nil
}

func ParseTitle(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", errors.New(MessageTitleConstraints)
	}
	return v, nil
}

// SameAs reports whether both assignments describe the same work: the same
// title, ignoring case, for the same assignee.
func (a Assignment) SameAs(other Assignment) bool {
	return strings.EqualFold(a.Title, other.Title) &&
		strings.EqualFold(a.Assignee, other.Assignee)
}

func (a Assignment) clone() Assignment {
	if a.Due != nil {
		d := *a.Due
		a.Due = &d
	}
	return a
}

func (a Assignment) String() string {
	s := a.Title
	if a.Due != nil {
		s += fmt.Sprintf("; Due: %s", a.Due)
	}
	if a.Assignee != "" {
		s += fmt.Sprintf("; Assignee: %s", a.Assignee)
	}
	if a.Done {
		s += "; Done"
	}
	return s
}
