// Package mcp exposes the roster command pipeline over the Model Context
// Protocol.
package mcp

import (
	"context"
	"errors"
	"sync"

	"tableflip.dev/roster/pkg/logic"
	"tableflip.dev/roster/pkg/logic/command"
	"tableflip.dev/roster/pkg/model"
)

// Service serializes access to a Logic for concurrent MCP requests.
type Service struct {
	mu    sync.Mutex
	logic logic.Logic
}

// NewService builds a Service around l.
func NewService(l logic.Logic) *Service {
	return &Service{logic: l}
}

// ExecResult is the outcome of one command line.
type ExecResult struct {
	Feedback    string             `json:"feedback"`
	Confirmed   *bool              `json:"confirmed,omitempty"`
	Exit        bool               `json:"exit,omitempty"`
	View        string             `json:"view"`
	Persons     []model.Person     `json:"persons,omitempty"`
	Assignments []model.Assignment `json:"assignments,omitempty"`
}

// Execute runs text. A command that needs confirmation is run when confirm
// is set and cancelled otherwise, in the same call.
func (s *Service) Execute(ctx context.Context, text string, confirm bool) (ExecResult, error) {
	if err := ctx.Err(); err != nil {
		return ExecResult{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.logic.Execute(text, false)
	if err != nil {
		return ExecResult{}, err
	}
	var confirmed *bool
	if result.Confirmation {
		answer := "n"
		if confirm {
			answer = "y"
		}
		if result, err = s.logic.Execute(answer, true); err != nil {
			return ExecResult{}, err
		}
		confirmed = &confirm
	}

	out := ExecResult{
		Feedback:  result.Feedback,
		Confirmed: confirmed,
		Exit:      result.Exit,
		View:      result.View.String(),
	}
	switch result.View {
	case command.ShowPersonList:
		out.Persons = s.logic.FilteredPersons()
	case command.ShowAssignmentList:
		out.Assignments = s.logic.FilteredAssignments()
	}
	return out, nil
}

// Persons returns every person in the address book.
func (s *Service) Persons(ctx context.Context) ([]model.Person, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logic.AddressBook().Persons(), nil
}

// Assignments returns every assignment in the address book.
func (s *Service) Assignments(ctx context.Context) ([]model.Assignment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logic.AddressBook().Assignments(), nil
}

// Person returns the person with the given name, compared the way duplicate
// names are.
func (s *Service) Person(ctx context.Context, name string) (model.Person, error) {
	persons, err := s.Persons(ctx)
	if err != nil {
		return model.Person{}, err
	}
	want := model.Person{Name: name}
	for _, p := range persons {
		if p.SameAs(want) {
			return p, nil
		}
	}
	return model.Person{}, errors.New("person not found: " + name)
}
