package command

import (
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/roster/pkg/model"
)

const (
	MessageAddSuccess      = "New person added: %s"
	MessageDuplicatePerson = "This person already exists in the address book"
	MessageEditSuccess     = "Edited Person: %s"
	MessageNotEdited       = "At least one field to edit must be provided."
	MessageDeleteSuccess   = "Deleted Person: %s"
	MessageClearSuccess    = "Address book has been cleared!"
	MessageListPersons     = "Listed all persons"
)

// Add adds a person to the address book.
type Add struct {
	Person model.Person
}

func (c *Add) Execute(m model.Model) (Result, error) {
	if m.HasPerson(c.Person) {
		return Result{}, Errorf(MessageDuplicatePerson)
	}
	if err := m.AddPerson(c.Person); err != nil {
		return Result{}, Wrap(err, MessageDuplicatePerson)
	}
	return NewResult(fmt.Sprintf(MessageAddSuccess, c.Person), WithView(ShowPersonList)), nil
}

// EditFields holds the fields an Edit replaces. Nil fields are kept.
type EditFields struct {
	Name    *string
	Phone   *string
	Email   *string
	Address *string
	Tags    *[]string
}

func (f EditFields) any() bool {
	return f.Name != nil || f.Phone != nil || f.Email != nil || f.Address != nil || f.Tags != nil
}

func (f EditFields) apply(p model.Person) model.Person {
	if f.Name != nil {
		p.Name = *f.Name
	}
	if f.Phone != nil {
		p.Phone = *f.Phone
	}
	if f.Email != nil {
		p.Email = *f.Email
	}
	if f.Address != nil {
		p.Address = *f.Address
	}
	if f.Tags != nil {
		p.Tags = append([]string(nil), (*f.Tags)...)
	}
	return p
}

// Edit replaces fields of the person at a one-based index of the filtered
// list.
type Edit struct {
	Index  int
	Fields EditFields
}

func (c *Edit) Execute(m model.Model) (Result, error) {
	if !c.Fields.any() {
		return Result{}, Errorf(MessageNotEdited)
	}
	target, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	edited := c.Fields.apply(target)
	if err := m.SetPerson(target, edited); err != nil {
		if errors.Is(err, model.ErrDuplicatePerson) {
			return Result{}, Wrap(err, MessageDuplicatePerson)
		}
		return Result{}, Wrap(err, "%v", err)
	}
	m.UpdateFilteredPersons(model.PredicateShowAllPersons)
	return NewResult(fmt.Sprintf(MessageEditSuccess, edited), WithView(ShowPersonList)), nil
}

// Delete removes the person at a one-based index of the filtered list.
type Delete struct {
	destructive
	Index int
}

func (c *Delete) Validate(m model.Model) error {
	_, err := personAt(m, c.Index)
	return err
}

func (c *Delete) Execute(m model.Model) (Result, error) {
	target, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	if err := m.DeletePerson(target); err != nil {
		return Result{}, Wrap(err, MessageInvalidPersonIndex)
	}
	return NewResult(fmt.Sprintf(MessageDeleteSuccess, target), WithView(ShowPersonList)), nil
}

// Clear empties the address book, assignments included.
type Clear struct {
	destructive
}

func (c *Clear) Execute(m model.Model) (Result, error) {
	if err := m.SetAddressBook(model.NewAddressBook()); err != nil {
		return Result{}, Wrap(err, "%v", err)
	}
	m.UpdateFilteredPersons(model.PredicateShowAllPersons)
	m.UpdateFilteredAssignments(model.PredicateShowAllAssignments)
	return NewResult(MessageClearSuccess, WithView(ShowPersonList)), nil
}

// Find filters the person list to names containing any of the keywords as a
// whole word, ignoring case.
type Find struct {
	Keywords []string
}

func (c *Find) Execute(m model.Model) (Result, error) {
	keywords := c.Keywords
	m.UpdateFilteredPersons(func(p model.Person) bool {
		for _, word := range strings.Fields(p.Name) {
			for _, k := range keywords {
				if strings.EqualFold(word, k) {
					return true
				}
			}
		}
		return false
	})
	return NewResult(fmt.Sprintf(MessagePersonsListed, len(m.FilteredPersons())), WithView(ShowPersonList)), nil
}

// List shows every person.
type List struct{}

func (c *List) Execute(m model.Model) (Result, error) {
	m.UpdateFilteredPersons(model.PredicateShowAllPersons)
	return NewResult(MessageListPersons, WithView(ShowPersonList)), nil
}
