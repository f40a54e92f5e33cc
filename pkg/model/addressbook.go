package model

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicatePerson     = errors.New("model: duplicate person")
	ErrPersonNotFound      = errors.New("model: person not found")
	ErrDuplicateAssignment = errors.New("model: duplicate assignment")
	ErrAssignmentNotFound  = errors.New("model: assignment not found")
)

// ReadOnlyAddressBook is an unmodifiable view of an address book.
type ReadOnlyAddressBook interface {
	Persons() []Person
	Assignments() []Assignment
}

// AddressBook holds ordered, unique persons and assignments.
type AddressBook struct {
	persons     []Person
	assignments []Assignment
}

func NewAddressBook() *AddressBook {
	return &AddressBook{}
}

// CopyAddressBook creates an address book holding a deep copy of src.
func CopyAddressBook(src ReadOnlyAddressBook) (*AddressBook, error) {
	ab := NewAddressBook()
	if src == nil {
		return ab, nil
	}
	if err := ab.Reset(src); err != nil {
		return nil, err
	}
	return ab, nil
}

// Reset replaces the contents with a copy of data. Duplicates in data are
// rejected and leave the address book untouched.
func (ab *AddressBook) Reset(data ReadOnlyAddressBook) error {
	persons := data.Persons()
	for i := range persons {
		for j := i + 1; j < len(persons); j++ {
			if persons[i].SameAs(persons[j]) {
				return fmt.Errorf("%w: %s", ErrDuplicatePerson, persons[j].Name)
			}
		}
	}
	assignments := data.Assignments()
	for i := range assignments {
		for j := i + 1; j < len(assignments); j++ {
			if assignments[i].SameAs(assignments[j]) {
				return fmt.Errorf("%w: %s", ErrDuplicateAssignment, assignments[j].Title)
			}
		}
	}
	ab.persons = persons
	ab.assignments = assignments
	return nil
}

func (ab *AddressBook) Persons() []Person {
	out := make([]Person, len(ab.persons))
	for i, p := range ab.persons {
		out[i] = p.clone()
	}
	return out
}

func (ab *AddressBook) Assignments() []Assignment {
	out := make([]Assignment, len(ab.assignments))
	for i, a := range ab.assignments {
		out[i] = a.clone()
	}
	return out
}

func (ab *AddressBook) HasPerson(p Person) bool {
	return ab.indexOfPerson(p) >= 0
}

func (ab *AddressBook) AddPerson(p Person) error {
	if ab.HasPerson(p) {
		return ErrDuplicatePerson
	}
	ab.persons = append(ab.persons, p.clone())
	return nil
}

// SetPerson replaces target with edited. The edited person may not collide
// with another contact.
func (ab *AddressBook) SetPerson(target, edited Person) error {
	i := ab.indexOfPerson(target)
	if i < 0 {
		return ErrPersonNotFound
	}
	if j := ab.indexOfPerson(edited); j >= 0 && j != i {
		return ErrDuplicatePerson
	}
	ab.persons[i] = edited.clone()
	if target.Name != edited.Name {
		for k := range ab.assignments {
			if ab.assignments[k].Assignee == target.Name {
				ab.assignments[k].Assignee = edited.Name
			}
		}
	}
	return nil
}

// RemovePerson deletes the person and unassigns their assignments. An
// unassigned assignment that would duplicate one already unassigned is
// dropped, so the book never holds two identical assignments.
func (ab *AddressBook) RemovePerson(p Person) error {
	i := ab.indexOfPerson(p)
	if i < 0 {
		return ErrPersonNotFound
	}
	name := ab.persons[i].Name
	ab.persons = append(ab.persons[:i], ab.persons[i+1:]...)

	var orphans []Assignment
	kept := ab.assignments[:0]
	for _, a := range ab.assignments {
		if a.Assignee == name {
			a.Assignee = ""
			orphans = append(orphans, a)
			continue
		}
		kept = append(kept, a)
	}
	ab.assignments = kept
	for _, a := range orphans {
		if !ab.HasAssignment(a) {
			ab.assignments = append(ab.assignments, a)
		}
	}
	return nil
}

func (ab *AddressBook) HasAssignment(a Assignment) bool {
	return ab.indexOfAssignment(a) >= 0
}

func (ab *AddressBook) AddAssignment(a Assignment) error {
	if ab.HasAssignment(a) {
		return ErrDuplicateAssignment
	}
	ab.assignments = append(ab.assignments, a.clone())
	return nil
}

func (ab *AddressBook) SetAssignment(target, edited Assignment) error {
	i := ab.indexOfAssignment(target)
	if i < 0 {
		return ErrAssignmentNotFound
	}
	if j := ab.indexOfAssignment(edited); j >= 0 && j != i {
		return ErrDuplicateAssignment
	}
	ab.assignments[i] = edited.clone()
	return nil
}

func (ab *AddressBook) RemoveAssignment(a Assignment) error {
	i := ab.indexOfAssignment(a)
	if i < 0 {
		return ErrAssignmentNotFound
	}
	ab.assignments = append(ab.assignments[:i], ab.assignments[i+1:]...)
	return nil
}

func (ab *AddressBook) ClearAssignments() {
	ab.assignments = nil
}

func (ab *AddressBook) indexOfPerson(p Person) int {
	for i := range ab.persons {
		if ab.persons[i].SameAs(p) {
			return i
		}
	}
	return -1
}

func (ab *AddressBook) indexOfAssignment(a Assignment) int {
	for i := range ab.assignments {
		if ab.assignments[i].SameAs(a) {
			return i
		}
	}
	return -1
}

func (ab *AddressBook) String() string {
	return fmt.Sprintf("%d persons, %d assignments", len(ab.persons), len(ab.assignments))
}
