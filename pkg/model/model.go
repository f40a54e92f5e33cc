package model

import (
	"errors"
)

// PersonPredicate filters the person list.
type PersonPredicate func(Person) bool

// AssignmentPredicate filters the assignment list.
type AssignmentPredicate func(Assignment) bool

var (
	PredicateShowAllPersons     PersonPredicate     = func(Person) bool { return true }
	PredicateShowAllAssignments AssignmentPredicate = func(Assignment) bool { return true }
)

// Model is the in-memory state commands operate on.
type Model interface {
	UserPrefs() UserPrefs
	SetUserPrefs(prefs UserPrefs)
	GuiSettings() GuiSettings
	SetGuiSettings(settings GuiSettings)
	AddressBookFilePath() string
	SetAddressBookFilePath(path string)

	AddressBook() ReadOnlyAddressBook
	SetAddressBook(ab ReadOnlyAddressBook) error

	HasPerson(p Person) bool
	AddPerson(p Person) error
	SetPerson(target, edited Person) error
	DeletePerson(p Person) error

	HasAssignment(a Assignment) bool
	AddAssignment(a Assignment) error
	SetAssignment(target, edited Assignment) error
	DeleteAssignment(a Assignment) error
	ClearAssignments()

	FilteredPersons() []Person
	UpdateFilteredPersons(pred PersonPredicate)
	FilteredAssignments() []Assignment
	UpdateFilteredAssignments(pred AssignmentPredicate)
}

// Manager is the default Model.
type Manager struct {
	book      *AddressBook
	prefs     UserPrefs
	personsBy PersonPredicate
	assignBy  AssignmentPredicate
}

var _ Model = (*Manager)(nil)

// NewManager copies ab and prefs into a new Manager. A nil ab starts empty.
func NewManager(ab ReadOnlyAddressBook, prefs UserPrefs) (*Manager, error) {
	book, err := CopyAddressBook(ab)
	if err != nil {
		return nil, err
	}
	return &Manager{
		book:      book,
		prefs:     prefs,
		personsBy: PredicateShowAllPersons,
		assignBy:  PredicateShowAllAssignments,
	}, nil
}

func (m *Manager) UserPrefs() UserPrefs {
	return m.prefs
}

func (m *Manager) SetUserPrefs(prefs UserPrefs) {
	m.prefs = prefs
}

func (m *Manager) GuiSettings() GuiSettings {
	return m.prefs.GuiSettings
}

func (m *Manager) SetGuiSettings(settings GuiSettings) {
	m.prefs.GuiSettings = settings
}

func (m *Manager) AddressBookFilePath() string {
	return m.prefs.AddressBookFilePath
}

func (m *Manager) SetAddressBookFilePath(path string) {
	m.prefs.AddressBookFilePath = path
}

// AddressBook returns the live address book. Callers treat it as read-only.
func (m *Manager) AddressBook() ReadOnlyAddressBook {
	return m.book
}

func (m *Manager) SetAddressBook(ab ReadOnlyAddressBook) error {
	if ab == nil {
		return errors.New("model: nil address book")
	}
	return m.book.Reset(ab)
}

func (m *Manager) HasPerson(p Person) bool {
	return m.book.HasPerson(p)
}

func (m *Manager) AddPerson(p Person) error {
	if err := m.book.AddPerson(p); err != nil {
		return err
	}
	m.personsBy = PredicateShowAllPersons
	return nil
}

func (m *Manager) SetPerson(target, edited Person) error {
	return m.book.SetPerson(target, edited)
}

func (m *Manager) DeletePerson(p Person) error {
	return m.book.RemovePerson(p)
}

func (m *Manager) HasAssignment(a Assignment) bool {
	return m.book.HasAssignment(a)
}

func (m *Manager) AddAssignment(a Assignment) error {
	if err := m.book.AddAssignment(a); err != nil {
		return err
	}
	m.assignBy = PredicateShowAllAssignments
	return nil
}

func (m *Manager) SetAssignment(target, edited Assignment) error {
	return m.book.SetAssignment(target, edited)
}

func (m *Manager) DeleteAssignment(a Assignment) error {
	return m.book.RemoveAssignment(a)
}

func (m *Manager) ClearAssignments() {
	m.book.ClearAssignments()
}

// FilteredPersons returns the persons matching the current predicate, in
// address book order. Command indexes refer to this list.
func (m *Manager) FilteredPersons() []Person {
	all := m.book.Persons()
	out := make([]Person, 0, len(all))
	for _, p := range all {
		if m.personsBy(p) {
			out = append(out, p)
		}
	}
	return out
}

func (m *Manager) UpdateFilteredPersons(pred PersonPredicate) {
	if pred == nil {
		pred = PredicateShowAllPersons
	}
	m.personsBy = pred
}

func (m *Manager) FilteredAssignments() []Assignment {
	all := m.book.Assignments()
	out := make([]Assignment, 0, len(all))
	for _, a := range all {
		if m.assignBy(a) {
			out = append(out, a)
		}
	}
	return out
}

func (m *Manager) UpdateFilteredAssignments(pred AssignmentPredicate) {
	if pred == nil {
		pred = PredicateShowAllAssignments
	}
	m.assignBy = pred
}
