package exec

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/roster/pkg/logic"
	"tableflip.dev/roster/pkg/logic/command"
	"tableflip.dev/roster/pkg/model"
)

type memStorage struct {
	saves int
}

func (m *memStorage) AddressBookFilePath() string { return "addressbook.json" }

func (m *memStorage) ReadAddressBook() (*model.AddressBook, error) {
	return nil, os.ErrNotExist
}

func (m *memStorage) SaveAddressBook(model.ReadOnlyAddressBook) error {
	m.saves++
	return nil
}

func (m *memStorage) ReadUserPrefs() (model.UserPrefs, error) {
	return model.DefaultUserPrefs(), nil
}

func (m *memStorage) SaveUserPrefs(model.UserPrefs) error { return nil }

func newLogic(t *testing.T) (*logic.Manager, *model.Manager, *memStorage) {
	t.Helper()
	ab := model.NewAddressBook()
	p, err := model.NewPerson("Alice Pauline", "94351253", "alice@example.com", "Jurong West")
	require.NoError(t, err)
	require.NoError(t, ab.AddPerson(p))
	mdl, err := model.NewManager(ab, model.DefaultUserPrefs())
	require.NoError(t, err)
	s := &memStorage{}
	return logic.New(mdl, s), mdl, s
}

func TestExecPlainCommand(t *testing.T) {
	l, _, s := newLogic(t)
	var out bytes.Buffer
	e := Exec{Logic: l, Text: "find alice", Out: &out}

	require.NoError(t, e.Do(context.Background()))
	assert.Contains(t, out.String(), "1 persons listed!")
	assert.Contains(t, out.String(), "Alice Pauline")
	assert.Equal(t, 1, s.saves)
}

func TestExecYes(t *testing.T) {
	l, mdl, s := newLogic(t)
	var out bytes.Buffer
	e := Exec{Logic: l, Text: "delete 1", Out: &out, Yes: true}

	require.NoError(t, e.Do(context.Background()))
	assert.Contains(t, out.String(), "Deleted Person: Alice Pauline")
	assert.Empty(t, mdl.FilteredPersons())
	assert.Equal(t, 1, s.saves)
}

func TestExecWithoutConfirmCancels(t *testing.T) {
	l, mdl, s := newLogic(t)
	var out bytes.Buffer
	e := Exec{Logic: l, Text: "clear", Out: &out}

	require.NoError(t, e.Do(context.Background()))
	assert.Contains(t, out.String(), logic.MessageConfirmationCancelled)
	assert.Len(t, mdl.FilteredPersons(), 1)
	assert.Zero(t, s.saves)
}

func TestExecAsksConfirm(t *testing.T) {
	l, mdl, _ := newLogic(t)
	var out bytes.Buffer
	e := Exec{
		Logic:   l,
		Text:    "clear",
		Out:     &out,
		Confirm: func(string) (string, error) { return "Y", nil },
	}

	require.NoError(t, e.Do(context.Background()))
	assert.Contains(t, out.String(), logic.MessageConfirmation)
	assert.Empty(t, mdl.FilteredPersons())
}

func TestExecReturnsCommandErrors(t *testing.T) {
	l, _, _ := newLogic(t)
	e := Exec{Logic: l, Text: "delete 7", Out: &bytes.Buffer{}}

	err := e.Do(context.Background())
	var cerr *command.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, command.MessageInvalidPersonIndex, cerr.Message)
}
