package mcp

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/roster/pkg/logic"
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

func newService(t *testing.T) (*Service, *memStorage) {
	t.Helper()
	ab := model.NewAddressBook()
	p, err := model.NewPerson("Alice Pauline", "94351253", "alice@example.com", "Jurong West")
	require.NoError(t, err)
	require.NoError(t, ab.AddPerson(p))
	require.NoError(t, ab.AddAssignment(model.Assignment{Title: "Lab 4", Assignee: "Alice Pauline"}))
	mdl, err := model.NewManager(ab, model.DefaultUserPrefs())
	require.NoError(t, err)
	s := &memStorage{}
	return NewService(logic.New(mdl, s)), s
}

func TestServiceExecuteList(t *testing.T) {
	svc, _ := newService(t)

	res, err := svc.Execute(context.Background(), "list", false)
	require.NoError(t, err)
	assert.Equal(t, "PERSON_LIST", res.View)
	require.Len(t, res.Persons, 1)
	assert.Equal(t, "Alice Pauline", res.Persons[0].Name)
	assert.Nil(t, res.Confirmed)
}

func TestServiceExecuteWithoutConfirmCancels(t *testing.T) {
	svc, s := newService(t)

	res, err := svc.Execute(context.Background(), "delete 1", false)
	require.NoError(t, err)
	assert.Equal(t, logic.MessageConfirmationCancelled, res.Feedback)
	require.NotNil(t, res.Confirmed)
	assert.False(t, *res.Confirmed)
	assert.Zero(t, s.saves)

	persons, err := svc.Persons(context.Background())
	require.NoError(t, err)
	assert.Len(t, persons, 1)
}

func TestServiceExecuteConfirmed(t *testing.T) {
	svc, s := newService(t)

	res, err := svc.Execute(context.Background(), "clearassignments", true)
	require.NoError(t, err)
	assert.Equal(t, "ASSIGNMENT_LIST", res.View)
	assert.Empty(t, res.Assignments)
	assert.Equal(t, 1, s.saves)
}

func TestServiceExecuteError(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Execute(context.Background(), "delete 5", true)
	require.Error(t, err)
}

func TestServicePerson(t *testing.T) {
	svc, _ := newService(t)

	p, err := svc.Person(context.Background(), "alice pauline")
	require.NoError(t, err)
	assert.Equal(t, "Alice Pauline", p.Name)

	_, err = svc.Person(context.Background(), "Bob")
	assert.Error(t, err)
}

func TestExecResultJSON(t *testing.T) {
	svc, _ := newService(t)

	res, err := svc.Execute(context.Background(), "listassignments", false)
	require.NoError(t, err)
	b, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"feedback":"Listed all assignments","view":"ASSIGNMENT_LIST","assignments":[{"title":"Lab 4","assignee":"Alice Pauline"}]}`, string(b))
}

func TestServiceCancelledContext(t *testing.T) {
	svc, s := newService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Execute(ctx, "list", false)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, s.saves)
}

func TestNewServer(t *testing.T) {
	svc, _ := newService(t)
	assert.NotNil(t, NewServer("roster", "dev", svc))
}
