package logic

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"tableflip.dev/roster/pkg/logic/command"
	"tableflip.dev/roster/pkg/logic/parser"
	"tableflip.dev/roster/pkg/model"
	"tableflip.dev/roster/pkg/store"
)

const bookPath = "/data/addressbook.json"

type fakeStorage struct {
	saves   int
	saveErr error
	saved   model.ReadOnlyAddressBook
}

func (f *fakeStorage) AddressBookFilePath() string { return bookPath }

func (f *fakeStorage) ReadAddressBook() (*model.AddressBook, error) {
	return nil, os.ErrNotExist
}

func (f *fakeStorage) SaveAddressBook(ab model.ReadOnlyAddressBook) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = ab
	return nil
}

func (f *fakeStorage) ReadUserPrefs() (model.UserPrefs, error) {
	return model.DefaultUserPrefs(), nil
}

func (f *fakeStorage) SaveUserPrefs(model.UserPrefs) error { return nil }

func newFixture(t *testing.T, names ...string) (*Manager, *model.Manager, *fakeStorage) {
	t.Helper()
	ab := model.NewAddressBook()
	for _, n := range names {
		p, err := model.NewPerson(n, "87438807", "someone@example.com", "Blk 30 Geylang Street 29")
		require.NoError(t, err)
		require.NoError(t, ab.AddPerson(p))
	}
	mdl, err := model.NewManager(ab, model.DefaultUserPrefs())
	require.NoError(t, err)
	s := &fakeStorage{}
	return New(mdl, s), mdl, s
}

func TestExecuteDestructiveCommandAsksForConfirmation(t *testing.T) {
	l, mdl, s := newFixture(t, "Alice Pauline", "Benson Meier")

	r, err := l.Execute("delete 1", false)
	require.NoError(t, err)
	assert.Equal(t, command.Result{Feedback: MessageConfirmation, Confirmation: true}, r)
	assert.True(t, l.Pending())
	assert.Len(t, mdl.FilteredPersons(), 2)
	assert.Zero(t, s.saves)
}

func TestExecuteConfirmedCommandRunsOnce(t *testing.T) {
	for _, answer := range []string{"y", "Y", " y "} {
		t.Run(answer, func(t *testing.T) {
			l, mdl, s := newFixture(t, "Alice Pauline", "Benson Meier")

			_, err := l.Execute("delete 1", false)
			require.NoError(t, err)

			r, err := l.Execute(answer, true)
			require.NoError(t, err)
			assert.Contains(t, r.Feedback, "Deleted Person: Alice Pauline")
			assert.Equal(t, command.ShowPersonList, r.View)
			assert.False(t, r.Confirmation)
			require.Len(t, mdl.FilteredPersons(), 1)
			assert.Equal(t, "Benson Meier", mdl.FilteredPersons()[0].Name)
			assert.Equal(t, 1, s.saves)
			assert.False(t, l.Pending())

			// The pending command is gone; a second yes does not run it again.
			_, err = l.Execute(answer, true)
			require.Error(t, err)
			assert.Len(t, mdl.FilteredPersons(), 1)
			assert.Equal(t, 1, s.saves)
		})
	}
}

func TestExecuteCancelledConfirmation(t *testing.T) {
	for _, answer := range []string{"n", "no", "yes", ""} {
		t.Run(answer, func(t *testing.T) {
			l, mdl, s := newFixture(t, "Alice Pauline")

			_, err := l.Execute("clear", false)
			require.NoError(t, err)

			r, err := l.Execute(answer, true)
			require.NoError(t, err)
			assert.Equal(t, command.NewResult(MessageConfirmationCancelled), r)
			assert.Len(t, mdl.FilteredPersons(), 1)
			assert.Zero(t, s.saves)
			assert.False(t, l.Pending())
		})
	}
}

func TestExecuteOutOfRangeDeleteFailsBeforePrompt(t *testing.T) {
	l, _, s := newFixture(t, "Alice Pauline")

	_, err := l.Execute("delete 999", false)
	var cerr *command.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, command.MessageInvalidPersonIndex, cerr.Message)
	assert.False(t, l.Pending())
	assert.Zero(t, s.saves)
}

func TestExecuteParseErrorKeepsPendingCommand(t *testing.T) {
	l, _, s := newFixture(t, "Alice Pauline")

	_, err := l.Execute("delete 1", false)
	require.NoError(t, err)

	_, err = l.Execute("frobnicate", false)
	var perr *parser.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parser.MessageUnknownCommand, perr.Message)
	assert.True(t, l.Pending())
	assert.Zero(t, s.saves)
}

func TestExecuteNewCommandReplacesPendingCommand(t *testing.T) {
	l, mdl, _ := newFixture(t, "Alice Pauline", "Benson Meier")

	_, err := l.Execute("delete 1", false)
	require.NoError(t, err)
	_, err = l.Execute("list", false)
	require.NoError(t, err)
	assert.False(t, l.Pending())

	_, err = l.Execute("y", true)
	require.Error(t, err)
	assert.Equal(t, MessageNoPendingCommand, err.Error())
	assert.Len(t, mdl.FilteredPersons(), 2)
}

func TestExecuteConfirmedCommandErrorIsReported(t *testing.T) {
	l, mdl, s := newFixture(t, "Alice Pauline")

	_, err := l.Execute("delete 1", false)
	require.NoError(t, err)

	// The list changes between prompt and answer.
	mdl.UpdateFilteredPersons(func(model.Person) bool { return false })

	r, err := l.Execute("y", true)
	require.NoError(t, err)
	assert.Equal(t, command.MessageInvalidPersonIndex+"\n"+MessageConfirmationErrorCancelled, r.Feedback)
	assert.Zero(t, s.saves)
	assert.Len(t, mdl.AddressBook().Persons(), 1)
}

func TestExecuteCommandErrorPropagates(t *testing.T) {
	l, _, s := newFixture(t, "Alice Pauline")

	_, err := l.Execute("add n/Alice Pauline p/123 e/a@example.com a/here", false)
	var cerr *command.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, command.MessageDuplicatePerson, cerr.Message)
	assert.Zero(t, s.saves)
}

func TestExecuteSavesAfterCommand(t *testing.T) {
	l, mdl, s := newFixture(t)

	r, err := l.Execute("add n/Amy Bee p/11111111 e/amy@example.com a/Block 312, Amy Street 1", false)
	require.NoError(t, err)
	assert.Equal(t, command.ShowPersonList, r.View)
	assert.Equal(t, 1, s.saves)
	assert.Equal(t, mdl.AddressBook(), s.saved)
}

func TestExecutePermissionDeniedOnSave(t *testing.T) {
	l, mdl, s := newFixture(t)
	s.saveErr = &fs.PathError{Op: "open", Path: bookPath + ".tmp", Err: fs.ErrPermission}

	_, err := l.Execute("add n/Amy Bee p/11111111 e/amy@example.com a/Block 312, Amy Street 1", false)
	require.Error(t, err)
	assert.Equal(t, fmt.Sprintf(FileOpsPermissionErrorFormat, bookPath), err.Error())
	assert.Contains(t, err.Error(), bookPath)
	assert.True(t, errors.Is(err, fs.ErrPermission))

	// The mutation is not rolled back.
	require.Len(t, mdl.FilteredPersons(), 1)
	assert.Equal(t, "Amy Bee", mdl.FilteredPersons()[0].Name)
}

func TestExecuteIOErrorOnSave(t *testing.T) {
	l, _, s := newFixture(t, "Alice Pauline")
	s.saveErr = errors.New("disk full")

	_, err := l.Execute("delete 1", false)
	require.NoError(t, err)
	_, err = l.Execute("y", true)
	var cerr *command.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, fmt.Sprintf(FileOpsErrorFormat, "disk full"), cerr.Message)
	assert.Equal(t, 1, s.saves)
}

func TestExecuteResultFlags(t *testing.T) {
	l, _, s := newFixture(t)

	r, err := l.Execute("help", false)
	require.NoError(t, err)
	assert.True(t, r.ShowHelp)

	r, err = l.Execute("listassignments", false)
	require.NoError(t, err)
	assert.Equal(t, command.ShowAssignmentList, r.View)

	r, err = l.Execute("exit", false)
	require.NoError(t, err)
	assert.True(t, r.Exit)
	assert.Equal(t, 3, s.saves)
}

func TestExecuteLogsEveryInput(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	mdl, err := model.NewManager(nil, model.DefaultUserPrefs())
	require.NoError(t, err)
	l := New(mdl, &fakeStorage{}, WithLogger(zap.New(core)))

	_, _ = l.Execute("list", false)
	_, _ = l.Execute("not a command", false)

	entries := logs.FilterMessage("user command").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "list", entries[0].ContextMap()["input"])
	assert.Equal(t, "not a command", entries[1].ContextMap()["input"])
}

func TestWithParser(t *testing.T) {
	mdl, err := model.NewManager(nil, model.DefaultUserPrefs())
	require.NoError(t, err)
	l := New(mdl, &fakeStorage{}, WithParser(func(string) (command.Command, error) {
		return &command.Clear{}, nil
	}))

	r, err := l.Execute("anything", false)
	require.NoError(t, err)
	assert.True(t, r.Confirmation)
}

func TestNeedsConfirmation(t *testing.T) {
	assert.True(t, NeedsConfirmation(&command.Delete{Index: 1}))
	assert.True(t, NeedsConfirmation(&command.ClearAssignments{}))
	assert.False(t, NeedsConfirmation(&command.Find{Keywords: []string{"x"}}))
	assert.False(t, NeedsConfirmation(&command.Mark{Index: 1, Done: true}))
}

func TestPassthroughs(t *testing.T) {
	l, mdl, _ := newFixture(t, "Alice Pauline")
	want := model.GuiSettings{Width: 100, Height: 30}
	l.SetGuiSettings(want)
	assert.Equal(t, want, mdl.GuiSettings())
	assert.Equal(t, want, l.GuiSettings())
	assert.Equal(t, model.DefaultAddressBookFile, l.AddressBookFilePath())
	assert.Len(t, l.FilteredPersons(), 1)
	assert.Empty(t, l.FilteredAssignments())
	assert.Len(t, l.AddressBook().Persons(), 1)
}

func TestDeletePersonKeepsSavedBookLoadable(t *testing.T) {
	s, err := store.Load(store.StaticConfig(t.TempDir()))
	require.NoError(t, err)
	mdl, err := model.NewManager(nil, model.DefaultUserPrefs())
	require.NoError(t, err)
	l := New(mdl, s)

	for _, line := range []string{
		"add n/Alice p/94351253 e/alice@example.com a/Jurong West",
		"addassignment n/HW1",
		"addassignment n/HW1 i/1",
		"delete 1",
	} {
		_, err := l.Execute(line, false)
		require.NoError(t, err, line)
	}
	_, err = l.Execute("y", true)
	require.NoError(t, err)
	assert.Len(t, mdl.FilteredAssignments(), 1)

	ab, err := s.ReadAddressBook()
	require.NoError(t, err)
	require.Len(t, ab.Assignments(), 1)
	assert.Equal(t, "HW1", ab.Assignments()[0].Title)
	assert.Empty(t, ab.Assignments()[0].Assignee)
}
