// Package logic runs user command lines against the model and saves the
// result.
package logic

import (
	"errors"
	"fmt"
	"io/fs"

	"go.uber.org/zap"

	"tableflip.dev/roster/pkg/logic/command"
	"tableflip.dev/roster/pkg/logic/parser"
	"tableflip.dev/roster/pkg/model"
	"tableflip.dev/roster/pkg/store"
)

const (
	FileOpsErrorFormat           = "Could not save data due to the following error: %s"
	FileOpsPermissionErrorFormat = "Could not save data to file %s due to insufficient permissions to write to the file or the folder."

	MessageConfirmation               = "This action cannot be undone. Are you sure you want to proceed? (y/n)"
	MessageConfirmationCancelled      = "Command cancelled."
	MessageConfirmationErrorCancelled = "The command has been cancelled due to the error above."
	MessageNoPendingCommand           = "There is no command waiting for confirmation."
)

// Logic is what the presentation layer drives.
type Logic interface {
	// Execute runs one round of interaction. When isConfirmation is true,
	// text is the answer to the previous confirmation prompt.
	Execute(text string, isConfirmation bool) (command.Result, error)

	AddressBook() model.ReadOnlyAddressBook
	FilteredPersons() []model.Person
	FilteredAssignments() []model.Assignment
	AddressBookFilePath() string
	GuiSettings() model.GuiSettings
	SetGuiSettings(settings model.GuiSettings)
}

// ParseFunc turns command text into a command.
type ParseFunc func(text string) (command.Command, error)

// Manager is the default Logic.
type Manager struct {
	model   model.Model
	storage store.Storage
	parse   ParseFunc
	logger  *zap.Logger
	session session
}

var _ Logic = (*Manager)(nil)

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for command and save logging.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithParser replaces the command line parser.
func WithParser(parse ParseFunc) Option {
	return func(m *Manager) {
		if parse != nil {
			m.parse = parse
		}
	}
}

// New returns a Manager running commands against mdl and saving through storage.
func New(mdl model.Model, storage store.Storage, opts ...Option) *Manager {
	m := &Manager{
		model:   mdl,
		storage: storage,
		parse:   parser.Parse,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Execute runs one round of interaction and saves the address book when a
// command ran.
func (m *Manager) Execute(text string, isConfirmation bool) (command.Result, error) {
	m.logger.Info("user command",
		zap.String("input", text),
		zap.Bool("confirmation", isConfirmation))

	var (
		result command.Result
		ran    bool
		err    error
	)
	if isConfirmation {
		result, ran, err = m.answer(text)
	} else {
		result, ran, err = m.run(text)
	}
	if err != nil || !ran {
		return result, err
	}

	if err := m.save(); err != nil {
		return command.Result{}, err
	}
	return result, nil
}

// run handles a new command line. ran is false when nothing was executed.
func (m *Manager) run(text string) (result command.Result, ran bool, err error) {
	cmd, err := m.parse(text)
	if err != nil {
		return command.Result{}, false, err
	}
	m.session.reset()

	if NeedsConfirmation(cmd) {
		if v, ok := cmd.(command.Validator); ok {
			if err := v.Validate(m.model); err != nil {
				return command.Result{}, false, err
			}
		}
		m.session.await(cmd)
		m.logger.Debug("awaiting confirmation", zap.String("command", fmt.Sprintf("%T", cmd)))
		return command.NewResult(MessageConfirmation, command.WithConfirmation()), false, nil
	}

	result, err = cmd.Execute(m.model)
	if err != nil {
		return command.Result{}, false, err
	}
	return result, true, nil
}

// answer handles the reply to a confirmation prompt. A command error raised
// by the confirmed command is reported as feedback instead of an error.
func (m *Manager) answer(text string) (result command.Result, ran bool, err error) {
	cmd, ok := m.session.take()
	if !ok {
		return command.Result{}, false, command.Errorf(MessageNoPendingCommand)
	}
	if !IsAccepted(text) {
		return command.NewResult(MessageConfirmationCancelled), false, nil
	}

	result, err = cmd.Execute(m.model)
	if err != nil {
		var cerr *command.Error
		if !errors.As(err, &cerr) {
			return command.Result{}, false, err
		}
		m.logger.Debug("confirmed command failed", zap.Error(err))
		return command.NewResult(cerr.Error() + "\n" + MessageConfirmationErrorCancelled), false, nil
	}
	return result, true, nil
}

func (m *Manager) save() error {
	err := m.storage.SaveAddressBook(m.model.AddressBook())
	if err == nil {
		return nil
	}
	m.logger.Warn("save address book", zap.Error(err))
	if errors.Is(err, fs.ErrPermission) {
		return command.Wrap(err, FileOpsPermissionErrorFormat, m.storage.AddressBookFilePath())
	}
	return command.Wrap(err, FileOpsErrorFormat, err.Error())
}

// Pending reports whether a command is waiting for a confirmation answer.
func (m *Manager) Pending() bool {
	return m.session.state == stateAwaiting
}

func (m *Manager) AddressBook() model.ReadOnlyAddressBook {
	return m.model.AddressBook()
}

func (m *Manager) FilteredPersons() []model.Person {
	return m.model.FilteredPersons()
}

func (m *Manager) FilteredAssignments() []model.Assignment {
	return m.model.FilteredAssignments()
}

func (m *Manager) AddressBookFilePath() string {
	return m.model.AddressBookFilePath()
}

func (m *Manager) GuiSettings() model.GuiSettings {
	return m.model.GuiSettings()
}

func (m *Manager) SetGuiSettings(settings model.GuiSettings) {
	m.model.SetGuiSettings(settings)
}
