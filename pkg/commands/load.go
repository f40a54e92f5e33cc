package commands

import (
	"errors"
	"os"

	"go.uber.org/zap"

	"tableflip.dev/roster/pkg/logic"
	"tableflip.dev/roster/pkg/model"
	"tableflip.dev/roster/pkg/store"
)

// app holds everything a command needs to run user command lines.
type app struct {
	storage *store.Manager
	model   *model.Manager
	logic   *logic.Manager
	logger  *zap.Logger
}

func load(cfg store.Config) (*app, error) {
	s, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	logger, err := lo.Logger(s.BasePath())
	if err != nil {
		return nil, err
	}

	prefs, err := s.ReadUserPrefs()
	if err != nil {
		return nil, err
	}
	ab, err := readAddressBook(s, logger)
	if err != nil {
		return nil, err
	}
	mdl, err := model.NewManager(ab, prefs)
	if err != nil {
		return nil, err
	}
	return &app{
		storage: s,
		model:   mdl,
		logic:   logic.New(mdl, s, logic.WithLogger(logger)),
		logger:  logger,
	}, nil
}

// readAddressBook starts from an empty book when nothing was saved yet.
func readAddressBook(s store.Storage, logger *zap.Logger) (*model.AddressBook, error) {
	ab, err := s.ReadAddressBook()
	if errors.Is(err, os.ErrNotExist) {
		logger.Info("no address book yet, starting empty", zap.String("path", s.AddressBookFilePath()))
		return model.NewAddressBook(), nil
	}
	return ab, err
}

// reload replaces the in-memory address book with what is on disk.
func (a *app) reload() error {
	ab, err := readAddressBook(a.storage, a.logger)
	if err != nil {
		return err
	}
	return a.model.SetAddressBook(ab)
}

func (a *app) close() {
	if err := a.storage.SaveUserPrefs(a.model.UserPrefs()); err != nil {
		a.logger.Warn("save preferences", zap.Error(err))
	}
	_ = a.logger.Sync()
}
