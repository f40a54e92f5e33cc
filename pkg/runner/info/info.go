// Package info provides the runner logic for describing where data is kept.
package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"tableflip.dev/roster/pkg/store"
)

// Info prints the config and data locations along with what they hold.
type Info struct {
	Config  store.Config
	Storage *store.Manager
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = os.Stdout
	}

	if override := os.Getenv(store.ConfigPathEnv); override != "" {
		_, _ = fmt.Fprintln(out, store.ConfigPathEnv, "found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, store.ConfigPathEnv, "env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if file := store.ConfigFile(n.Config); file != "" {
		_, _ = fmt.Fprintln(out, "Config file:", file)
	}
	_, _ = fmt.Fprintln(out, "Config.path:", n.Config.BasePath())

	if n.Storage == nil {
		return errors.New("failed to create storage object")
	}
	_, _ = fmt.Fprintln(out, "Address book:", n.Storage.AddressBookFilePath())

	ab, err := n.Storage.ReadAddressBook()
	switch {
	case errors.Is(err, os.ErrNotExist):
		_, _ = fmt.Fprintln(out, "  not saved yet")
	case err != nil:
		return err
	default:
		_, _ = fmt.Fprintf(out, "  %d persons, %d assignments\n", len(ab.Persons()), len(ab.Assignments()))
	}
	return ctx.Err()
}
