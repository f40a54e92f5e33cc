package info

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tableflip.dev/roster/pkg/model"
	"tableflip.dev/roster/pkg/store"
)

func TestInfo(t *testing.T) {
	t.Setenv(store.ConfigPathEnv, "")
	base := t.TempDir()
	s, err := store.Load(store.StaticConfig(base))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	var out bytes.Buffer
	i := Info{Config: store.StaticConfig(base), Storage: s, Out: &out}
	if err := i.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if !strings.Contains(out.String(), "not saved yet") {
		t.Fatalf("expected unsaved note, got:\n%s", out.String())
	}

	ab := model.NewAddressBook()
	p, _ := model.NewPerson("Alice Pauline", "94351253", "alice@example.com", "Jurong West")
	_ = ab.AddPerson(p)
	if err := s.SaveAddressBook(ab); err != nil {
		t.Fatalf("save: %v", err)
	}

	out.Reset()
	if err := i.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	for _, want := range []string{"Config.path: " + base, s.AddressBookFilePath(), "1 persons, 0 assignments"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in output:\n%s", want, out.String())
		}
	}
}
