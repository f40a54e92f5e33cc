package store

import (
	"context"
	"os"
	"testing"
	"time"

	"go.uber.org/goleak"

	"tableflip.dev/roster/pkg/model"
)

func TestWatchReportsExternalWrites(t *testing.T) {
	s, err := Load(StaticConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("load storage: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Our own save is not reported.
	if err := s.SaveAddressBook(model.NewAddressBook()); err != nil {
		t.Fatalf("save: %v", err)
	}
	select {
	case evt := <-ch:
		t.Fatalf("unexpected event for own write: %+v", evt)
	case <-time.After(300 * time.Millisecond):
	}

	external := []byte(`{"persons":[],"assignments":[{"title":"Lab 1"}]}`)
	if err := os.WriteFile(s.AddressBookFilePath(), external, 0o644); err != nil {
		t.Fatalf("external write: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventAddressBookChanged {
				if evt.Path != s.AddressBookFilePath() {
					t.Fatalf("expected path %q, got %q", s.AddressBookFilePath(), evt.Path)
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for address book change event")
		}
	}
}

func TestWatchClosesOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	s, err := Load(StaticConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("load storage: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after cancel")
		}
	}
}
