package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a storage change notification.
type EventType int

const (
	// EventAddressBookChanged indicates the address book file was changed by
	// something other than this Manager.
	EventAddressBookChanged EventType = iota

	// EventPrefsChanged signals the preferences file changed.
	EventPrefsChanged
)

func (t EventType) String() string {
	switch t {
	case EventAddressBookChanged:
		return "address book changed"
	case EventPrefsChanged:
		return "preferences changed"
	default:
		return fmt.Sprintf("EventType(%d)", int(t))
	}
}

// Event is emitted by Watch when the data directory changes.
type Event struct {
	Type EventType
	Path string
}

// Watch streams change events until ctx is cancelled. Writes made by this
// Manager's SaveAddressBook are not reported. Callers should drain the
// returned channel; events are dropped while it is full. The channel is closed
// once ctx is done or the watcher fails.
func (m *Manager) Watch(ctx context.Context) (<-chan Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	// Watch directories rather than files; rename-into-place replaces the
	// file and would drop a file watch.
	dirs := map[string]struct{}{
		filepath.Clean(m.basePath):           {},
		filepath.Clean(filepath.Dir(m.file)): {},
	}
	for dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			closeWatcher()
			return nil, fmt.Errorf("store: ensure %s: %w", dir, err)
		}
		if err := watcher.Add(dir); err != nil {
			closeWatcher()
			return nil, fmt.Errorf("store: watch %s: %w", dir, err)
		}
	}

	events := make(chan Event, 16)
	prefsPath := filepath.Join(m.basePath, prefsKey)
	bookPath := filepath.Clean(m.file)

	go func() {
		var mu sync.Mutex
		closed := false
		defer func() {
			mu.Lock()
			closed = true
			close(events)
			mu.Unlock()
		}()
		defer closeWatcher()

		send := func(ev Event) {
			mu.Lock()
			defer mu.Unlock()
			if closed {
				return
			}
			select {
			case events <- ev:
			default:
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "store: watcher: %v\n", err)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				switch filepath.Clean(evt.Name) {
				case bookPath:
					throttle.Enqueue(Event{Type: EventAddressBookChanged, Path: bookPath}, func(ev Event) {
						if data, err := os.ReadFile(bookPath); err == nil && m.wroteLast(data) {
							return
						}
						send(ev)
					})
				case prefsPath:
					throttle.Enqueue(Event{Type: EventPrefsChanged, Path: prefsPath}, send)
				}
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces bursts of notifications so a rename-into-place
// (create, write, rename) is reported once.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[EventType]pendingEvent
	delay   time.Duration
}

type pendingEvent struct {
	ev   Event
	send func(Event)
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[EventType]pendingEvent),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	t.pending[ev.Type] = pendingEvent{ev: ev, send: send}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, t.flush)
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush() {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[EventType]pendingEvent)
	t.timer = nil
	t.mu.Unlock()

	for _, p := range pending {
		p.send(p.ev)
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
