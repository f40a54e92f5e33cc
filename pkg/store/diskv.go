package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/roster/pkg/model"
)

const prefsKey = "preferences.json"

// prefsStore keeps user preferences as a single diskv value in the base
// directory.
type prefsStore struct {
	d *diskv.Diskv
}

func newPrefsStore(basePath string) *prefsStore {
	return &prefsStore{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 64 * 1024, // 64KB
	})}
}

// Read returns the defaults when nothing has been saved. Missing fields in a
// saved file keep their defaults.
func (s *prefsStore) Read() (model.UserPrefs, error) {
	prefs := model.DefaultUserPrefs()
	val, err := s.d.Read(prefsKey)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("store: read preferences: %w", err)
	}
	if len(val) == 0 {
		return prefs, nil
	}
	if err := json.Unmarshal(val, &prefs); err != nil {
		return model.DefaultUserPrefs(), fmt.Errorf("store: decode preferences: %w", err)
	}
	return prefs, nil
}

func (s *prefsStore) Save(prefs model.UserPrefs) error {
	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return err
	}
	if err := s.d.Write(prefsKey, data); err != nil {
		return fmt.Errorf("store: write preferences: %w", err)
	}
	return nil
}
