// Package activity persists per-user gamification activity in a single JSON
// file keyed by user name. The file is read and rewritten wholesale on each
// action; there is no incremental update.
package activity

import (
	"encoding/json"
	"errors"
	"os"
	"sync"

	"github.com/event-booster/backend/internal/models"
)

// ErrUnknownActivity is returned when recording an activity type outside the
// known set.
var ErrUnknownActivity = errors.New("unknown activity type")

// Store reads and writes the activity file.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a store backed by the JSON file at path. The file does not
// need to exist yet.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the whole activity file. A missing file yields an empty map.
func (s *Store) Load() (map[string]models.UserActivity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *Store) loadLocked() (map[string]models.UserActivity, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]models.UserActivity{}, nil
		}
		return nil, err
	}
	data := map[string]models.UserActivity{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *Store) saveLocked(data map[string]models.UserActivity) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}

// Get returns one user's activity entry.
func (s *Store) Get(name string) (models.UserActivity, bool, error) {
	data, err := s.Load()
	if err != nil {
		return models.UserActivity{}, false, err
	}
	user, ok := data[name]
	return user, ok, nil
}

// Record adds count occurrences of an activity for a user, creating the user
// entry when missing, and rewrites the file. Unknown activity types are
// rejected at this boundary.
func (s *Store) Record(name, activityType string, count int, interests string) (models.UserActivity, error) {
	if !models.IsKnownActivity(activityType) {
		return models.UserActivity{}, ErrUnknownActivity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.loadLocked()
	if err != nil {
		return models.UserActivity{}, err
	}
	user, ok := data[name]
	if !ok {
		user = models.UserActivity{
			Interests:              interests,
			DaysBeforeRegistration: 10,
		}
	}
	if user.Activities == nil {
		user.Activities = map[string]int{}
	}
	user.Activities[activityType] += count
	data[name] = user

	if err := s.saveLocked(data); err != nil {
		return models.UserActivity{}, err
	}
	return user, nil
}
