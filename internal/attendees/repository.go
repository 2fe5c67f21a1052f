// Package attendees loads and serves the read-only registration roster.
package attendees

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/event-booster/backend/internal/models"
)

// Repository holds the roster loaded from the attendees CSV, in file order.
type Repository struct {
	attendees []models.Attendee
	byName    map[string]int
}

// NewRepository parses the roster file at path. Expected columns: Name, Email,
// Registered_Event, Interests, Attended.
func NewRepository(path string) (*Repository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("roster %s is empty", path)
	}

	col := map[string]int{}
	for i, h := range rows[0] {
		col[strings.TrimSpace(h)] = i
	}
	for _, required := range []string{"Name", "Interests"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("roster missing column %q", required)
		}
	}

	repo := &Repository{byName: make(map[string]int, len(rows)-1)}
	for _, row := range rows[1:] {
		a := models.Attendee{
			Name:            field(row, col, "Name"),
			Email:           field(row, col, "Email"),
			RegisteredEvent: field(row, col, "Registered_Event"),
			Interests:       field(row, col, "Interests"),
			Attended:        strings.EqualFold(field(row, col, "Attended"), "yes"),
		}
		if a.Name == "" {
			continue
		}
		repo.byName[a.Name] = len(repo.attendees)
		repo.attendees = append(repo.attendees, a)
	}
	return repo, nil
}

func field(row []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// List returns every attendee in roster order.
func (r *Repository) List() []models.Attendee {
	return append([]models.Attendee(nil), r.attendees...)
}

// GetByName returns the attendee with the given name.
func (r *Repository) GetByName(name string) (models.Attendee, bool) {
	i, ok := r.byName[name]
	if !ok {
		return models.Attendee{}, false
	}
	return r.attendees[i], true
}
