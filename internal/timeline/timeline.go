// Package timeline manages the chronological list of a patient's psychiatric
// antecedents: dated events with a single shared add/edit form.
package timeline

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"psiquitools/internal/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DateLayout is the only accepted event date format.
const DateLayout = "2006-01-02"

var (
	ErrEmptyDate        = errors.New("event date is required")
	ErrEmptyDescription = errors.New("event description is required")
	ErrInvalidDate      = errors.New("event date must be YYYY-MM-DD")
	ErrEventNotFound    = errors.New("event not found")
	ErrNoEvents         = errors.New("timeline has no events")
)

// Event is one dated antecedent.
type Event struct {
	ID          string `yaml:"id"`
	Date        string `yaml:"date"`
	Description string `yaml:"description"`
}

// Time parses the event date. Events only enter a Manager with a valid date.
func (e Event) Time() time.Time {
	t, _ := time.Parse(DateLayout, e.Date)
	return t
}

// Form is the shared add/edit form.
type Form struct {
	Date        string
	Description string
}

// Clear empties the form.
func (f *Form) Clear() { *f = Form{} }

// Confirmer approves a deletion.
type Confirmer func(Event) bool

// Always approves every deletion.
func Always(Event) bool { return true }

// Manager owns the events and the edit session.
type Manager struct {
	Form   Form
	events []Event
	// editing is the id of the event loaded into Form, or "".
	editing string
	newID   func() string
}

// NewManager returns an empty timeline.
func NewManager() *Manager {
	return &Manager{newID: uuid.NewString}
}

func validate(date, description string) (string, string, error) {
	date = strings.TrimSpace(date)
	description = strings.TrimSpace(description)
	if date == "" {
		return "", "", ErrEmptyDate
	}
	if description == "" {
		return "", "", ErrEmptyDescription
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return date, description, nil
}

// Add appends a new event.
func (m *Manager) Add(date, description string) (Event, error) {
	date, description, err := validate(date, description)
	if err != nil {
		return Event{}, err
	}
	ev := Event{ID: m.newID(), Date: date, Description: description}
	m.events = append(m.events, ev)
	logging.Get(logging.CategoryTimeline).Debug("event added",
		zap.String("id", ev.ID), zap.String("date", ev.Date))
	return ev, nil
}

// Submit applies the form: it updates the event being edited, or adds a new
// one. On success the form is cleared and the edit session ends. On failure
// nothing changes.
func (m *Manager) Submit() (Event, error) {
	if m.editing == "" {
		ev, err := m.Add(m.Form.Date, m.Form.Description)
		if err != nil {
			return Event{}, err
		}
		m.Form.Clear()
		return ev, nil
	}

	date, description, err := validate(m.Form.Date, m.Form.Description)
	if err != nil {
		return Event{}, err
	}
	i := m.index(m.editing)
	if i < 0 {
		m.CancelEdit()
		return Event{}, fmt.Errorf("%w: %s", ErrEventNotFound, m.editing)
	}
	m.events[i].Date = date
	m.events[i].Description = description
	ev := m.events[i]
	logging.Get(logging.CategoryTimeline).Debug("event updated", zap.String("id", ev.ID))
	m.CancelEdit()
	return ev, nil
}

// Edit loads the event into the form and makes it the edit target,
// replacing any previous target.
func (m *Manager) Edit(id string) error {
	i := m.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrEventNotFound, id)
	}
	m.Form = Form{Date: m.events[i].Date, Description: m.events[i].Description}
	m.editing = id
	return nil
}

// CancelEdit clears the form and the edit target.
func (m *Manager) CancelEdit() {
	m.Form.Clear()
	m.editing = ""
}

// Editing returns the id of the event being edited.
func (m *Manager) Editing() (string, bool) {
	return m.editing, m.editing != ""
}

// Delete removes the event if confirm approves. Unknown ids are a no-op and
// confirm is not asked. Deleting the edit target cancels the edit.
func (m *Manager) Delete(id string, confirm Confirmer) bool {
	i := m.index(id)
	if i < 0 {
		return false
	}
	if confirm != nil && !confirm(m.events[i]) {
		return false
	}
	m.events = append(m.events[:i], m.events[i+1:]...)
	if m.editing == id {
		m.CancelEdit()
	}
	logging.Get(logging.CategoryTimeline).Debug("event deleted", zap.String("id", id))
	return true
}

func (m *Manager) index(id string) int {
	for i, ev := range m.events {
		if ev.ID == id {
			return i
		}
	}
	return -1
}

// Get returns the event with the given id.
func (m *Manager) Get(id string) (Event, bool) {
	if i := m.index(id); i >= 0 {
		return m.events[i], true
	}
	return Event{}, false
}

// Len is the number of events.
func (m *Manager) Len() int { return len(m.events) }

// Events returns the events in insertion order.
func (m *Manager) Events() []Event {
	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}

// Snapshot returns a detached copy of the events for use off the update
// loop. The edit session is not copied.
func (m *Manager) Snapshot() *Manager {
	return &Manager{events: m.Events(), newID: m.newID}
}

// DisplayOrder returns the events newest first. Events on the same date keep
// their insertion order.
func (m *Manager) DisplayOrder() []Event {
	out := m.Events()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// ExportOrder returns the events oldest first. Events on the same date keep
// their insertion order.
func (m *Manager) ExportOrder() []Event {
	out := m.Events()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
