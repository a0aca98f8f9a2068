// Package mentalstatus composes a mental-status examination narrative from
// checklist phrases and free-text addenda.
package mentalstatus

import (
	"errors"
	"fmt"
	"strings"

	"psiquitools/internal/document"
	"psiquitools/internal/logging"

	"go.uber.org/zap"
)

const (
	// Title heads the printed examination.
	Title = "Mental Status Examination"
	// NoData replaces an empty narrative in the printed document.
	NoData = "No data recorded."
)

var (
	ErrUnknownSection = errors.New("unknown examination section")
	ErrUnknownPhrase  = errors.New("phrase not in section catalog")
)

// SectionData is what was recorded for one section.
type SectionData struct {
	Selected map[string]bool
	Text     string
}

// Exam holds the state of one examination. The zero value is not usable;
// call New.
type Exam struct {
	sections map[string]*SectionData
}

// New returns an empty examination.
func New() *Exam {
	e := &Exam{}
	e.Reset()
	return e
}

// Reset clears every section.
func (e *Exam) Reset() {
	e.sections = make(map[string]*SectionData, len(Sections))
	for _, s := range Sections {
		e.sections[s.ID] = &SectionData{Selected: make(map[string]bool)}
	}
}

func (e *Exam) section(id string) (Section, *SectionData, error) {
	s, ok := Lookup(id)
	if !ok {
		return Section{}, nil, fmt.Errorf("%w: %q", ErrUnknownSection, id)
	}
	return s, e.sections[id], nil
}

// Toggle flips phrase in or out of the section's selection.
func (e *Exam) Toggle(sectionID, phrase string) error {
	s, data, err := e.section(sectionID)
	if err != nil {
		return err
	}
	if !s.Has(phrase) {
		return fmt.Errorf("%w: %q in %s", ErrUnknownPhrase, phrase, sectionID)
	}
	if data.Selected[phrase] {
		delete(data.Selected, phrase)
	} else {
		data.Selected[phrase] = true
	}
	logging.Get(logging.CategoryMental).Debug("phrase toggled",
		zap.String("section", sectionID),
		zap.String("phrase", phrase),
		zap.Bool("selected", data.Selected[phrase]))
	return nil
}

// Selected reports whether phrase is currently selected.
func (e *Exam) Selected(sectionID, phrase string) bool {
	data, ok := e.sections[sectionID]
	return ok && data.Selected[phrase]
}

// SetText replaces the section's free-text addendum.
func (e *Exam) SetText(sectionID, text string) error {
	_, data, err := e.section(sectionID)
	if err != nil {
		return err
	}
	data.Text = text
	return nil
}

// Text returns the section's addendum as entered.
func (e *Exam) Text(sectionID string) string {
	if data, ok := e.sections[sectionID]; ok {
		return data.Text
	}
	return ""
}

// Section returns a copy of what was recorded for a section.
func (e *Exam) Section(sectionID string) (SectionData, bool) {
	data, ok := e.sections[sectionID]
	if !ok {
		return SectionData{}, false
	}
	out := SectionData{Selected: make(map[string]bool, len(data.Selected)), Text: data.Text}
	for k, v := range data.Selected {
		out.Selected[k] = v
	}
	return out, true
}

// Empty reports whether nothing has been recorded.
func (e *Exam) Empty() bool {
	return e.Narrative() == ""
}

// chunk renders a section: selected phrases in catalog order, then the addendum.
func (e *Exam) chunk(s Section) string {
	data := e.sections[s.ID]
	parts := make([]string, 0, len(data.Selected)+1)
	for _, p := range s.Phrases {
		if data.Selected[p] {
			parts = append(parts, p)
		}
	}
	if text := cleanAddendum(data.Text); text != "" {
		parts = append(parts, text)
	}
	return strings.Join(parts, ". ")
}

func cleanAddendum(text string) string {
	return strings.TrimSpace(strings.TrimRight(strings.TrimSpace(text), "."))
}

// Narrative joins every non-empty section into one paragraph ending in ".".
// An empty examination yields "".
func (e *Exam) Narrative() string {
	chunks := make([]string, 0, len(Sections))
	for _, s := range Sections {
		if c := e.chunk(s); c != "" {
			chunks = append(chunks, c)
		}
	}
	if len(chunks) == 0 {
		return ""
	}
	return strings.Join(chunks, ". ") + "."
}

// Document returns the printable examination.
func (e *Exam) Document() *document.Document {
	body := e.Narrative()
	if body == "" {
		body = NoData
	}
	doc := &document.Document{Title: Title}
	doc.Add(document.Block{Style: document.StyleTitle, Align: document.AlignCenter, Text: strings.ToUpper(Title), SpaceAfter: 1}).
		Add(document.Block{Text: body})
	return doc
}
