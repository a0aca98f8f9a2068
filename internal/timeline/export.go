package timeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"psiquitools/internal/document"
	"psiquitools/internal/logging"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	// Title heads the printed chronology.
	Title = "Psychiatric History"
	// DefaultFooter is the mark printed on the last page.
	DefaultFooter = "psiqui.tools"
	// DisplayDateLayout is how dates are printed.
	DisplayDateLayout = "02/01/2006"

	sheetName = "Timeline"
)

// Document lays the events out oldest first. It fails with ErrNoEvents when
// there is nothing to print.
func (m *Manager) Document(now time.Time, footer string) (*document.Document, error) {
	if len(m.events) == 0 {
		return nil, ErrNoEvents
	}

	doc := &document.Document{Title: Title, Footer: footer}
	doc.Add(document.Block{Style: document.StyleTitle, Text: Title}).
		Add(document.Block{Style: document.StyleCaption, Text: "Generated on " + now.Format(DisplayDateLayout), SpaceAfter: 1})

	for _, ev := range m.ExportOrder() {
		doc.Add(document.Block{Style: document.StyleLabel, Text: ev.Time().Format(DisplayDateLayout)}).
			Add(document.Block{Text: ev.Description, SpaceAfter: 1})
	}
	return doc, nil
}

// Workbook writes the chronology, oldest first, as an .xlsx sheet with a
// frozen header row.
func (m *Manager) Workbook(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E2E8F0"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	wrapStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return fmt.Errorf("failed to create body style: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &[]any{"Date", "Description"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", "B1", headerStyle); err != nil {
		return fmt.Errorf("failed to set header style: %w", err)
	}
	if err := f.SetColWidth(sheetName, "A", "A", 14); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColWidth(sheetName, "B", "B", 80); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	for i, ev := range m.ExportOrder() {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &[]any{ev.Date, ev.Description}); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
		end, err := excelize.CoordinatesToCellName(2, i+2)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellStyle(sheetName, cell, end, wrapStyle); err != nil {
			return fmt.Errorf("failed to set row style: %w", err)
		}
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze panes: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	logging.Get(logging.CategoryTimeline).Info("workbook exported", zap.Int("events", len(m.events)))
	return nil
}

// WriteWorkbook writes the workbook to path, creating parent directories.
func (m *Manager) WriteWorkbook(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create workbook: %w", err)
	}
	if err := m.Workbook(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

type eventFile struct {
	Events []Event `yaml:"events"`
}

// LoadFile reads events from a YAML file. A missing file yields an empty
// timeline. Events without an id, or repeating an earlier id, get a fresh one.
func LoadFile(path string) (*Manager, error) {
	m := NewManager()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return nil, fmt.Errorf("failed to read timeline: %w", err)
	}

	var file eventFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse timeline %s: %w", path, err)
	}

	seen := make(map[string]bool, len(file.Events))
	for i, ev := range file.Events {
		date, description, err := validate(ev.Date, ev.Description)
		if err != nil {
			return nil, fmt.Errorf("event %d in %s: %w", i+1, path, err)
		}
		if ev.ID == "" || seen[ev.ID] {
			if ev.ID != "" {
				logging.Get(logging.CategoryTimeline).Warn("duplicate event id reassigned",
					zap.String("id", ev.ID), zap.String("path", path))
			}
			ev.ID = m.newID()
		}
		seen[ev.ID] = true
		m.events = append(m.events, Event{ID: ev.ID, Date: date, Description: description})
	}
	return m, nil
}

// SaveFile writes the events, in insertion order, as YAML.
func (m *Manager) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create timeline directory: %w", err)
	}
	data, err := yaml.Marshal(eventFile{Events: m.Events()})
	if err != nil {
		return fmt.Errorf("failed to marshal timeline: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write timeline: %w", err)
	}
	return nil
}
