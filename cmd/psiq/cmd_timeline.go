package main

import (
	"fmt"
	"time"

	"psiquitools/cmd/psiq/ui"
	"psiquitools/internal/timeline"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	timelineFile string
	timelineAdd  []string
	timelinePDF  string
	timelineXLSX string
)

// timelineCmd organises dated antecedents
var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Organise psychiatric antecedents chronologically",
	Long: `Opens the antecedent timeline. With --file the events are loaded from a
YAML file and written back when the interface closes.

With --add, --pdf or --xlsx the timeline is handled without the interface.
Dates use YYYY-MM-DD.

Example:
  psiq timeline --file events.yaml --add 2024-01-10="First admission" --pdf timeline.pdf`,
	Args: cobra.NoArgs,
	RunE: runTimeline,
}

func init() {
	timelineCmd.Flags().StringVarP(&timelineFile, "file", "f", "", "YAML events file to load (and save)")
	timelineCmd.Flags().StringArrayVar(&timelineAdd, "add", nil, "Add an event as DATE=TEXT (repeatable)")
	timelineCmd.Flags().StringVar(&timelinePDF, "pdf", "", "Export the chronology (.pdf, .md or .txt)")
	timelineCmd.Flags().StringVar(&timelineXLSX, "xlsx", "", "Export the chronology as a spreadsheet")
}

func runTimeline(cmd *cobra.Command, args []string) error {
	m := timeline.NewManager()
	if timelineFile != "" {
		loaded, err := timeline.LoadFile(timelineFile)
		if err != nil {
			return err
		}
		m = loaded
	}

	if len(timelineAdd) == 0 && timelinePDF == "" && timelineXLSX == "" {
		if err := runTUI(func(env *ui.Env) ui.Page { return ui.NewTimelinePage(env, m) }); err != nil {
			return err
		}
		return saveTimeline(m)
	}

	for _, a := range timelineAdd {
		date, description, err := splitAssignment("add", a)
		if err != nil {
			return err
		}
		if _, err := m.Add(date, description); err != nil {
			return fmt.Errorf("--add %q: %w", a, err)
		}
	}
	if len(timelineAdd) > 0 {
		if err := saveTimeline(m); err != nil {
			return err
		}
	}

	for _, ev := range m.DisplayOrder() {
		fmt.Printf("%s  %s\n", ev.Time().Format(timeline.DisplayDateLayout), ev.Description)
	}

	if timelinePDF != "" {
		doc, err := m.Document(time.Now(), cfg.Document.FooterMark)
		if err != nil {
			return err
		}
		if err := exportDocument(timelinePDF, doc); err != nil {
			return err
		}
	}
	if timelineXLSX != "" {
		if m.Len() == 0 {
			return timeline.ErrNoEvents
		}
		path := cfg.ResolveOutput(timelineXLSX)
		if err := m.WriteWorkbook(path); err != nil {
			return err
		}
		fmt.Printf("Saved %s\n", path)
	}
	return nil
}

func saveTimeline(m *timeline.Manager) error {
	if timelineFile == "" {
		return nil
	}
	if err := m.SaveFile(timelineFile); err != nil {
		return err
	}
	logger.Info("timeline saved", zap.String("path", timelineFile), zap.Int("events", m.Len()))
	return nil
}
