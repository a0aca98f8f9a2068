package main

import (
	"fmt"
	"time"

	"psiquitools/cmd/psiq/ui"
	"psiquitools/internal/history"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	historyFrom string
	historyPDF  string
)

// historyCmd fills in a structured clinical history
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Fill in a psychiatric clinical history",
	Long: `Opens the clinical history wizard. With --from the draft is loaded from a
YAML file and written back when the interface closes.

With --pdf the draft is exported without the interface.

Example:
  psiq history --from draft.yaml --pdf history.pdf`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVarP(&historyFrom, "from", "f", "", "YAML draft to load (and save on exit)")
	historyCmd.Flags().StringVar(&historyPDF, "pdf", "", "Export the history (.pdf, .md or .txt)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if historyPDF != "" {
		if historyFrom == "" {
			return fmt.Errorf("--pdf requires --from")
		}
		record, err := history.LoadFile(historyFrom, time.Now())
		if err != nil {
			return err
		}
		return exportDocument(historyPDF, record.Document())
	}

	var record *history.Record
	if historyFrom != "" {
		loaded, err := history.LoadFile(historyFrom, time.Now())
		if err != nil {
			return err
		}
		record = loaded
	}

	var page *ui.HistoryPage
	err := runTUI(func(env *ui.Env) ui.Page {
		page = ui.NewHistoryPage(env, record)
		return page
	})
	if err != nil {
		return err
	}

	if historyFrom != "" && page != nil {
		if err := history.SaveFile(historyFrom, page.Record()); err != nil {
			return err
		}
		logger.Info("draft saved", zap.String("path", historyFrom))
		fmt.Printf("Saved %s\n", historyFrom)
	}
	return nil
}
