package main

import (
	"fmt"

	"psiquitools/cmd/psiq/ui"
	"psiquitools/internal/toolkit"

	"github.com/spf13/cobra"
)

// toolsCmd lists the toolkit
var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the available tools",
	Args:  cobra.NoArgs,
	RunE:  runTools,
}

func runTools(cmd *cobra.Command, args []string) error {
	styles := ui.NewStyles(ui.ThemeFor(cfg.UI.Theme))

	table := ui.NewToolTable(toolkit.Tagline, toolkit.Tools(), cfg.UI.WordWrap)
	fmt.Print(table.View(styles))
	fmt.Println(toolkit.PrivacyNotice)
	fmt.Println(toolkit.Disclaimer)
	return nil
}
