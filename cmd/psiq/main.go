package main

import (
	"fmt"
	"os"
	"strings"

	"psiquitools/cmd/psiq/ui"
	"psiquitools/internal/clipboard"
	"psiquitools/internal/config"
	"psiquitools/internal/document"
	"psiquitools/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger

	// newClipboard returns the writer used by --copy.
	newClipboard = func() clipboard.Writer {
		if cfg == nil || !cfg.Clipboard.Enabled {
			return clipboard.Discard
		}
		return clipboard.System()
	}
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "psiq",
	Short: "psiqui.tools - psychiatry tools for the terminal",
	Long: `psiq is a set of psychiatry tools for clinicians: a structured clinical
history, a mental status examination composer, validated scales, a
timeline of antecedents and a psychoeducation catalog.

Nothing is stored unless you export it. Do not enter real patient
identifying data.

Run without arguments to open the home menu.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		if verbose {
			loaded.Logging.DebugMode = true
			loaded.Logging.Level = "debug"
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", path, err)
		}
		if err := logging.Initialize(loaded.Logging); err != nil {
			return err
		}
		cfg = loaded
		logger = logging.Get(logging.CategoryBoot)
		logger.Debug("command started", zap.String("command", cmd.CommandPath()), zap.String("config", path))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		logging.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(nil)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to the log file")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: .psiq/config.yaml)")

	rootCmd.AddCommand(scaleCmd)
	rootCmd.AddCommand(mseCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(timelineCmd)
	rootCmd.AddCommand(resourcesCmd)
	rootCmd.AddCommand(toolsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runTUI opens the interactive interface. open builds the first tool page;
// nil starts on the home menu.
func runTUI(open func(env *ui.Env) ui.Page) error {
	env := ui.NewEnv(cfg)
	app := ui.NewApp(env)
	if open != nil {
		app = ui.NewAppWithPage(env, open(env))
	}
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("interface error: %w", err)
	}
	return nil
}

// splitAssignment parses "key=value" flag values.
func splitAssignment(flag, s string) (string, string, error) {
	k, v, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(k) == "" {
		return "", "", fmt.Errorf("--%s %q: expected key=value", flag, s)
	}
	return strings.TrimSpace(k), v, nil
}

// exportDocument writes doc under the configured output directory.
func exportDocument(path string, doc *document.Document) error {
	resolved := cfg.ResolveOutput(path)
	if err := document.WriteFile(resolved, cfg.Document, doc); err != nil {
		return err
	}
	fmt.Printf("Saved %s\n", resolved)
	return nil
}
