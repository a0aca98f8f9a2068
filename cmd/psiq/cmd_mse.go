package main

import (
	"fmt"

	"psiquitools/cmd/psiq/ui"
	"psiquitools/internal/mentalstatus"

	"github.com/spf13/cobra"
)

var (
	mseSelect []string
	mseText   []string
	msePDF    string
)

// mseCmd composes a mental status examination
var mseCmd = &cobra.Command{
	Use:   "mse",
	Short: "Compose a mental status examination",
	Long: `Opens the mental status examination composer.

With --select or --text the narrative is composed without the interface.
Sections: consciousness, attitude, appearance, psychomotor, substances,
speech, mood, thought, risk, biorhythms, judgment.

Example:
  psiq mse --select consciousness=Conscious --select mood=Euthymic --text speech="Soft voice" --pdf mse.pdf`,
	Args: cobra.NoArgs,
	RunE: runMSE,
}

func init() {
	mseCmd.Flags().StringArrayVarP(&mseSelect, "select", "s", nil, "Select a phrase as section=phrase (repeatable)")
	mseCmd.Flags().StringArrayVarP(&mseText, "text", "t", nil, "Free text as section=text (repeatable)")
	mseCmd.Flags().StringVar(&msePDF, "pdf", "", "Export the examination (.pdf, .md or .txt)")
}

func runMSE(cmd *cobra.Command, args []string) error {
	if len(mseSelect) == 0 && len(mseText) == 0 && msePDF == "" {
		return runTUI(func(env *ui.Env) ui.Page { return ui.NewMSEPage(env, nil) })
	}

	exam := mentalstatus.New()
	for _, s := range mseSelect {
		section, phrase, err := splitAssignment("select", s)
		if err != nil {
			return err
		}
		if exam.Selected(section, phrase) {
			continue
		}
		if err := exam.Toggle(section, phrase); err != nil {
			return err
		}
	}
	for _, s := range mseText {
		section, text, err := splitAssignment("text", s)
		if err != nil {
			return err
		}
		if err := exam.SetText(section, text); err != nil {
			return err
		}
	}

	if narrative := exam.Narrative(); narrative != "" {
		fmt.Println(narrative)
	} else {
		fmt.Println(mentalstatus.NoData)
	}

	if msePDF != "" {
		return exportDocument(msePDF, exam.Document())
	}
	return nil
}
