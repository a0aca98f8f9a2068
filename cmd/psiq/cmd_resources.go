package main

import (
	"fmt"
	"strings"

	"psiquitools/cmd/psiq/ui"
	"psiquitools/internal/catalog"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var resourcesPlain bool

// resourcesCmd searches the psychoeducation catalog
var resourcesCmd = &cobra.Command{
	Use:   "resources [query]",
	Short: "Browse psychoeducation resources",
	Long: `Opens the resource catalog. With a query the matching resources are
printed instead. --plain prints tab-separated lines
(category, audience, title, url) for scripting.`,
	RunE: runResources,
}

func init() {
	resourcesCmd.Flags().BoolVar(&resourcesPlain, "plain", false, "Print tab-separated results")
}

func runResources(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	if query == "" && !resourcesPlain {
		return runTUI(func(env *ui.Env) ui.Page { return ui.NewResourcesPage(env, "") })
	}

	results := catalog.Search(query)
	if resourcesPlain {
		fmt.Print(catalog.Plain(results))
		return nil
	}

	md := catalog.Markdown(results)
	out, err := glamour.Render(md, "auto")
	if err != nil {
		out = md
	}
	fmt.Print(out)
	return nil
}
