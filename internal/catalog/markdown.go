package catalog

import (
	"fmt"
	"strings"
)

// NoResults is shown when a search matches nothing.
const NoResults = "No resources found."

// Markdown renders categories for glamour display.
func Markdown(cats []Category) string {
	if len(cats) == 0 {
		return "_" + NoResults + "_\n"
	}

	var sb strings.Builder
	for _, c := range cats {
		fmt.Fprintf(&sb, "## %s %s\n\n", c.Icon, c.Title)
		fmt.Fprintf(&sb, "%s\n\n", c.Description)
		for _, r := range c.Resources {
			fmt.Fprintf(&sb, "- **%s** `%s`", r.Title, r.Audience)
			if r.Description != "" {
				fmt.Fprintf(&sb, " %s", r.Description)
			}
			fmt.Fprintf(&sb, " (%s)\n", r.URL)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Plain renders categories as tab-separated lines: category id, audience,
// title, url.
func Plain(cats []Category) string {
	var sb strings.Builder
	for _, c := range cats {
		for _, r := range c.Resources {
			fmt.Fprintf(&sb, "%s\t%s\t%s\t%s\n", c.ID, r.Audience, r.Title, r.URL)
		}
	}
	return sb.String()
}
