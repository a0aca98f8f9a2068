// Package toolkit lists the tools offered on the home menu.
package toolkit

import "strings"

// Tool is one entry of the home menu.
type Tool struct {
	ID          string
	Title       string
	Description string
	// Command is the psiq subcommand that opens the tool directly.
	Command string
}

const (
	Tagline = "Clinical tools for psychiatry residents"

	PrivacyTitle  = "Privacy and security"
	PrivacyNotice = "All tools run locally on your device. No clinical information is stored, " +
		"transmitted or saved. Even so, avoid entering patient identifying data."

	Disclaimer = "Clinical support tool. It does not replace professional medical judgment."
)

var tools = []Tool{
	{
		ID:          "history",
		Title:       "Emergency clinical history",
		Description: "Structured format for a basic psychiatric assessment, with PDF report generation.",
		Command:     "history",
	},
	{
		ID:          "mse",
		Title:       "Mental status examination",
		Description: "Checklist tool to compose a structured mental status examination.",
		Command:     "mse",
	},
	{
		ID:          "scales",
		Title:       "Clinical scales",
		Description: "Calculators for scales in frequent psychiatric use.",
		Command:     "scale",
	},
	{
		ID:          "resources",
		Title:       "Psychoeducation resources",
		Description: "Educational material for patients and families, ready to print and hand out.",
		Command:     "resources",
	},
	{
		ID:          "timeline",
		Title:       "Antecedent organiser",
		Description: "Enter the events of the patient's psychiatric history and they are sorted chronologically.",
		Command:     "timeline",
	},
}

// Tools returns the home menu entries in display order.
func Tools() []Tool {
	return append([]Tool(nil), tools...)
}

// Lookup finds a tool by id or command.
func Lookup(name string) (Tool, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range tools {
		if t.ID == name || t.Command == name {
			return t, true
		}
	}
	return Tool{}, false
}
