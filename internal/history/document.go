package history

import (
	"strings"

	"psiquitools/internal/document"
)

const (
	// Title heads the printed history.
	Title = "Psychiatric Clinical History"
	// NotSpecified replaces empty fields in the printed history.
	NotSpecified = "Not specified"
)

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return NotSpecified
	}
	return s
}

// Document lays the record out in its fixed print order. Empty fields read
// NotSpecified.
func (r *Record) Document() *document.Document {
	doc := &document.Document{Title: Title}

	heading := func(text string) {
		doc.Add(document.Block{Style: document.StyleHeading, Text: text})
	}
	label := func(text string) {
		doc.Add(document.Block{Style: document.StyleLabel, Text: text})
	}
	para := func(text string) {
		doc.Add(document.Block{Text: orPlaceholder(text), SpaceAfter: 1})
	}
	prefixed := func(prefix, text string) {
		doc.Add(document.Block{Text: prefix + ": " + orPlaceholder(text), SpaceAfter: 1})
	}

	doc.Add(document.Block{Style: document.StyleTitle, Text: strings.ToUpper(Title), SpaceAfter: 1})
	doc.Add(document.Block{Text: "Date and time: " + orPlaceholder(r.Identification.Timestamp), SpaceAfter: 1})

	heading("1. IDENTIFICATION")
	prefixed("Identifier", r.Identification.Identifier)

	heading("2. CHIEF COMPLAINT")
	para(r.ChiefComplaint)

	a := r.Antecedents
	heading("3. PERSONAL ANTECEDENTS")
	label("MEDICAL AND SURGICAL HISTORY:")
	para(a.MedicalSurgical)
	prefixed("Allergies", a.Allergies)
	label("PERSONAL MENTAL HEALTH HISTORY:")
	para(a.MentalHealth)
	prefixed("Psychiatric admissions", a.PsychiatricAdmissions)
	prefixed("Suicide attempts", a.SuicideAttempts)
	label("Usual treatment:")
	para(a.UsualTreatment)
	label("FAMILY MENTAL HEALTH HISTORY:")
	para(a.FamilyMentalHealth)
	label("Substance use:")
	para(a.SubstanceUse)

	heading("PSYCHOBIOGRAPHY")
	para(r.Psychobiography)

	heading("4. PRESENT ILLNESS")
	para(r.PresentIllness)

	heading("5. MENTAL STATUS EXAMINATION")
	para(r.MentalStatus)

	heading("6. CLINICAL JUDGMENT")
	para(r.ClinicalJudgment)

	heading("7. MANAGEMENT PLAN")
	para(r.ManagementPlan)

	return doc
}
