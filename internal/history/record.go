// Package history holds the structured psychiatric history record, the
// step-by-step wizard over it, and its printable document.
package history

import (
	"errors"
	"fmt"
	"time"
)

// TimestampLayout is how the identification timestamp is stamped.
const TimestampLayout = "2006-01-02 15:04"

// ErrUnknownField is returned for a field key the record does not define.
var ErrUnknownField = errors.New("unknown history field")

type Identification struct {
	Identifier string `yaml:"identifier"`
	Timestamp  string `yaml:"timestamp"`
}

type Antecedents struct {
	MedicalSurgical       string `yaml:"medical_surgical"`
	Allergies             string `yaml:"allergies"`
	MentalHealth          string `yaml:"mental_health"`
	PsychiatricAdmissions string `yaml:"psychiatric_admissions"`
	SuicideAttempts       string `yaml:"suicide_attempts"`
	UsualTreatment        string `yaml:"usual_treatment"`
	FamilyMentalHealth    string `yaml:"family_mental_health"`
	SubstanceUse          string `yaml:"substance_use"`
}

// Record is one psychiatric history. All fields are free text.
type Record struct {
	Identification   Identification `yaml:"identification"`
	ChiefComplaint   string         `yaml:"chief_complaint"`
	PresentIllness   string         `yaml:"present_illness"`
	Antecedents      Antecedents    `yaml:"antecedents"`
	Psychobiography  string         `yaml:"psychobiography"`
	MentalStatus     string         `yaml:"mental_status"`
	ClinicalJudgment string         `yaml:"clinical_judgment"`
	ManagementPlan   string         `yaml:"management_plan"`
}

// NewRecord returns an empty record stamped with now.
func NewRecord(now time.Time) *Record {
	return &Record{Identification: Identification{Timestamp: now.Format(TimestampLayout)}}
}

// Field describes one editable field.
type Field struct {
	Key       string
	Label     string
	Multiline bool
	ReadOnly  bool
	ref       func(*Record) *string
}

// Fields lists every field of a record in form order.
var Fields = []Field{
	{Key: "identifier", Label: "Identifier", ref: func(r *Record) *string { return &r.Identification.Identifier }},
	{Key: "timestamp", Label: "Date and time", ReadOnly: true, ref: func(r *Record) *string { return &r.Identification.Timestamp }},
	{Key: "chief_complaint", Label: "Chief complaint", Multiline: true, ref: func(r *Record) *string { return &r.ChiefComplaint }},
	{Key: "present_illness", Label: "Present illness", Multiline: true, ref: func(r *Record) *string { return &r.PresentIllness }},
	{Key: "medical_surgical", Label: "Medical and surgical history", Multiline: true, ref: func(r *Record) *string { return &r.Antecedents.MedicalSurgical }},
	{Key: "allergies", Label: "Allergies", ref: func(r *Record) *string { return &r.Antecedents.Allergies }},
	{Key: "mental_health", Label: "Personal mental health history", Multiline: true, ref: func(r *Record) *string { return &r.Antecedents.MentalHealth }},
	{Key: "psychiatric_admissions", Label: "Psychiatric admissions", Multiline: true, ref: func(r *Record) *string { return &r.Antecedents.PsychiatricAdmissions }},
	{Key: "suicide_attempts", Label: "Suicide attempts", Multiline: true, ref: func(r *Record) *string { return &r.Antecedents.SuicideAttempts }},
	{Key: "usual_treatment", Label: "Usual treatment", Multiline: true, ref: func(r *Record) *string { return &r.Antecedents.UsualTreatment }},
	{Key: "family_mental_health", Label: "Family mental health history", Multiline: true, ref: func(r *Record) *string { return &r.Antecedents.FamilyMentalHealth }},
	{Key: "substance_use", Label: "Substance use", Multiline: true, ref: func(r *Record) *string { return &r.Antecedents.SubstanceUse }},
	{Key: "psychobiography", Label: "Psychobiography", Multiline: true, ref: func(r *Record) *string { return &r.Psychobiography }},
	{Key: "mental_status", Label: "Mental status examination", Multiline: true, ref: func(r *Record) *string { return &r.MentalStatus }},
	{Key: "clinical_judgment", Label: "Clinical judgment", Multiline: true, ref: func(r *Record) *string { return &r.ClinicalJudgment }},
	{Key: "management_plan", Label: "Management plan", Multiline: true, ref: func(r *Record) *string { return &r.ManagementPlan }},
}

// LookupField returns the field with the given key.
func LookupField(key string) (Field, bool) {
	for _, f := range Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Get returns the value of the field with the given key.
func (r *Record) Get(key string) (string, error) {
	f, ok := LookupField(key)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
	return *f.ref(r), nil
}

// Set replaces the value of the field with the given key.
func (r *Record) Set(key, value string) error {
	f, ok := LookupField(key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
	*f.ref(r) = value
	return nil
}

// Step is one page of the wizard.
type Step struct {
	Title  string
	Notice string
	Fields []string
}

// Steps is the wizard sequence. Each step owns a disjoint set of fields.
var Steps = []Step{
	{
		Title:  "Identification",
		Notice: "Do not enter real patient identifying data.",
		Fields: []string{"identifier", "timestamp"},
	},
	{Title: "Chief complaint", Fields: []string{"chief_complaint"}},
	{Title: "Present illness", Fields: []string{"present_illness"}},
	{
		Title: "Personal antecedents",
		Fields: []string{
			"medical_surgical",
			"allergies",
			"mental_health",
			"psychiatric_admissions",
			"suicide_attempts",
			"usual_treatment",
			"family_mental_health",
			"substance_use",
		},
	},
	{Title: "Psychobiography", Fields: []string{"psychobiography"}},
	{Title: "Mental status", Fields: []string{"mental_status"}},
	{Title: "Clinical judgment", Fields: []string{"clinical_judgment"}},
	{Title: "Management plan", Fields: []string{"management_plan"}},
}
