// Package catalog is the static psychoeducation library and its search.
package catalog

import (
	"strings"

	"psiquitools/internal/logging"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
)

// Audience is who a resource is written for.
type Audience string

const (
	Patient Audience = "Patient"
	Family  Audience = "Family"
)

// Resource is one printable document. URLs are never fetched.
type Resource struct {
	Title       string
	Audience    Audience
	URL         string
	Description string
}

// Category groups resources by topic.
type Category struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Resources   []Resource
}

var categories = []Category{
	{
		ID:          "mood",
		Title:       "Depression and Mood Disorders",
		Description: "Major depression, bipolar disorder and dysthymia.",
		Icon:        "☺",
		Resources: []Resource{
			{
				Title:       "Understanding Depression",
				Audience:    Patient,
				URL:         "/pdfs/depresion/depresion.pdf",
				Description: "Basic guide to symptoms and treatment.",
			},
			{
				Title:       "Safety plan - suicide",
				Audience:    Patient,
				URL:         "/pdfs/depresion/plan-seguridad-crisis.pdf",
				Description: "Crisis safety plan",
			},
		},
	},
	{
		ID:          "anxiety",
		Title:       "Anxiety Disorders",
		Description: "Generalised anxiety, panic attacks and phobias.",
		Icon:        "⚡",
		Resources: []Resource{
			{
				Title:       "Panic Attack Management",
				Audience:    Patient,
				URL:         "/pdfs/ansiedad/ansiedad.pdf",
				Description: "Breathing and grounding techniques.",
			},
		},
	},
	{
		ID:          "psychosis",
		Title:       "Schizophrenia and Psychosis",
		Description: "Information for patients and families.",
		Icon:        "◎",
		Resources: []Resource{
			{Title: "What is psychosis?", Audience: Patient, URL: "/pdfs/psicosis/psicosis.pdf"},
			{Title: "Understanding schizophrenia", Audience: Patient, URL: "/pdfs/psicosis/esquizofrenia.pdf"},
		},
	},
	{
		ID:          "ocd",
		Title:       "Obsessive-Compulsive Disorder",
		Description: "OCD and related disorders.",
		Icon:        "✓",
		Resources: []Resource{
			{Title: "Understanding OCD", Audience: Patient, URL: "/pdfs/toc/toc.pdf"},
		},
	},
	{
		ID:          "personality",
		Title:       "Personality Disorders",
		Description: "With a focus on borderline personality disorder.",
		Icon:        "◇",
		Resources: []Resource{
			{Title: "Understanding BPD", Audience: Patient, URL: "/pdfs/tlp/tlp.pdf"},
		},
	},
	{
		ID:          "addictions",
		Title:       "Addictions and Dual Diagnosis",
		Description: "Substance use and relapse.",
		Icon:        "◈",
		Resources: []Resource{
			{Title: "Relapse prevention", Audience: Patient, URL: "/pdfs/adicciones/prevencion-recaidas.pdf"},
		},
	},
	{
		ID:          "sleep",
		Title:       "Sleep and Sleep Hygiene",
		Description: "Insomnia and healthy habits.",
		Icon:        "☾",
		Resources: []Resource{
			{
				Title:       "Sleep Hygiene Guidelines",
				Audience:    Patient,
				URL:         "/pdfs/sueno/higiene-sueno.pdf",
				Description: "Practical recommendations to improve sleep.",
			},
		},
	},
}

func clone(c Category) Category {
	c.Resources = append([]Resource(nil), c.Resources...)
	return c
}

// All returns a copy of the full catalog.
func All() []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = clone(c)
	}
	return out
}

// Count is the number of resources across all categories.
func Count(cats []Category) int {
	n := 0
	for _, c := range cats {
		n += len(c.Resources)
	}
	return n
}

type matcher struct {
	fold   cases.Caser
	needle string
}

func newMatcher(query string) *matcher {
	m := &matcher{fold: cases.Fold()}
	m.needle = m.fold.String(query)
	return m
}

func (m *matcher) match(s string) bool {
	return s != "" && strings.Contains(m.fold.String(s), m.needle)
}

// Search filters the catalog by a case-insensitive substring. A category
// whose own title or description matches is kept whole; otherwise it is
// narrowed to its matching resources and dropped when none match. A blank
// query returns everything.
func Search(query string) []Category {
	query = strings.TrimSpace(query)
	if query == "" {
		return All()
	}

	m := newMatcher(query)
	var out []Category
	for _, c := range categories {
		if m.match(c.Title) || m.match(c.Description) {
			out = append(out, clone(c))
			continue
		}
		var hits []Resource
		for _, r := range c.Resources {
			if m.match(r.Title) || m.match(r.Description) {
				hits = append(hits, r)
			}
		}
		if len(hits) > 0 {
			c.Resources = hits
			out = append(out, c)
		}
	}

	logging.Get(logging.CategoryCatalog).Debug("search",
		zap.String("query", query),
		zap.Int("categories", len(out)),
		zap.Int("resources", Count(out)))
	return out
}
