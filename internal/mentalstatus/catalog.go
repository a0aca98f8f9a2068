package mentalstatus

// Section is one heading of the examination with its fixed phrase catalog.
type Section struct {
	ID      string
	Title   string
	Phrases []string
}

// Sections is the examination layout in narrative order.
var Sections = []Section{
	{
		ID:    "consciousness",
		Title: "Consciousness and orientation",
		Phrases: []string{
			"Conscious",
			"Lucid",
			"Drowsy",
			"Globally oriented",
			"Partially oriented",
			"Disoriented",
		},
	},
	{
		ID:    "attitude",
		Title: "Attitude and approach",
		Phrases: []string{
			"Approachable",
			"Cooperative",
			"Partially cooperative",
			"Reticent",
			"Hostile",
			"Good rapport",
			"Poor eye contact",
		},
	},
	{
		ID:    "appearance",
		Title: "Appearance and behaviour",
		Phrases: []string{
			"Appropriate appearance",
			"Unkempt appearance",
			"Behaviourally appropriate",
			"Disorganised behaviour",
		},
	},
	{
		ID:    "psychomotor",
		Title: "Psychomotor activity",
		Phrases: []string{
			"No psychomotor disturbance",
			"Psychomotor restlessness",
			"Agitation",
			"Psychomotor slowing",
		},
	},
	{
		ID:    "substances",
		Title: "Substance use",
		Phrases: []string{
			"No signs of intoxication or withdrawal",
			"Signs of intoxication",
			"Signs of withdrawal",
			"Signs of medication impregnation",
		},
	},
	{
		ID:    "speech",
		Title: "Speech and discourse",
		Phrases: []string{
			"Speech preserved",
			"Spontaneous discourse",
			"Prompted discourse",
			"Coherent",
			"Well structured",
			"Circumstantial",
			"Tangential",
			"Logorrhoea",
			"Verbosity",
			"Pressured speech",
			"Hypophonic",
		},
	},
	{
		ID:    "mood",
		Title: "Mood and affect",
		Phrases: []string{
			"Euthymic",
			"Mood reactive to current situation",
			"Low mood",
			"Anxious",
			"Irritable",
			"Labile",
			"Congruent affect",
			"Flattened affect",
			"Good affective resonance",
		},
	},
	{
		ID:    "thought",
		Title: "Thought",
		Phrases: []string{
			"No thought disturbance",
			"Delusional ideas",
			"Ideas of reference",
			"Obsessive ideas",
			"Persecutory ideas",
			"Ruminations",
			"Impulse phobias",
		},
	},
	{
		ID:    "risk",
		Title: "Self-harm and aggression risk",
		Phrases: []string{
			"No self- or hetero-aggression",
			"No current suicidal ideation",
			"Passive death wishes, without planning or structure",
			"Suicidal ideation",
			"Structured ideation",
			"Suicide planning",
			"Deterrents present",
			"Protective factors present",
			"Verbalises future-oriented plans",
		},
	},
	{
		ID:    "biorhythms",
		Title: "Biorhythms",
		Phrases: []string{
			"Biorhythms preserved",
			"Biorhythms altered",
			"Initial insomnia",
			"Middle insomnia",
			"Mixed insomnia",
			"Non-restorative sleep",
			"Appetite preserved",
			"Reduced appetite",
			"Hyperphagia",
		},
	},
	{
		ID:    "judgment",
		Title: "Judgment and insight",
		Phrases: []string{
			"Reality testing preserved",
			"Reality testing impaired",
			"Insight present",
			"Partial insight",
			"Insight absent",
		},
	},
}

// Lookup returns the section with the given id.
func Lookup(id string) (Section, bool) {
	for _, s := range Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// Has reports whether phrase is in the section catalog.
func (s Section) Has(phrase string) bool {
	for _, p := range s.Phrases {
		if p == phrase {
			return true
		}
	}
	return false
}
