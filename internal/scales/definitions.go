package scales

const supportNote = "Clinical support scale. It does not replace professional medical judgment."

// frequency is the shared answer set of the PHQ-9 and GAD-7 questionnaires.
var frequency = []Option{
	{Value: 0, Label: "Not at all"},
	{Value: 1, Label: "Several days"},
	{Value: 2, Label: "More than half the days"},
	{Value: 3, Label: "Nearly every day"},
}

func frequencyItem(id, prompt string) Item {
	return Item{ID: id, Prompt: prompt, Options: frequency}
}

// CIWAAr is the Clinical Institute Withdrawal Assessment for Alcohol, revised.
var CIWAAr = &Scale{
	ID:          "ciwa-ar",
	Name:        "CIWA-Ar",
	Subtitle:    "Alcohol withdrawal assessment",
	Description: "Severity of alcohol withdrawal syndrome across ten observed and reported signs.",
	Note:        supportNote,
	Items: []Item{
		{ID: "nausea", Prompt: "Nausea and vomiting", Options: []Option{
			{0, "No nausea and no vomiting"},
			{1, "Mild nausea, no vomiting"},
			{4, "Intermittent nausea with dry heaves"},
			{7, "Constant nausea and frequent vomiting"},
		}},
		{ID: "tremor", Prompt: "Tremor", Options: []Option{
			{0, "No tremor"},
			{1, "Not visible, felt fingertip to fingertip"},
			{4, "Moderate with arms extended"},
			{7, "Severe even with arms not extended"},
		}},
		{ID: "sweats", Prompt: "Paroxysmal sweats", Options: []Option{
			{0, "No sweat visible"},
			{1, "Palms barely moist"},
			{4, "Beads of sweat on forehead"},
			{7, "Drenching sweats"},
		}},
		{ID: "anxiety", Prompt: "Anxiety", Options: []Option{
			{0, "At ease"},
			{1, "Mildly anxious"},
			{4, "Moderately anxious"},
			{7, "Acute panic"},
		}},
		{ID: "agitation", Prompt: "Agitation", Options: []Option{
			{0, "Normal activity"},
			{1, "Somewhat more than normal activity"},
			{4, "Fidgety and restless"},
			{7, "Paces back and forth"},
		}},
		{ID: "tactile", Prompt: "Tactile disturbances", Options: []Option{
			{0, "None"},
			{2, "Mild itching or pins and needles"},
			{4, "Moderate tactile hallucinations"},
			{7, "Continuous tactile hallucinations"},
		}},
		{ID: "auditory", Prompt: "Auditory disturbances", Options: []Option{
			{0, "None"},
			{2, "Mild harshness or ability to frighten"},
			{4, "Moderate auditory hallucinations"},
			{7, "Continuous auditory hallucinations"},
		}},
		{ID: "visual", Prompt: "Visual disturbances", Options: []Option{
			{0, "None"},
			{2, "Mild sensitivity to light"},
			{4, "Moderate visual hallucinations"},
			{7, "Continuous visual hallucinations"},
		}},
		{ID: "headache", Prompt: "Headache", Options: []Option{
			{0, "Not present"},
			{2, "Mild"},
			{4, "Moderate"},
			{7, "Extremely severe"},
		}},
		{ID: "orientation", Prompt: "Orientation and clouding of sensorium", Options: []Option{
			{0, "Oriented"},
			{1, "Uncertain about date"},
			{2, "Mildly disoriented"},
			{4, "Disoriented to person or place"},
		}},
	},
	Bands: []Band{
		{Max: 9, Label: "Mild", Action: "Clinical observation"},
		{Max: 19, Label: "Moderate", Action: "Consider benzodiazepines"},
		{Max: OpenEnded, Label: "Severe", Action: "High risk, urgent treatment"},
	},
}

// PHQ9 is the Patient Health Questionnaire depression module.
var PHQ9 = &Scale{
	ID:           "phq-9",
	Name:         "PHQ-9",
	Subtitle:     "Depression screening and follow-up",
	Description:  "Nine-item self-report of depressive symptoms over the last two weeks.",
	Instructions: "Over the last 2 weeks, how often have you been bothered by any of the following problems?",
	Note:         supportNote,
	Items: []Item{
		frequencyItem("interest", "Little interest or pleasure in doing things"),
		frequencyItem("depressed", "Feeling down, depressed, or hopeless"),
		frequencyItem("sleep", "Trouble falling or staying asleep, or sleeping too much"),
		frequencyItem("energy", "Feeling tired or having little energy"),
		frequencyItem("appetite", "Poor appetite or overeating"),
		frequencyItem("failure", "Feeling bad about yourself, or that you are a failure"),
		frequencyItem("concentration", "Trouble concentrating on things"),
		frequencyItem("psychomotor", "Moving or speaking slowly, or being restless, noticeable to others"),
		frequencyItem("suicide", "Thoughts that you would be better off dead or of hurting yourself"),
	},
	Bands: []Band{
		{Max: 4, Label: "Minimal or none", Action: "Routine follow-up"},
		{Max: 9, Label: "Mild", Action: "Psychoeducation and follow-up"},
		{Max: 14, Label: "Moderate", Action: "Consider psychological and/or pharmacological treatment"},
		{Max: 19, Label: "Moderately severe", Action: "Active treatment and close follow-up"},
		{Max: OpenEnded, Label: "Severe", Action: "Immediate clinical intervention and specialist assessment"},
	},
	Advisory: &Advisory{
		ItemID: "suicide",
		Title:  "Clinical attention",
		Message: "A positive answer requires immediate suicide risk assessment " +
			"(active or passive ideation, planning, means, protective factors).",
	},
}

// GAD7 is the Generalized Anxiety Disorder questionnaire.
var GAD7 = &Scale{
	ID:           "gad-7",
	Name:         "GAD-7",
	Subtitle:     "Anxiety screening",
	Description:  "Seven-item self-report of generalized anxiety symptoms over the last two weeks.",
	Instructions: "Over the last 2 weeks, how often have you been bothered by the following problems?",
	Note:         supportNote,
	Items: []Item{
		frequencyItem("nervous", "Feeling nervous, anxious, or on edge"),
		frequencyItem("control", "Not being able to stop or control worrying"),
		frequencyItem("worry", "Worrying too much about different things"),
		frequencyItem("relaxing", "Trouble relaxing"),
		frequencyItem("restless", "Being so restless that it is hard to sit still"),
		frequencyItem("irritable", "Becoming easily annoyed or irritable"),
		frequencyItem("afraid", "Feeling afraid as if something awful might happen"),
	},
	Bands: []Band{
		{Max: 4, Label: "Minimal", Action: "Routine follow-up"},
		{Max: 9, Label: "Mild", Action: "Psychoeducation and watchful waiting"},
		{Max: 14, Label: "Moderate", Action: "Consider psychological and/or pharmacological treatment"},
		{Max: OpenEnded, Label: "Severe", Action: "Active treatment and specialist assessment"},
	},
}
