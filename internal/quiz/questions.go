package quiz

// DefaultQuestions returns the standard compatibility questionnaire.
func DefaultQuestions() []Question {
	return []Question{
		{
			Question: "What does your ideal weekend look like?",
			Options:  []string{"Relaxing at home", "Outdoor adventure", "Time with family", "Meeting friends"},
		},
		{
			Question: "Where would you like to live after marriage?",
			Options:  []string{"With my parents", "Close to family", "A new city", "Abroad"},
		},
		{
			Question: "How do you handle disagreements?",
			Options:  []string{"Talk it out right away", "Take time to cool off", "Seek family advice", "Let it go"},
		},
		{
			Question: "What matters most in a partner?",
			Options:  []string{"Kindness", "Ambition", "Humour", "Shared values"},
		},
		{
			Question: "How do you prefer to celebrate festivals?",
			Options:  []string{"Traditional rituals", "Big gatherings", "Quiet celebration", "Travelling"},
		},
	}
}
