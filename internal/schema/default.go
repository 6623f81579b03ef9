package schema

// Attribute ids referenced by partner preferences.
const (
	MaritalStatus = "maritalStatus"
	Religion      = "religion"
	Caste         = "caste"
	MotherTongue  = "motherTongue"
	Occupation    = "occupation"
	Education     = "education"
)

// Default returns the built-in matrimony catalogue used when no attributes are configured.
func Default() *Catalogue {
	return &Catalogue{Attributes: []Attribute{
		{
			ID:      MaritalStatus,
			Label:   "Marital Status",
			Type:    TypeDropdown,
			Options: []string{"Never Married", "Divorced", "Widowed", "Awaiting Divorce"},
			Core:    true,
		},
		{
			ID:      Religion,
			Label:   "Religion",
			Type:    TypeDropdown,
			Options: []string{"Hindu", "Muslim", "Christian", "Sikh", "Jain", "Buddhist", "Parsi", "Other"},
			Core:    true,
		},
		{ID: Caste, Label: "Caste", Type: TypeText, Core: true},
		{
			ID:      MotherTongue,
			Label:   "Mother Tongue",
			Type:    TypeDropdown,
			Options: []string{"Hindi", "Tamil", "Telugu", "Kannada", "Malayalam", "Marathi", "Bengali", "Gujarati", "Punjabi", "Urdu", "English"},
			Core:    true,
		},
		{ID: Occupation, Label: "Occupation", Type: TypeText, Core: true},
		{ID: Education, Label: "Highest Education", Type: TypeText, Core: true},
		{ID: "height", Label: "Height", Type: TypeText},
		{
			ID:      "diet",
			Label:   "Diet",
			Type:    TypeDropdown,
			Options: []string{"Vegetarian", "Non-Vegetarian", "Eggetarian", "Vegan"},
		},
		{ID: "smoking", Label: "Smoking", Type: TypeDropdown, Options: []string{"No", "Occasionally", "Yes"}},
		{ID: "drinking", Label: "Drinking", Type: TypeDropdown, Options: []string{"No", "Occasionally", "Yes"}},
		{ID: "familyType", Label: "Family Type", Type: TypeDropdown, Options: []string{"Joint", "Nuclear"}},
		{ID: "hobbies", Label: "Hobbies", Type: TypeText},
	}}
}
