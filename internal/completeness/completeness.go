// Package completeness scores how much of a profile has been filled in.
package completeness

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/ranjithg298/matrimony-sub001/internal/profile"
	"github.com/ranjithg298/matrimony-sub001/internal/schema"
)

const (
	// MinBioLength is exclusive: a bio must be longer than this many characters.
	MinBioLength      = 50
	MinInterests      = 3
	MinApprovedPhotos = 2
	MaxSuggestions    = 3

	baselineChecks = 3
)

const (
	SuggestBio       = "Write a bio of more than 50 characters so others can get to know you."
	SuggestInterests = "Add at least 3 interests to find people who share them."
	SuggestGallery   = "Upload at least 2 photos and wait for them to be approved."
)

type Result struct {
	Percent     int      `json:"percent"`
	Earned      int      `json:"earned"`
	Total       int      `json:"total"`
	Suggestions []string `json:"suggestions"`
}

// Score computes the completeness percentage of p against the catalogue and up
// to three suggestions ordered by priority.
func Score(p *profile.Profile, catalogue *schema.Catalogue) Result {
	if p == nil {
		p = &profile.Profile{}
	}

	core := catalogue.Core()
	nonCore := catalogue.NonCore()
	total := baselineChecks + len(core) + len(nonCore)

	earned := 0
	suggestions := make([]string, 0, 5)

	if utf8.RuneCountInString(p.Bio) > MinBioLength {
		earned++
	} else {
		suggestions = append(suggestions, SuggestBio)
	}

	if p.DistinctInterests() >= MinInterests {
		earned++
	} else {
		suggestions = append(suggestions, SuggestInterests)
	}

	if p.ApprovedPhotos() >= MinApprovedPhotos {
		earned++
	} else {
		suggestions = append(suggestions, SuggestGallery)
	}

	coreEarned, missingCore := countFilled(p, core)
	earned += coreEarned
	if missingCore != nil {
		suggestions = append(suggestions, fmt.Sprintf("Fill in your %s, it is required for matching.", missingCore.Label))
	}

	nonCoreEarned, missingNonCore := countFilled(p, nonCore)
	earned += nonCoreEarned
	if missingNonCore != nil {
		suggestions = append(suggestions, fmt.Sprintf("Add your %s to make your profile stand out.", missingNonCore.Label))
	}

	if len(suggestions) > MaxSuggestions {
		suggestions = suggestions[:MaxSuggestions]
	}

	return Result{
		Percent:     Percent(earned, total),
		Earned:      earned,
		Total:       total,
		Suggestions: suggestions,
	}
}

// Percent returns round(100*earned/total) clamped to [0,100]. An empty total is 100.
func Percent(earned, total int) int {
	if total <= 0 {
		return 100
	}
	earned = min(max(earned, 0), total)
	return int(math.Round(100 * float64(earned) / float64(total)))
}

func countFilled(p *profile.Profile, attrs []schema.Attribute) (int, *schema.Attribute) {
	filled := 0
	var firstMissing *schema.Attribute
	for i := range attrs {
		if p.Filled(attrs[i].ID) {
			filled++
			continue
		}
		if firstMissing == nil {
			firstMissing = &attrs[i]
		}
	}
	return filled, firstMissing
}
