// Package matching evaluates a candidate profile against declared partner preferences.
package matching

import (
	"math"
	"strings"

	"github.com/ranjithg298/matrimony-sub001/internal/profile"
	"github.com/ranjithg298/matrimony-sub001/internal/schema"
)

// Criterion names, in evaluation order.
const (
	CriterionAge           = "age"
	CriterionMaritalStatus = "maritalStatus"
	CriterionReligion      = "religion"
	CriterionCaste         = "caste"
	CriterionMotherTongue  = "motherTongue"
	CriterionOccupation    = "occupation"
)

var Criteria = []string{
	CriterionAge,
	CriterionMaritalStatus,
	CriterionReligion,
	CriterionCaste,
	CriterionMotherTongue,
	CriterionOccupation,
}

type CriterionResult struct {
	Matched bool `json:"matched"`
}

type Result struct {
	// Declared is false when the target has no partner preferences; the
	// remaining fields are then zero.
	Declared     bool                       `json:"declared"`
	Percent      int                        `json:"percent"`
	PerCriterion map[string]CriterionResult `json:"perCriterion,omitempty"`
}

// Matched returns the criteria names that matched, in evaluation order.
func (r Result) Matched() []string {
	names := make([]string, 0, len(Criteria))
	for _, name := range Criteria {
		if r.PerCriterion[name].Matched {
			names = append(names, name)
		}
	}
	return names
}

// Match evaluates candidate against prefs. Each of the six criteria weighs the same.
func Match(candidate *profile.Profile, prefs *profile.PartnerPreferences) Result {
	if prefs == nil {
		return Result{}
	}
	if candidate == nil {
		candidate = &profile.Profile{}
	}

	per := map[string]CriterionResult{
		CriterionAge:           {Matched: prefs.AgeRange.Contains(candidate.Age)},
		CriterionMaritalStatus: {Matched: anyOf(prefs.MaritalStatus, candidate.Values(schema.MaritalStatus))},
		CriterionReligion:      {Matched: anyOf(prefs.Religion, candidate.Values(schema.Religion))},
		CriterionCaste:         {Matched: casteMatches(prefs.Caste, candidate.Values(schema.Caste))},
		CriterionMotherTongue:  {Matched: anyOf(prefs.MotherTongue, candidate.Values(schema.MotherTongue))},
		CriterionOccupation:    {Matched: anyOf(prefs.Occupation, candidate.Values(schema.Occupation))},
	}

	matched := 0
	for _, res := range per {
		if res.Matched {
			matched++
		}
	}

	return Result{
		Declared:     true,
		Percent:      int(math.Round(100 * float64(matched) / float64(len(Criteria)))),
		PerCriterion: per,
	}
}

// anyOf reports whether one of the candidate values is in the accepted set.
// An empty accepted set means no preference.
func anyOf(accepted, values []string) bool {
	if len(normalize(accepted)) == 0 {
		return true
	}
	for _, want := range accepted {
		want = strings.TrimSpace(want)
		for _, got := range values {
			if want == got {
				return true
			}
		}
	}
	return false
}

// casteMatches is a case-insensitive substring match so regional spellings
// such as "Iyer" and "Iyer Brahmin" line up.
func casteMatches(accepted, values []string) bool {
	accepted = normalize(accepted)
	if len(accepted) == 0 {
		return true
	}
	for _, got := range values {
		got = strings.ToLower(got)
		for _, want := range accepted {
			if strings.Contains(got, strings.ToLower(want)) {
				return true
			}
		}
	}
	return false
}

func normalize(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}
