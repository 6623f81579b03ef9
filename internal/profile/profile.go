package profile

import (
	"fmt"
	"strings"
)

type PhotoStatus string

const (
	PhotoPending  PhotoStatus = "pending"
	PhotoApproved PhotoStatus = "approved"
	PhotoRejected PhotoStatus = "rejected"
)

type Photo struct {
	URL    string      `mapstructure:"url" json:"url"`
	Status PhotoStatus `mapstructure:"status" json:"status"`
}

// Profile is the subject of scoring. The engine only reads it.
type Profile struct {
	ID           string         `mapstructure:"id" json:"id"`
	Name         string         `mapstructure:"name" json:"name"`
	Age          int            `mapstructure:"age" json:"age"`
	Bio          string         `mapstructure:"bio" json:"bio"`
	Interests    []string       `mapstructure:"interests" json:"interests"`
	Gallery      []Photo        `mapstructure:"gallery" json:"gallery"`
	CustomFields map[string]any `mapstructure:"customFields" json:"customFields"`

	Preferences *PartnerPreferences `mapstructure:"preferences" json:"preferences,omitempty"`
}

// AgeRange is an inclusive age bound.
type AgeRange struct {
	Min int `mapstructure:"min" json:"min"`
	Max int `mapstructure:"max" json:"max"`
}

// IsZero reports an unset range, which accepts every age.
func (r AgeRange) IsZero() bool {
	return r.Min == 0 && r.Max == 0
}

func (r AgeRange) Contains(age int) bool {
	if r.IsZero() {
		return true
	}
	return age >= r.Min && age <= r.Max
}

// PartnerPreferences are the criteria a profile declares for acceptable matches.
// An empty value list means "no preference".
type PartnerPreferences struct {
	AgeRange      AgeRange `mapstructure:"ageRange" json:"ageRange"`
	MaritalStatus []string `mapstructure:"maritalStatus" json:"maritalStatus"`
	Religion      []string `mapstructure:"religion" json:"religion"`
	Caste         []string `mapstructure:"caste" json:"caste"`
	MotherTongue  []string `mapstructure:"motherTongue" json:"motherTongue"`
	Occupation    []string `mapstructure:"occupation" json:"occupation"`
}

// ApprovedPhotos counts gallery entries that passed moderation.
func (p *Profile) ApprovedPhotos() int {
	count := 0
	for _, photo := range p.Gallery {
		if photo.Status == PhotoApproved {
			count++
		}
	}
	return count
}

// DistinctInterests counts interests ignoring case and duplicates.
func (p *Profile) DistinctInterests() int {
	seen := make(map[string]struct{}, len(p.Interests))
	for _, interest := range p.Interests {
		key := strings.ToLower(strings.TrimSpace(interest))
		if key == "" {
			continue
		}
		seen[key] = struct{}{}
	}
	return len(seen)
}

// Values returns the custom field as a list of non-empty strings.
// A scalar value becomes a single-element list. A false flag counts as unset.
func (p *Profile) Values(id string) []string {
	if p == nil || p.CustomFields == nil {
		return nil
	}

	switch v := p.CustomFields[id].(type) {
	case nil:
		return nil
	case bool:
		if !v {
			return nil
		}
		return []string{"true"}
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		return []string{strings.TrimSpace(v)}
	case []string:
		return compact(v)
	case []any:
		values := make([]string, 0, len(v))
		for _, item := range v {
			if item == nil || item == false {
				continue
			}
			values = append(values, fmt.Sprintf("%v", item))
		}
		return compact(values)
	default:
		return compact([]string{fmt.Sprintf("%v", v)})
	}
}

// Filled reports whether the custom field holds a usable value.
func (p *Profile) Filled(id string) bool {
	return len(p.Values(id)) > 0
}

func compact(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
