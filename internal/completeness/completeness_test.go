package completeness

import (
	"strings"
	"testing"

	"github.com/ranjithg298/matrimony-sub001/internal/profile"
	"github.com/ranjithg298/matrimony-sub001/internal/schema"
)

func testCatalogue() *schema.Catalogue {
	return &schema.Catalogue{Attributes: []schema.Attribute{
		{ID: "religion", Label: "Religion", Type: schema.TypeText, Core: true},
		{ID: "occupation", Label: "Occupation", Type: schema.TypeText, Core: true},
		{ID: "diet", Label: "Diet", Type: schema.TypeText},
		{ID: "hobbies", Label: "Hobbies", Type: schema.TypeText},
	}}
}

func fullProfile() *profile.Profile {
	return &profile.Profile{
		Bio:       strings.Repeat("a", 80),
		Interests: []string{"music", "travel", "cooking"},
		Gallery: []profile.Photo{
			{URL: "1", Status: profile.PhotoApproved},
			{URL: "2", Status: profile.PhotoApproved},
		},
		CustomFields: map[string]any{
			"religion":   "Hindu",
			"occupation": "Engineer",
			"diet":       "Vegetarian",
			"hobbies":    []string{"chess"},
		},
	}
}

func TestScoreFullProfile(t *testing.T) {
	res := Score(fullProfile(), testCatalogue())
	if res.Percent != 100 {
		t.Fatalf("expected 100, got %d", res.Percent)
	}
	if len(res.Suggestions) != 0 {
		t.Fatalf("expected no suggestions, got %v", res.Suggestions)
	}
	if res.Total != 7 || res.Earned != 7 {
		t.Fatalf("unexpected totals: %+v", res)
	}
}

func TestScoreEmptyProfile(t *testing.T) {
	res := Score(&profile.Profile{}, testCatalogue())
	if res.Percent != 0 {
		t.Fatalf("expected 0, got %d", res.Percent)
	}

	expected := []string{SuggestBio, SuggestInterests, SuggestGallery}
	if len(res.Suggestions) != len(expected) {
		t.Fatalf("expected %d suggestions, got %v", len(expected), res.Suggestions)
	}
	for i := range expected {
		if res.Suggestions[i] != expected[i] {
			t.Fatalf("suggestion %d: expected %q, got %q", i, expected[i], res.Suggestions[i])
		}
	}
}

func TestScoreSuggestionsReferenceLabels(t *testing.T) {
	p := fullProfile()
	delete(p.CustomFields, "occupation")
	delete(p.CustomFields, "hobbies")
	p.Bio = "short"

	res := Score(p, testCatalogue())

	if len(res.Suggestions) != 3 {
		t.Fatalf("expected 3 suggestions, got %v", res.Suggestions)
	}
	if res.Suggestions[0] != SuggestBio {
		t.Fatalf("bio suggestion must come first: %v", res.Suggestions)
	}
	if !strings.Contains(res.Suggestions[1], "Occupation") {
		t.Fatalf("expected core attribute suggestion, got %q", res.Suggestions[1])
	}
	if !strings.Contains(res.Suggestions[2], "Hobbies") {
		t.Fatalf("expected non-core attribute suggestion, got %q", res.Suggestions[2])
	}

	// 4 of 7 checks: interests, gallery, religion, diet.
	if res.Percent != 57 {
		t.Fatalf("expected 57, got %d", res.Percent)
	}
}

func TestScoreBioBoundary(t *testing.T) {
	p := fullProfile()
	p.Bio = strings.Repeat("x", MinBioLength)
	if res := Score(p, testCatalogue()); res.Percent == 100 {
		t.Fatal("a bio of exactly 50 characters should not count")
	}

	p.Bio = strings.Repeat("ж", MinBioLength+1)
	if res := Score(p, testCatalogue()); res.Percent != 100 {
		t.Fatalf("bio length is counted in characters, got %d", res.Percent)
	}
}

func TestScoreOnlyApprovedPhotosCount(t *testing.T) {
	p := fullProfile()
	p.Gallery[1].Status = profile.PhotoPending

	res := Score(p, testCatalogue())
	if res.Percent != 86 {
		t.Fatalf("expected 86, got %d", res.Percent)
	}
	if res.Suggestions[0] != SuggestGallery {
		t.Fatalf("expected gallery suggestion, got %v", res.Suggestions)
	}
}

func TestScoreEmptyCatalogueUsesBaseline(t *testing.T) {
	p := fullProfile()
	res := Score(p, &schema.Catalogue{})
	if res.Total != 3 || res.Percent != 100 {
		t.Fatalf("unexpected result: %+v", res)
	}

	res = Score(&profile.Profile{Bio: strings.Repeat("a", 60)}, nil)
	if res.Percent != 33 {
		t.Fatalf("expected 33 for one of three baseline checks, got %d", res.Percent)
	}
}

func TestScoreMonotonicInAttributes(t *testing.T) {
	catalogue := schema.Default()
	p := &profile.Profile{CustomFields: map[string]any{}}

	prev := Score(p, catalogue).Percent
	for _, attr := range catalogue.Core() {
		p.CustomFields[attr.ID] = "value"
		next := Score(p, catalogue).Percent
		if next < prev {
			t.Fatalf("filling %s decreased score from %d to %d", attr.ID, prev, next)
		}
		if next < 0 || next > 100 {
			t.Fatalf("score out of range: %d", next)
		}
		prev = next
	}
}

func TestPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		earned, total int
		expect        int
	}{
		{name: "zero total", earned: 0, total: 0, expect: 100},
		{name: "half", earned: 1, total: 2, expect: 50},
		{name: "rounds up", earned: 2, total: 3, expect: 67},
		{name: "clamps overflow", earned: 9, total: 3, expect: 100},
		{name: "clamps negative", earned: -1, total: 3, expect: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Percent(tt.earned, tt.total); got != tt.expect {
				t.Fatalf("expected %d, got %d", tt.expect, got)
			}
		})
	}
}

func TestScoreFalseFlagIsMissing(t *testing.T) {
	catalogue := &schema.Catalogue{Attributes: []schema.Attribute{
		{ID: "smoking", Label: "Smoking", Type: schema.TypeText},
	}}
	p := fullProfile()
	p.CustomFields = map[string]any{"smoking": false}

	res := Score(p, catalogue)
	if res.Earned != 3 || res.Total != 4 {
		t.Fatalf("expected 3/4, got %d/%d", res.Earned, res.Total)
	}
	if len(res.Suggestions) != 1 || !strings.Contains(res.Suggestions[0], "Smoking") {
		t.Fatalf("expected a Smoking suggestion, got %v", res.Suggestions)
	}

	p.CustomFields["smoking"] = true
	if res := Score(p, catalogue); res.Percent != 100 {
		t.Fatalf("expected a true flag to count, got %d", res.Percent)
	}
}
