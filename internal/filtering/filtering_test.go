package filtering

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ranjithg298/matrimony-sub001/internal/profile"
	"github.com/ranjithg298/matrimony-sub001/internal/schema"
)

func completeProfile(id, religion string, age int) *profile.Profile {
	return &profile.Profile{
		ID:        id,
		Age:       age,
		Bio:       strings.Repeat("b", 60),
		Interests: []string{"music", "travel", "cricket"},
		Gallery: []profile.Photo{
			{URL: "a.jpg", Status: profile.PhotoApproved},
			{URL: "b.jpg", Status: profile.PhotoApproved},
		},
		CustomFields: map[string]any{"religion": religion},
	}
}

func testCatalogue(t *testing.T) *schema.Catalogue {
	t.Helper()
	catalogue, err := schema.New(schema.Attribute{ID: "religion", Label: "Religion", Type: schema.TypeText, Core: true})
	require.NoError(t, err)
	return catalogue
}

func ids(c *Candidates) []string {
	return c.IDs()
}

func TestRunRanksByMatchThenCompleteness(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	viewer := &profile.Profile{
		ID: "viewer",
		Preferences: &profile.PartnerPreferences{
			AgeRange: profile.AgeRange{Min: 25, Max: 35},
			Religion: []string{"Hindu"},
		},
	}

	partial := completeProfile("partial", "Hindu", 30)
	partial.Bio = ""

	candidates := NewCandidates([]*profile.Profile{
		completeProfile("viewer", "Hindu", 30),
		completeProfile("other-faith", "Christian", 30),
		partial,
		completeProfile("full", "Hindu", 30),
		completeProfile("blocked", "Hindu", 30),
		nil,
	})

	cfg := &Config{Exclude: []string{"blocked"}}
	deps := Deps{Logger: zap.New(core), Viewer: viewer, Catalogue: testCatalogue(t)}

	result, err := Run(context.Background(), cfg, deps, DefaultSteps(), candidates)
	require.NoError(t, err)

	assert.Equal(t, []string{"full", "partial", "other-faith"}, ids(result))
	assert.Equal(t, 100, result.Items[0].Match.Percent)
	assert.Equal(t, 100, result.Items[0].Completeness.Percent)
	assert.Equal(t, 75, result.Items[1].Completeness.Percent)
	assert.Equal(t, 83, result.Items[2].Match.Percent)

	steps := logs.FilterMessage("filter step").All()
	require.Len(t, steps, 3)
	assert.Equal(t, "exclude", steps[0].ContextMap()["name"])
	assert.EqualValues(t, 2, steps[0].ContextMap()["dropped"])
}

func TestRunAppliesThresholds(t *testing.T) {
	viewer := &profile.Profile{
		ID:          "viewer",
		Preferences: &profile.PartnerPreferences{Religion: []string{"Hindu"}},
	}

	sparse := &profile.Profile{ID: "sparse", CustomFields: map[string]any{"religion": "Hindu"}}
	candidates := NewCandidates([]*profile.Profile{
		completeProfile("match", "Hindu", 30),
		completeProfile("mismatch", "Sikh", 30),
		sparse,
	})

	cfg := &Config{MinimumCompleteness: 50, MinimumMatch: 100}
	deps := Deps{Viewer: viewer, Catalogue: testCatalogue(t)}

	result, err := Run(context.Background(), cfg, deps, DefaultSteps(), candidates)
	require.NoError(t, err)
	assert.Equal(t, []string{"match"}, ids(result))
}

func TestRunWithoutPreferences(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	candidates := NewCandidates([]*profile.Profile{
		{ID: "b"},
		completeProfile("a", "Hindu", 30),
	})

	deps := Deps{Logger: zap.New(core), Viewer: &profile.Profile{ID: "viewer"}}
	result, err := Run(context.Background(), &Config{MinimumMatch: 90}, deps, DefaultSteps(), candidates)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, ids(result))
	for _, item := range result.Items {
		assert.Nil(t, item.Match)
	}
	assert.Equal(t, 1, logs.FilterMessage("skipping preference matching").Len())
}

func TestRunRejectsInvalidThreshold(t *testing.T) {
	_, err := Run(context.Background(), &Config{MinimumMatch: 120}, Deps{}, DefaultSteps(), &Candidates{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "preferences")
}

func TestRunSkipsDisabledSteps(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	steps := DefaultSteps()
	DisableByName(steps, "completeness", "disabled by flag")

	candidates := NewCandidates([]*profile.Profile{{ID: "sparse"}})
	result, err := Run(context.Background(), &Config{MinimumCompleteness: 90}, Deps{Logger: zap.New(core)}, steps, candidates)
	require.NoError(t, err)

	assert.Equal(t, []string{"sparse"}, ids(result))
	assert.Equal(t, 1, logs.FilterMessage("filter disabled").Len())

	statuses := Describe(steps)
	require.Len(t, statuses, 3)
	assert.False(t, statuses[1].Enabled)
	assert.Equal(t, "disabled by flag", statuses[1].Reason)
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, &Config{}, Deps{}, DefaultSteps(), &Candidates{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestCandidatesExclude(t *testing.T) {
	c := NewCandidates([]*profile.Profile{{ID: "a"}, {ID: "b"}, {ID: "c"}})
	dropped := c.Exclude([]string{" b ", "", "missing"})

	assert.Equal(t, []string{"b"}, dropped)
	assert.Equal(t, []string{"a", "c"}, c.IDs())

	var empty *Candidates
	assert.Zero(t, empty.Len())
}
