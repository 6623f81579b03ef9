package filtering

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/ranjithg298/matrimony-sub001/internal/matching"
)

const noPreferencesMsg = "viewer has not declared partner preferences"

type preferencesFilter struct {
	disabled bool
	reason   string
	minimum  int
}

// NewPreferences creates a step that matches candidates against the viewer's
// partner preferences and drops those below the configured match percent.
func NewPreferences() Filter {
	return &preferencesFilter{}
}

func (f *preferencesFilter) Name() string { return "preferences" }

func (f *preferencesFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *preferencesFilter) IsEnabled() bool { return !f.disabled }

func (f *preferencesFilter) Validate(cfg *Config) error {
	f.minimum = 0
	if cfg != nil {
		f.minimum = cfg.MinimumMatch
	}
	return validPercent("minimum match", f.minimum)
}

func (f *preferencesFilter) Apply(_ context.Context, deps Deps, c *Candidates) (*Candidates, Step, error) {
	initial := c.Len()

	if deps.Viewer == nil || deps.Viewer.Preferences == nil {
		deps.Logger.Info("skipping preference matching", zap.String("reason", noPreferencesMsg))
		return c, Step{Initial: initial, Dropped: 0, Left: c.Len()}, nil
	}

	prefs := deps.Viewer.Preferences
	dropped := c.Keep(func(item *Candidate) bool {
		result := matching.Match(item.Profile, prefs)
		item.Match = &result
		return result.Percent >= f.minimum
	})

	if len(dropped) > 0 {
		deps.Logger.Info("excluding profiles outside partner preferences",
			zap.Int("minimum_match", f.minimum),
			zap.Strings("excluded_profiles", dropped),
			zap.Int("profiles_left", c.Len()),
		)
	}

	return c, Step{Initial: initial, Dropped: len(dropped), Left: c.Len()}, nil
}

func (f *preferencesFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: f.IsEnabled(),
		Reason:  f.reason,
		Details: map[string]string{"minimum": strconv.Itoa(f.minimum)},
	}
}
