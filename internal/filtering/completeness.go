package filtering

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/ranjithg298/matrimony-sub001/internal/completeness"
)

type completenessFilter struct {
	disabled bool
	reason   string
	minimum  int
}

// NewCompleteness creates a step that scores every candidate and drops profiles
// below the configured completeness.
func NewCompleteness() Filter {
	return &completenessFilter{}
}

func (f *completenessFilter) Name() string { return "completeness" }

func (f *completenessFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *completenessFilter) IsEnabled() bool { return !f.disabled }

func (f *completenessFilter) Validate(cfg *Config) error {
	f.minimum = 0
	if cfg != nil {
		f.minimum = cfg.MinimumCompleteness
	}
	return validPercent("minimum completeness", f.minimum)
}

func (f *completenessFilter) Apply(_ context.Context, deps Deps, c *Candidates) (*Candidates, Step, error) {
	initial := c.Len()

	dropped := c.Keep(func(item *Candidate) bool {
		result := completeness.Score(item.Profile, deps.Catalogue)
		item.Completeness = &result
		if result.Percent >= f.minimum {
			return true
		}
		deps.Logger.Debug("profile below completeness threshold",
			zap.String("profile_id", item.Profile.ID),
			zap.Int("percent", result.Percent),
		)
		return false
	})

	if len(dropped) > 0 {
		deps.Logger.Info("excluding incomplete profiles",
			zap.Int("minimum_completeness", f.minimum),
			zap.Strings("excluded_profiles", dropped),
			zap.Int("profiles_left", c.Len()),
		)
	}

	return c, Step{Initial: initial, Dropped: len(dropped), Left: c.Len()}, nil
}

func (f *completenessFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: f.IsEnabled(),
		Reason:  f.reason,
		Details: map[string]string{"minimum": strconv.Itoa(f.minimum)},
	}
}
