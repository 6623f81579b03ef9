package filtering

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

type excludeFilter struct {
	disabled bool
	reason   string
	ids      []string
}

// NewExclude creates a step that removes the viewer and explicitly excluded profiles.
func NewExclude() Filter {
	return &excludeFilter{}
}

func (f *excludeFilter) Name() string { return "exclude" }

func (f *excludeFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *excludeFilter) IsEnabled() bool { return !f.disabled }

func (f *excludeFilter) Validate(cfg *Config) error {
	f.ids = nil
	if cfg != nil {
		f.ids = append(f.ids, cfg.Exclude...)
	}
	return nil
}

func (f *excludeFilter) Apply(_ context.Context, deps Deps, c *Candidates) (*Candidates, Step, error) {
	initial := c.Len()

	ids := append([]string(nil), f.ids...)
	if deps.Viewer != nil && deps.Viewer.ID != "" {
		ids = append(ids, deps.Viewer.ID)
	}

	excluded := c.Exclude(ids)
	if len(excluded) > 0 {
		deps.Logger.Info("excluding profiles",
			zap.Strings("excluded_profiles", excluded),
			zap.Int("profiles_left", c.Len()),
		)
	}

	return c, Step{Initial: initial, Dropped: len(excluded), Left: c.Len()}, nil
}

func (f *excludeFilter) Status() Status {
	details := map[string]string{}
	if len(f.ids) > 0 {
		details["ids"] = strings.Join(f.ids, ",")
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
