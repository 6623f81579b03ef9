package ai

import (
	"context"

	"github.com/ranjithg298/matrimony-sub001/internal/profile"
)

// Analyst produces a free-text compatibility report for a pair of profiles.
// Failures are returned as "Error:"-prefixed text, never as a Go error, so the
// caller can hand the result straight to analysis.Parse.
type Analyst interface {
	Analyze(ctx context.Context, viewer, target *profile.Profile) string
}
