package filtering

import (
	"slices"
	"strings"

	"github.com/ranjithg298/matrimony-sub001/internal/completeness"
	"github.com/ranjithg298/matrimony-sub001/internal/matching"
	"github.com/ranjithg298/matrimony-sub001/internal/profile"
)

// Candidate is a profile under consideration together with the scores the
// pipeline computed for it.
type Candidate struct {
	Profile      *profile.Profile     `json:"profile"`
	Completeness *completeness.Result `json:"completeness,omitempty"`
	Match        *matching.Result     `json:"match,omitempty"`
}

type Candidates struct {
	Items []*Candidate
}

func NewCandidates(profiles []*profile.Profile) *Candidates {
	items := make([]*Candidate, 0, len(profiles))
	for _, p := range profiles {
		if p == nil {
			continue
		}
		items = append(items, &Candidate{Profile: p})
	}
	return &Candidates{Items: items}
}

func (c *Candidates) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Items)
}

func (c *Candidates) IDs() []string {
	ids := make([]string, 0, c.Len())
	for _, item := range c.Items {
		ids = append(ids, item.Profile.ID)
	}
	return ids
}

// Keep retains candidates for which keep returns true and returns the ids of the
// dropped ones.
func (c *Candidates) Keep(keep func(*Candidate) bool) []string {
	kept := make([]*Candidate, 0, len(c.Items))
	dropped := make([]string, 0)
	for _, item := range c.Items {
		if keep(item) {
			kept = append(kept, item)
			continue
		}
		dropped = append(dropped, item.Profile.ID)
	}
	c.Items = kept
	return dropped
}

// Exclude drops candidates whose id is listed.
func (c *Candidates) Exclude(ids []string) []string {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			set[id] = struct{}{}
		}
	}
	return c.Keep(func(item *Candidate) bool {
		_, found := set[item.Profile.ID]
		return !found
	})
}

// Rank orders candidates by match percent, then completeness, then id.
func (c *Candidates) Rank() {
	slices.SortStableFunc(c.Items, func(a, b *Candidate) int {
		if d := matchPercent(b) - matchPercent(a); d != 0 {
			return d
		}
		if d := completenessPercent(b) - completenessPercent(a); d != 0 {
			return d
		}
		return strings.Compare(a.Profile.ID, b.Profile.ID)
	})
}

func matchPercent(c *Candidate) int {
	if c.Match == nil {
		return -1
	}
	return c.Match.Percent
}

func completenessPercent(c *Candidate) int {
	if c.Completeness == nil {
		return -1
	}
	return c.Completeness.Percent
}
