// Package analysis turns compatibility reports produced by a text generator into
// display sections.
//
// Generators are asked for a JSON record first. Free text using the section
// headers below is parsed as a fallback:
//
//	Compatibility Score: 88/100
//	Summary
//	...
//	Key Compatibility Points
//	- ...
//	Potential Challenges
//	- ...
package analysis

import (
	"strings"
)

// ErrorPrefix marks a generator response that carries a failure message.
const ErrorPrefix = "Error:"

// Section headers recognised in free text.
const (
	HeaderSummary             = "Summary"
	HeaderCompatibilityPoints = "Key Compatibility Points"
	HeaderChallenges          = "Potential Challenges"
)

// Report is the structured view of an analysis. Missing sections stay empty.
type Report struct {
	Score               string   `json:"score,omitempty"`
	Summary             string   `json:"summary,omitempty"`
	CompatibilityPoints []string `json:"compatibilityPoints"`
	Challenges          []string `json:"challenges"`
}

// IsEmpty reports whether no recognizable structure was found.
func (r Report) IsEmpty() bool {
	return r.Score == "" && r.Summary == "" && len(r.CompatibilityPoints) == 0 && len(r.Challenges) == 0
}

// UpstreamError carries an "Error:"-prefixed generator response verbatim.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

// Parser extracts a Report from raw generator output.
type Parser interface {
	Parse(raw string) (Report, bool)
}

var defaultParser = Chain{JSONParser{}, TextParser{}}

// Parse returns the structured report for raw. The only error it returns is an
// *UpstreamError when raw is an "Error:"-prefixed message.
func Parse(raw string) (Report, error) {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, ErrorPrefix) {
		return Report{}, &UpstreamError{Message: trimmed}
	}

	report, _ := defaultParser.Parse(trimmed)
	return report, nil
}

// ErrorText renders err in the "Error:" convention understood by Parse.
func ErrorText(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.TrimSpace(err.Error())
	if strings.HasPrefix(msg, ErrorPrefix) {
		return msg
	}
	return ErrorPrefix + " " + msg
}

// Chain tries each parser in order and returns the first recognised report.
type Chain []Parser

func (c Chain) Parse(raw string) (Report, bool) {
	for _, p := range c {
		if report, ok := p.Parse(raw); ok {
			return report, true
		}
	}
	return Report{}, false
}
