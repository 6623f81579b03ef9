package analysis

import (
	"regexp"
	"strings"
)

var scorePattern = regexp.MustCompile(`(?i)Compatibility Score\s*\**\s*:\s*\**\s*(\d+)\s*/\s*100`)

// scoreLinePattern matches a line holding nothing but the score, which closes
// the current section. A score mentioned inside prose does not.
var scoreLinePattern = regexp.MustCompile(`(?i)^\s*[#\s]*\**\s*Compatibility Score\s*\**\s*:\s*\**\s*\d+\s*/\s*100\s*\**\s*$`)

var bulletPrefixes = []string{"- ", "* ", "• "}

type section int

const (
	sectionNone section = iota
	sectionSummary
	sectionPoints
	sectionChallenges
)

var headers = map[string]section{
	strings.ToLower(HeaderSummary):             sectionSummary,
	strings.ToLower(HeaderCompatibilityPoints): sectionPoints,
	strings.ToLower(HeaderChallenges):          sectionChallenges,
}

// TextParser reads the free-text section format. It never fails; ok is false
// when nothing recognizable was found.
type TextParser struct{}

func (TextParser) Parse(raw string) (Report, bool) {
	var report Report

	if m := scorePattern.FindStringSubmatch(raw); m != nil {
		report.Score = m[1] + "/100"
	}

	var (
		current section
		summary []string
		points  []string
		issues  []string
	)

	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	for _, line := range lines {
		if scoreLinePattern.MatchString(line) {
			current = sectionNone
			continue
		}

		if next, rest, ok := matchHeader(line); ok {
			current = next
			if rest == "" {
				continue
			}
			line = rest
		}

		switch current {
		case sectionSummary:
			summary = append(summary, line)
		case sectionPoints:
			points = appendBullet(points, line)
		case sectionChallenges:
			issues = appendBullet(issues, line)
		}
	}

	report.Summary = strings.TrimSpace(strings.Join(summary, "\n"))
	report.CompatibilityPoints = points
	report.Challenges = issues

	return report, !report.IsEmpty()
}

// matchHeader recognises a section header line, tolerating markdown decoration
// ("## Summary", "**Summary:**"). Text after a colon on the same line is returned
// as the first content line.
func matchHeader(line string) (section, string, bool) {
	cleaned := strings.TrimSpace(line)
	if isBullet(cleaned) {
		return sectionNone, "", false
	}
	cleaned = strings.TrimLeft(cleaned, "# ")
	cleaned = strings.Trim(cleaned, "*_ ")

	name, rest, hasColon := strings.Cut(cleaned, ":")
	name = strings.Trim(name, "*_ ")

	s, ok := headers[strings.ToLower(name)]
	if !ok {
		return sectionNone, "", false
	}

	if !hasColon {
		return s, "", true
	}
	return s, strings.TrimSpace(strings.Trim(rest, "*_ ")), true
}

// isBullet reports a list item. "**" opens bold markup, not a bullet.
func isBullet(line string) bool {
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

func appendBullet(items []string, line string) []string {
	item := strings.TrimSpace(line)
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(item, prefix) {
			item = strings.TrimSpace(strings.TrimPrefix(item, prefix))
			break
		}
	}
	if item == "" {
		return items
	}
	return append(items, item)
}
