package analysis

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// JSONParser reads a structured record, optionally wrapped in a ```json fence:
//
//	{"score": 88, "summary": "...", "compatibilityPoints": [...], "challenges": [...]}
type JSONParser struct{}

func (JSONParser) Parse(raw string) (Report, bool) {
	cleaned := extractJSON(raw)
	if !strings.HasPrefix(cleaned, "{") {
		return Report{}, false
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return Report{}, false
	}

	report := Report{
		Score:               coerceScore(data["score"]),
		Summary:             coerceString(data["summary"]),
		CompatibilityPoints: coerceList(firstOf(data, "compatibilityPoints", "compatibility_points")),
		Challenges:          coerceList(firstOf(data, "challenges", "potentialChallenges", "potential_challenges")),
	}

	return report, !report.IsEmpty()
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func firstOf(data map[string]any, keys ...string) any {
	for _, key := range keys {
		if v, ok := data[key]; ok {
			return v
		}
	}
	return nil
}

// coerceScore normalises 88, "88" and "88/100" to "88/100".
func coerceScore(v any) string {
	switch val := v.(type) {
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return ""
		}
		return fmt.Sprintf("%d/100", int(math.Round(val)))
	case string:
		trimmed := strings.TrimSpace(val)
		if m := scorePattern.FindStringSubmatch("Compatibility Score: " + trimmed); m != nil {
			return m[1] + "/100"
		}
		if n, err := strconv.Atoi(trimmed); err == nil {
			return fmt.Sprintf("%d/100", n)
		}
		return ""
	default:
		return ""
	}
}

func coerceString(v any) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func coerceList(v any) []string {
	var items []string
	switch val := v.(type) {
	case []any:
		for _, item := range val {
			if s, ok := item.(string); ok {
				items = appendBullet(items, s)
			}
		}
	case string:
		for _, line := range strings.Split(val, "\n") {
			items = appendBullet(items, line)
		}
	}
	return items
}
