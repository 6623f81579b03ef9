package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/ranjithg298/matrimony-sub001/internal/analysis"
	"github.com/ranjithg298/matrimony-sub001/internal/logger"
	"github.com/ranjithg298/matrimony-sub001/internal/matching"
	"github.com/ranjithg298/matrimony-sub001/internal/profile"
	"github.com/ranjithg298/matrimony-sub001/internal/utils"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, system, message string) (string, error)
}

//go:embed analysis_system.md
var analysisSystem string

//go:embed analysis_prompt.md
var analysisTemplate string

const (
	defaultMaxLogLength = 200
	defaultTone         = "Warm"
	defaultLanguage     = "English"
	maxNotesRunes       = 500
)

// PromptOverrides customise the analysis prompt. Empty fields keep defaults.
type PromptOverrides struct {
	Tone     string
	Language string
	Notes    string
}

// Analyst asks Gemini for a compatibility report between two profiles.
type Analyst struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
	overrides PromptOverrides
}

func NewAnalyst(generator contentGenerator, maxLogLength int, logger *zap.Logger) *Analyst {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Analyst{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

func (a *Analyst) SetPromptOverrides(overrides PromptOverrides) {
	a.overrides = overrides
}

// Analyze returns the raw report text, or an "Error:"-prefixed message when the
// request could not be served.
func (a *Analyst) Analyze(ctx context.Context, viewer, target *profile.Profile) string {
	if viewer == nil || target == nil {
		return analysis.ErrorText(errors.New("both profiles are required"))
	}

	message, err := a.buildMessage(viewer, target)
	if err != nil {
		return analysis.ErrorText(err)
	}

	log := a.logger.With(logger.ProfileFields(viewer.ID, target.ID)...)

	log.Debug("gemini analysis request",
		zap.Int("prompt_length", utf8.RuneCountInString(message)),
		zap.String("prompt_preview", utils.TruncateForLog(message, a.maxLogLen)),
	)

	raw, err := a.generator.GenerateContent(ctx, analysisSystem, message)
	if err != nil {
		log.Warn("gemini analysis failed", zap.Error(err))
		return analysis.ErrorText(fmt.Errorf("compatibility analysis is unavailable right now: %w", err))
	}

	log.Debug("gemini analysis response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, a.maxLogLen)),
	)

	return raw
}

func (a *Analyst) buildMessage(viewer, target *profile.Profile) (string, error) {
	viewerJSON, err := json.MarshalIndent(promptPayload(viewer), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal viewer profile: %w", err)
	}

	targetJSON, err := json.MarshalIndent(promptPayload(target), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal target profile: %w", err)
	}

	match := matching.Match(target, viewer.Preferences)
	matchJSON, err := json.MarshalIndent(match, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal match result: %w", err)
	}

	replacer := strings.NewReplacer(
		"{{TONE}}", fallback(sanitizeSingleLine(a.overrides.Tone), defaultTone),
		"{{LANGUAGE}}", fallback(sanitizeSingleLine(a.overrides.Language), defaultLanguage),
		"{{NOTES}}", sanitizeNotes(a.overrides.Notes),
		"{{VIEWER_JSON}}", string(viewerJSON),
		"{{TARGET_JSON}}", string(targetJSON),
		"{{MATCH_JSON}}", string(matchJSON),
	)

	return replacer.Replace(analysisTemplate), nil
}

// promptPayload keeps the fields useful to the model and drops photo URLs.
func promptPayload(p *profile.Profile) map[string]any {
	return map[string]any{
		"name":         p.Name,
		"age":          p.Age,
		"bio":          p.Bio,
		"interests":    p.Interests,
		"customFields": p.CustomFields,
	}
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

// sanitizeSingleLine collapses whitespace and neutralises square brackets so user
// text cannot open a new prompt section.
func sanitizeSingleLine(s string) string {
	s = strings.NewReplacer("[", "(", "]", ")").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

func sanitizeNotes(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "  - none"
	}

	runes := []rune(s)
	if len(runes) > maxNotesRunes {
		s = string(runes[:maxNotesRunes])
	}

	lines := make([]string, 0)
	for _, line := range strings.Split(s, "\n") {
		if line = sanitizeSingleLine(line); line != "" {
			lines = append(lines, "  - "+line)
		}
	}
	return strings.Join(lines, "\n")
}
