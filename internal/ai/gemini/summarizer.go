package gemini

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	_ "embed"

	"go.uber.org/zap"

	"github.com/ranjithg298/matrimony-sub001/internal/quiz"
)

//go:embed quiz_prompt.md
var quizTemplate string

// Summarizer writes the one-sentence narrative for a completed quiz.
type Summarizer struct {
	generator contentGenerator
	logger    *zap.Logger
}

func NewSummarizer(generator contentGenerator, logger *zap.Logger) *Summarizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Summarizer{generator: generator, logger: logger}
}

func (s *Summarizer) Summarize(ctx context.Context, req quiz.SummaryRequest) (string, error) {
	if len(req.Questions) == 0 {
		return "", errors.New("quiz has no questions")
	}

	prompt := buildQuizPrompt(req)

	raw, err := s.generator.GenerateContent(ctx, "", prompt)
	if err != nil {
		return "", fmt.Errorf("summarize quiz %s: %w", req.QuizID, err)
	}

	summary := strings.TrimSpace(raw)
	if summary == "" {
		return "", fmt.Errorf("summarize quiz %s: empty summary", req.QuizID)
	}

	s.logger.Debug("quiz summary generated",
		zap.String("quiz_id", req.QuizID),
		zap.Int("score", req.Percent),
	)

	return summary, nil
}

func buildQuizPrompt(req quiz.SummaryRequest) string {
	var answers strings.Builder
	for i, q := range req.Questions {
		fmt.Fprintf(&answers, "%d. %s\n   A: %s\n   B: %s\n", i+1, q.Question, answerAt(req.ChallengerAnswer, i), answerAt(req.ChallengedAnswer, i))
	}

	return strings.NewReplacer(
		"{{PERCENT}}", strconv.Itoa(req.Percent),
		"{{ANSWERS}}", strings.TrimRight(answers.String(), "\n"),
	).Replace(quizTemplate)
}

func answerAt(answers []string, i int) string {
	if i < len(answers) {
		return answers[i]
	}
	return "(no answer)"
}
