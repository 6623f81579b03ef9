// Package quiz holds the compatibility quiz lifecycle and its scoring.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OptionsPerQuestion is the fixed number of choices every question offers.
const OptionsPerQuestion = 4

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

var (
	ErrInvalidQuestion    = errors.New("invalid question")
	ErrNoQuestions        = errors.New("quiz has no questions")
	ErrSameParticipant    = errors.New("challenger and challenged must differ")
	ErrUnknownParticipant = errors.New("participant is not part of this quiz")
	ErrAnswerCount        = errors.New("answer count does not match question count")
	ErrUnknownOption      = errors.New("answer is not one of the question options")
	ErrAlreadyAnswered    = errors.New("participant has already answered")
	ErrQuizCompleted      = errors.New("quiz is already completed")
)

type Question struct {
	Question string   `mapstructure:"question" json:"question"`
	Options  []string `mapstructure:"options" json:"options"`
}

type Quiz struct {
	ID           string              `mapstructure:"id" json:"id"`
	ChallengerID string              `mapstructure:"challengerId" json:"challengerId"`
	ChallengedID string              `mapstructure:"challengedId" json:"challengedId"`
	Questions    []Question          `mapstructure:"questions" json:"questions"`
	Answers      map[string][]string `mapstructure:"answers" json:"answers"`
	Status       Status              `mapstructure:"status" json:"status"`
	Score        *int                `mapstructure:"score" json:"score,omitempty"`
	Summary      string              `mapstructure:"summary" json:"summary,omitempty"`
	CreatedAt    time.Time           `mapstructure:"createdAt" json:"createdAt"`
	CompletedAt  *time.Time          `mapstructure:"completedAt" json:"completedAt,omitempty"`
}

// SummaryRequest is what a summarizer receives once both participants answered.
type SummaryRequest struct {
	QuizID           string
	Percent          int
	Questions        []Question
	ChallengerAnswer []string
	ChallengedAnswer []string
}

// Summarizer produces the one-sentence narrative stored with a completed quiz.
type Summarizer interface {
	Summarize(ctx context.Context, req SummaryRequest) (string, error)
}

// New issues a pending challenge between two participants.
func New(challengerID, challengedID string, questions []Question) (*Quiz, error) {
	challengerID = strings.TrimSpace(challengerID)
	challengedID = strings.TrimSpace(challengedID)
	if challengerID == "" || challengedID == "" {
		return nil, fmt.Errorf("%w: participant ids are required", ErrUnknownParticipant)
	}
	if challengerID == challengedID {
		return nil, ErrSameParticipant
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	for i, q := range questions {
		if strings.TrimSpace(q.Question) == "" {
			return nil, fmt.Errorf("%w: question %d has no text", ErrInvalidQuestion, i+1)
		}
		if len(q.Options) != OptionsPerQuestion {
			return nil, fmt.Errorf("%w: question %d has %d options, expected %d", ErrInvalidQuestion, i+1, len(q.Options), OptionsPerQuestion)
		}
	}

	return &Quiz{
		ID:           uuid.NewString(),
		ChallengerID: challengerID,
		ChallengedID: challengedID,
		Questions:    slices.Clone(questions),
		Answers:      make(map[string][]string, 2),
		Status:       StatusPending,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

func (q *Quiz) IsCompleted() bool {
	return q.Status == StatusCompleted
}

// Participants returns the challenger and the challenged ids.
func (q *Quiz) Participants() []string {
	return []string{q.ChallengerID, q.ChallengedID}
}

// Answered reports whether the participant already submitted a full answer set.
func (q *Quiz) Answered(participantID string) bool {
	return len(q.Answers[participantID]) == len(q.Questions) && len(q.Questions) > 0
}

// Submit stores a participant's answers. When both participants have answered the
// quiz is scored, summarized once and frozen. logger may be nil.
func (q *Quiz) Submit(ctx context.Context, participantID string, answers []string, summarizer Summarizer, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	if q.IsCompleted() {
		return ErrQuizCompleted
	}
	if participantID != q.ChallengerID && participantID != q.ChallengedID {
		return fmt.Errorf("%w: %s", ErrUnknownParticipant, participantID)
	}
	if q.Answered(participantID) {
		return fmt.Errorf("%w: %s", ErrAlreadyAnswered, participantID)
	}
	if len(answers) != len(q.Questions) {
		return fmt.Errorf("%w: got %d, expected %d", ErrAnswerCount, len(answers), len(q.Questions))
	}
	for i, answer := range answers {
		if !slices.Contains(q.Questions[i].Options, answer) {
			return fmt.Errorf("%w: question %d: %q", ErrUnknownOption, i+1, answer)
		}
	}

	if q.Answers == nil {
		q.Answers = make(map[string][]string, 2)
	}
	q.Answers[participantID] = slices.Clone(answers)

	logger.Debug("quiz answers stored",
		zap.String("quiz_id", q.ID),
		zap.String("participant_id", participantID),
	)

	if !q.Answered(q.ChallengerID) || !q.Answered(q.ChallengedID) {
		return nil
	}

	q.complete(ctx, summarizer, logger)
	return nil
}

func (q *Quiz) complete(ctx context.Context, summarizer Summarizer, logger *zap.Logger) {
	challenger := q.Answers[q.ChallengerID]
	challenged := q.Answers[q.ChallengedID]

	percent := Score(challenger, challenged)

	summary := ""
	if summarizer != nil {
		text, err := summarizer.Summarize(ctx, SummaryRequest{
			QuizID:           q.ID,
			Percent:          percent,
			Questions:        q.Questions,
			ChallengerAnswer: challenger,
			ChallengedAnswer: challenged,
		})
		if err != nil {
			logger.Warn("quiz summary generation failed; completing without summary",
				zap.String("quiz_id", q.ID),
				zap.Error(err),
			)
		} else {
			summary = text
		}
	}

	now := time.Now().UTC()
	q.Score = &percent
	q.Summary = summary
	q.Status = StatusCompleted
	q.CompletedAt = &now

	logger.Info("quiz completed",
		zap.String("quiz_id", q.ID),
		zap.Int("score", percent),
	)
}

// Score counts positions where both answer sequences hold the identical option
// and returns round(100*matches/questions). Two empty sequences score 100.
func Score(a, b []string) int {
	n := max(len(a), len(b))
	if n == 0 {
		return 100
	}

	matches := 0
	for i := 0; i < min(len(a), len(b)); i++ {
		if a[i] == b[i] {
			matches++
		}
	}

	return int(math.Round(100 * float64(matches) / float64(n)))
}
