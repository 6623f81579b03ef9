package quiz

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type stubSummarizer struct {
	text  string
	err   error
	calls int
	last  SummaryRequest
}

func (s *stubSummarizer) Summarize(_ context.Context, req SummaryRequest) (string, error) {
	s.calls++
	s.last = req
	return s.text, s.err
}

func answersAt(questions []Question, picks ...int) []string {
	answers := make([]string, len(questions))
	for i, q := range questions {
		answers[i] = q.Options[picks[i]]
	}
	return answers
}

func TestScore(t *testing.T) {
	t.Parallel()

	a := []string{"a", "b", "c", "d", "a"}

	tests := []struct {
		name   string
		b      []string
		expect int
	}{
		{name: "identical", b: []string{"a", "b", "c", "d", "a"}, expect: 100},
		{name: "all differ", b: []string{"b", "c", "d", "a", "b"}, expect: 0},
		{name: "three differ", b: []string{"a", "b", "x", "x", "x"}, expect: 40},
		{name: "one differs", b: []string{"a", "b", "c", "d", "x"}, expect: 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, Score(a, tt.b))
		})
	}

	assert.Equal(t, 100, Score(nil, nil))
	assert.Equal(t, 50, Score([]string{"a", "b"}, []string{"a"}))
}

func TestNewValidatesQuestions(t *testing.T) {
	_, err := New("a", "b", nil)
	require.ErrorIs(t, err, ErrNoQuestions)

	_, err = New("a", "a", DefaultQuestions())
	require.ErrorIs(t, err, ErrSameParticipant)

	_, err = New("a", "b", []Question{{Question: "Q?", Options: []string{"1", "2", "3"}}})
	require.ErrorIs(t, err, ErrInvalidQuestion)

	q, err := New("a", "b", DefaultQuestions())
	require.NoError(t, err)
	assert.NotEmpty(t, q.ID)
	assert.Equal(t, StatusPending, q.Status)
	assert.Empty(t, q.Answers)
	assert.Nil(t, q.Score)
}

func TestSubmitCompletesOnSecondParticipant(t *testing.T) {
	questions := DefaultQuestions()
	q, err := New("alice", "bob", questions)
	require.NoError(t, err)

	summarizer := &stubSummarizer{text: "You two agree on weekends and values."}

	require.NoError(t, q.Submit(context.Background(), "alice", answersAt(questions, 0, 1, 2, 3, 0), summarizer, nil))
	assert.Equal(t, StatusPending, q.Status)
	assert.Equal(t, 0, summarizer.calls)

	require.NoError(t, q.Submit(context.Background(), "bob", answersAt(questions, 0, 1, 0, 0, 1), summarizer, nil))

	assert.True(t, q.IsCompleted())
	require.NotNil(t, q.Score)
	assert.Equal(t, 40, *q.Score)
	assert.Equal(t, "You two agree on weekends and values.", q.Summary)
	assert.NotNil(t, q.CompletedAt)

	assert.Equal(t, 1, summarizer.calls)
	assert.Equal(t, 40, summarizer.last.Percent)
	assert.Equal(t, q.Answers["alice"], summarizer.last.ChallengerAnswer)
	assert.Equal(t, q.Answers["bob"], summarizer.last.ChallengedAnswer)
}

func TestSubmitRejectsAfterCompletion(t *testing.T) {
	questions := DefaultQuestions()
	q, err := New("alice", "bob", questions)
	require.NoError(t, err)

	all := answersAt(questions, 0, 0, 0, 0, 0)
	require.NoError(t, q.Submit(context.Background(), "alice", all, nil, nil))
	require.NoError(t, q.Submit(context.Background(), "bob", all, nil, nil))
	require.Equal(t, 100, *q.Score)

	err = q.Submit(context.Background(), "bob", answersAt(questions, 1, 1, 1, 1, 1), nil, nil)
	require.ErrorIs(t, err, ErrQuizCompleted)
	assert.Equal(t, 100, *q.Score)
}

func TestSubmitValidation(t *testing.T) {
	questions := DefaultQuestions()
	q, err := New("alice", "bob", questions)
	require.NoError(t, err)

	ctx := context.Background()

	err = q.Submit(ctx, "mallory", answersAt(questions, 0, 0, 0, 0, 0), nil, nil)
	require.ErrorIs(t, err, ErrUnknownParticipant)

	err = q.Submit(ctx, "alice", []string{questions[0].Options[0]}, nil, nil)
	require.ErrorIs(t, err, ErrAnswerCount)

	bad := answersAt(questions, 0, 0, 0, 0, 0)
	bad[2] = "Something else"
	err = q.Submit(ctx, "alice", bad, nil, nil)
	require.ErrorIs(t, err, ErrUnknownOption)
	assert.Empty(t, q.Answers)

	require.NoError(t, q.Submit(ctx, "alice", answersAt(questions, 0, 0, 0, 0, 0), nil, nil))
	err = q.Submit(ctx, "alice", answersAt(questions, 1, 1, 1, 1, 1), nil, nil)
	require.ErrorIs(t, err, ErrAlreadyAnswered)
}

func TestSubmitSummaryFailureStillCompletes(t *testing.T) {
	questions := DefaultQuestions()
	q, err := New("alice", "bob", questions)
	require.NoError(t, err)

	core, observed := observer.New(zapcore.WarnLevel)
	logger := zap.New(core)

	summarizer := &stubSummarizer{err: errors.New("quota exceeded")}
	all := answersAt(questions, 3, 3, 3, 3, 3)

	require.NoError(t, q.Submit(context.Background(), "alice", all, summarizer, logger))
	require.NoError(t, q.Submit(context.Background(), "bob", all, summarizer, logger))

	assert.True(t, q.IsCompleted())
	assert.Empty(t, q.Summary)
	assert.Equal(t, 1, observed.Len())
}
