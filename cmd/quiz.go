package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ranjithg298/matrimony-sub001/internal/ai/gemini"
	"github.com/ranjithg298/matrimony-sub001/internal/quiz"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Compatibility quizzes between two members",
}

var quizPlayCmd = &cobra.Command{
	Use:   "play",
	Short: "Issue a quiz and let both participants answer it in this terminal",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := context.Background()
		logger, config, _ := setup()

		challenger, _ := cmd.Flags().GetString("challenger")
		challenged, _ := cmd.Flags().GetString("challenged")
		questionsFile, _ := cmd.Flags().GetString("questions")

		questions := quiz.DefaultQuestions()
		if questionsFile != "" {
			loaded, err := loadQuestions(questionsFile)
			if err != nil {
				return err
			}
			questions = loaded
		}

		q, err := quiz.New(challenger, challenged, questions)
		if err != nil {
			return err
		}

		logger.Info("quiz issued",
			zap.String("quiz_id", q.ID),
			zap.String("challenger_id", q.ChallengerID),
			zap.String("challenged_id", q.ChallengedID),
			zap.Int("questions", len(q.Questions)),
		)

		summarizer := newQuizSummarizer(ctx, config, logger)

		for _, participant := range q.Participants() {
			answers, err := askQuestions(participant, q.Questions)
			if err != nil {
				return err
			}
			if err := q.Submit(ctx, participant, answers, summarizer, logger); err != nil {
				return fmt.Errorf("submitting answers of %s: %w", participant, err)
			}
		}

		if err := writeJSON(q); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
		return nil
	},
}

// newQuizSummarizer returns nil when AI is disabled or cannot be configured; the
// quiz then completes without a summary.
func newQuizSummarizer(ctx context.Context, config *Config, logger *zap.Logger) quiz.Summarizer {
	var cfg *AIConfig
	if config != nil {
		cfg = config.AI
	}

	generator, err := newGenerator(ctx, cfg, logger)
	if errors.Is(err, errAIDisabled) {
		logger.Debug("ai is disabled; quiz will not be summarized")
		return nil
	}
	if err != nil {
		logger.Warn("skipping quiz summary", zap.Error(err))
		return nil
	}

	return gemini.NewSummarizer(generator, logger)
}

func askQuestions(participant string, questions []quiz.Question) ([]string, error) {
	answers := make([]string, 0, len(questions))
	for i, q := range questions {
		prompt := promptui.Select{
			Label: fmt.Sprintf("[%s] %d/%d %s", participant, i+1, len(questions), q.Question),
			Items: q.Options,
		}

		_, answer, err := prompt.Run()
		if err != nil {
			return nil, err
		}
		answers = append(answers, answer)
	}
	return answers, nil
}

// loadQuestions reads a "questions" list from a yaml or json file.
func loadQuestions(path string) ([]quiz.Question, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading questions file %q: %w", path, err)
	}

	var questions []quiz.Question
	if err := v.UnmarshalKey("questions", &questions); err != nil {
		return nil, fmt.Errorf("decoding questions file %q: %w", path, err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("questions file %q: %w", path, quiz.ErrNoQuestions)
	}
	return questions, nil
}

func init() {
	rootCmd.AddCommand(quizCmd)
	quizCmd.AddCommand(quizPlayCmd)

	quizPlayCmd.Flags().String("challenger", "", "id of the member issuing the challenge")
	quizPlayCmd.Flags().String("challenged", "", "id of the challenged member")
	quizPlayCmd.Flags().StringP("questions", "q", "", "file with a custom questions list (default is the built-in quiz)")
	quizPlayCmd.MarkFlagRequired("challenger")
	quizPlayCmd.MarkFlagRequired("challenged")
}
