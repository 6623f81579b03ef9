package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ranjithg298/matrimony-sub001/internal/filtering"
	"github.com/ranjithg298/matrimony-sub001/internal/profile"
)

type recommendation struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Age          int      `json:"age"`
	Completeness int      `json:"completeness"`
	Match        *int     `json:"match,omitempty"`
	Matched      []string `json:"matched,omitempty"`
	Suggestions  []string `json:"suggestions,omitempty"`
}

type recommendReport struct {
	Steps           []filtering.Status `json:"steps"`
	Recommendations []recommendation   `json:"recommendations"`
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank candidate profiles for a viewer by preference match and completeness",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := context.Background()
		logger, config, attrs := setup()

		viewerPath, _ := cmd.Flags().GetString("viewer")
		candidatesPath, _ := cmd.Flags().GetString("candidates")

		viewer, err := profile.Load(viewerPath)
		if err != nil {
			return err
		}
		profiles, err := profile.LoadAll(candidatesPath)
		if err != nil {
			return err
		}

		logger.Info("starting recommendation",
			zap.String("viewer_id", viewer.ID),
			zap.Int("candidates", len(profiles)),
		)

		steps := filtering.DefaultSteps()
		disabled, _ := cmd.Flags().GetStringSlice("skip")
		for _, name := range disabled {
			filtering.DisableByName(steps, name, "skip requested via flag")
		}

		deps := filtering.Deps{Logger: logger, Viewer: viewer, Catalogue: attrs}
		ranked, err := filtering.Run(ctx, config.Recommend, deps, steps, filtering.NewCandidates(profiles))
		if err != nil {
			return fmt.Errorf("recommendation failed: %w", err)
		}

		if ranked.Len() == 0 {
			logger.Info("no candidates left after filters")
		}

		report := recommendReport{
			Steps:           filtering.Describe(steps),
			Recommendations: make([]recommendation, 0, ranked.Len()),
		}
		for _, item := range ranked.Items {
			report.Recommendations = append(report.Recommendations, toRecommendation(item))
		}

		if err := writeJSON(report); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
		return nil
	},
}

func toRecommendation(item *filtering.Candidate) recommendation {
	rec := recommendation{
		ID:   item.Profile.ID,
		Name: item.Profile.Name,
		Age:  item.Profile.Age,
	}
	if item.Completeness != nil {
		rec.Completeness = item.Completeness.Percent
		rec.Suggestions = item.Completeness.Suggestions
	}
	if item.Match != nil && item.Match.Declared {
		percent := item.Match.Percent
		rec.Match = &percent
		rec.Matched = item.Match.Matched()
	}
	return rec
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringP("viewer", "v", "", "profile file of the member receiving recommendations")
	recommendCmd.Flags().StringP("candidates", "c", "", "file with a list of candidate profiles")
	recommendCmd.Flags().Int("minimum-completeness", 0, "drop candidates whose profile completeness is below this percent")
	recommendCmd.Flags().Int("minimum-match", 0, "drop candidates whose preference match is below this percent")
	recommendCmd.Flags().StringSliceP("exclude", "e", nil, "profile ids to exclude")
	recommendCmd.Flags().StringSlice("skip", nil, "pipeline steps to skip (exclude, completeness, preferences)")
	recommendCmd.MarkFlagRequired("viewer")
	recommendCmd.MarkFlagRequired("candidates")

	viper.BindPFlag("recommend.minimum-completeness", recommendCmd.Flags().Lookup("minimum-completeness"))
	viper.BindPFlag("recommend.minimum-match", recommendCmd.Flags().Lookup("minimum-match"))
	viper.BindPFlag("recommend.exclude", recommendCmd.Flags().Lookup("exclude"))
}
