package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ranjithg298/matrimony-sub001/internal/ai"
	"github.com/ranjithg298/matrimony-sub001/internal/ai/gemini"
	"github.com/ranjithg298/matrimony-sub001/internal/analysis"
	"github.com/ranjithg298/matrimony-sub001/internal/profile"
)

const maxParallelAnalyses = 4

type analysisResult struct {
	TargetID string           `json:"targetId,omitempty"`
	Report   *analysis.Report `json:"report,omitempty"`
	Error    string           `json:"error,omitempty"`
	Raw      string           `json:"raw,omitempty"`
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Ask the AI provider for a compatibility analysis between the viewer and target profiles",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := context.Background()
		logger, config, _ := setup()

		viewerPath, _ := cmd.Flags().GetString("viewer")
		targetPaths, _ := cmd.Flags().GetStringSlice("target")
		withRaw, _ := cmd.Flags().GetBool("raw")

		viewer, err := profile.Load(viewerPath)
		if err != nil {
			return err
		}

		targets := make([]*profile.Profile, 0, len(targetPaths))
		for _, path := range targetPaths {
			target, err := profile.Load(path)
			if err != nil {
				return err
			}
			targets = append(targets, target)
		}

		generator, err := newGenerator(ctx, config.AI, logger)
		if err != nil {
			return fmt.Errorf("configuring ai provider: %w", err)
		}

		analyst := gemini.NewAnalyst(generator, config.AI.Gemini.MaxLogLength, logger)
		tone, _ := cmd.Flags().GetString("tone")
		language, _ := cmd.Flags().GetString("language")
		notes, _ := cmd.Flags().GetString("notes")
		analyst.SetPromptOverrides(gemini.PromptOverrides{Tone: tone, Language: language, Notes: notes})

		cached := ai.NewCachedAnalyst(analyst, logger)

		results := make([]analysisResult, len(targets))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(maxParallelAnalyses)
		for i, target := range targets {
			g.Go(func() error {
				raw := cached.Analyze(gctx, viewer, target)
				results[i] = toAnalysisResult(target.ID, raw, withRaw)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		for _, result := range results {
			if result.Error != "" {
				logger.Warn("analysis unavailable", zap.String("target_id", result.TargetID), zap.String("error", result.Error))
			}
		}

		if err := writeJSON(results); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
		return nil
	},
}

var analyzeParseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a stored analysis text into report sections",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, _ := cmd.Flags().GetString("file")

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading analysis file %q: %w", path, err)
		}

		if err := writeJSON(toAnalysisResult("", string(data), false)); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
		return nil
	},
}

func toAnalysisResult(targetID, raw string, withRaw bool) analysisResult {
	result := analysisResult{TargetID: targetID}
	if withRaw {
		result.Raw = raw
	}

	report, err := analysis.Parse(raw)
	var upstream *analysis.UpstreamError
	if errors.As(err, &upstream) {
		result.Error = upstream.Message
		return result
	}

	result.Report = &report
	return result
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.AddCommand(analyzeParseCmd)

	analyzeCmd.Flags().StringP("viewer", "v", "", "profile file of the member asking for the analysis")
	analyzeCmd.Flags().StringSliceP("target", "t", nil, "profile files to analyze against the viewer")
	analyzeCmd.Flags().String("tone", "", "tone of the analysis (default Warm)")
	analyzeCmd.Flags().String("language", "", "language of the analysis (default English)")
	analyzeCmd.Flags().String("notes", "", "extra notes for the analysis")
	analyzeCmd.Flags().Bool("raw", false, "include the raw generator output")
	analyzeCmd.MarkFlagRequired("viewer")
	analyzeCmd.MarkFlagRequired("target")

	analyzeParseCmd.Flags().StringP("file", "f", "", "file with the analysis text")
	analyzeParseCmd.MarkFlagRequired("file")
}
