package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ranjithg298/matrimony-sub001/internal/matching"
	"github.com/ranjithg298/matrimony-sub001/internal/profile"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Evaluate a candidate profile against the target's partner preferences",
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger, _, _ := setup()

		candidatePath, _ := cmd.Flags().GetString("candidate")
		targetPath, _ := cmd.Flags().GetString("target")

		candidate, err := profile.Load(candidatePath)
		if err != nil {
			return err
		}
		target, err := profile.Load(targetPath)
		if err != nil {
			return err
		}

		result := matching.Match(candidate, target.Preferences)
		if !result.Declared {
			logger.Info("target has not declared partner preferences", zap.String("target_id", target.ID))
		} else {
			logger.Info("preference match",
				zap.String("candidate_id", candidate.ID),
				zap.String("target_id", target.ID),
				zap.Int("percent", result.Percent),
				zap.Strings("matched", result.Matched()),
			)
		}

		if err := writeJSON(result); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringP("candidate", "c", "", "candidate profile file")
	matchCmd.Flags().StringP("target", "t", "", "profile file whose partner preferences are evaluated")
	matchCmd.MarkFlagRequired("candidate")
	matchCmd.MarkFlagRequired("target")
}
