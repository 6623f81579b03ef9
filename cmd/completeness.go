package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ranjithg298/matrimony-sub001/internal/completeness"
	"github.com/ranjithg298/matrimony-sub001/internal/profile"
)

var completenessCmd = &cobra.Command{
	Use:   "completeness",
	Short: "Score how complete a profile is and suggest what to fill in next",
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger, _, attrs := setup()

		path, _ := cmd.Flags().GetString("profile")
		p, err := profile.Load(path)
		if err != nil {
			return err
		}

		for id := range p.CustomFields {
			if _, ok := attrs.Lookup(id); !ok {
				logger.Debug("custom field is not in the attribute catalogue", zap.String("attribute", id))
			}
		}

		result := completeness.Score(p, attrs)
		logger.Info("profile completeness",
			zap.String("profile_id", p.ID),
			zap.Int("percent", result.Percent),
			zap.Int("earned", result.Earned),
			zap.Int("total", result.Total),
		)

		if err := writeJSON(result); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completenessCmd)

	completenessCmd.Flags().StringP("profile", "p", "", "profile file (yaml or json)")
	completenessCmd.MarkFlagRequired("profile")
}
