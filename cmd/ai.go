package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ranjithg298/matrimony-sub001/internal/ai/gemini"
	"github.com/ranjithg298/matrimony-sub001/internal/logger"
	"github.com/ranjithg298/matrimony-sub001/internal/secrets"
)

const geminiAPIKeyEnv = "GEMINI_API_KEY"

var errAIDisabled = errors.New("ai is disabled (set ai.enabled in the config file)")

// newGenerator builds the Gemini generator. It fails with errAIDisabled unless
// ai.enabled is set, for every command.
func newGenerator(ctx context.Context, cfg *AIConfig, l *zap.Logger) (*gemini.Generator, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errAIDisabled
	}
	if cfg.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required")
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: cfg.Gemini.APIKey,
		Env:   geminiAPIKeyEnv,
		File:  cfg.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (or set ai.gemini.api-key-file)", err)
	}

	genLogger := logger.WithCommonFields(l, "gemini", cfg.Gemini.Model).With(
		zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries),
	)

	return gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
}
