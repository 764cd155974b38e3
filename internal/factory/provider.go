package factory

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/vitalbridge/vitalbridge/internal/config"
	"github.com/vitalbridge/vitalbridge/internal/provider"
)

// NewProvider creates the upstream API client from config.
func NewProvider(cfg *config.Config, log zerolog.Logger) *provider.Client {
	if cfg.ProviderAPIKey == "" {
		log.Warn().Msg("no provider API key configured; upstream calls will be unauthenticated")
	}
	timeout := time.Duration(cfg.ProviderTimeoutSeconds) * time.Second
	return provider.NewClient(cfg.ProviderBaseURL, cfg.ProviderAPIKey, timeout)
}
