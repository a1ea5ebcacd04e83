package provider

import (
	"fmt"

	"magicchat/config"
	"magicchat/model"
)

// InitializeProvider creates the provider the application talks to from the
// resolved configuration.
//
// Unlike a missing network, a bad endpoint URL is a configuration mistake,
// so it is returned as an error for main to report instead of being logged
// and ignored.
func InitializeProvider(cfg *config.Config) (model.Exchanger, error) {
	p, err := NewProvider(Config{
		Type:     ProviderTypeMagicLoops,
		Endpoint: cfg.Endpoint,
		Timeout:  cfg.Timeout(),
	})
	if err != nil {
		if config.Debug && config.DebugLog != nil {
			config.DebugLog.Errorf("[Provider] provider creation failed: %v", err)
		}
		return nil, fmt.Errorf("failed to initialize provider: %w", err)
	}

	if config.Debug && config.DebugLog != nil {
		config.DebugLog.Debugf("[Provider] Initialized Magic Loops provider (endpoint: %s, timeout: %v)", cfg.Endpoint, cfg.Timeout())
	}
	return p, nil
}
