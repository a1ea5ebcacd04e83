package provider

import (
	"fmt"

	"magicchat/model"
)

// NewProvider creates a provider based on configuration.
//
// Returns an error if the provider type is unknown or the provider-specific
// constructor fails (e.g., invalid URL).
//
// Example:
//
//	p, err := provider.NewProvider(provider.Config{
//	    Type:     provider.ProviderTypeMagicLoops,
//	    Endpoint: "https://magicloops.dev/api/loop/<id>/run",
//	    Timeout:  30 * time.Second,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewProvider(cfg Config) (model.Exchanger, error) {
	switch cfg.Type {
	case ProviderTypeMagicLoops, "":
		return NewMagicLoopsProvider(cfg.Endpoint, cfg.Timeout)
	default:
		return nil, fmt.Errorf("unknown provider type: %s", cfg.Type)
	}
}
