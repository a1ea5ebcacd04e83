// Package provider connects the chat model to the remote service that
// produces replies.
//
// The model package only knows the model.Exchanger interface; this package
// supplies the implementation and handles every conversion between the
// chat's own types and the wire types of the remote service.
//
// # Architecture
//
//   - model.Exchanger defines the contract (interface)
//   - provider.MagicLoopsProvider implements it over a Magic Loops "run" endpoint
//   - provider.NewProvider() factory creates providers from a Config
//   - provider.InitializeProvider() builds the one the app uses from config.Config
//
// # Usage
//
//	cfg := provider.Config{
//	    Type:     provider.ProviderTypeMagicLoops,
//	    Endpoint: config.DefaultEndpoint,
//	}
//	p, err := provider.NewProvider(cfg)
//	if err != nil {
//	    // handle error
//	}
//	reply, err := p.Exchange(ctx, "hola", history)
package provider

import "time"

// Note: The Exchanger interface is defined in the model package
// (model/provider.go) to avoid import cycles. This package implements it.

// ProviderType identifies the provider implementation.
type ProviderType string

const (
	ProviderTypeMagicLoops ProviderType = "magicloops"
)

// Config holds provider-specific configuration.
type Config struct {
	Type     ProviderType
	Endpoint string
	Timeout  time.Duration // zero means no timeout
}
