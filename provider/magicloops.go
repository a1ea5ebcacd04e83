package provider

import (
	"context"
	"fmt"
	"time"

	"magicchat/config"
	"magicchat/magicloops"
	"magicchat/model"
)

// FallbackReply is shown when the endpoint answers but carries no usable
// "respuesta".
const FallbackReply = "No recibí una respuesta válida"

// MagicLoopsProvider wraps magicloops.Client to implement model.Exchanger.
type MagicLoopsProvider struct {
	client *magicloops.Client
}

// NewMagicLoopsProvider creates a provider for the given run endpoint.
// A zero timeout leaves exchanges unbounded.
//
// Returns an error if the endpoint is not an absolute http(s) URL.
func NewMagicLoopsProvider(endpoint string, timeout time.Duration) (*MagicLoopsProvider, error) {
	opts := []magicloops.Option{magicloops.WithTimeout(timeout)}
	if config.DebugLog != nil {
		opts = append(opts, magicloops.WithLogger(config.DebugLog))
	}

	client, err := magicloops.NewClient(endpoint, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Magic Loops client: %w", err)
	}

	return &MagicLoopsProvider{client: client}, nil
}

// Exchange implements model.Exchanger.Exchange.
//
// history is sent as-is (oldest first) and userText travels separately as
// "mensaje". Any failure is wrapped in ErrRemoteExchange. A response without
// a usable reply yields FallbackReply and no error.
func (p *MagicLoopsProvider) Exchange(ctx context.Context, userText string, history []model.Message) (string, error) {
	resp, err := p.client.Run(ctx, userText, ConvertToTranscript(history))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRemoteExchange, err)
	}

	reply, ok := resp.Reply()
	if !ok {
		if config.Debug && config.DebugLog != nil {
			config.DebugLog.WithField("request_id", resp.RequestID).Warn("[Provider] response had no usable respuesta, using fallback")
		}
		return FallbackReply, nil
	}

	if config.Debug && config.DebugLog != nil {
		config.DebugLog.WithField("request_id", resp.RequestID).Debugf("[Provider] reply received (status %d)", resp.StatusCode)
	}
	return reply, nil
}

// Endpoint implements model.Exchanger.Endpoint.
func (p *MagicLoopsProvider) Endpoint() string {
	return p.client.Endpoint()
}

// Ping implements model.Exchanger.Ping (direct passthrough).
func (p *MagicLoopsProvider) Ping(ctx context.Context) error {
	return p.client.Ping(ctx)
}
