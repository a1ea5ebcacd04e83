package provider

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magicchat/config"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			name: "magic loops default endpoint",
			config: Config{
				Type:     ProviderTypeMagicLoops,
				Endpoint: config.DefaultEndpoint,
			},
		},
		{
			name: "magic loops with timeout",
			config: Config{
				Type:     ProviderTypeMagicLoops,
				Endpoint: "http://localhost:8080/run",
				Timeout:  10 * time.Second,
			},
		},
		{
			name: "empty type defaults to magic loops",
			config: Config{
				Endpoint: "http://localhost:8080/run",
			},
		},
		{
			name: "invalid endpoint",
			config: Config{
				Type:     ProviderTypeMagicLoops,
				Endpoint: "not a url",
			},
			expectError: true,
		},
		{
			name: "empty endpoint",
			config: Config{
				Type: ProviderTypeMagicLoops,
			},
			expectError: true,
		},
		{
			name: "unknown provider type",
			config: Config{
				Type:     ProviderType("unknown"),
				Endpoint: "http://localhost",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(tt.config)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, p)
			assert.Equal(t, tt.config.Endpoint, p.Endpoint())
		})
	}
}

func TestInitializeProvider(t *testing.T) {
	p, err := InitializeProvider(&config.Config{
		Endpoint:       "https://example.com/api/loop/abc/run",
		TimeoutSeconds: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/api/loop/abc/run", p.Endpoint())

	_, err = InitializeProvider(&config.Config{Endpoint: "ftp://example.com"})
	assert.ErrorContains(t, err, "failed to initialize provider")
}
