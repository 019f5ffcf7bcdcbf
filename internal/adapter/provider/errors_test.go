package provider

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"quill/internal/domain"

	"github.com/stretchr/testify/assert"
)

type timeoutNetError struct{}

func (timeoutNetError) Error() string   { return "i/o timeout" }
func (timeoutNetError) Timeout() bool   { return true }
func (timeoutNetError) Temporary() bool { return true }

func TestNormalizeProviderError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want domain.ProviderErrorKind
	}{
		{
			name: "DeadlineExceeded",
			err:  fmt.Errorf("call failed: %w", context.DeadlineExceeded),
			want: domain.ProviderTimeout,
		},
		{
			name: "NetTimeout",
			err:  timeoutNetError{},
			want: domain.ProviderTimeout,
		},
		{
			name: "Quota",
			err:  errors.New("googleapi: Error 429: Quota exceeded for quota metric"),
			want: domain.ProviderQuotaExceeded,
		},
		{
			name: "RateLimit",
			err:  errors.New("API returned unexpected status code: rate limit reached"),
			want: domain.ProviderQuotaExceeded,
		},
		{
			name: "ConnectionRefused",
			err:  errors.New("dial tcp 127.0.0.1:443: connect: connection refused"),
			want: domain.ProviderUnreachable,
		},
		{
			name: "NoSuchHost",
			err:  errors.New("dial tcp: lookup api.example.invalid: no such host"),
			want: domain.ProviderUnreachable,
		},
		{
			name: "OpError",
			err:  &net.OpError{Op: "dial", Err: errors.New("unreachable")},
			want: domain.ProviderUnreachable,
		},
		{
			name: "AnythingElse",
			err:  errors.New("unexpected end of JSON input"),
			want: domain.ProviderMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perr := normalizeProviderError("gemini", tt.err)
			assert.Equal(t, tt.want, perr.Kind)
			assert.Equal(t, "gemini", perr.Provider)
			assert.ErrorIs(t, perr, tt.err)
		})
	}
}

func TestNewProviders_RequireCredentials(t *testing.T) {
	_, err := NewOpenAIProvider("", "gpt-3.5-turbo")
	assert.Error(t, err)

	_, err = NewGeminiProvider(context.Background(), "", "gemini-1.5-flash-latest")
	assert.Error(t, err)
}
