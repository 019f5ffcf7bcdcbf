package provider

import (
	"context"
	"errors"
	"net"
	"strings"

	"quill/internal/domain"
)

// normalizeProviderError folds every vendor- and transport-level
// failure into one of the four domain.ProviderErrorKind values so that
// nothing provider-specific leaks past the adapter boundary.
func normalizeProviderError(providerName string, err error) *domain.ProviderError {
	kind := classify(err)
	return domain.NewProviderError(providerName, kind, err)
}

func classify(err error) domain.ProviderErrorKind {
	var netErr net.Error
	msg := strings.ToLower(err.Error())

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return domain.ProviderTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		return domain.ProviderTimeout
	case strings.Contains(msg, "quota") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "resource exhausted") ||
		strings.Contains(msg, "429"):
		return domain.ProviderQuotaExceeded
	case errors.As(err, new(*net.OpError)) ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "network is unreachable"):
		return domain.ProviderUnreachable
	default:
		// The provider answered, but not in a shape we can use.
		return domain.ProviderMalformed
	}
}
