package domain

import (
	"context"
	"fmt"
)

// QuestionProvider is the capability contract implemented once per
// backing generation service. Implementations own their request
// shaping (endpoint, auth, envelope unwrapping) and must normalize
// every vendor-level failure into a *ProviderError before returning;
// vendor exception types never cross this boundary.
type QuestionProvider interface {
	// Name identifies the provider in logs and error causes.
	Name() string

	// Generate sends the rendered prompt and returns the raw
	// completion text.
	Generate(ctx context.Context, prompt string) (string, error)
}

// ProviderErrorKind classifies a single provider failure.
type ProviderErrorKind string

const (
	ProviderUnreachable   ProviderErrorKind = "UNREACHABLE"
	ProviderQuotaExceeded ProviderErrorKind = "QUOTA_EXCEEDED"
	ProviderMalformed     ProviderErrorKind = "MALFORMED"
	ProviderTimeout       ProviderErrorKind = "TIMEOUT"
)

// ProviderError is the normalized failure of one provider call.
type ProviderError struct {
	Provider string
	Kind     ProviderErrorKind
	Cause    error
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider %s failed (%s): %v", e.Provider, e.Kind, e.Cause)
	}
	return fmt.Sprintf("provider %s failed (%s)", e.Provider, e.Kind)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// NewProviderError creates a normalized provider error.
func NewProviderError(provider string, kind ProviderErrorKind, cause error) *ProviderError {
	return &ProviderError{Provider: provider, Kind: kind, Cause: cause}
}

// GenerationFailure is raised when the primary and the fallback
// provider have both conclusively failed. It is terminal: no raw text
// exists when this error is returned.
type GenerationFailure struct {
	PrimaryCause   error
	SecondaryCause error
}

func (e *GenerationFailure) Error() string {
	return fmt.Sprintf("both providers failed: primary: %v; secondary: %v",
		e.PrimaryCause, e.SecondaryCause)
}

// ParseErrorKind classifies a failure to turn raw provider text into
// questions.
type ParseErrorKind string

const (
	// ParseNotExtractableJSON means the text did not decode as JSON
	// even after fencing normalization.
	ParseNotExtractableJSON ParseErrorKind = "NOT_EXTRACTABLE_JSON"

	// ParseMissingQuestionsArray means the JSON decoded but the
	// top-level object has no "questions" array.
	ParseMissingQuestionsArray ParseErrorKind = "MISSING_QUESTIONS_ARRAY"

	// ParseSchemaViolation marks a single malformed element. It is
	// never returned from parsing as a whole; the offending element is
	// dropped instead.
	ParseSchemaViolation ParseErrorKind = "SCHEMA_VIOLATION"
)

// ParseError is the terminal failure of the response parser. It is
// distinct from GenerationFailure so callers can tell "the provider
// was unreachable" apart from "the provider answered but unusably".
type ParseError struct {
	Kind  ParseErrorKind
	Cause error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse failed (%s): %v", e.Kind, e.Cause)
	}
	return fmt.Sprintf("parse failed (%s)", e.Kind)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// NewParseError creates a ParseError of the given kind.
func NewParseError(kind ParseErrorKind, cause error) *ParseError {
	return &ParseError{Kind: kind, Cause: cause}
}
