package services

import "errors"

// Failure categories surfaced to the HTTP layer. Nothing here is retried
// automatically; the caller decides whether to prompt the user to try again.
var (
	ErrInvalidInput         = errors.New("missing or malformed request field")
	ErrInvalidImageFormat   = errors.New("invalid image format")
	ErrModelResponseInvalid = errors.New("model returned invalid JSON")
	ErrProviderUnauthorized = errors.New("API key is invalid or unauthorized")
	ErrProviderRateLimited  = errors.New("quota exceeded or rate limit reached")
	ErrProviderUnavailable  = errors.New("recognition service is temporarily unavailable")
	ErrProfileIncomplete    = errors.New("profile is incomplete")
)

// ProviderNotConfiguredError reports a missing credential for the selected
// provider, naming the environment variable that would fix it.
type ProviderNotConfiguredError struct {
	EnvVar string
}

func (e *ProviderNotConfiguredError) Error() string {
	return e.EnvVar + " is not configured."
}
