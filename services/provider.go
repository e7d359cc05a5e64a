package services

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/GIIIB-56/Personal-Nutritionist-Program/models"
)

// InlineImage is a base64 image payload attached to a completion request.
type InlineImage struct {
	MimeType string
	Base64   string
}

// CompletionRequest is the provider-agnostic shape of one LLM call. How the
// system and user turns map onto the wire format is up to the provider.
type CompletionRequest struct {
	System string
	User   string
	Image  *InlineImage
}

// Provider is a vision-capable LLM backend returning raw text content. The
// parsing and normalization pipeline never branches on provider identity.
type Provider interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// AIConfig is the provider selection resolved from the profile and the
// environment. Environment keys win over profile keys.
type AIConfig struct {
	Provider  string
	OpenAIKey string
	GeminiKey string
}

// ResolveAIConfig resolves which provider to use and with which credentials.
func ResolveAIConfig(profile models.UserProfile) AIConfig {
	provider := ""
	if profile.AIProvider != nil {
		provider = *profile.AIProvider
	}
	if provider == "" {
		provider = os.Getenv("AI_PROVIDER")
	}
	if provider == "" {
		provider = "openai"
	}

	openaiKey := os.Getenv("OPENAI_API_KEY")
	if openaiKey == "" && profile.OpenAIKey != nil {
		openaiKey = *profile.OpenAIKey
	}
	geminiKey := os.Getenv("GEMINI_API_KEY")
	if geminiKey == "" && profile.GeminiKey != nil {
		geminiKey = *profile.GeminiKey
	}

	return AIConfig{Provider: provider, OpenAIKey: openaiKey, GeminiKey: geminiKey}
}

// NewProvider builds the configured provider client, failing before any
// network call when the matching credential is missing.
func NewProvider(cfg AIConfig) (Provider, error) {
	switch cfg.Provider {
	case "gemini":
		if cfg.GeminiKey == "" {
			return nil, &ProviderNotConfiguredError{EnvVar: "GEMINI_API_KEY"}
		}
		return NewGeminiService(cfg.GeminiKey), nil
	default:
		if cfg.OpenAIKey == "" {
			return nil, &ProviderNotConfiguredError{EnvVar: "OPENAI_API_KEY"}
		}
		return NewOpenAIService(cfg.OpenAIKey), nil
	}
}

// providerStatusError maps a provider HTTP status to the error taxonomy.
func providerStatusError(name string, status int, body []byte) error {
	switch status {
	case http.StatusUnauthorized:
		return fmt.Errorf("%s api error %d: %w", name, status, ErrProviderUnauthorized)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%s api error %d: %w", name, status, ErrProviderRateLimited)
	default:
		return fmt.Errorf("%s api error %d: %s: %w", name, status, bodyPreview(body), ErrProviderUnavailable)
	}
}

func bodyPreview(body []byte) string {
	preview := string(body)
	if len(preview) > 200 {
		preview = preview[:200] + "..."
	}
	return preview
}
