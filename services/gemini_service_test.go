package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetGeminiModelCache() {
	geminiModelCache.mu.Lock()
	geminiModelCache.value = ""
	geminiModelCache.expiresAt = time.Time{}
	geminiModelCache.mu.Unlock()
}

func newTestGeminiService(t *testing.T, handler http.HandlerFunc) *GeminiService {
	t.Helper()
	t.Setenv("GEMINI_MODEL", "")
	resetGeminiModelCache()
	t.Cleanup(resetGeminiModelCache)

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc := NewGeminiService("test-key")
	svc.baseURL = server.URL
	return svc
}

func modelListJSON(names ...string) string {
	type model struct {
		Name                       string   `json:"name"`
		SupportedGenerationMethods []string `json:"supportedGenerationMethods"`
	}
	var models []model
	for _, name := range names {
		models = append(models, model{Name: name, SupportedGenerationMethods: []string{"generateContent"}})
	}
	payload, _ := json.Marshal(map[string]any{"models": models})
	return string(payload)
}

func TestGeminiResolveModel(t *testing.T) {
	ctx := context.Background()

	t.Run("prefers flash over pro", func(t *testing.T) {
		svc := newTestGeminiService(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(modelListJSON("models/gemini-1.0-pro", "models/gemini-1.5-pro", "models/gemini-1.5-flash")))
		})
		model, err := svc.resolveModel(ctx)
		require.NoError(t, err)
		assert.Equal(t, "gemini-1.5-flash", model)
	})

	t.Run("falls back to first supported model", func(t *testing.T) {
		svc := newTestGeminiService(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(modelListJSON("models/gemini-exp-1206")))
		})
		model, err := svc.resolveModel(ctx)
		require.NoError(t, err)
		assert.Equal(t, "gemini-exp-1206", model)
	})

	t.Run("list failure falls back without caching", func(t *testing.T) {
		calls := 0
		svc := newTestGeminiService(t, func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusInternalServerError)
		})

		model, err := svc.resolveModel(ctx)
		require.NoError(t, err)
		assert.Equal(t, "gemini-1.5-pro", model)

		_, err = svc.resolveModel(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, calls, "failed lookups are retried")
	})

	t.Run("successful resolution is cached", func(t *testing.T) {
		calls := 0
		svc := newTestGeminiService(t, func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.Write([]byte(modelListJSON("models/gemini-1.5-flash")))
		})

		for i := 0; i < 3; i++ {
			model, err := svc.resolveModel(ctx)
			require.NoError(t, err)
			assert.Equal(t, "gemini-1.5-flash", model)
		}
		assert.Equal(t, 1, calls)
	})

	t.Run("pinned model skips the lookup", func(t *testing.T) {
		svc := newTestGeminiService(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		})
		t.Setenv("GEMINI_MODEL", "gemini-2.0-flash")

		model, err := svc.resolveModel(ctx)
		require.NoError(t, err)
		assert.Equal(t, "gemini-2.0-flash", model)
	})
}

func TestGeminiComplete(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path with image part", func(t *testing.T) {
		var captured geminiRequest
		svc := newTestGeminiService(t, func(w http.ResponseWriter, r *http.Request) {
			if strings.HasSuffix(r.URL.Path, "/models") {
				w.Write([]byte(modelListJSON("models/gemini-1.5-flash")))
				return
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{\"food_name\":"},{"text":"\"Apple\"}"}]}}]}`))
		})

		content, err := svc.Complete(ctx, CompletionRequest{
			System: "system text",
			User:   "user text",
			Image:  &InlineImage{MimeType: "image/png", Base64: "AAAA"},
		})
		require.NoError(t, err)
		assert.Equal(t, `{"food_name":"Apple"}`, content)

		require.Len(t, captured.Contents, 1)
		require.Len(t, captured.Contents[0].Parts, 2)
		assert.Equal(t, "system text\nuser text", captured.Contents[0].Parts[0].Text)
		assert.Equal(t, "image/png", captured.Contents[0].Parts[1].InlineData.MimeType)
		assert.Equal(t, "application/json", captured.GenerationConfig.ResponseMimeType)
	})

	t.Run("empty candidates yield an empty object", func(t *testing.T) {
		svc := newTestGeminiService(t, func(w http.ResponseWriter, r *http.Request) {
			if strings.HasSuffix(r.URL.Path, "/models") {
				w.Write([]byte(modelListJSON("models/gemini-1.5-flash")))
				return
			}
			w.Write([]byte(`{"candidates":[]}`))
		})

		content, err := svc.Complete(ctx, CompletionRequest{User: "hi"})
		require.NoError(t, err)
		assert.Equal(t, "{}", content)
	})

	t.Run("status errors map onto the taxonomy", func(t *testing.T) {
		for status, want := range map[int]error{
			http.StatusUnauthorized:        ErrProviderUnauthorized,
			http.StatusTooManyRequests:     ErrProviderRateLimited,
			http.StatusInternalServerError: ErrProviderUnavailable,
		} {
			svc := newTestGeminiService(t, func(w http.ResponseWriter, r *http.Request) {
				if strings.HasSuffix(r.URL.Path, "/models") {
					w.Write([]byte(modelListJSON("models/gemini-1.5-flash")))
					return
				}
				w.WriteHeader(status)
				w.Write([]byte(`{"error":"boom"}`))
			})

			_, err := svc.Complete(ctx, CompletionRequest{User: "hi"})
			assert.ErrorIs(t, err, want, status)
		}
	})
}
