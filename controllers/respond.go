package controllers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/GIIIB-56/Personal-Nutritionist-Program/services"
)

func respondOK(c *gin.Context, data any) {
	c.JSON(200, gin.H{"success": true, "data": data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

// respondServiceError maps service-layer failures onto the client-facing
// statuses and messages. Provider internals never leak to the client; the
// detail goes to the log instead.
func respondServiceError(c *gin.Context, err error) {
	var notConfigured *services.ProviderNotConfiguredError
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		respondError(c, 400, "Missing record in request body.")
	case errors.Is(err, services.ErrInvalidImageFormat):
		respondError(c, 400, "Invalid image format. Expect data:image/jpeg;base64,...")
	case errors.Is(err, services.ErrProfileIncomplete):
		respondError(c, 400, "Profile is incomplete. Set target_type and daily_calorie_goal.")
	case errors.Is(err, services.ErrModelResponseInvalid):
		log.Printf("model response invalid: %v", err)
		respondError(c, 502, "Model returned invalid JSON.")
	case errors.Is(err, services.ErrProviderUnauthorized):
		respondError(c, 500, "API key is invalid or unauthorized.")
	case errors.Is(err, services.ErrProviderRateLimited):
		respondError(c, 500, "Quota exceeded or rate limit reached.")
	case errors.As(err, &notConfigured):
		respondError(c, 500, notConfigured.Error())
	default:
		log.Printf("request failed: %v", err)
		respondError(c, 500, "Recognition service is temporarily unavailable.")
	}
}
