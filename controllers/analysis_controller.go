package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GIIIB-56/Personal-Nutritionist-Program/config"
	"github.com/GIIIB-56/Personal-Nutritionist-Program/services"
)

// AnalyzeImage recognizes the meal in a base64 data URI photo.
func AnalyzeImage(c *gin.Context) {
	var body struct {
		Image string `json:"image"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Image == "" {
		respondError(c, 400, "Missing image in request body.")
		return
	}

	svc := services.NewAnalysisService(services.NewGormRecordStore(config.DB))
	item, err := svc.AnalyzeImage(c.Request.Context(), body.Image)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, item)
}

// AnalyzeText estimates nutrition for a free-text meal description.
func AnalyzeText(c *gin.Context) {
	var body struct {
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.Description) == "" {
		respondError(c, 400, "Missing description in request body.")
		return
	}

	svc := services.NewAnalysisService(services.NewGormRecordStore(config.DB))
	items, err := svc.AnalyzeText(c.Request.Context(), body.Description)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, items)
}
