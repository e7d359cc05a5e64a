package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/GIIIB-56/Personal-Nutritionist-Program/config"
	"github.com/GIIIB-56/Personal-Nutritionist-Program/models"
	"github.com/GIIIB-56/Personal-Nutritionist-Program/services"
)

// GetProfile returns the stored profile; an empty object before first save.
func GetProfile(c *gin.Context) {
	store := services.NewGormRecordStore(config.DB)
	profile, err := store.GetProfile(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, profile)
}

// UpdateProfile replaces the singleton profile row with the submitted
// document. Omitted fields become null.
func UpdateProfile(c *gin.Context) {
	var body models.UserProfile
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, 400, "Invalid profile payload.")
		return
	}

	store := services.NewGormRecordStore(config.DB)
	if err := store.UpsertProfile(c.Request.Context(), &body); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, body)
}
