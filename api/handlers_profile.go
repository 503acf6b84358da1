package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mohit-bt/ayurveda-website/config"
	"github.com/mohit-bt/ayurveda-website/models"
	"github.com/mohit-bt/ayurveda-website/store"
	"github.com/mohit-bt/ayurveda-website/utils"
)

// GetProfileHandler returns the singleton business profile. A fresh install
// without a profile file still answers 200 with the default profile.
// @Summary      Get Profile
// @Tags         Profile
// @Produce      json
// @Success      200  {object}  models.Profile
// @Failure      500  {object}  utils.APIError
// @Router       /api/profile [get]
func GetProfileHandler(c *gin.Context, catalog *store.Store, cfg *config.Config) {
	profile, err := catalog.GetProfile()
	if err != nil {
		utils.GinInternalServerError(c, "Failed to fetch profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ReplaceProfileHandler overwrites the stored profile with the request body.
// This is a wholesale replace, not a merge: omitted fields are stored empty.
// @Summary      Replace Profile
// @Tags         Profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        profile body models.Profile true "Complete profile record"
// @Success      200  {object}  models.Profile
// @Failure      400  {object}  utils.APIError
// @Failure      401  {object}  utils.APIError
// @Failure      500  {object}  utils.APIError
// @Router       /api/profile [put]
func ReplaceProfileHandler(c *gin.Context, catalog *store.Store, cfg *config.Config) {
	var profile models.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := catalog.ReplaceProfile(profile); err != nil {
		utils.GinInternalServerError(c, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}
