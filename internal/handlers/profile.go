// internal/handlers/profile.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sproutlabs/sprout-backend/internal/datasync"
	"github.com/sproutlabs/sprout-backend/internal/i18n"
	"github.com/sproutlabs/sprout-backend/internal/models"
	"github.com/sproutlabs/sprout-backend/internal/services"
	"github.com/sproutlabs/sprout-backend/internal/utils"
)

// ProfileDirectory lists the seeded profiles a shopper can browse as.
type ProfileDirectory interface {
	ListProfiles() []models.Profile
}

type ProfileHandler struct {
	store    ProfileDirectory
	sessions *services.SessionService
}

func NewProfileHandler(store ProfileDirectory, sessions *services.SessionService) *ProfileHandler {
	return &ProfileHandler{store: store, sessions: sessions}
}

type SwitchProfileRequest struct {
	ProfileID string `json:"profileId" validate:"required,uuid"`
}

// GET /profiles
func (h *ProfileHandler) GetProfiles(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"profiles": datasync.EncodeProfiles(h.store.ListProfiles()),
	})
}

// GET /session
func (h *ProfileHandler) GetSession(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	profile, ok := utils.GetProfileFromContext(c)
	if !ok {
		utils.ForbiddenResponse(c, i18n.T(lang, i18n.KeySessionRequired))
		return
	}

	session := h.sessions.SessionFor(profile.ID)

	utils.SuccessResponse(c, gin.H{
		"profile":   datasync.EncodeProfile(*profile),
		"cartItems": session.Cart.Len(),
		"stage":     string(session.Handshake.Stage()),
	})
}

// POST /session/switch
func (h *ProfileHandler) SwitchProfile(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req SwitchProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	id, err := uuid.Parse(req.ProfileID)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid profile ID", nil)
		return
	}

	profile, err := h.sessions.Switch(id)
	if err != nil {
		utils.NotFoundResponse(c, "profile")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeySessionSwitched, profile.DisplayName),
		"profile": datasync.EncodeProfile(*profile),
	})
}
