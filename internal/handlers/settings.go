// internal/handlers/settings.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sproutlabs/sprout-backend/internal/datasync"
	"github.com/sproutlabs/sprout-backend/internal/i18n"
	"github.com/sproutlabs/sprout-backend/internal/utils"
)

type SettingsHandler struct {
	store *datasync.Store
}

func NewSettingsHandler(store *datasync.Store) *SettingsHandler {
	return &SettingsHandler{store: store}
}

// GET /settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"settings": datasync.EncodeSettings(h.store.GetSettings()),
	})
}

// PUT /settings (owner only)
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var doc datasync.SettingsDoc
	if err := c.ShouldBindJSON(&doc); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	// Whole-document replace. Last write wins on the singleton row.
	settings := datasync.DecodeSettings(doc)
	h.store.SaveSettings(&settings)

	utils.SuccessResponse(c, gin.H{
		"message":  i18n.T(lang, i18n.KeySettingsUpdated),
		"settings": datasync.EncodeSettings(h.store.GetSettings()),
	})
}
