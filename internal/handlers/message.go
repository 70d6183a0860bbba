// internal/handlers/message.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sproutlabs/sprout-backend/internal/datasync"
	"github.com/sproutlabs/sprout-backend/internal/i18n"
	"github.com/sproutlabs/sprout-backend/internal/models"
	"github.com/sproutlabs/sprout-backend/internal/utils"
)

type MessageHandler struct {
	store *datasync.Store
}

func NewMessageHandler(store *datasync.Store) *MessageHandler {
	return &MessageHandler{store: store}
}

type SendMessageRequest struct {
	RecipientID string `json:"recipientId" validate:"required,uuid"`
	Text        string `json:"text" validate:"required,min=1,max=2000"`
}

// GET /messages/:peerId
func (h *MessageHandler) GetConversation(c *gin.Context) {
	profile, ok := utils.GetProfileFromContext(c)
	if !ok {
		lang := utils.GetLangFromContext(c)
		utils.ForbiddenResponse(c, i18n.T(lang, i18n.KeySessionRequired))
		return
	}

	peerID, err := uuid.Parse(c.Param("peerId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid peer ID", nil)
		return
	}

	messages := h.store.ListConversation(profile.ID, peerID)

	utils.SuccessResponse(c, gin.H{
		"messages": datasync.EncodeMessages(messages),
	})
}

// POST /messages
func (h *MessageHandler) SendMessage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	profile, ok := utils.GetProfileFromContext(c)
	if !ok {
		utils.ForbiddenResponse(c, i18n.T(lang, i18n.KeySessionRequired))
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	recipientID, err := uuid.Parse(req.RecipientID)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid recipient ID", nil)
		return
	}

	if _, err := h.store.GetProfile(recipientID); err != nil {
		utils.NotFoundResponse(c, "profile")
		return
	}

	message := &models.Message{
		SenderID:    profile.ID,
		RecipientID: recipientID,
		Text:        req.Text,
	}
	h.store.SaveMessage(message)

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyMessageSent),
		"sent":    datasync.EncodeMessage(*message),
	})
}

// DELETE /messages/:id
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	if _, ok := utils.GetProfileFromContext(c); !ok {
		utils.ForbiddenResponse(c, i18n.T(lang, i18n.KeySessionRequired))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid message ID", nil)
		return
	}

	h.store.DeleteMessage(id)

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyMessageDeleted),
	})
}
