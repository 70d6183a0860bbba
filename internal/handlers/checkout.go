// internal/handlers/checkout.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/sproutlabs/sprout-backend/internal/checkout"
	"github.com/sproutlabs/sprout-backend/internal/i18n"
	"github.com/sproutlabs/sprout-backend/internal/services"
	"github.com/sproutlabs/sprout-backend/internal/utils"
)

type CheckoutHandler struct {
	sessions *services.SessionService
}

func NewCheckoutHandler(sessions *services.SessionService) *CheckoutHandler {
	return &CheckoutHandler{sessions: sessions}
}

func (h *CheckoutHandler) session(c *gin.Context) (*services.Session, bool) {
	profile, ok := utils.GetProfileFromContext(c)
	if !ok {
		lang := utils.GetLangFromContext(c)
		utils.ForbiddenResponse(c, i18n.T(lang, i18n.KeySessionRequired))
		return nil, false
	}
	return h.sessions.SessionFor(profile.ID), true
}

func checkoutStatus(session *services.Session) gin.H {
	return gin.H{
		"stage":       string(session.Handshake.Stage()),
		"checkoutUrl": session.Handshake.URL(),
		"itemCount":   session.Cart.Len(),
		"total":       session.Cart.Total(),
	}
}

// GET /checkout
func (h *CheckoutHandler) GetStatus(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	utils.SuccessResponse(c, checkoutStatus(session))
}

// POST /checkout/begin
func (h *CheckoutHandler) Begin(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	session, ok := h.session(c)
	if !ok {
		return
	}

	// A completed handshake is terminal. Starting over gets a fresh one
	// bound to the same cart.
	if session.Handshake.Stage() == checkout.StageSuccess {
		session = h.sessions.ResetHandshake(session.ProfileID)
	}

	url, err := session.Handshake.Begin()
	if err != nil {
		h.writeCheckoutError(c, lang, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":     i18n.T(lang, i18n.KeyCheckoutTransferred),
		"stage":       string(session.Handshake.Stage()),
		"checkoutUrl": url,
	})
}

// POST /checkout/back
func (h *CheckoutHandler) Back(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	session, ok := h.session(c)
	if !ok {
		return
	}

	if err := session.Handshake.Back(); err != nil {
		h.writeCheckoutError(c, lang, err)
		return
	}

	utils.SuccessResponse(c, checkoutStatus(session))
}

// POST /checkout/confirm
func (h *CheckoutHandler) Confirm(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	session, ok := h.session(c)
	if !ok {
		return
	}

	confirmed, err := session.Handshake.Confirm()
	if err != nil {
		h.writeCheckoutError(c, lang, err)
		return
	}

	ids := make([]string, 0, len(confirmed))
	for _, id := range confirmed {
		ids = append(ids, id.String())
	}

	utils.SuccessResponse(c, gin.H{
		"message":      i18n.T(lang, i18n.KeyCheckoutConfirmed),
		"stage":        string(session.Handshake.Stage()),
		"confirmedIds": ids,
	})
}

func (h *CheckoutHandler) writeCheckoutError(c *gin.Context, lang string, err error) {
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyCheckoutEmptyCart), nil)
	case errors.Is(err, checkout.ErrWrongStage), errors.Is(err, checkout.ErrNotConfirmed):
		utils.ConflictResponse(c, i18n.T(lang, i18n.KeyCheckoutWrongStage))
	default:
		utils.InternalErrorResponse(c, err.Error())
	}
}
