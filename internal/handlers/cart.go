// internal/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sproutlabs/sprout-backend/internal/cart"
	"github.com/sproutlabs/sprout-backend/internal/datasync"
	"github.com/sproutlabs/sprout-backend/internal/i18n"
	"github.com/sproutlabs/sprout-backend/internal/models"
	"github.com/sproutlabs/sprout-backend/internal/services"
	"github.com/sproutlabs/sprout-backend/internal/utils"
)

// CartStore is the product lookup the cart surface needs.
type CartStore interface {
	GetProduct(id uuid.UUID) (*models.Product, error)
}

type CartHandler struct {
	store    CartStore
	sessions *services.SessionService
}

func NewCartHandler(store CartStore, sessions *services.SessionService) *CartHandler {
	return &CartHandler{store: store, sessions: sessions}
}

// CartItemDoc is the wire shape of one cart line.
type CartItemDoc struct {
	ID        string              `json:"id"`
	Product   datasync.ProductDoc `json:"product"`
	Quantity  int                 `json:"quantity"`
	OrderType string              `json:"orderType"`
}

type AddItemRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	OrderType string `json:"orderType" validate:"required,order_type"`
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func encodeCartItems(items []cart.Item) []CartItemDoc {
	docs := make([]CartItemDoc, 0, len(items))
	for _, item := range items {
		docs = append(docs, CartItemDoc{
			ID:        item.ID.String(),
			Product:   datasync.EncodeProduct(item.Product),
			Quantity:  item.Quantity,
			OrderType: string(item.OrderType),
		})
	}
	return docs
}

func (h *CartHandler) session(c *gin.Context) (*services.Session, bool) {
	profile, ok := utils.GetProfileFromContext(c)
	if !ok {
		lang := utils.GetLangFromContext(c)
		utils.ForbiddenResponse(c, i18n.T(lang, i18n.KeySessionRequired))
		return nil, false
	}
	return h.sessions.SessionFor(profile.ID), true
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	gifts, purchases := session.Cart.Partition()

	utils.SuccessResponse(c, gin.H{
		"items":     encodeCartItems(session.Cart.Items()),
		"gifts":     encodeCartItems(gifts),
		"purchases": encodeCartItems(purchases),
		"total":     session.Cart.Total(),
	})
}

// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	session, ok := h.session(c)
	if !ok {
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	product, err := h.store.GetProduct(productID)
	if err != nil {
		utils.NotFoundResponse(c, "product")
		return
	}

	item := session.Cart.Add(*product, models.OrderType(req.OrderType))

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartItemAdded),
		"item": CartItemDoc{
			ID:        item.ID.String(),
			Product:   datasync.EncodeProduct(item.Product),
			Quantity:  item.Quantity,
			OrderType: string(item.OrderType),
		},
	})
}

// PUT /cart/items/:itemId
func (h *CartHandler) SetQuantity(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	session, ok := h.session(c)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid item ID", nil)
		return
	}

	var req SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if !session.Cart.SetQuantity(itemID, req.Quantity) {
		utils.ErrorResponse(c, http.StatusNotFound, "NOT_FOUND",
			i18n.T(lang, i18n.KeyCartItemNotFound), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"items": encodeCartItems(session.Cart.Items()),
		"total": session.Cart.Total(),
	})
}

// DELETE /cart/items/:itemId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	session, ok := h.session(c)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid item ID", nil)
		return
	}

	// Removal of an absent line is a no-op, not an error.
	session.Cart.Remove(itemID)

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartItemRemoved),
		"items":   encodeCartItems(session.Cart.Items()),
		"total":   session.Cart.Total(),
	})
}
