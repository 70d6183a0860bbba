// internal/handlers/product.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/sproutlabs/sprout-backend/internal/datasync"
	"github.com/sproutlabs/sprout-backend/internal/i18n"
	"github.com/sproutlabs/sprout-backend/internal/models"
	"github.com/sproutlabs/sprout-backend/internal/utils"
)

type ProductHandler struct {
	store *datasync.Store
}

func NewProductHandler(store *datasync.Store) *ProductHandler {
	return &ProductHandler{store: store}
}

type CreateProductRequest struct {
	Title         string   `json:"title" validate:"required,min=1,max=255"`
	Description   string   `json:"description"`
	Category      string   `json:"category" validate:"max=100"`
	Price         float64  `json:"price" validate:"gte=0"`
	CostPrice     float64  `json:"costPrice" validate:"gte=0"`
	StockCount    int      `json:"stockCount" validate:"gte=0"`
	VideoURL      string   `json:"videoUrl"`
	IsWishlist    bool     `json:"isWishlist"`
	Platform      string   `json:"platform" validate:"omitempty,platform"`
	ExternalID    string   `json:"externalId" validate:"max=50"`
	AffiliateLink string   `json:"affiliateLink" validate:"max=500"`
	Images        []string `json:"images"`
}

type UpdateProductRequest struct {
	Title         *string  `json:"title" validate:"omitempty,min=1,max=255"`
	Description   *string  `json:"description"`
	Category      *string  `json:"category" validate:"omitempty,max=100"`
	Price         *float64 `json:"price" validate:"omitempty,gte=0"`
	CostPrice     *float64 `json:"costPrice" validate:"omitempty,gte=0"`
	StockCount    *int     `json:"stockCount" validate:"omitempty,gte=0"`
	VideoURL      *string  `json:"videoUrl"`
	IsWishlist    *bool    `json:"isWishlist"`
	IsReceived    *bool    `json:"isReceived"`
	Platform      *string  `json:"platform" validate:"omitempty,platform"`
	ExternalID    *string  `json:"externalId" validate:"omitempty,max=50"`
	AffiliateLink *string  `json:"affiliateLink" validate:"omitempty,max=500"`
	Images        []string `json:"images"`
}

// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	platform := models.Platform(req.Platform)
	if platform == "" {
		platform = models.PlatformAmazon
	}

	product := &models.Product{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Price:         req.Price,
		CostPrice:     req.CostPrice,
		StockCount:    req.StockCount,
		VideoURL:      req.VideoURL,
		IsWishlist:    req.IsWishlist,
		Platform:      platform,
		ExternalID:    req.ExternalID,
		AffiliateLink: req.AffiliateLink,
		Images:        pq.StringArray(req.Images),
	}

	// Fire-and-forget write; the subscription feed is the consistency signal.
	h.store.SaveProduct(product)

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductCreated),
		"product": datasync.EncodeProduct(*product),
	})
}

// PUT /products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.store.GetProduct(id)
	if err != nil {
		utils.NotFoundResponse(c, "product")
		return
	}

	applyProductUpdates(product, &req)
	h.store.SaveProduct(product)

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductUpdated),
		"product": datasync.EncodeProduct(*product),
	})
}

// DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	if _, err := h.store.GetProduct(id); err != nil {
		utils.NotFoundResponse(c, "product")
		return
	}

	h.store.DeleteProduct(id)

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductDeleted),
	})
}

func applyProductUpdates(product *models.Product, req *UpdateProductRequest) {
	if req.Title != nil {
		product.Title = *req.Title
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.CostPrice != nil {
		product.CostPrice = *req.CostPrice
	}
	if req.StockCount != nil {
		product.StockCount = *req.StockCount
	}
	if req.VideoURL != nil {
		product.VideoURL = *req.VideoURL
	}
	if req.IsWishlist != nil {
		product.IsWishlist = *req.IsWishlist
	}
	if req.IsReceived != nil {
		product.IsReceived = *req.IsReceived
	}
	if req.Platform != nil {
		product.Platform = models.Platform(*req.Platform)
	}
	if req.ExternalID != nil {
		product.ExternalID = *req.ExternalID
	}
	if req.AffiliateLink != nil {
		product.AffiliateLink = *req.AffiliateLink
	}
	if req.Images != nil {
		product.Images = pq.StringArray(req.Images)
	}
}
