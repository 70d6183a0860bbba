// internal/handlers/ai.go
package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sproutlabs/sprout-backend/internal/i18n"
	"github.com/sproutlabs/sprout-backend/internal/services"
	"github.com/sproutlabs/sprout-backend/internal/utils"
)

type AIHandler struct {
	ai *services.AIService
}

func NewAIHandler(ai *services.AIService) *AIHandler {
	return &AIHandler{ai: ai}
}

type GenerateDescriptionRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=255"`
	Category string `json:"category" validate:"max=100"`
}

type GenerateImageRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=255"`
	StylePrompt string `json:"stylePrompt" validate:"max=500"`
}

// POST /ai/description
func (h *AIHandler) GenerateDescription(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req GenerateDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	description, generated := h.ai.GenerateDescription(c.Request.Context(), req.Title, req.Category)
	if !generated {
		// Generation failures degrade to the localized fallback copy rather
		// than erroring, so the shop editor always gets usable text.
		description = i18n.T(lang, i18n.KeyAIDescriptionFallback)
	}

	utils.SuccessResponse(c, gin.H{
		"description": description,
		"generated":   generated,
	})
}

// POST /ai/product-image
func (h *AIHandler) GenerateProductImage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req GenerateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	result, err := h.ai.GenerateProductImage(c.Request.Context(), req.Title, req.StylePrompt)
	if err != nil {
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "GENERATION_FAILED",
			i18n.T(lang, i18n.KeyAIImageFailed), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"imageUrl": result.URL,
	})
}

// POST /ai/try-on (multipart: productImage, personImage)
func (h *AIHandler) GenerateTryOn(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	productImage, productFormat, ok := readImagePart(c, "productImage")
	if !ok {
		return
	}
	personImage, _, ok := readImagePart(c, "personImage")
	if !ok {
		return
	}

	result, err := h.ai.GenerateTryOn(c.Request.Context(), productImage, personImage, productFormat)
	if err != nil {
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "GENERATION_FAILED",
			i18n.T(lang, i18n.KeyAIImageFailed), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"imageUrl": result.URL,
	})
}

// readImagePart reads one multipart image field and reports its format
// ("png", "jpeg"). On failure it writes the error response itself.
func readImagePart(c *gin.Context, field string) ([]byte, string, bool) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		utils.BadRequestResponse(c, "Missing image field: "+field, nil)
		return nil, "", false
	}

	if fileHeader.Size > 10<<20 {
		utils.BadRequestResponse(c, "Image too large (max 10MB): "+field, nil)
		return nil, "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to read uploaded image")
		return nil, "", false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to read uploaded image")
		return nil, "", false
	}

	format := "png"
	if ct := fileHeader.Header.Get("Content-Type"); strings.HasPrefix(ct, "image/") {
		format = strings.TrimPrefix(ct, "image/")
	}

	return data, format, true
}
