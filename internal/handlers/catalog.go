// internal/handlers/catalog.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sproutlabs/sprout-backend/internal/services"
	"github.com/sproutlabs/sprout-backend/internal/utils"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GET /catalog
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	params := utils.GetPaginationParams(c)

	items := filterCatalog(h.catalogService.List(lang), params)
	start, end := utils.PageBounds(params, len(items))

	utils.PaginatedResponse(c, utils.CreatePaginationResult(
		items[start:end], int64(len(items)), params))
}

// GET /catalog/:id
func (h *CatalogHandler) GetCatalogItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	item, err := h.catalogService.Get(lang, id)
	if err != nil {
		utils.NotFoundResponse(c, "product")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"item": item,
	})
}

func filterCatalog(items []services.CatalogItem, params utils.PaginationParams) []services.CatalogItem {
	if params.Search == "" && params.Category == "" {
		return items
	}

	search := strings.ToLower(params.Search)
	filtered := make([]services.CatalogItem, 0, len(items))
	for _, item := range items {
		if params.Category != "" && item.Product.Category != params.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(item.Product.Title), search) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}
