package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	response "webquote/internal/adapter/http/dto/response"
	"webquote/internal/domain/entities"
)

// CatalogHandler serves the reference data needed to render a selection.
type CatalogHandler struct {
	catalog response.CatalogResponse
}

func NewCatalogHandler(c entities.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: response.FromCatalog(c)}
}

// GetCatalog godoc
// @Summary      Get the quote catalog
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.CatalogResponse
// @Router       /catalog [get]
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog)
}
