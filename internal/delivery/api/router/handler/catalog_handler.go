package handler

import (
	"net/http"

	"forthecos/internal/delivery/api/response"
	"forthecos/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// CatalogHandler serves the static category catalog.
type CatalogHandler struct{}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// List returns every category with its subcategories.
func (h *CatalogHandler) List(c echo.Context) error {
	return response.Success(c, http.StatusOK, entity.Categories())
}
