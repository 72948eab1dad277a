package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/competeconnect/competition-api/internal/core/domain"
)

// CatalogHandler serves the static option lists the forms are built from.
type CatalogHandler struct {
	body catalogResponse
}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{body: catalogResponse{
		Countries:  []string{domain.DefaultCountry},
		States:     domain.IndianStates,
		Fields:     domain.Fields(),
		Levels:     domain.Levels(),
		Roles:      []domain.Role{domain.RoleCandidate, domain.RoleOrganizer},
		Categories: domain.PopularCategories,
		Menu:       domain.Menu,
	}}
}

// Get handles GET /v1/catalog.
//
// @Summary      Form options
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  catalogResponse
// @Router       /v1/catalog [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.body)
}
