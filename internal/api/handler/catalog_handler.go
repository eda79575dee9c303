package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saas-pm/project-hub/internal/core/ports"
)

type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Create adds a service to the catalog.
//
// @Summary      Create a catalog service
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createServiceRequest  true  "Service"
// @Success      201   {object}  domain.Service
// @Failure      422   {object}  map[string]string
// @Router       /admin/services [post]
func (h *CatalogHandler) Create(c echo.Context) error {
	var req createServiceRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	svc, err := h.catalog.Create(c.Request().Context(), req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, svc)
}

// List returns the catalog. Mounted under both /admin and /client.
//
// @Summary      List catalog services
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Service
// @Router       /client/services [get]
// @Router       /admin/services [get]
func (h *CatalogHandler) List(c echo.Context) error {
	services, err := h.catalog.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, services)
}
