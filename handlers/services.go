package handlers

import (
	"errors"
	"net/http"

	"cardoctor/services/catalog"
	"cardoctor/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the read-only service catalogue.
type CatalogHandler struct {
	Svc    catalog.CatalogService
	Logger *zap.Logger
}

func NewCatalogHandler(svc catalog.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Svc: svc, Logger: logger}
}

// ListServices handles GET /services.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.Svc.ListServices(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListServices: failed to fetch services", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Error fetching services", "")
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetServiceByID handles GET /services/:id.
func (h *CatalogHandler) GetServiceByID(c *gin.Context) {
	id := c.Param("id")

	summary, err := h.Svc.GetService(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidID):
			utils.JSONError(c, http.StatusBadRequest, "Invalid service ID format", "")
		case errors.Is(err, catalog.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "Service not found", "")
		default:
			h.Logger.Error("GetServiceByID: failed to fetch service", zap.String("id", id), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Error fetching service", "")
		}
		return
	}
	c.JSON(http.StatusOK, summary)
}
