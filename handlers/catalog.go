// File: handlers/catalog.go
package handlers

import (
	"errors"
	"net/http"

	catalogRepo "glospa/database/repository/catalog"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// CatalogHandler exposes read access to the service catalog.
type CatalogHandler struct {
	Catalog catalogRepo.CatalogRepository
	Logger  *zap.Logger
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(catalog catalogRepo.CatalogRepository, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog, Logger: logger}
}

// ListServices handles GET /api/services.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.Catalog.GetAllServices(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListServices: failed to fetch services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch services"})
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetServiceByID handles GET /api/services/id/:id.
func (h *CatalogHandler) GetServiceByID(c *gin.Context) {
	id := c.Param("id")
	svc, err := h.Catalog.GetServiceByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
			return
		}
		h.Logger.Error("GetServiceByID: failed to fetch service", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch service"})
		return
	}
	if svc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// SearchService handles GET /api/services/search?name=. The lookup uses the
// same case-insensitive substring match the SMS flow resolves service names
// with.
func (h *CatalogHandler) SearchService(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing name query parameter"})
		return
	}

	svc, err := h.Catalog.FindServiceByName(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no service matches that name"})
			return
		}
		h.Logger.Error("SearchService: lookup failed", zap.String("name", name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search services"})
		return
	}
	if svc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no service matches that name"})
		return
	}
	c.JSON(http.StatusOK, svc)
}
