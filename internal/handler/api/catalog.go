package api

import (
	"errors"
	"net/http"

	resdto "venuebook/internal/handler/dto/response"
	"venuebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogHandler is the public read side of the package and menu catalog.
type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{catalogQueries: catalogQueries}
}

// @Summary List packages
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PackageResponse
// @Router /packages [get]
func (h *CatalogHandler) ListPackages(c *gin.Context) {
	views, err := h.catalogQueries.ListPackages(c.Request.Context(), true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.PackageResponse, len(views))
	for i, rm := range views {
		response[i] = resdto.FromPackageView(rm)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get package
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Package ID"
// @Success 200 {object} resdto.PackageResponse
// @Failure 404 {object} map[string]string
// @Router /packages/{id} [get]
func (h *CatalogHandler) GetPackage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid package ID format",
		})
		return
	}

	view, err := h.catalogQueries.GetPackage(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrPackageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Package not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPackageView(view))
}

// @Summary List menu items
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.MenuItemResponse
// @Router /menu-items [get]
func (h *CatalogHandler) ListMenuItems(c *gin.Context) {
	views, err := h.catalogQueries.ListMenuItems(c.Request.Context(), true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.MenuItemResponse, len(views))
	for i, rm := range views {
		response[i] = resdto.FromMenuItemView(rm)
	}
	c.JSON(http.StatusOK, response)
}
