package api

import (
	"errors"
	"net/http"

	reqdto "venuebook/internal/handler/dto/request"
	resdto "venuebook/internal/handler/dto/response"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminCatalogHandler struct {
	catalogCommands commands.CatalogCommands
	catalogQueries  queries.CatalogQueries
}

func NewAdminCatalogHandler(catalogCommands commands.CatalogCommands, catalogQueries queries.CatalogQueries) *AdminCatalogHandler {
	return &AdminCatalogHandler{
		catalogCommands: catalogCommands,
		catalogQueries:  catalogQueries,
	}
}

// @Summary List shift templates
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ShiftTemplateResponse
// @Router /admin/shift-templates [get]
func (h *AdminCatalogHandler) ListShiftTemplates(c *gin.Context) {
	views, err := h.catalogQueries.ListShiftTemplates(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.ShiftTemplateResponse, len(views))
	for i, rm := range views {
		response[i] = resdto.FromTemplateView(rm)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Create venue
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateVenueRequest true "Venue"
// @Success 201 {object} resdto.VenueResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/venues [post]
func (h *AdminCatalogHandler) CreateVenue(c *gin.Context) {
	var req reqdto.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	v, err := h.catalogCommands.CreateVenue(c.Request.Context(), req.ToInput())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromVenueEntity(v))
}

// @Summary Update venue
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Param request body reqdto.UpdateVenueRequest true "Fields to update"
// @Success 200 {object} resdto.VenueResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/venues/{id} [patch]
func (h *AdminCatalogHandler) UpdateVenue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid venue ID format",
		})
		return
	}

	var req reqdto.UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	v, err := h.catalogCommands.UpdateVenue(c.Request.Context(), id, req.ToInput())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVenueEntity(v))
}

// @Summary Create shift template
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ShiftTemplateRequest true "Shift template"
// @Success 201 {object} resdto.ShiftTemplateResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/shift-templates [post]
func (h *AdminCatalogHandler) CreateShiftTemplate(c *gin.Context) {
	var req reqdto.ShiftTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	t, err := h.catalogCommands.CreateShiftTemplate(c.Request.Context(), req.ToInput())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTemplateEntity(t))
}

// @Summary Update shift template
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shift template ID"
// @Param request body reqdto.ShiftTemplateRequest true "Shift template"
// @Success 200 {object} resdto.ShiftTemplateResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/shift-templates/{id} [put]
func (h *AdminCatalogHandler) UpdateShiftTemplate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid shift template ID format",
		})
		return
	}

	var req reqdto.ShiftTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	t, err := h.catalogCommands.UpdateShiftTemplate(c.Request.Context(), id, req.ToInput())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTemplateEntity(t))
}

// @Summary Create package
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePackageRequest true "Package"
// @Success 201 {object} resdto.PackageResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/packages [post]
func (h *AdminCatalogHandler) CreatePackage(c *gin.Context) {
	var req reqdto.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	p, err := h.catalogCommands.CreatePackage(c.Request.Context(), req.ToInput())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPackageEntity(p))
}

// @Summary Update package
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Package ID"
// @Param request body reqdto.UpdatePackageRequest true "Fields to update"
// @Success 200 {object} resdto.PackageResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/packages/{id} [patch]
func (h *AdminCatalogHandler) UpdatePackage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid package ID format",
		})
		return
	}

	var req reqdto.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	p, err := h.catalogCommands.UpdatePackage(c.Request.Context(), id, req.ToInput())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPackageEntity(p))
}

// @Summary Create menu item
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateMenuItemRequest true "Menu item"
// @Success 201 {object} resdto.MenuItemResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/menu-items [post]
func (h *AdminCatalogHandler) CreateMenuItem(c *gin.Context) {
	var req reqdto.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	m, err := h.catalogCommands.CreateMenuItem(c.Request.Context(), req.ToInput())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromMenuItemEntity(m))
}

// @Summary Update menu item
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Param request body reqdto.UpdateMenuItemRequest true "Fields to update"
// @Success 200 {object} resdto.MenuItemResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/menu-items/{id} [patch]
func (h *AdminCatalogHandler) UpdateMenuItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid menu item ID format",
		})
		return
	}

	var req reqdto.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	m, err := h.catalogCommands.UpdateMenuItem(c.Request.Context(), id, req.ToInput())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMenuItemEntity(m))
}

func respondCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrVenueNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Venue not found",
		})
	case errors.Is(err, commands.ErrTemplateNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Shift template not found",
		})
	case errors.Is(err, commands.ErrPackageNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Package not found",
		})
	case errors.Is(err, commands.ErrMenuItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Menu item not found",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Domain validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
