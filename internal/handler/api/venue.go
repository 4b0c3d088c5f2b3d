package api

import (
	"errors"
	"net/http"

	"venuebook/internal/domain/shift"
	resdto "venuebook/internal/handler/dto/response"
	"venuebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VenueHandler struct {
	catalogQueries      queries.CatalogQueries
	availabilityQueries queries.AvailabilityQueries
}

func NewVenueHandler(catalogQueries queries.CatalogQueries, availabilityQueries queries.AvailabilityQueries) *VenueHandler {
	return &VenueHandler{
		catalogQueries:      catalogQueries,
		availabilityQueries: availabilityQueries,
	}
}

// @Summary List venues
// @Description List venues; inactive ones are hidden unless include_inactive is set
// @Tags venues
// @Produce json
// @Security BearerAuth
// @Param include_inactive query bool false "Include deactivated venues"
// @Success 200 {array} resdto.VenueResponse
// @Router /venues [get]
func (h *VenueHandler) ListVenues(c *gin.Context) {
	activeOnly := c.Query("include_inactive") != "true"

	views, err := h.catalogQueries.ListVenues(c.Request.Context(), activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.VenueResponse, len(views))
	for i, rm := range views {
		response[i] = resdto.FromVenueView(rm)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get venue
// @Tags venues
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Success 200 {object} resdto.VenueResponse
// @Failure 404 {object} map[string]string
// @Router /venues/{id} [get]
func (h *VenueHandler) GetVenue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid venue ID format",
		})
		return
	}

	view, err := h.catalogQueries.GetVenue(c.Request.Context(), id)
	if err != nil {
		respondVenueError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVenueView(view))
}

// @Summary List venue shifts
// @Description List the shift templates offered at a venue
// @Tags venues
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Success 200 {array} resdto.ShiftTemplateResponse
// @Failure 404 {object} map[string]string
// @Router /venues/{id}/shifts [get]
func (h *VenueHandler) ListVenueShifts(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid venue ID format",
		})
		return
	}

	views, err := h.catalogQueries.ListVenueShifts(c.Request.Context(), id)
	if err != nil {
		respondVenueError(c, err)
		return
	}

	response := make([]*resdto.ShiftTemplateResponse, len(views))
	for i, rm := range views {
		response[i] = resdto.FromTemplateView(rm)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Venue availability
// @Description Classify every shift instance in the date range as free, held or booked
// @Tags venues
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /venues/{id}/availability [get]
func (h *VenueHandler) GetAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid venue ID format",
		})
		return
	}

	from, err := shift.ParseDate(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid from date, expected YYYY-MM-DD",
		})
		return
	}
	to, err := shift.ParseDate(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid to date, expected YYYY-MM-DD",
		})
		return
	}

	dateRange, err := shift.NewDateRange(from, to)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Date range end must not precede start",
		})
		return
	}

	view, err := h.availabilityQueries.Resolve(c.Request.Context(), id, dateRange)
	if err != nil {
		respondVenueError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

func respondVenueError(c *gin.Context, err error) {
	if errors.Is(err, queries.ErrVenueNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Venue not found",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}
