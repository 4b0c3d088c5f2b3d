package api

import (
	"net/http"

	"venuebook/internal/domain/booking"
	reqdto "venuebook/internal/handler/dto/request"
	resdto "venuebook/internal/handler/dto/response"
	"venuebook/internal/handler/middleware"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminBookingHandler drives the staff side of the ledger: confirming holds,
// cancelling on the venue's behalf and closing out past shifts.
type AdminBookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewAdminBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *AdminBookingHandler {
	return &AdminBookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary List all bookings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (pending|confirmed|cancelled|completed)"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Router /admin/bookings [get]
func (h *AdminBookingHandler) ListBookings(c *gin.Context) {
	var status *string
	if s := c.Query("status"); s != "" {
		if !booking.Status(s).IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown booking status",
			})
			return
		}
		status = &s
	}

	items, err := h.bookingQueries.ListAll(c.Request.Context(), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.BookingListResponse, len(items))
	for i, rm := range items {
		response[i] = resdto.FromBookingListItem(rm)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Confirm booking
// @Description Move a pending hold to confirmed
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/bookings/{id}/confirm [post]
func (h *AdminBookingHandler) ConfirmBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	if err := h.bookingCommands.Confirm(c.Request.Context(), id); err != nil {
		respondTransitionError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Cancel booking
// @Description Cancel any pending or confirmed booking with a recorded reason
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest false "Cancellation reason"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/bookings/{id}/cancel [post]
func (h *AdminBookingHandler) CancelBooking(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	reason := booking.ReasonVenueUnavailable
	var req reqdto.CancelBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr == nil && req.Reason != "" {
		switch booking.CancelReason(req.Reason) {
		case booking.ReasonCustomerRequest, booking.ReasonVenueUnavailable:
			reason = booking.CancelReason(req.Reason)
		default:
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown cancellation reason",
			})
			return
		}
	}

	if err := h.bookingCommands.Cancel(c.Request.Context(), actor, id, reason); err != nil {
		respondTransitionError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Complete booking
// @Description Close out a confirmed booking whose shift date has passed
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/bookings/{id}/complete [post]
func (h *AdminBookingHandler) CompleteBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	if err := h.bookingCommands.Complete(c.Request.Context(), id); err != nil {
		respondTransitionError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
