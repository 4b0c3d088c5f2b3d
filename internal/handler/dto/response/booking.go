package response

import (
	"time"

	"venuebook/internal/domain/booking"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID              uuid.UUID   `json:"id"`
	VenueID         uuid.UUID   `json:"venueId"`
	VenueName       string      `json:"venueName,omitempty"`
	ShiftDate       string      `json:"shiftDate"`
	ShiftTemplateID uuid.UUID   `json:"shiftTemplateId"`
	ShiftLabel      string      `json:"shiftLabel,omitempty"`
	CustomerID      uuid.UUID   `json:"customerId"`
	PackageID       uuid.UUID   `json:"packageId"`
	PackageName     string      `json:"packageName,omitempty"`
	MenuItemIDs     []uuid.UUID `json:"menuItemIds"`
	GuestCount      int         `json:"guestCount"`
	Status          string      `json:"status"`
	CancelReason    *string     `json:"cancelReason,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	ConfirmedAt     *time.Time  `json:"confirmedAt,omitempty"`
	CancelledAt     *time.Time  `json:"cancelledAt,omitempty"`
	CompletedAt     *time.Time  `json:"completedAt,omitempty"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

type BookingListResponse struct {
	ID         uuid.UUID `json:"id"`
	VenueID    uuid.UUID `json:"venueId"`
	VenueName  string    `json:"venueName"`
	ShiftDate  string    `json:"shiftDate"`
	ShiftLabel string    `json:"shiftLabel"`
	GuestCount int       `json:"guestCount"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              rm.ID,
		VenueID:         rm.VenueID,
		VenueName:       rm.VenueName,
		ShiftDate:       rm.ShiftDate,
		ShiftTemplateID: rm.ShiftTemplateID,
		ShiftLabel:      rm.ShiftLabel,
		CustomerID:      rm.CustomerID,
		PackageID:       rm.PackageID,
		PackageName:     rm.PackageName,
		MenuItemIDs:     rm.MenuItemIDs,
		GuestCount:      rm.GuestCount,
		Status:          rm.Status,
		CancelReason:    rm.CancelReason,
		CreatedAt:       rm.CreatedAt,
		ConfirmedAt:     rm.ConfirmedAt,
		CancelledAt:     rm.CancelledAt,
		CompletedAt:     rm.CompletedAt,
		UpdatedAt:       rm.UpdatedAt,
	}
}

func FromBookingListItem(rm *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:         rm.ID,
		VenueID:    rm.VenueID,
		VenueName:  rm.VenueName,
		ShiftDate:  rm.ShiftDate,
		ShiftLabel: rm.ShiftLabel,
		GuestCount: rm.GuestCount,
		Status:     rm.Status,
		CreatedAt:  rm.CreatedAt,
	}
}

// FromBookingEntity serves the create path, where the freshly inserted row is
// already in hand and a read-side round trip would be wasted.
func FromBookingEntity(b *booking.Booking) *BookingResponse {
	var reason *string
	if r := b.Reason(); r != nil {
		s := r.String()
		reason = &s
	}
	return &BookingResponse{
		ID:              b.ID(),
		VenueID:         b.VenueID(),
		ShiftDate:       b.Slot().Date.String(),
		ShiftTemplateID: b.Slot().TemplateID,
		CustomerID:      b.CustomerID(),
		PackageID:       b.PackageID(),
		MenuItemIDs:     b.MenuItemIDs(),
		GuestCount:      b.GuestCount(),
		Status:          b.Status().String(),
		CancelReason:    reason,
		CreatedAt:       b.CreatedAt(),
		ConfirmedAt:     b.ConfirmedAt(),
		CancelledAt:     b.CancelledAt(),
		CompletedAt:     b.CompletedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
}
