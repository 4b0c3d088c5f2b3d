package request

import (
	"venuebook/internal/domain/shift"
	"venuebook/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	VenueID         uuid.UUID   `json:"venue_id" binding:"required"`
	ShiftTemplateID uuid.UUID   `json:"shift_template_id" binding:"required"`
	ShiftDate       string      `json:"shift_date" binding:"required"`
	PackageID       uuid.UUID   `json:"package_id" binding:"required"`
	MenuItemIDs     []uuid.UUID `json:"menu_item_ids,omitempty"`
	GuestCount      int         `json:"guest_count" binding:"required"`
}

func (r CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	date, err := shift.ParseDate(r.ShiftDate)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	return commands.CreateBookingInput{
		VenueID:     r.VenueID,
		TemplateID:  r.ShiftTemplateID,
		Date:        date,
		PackageID:   r.PackageID,
		MenuItemIDs: r.MenuItemIDs,
		GuestCount:  r.GuestCount,
	}, nil
}

type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}
