package booking

import (
	"errors"

	"venuebook/internal/domain/shift"
	"venuebook/internal/domain/venue"
	"venuebook/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrVenueInactive       = errors.New("venue is not active")
	ErrTemplateNotEligible = errors.New("shift template is not eligible for this venue")
)

// Factory validates the creation-time invariants: venue active, template
// eligible at this instant (later eligibility edits never invalidate existing
// bookings), guest count within capacity. Slot conflicts are arbitrated by the
// ledger's storage layer, not here.
type Factory struct {
	Clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{Clock: clock}
}

func (f *Factory) CreateBooking(
	v *venue.Venue,
	t *shift.Template,
	date shift.Date,
	customerID, packageID uuid.UUID,
	menuItemIDs []uuid.UUID,
	guestCount int,
) (*Booking, error) {
	if !v.IsActive() {
		return nil, ErrVenueInactive
	}
	if !t.EligibleFor(v.ID()) {
		return nil, ErrTemplateNotEligible
	}
	if !v.Fits(guestCount) {
		return nil, ErrInvalidGuestCount
	}

	now := f.Clock.Now()
	return &Booking{
		id:          uuid.New(),
		slot:        shift.InstanceKey{VenueID: v.ID(), Date: date, TemplateID: t.ID()},
		customerID:  customerID,
		packageID:   packageID,
		menuItemIDs: menuItemIDs,
		guestCount:  guestCount,
		status:      StatusPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}
