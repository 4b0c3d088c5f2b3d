package queries

import (
	"context"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/shift"
	"venuebook/internal/infra"
	"venuebook/internal/infra/db"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability.go -package=queriesmock

var ErrVenueNotFound = errs.New("venue not found")

type AvailabilityQueries interface {
	Resolve(ctx context.Context, venueID uuid.UUID, dateRange shift.DateRange) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	uow       shared.UnitOfWork
	venues    shared.VenueRepository
	templates shared.TemplateRepository
	bookings  shared.BookingRepository
}

func NewAvailabilityQueries(
	uow shared.UnitOfWork,
	venues shared.VenueRepository,
	templates shared.TemplateRepository,
	bookings shared.BookingRepository,
) AvailabilityQueries {
	return &availabilityQueriesImpl{uow: uow, venues: venues, templates: templates, bookings: bookings}
}

// Resolve expands the venue's eligible shift templates over the date range and
// overlays active bookings: a pending hold marks the slot held, a confirmed
// booking marks it booked, everything else is free. Cancelled and completed
// bookings never occupy a slot.
func (q *availabilityQueriesImpl) Resolve(ctx context.Context, venueID uuid.UUID, dateRange shift.DateRange) (*AvailabilityView, error) {
	var (
		templates []*shift.Template
		active    []shared.ActiveSlot
	)

	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		if _, err := q.venues.FindByID(ctx, dbtx, venueID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVenueNotFound
			}
			return errs.Wrap(err, "failed to load venue")
		}

		var err error
		templates, err = q.templates.ListForVenue(ctx, dbtx, venueID)
		if err != nil {
			return errs.Wrap(err, "failed to load venue shift templates")
		}

		active, err = q.bookings.ActiveSlots(ctx, dbtx, venueID, dateRange)
		if err != nil {
			return errs.Wrap(err, "failed to load active slots")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	instances := shift.ExpandInstances(venueID, templates, dateRange)

	occupied := make(map[shift.InstanceKey]booking.Status, len(active))
	for _, slot := range active {
		occupied[shift.InstanceKey{VenueID: venueID, Date: slot.Date, TemplateID: slot.TemplateID}] = slot.Status
	}

	slots := make([]SlotView, 0, len(instances))
	for _, inst := range instances {
		status := SlotFree
		switch occupied[inst.Key] {
		case booking.StatusPending:
			status = SlotHeld
		case booking.StatusConfirmed:
			status = SlotBooked
		}
		slots = append(slots, SlotView{
			Date:       inst.Key.Date.String(),
			TemplateID: inst.Key.TemplateID,
			Label:      inst.Label,
			StartsAt:   inst.StartsAt.String(),
			EndsAt:     inst.EndsAt.String(),
			Status:     status,
		})
	}

	return &AvailabilityView{
		VenueID: venueID,
		From:    dateRange.Start().String(),
		To:      dateRange.End().String(),
		Slots:   slots,
	}, nil
}
