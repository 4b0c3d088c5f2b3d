//go:build unit || e2e

package builder

import (
	"time"

	dombooking "venuebook/internal/domain/booking"
	"venuebook/internal/domain/shift"
	reqdto "venuebook/internal/handler/dto/request"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID              uuid.UUID
	VenueID         uuid.UUID
	VenueName       string
	ShiftTemplateID uuid.UUID
	ShiftLabel      string
	ShiftDate       shift.Date
	CustomerID      uuid.UUID
	PackageID       uuid.UUID
	PackageName     string
	MenuItemIDs     []uuid.UUID
	GuestCount      int
	Status          dombooking.Status
	CancelReason    *dombooking.CancelReason
	CreatedAt       time.Time
	ConfirmedAt     *time.Time
	CancelledAt     *time.Time
	CompletedAt     *time.Time
	UpdatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:              uuid.New(),
		VenueID:         uuid.New(),
		VenueName:       "Harbor Hall",
		ShiftTemplateID: uuid.New(),
		ShiftLabel:      "Dinner",
		ShiftDate:       shift.DateOf(now.AddDate(0, 0, 7)),
		CustomerID:      uuid.New(),
		PackageID:       uuid.New(),
		PackageName:     "Standard Course",
		MenuItemIDs:     nil,
		GuestCount:      4,
		Status:          dombooking.StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() *dombooking.Booking {
	return dombooking.ReconstructBooking(
		b.ID,
		shift.InstanceKey{VenueID: b.VenueID, Date: b.ShiftDate, TemplateID: b.ShiftTemplateID},
		b.CustomerID, b.PackageID,
		b.MenuItemIDs,
		b.GuestCount,
		b.Status,
		b.CancelReason,
		b.CreatedAt,
		b.ConfirmedAt, b.CancelledAt, b.CompletedAt,
		b.UpdatedAt,
	)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		VenueID:         b.VenueID,
		ShiftTemplateID: b.ShiftTemplateID,
		ShiftDate:       b.ShiftDate.String(),
		PackageID:       b.PackageID,
		MenuItemIDs:     b.MenuItemIDs,
		GuestCount:      b.GuestCount,
	}
}

func (b *BookingBuilder) BuildViewQuery() *queries.BookingView {
	var reason *string
	if b.CancelReason != nil {
		s := string(*b.CancelReason)
		reason = &s
	}
	return &queries.BookingView{
		ID:              b.ID,
		VenueID:         b.VenueID,
		VenueName:       b.VenueName,
		ShiftDate:       b.ShiftDate.String(),
		ShiftTemplateID: b.ShiftTemplateID,
		ShiftLabel:      b.ShiftLabel,
		CustomerID:      b.CustomerID,
		PackageID:       b.PackageID,
		PackageName:     b.PackageName,
		MenuItemIDs:     b.MenuItemIDs,
		GuestCount:      b.GuestCount,
		Status:          b.Status.String(),
		CancelReason:    reason,
		CreatedAt:       b.CreatedAt,
		ConfirmedAt:     b.ConfirmedAt,
		CancelledAt:     b.CancelledAt,
		CompletedAt:     b.CompletedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:         b.ID,
		VenueID:    b.VenueID,
		VenueName:  b.VenueName,
		ShiftDate:  b.ShiftDate.String(),
		ShiftLabel: b.ShiftLabel,
		GuestCount: b.GuestCount,
		Status:     b.Status.String(),
		CreatedAt:  b.CreatedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithVenueID(venueID uuid.UUID) *BookingBuilder {
	b.VenueID = venueID
	return b
}

func (b *BookingBuilder) WithShiftTemplateID(templateID uuid.UUID) *BookingBuilder {
	b.ShiftTemplateID = templateID
	return b
}

func (b *BookingBuilder) WithShiftDate(date shift.Date) *BookingBuilder {
	b.ShiftDate = date
	return b
}

func (b *BookingBuilder) WithCustomerID(customerID uuid.UUID) *BookingBuilder {
	b.CustomerID = customerID
	return b
}

func (b *BookingBuilder) WithPackageID(packageID uuid.UUID) *BookingBuilder {
	b.PackageID = packageID
	return b
}

func (b *BookingBuilder) WithMenuItemIDs(ids []uuid.UUID) *BookingBuilder {
	b.MenuItemIDs = ids
	return b
}

func (b *BookingBuilder) WithGuestCount(count int) *BookingBuilder {
	b.GuestCount = count
	return b
}

func (b *BookingBuilder) WithCreatedAt(createdAt time.Time) *BookingBuilder {
	b.CreatedAt = createdAt
	return b
}

func (b *BookingBuilder) AsConfirmed() *BookingBuilder {
	at := b.CreatedAt.Add(time.Minute)
	b.Status = dombooking.StatusConfirmed
	b.ConfirmedAt = &at
	b.UpdatedAt = at
	return b
}

func (b *BookingBuilder) AsCancelled(reason dombooking.CancelReason) *BookingBuilder {
	at := b.CreatedAt.Add(time.Minute)
	b.Status = dombooking.StatusCancelled
	b.CancelReason = &reason
	b.CancelledAt = &at
	b.UpdatedAt = at
	return b
}

func (b *BookingBuilder) AsCompleted() *BookingBuilder {
	b.AsConfirmed()
	b.ShiftDate = shift.DateOf(time.Now().AddDate(0, 0, -1))
	at := time.Now()
	b.Status = dombooking.StatusCompleted
	b.CompletedAt = &at
	b.UpdatedAt = at
	return b
}
