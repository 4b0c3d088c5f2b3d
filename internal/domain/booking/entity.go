package booking

import (
	"errors"
	"time"

	"venuebook/internal/domain/shift"

	"github.com/google/uuid"
)

var (
	ErrInvalidGuestCount   = errors.New("guest count must be positive and within venue capacity")
	ErrInvalidTransition   = errors.New("invalid booking status transition")
	ErrMissingCancelReason = errors.New("cancellation requires a reason")
)

// Booking is owned exclusively by the ledger. It is never deleted; every
// lifecycle change is a status transition so the audit trail survives.
type Booking struct {
	id          uuid.UUID
	slot        shift.InstanceKey
	customerID  uuid.UUID
	packageID   uuid.UUID
	menuItemIDs []uuid.UUID
	guestCount  int
	status      Status
	reason      *CancelReason
	createdAt   time.Time
	confirmedAt *time.Time
	cancelledAt *time.Time
	completedAt *time.Time
	updatedAt   time.Time
}

func ReconstructBooking(
	id uuid.UUID,
	slot shift.InstanceKey,
	customerID, packageID uuid.UUID,
	menuItemIDs []uuid.UUID,
	guestCount int,
	status Status,
	reason *CancelReason,
	createdAt time.Time,
	confirmedAt, cancelledAt, completedAt *time.Time,
	updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		slot:        slot,
		customerID:  customerID,
		packageID:   packageID,
		menuItemIDs: menuItemIDs,
		guestCount:  guestCount,
		status:      status,
		reason:      reason,
		createdAt:   createdAt,
		confirmedAt: confirmedAt,
		cancelledAt: cancelledAt,
		completedAt: completedAt,
		updatedAt:   updatedAt,
	}
}

// Confirm moves a pending booking to confirmed.
func (b *Booking) Confirm(now time.Time) error {
	if !b.status.CanTransitionTo(StatusConfirmed) {
		return ErrInvalidTransition
	}
	b.status = StatusConfirmed
	b.confirmedAt = &now
	b.updatedAt = now
	return nil
}

// Cancel is allowed from pending or confirmed.
func (b *Booking) Cancel(reason CancelReason, now time.Time) error {
	if reason == "" {
		return ErrMissingCancelReason
	}
	if !b.status.CanTransitionTo(StatusCancelled) {
		return ErrInvalidTransition
	}
	b.status = StatusCancelled
	b.reason = &reason
	b.cancelledAt = &now
	b.updatedAt = now
	return nil
}

// Complete closes out a confirmed booking whose shift date has passed.
// Completing an already completed booking is a no-op.
func (b *Booking) Complete(now time.Time) error {
	if b.status == StatusCompleted {
		return nil
	}
	if !b.status.CanTransitionTo(StatusCompleted) {
		return ErrInvalidTransition
	}
	if !b.slot.Date.Before(shift.DateOf(now)) {
		return ErrInvalidTransition
	}
	b.status = StatusCompleted
	b.completedAt = &now
	b.updatedAt = now
	return nil
}

// HoldExpired reports whether a pending booking has outlived the hold.
func (b *Booking) HoldExpired(now time.Time, holdDuration time.Duration) bool {
	return b.status == StatusPending && now.Sub(b.createdAt) > holdDuration
}

func (b *Booking) IsActive() bool {
	return b.status.IsActive()
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) Slot() shift.InstanceKey { return b.slot }
func (b *Booking) VenueID() uuid.UUID      { return b.slot.VenueID }
func (b *Booking) CustomerID() uuid.UUID   { return b.customerID }
func (b *Booking) PackageID() uuid.UUID    { return b.packageID }
func (b *Booking) MenuItemIDs() []uuid.UUID {
	out := make([]uuid.UUID, len(b.menuItemIDs))
	copy(out, b.menuItemIDs)
	return out
}
func (b *Booking) GuestCount() int         { return b.guestCount }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) Reason() *CancelReason   { return b.reason }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) ConfirmedAt() *time.Time { return b.confirmedAt }
func (b *Booking) CancelledAt() *time.Time { return b.cancelledAt }
func (b *Booking) CompletedAt() *time.Time { return b.completedAt }
func (b *Booking) UpdatedAt() time.Time    { return b.updatedAt }
