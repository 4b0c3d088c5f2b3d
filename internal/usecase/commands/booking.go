package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/shift"
	"venuebook/internal/domain/user"
	"venuebook/internal/infra"
	"venuebook/internal/infra/db"
	"venuebook/internal/pkg/clock"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

var (
	ErrVenueNotFound       = errs.New("venue not found")
	ErrVenueInactive       = errs.New("venue is not active")
	ErrTemplateNotFound    = errs.New("shift template not found")
	ErrTemplateNotEligible = errs.New("shift template is not eligible for this venue")
	ErrPackageNotFound     = errs.New("package not found")
	ErrMenuItemNotFound    = errs.New("menu item not found")
	ErrInvalidGuestCount   = errs.New("invalid guest count")
	ErrSlotUnavailable     = errs.New("slot is already held or booked")
	ErrBookingNotFound     = errs.New("booking not found")
	ErrInvalidTransition   = errs.New("invalid booking status transition")
	ErrForbidden           = errs.New("booking belongs to another customer")
)

type CreateBookingInput struct {
	VenueID     uuid.UUID
	TemplateID  uuid.UUID
	Date        shift.Date
	PackageID   uuid.UUID
	MenuItemIDs []uuid.UUID
	GuestCount  int
}

type BookingCommands interface {
	Create(ctx context.Context, actor user.Principal, input CreateBookingInput) (*booking.Booking, error)
	Confirm(ctx context.Context, id uuid.UUID) error
	Cancel(ctx context.Context, actor user.Principal, id uuid.UUID, reason booking.CancelReason) error
	Complete(ctx context.Context, id uuid.UUID) error
	ExpirePending(ctx context.Context) (int, error)
}

type bookingUseCaseImpl struct {
	uow          shared.UnitOfWork
	bookingRepo  shared.BookingRepository
	venueRepo    shared.VenueRepository
	templateRepo shared.TemplateRepository
	packageRepo  shared.PackageRepository
	menuItemRepo shared.MenuItemRepository
	factory      *booking.Factory
	clock        clock.Clock
	holdDuration time.Duration
	sweepBatch   int
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	bookingRepo shared.BookingRepository,
	venueRepo shared.VenueRepository,
	templateRepo shared.TemplateRepository,
	packageRepo shared.PackageRepository,
	menuItemRepo shared.MenuItemRepository,
	factory *booking.Factory,
	clock clock.Clock,
	holdDuration time.Duration,
	sweepBatch int,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:          uow,
		bookingRepo:  bookingRepo,
		venueRepo:    venueRepo,
		templateRepo: templateRepo,
		packageRepo:  packageRepo,
		menuItemRepo: menuItemRepo,
		factory:      factory,
		clock:        clock,
		holdDuration: holdDuration,
		sweepBatch:   sweepBatch,
	}
}

// Create places a pending hold on the slot. Eligibility and capacity are
// validated against the catalog as it stands right now; the slot conflict
// itself is arbitrated by the storage layer's unique index, so two concurrent
// creates for the same slot cannot both succeed.
func (u *bookingUseCaseImpl) Create(ctx context.Context, actor user.Principal, input CreateBookingInput) (*booking.Booking, error) {
	var created *booking.Booking

	err := u.uow.Within(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		v, err := u.venueRepo.FindByID(ctx, dbtx, input.VenueID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVenueNotFound
			}
			return errs.Wrap(err, "failed to load venue")
		}

		t, err := u.templateRepo.FindByID(ctx, dbtx, input.TemplateID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrTemplateNotFound
			}
			return errs.Wrap(err, "failed to load shift template")
		}

		pkg, err := u.packageRepo.FindByID(ctx, dbtx, input.PackageID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPackageNotFound
			}
			return errs.Wrap(err, "failed to load package")
		}
		if !pkg.IsActive() {
			return ErrPackageNotFound
		}

		menuItemIDs := dedupeIDs(input.MenuItemIDs)
		if len(menuItemIDs) > 0 {
			count, err := u.menuItemRepo.CountExisting(ctx, dbtx, menuItemIDs)
			if err != nil {
				return errs.Wrap(err, "failed to verify menu selections")
			}
			if count != len(menuItemIDs) {
				return ErrMenuItemNotFound
			}
		}

		b, err := u.factory.CreateBooking(v, t, input.Date, actor.ID, input.PackageID, menuItemIDs, input.GuestCount)
		if err != nil {
			return mapFactoryErr(err)
		}

		if err := u.bookingRepo.Create(ctx, dbtx, b); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrSlotUnavailable
			}
			return errs.Wrap(err, "failed to store booking")
		}

		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Confirm moves a pending booking to confirmed via compare-and-set: the
// update applies only if the row is still pending when it commits, so a
// concurrent cancel or sweep cannot be overwritten.
func (u *bookingUseCaseImpl) Confirm(ctx context.Context, id uuid.UUID) error {
	return u.transition(ctx, id, booking.StatusConfirmed, nil)
}

// Cancel is allowed for the owning customer and for admins. The reason is
// recorded permanently on the row.
func (u *bookingUseCaseImpl) Cancel(ctx context.Context, actor user.Principal, id uuid.UUID, reason booking.CancelReason) error {
	return u.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		b, err := u.bookingRepo.FindByID(ctx, dbtx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Wrap(err, "failed to load booking")
		}
		if !actor.CanActOn(b.CustomerID()) {
			return ErrForbidden
		}

		if err := b.Cancel(reason, u.clock.Now()); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}

		ok, err := u.bookingRepo.TransitionStatus(ctx, dbtx, id, booking.StatusPending, booking.StatusCancelled, &reason, u.clock.Now())
		if err != nil {
			return errs.Wrap(err, "failed to cancel booking")
		}
		if !ok {
			// Pending guard missed: the booking may have been confirmed in
			// the meantime, which is still cancellable.
			ok, err = u.bookingRepo.TransitionStatus(ctx, dbtx, id, booking.StatusConfirmed, booking.StatusCancelled, &reason, u.clock.Now())
			if err != nil {
				return errs.Wrap(err, "failed to cancel booking")
			}
		}
		if !ok {
			return ErrInvalidTransition
		}
		return nil
	})
}

// Complete closes out a confirmed booking once its shift date has passed.
// Completing an already completed booking succeeds without touching the row.
func (u *bookingUseCaseImpl) Complete(ctx context.Context, id uuid.UUID) error {
	return u.transition(ctx, id, booking.StatusCompleted, nil)
}

// ExpirePending cancels pending bookings whose hold has outlived the window.
// Each expired id is cancelled individually with the pending guard, so a
// booking confirmed mid-sweep is left alone and a single failure never aborts
// the pass. Returns the number of bookings actually expired.
func (u *bookingUseCaseImpl) ExpirePending(ctx context.Context) (int, error) {
	expired := 0
	err := u.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		cutoff := u.clock.Now().Add(-u.holdDuration)
		ids, err := u.bookingRepo.ExpiredPendingIDs(ctx, dbtx, cutoff, u.sweepBatch)
		if err != nil {
			return errs.Wrap(err, "failed to list expired holds")
		}

		reason := booking.ReasonExpired
		for _, id := range ids {
			ok, err := u.bookingRepo.TransitionStatus(ctx, dbtx, id, booking.StatusPending, booking.StatusCancelled, &reason, u.clock.Now())
			if err != nil {
				slog.Error("failed to expire booking hold", "booking_id", id, "error", err.Error())
				continue
			}
			if ok {
				expired++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return expired, nil
}

func (u *bookingUseCaseImpl) transition(ctx context.Context, id uuid.UUID, to booking.Status, reason *booking.CancelReason) error {
	return u.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		b, err := u.bookingRepo.FindByID(ctx, dbtx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Wrap(err, "failed to load booking")
		}

		now := u.clock.Now()
		from := b.Status()
		switch to {
		case booking.StatusConfirmed:
			if err := b.Confirm(now); err != nil {
				return errs.Mark(err, ErrInvalidTransition)
			}
		case booking.StatusCompleted:
			if from == booking.StatusCompleted {
				return nil
			}
			if err := b.Complete(now); err != nil {
				return errs.Mark(err, ErrInvalidTransition)
			}
		default:
			return ErrInvalidTransition
		}

		ok, err := u.bookingRepo.TransitionStatus(ctx, dbtx, id, from, to, reason, now)
		if err != nil {
			return errs.Wrap(err, "failed to transition booking")
		}
		if !ok {
			return ErrInvalidTransition
		}
		return nil
	})
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func mapFactoryErr(err error) error {
	switch {
	case errors.Is(err, booking.ErrVenueInactive):
		return ErrVenueInactive
	case errors.Is(err, booking.ErrTemplateNotEligible):
		return ErrTemplateNotEligible
	case errors.Is(err, booking.ErrInvalidGuestCount):
		return ErrInvalidGuestCount
	default:
		return errs.Wrap(err, "failed to build booking")
	}
}
