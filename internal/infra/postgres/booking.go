package postgres

import (
	"context"
	"time"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/shift"
	"venuebook/internal/infra"
	"venuebook/internal/infra/db"
	"venuebook/internal/pkg/ptr"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// BookingRepository is the ledger's storage. The partial unique index
// bookings_active_slot_key on (venue_id, shift_date, shift_template_id) for
// active statuses makes the conflict check-and-insert atomic per slot: the
// losing inserter gets a unique violation, surfaced as KindConflict. No lock
// wider than the conflicting key is ever taken.
type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error {
	const query = `
		INSERT INTO bookings (
			id, venue_id, shift_date, shift_template_id, customer_id, package_id,
			guest_count, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	slot := b.Slot()
	_, err := dbtx.Exec(ctx, query,
		b.ID(),
		slot.VenueID,
		slot.Date.Time(),
		slot.TemplateID,
		b.CustomerID(),
		b.PackageID(),
		b.GuestCount(),
		b.Status().String(),
		b.CreatedAt(),
		b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert booking", err)
	}

	for _, itemID := range b.MenuItemIDs() {
		_, err := dbtx.Exec(ctx,
			`INSERT INTO booking_menu_items (booking_id, menu_item_id) VALUES ($1, $2)`,
			b.ID(), itemID,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert booking menu selection", err)
		}
	}

	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	const query = `
		SELECT id, venue_id, shift_date, shift_template_id, customer_id, package_id,
		       guest_count, status, cancel_reason,
		       created_at, confirmed_at, cancelled_at, completed_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	b, err := scanBooking(dbtx.QueryRow(ctx, query, id))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, err
	}

	menuIDs, err := r.menuItemIDs(ctx, dbtx, id)
	if err != nil {
		return nil, err
	}

	return withMenuItems(b, menuIDs), nil
}

// TransitionStatus performs the compare-and-set at the heart of the state
// machine: the row moves from -> to only if it is still in from when the
// update commits. Returns false when the guard did not match, which callers
// disambiguate into NotFound or InvalidTransition.
func (r *BookingRepository) TransitionStatus(
	ctx context.Context,
	dbtx db.DBTX,
	id uuid.UUID,
	from, to booking.Status,
	reason *booking.CancelReason,
	now time.Time,
) (bool, error) {
	var query string
	args := []any{id, from.String(), to.String(), now}

	switch to {
	case booking.StatusConfirmed:
		query = `
			UPDATE bookings
			SET status = $3, confirmed_at = $4, updated_at = $4
			WHERE id = $1 AND status = $2
		`
	case booking.StatusCancelled:
		var reasonStr *string
		if reason != nil {
			s := reason.String()
			reasonStr = &s
		}
		query = `
			UPDATE bookings
			SET status = $3, cancelled_at = $4, cancel_reason = $5, updated_at = $4
			WHERE id = $1 AND status = $2
		`
		args = append(args, reasonStr)
	case booking.StatusCompleted:
		query = `
			UPDATE bookings
			SET status = $3, completed_at = $4, updated_at = $4
			WHERE id = $1 AND status = $2
		`
	default:
		return false, infra.WrapRepoErr("unsupported status transition target", nil, infra.KindDBFailure)
	}

	tag, err := dbtx.Exec(ctx, query, args...)
	if err != nil {
		return false, infra.WrapRepoErr("failed to transition booking status", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ExpiredPendingIDs lists pending bookings created before cutoff. The sweep
// cancels them one by one so a single failure cannot abort the whole pass.
func (r *BookingRepository) ExpiredPendingIDs(ctx context.Context, dbtx db.DBTX, cutoff time.Time, limit int) ([]uuid.UUID, error) {
	const query = `
		SELECT id
		FROM bookings
		WHERE status = 'pending' AND created_at < $1
		ORDER BY created_at
		LIMIT $2
	`

	rows, err := dbtx.Query(ctx, query, cutoff, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expired pending bookings", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan expired booking id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate expired bookings", err)
	}
	return ids, nil
}

// ActiveSlots returns the occupied (pending or confirmed) slot keys for a
// venue within the date range, for availability classification.
func (r *BookingRepository) ActiveSlots(ctx context.Context, dbtx db.DBTX, venueID uuid.UUID, dateRange shift.DateRange) ([]shared.ActiveSlot, error) {
	const query = `
		SELECT shift_date, shift_template_id, status
		FROM bookings
		WHERE venue_id = $1
		  AND shift_date BETWEEN $2 AND $3
		  AND status IN ('pending', 'confirmed')
	`

	rows, err := dbtx.Query(ctx, query, venueID, dateRange.Start().Time(), dateRange.End().Time())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query active slots", err)
	}
	defer rows.Close()

	var slots []shared.ActiveSlot
	for rows.Next() {
		var (
			date       time.Time
			templateID uuid.UUID
			status     string
		)
		if err := rows.Scan(&date, &templateID, &status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan active slot", err)
		}
		slots = append(slots, shared.ActiveSlot{
			Date:       shift.DateOf(date),
			TemplateID: templateID,
			Status:     booking.Status(status),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate active slots", err)
	}
	return slots, nil
}

func (r *BookingRepository) menuItemIDs(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := dbtx.Query(ctx,
		`SELECT menu_item_id FROM booking_menu_items WHERE booking_id = $1`,
		bookingID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query booking menu selections", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan menu selection", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate menu selections", err)
	}
	return ids, nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, venueID, templateID, customerID, packageID uuid.UUID
		shiftDate                                      time.Time
		guestCount                                     int
		status                                         string
		cancelReason                                   pgtype.Text
		createdAt, updatedAt                           time.Time
		confirmedAt, cancelledAt, completedAt          pgtype.Timestamptz
	)

	err := row.Scan(
		&id, &venueID, &shiftDate, &templateID, &customerID, &packageID,
		&guestCount, &status, &cancelReason,
		&createdAt, &confirmedAt, &cancelledAt, &completedAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan booking", err)
	}

	var reason *booking.CancelReason
	if s := ptr.StringFromPgtype(cancelReason); s != nil {
		r := booking.CancelReason(*s)
		reason = &r
	}

	return booking.ReconstructBooking(
		id,
		shift.InstanceKey{VenueID: venueID, Date: shift.DateOf(shiftDate), TemplateID: templateID},
		customerID, packageID,
		nil,
		guestCount,
		booking.Status(status),
		reason,
		createdAt,
		ptr.TimeFromPgtype(confirmedAt),
		ptr.TimeFromPgtype(cancelledAt),
		ptr.TimeFromPgtype(completedAt),
		updatedAt,
	), nil
}

func withMenuItems(b *booking.Booking, menuIDs []uuid.UUID) *booking.Booking {
	return booking.ReconstructBooking(
		b.ID(), b.Slot(), b.CustomerID(), b.PackageID(), menuIDs,
		b.GuestCount(), b.Status(), b.Reason(),
		b.CreatedAt(), b.ConfirmedAt(), b.CancelledAt(), b.CompletedAt(), b.UpdatedAt(),
	)
}
