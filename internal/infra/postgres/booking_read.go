package postgres

import (
	"context"
	"time"

	"venuebook/internal/domain/shift"
	"venuebook/internal/infra"
	"venuebook/internal/pkg/ptr"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BookingReadStore serves denormalized booking views straight off the pool.
// The read side never participates in the serialization transactions the
// write side uses.
type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const query = `
		SELECT b.id, b.venue_id, v.name, b.shift_date, b.shift_template_id, st.label,
		       b.customer_id, b.package_id, p.name,
		       COALESCE((SELECT array_agg(bmi.menu_item_id) FROM booking_menu_items bmi WHERE bmi.booking_id = b.id), '{}'),
		       b.guest_count, b.status, b.cancel_reason,
		       b.created_at, b.confirmed_at, b.cancelled_at, b.completed_at, b.updated_at
		FROM bookings b
		JOIN venues v ON v.id = b.venue_id
		JOIN shift_templates st ON st.id = b.shift_template_id
		JOIN packages p ON p.id = b.package_id
		WHERE b.id = $1
	`

	row := s.pool.QueryRow(ctx, query, id)

	var (
		view         queries.BookingView
		shiftDate    time.Time
		cancelReason pgtype.Text

		confirmedAt, cancelledAt, completedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.VenueID, &view.VenueName, &shiftDate, &view.ShiftTemplateID, &view.ShiftLabel,
		&view.CustomerID, &view.PackageID, &view.PackageName,
		&view.MenuItemIDs,
		&view.GuestCount, &view.Status, &cancelReason,
		&view.CreatedAt, &confirmedAt, &cancelledAt, &completedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking view", err)
	}

	view.ShiftDate = shift.DateOf(shiftDate).String()
	view.CancelReason = ptr.StringFromPgtype(cancelReason)
	view.ConfirmedAt = ptr.TimeFromPgtype(confirmedAt)
	view.CancelledAt = ptr.TimeFromPgtype(cancelledAt)
	view.CompletedAt = ptr.TimeFromPgtype(completedAt)
	return &view, nil
}

func (s *BookingReadStore) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*queries.BookingListItem, error) {
	const query = listQuery + `
		WHERE b.customer_id = $1
		ORDER BY b.shift_date DESC, b.created_at DESC
	`
	return s.list(ctx, query, customerID)
}

func (s *BookingReadStore) ListAll(ctx context.Context, status *string) ([]*queries.BookingListItem, error) {
	if status != nil {
		return s.list(ctx, listQuery+`
			WHERE b.status = $1
			ORDER BY b.shift_date DESC, b.created_at DESC
		`, *status)
	}
	return s.list(ctx, listQuery+`
		ORDER BY b.shift_date DESC, b.created_at DESC
	`)
}

const listQuery = `
	SELECT b.id, b.venue_id, v.name, b.shift_date, st.label, b.guest_count, b.status, b.created_at
	FROM bookings b
	JOIN venues v ON v.id = b.venue_id
	JOIN shift_templates st ON st.id = b.shift_template_id
`

func (s *BookingReadStore) list(ctx context.Context, query string, args ...any) ([]*queries.BookingListItem, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking views", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var (
			item      queries.BookingListItem
			shiftDate time.Time
		)
		err := rows.Scan(&item.ID, &item.VenueID, &item.VenueName, &shiftDate, &item.ShiftLabel, &item.GuestCount, &item.Status, &item.CreatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking view", err)
		}
		item.ShiftDate = shift.DateOf(shiftDate).String()
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking views", err)
	}
	return items, nil
}
