package shared

import (
	"context"
	"time"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/catalog"
	"venuebook/internal/domain/shift"
	"venuebook/internal/domain/venue"
	"venuebook/internal/infra/db"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports.go -package=sharedmock

// UnitOfWork scopes repository calls to either a retried read-committed
// transaction or the bare pool.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

// ActiveSlot is an occupied shift instance as seen by the availability read
// path: a pending or confirmed booking's slot key and which of the two it is.
type ActiveSlot struct {
	Date       shift.Date
	TemplateID uuid.UUID
	Status     booking.Status
}

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*booking.Booking, error)
	TransitionStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, from, to booking.Status, reason *booking.CancelReason, now time.Time) (bool, error)
	ExpiredPendingIDs(ctx context.Context, dbtx db.DBTX, cutoff time.Time, limit int) ([]uuid.UUID, error)
	ActiveSlots(ctx context.Context, dbtx db.DBTX, venueID uuid.UUID, dateRange shift.DateRange) ([]ActiveSlot, error)
}

type VenueRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, v *venue.Venue) error
	Update(ctx context.Context, dbtx db.DBTX, v *venue.Venue) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*venue.Venue, error)
	List(ctx context.Context, dbtx db.DBTX, activeOnly bool) ([]*venue.Venue, error)
}

type TemplateRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, t *shift.Template) error
	Update(ctx context.Context, dbtx db.DBTX, t *shift.Template) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shift.Template, error)
	ListForVenue(ctx context.Context, dbtx db.DBTX, venueID uuid.UUID) ([]*shift.Template, error)
	List(ctx context.Context, dbtx db.DBTX) ([]*shift.Template, error)
}

type PackageRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, p *catalog.Package) error
	Update(ctx context.Context, dbtx db.DBTX, p *catalog.Package) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*catalog.Package, error)
	List(ctx context.Context, dbtx db.DBTX, activeOnly bool) ([]*catalog.Package, error)
}

type MenuItemRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, m *catalog.MenuItem) error
	Update(ctx context.Context, dbtx db.DBTX, m *catalog.MenuItem) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*catalog.MenuItem, error)
	List(ctx context.Context, dbtx db.DBTX, activeOnly bool) ([]*catalog.MenuItem, error)
	CountExisting(ctx context.Context, dbtx db.DBTX, ids []uuid.UUID) (int, error)
}
