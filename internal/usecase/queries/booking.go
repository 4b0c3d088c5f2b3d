package queries

import (
	"context"

	"venuebook/internal/domain/user"
	"venuebook/internal/infra"
	"venuebook/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrForbidden       = errs.New("booking belongs to another customer")
)

type BookingQueries interface {
	GetByID(ctx context.Context, actor user.Principal, id uuid.UUID) (*BookingView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*BookingListItem, error)
	ListAll(ctx context.Context, status *string) ([]*BookingListItem, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*BookingListItem, error)
	ListAll(ctx context.Context, status *string) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

// GetByID returns the booking view when the actor owns it or is an admin.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor user.Principal, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to load booking view")
	}
	if !actor.CanActOn(view.CustomerID) {
		return nil, ErrForbidden
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*BookingListItem, error) {
	items, err := q.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list customer bookings")
	}
	return items, nil
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context, status *string) ([]*BookingListItem, error) {
	items, err := q.repo.ListAll(ctx, status)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings")
	}
	return items, nil
}
