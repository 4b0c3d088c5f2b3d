//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/shift"
	"venuebook/internal/domain/user"
	"venuebook/internal/infra"
	"venuebook/internal/infra/db"
	"venuebook/internal/pkg/clock"
	"venuebook/internal/usecase/commands"
	"venuebook/tests/common/builder"
	sharedmock "venuebook/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	testHoldDuration = 15 * time.Minute
	testSweepBatch   = 100
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	uow          *sharedmock.MockUnitOfWork
	bookingRepo  *sharedmock.MockBookingRepository
	venueRepo    *sharedmock.MockVenueRepository
	templateRepo *sharedmock.MockTemplateRepository
	packageRepo  *sharedmock.MockPackageRepository
	menuItemRepo *sharedmock.MockMenuItemRepository
	clock        *clock.MockClock
	commands     commands.BookingCommands
}

func TestBookingCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.bookingRepo = sharedmock.NewMockBookingRepository(s.ctrl)
	s.venueRepo = sharedmock.NewMockVenueRepository(s.ctrl)
	s.templateRepo = sharedmock.NewMockTemplateRepository(s.ctrl)
	s.packageRepo = sharedmock.NewMockPackageRepository(s.ctrl)
	s.menuItemRepo = sharedmock.NewMockMenuItemRepository(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC))
	s.commands = commands.NewBookingUseCase(
		s.uow,
		s.bookingRepo,
		s.venueRepo,
		s.templateRepo,
		s.packageRepo,
		s.menuItemRepo,
		booking.NewFactory(s.clock),
		s.clock,
		testHoldDuration,
		testSweepBatch,
	)

	// The unit of work just runs the callback; transactional behavior is
	// covered by the infra layer.
	passthrough := func(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
		return fn(ctx, nil)
	}
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(passthrough).AnyTimes()
	s.uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).DoAndReturn(passthrough).AnyTimes()
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func notFoundErr() error {
	return infra.WrapRepoErr("not found", errors.New("no rows"), infra.KindNotFound)
}

func conflictErr() error {
	return infra.WrapRepoErr("conflict", errors.New("duplicate key"), infra.KindConflict)
}

func (s *BookingCommandsTestSuite) TestCreate() {
	actor := user.NewPrincipal(uuid.New(), user.RoleUser)
	v := builder.NewVenueBuilder().WithCapacity(20).BuildDomain()
	tmpl := builder.NewTemplateBuilder().WithVenueIDs(v.ID()).BuildDomain()
	pkg := builder.NewPackageBuilder().BuildDomain()
	date := shift.NewDate(2026, time.March, 10)

	input := commands.CreateBookingInput{
		VenueID:    v.ID(),
		TemplateID: tmpl.ID(),
		Date:       date,
		PackageID:  pkg.ID(),
		GuestCount: 4,
	}

	s.Run("creates a pending hold", func() {
		s.venueRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), v.ID()).Return(v, nil)
		s.templateRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), tmpl.ID()).Return(tmpl, nil)
		s.packageRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), pkg.ID()).Return(pkg, nil)
		s.bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		created, err := s.commands.Create(context.Background(), actor, input)

		require.NoError(s.T(), err)
		assert.Equal(s.T(), booking.StatusPending, created.Status())
		assert.Equal(s.T(), actor.ID, created.CustomerID())
		assert.Equal(s.T(), shift.InstanceKey{VenueID: v.ID(), Date: date, TemplateID: tmpl.ID()}, created.Slot())
	})

	s.Run("duplicate menu item ids are collapsed before verification", func() {
		itemID := uuid.New()
		withItems := input
		withItems.MenuItemIDs = []uuid.UUID{itemID, itemID}

		s.venueRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), v.ID()).Return(v, nil)
		s.templateRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), tmpl.ID()).Return(tmpl, nil)
		s.packageRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), pkg.ID()).Return(pkg, nil)
		s.menuItemRepo.EXPECT().CountExisting(gomock.Any(), gomock.Any(), []uuid.UUID{itemID}).Return(1, nil)
		s.bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		created, err := s.commands.Create(context.Background(), actor, withItems)

		require.NoError(s.T(), err)
		assert.Equal(s.T(), []uuid.UUID{itemID}, created.MenuItemIDs())
	})

	s.Run("venue not found", func() {
		s.venueRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), v.ID()).Return(nil, notFoundErr())

		_, err := s.commands.Create(context.Background(), actor, input)

		assert.ErrorIs(s.T(), err, commands.ErrVenueNotFound)
	})

	s.Run("template not found", func() {
		s.venueRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), v.ID()).Return(v, nil)
		s.templateRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), tmpl.ID()).Return(nil, notFoundErr())

		_, err := s.commands.Create(context.Background(), actor, input)

		assert.ErrorIs(s.T(), err, commands.ErrTemplateNotFound)
	})

	s.Run("inactive package is treated as not found", func() {
		retired := builder.NewPackageBuilder().WithID(pkg.ID()).AsInactive().BuildDomain()
		s.venueRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), v.ID()).Return(v, nil)
		s.templateRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), tmpl.ID()).Return(tmpl, nil)
		s.packageRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), pkg.ID()).Return(retired, nil)

		_, err := s.commands.Create(context.Background(), actor, input)

		assert.ErrorIs(s.T(), err, commands.ErrPackageNotFound)
	})

	s.Run("unknown menu item", func() {
		withItems := input
		withItems.MenuItemIDs = []uuid.UUID{uuid.New(), uuid.New()}

		s.venueRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), v.ID()).Return(v, nil)
		s.templateRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), tmpl.ID()).Return(tmpl, nil)
		s.packageRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), pkg.ID()).Return(pkg, nil)
		s.menuItemRepo.EXPECT().CountExisting(gomock.Any(), gomock.Any(), gomock.Any()).Return(1, nil)

		_, err := s.commands.Create(context.Background(), actor, withItems)

		assert.ErrorIs(s.T(), err, commands.ErrMenuItemNotFound)
	})

	s.Run("inactive venue fails before touching the ledger", func() {
		closed := builder.NewVenueBuilder().WithID(v.ID()).AsInactive().BuildDomain()
		s.venueRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), v.ID()).Return(closed, nil)
		s.templateRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), tmpl.ID()).Return(tmpl, nil)
		s.packageRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), pkg.ID()).Return(pkg, nil)

		_, err := s.commands.Create(context.Background(), actor, input)

		assert.ErrorIs(s.T(), err, commands.ErrVenueInactive)
	})

	s.Run("template not assigned to the venue", func() {
		foreign := builder.NewTemplateBuilder().WithID(tmpl.ID()).WithVenueIDs(uuid.New()).BuildDomain()
		s.venueRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), v.ID()).Return(v, nil)
		s.templateRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), tmpl.ID()).Return(foreign, nil)
		s.packageRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), pkg.ID()).Return(pkg, nil)

		_, err := s.commands.Create(context.Background(), actor, input)

		assert.ErrorIs(s.T(), err, commands.ErrTemplateNotEligible)
	})

	s.Run("guest count over capacity", func() {
		over := input
		over.GuestCount = 21

		s.venueRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), v.ID()).Return(v, nil)
		s.templateRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), tmpl.ID()).Return(tmpl, nil)
		s.packageRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), pkg.ID()).Return(pkg, nil)

		_, err := s.commands.Create(context.Background(), actor, over)

		assert.ErrorIs(s.T(), err, commands.ErrInvalidGuestCount)
	})

	s.Run("slot conflict surfaces as unavailable", func() {
		s.venueRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), v.ID()).Return(v, nil)
		s.templateRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), tmpl.ID()).Return(tmpl, nil)
		s.packageRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), pkg.ID()).Return(pkg, nil)
		s.bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(conflictErr())

		_, err := s.commands.Create(context.Background(), actor, input)

		assert.ErrorIs(s.T(), err, commands.ErrSlotUnavailable)
	})
}

func (s *BookingCommandsTestSuite) TestConfirm() {
	s.Run("pending booking is confirmed", func() {
		b := builder.NewBookingBuilder().BuildDomain()
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		s.bookingRepo.EXPECT().
			TransitionStatus(gomock.Any(), gomock.Any(), b.ID(), booking.StatusPending, booking.StatusConfirmed, nil, s.clock.Now()).
			Return(true, nil)

		err := s.commands.Confirm(context.Background(), b.ID())

		assert.NoError(s.T(), err)
	})

	s.Run("booking not found", func() {
		id := uuid.New()
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), id).Return(nil, notFoundErr())

		err := s.commands.Confirm(context.Background(), id)

		assert.ErrorIs(s.T(), err, commands.ErrBookingNotFound)
	})

	s.Run("cancelled booking cannot be confirmed", func() {
		b := builder.NewBookingBuilder().AsCancelled(booking.ReasonExpired).BuildDomain()
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)

		err := s.commands.Confirm(context.Background(), b.ID())

		assert.ErrorIs(s.T(), err, commands.ErrInvalidTransition)
	})

	s.Run("lost race against a concurrent transition", func() {
		b := builder.NewBookingBuilder().BuildDomain()
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		s.bookingRepo.EXPECT().
			TransitionStatus(gomock.Any(), gomock.Any(), b.ID(), booking.StatusPending, booking.StatusConfirmed, nil, gomock.Any()).
			Return(false, nil)

		err := s.commands.Confirm(context.Background(), b.ID())

		assert.ErrorIs(s.T(), err, commands.ErrInvalidTransition)
	})
}

func (s *BookingCommandsTestSuite) TestCancel() {
	owner := user.NewPrincipal(uuid.New(), user.RoleUser)
	reason := booking.ReasonCustomerRequest

	s.Run("owner cancels a pending booking", func() {
		b := builder.NewBookingBuilder().WithCustomerID(owner.ID).BuildDomain()
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		s.bookingRepo.EXPECT().
			TransitionStatus(gomock.Any(), gomock.Any(), b.ID(), booking.StatusPending, booking.StatusCancelled, &reason, gomock.Any()).
			Return(true, nil)

		err := s.commands.Cancel(context.Background(), owner, b.ID(), reason)

		assert.NoError(s.T(), err)
	})

	s.Run("pending guard miss falls back to the confirmed guard", func() {
		b := builder.NewBookingBuilder().WithCustomerID(owner.ID).AsConfirmed().BuildDomain()
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		s.bookingRepo.EXPECT().
			TransitionStatus(gomock.Any(), gomock.Any(), b.ID(), booking.StatusPending, booking.StatusCancelled, &reason, gomock.Any()).
			Return(false, nil)
		s.bookingRepo.EXPECT().
			TransitionStatus(gomock.Any(), gomock.Any(), b.ID(), booking.StatusConfirmed, booking.StatusCancelled, &reason, gomock.Any()).
			Return(true, nil)

		err := s.commands.Cancel(context.Background(), owner, b.ID(), reason)

		assert.NoError(s.T(), err)
	})

	s.Run("another customer is forbidden", func() {
		b := builder.NewBookingBuilder().BuildDomain()
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)

		err := s.commands.Cancel(context.Background(), owner, b.ID(), reason)

		assert.ErrorIs(s.T(), err, commands.ErrForbidden)
	})

	s.Run("admin may cancel any booking", func() {
		admin := user.NewPrincipal(uuid.New(), user.RoleAdmin)
		b := builder.NewBookingBuilder().BuildDomain()
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		s.bookingRepo.EXPECT().
			TransitionStatus(gomock.Any(), gomock.Any(), b.ID(), booking.StatusPending, booking.StatusCancelled, gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := s.commands.Cancel(context.Background(), admin, b.ID(), booking.ReasonVenueUnavailable)

		assert.NoError(s.T(), err)
	})

	s.Run("completed booking cannot be cancelled", func() {
		b := builder.NewBookingBuilder().WithCustomerID(owner.ID).AsCompleted().BuildDomain()
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)

		err := s.commands.Cancel(context.Background(), owner, b.ID(), reason)

		assert.ErrorIs(s.T(), err, commands.ErrInvalidTransition)
	})
}

func (s *BookingCommandsTestSuite) TestComplete() {
	yesterday := shift.DateOf(s.clock.Now().AddDate(0, 0, -1))

	s.Run("confirmed booking with past shift date completes", func() {
		b := builder.NewBookingBuilder().WithShiftDate(yesterday).AsConfirmed().BuildDomain()
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		s.bookingRepo.EXPECT().
			TransitionStatus(gomock.Any(), gomock.Any(), b.ID(), booking.StatusConfirmed, booking.StatusCompleted, nil, s.clock.Now()).
			Return(true, nil)

		err := s.commands.Complete(context.Background(), b.ID())

		assert.NoError(s.T(), err)
	})

	s.Run("already completed booking is a no-op", func() {
		b := builder.NewBookingBuilder().AsCompleted().BuildDomain()
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)

		err := s.commands.Complete(context.Background(), b.ID())

		assert.NoError(s.T(), err)
	})

	s.Run("shift date not yet passed", func() {
		today := shift.DateOf(s.clock.Now())
		b := builder.NewBookingBuilder().WithShiftDate(today).AsConfirmed().BuildDomain()
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)

		err := s.commands.Complete(context.Background(), b.ID())

		assert.ErrorIs(s.T(), err, commands.ErrInvalidTransition)
	})

	s.Run("pending booking cannot complete", func() {
		b := builder.NewBookingBuilder().WithShiftDate(yesterday).BuildDomain()
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)

		err := s.commands.Complete(context.Background(), b.ID())

		assert.ErrorIs(s.T(), err, commands.ErrInvalidTransition)
	})
}

func (s *BookingCommandsTestSuite) TestExpirePending() {
	reason := booking.ReasonExpired

	s.Run("expires every lapsed hold", func() {
		ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
		cutoff := s.clock.Now().Add(-testHoldDuration)
		s.bookingRepo.EXPECT().ExpiredPendingIDs(gomock.Any(), gomock.Any(), cutoff, testSweepBatch).Return(ids, nil)
		for _, id := range ids {
			s.bookingRepo.EXPECT().
				TransitionStatus(gomock.Any(), gomock.Any(), id, booking.StatusPending, booking.StatusCancelled, &reason, gomock.Any()).
				Return(true, nil)
		}

		expired, err := s.commands.ExpirePending(context.Background())

		require.NoError(s.T(), err)
		assert.Equal(s.T(), 3, expired)
	})

	s.Run("one failed cancel does not abort the sweep", func() {
		ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
		s.bookingRepo.EXPECT().ExpiredPendingIDs(gomock.Any(), gomock.Any(), gomock.Any(), testSweepBatch).Return(ids, nil)
		s.bookingRepo.EXPECT().
			TransitionStatus(gomock.Any(), gomock.Any(), ids[0], booking.StatusPending, booking.StatusCancelled, &reason, gomock.Any()).
			Return(true, nil)
		s.bookingRepo.EXPECT().
			TransitionStatus(gomock.Any(), gomock.Any(), ids[1], booking.StatusPending, booking.StatusCancelled, &reason, gomock.Any()).
			Return(false, errors.New("connection reset"))
		s.bookingRepo.EXPECT().
			TransitionStatus(gomock.Any(), gomock.Any(), ids[2], booking.StatusPending, booking.StatusCancelled, &reason, gomock.Any()).
			Return(true, nil)

		expired, err := s.commands.ExpirePending(context.Background())

		require.NoError(s.T(), err)
		assert.Equal(s.T(), 2, expired)
	})

	s.Run("hold confirmed mid-sweep is left alone", func() {
		id := uuid.New()
		s.bookingRepo.EXPECT().ExpiredPendingIDs(gomock.Any(), gomock.Any(), gomock.Any(), testSweepBatch).Return([]uuid.UUID{id}, nil)
		s.bookingRepo.EXPECT().
			TransitionStatus(gomock.Any(), gomock.Any(), id, booking.StatusPending, booking.StatusCancelled, &reason, gomock.Any()).
			Return(false, nil)

		expired, err := s.commands.ExpirePending(context.Background())

		require.NoError(s.T(), err)
		assert.Equal(s.T(), 0, expired)
	})

	s.Run("nothing to expire", func() {
		s.bookingRepo.EXPECT().ExpiredPendingIDs(gomock.Any(), gomock.Any(), gomock.Any(), testSweepBatch).Return(nil, nil)

		expired, err := s.commands.ExpirePending(context.Background())

		require.NoError(s.T(), err)
		assert.Equal(s.T(), 0, expired)
	})
}
