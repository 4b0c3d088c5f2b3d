//go:build unit

package commands_test

import (
	"context"
	"testing"

	"venuebook/internal/domain/catalog"
	"venuebook/internal/domain/venue"
	"venuebook/internal/infra/db"
	"venuebook/internal/usecase/commands"
	"venuebook/tests/common/builder"
	sharedmock "venuebook/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogCommandsTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	uow          *sharedmock.MockUnitOfWork
	venueRepo    *sharedmock.MockVenueRepository
	templateRepo *sharedmock.MockTemplateRepository
	packageRepo  *sharedmock.MockPackageRepository
	menuItemRepo *sharedmock.MockMenuItemRepository
	commands     commands.CatalogCommands
}

func TestCatalogCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogCommandsTestSuite))
}

func (s *CatalogCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.venueRepo = sharedmock.NewMockVenueRepository(s.ctrl)
	s.templateRepo = sharedmock.NewMockTemplateRepository(s.ctrl)
	s.packageRepo = sharedmock.NewMockPackageRepository(s.ctrl)
	s.menuItemRepo = sharedmock.NewMockMenuItemRepository(s.ctrl)
	s.commands = commands.NewCatalogUseCase(s.uow, s.venueRepo, s.templateRepo, s.packageRepo, s.menuItemRepo)

	passthrough := func(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
		return fn(ctx, nil)
	}
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(passthrough).AnyTimes()
	s.uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).DoAndReturn(passthrough).AnyTimes()
}

func (s *CatalogCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CatalogCommandsTestSuite) TestCreateVenue() {
	s.Run("creates an active venue", func() {
		s.venueRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		v, err := s.commands.CreateVenue(context.Background(), commands.CreateVenueInput{
			Name:     "Harbor Hall",
			Location: "12 Quay Street",
			Capacity: 80,
		})

		require.NoError(s.T(), err)
		assert.Equal(s.T(), "Harbor Hall", v.Name())
		assert.True(s.T(), v.IsActive())
	})

	s.Run("rejects invalid input before hitting storage", func() {
		_, err := s.commands.CreateVenue(context.Background(), commands.CreateVenueInput{
			Name:     "",
			Location: "somewhere",
			Capacity: 10,
		})

		assert.ErrorIs(s.T(), err, commands.ErrDomainValidation)
		assert.ErrorIs(s.T(), err, venue.ErrEmptyVenueName)
	})
}

func (s *CatalogCommandsTestSuite) TestUpdateVenue() {
	s.Run("applies partial updates", func() {
		existing := builder.NewVenueBuilder().BuildDomain()
		s.venueRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), existing.ID()).Return(existing, nil)
		s.venueRepo.EXPECT().Update(gomock.Any(), gomock.Any(), existing).Return(nil)

		name := "Grand Hall"
		active := false
		v, err := s.commands.UpdateVenue(context.Background(), existing.ID(), commands.UpdateVenueInput{
			Name:   &name,
			Active: &active,
		})

		require.NoError(s.T(), err)
		assert.Equal(s.T(), "Grand Hall", v.Name())
		assert.False(s.T(), v.IsActive())
	})

	s.Run("venue not found", func() {
		id := uuid.New()
		s.venueRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), id).Return(nil, notFoundErr())

		_, err := s.commands.UpdateVenue(context.Background(), id, commands.UpdateVenueInput{})

		assert.ErrorIs(s.T(), err, commands.ErrVenueNotFound)
	})

	s.Run("invalid capacity leaves the venue untouched", func() {
		existing := builder.NewVenueBuilder().BuildDomain()
		s.venueRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), existing.ID()).Return(existing, nil)

		capacity := -1
		_, err := s.commands.UpdateVenue(context.Background(), existing.ID(), commands.UpdateVenueInput{Capacity: &capacity})

		assert.ErrorIs(s.T(), err, commands.ErrDomainValidation)
	})
}

func (s *CatalogCommandsTestSuite) TestCreateShiftTemplate() {
	venueID := uuid.New()
	input := commands.ShiftTemplateInput{
		Label:    "Dinner",
		StartsAt: "18:00",
		EndsAt:   "22:00",
		VenueIDs: []uuid.UUID{venueID},
	}

	s.Run("creates a template after verifying its venues", func() {
		s.venueRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), venueID).Return(builder.NewVenueBuilder().WithID(venueID).BuildDomain(), nil)
		s.templateRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		t, err := s.commands.CreateShiftTemplate(context.Background(), input)

		require.NoError(s.T(), err)
		assert.Equal(s.T(), "Dinner", t.Label())
		assert.True(s.T(), t.EligibleFor(venueID))
	})

	s.Run("unknown venue in the assignment list", func() {
		s.venueRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), venueID).Return(nil, notFoundErr())

		_, err := s.commands.CreateShiftTemplate(context.Background(), input)

		assert.ErrorIs(s.T(), err, commands.ErrVenueNotFound)
	})

	s.Run("malformed window", func() {
		bad := input
		bad.StartsAt = "25:00"

		_, err := s.commands.CreateShiftTemplate(context.Background(), bad)

		assert.ErrorIs(s.T(), err, commands.ErrDomainValidation)
	})

	s.Run("window ending before it starts", func() {
		bad := input
		bad.StartsAt = "22:00"
		bad.EndsAt = "18:00"

		_, err := s.commands.CreateShiftTemplate(context.Background(), bad)

		assert.ErrorIs(s.T(), err, commands.ErrDomainValidation)
	})
}

func (s *CatalogCommandsTestSuite) TestUpdateShiftTemplate() {
	s.Run("reassigns venues after verifying them", func() {
		existing := builder.NewTemplateBuilder().BuildDomain()
		newVenue := uuid.New()
		s.templateRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), existing.ID()).Return(existing, nil)
		s.venueRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), newVenue).Return(builder.NewVenueBuilder().WithID(newVenue).BuildDomain(), nil)
		s.templateRepo.EXPECT().Update(gomock.Any(), gomock.Any(), existing).Return(nil)

		t, err := s.commands.UpdateShiftTemplate(context.Background(), existing.ID(), commands.ShiftTemplateInput{
			Label:    "Late Dinner",
			StartsAt: "20:00",
			EndsAt:   "23:30",
			VenueIDs: []uuid.UUID{newVenue},
		})

		require.NoError(s.T(), err)
		assert.Equal(s.T(), "Late Dinner", t.Label())
		assert.True(s.T(), t.EligibleFor(newVenue))
	})

	s.Run("template not found", func() {
		id := uuid.New()
		s.templateRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), id).Return(nil, notFoundErr())

		_, err := s.commands.UpdateShiftTemplate(context.Background(), id, commands.ShiftTemplateInput{
			Label: "Dinner", StartsAt: "18:00", EndsAt: "22:00",
		})

		assert.ErrorIs(s.T(), err, commands.ErrTemplateNotFound)
	})
}

func (s *CatalogCommandsTestSuite) TestPackages() {
	s.Run("creates a package", func() {
		s.packageRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		p, err := s.commands.CreatePackage(context.Background(), commands.CreatePackageInput{
			Name: "Standard Course", PriceCents: 5500, PerPerson: true,
		})

		require.NoError(s.T(), err)
		assert.True(s.T(), p.IsActive())
	})

	s.Run("negative price is rejected", func() {
		_, err := s.commands.CreatePackage(context.Background(), commands.CreatePackageInput{
			Name: "Standard Course", PriceCents: -1,
		})

		assert.ErrorIs(s.T(), err, commands.ErrDomainValidation)
		assert.ErrorIs(s.T(), err, catalog.ErrNegativePrice)
	})

	s.Run("retire and reinstate via update", func() {
		existing := builder.NewPackageBuilder().BuildDomain()
		s.packageRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), existing.ID()).Return(existing, nil)
		s.packageRepo.EXPECT().Update(gomock.Any(), gomock.Any(), existing).Return(nil)

		active := false
		p, err := s.commands.UpdatePackage(context.Background(), existing.ID(), commands.UpdatePackageInput{Active: &active})

		require.NoError(s.T(), err)
		assert.False(s.T(), p.IsActive())
	})

	s.Run("package not found", func() {
		id := uuid.New()
		s.packageRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), id).Return(nil, notFoundErr())

		_, err := s.commands.UpdatePackage(context.Background(), id, commands.UpdatePackageInput{})

		assert.ErrorIs(s.T(), err, commands.ErrPackageNotFound)
	})
}

func (s *CatalogCommandsTestSuite) TestMenuItems() {
	s.Run("creates a menu item", func() {
		s.menuItemRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		m, err := s.commands.CreateMenuItem(context.Background(), commands.CreateMenuItemInput{
			Name: "Oysters", PriceCents: 1200,
		})

		require.NoError(s.T(), err)
		assert.Equal(s.T(), "Oysters", m.Name())
	})

	s.Run("renames an existing item", func() {
		existing := builder.NewMenuItemBuilder().BuildDomain()
		s.menuItemRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), existing.ID()).Return(existing, nil)
		s.menuItemRepo.EXPECT().Update(gomock.Any(), gomock.Any(), existing).Return(nil)

		name := "Grilled Oysters"
		m, err := s.commands.UpdateMenuItem(context.Background(), existing.ID(), commands.UpdateMenuItemInput{Name: &name})

		require.NoError(s.T(), err)
		assert.Equal(s.T(), "Grilled Oysters", m.Name())
	})

	s.Run("menu item not found", func() {
		id := uuid.New()
		s.menuItemRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), id).Return(nil, notFoundErr())

		_, err := s.commands.UpdateMenuItem(context.Background(), id, commands.UpdateMenuItemInput{})

		assert.ErrorIs(s.T(), err, commands.ErrMenuItemNotFound)
	})
}
